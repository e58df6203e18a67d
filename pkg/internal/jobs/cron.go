// Package jobs 负责注册与实现业务定时任务（基于 scheduler）。
package jobs

import (
	"context"
	"fmt"

	ctxPkg "github.com/mshahid/portfolio-server/pkg/context"
	"github.com/mshahid/portfolio-server/pkg/internal/service"
	"github.com/mshahid/portfolio-server/pkg/internal/storage"
	"github.com/mshahid/portfolio-server/pkg/log"
	"github.com/mshahid/portfolio-server/pkg/scheduler"
)

// RegisterCronJobs 配置业务定时任务：
//   - 每小时整点清理对象存储中无记录指向的简历对象
//   - 每天 03:30 删除超过保留期的浏览记录
func RegisterCronJobs(sched *scheduler.Scheduler, mgr *storage.Manager) error {
	if sched == nil {
		return fmt.Errorf("scheduler is nil")
	}

	if mgr == nil {
		return fmt.Errorf("storage manager is nil")
	}

	// 将 storage manager 注入到 context，便于 service 使用
	baseCtx := ctxPkg.WithStorageManager(context.Background(), mgr)

	_ = sched.AddCron(JobCVOrphanSweep, CronCVOrphanSweep, func(ctx context.Context) {
		runCVOrphanSweep(ctx)
	}, baseCtx)

	_ = sched.AddCron(JobAnalyticsRetention, CronAnalyticsRetention, func(ctx context.Context) {
		runAnalyticsRetention(ctx)
	}, baseCtx)

	return nil
}

// runCVOrphanSweep 清理简历前缀下未被当前记录引用的存储对象。
func runCVOrphanSweep(ctx context.Context) {
	l := log.Logger().With().Str("job", JobCVOrphanSweep).Logger()

	svc := service.NewCVService(ctx)

	n, err := svc.OrphanSweep(ctx)
	if err != nil {
		l.Error().Err(err).Msg("orphan sweep failed")
		return
	}

	if n > 0 {
		l.Info().Int("removed", n).Msg("orphan objects removed")
	}
}

// runAnalyticsRetention 删除超过保留期的浏览记录。
func runAnalyticsRetention(ctx context.Context) {
	l := log.Logger().With().Str("job", JobAnalyticsRetention).Logger()

	svc := service.NewAnalyticsService(ctx)

	n, err := svc.PruneOldViews(ctx)
	if err != nil {
		l.Error().Err(err).Msg("retention prune failed")
		return
	}

	if n > 0 {
		l.Info().Int64("deleted", n).Msg("old page views pruned")
	}
}
