package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mssola/useragent"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/mshahid/portfolio-server/pkg/configs"
	ctxPkg "github.com/mshahid/portfolio-server/pkg/context"
	"github.com/mshahid/portfolio-server/pkg/internal/model"
	"github.com/mshahid/portfolio-server/pkg/internal/storage/db"
	"github.com/mshahid/portfolio-server/pkg/internal/storage/mq"
	"github.com/mshahid/portfolio-server/pkg/internal/types"
	nlog "github.com/mshahid/portfolio-server/pkg/log"
	"github.com/mshahid/portfolio-server/pkg/metrics"
	"github.com/mshahid/portfolio-server/pkg/queue"
)

const (
	recentActivityLimit = 10
	topItemsLimit       = 20
	dateLayout          = "2006-01-02"
)

// AnalyticsService 负责页面浏览事件的记录与聚合.
type AnalyticsService struct {
	dbClient *db.Client
	mqClient *mq.Client
}

// NewAnalyticsService 从 context 获取依赖实例.
func NewAnalyticsService(c context.Context) *AnalyticsService {
	dbc := ctxPkg.GetDBClient(c)
	if dbc == nil || dbc.DB == nil {
		nlog.Logger().Panic().Msg("db client not initialized")
	}

	return &AnalyticsService{
		dbClient: dbc,
		mqClient: ctxPkg.GetMQClient(c),
	}
}

// RecordPageView 记录一次页面浏览. 页面名统一转小写后必须在配置的枚举中；
// User-Agent 解析在写入前完成，referrer 为空时记录为 direct.
func (s *AnalyticsService) RecordPageView(ctx context.Context, req *types.RecordPageViewRequest, ip, rawUA, referrer string) (*model.PageView, error) {
	page := strings.ToLower(strings.TrimSpace(req.Page))
	if !isAllowedPage(page) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPage, page)
	}

	if referrer == "" {
		referrer = model.ReferrerDirect
	}

	pv := &model.PageView{
		Page:      page,
		IPAddress: ip,
		UserAgent: rawUA,
		Referrer:  referrer,
	}

	fillClientInfo(pv, rawUA)

	if err := s.dbClient.WithContext(ctx).Create(pv).Error; err != nil {
		return nil, fmt.Errorf("persist page view: %w", err)
	}

	metrics.PageViews.WithLabelValues(page).Inc()

	s.publishRecorded(ctx, pv)

	return pv, nil
}

// isAllowedPage 检查页面名是否在配置的枚举中.
func isAllowedPage(page string) bool {
	for _, p := range configs.GetConfig().Analytics.Pages {
		if p == page {
			return true
		}
	}

	return false
}

// fillClientInfo 从 User-Agent 解析设备/ 浏览器 / 操作系统信息.
// 分类优先级：bot > tablet > mobile > desktop.
func fillClientInfo(pv *model.PageView, rawUA string) {
	pv.DeviceType = model.DeviceDesktop

	if rawUA == "" {
		return
	}

	ua := useragent.New(rawUA)

	switch {
	case ua.Bot():
		pv.DeviceType = model.DeviceBot
	case isTabletUA(rawUA):
		pv.DeviceType = model.DeviceTablet
	case ua.Mobile():
		pv.DeviceType = model.DeviceMobile
	}

	name, version := ua.Browser()
	pv.BrowserName = name
	pv.BrowserVersion = version

	osInfo := ua.OSInfo()
	pv.OSName = osInfo.Name
	pv.OSVersion = osInfo.Version
}

// isTabletUA 平板的启发式判定，解析库不单独区分平板.
func isTabletUA(rawUA string) bool {
	lower := strings.ToLower(rawUA)
	return strings.Contains(lower, "ipad") || strings.Contains(lower, "tablet")
}

// publishRecorded 发布 pf.pageview.recorded 事件.
func (s *AnalyticsService) publishRecorded(ctx context.Context, pv *model.PageView) {
	evCfg := configs.GetConfig().Events
	if !evCfg.Enabled || !evCfg.PageViewRecorded || s.mqClient == nil {
		return
	}

	payload := queue.PageViewRecordedPayload{
		Page:       pv.Page,
		Referrer:   pv.Referrer,
		DeviceType: pv.DeviceType,
		IPAddress:  pv.IPAddress,
	}

	msg, err := queue.NewWatermillMessage(queue.TopicPageViewRecorded, payload,
		queue.WithProducer(configs.AppName))
	if err != nil {
		nlog.Logger().Error().Err(err).Msg("build pageview event")
		return
	}

	if err := s.mqClient.Publish(ctx, queue.TopicPageViewRecorded, msg); err != nil {
		nlog.Logger().Error().Err(err).Msg("publish pageview event")
	}
}

// Summary 并发执行各维度聚合并组装汇总响应.
// 日期过滤含边界：startDate 当日 00:00 起，endDate 次日 00:00 止.
func (s *AnalyticsService) Summary(ctx context.Context, q *types.SummaryQuery) (*types.AnalyticsSummary, error) {
	start, end, err := parseDateRange(q)
	if err != nil {
		return nil, err
	}

	summary := &types.AnalyticsSummary{}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		tx := s.rangeQuery(gctx, start, end)
		if err := tx.Count(&summary.TotalViews).Error; err != nil {
			return fmt.Errorf("count total views: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		items, err := s.countBy(gctx, "page", start, end)
		if err != nil {
			return err
		}

		summary.ViewsByPage = items

		return nil
	})

	g.Go(func() error {
		items, err := s.countBy(gctx, "device_type", start, end)
		if err != nil {
			return err
		}

		summary.ViewsByDevice = items

		return nil
	})

	g.Go(func() error {
		items, err := s.countBy(gctx, "browser_name", start, end)
		if err != nil {
			return err
		}

		summary.ViewsByBrowser = items

		return nil
	})

	g.Go(func() error {
		items, err := s.countBy(gctx, "os_name", start, end)
		if err != nil {
			return err
		}

		summary.ViewsByOS = items

		return nil
	})

	g.Go(func() error {
		recent, err := s.recentActivity(gctx, start, end)
		if err != nil {
			return err
		}

		summary.RecentActivity = recent

		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return summary, nil
}

// rangeQuery 构造带可选时间范围的基础查询.
func (s *AnalyticsService) rangeQuery(ctx context.Context, start, end *time.Time) *gorm.DB {
	tx := s.dbClient.WithContext(ctx).Model(&model.PageView{})

	if start != nil {
		tx = tx.Where("created_at >= ?", *start)
	}

	if end != nil {
		tx = tx.Where("created_at < ?", *end)
	}

	return tx
}

// countBy 对单列做分组计数，按计数降序截断.
func (s *AnalyticsService) countBy(ctx context.Context, column string, start, end *time.Time) ([]types.CountItem, error) {
	// key 在部分方言中是保留字，统一用显式别名
	type row struct {
		ItemKey string `gorm:"column:item_key"`
		Total   int64  `gorm:"column:total"`
	}

	var rows []row

	err := s.rangeQuery(ctx, start, end).
		Select(column + " AS item_key, COUNT(*) AS total").
		Group(column).
		Order("total DESC").
		Limit(topItemsLimit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("count by %s: %w", column, err)
	}

	items := make([]types.CountItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, types.CountItem{Key: r.ItemKey, Count: r.Total})
	}

	return items, nil
}

// recentActivity 最近的浏览事件，裁剪为响应视图.
func (s *AnalyticsService) recentActivity(ctx context.Context, start, end *time.Time) ([]types.RecentView, error) {
	var views []model.PageView

	err := s.rangeQuery(ctx, start, end).
		Order("created_at DESC").
		Limit(recentActivityLimit).
		Find(&views).Error
	if err != nil {
		return nil, fmt.Errorf("recent activity: %w", err)
	}

	recent := make([]types.RecentView, 0, len(views))
	for _, v := range views {
		recent = append(recent, types.RecentView{
			Page:       v.Page,
			IPAddress:  v.IPAddress,
			DeviceType: v.DeviceType,
			Browser:    v.BrowserName,
			OS:         v.OSName,
			CreatedAt:  v.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	return recent, nil
}

// parseDateRange 解析可选的 startDate/endDate（YYYY-MM-DD，含边界）.
func parseDateRange(q *types.SummaryQuery) (start, end *time.Time, err error) {
	if q.StartDate != "" {
		t, perr := time.Parse(dateLayout, q.StartDate)
		if perr != nil {
			return nil, nil, fmt.Errorf("%w: startDate %q", ErrInvalidDate, q.StartDate)
		}

		start = &t
	}

	if q.EndDate != "" {
		t, perr := time.Parse(dateLayout, q.EndDate)
		if perr != nil {
			return nil, nil, fmt.Errorf("%w: endDate %q", ErrInvalidDate, q.EndDate)
		}

		// endDate 为含边界语义，推进到次日零点
		t = t.AddDate(0, 0, 1)
		end = &t
	}

	return start, end, nil
}

// PruneOldViews 删除超过保留期的浏览事件，返回删除行数.
// retention_days 为 0 时不清理；供定时任务调用.
func (s *AnalyticsService) PruneOldViews(ctx context.Context) (int64, error) {
	retention := configs.GetConfig().Analytics.RetentionDays
	if retention <= 0 {
		return 0, nil
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -retention)

	res := s.dbClient.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&model.PageView{})
	if res.Error != nil {
		return 0, fmt.Errorf("prune page views: %w", res.Error)
	}

	return res.RowsAffected, nil
}

// Trends 最近 N 天的逐日浏览量，缺数据的日期补 0.
func (s *AnalyticsService) Trends(ctx context.Context, days int) ([]types.TrendPoint, error) {
	if days <= 0 {
		days = configs.DefaultTrendDays
	}

	if days > configs.MaxTrendDays {
		days = configs.MaxTrendDays
	}

	// 窗口含今天在内共 days 天
	today := time.Now().UTC().Truncate(24 * time.Hour)
	since := today.AddDate(0, 0, -(days - 1))

	var views []model.PageView

	err := s.dbClient.WithContext(ctx).Model(&model.PageView{}).
		Select("created_at").
		Where("created_at >= ?", since).
		Find(&views).Error
	if err != nil {
		return nil, fmt.Errorf("load trend views: %w", err)
	}

	counts := make(map[string]int64, days)
	for _, v := range views {
		counts[v.CreatedAt.UTC().Format(dateLayout)]++
	}

	points := make([]types.TrendPoint, 0, days)

	for d := 0; d < days; d++ {
		date := since.AddDate(0, 0, d).Format(dateLayout)
		points = append(points, types.TrendPoint{Date: date, Count: counts[date]})
	}

	return points, nil
}
