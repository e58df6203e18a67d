package jobs

// 任务名称常量，便于统一管理与引用.
const (
	JobCVOrphanSweep      = "cv.orphan_sweep"
	JobAnalyticsRetention = "analytics.retention"
)

// Cron 表达式常量.
const (
	// CronCVOrphanSweep 每小时整点清理上传失败遗留的对象.
	CronCVOrphanSweep = "0 * * * *"
	// CronAnalyticsRetention 每天 03:30 删除超过保留期的浏览记录.
	CronAnalyticsRetention = "30 3 * * *"
)
