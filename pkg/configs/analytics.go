package configs

import "github.com/spf13/viper"

const (
	// DefaultAnalyticsRetentionDays 页面浏览事件默认保留天数.
	DefaultAnalyticsRetentionDays = 365
	// DefaultTrendDays 趋势查询默认窗口（天）.
	DefaultTrendDays = 30
	// MaxTrendDays 趋势查询窗口上限（天）.
	MaxTrendDays = 365
)

// AnalyticsConfig 页面浏览统计配置.
type AnalyticsConfig struct {
	// Pages 允许记录的页面名称枚举.
	Pages []string `mapstructure:"pages"`
	// RetentionDays 事件保留天数，0 表示不清理.
	RetentionDays int `mapstructure:"retention_days" rule:"min=0"`
	// CacheTTLSeconds summary/trends 响应缓存TTL（秒），0 关闭缓存.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" rule:"min=0"`
}

func (c *AnalyticsConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("analytics.pages", []string{"home", "about", "portfolio", "contact", "resume"})
	v.SetDefault("analytics.retention_days", DefaultAnalyticsRetentionDays)
	v.SetDefault("analytics.cache_ttl_seconds", 60)
}
