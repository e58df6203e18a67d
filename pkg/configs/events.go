package configs

import "github.com/spf13/viper"

// EventsConfig 控制事件发布的开关（全局与分主题）.
type EventsConfig struct {
	Enabled bool `mapstructure:"enabled"` // 总开关

	ContactReceived  bool `mapstructure:"contact_received"`
	PageViewRecorded bool `mapstructure:"pageview_recorded"`
	CVUploaded       bool `mapstructure:"cv_uploaded"`
	CVDeleted        bool `mapstructure:"cv_deleted"`
}

func (c *EventsConfig) setDefaults(v *viper.Viper) {
	// 总开关：默认启用事件系统
	v.SetDefault("events.enabled", true)

	// 联系消息事件驱动邮件通知，默认开启
	v.SetDefault("events.contact_received", true)
	v.SetDefault("events.cv_uploaded", true)
	v.SetDefault("events.cv_deleted", true)

	// 浏览事件量可能很大，默认关闭
	v.SetDefault("events.pageview_recorded", false)
}
