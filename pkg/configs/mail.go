package configs

import "github.com/spf13/viper"

const (
	DefaultMailSMTPHost = "smtp.office365.com" // 默认SMTP主机
	DefaultMailSMTPPort = 587                  // 默认SMTP端口
)

// MailConfig 联系表单通知邮件配置.
// 通知是尽力而为的旁路：发送失败只记录日志，不影响请求本身.
type MailConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	SMTPHost string `mapstructure:"smtp_host" rule:"hostname"`
	SMTPPort int    `mapstructure:"smtp_port" rule:"min=1,max=65535"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
	To       string `mapstructure:"to"` // 通知接收地址，默认与 From 相同
}

func (c *MailConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("mail.enabled", false)
	v.SetDefault("mail.smtp_host", DefaultMailSMTPHost)
	v.SetDefault("mail.smtp_port", DefaultMailSMTPPort)
	v.SetDefault("mail.username", "")
	v.SetDefault("mail.password", "")
	v.SetDefault("mail.from", "")
	v.SetDefault("mail.to", "")
}
