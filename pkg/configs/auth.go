package configs

import "github.com/spf13/viper"

// DefaultAdminPassword 开发环境默认管理密码，生产环境必须通过配置覆盖.
const DefaultAdminPassword = "admin123"

// AuthConfig 管理接口的共享密钥认证配置.
// 管理端每次请求都携带 password 请求头，与 AdminPassword 逐字节比较，
// 不建立任何会话状态.
type AuthConfig struct {
	AdminPassword string   `mapstructure:"admin_password"` // 管理密码
	HeaderName    string   `mapstructure:"header_name"`    // 携带密钥的请求头名称
	SkipPaths     []string `mapstructure:"skip_paths"`     // 跳过认证的路径前缀（如 /metrics、/api/v1/health）
}

func (c *AuthConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("auth.admin_password", DefaultAdminPassword)
	v.SetDefault("auth.header_name", "password")
	v.SetDefault("auth.skip_paths", []string{
		"/metrics",
		"/debug/pprof",
		"/api/v1/health",
		"/swagger",
	})
}
