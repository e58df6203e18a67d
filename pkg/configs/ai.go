package configs

import "github.com/spf13/viper"

const (
	// DefaultAIEndpoint 默认推理API端点.
	DefaultAIEndpoint = "https://api-inference.huggingface.co/models/microsoft/DialoGPT-small"
	// DefaultAITimeoutSeconds 默认远程调用超时（秒）.
	DefaultAITimeoutSeconds = 15
	// DefaultAIMaxNewTokens 默认生成token上限.
	DefaultAIMaxNewTokens = 150
)

// AIConfig 站点助手配置：远程推理端点 + 基于画像数据的关键词回退.
type AIConfig struct {
	Enabled        bool    `mapstructure:"enabled"`
	Endpoint       string  `mapstructure:"endpoint"`
	Token          string  `mapstructure:"token"`
	TimeoutSeconds int     `mapstructure:"timeout_seconds" rule:"min=1,max=120"`
	MaxNewTokens   int     `mapstructure:"max_new_tokens"  rule:"min=1,max=1024"`
	Temperature    float64 `mapstructure:"temperature"     rule:"min=0,max=2"`

	// Profile 个人画像数据，驱动提示词与关键词回退回答.
	Profile AIProfileConfig `mapstructure:"profile"`
}

// AIProfileConfig 个人画像.
type AIProfileConfig struct {
	Name       string   `mapstructure:"name"`
	Role       string   `mapstructure:"role"`
	Experience string   `mapstructure:"experience"`
	Skills     []string `mapstructure:"skills"`
	Education  string   `mapstructure:"education"`
	Contact    string   `mapstructure:"contact"`
}

func (c *AIConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("ai.enabled", true)
	v.SetDefault("ai.endpoint", DefaultAIEndpoint)
	v.SetDefault("ai.token", "")
	v.SetDefault("ai.timeout_seconds", DefaultAITimeoutSeconds)
	v.SetDefault("ai.max_new_tokens", DefaultAIMaxNewTokens)
	v.SetDefault("ai.temperature", 0.7)

	v.SetDefault("ai.profile.name", "Muhammad Shahid")
	v.SetDefault("ai.profile.role", "Data Analyst/Engineer")
	v.SetDefault("ai.profile.experience", "5+ years in data analysis, machine learning, and business intelligence")
	v.SetDefault("ai.profile.skills", []string{"Python", "SQL", "Tableau", "Power BI", "Machine Learning"})
	v.SetDefault("ai.profile.education", "Bachelor's in Computer Science")
	v.SetDefault("ai.profile.contact", "")
}
