package configs

import "github.com/spf13/viper"

const (
	// DefaultCVMaxSize 简历文件大小上限（5 MiB）.
	DefaultCVMaxSize = 5 << 20
	// DefaultCVObjectPrefix 简历对象在桶中的键前缀.
	DefaultCVObjectPrefix = "cv/"
)

// CVConfig 简历文件生命周期配置.
type CVConfig struct {
	MaxSizeBytes int64 `mapstructure:"max_size_bytes" rule:"min=1"`
	// AllowedExtensions 允许的扩展名（含点，小写）.
	AllowedExtensions []string `mapstructure:"allowed_extensions"`
	// ObjectPrefix 对象键前缀，简历服务独占该前缀下的所有对象.
	ObjectPrefix string `mapstructure:"object_prefix"`
	// SerializeUploads 上传串行化：并发上传会竞争"先清空后插入"的序列，
	// 串行化后进程内保证同一时刻只有一个上传在执行.
	SerializeUploads bool `mapstructure:"serialize_uploads"`
}

func (c *CVConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("cv.max_size_bytes", DefaultCVMaxSize)
	v.SetDefault("cv.allowed_extensions", []string{".pdf", ".doc", ".docx"})
	v.SetDefault("cv.object_prefix", DefaultCVObjectPrefix)
	v.SetDefault("cv.serialize_uploads", true)
}
