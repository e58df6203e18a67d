package model

import "time"

// 设备类型枚举.
const (
	DeviceDesktop = "desktop"
	DeviceTablet  = "tablet"
	DeviceMobile  = "mobile"
	DeviceBot     = "bot"
)

// ReferrerDirect 无 Referer 请求头时记录的字面量.
const ReferrerDirect = "direct"

// PageView 页面浏览事件模型，只增不改：公开契约上没有更新或删除操作.
type PageView struct {
	ID        uint   `gorm:"primaryKey"                    json:"id"`
	Page      string `gorm:"size:64;index:idx_page_created" json:"page"`
	IPAddress string `gorm:"size:64;index"                 json:"ip_address"`
	UserAgent string `gorm:"size:512"                      json:"user_agent"`
	Referrer  string `gorm:"size:512"                      json:"referrer"`
	// 从 User-Agent 解析出的客户端信息
	DeviceType     string `gorm:"size:16;index;default:desktop" json:"device_type"`
	BrowserName    string `gorm:"size:64;index"                 json:"browser_name"`
	BrowserVersion string `gorm:"size:32"                       json:"browser_version"`
	OSName         string `gorm:"size:64;index"                 json:"os_name"`
	OSVersion      string `gorm:"size:32"                       json:"os_version"`

	CreatedAt time.Time `gorm:"index:idx_page_created;index" json:"created_at"`
}
