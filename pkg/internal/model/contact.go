package model

import (
	"time"
)

// 联系消息状态枚举.
const (
	StatusNew      = "new"
	StatusRead     = "read"
	StatusReplied  = "replied"
	StatusArchived = "archived"
)

// ValidStatuses 所有合法的消息状态.
var ValidStatuses = []string{StatusNew, StatusRead, StatusReplied, StatusArchived}

// IsValidStatus 判断 s 是否为合法状态值.
func IsValidStatus(s string) bool {
	for _, v := range ValidStatuses {
		if s == v {
			return true
		}
	}

	return false
}

// ContactMessage 联系表单消息模型.
// 状态只会是四个枚举值之一；非法状态在进入存储前就会被拒绝.
type ContactMessage struct {
	ID      uint   `gorm:"primaryKey"             json:"id"`
	Name    string `gorm:"size:100"               json:"name"`
	Email   string `gorm:"size:255;index"         json:"email"`
	Subject string `gorm:"size:200"               json:"subject"`
	Message string `gorm:"type:text"              json:"message"`
	// 提交方的来源信息
	IPAddress string `gorm:"size:64"               json:"ip_address"`
	UserAgent string `gorm:"size:512"              json:"user_agent"`
	// 管理端的处理状态
	Status    string    `gorm:"size:16;index;default:new" json:"status"`
	CreatedAt time.Time `gorm:"index"                     json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
