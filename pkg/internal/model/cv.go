package model

import "time"

// CVRecord 当前简历文件的元数据.
// 不变式：任意时刻表中最多只有一行——上传会先清空旧记录再插入新记录.
type CVRecord struct {
	// ID 使用 ULID，时间有序且抗碰撞
	ID string `gorm:"primaryKey;size:26" json:"id"`
	// FileName 存储侧生成的对象名（uuid + 原扩展名），与原始文件名无关
	FileName     string `gorm:"size:255" json:"file_name"`
	OriginalName string `gorm:"size:512" json:"original_name"`
	MimeType     string `gorm:"size:255" json:"mime_type"`
	Size         int64  `json:"size"`
	URL          string `gorm:"size:512" json:"url"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
