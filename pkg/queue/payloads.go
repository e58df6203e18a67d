package queue

import "time"

// EventHeader 定义所有事件的通用头部元数据.
// 建议在发布消息时填充 TraceID、OccurredAt、Producer 等，便于追踪链路与审计.
type EventHeader struct {
	// Topic 冗余记录消息主题，便于离线处理或转储后定位来源主题.
	Topic string `json:"topic"`
	// TraceID 分布式追踪/关联 ID，可来自中间件或业务生成.
	TraceID string `json:"trace_id,omitempty"`
	// Producer 生产者服务名或节点标识.
	Producer string `json:"producer,omitempty"`
	// OccurredAt 事件发生时间（UTC，RFC3339）.
	OccurredAt time.Time `json:"occurred_at"`
	// Version 事件负载版本，便于向后兼容演进.
	Version string `json:"version,omitempty"`
}

// Message 是统一的消息封装，Header + Payload.
// T 即不同主题对应的负载结构体.
type Message[T any] struct {
	Header  EventHeader `json:"header"`
	Payload T           `json:"payload"`
}

// -------------------------- 联系消息领域 --------------------------

// ContactReceivedPayload 联系消息已落库.
type ContactReceivedPayload struct {
	MessageID uint   `json:"message_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	IPAddress string `json:"ip_address,omitempty"`
}

// -------------------------- 访问统计领域 --------------------------

// PageViewRecordedPayload 页面访问已记录.
type PageViewRecordedPayload struct {
	Page       string `json:"page"`
	Referrer   string `json:"referrer,omitempty"`
	DeviceType string `json:"device_type,omitempty"`
	IPAddress  string `json:"ip_address,omitempty"`
}

// -------------------------- 简历文件领域 --------------------------

// CVObjectRef 标识简历对象在对象存储中的位置.
type CVObjectRef struct {
	Bucket      string `json:"bucket"`
	ObjectKey   string `json:"object_key"`
	Size        int64  `json:"size,omitempty"`
	ContentType string `json:"content_type,omitempty"`
}

// CVUploadedPayload 新简历已写入对象存储并落库.
type CVUploadedPayload struct {
	RecordID     string      `json:"record_id"`
	Object       CVObjectRef `json:"object"`
	OriginalName string      `json:"original_name,omitempty"`
}

// CVDeletedPayload 简历记录及对象已删除.
type CVDeletedPayload struct {
	RecordID string      `json:"record_id"`
	Object   CVObjectRef `json:"object"`
}
