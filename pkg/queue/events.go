package queue

import "github.com/ThreeDotsLabs/watermill/message"

// -------------------------- 基于业务封装 events --------------------------

// PublishContactReceived 发布 pf.contact.received 事件。
// 联系消息落库后通知下游（邮件投递等）。
// 可通过可选项 opts 注入 TraceID、Producer 等头部信息。
func PublishContactReceived(pub message.Publisher, payload ContactReceivedPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicContactReceived, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicContactReceived, msg)
}

// ParseContactReceived 将 Watermill 消息解析为强类型 Envelope（ContactReceivedPayload）。
func ParseContactReceived(msg *message.Message) (Message[ContactReceivedPayload], error) {
	return ParseWatermillMessage[ContactReceivedPayload](msg)
}

// PublishPageViewRecorded 发布 pf.pageview.recorded 事件。
func PublishPageViewRecorded(pub message.Publisher, payload PageViewRecordedPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicPageViewRecorded, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicPageViewRecorded, msg)
}

// ParsePageViewRecorded 将 Watermill 消息解析为强类型 Envelope（PageViewRecordedPayload）。
func ParsePageViewRecorded(msg *message.Message) (Message[PageViewRecordedPayload], error) {
	return ParseWatermillMessage[PageViewRecordedPayload](msg)
}

// PublishCVUploaded 发布 pf.cv.uploaded 事件。
func PublishCVUploaded(pub message.Publisher, payload CVUploadedPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicCVUploaded, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicCVUploaded, msg)
}

// ParseCVUploaded 将 Watermill 消息解析为强类型 Envelope（CVUploadedPayload）。
func ParseCVUploaded(msg *message.Message) (Message[CVUploadedPayload], error) {
	return ParseWatermillMessage[CVUploadedPayload](msg)
}

// PublishCVDeleted 发布 pf.cv.deleted 事件。
func PublishCVDeleted(pub message.Publisher, payload CVDeletedPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicCVDeleted, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicCVDeleted, msg)
}

// ParseCVDeleted 将 Watermill 消息解析为强类型 Envelope（CVDeletedPayload）。
func ParseCVDeleted(msg *message.Message) (Message[CVDeletedPayload], error) {
	return ParseWatermillMessage[CVDeletedPayload](msg)
}
