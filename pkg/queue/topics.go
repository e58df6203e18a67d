// Package queue 定义消息主题常量，供发布/订阅使用.
package queue

// 主题命名规范：pf.<域>.<动作>，尽量稳定且向后兼容.
// 域：contact(联系消息)、pageview(访问统计)、cv(简历文件)
// 动作：received(已接收)、recorded(已记录)、uploaded(已上传)、deleted(已删除)

const (
	// 联系消息领域.
	TopicContactReceived = "pf.contact.received" // 联系消息已落库，触发通知投递

	// 访问统计领域.
	TopicPageViewRecorded = "pf.pageview.recorded" // 页面访问已记录

	// 简历文件领域.
	TopicCVUploaded = "pf.cv.uploaded" // 新简历已写入对象存储并落库
	TopicCVDeleted  = "pf.cv.deleted"  // 简历记录及对象已删除
)

// 主题分组，用于批量订阅或权限控制.
var (
	// 联系消息相关主题集合.
	ContactTopics = []string{TopicContactReceived}

	// 访问统计相关主题集合.
	AnalyticsTopics = []string{TopicPageViewRecorded}

	// 简历文件相关主题集合.
	CVTopics = []string{TopicCVUploaded, TopicCVDeleted}
)
