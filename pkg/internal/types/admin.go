package types

// ListMessagesQuery 管理端消息列表查询参数.
type ListMessagesQuery struct {
	Page   int    `form:"page"   rule:"min=1"`
	Limit  int    `form:"limit"  rule:"min=1,max=200"`
	Status string `form:"status"`
	Search string `form:"search"`
}

// UpdateStatusRequest 消息状态变更请求.
type UpdateStatusRequest struct {
	Status string `json:"status" rule:"required"`
}

// MessageStats 消息统计：总量与按状态的计数.
// ByStatus 中缺失的状态键语义上等于 0.
type MessageStats struct {
	Total    int64            `json:"total"`
	ByStatus map[string]int64 `json:"byStatus"`
}
