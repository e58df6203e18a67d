package types

// ChatRequest 站点助手对话请求.
type ChatRequest struct {
	Message string `json:"message" rule:"required,max=2000"`
	// Context 可选的前文对话，拼入提示词
	Context string `json:"context" rule:"max=4000"`
}

// ChatResponse 助手回复，Reply 恒为非空文本.
type ChatResponse struct {
	Reply string `json:"reply"`
}
