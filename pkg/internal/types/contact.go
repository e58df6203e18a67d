package types

// SubmitContactRequest 联系表单提交请求.
// message 至少10个字符，避免无意义的噪声提交.
type SubmitContactRequest struct {
	Name    string `json:"name"    rule:"required,max=100"`
	Email   string `json:"email"   rule:"required,email"`
	Subject string `json:"subject" rule:"required,max=200"`
	Message string `json:"message" rule:"required,min=10,max=2000"`
}
