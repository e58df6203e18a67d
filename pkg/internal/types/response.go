package types

// Response 所有接口统一的响应信封.
type Response struct {
	Success    bool        `json:"success"`
	Data       any         `json:"data,omitempty"`
	Message    string      `json:"message,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination 分页元信息，total/pages 反映过滤后的全集而不是当前切片.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

// OK 构造成功响应.
func OK(data any) Response {
	return Response{Success: true, Data: data}
}

// OKMessage 构造只带提示信息的成功响应.
func OKMessage(msg string) Response {
	return Response{Success: true, Message: msg}
}

// Fail 构造失败响应，内部细节不进入响应体.
func Fail(msg string) Response {
	return Response{Success: false, Message: msg}
}

// Paginated 构造带分页元信息的成功响应.
func Paginated(data any, p Pagination) Response {
	return Response{Success: true, Data: data, Pagination: &p}
}

// NewPagination 计算分页元信息，pages = ceil(total/limit).
func NewPagination(page, limit int, total int64) Pagination {
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}

	return Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}
