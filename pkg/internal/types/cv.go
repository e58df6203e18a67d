package types

// CVInfo 当前简历的下载引用.
type CVInfo struct {
	ID   string `json:"id,omitempty"`
	URL  string `json:"url"`
	Name string `json:"name"`
}
