package types

// RecordPageViewRequest 页面浏览上报请求.
type RecordPageViewRequest struct {
	Page string `json:"page" rule:"required"`
}

// PageViewAck 页面浏览上报的确认响应.
type PageViewAck struct {
	ID        uint   `json:"id"`
	Page      string `json:"page"`
	Timestamp string `json:"timestamp"`
}

// SummaryQuery 汇总查询的可选日期范围（含边界）.
type SummaryQuery struct {
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
}

// TrendsQuery 趋势查询参数.
type TrendsQuery struct {
	Days int `form:"days"`
}

// CountItem 单维度聚合计数行.
type CountItem struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

// RecentView 最近浏览记录（裁剪过的事件视图）.
type RecentView struct {
	Page       string `json:"page"`
	IPAddress  string `json:"ip_address"`
	DeviceType string `json:"device_type"`
	Browser    string `json:"browser"`
	OS         string `json:"os"`
	CreatedAt  string `json:"created_at"`
}

// AnalyticsSummary 汇总响应.
type AnalyticsSummary struct {
	TotalViews     int64        `json:"totalViews"`
	ViewsByPage    []CountItem  `json:"viewsByPage"`
	ViewsByDevice  []CountItem  `json:"viewsByDevice"`
	ViewsByBrowser []CountItem  `json:"viewsByBrowser"`
	ViewsByOS      []CountItem  `json:"viewsByOS"`
	RecentActivity []RecentView `json:"recentActivity"`
}

// TrendPoint 单日聚合点，Date 为 YYYY-MM-DD.
type TrendPoint struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}
