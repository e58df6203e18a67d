package router

import (
	"github.com/gin-gonic/gin"

	"github.com/mshahid/portfolio-server/pkg/internal/handle"
)

// RegisterAnalyticsRoutes 注册浏览统计路由.
// 埋点上报对访客开放，汇总/趋势属于管理视图，挂认证与响应缓存.
func RegisterAnalyticsRoutes(g *gin.RouterGroup, opts Options) {
	analyticsRoutes := g.Group("/analytics")
	{
		analyticsRoutes.POST("/pageview", handle.RecordPageView)

		adminView := analyticsRoutes.Group("", use(opts.Auth, opts.Cache)...)
		{
			adminView.GET("/summary", handle.AnalyticsSummary)
			adminView.GET("/trends", handle.AnalyticsTrends)
		}
	}
}
