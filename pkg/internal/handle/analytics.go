package handle

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mshahid/portfolio-server/pkg/internal/service"
	"github.com/mshahid/portfolio-server/pkg/internal/types"
	"github.com/mshahid/portfolio-server/pkg/log"
)

// RecordPageView 记录一次页面浏览.
//
//	@Summary		上报页面浏览
//	@Description	记录一次页面浏览事件，客户端信息从 User-Agent 与 Referer 解析
//	@Tags			统计
//	@Accept			json
//	@Produce		json
//	@Param			view	body		types.RecordPageViewRequest	true	"页面浏览上报"
//	@Success		201		{object}	types.Response				"记录确认"
//	@Failure		400		{object}	types.Response				"请求参数错误"
//	@Failure		500		{object}	types.Response				"服务器内部错误"
//	@Router			/api/v1/analytics/pageview [post]
func RecordPageView(c *gin.Context) {
	var req types.RecordPageViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Logger().Warn().Err(err).Msg("invalid pageview request")
		c.JSON(http.StatusBadRequest, types.Fail(err.Error()))

		return
	}

	svc := service.NewAnalyticsService(c.Request.Context())

	pv, err := svc.RecordPageView(c.Request.Context(), &req,
		c.ClientIP(), c.Request.UserAgent(), c.Request.Referer())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, types.OK(types.PageViewAck{
		ID:        pv.ID,
		Page:      pv.Page,
		Timestamp: pv.CreatedAt.UTC().Format(time.RFC3339),
	}))
}

// AnalyticsSummary 浏览统计汇总.
//
//	@Summary		浏览统计汇总
//	@Description	并发聚合总量、按页面/设备/浏览器/系统的分布与最近活动，支持可选日期范围
//	@Tags			统计
//	@Produce		json
//	@Param			startDate	query		string			false	"起始日期 YYYY-MM-DD（含）"
//	@Param			endDate		query		string			false	"结束日期 YYYY-MM-DD（含）"
//	@Success		200			{object}	types.Response	"汇总数据"
//	@Failure		400			{object}	types.Response	"日期格式错误"
//	@Failure		500			{object}	types.Response	"服务器内部错误"
//	@Router			/api/v1/analytics/summary [get]
func AnalyticsSummary(c *gin.Context) {
	var q types.SummaryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, types.Fail(err.Error()))
		return
	}

	svc := service.NewAnalyticsService(c.Request.Context())

	summary, err := svc.Summary(c.Request.Context(), &q)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.OK(summary))
}

// AnalyticsTrends 逐日浏览趋势.
//
//	@Summary		浏览趋势
//	@Description	最近 N 天（默认30）的逐日浏览量，缺数据的日期补 0
//	@Tags			统计
//	@Produce		json
//	@Param			days	query		int				false	"窗口天数"
//	@Success		200		{object}	types.Response	"逐日数据点"
//	@Failure		500		{object}	types.Response	"服务器内部错误"
//	@Router			/api/v1/analytics/trends [get]
func AnalyticsTrends(c *gin.Context) {
	var q types.TrendsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, types.Fail(err.Error()))
		return
	}

	svc := service.NewAnalyticsService(c.Request.Context())

	points, err := svc.Trends(c.Request.Context(), q.Days)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.OK(points))
}
