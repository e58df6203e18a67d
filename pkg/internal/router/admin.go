package router

import (
	"github.com/gin-gonic/gin"

	"github.com/mshahid/portfolio-server/pkg/internal/handle"
)

// RegisterAdminRoutes 注册管理端路由，整组挂共享密钥认证.
func RegisterAdminRoutes(g *gin.RouterGroup, opts Options) {
	adminRoutes := g.Group("/admin", use(opts.Auth)...)
	{
		messageRoutes := adminRoutes.Group("/messages")
		{
			messageRoutes.GET("", handle.ListMessages)
			messageRoutes.GET("/stats", handle.MessageStats)
			messageRoutes.GET("/:id", handle.GetMessage)
			messageRoutes.PATCH("/:id/status", handle.UpdateMessageStatus)
			messageRoutes.DELETE("/:id", handle.DeleteMessage)
		}

		schedulerRoutes := adminRoutes.Group("/scheduler")
		{
			schedulerRoutes.GET("/jobs", handle.SchedulerJobs)
			schedulerRoutes.POST("/jobs/stop", handle.SchedulerStopJobs)
			schedulerRoutes.DELETE("/jobs/:id", handle.SchedulerRemoveJob)
		}
	}
}
