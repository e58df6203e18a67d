package router

import (
	"github.com/gin-gonic/gin"

	"github.com/mshahid/portfolio-server/pkg/internal/handle"
)

// RegisterCVRoutes 注册简历路由.
// 查看与下载对访客开放，上传与删除仅限管理端.
func RegisterCVRoutes(g *gin.RouterGroup, opts Options) {
	cvRoutes := g.Group("/cv")
	{
		cvRoutes.GET("", handle.GetCV)
		cvRoutes.GET("/:id/download", handle.DownloadCV)

		adminOnly := cvRoutes.Group("", use(opts.Auth)...)
		{
			adminOnly.POST("/upload", handle.UploadCV)
			adminOnly.DELETE("/:id", handle.DeleteCV)
		}
	}
}
