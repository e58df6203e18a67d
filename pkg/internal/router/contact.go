package router

import (
	"github.com/gin-gonic/gin"

	"github.com/mshahid/portfolio-server/pkg/internal/handle"
)

// RegisterContactRoutes 注册联系表单路由（访客可达，无需认证）.
func RegisterContactRoutes(g *gin.RouterGroup) {
	g.POST("/contact", handle.SubmitContact)
}
