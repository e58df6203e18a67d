package router

import (
	"github.com/gin-gonic/gin"

	"github.com/mshahid/portfolio-server/pkg/internal/handle"
)

// RegisterChatRoutes 注册站点助手路由（访客可达，无需认证）.
func RegisterChatRoutes(g *gin.RouterGroup) {
	g.POST("/chat", handle.Chat)
}
