// Package router 管理路由配置，负责将路径绑定到 handle 层的处理器.
package router

import (
	"github.com/gin-gonic/gin"
)

// Options 路由注册所需的横切中间件. Auth 为管理端共享密钥校验，
// Cache 为只读统计接口的响应缓存，二者均可为 nil（表示不启用）.
type Options struct {
	Auth  gin.HandlerFunc
	Cache gin.HandlerFunc
}

// RegisterRoutes 将全部业务路由绑定到传入的路由组（通常为 /api/v1）.
func RegisterRoutes(g *gin.RouterGroup, opts Options) {
	RegisterContactRoutes(g)
	RegisterChatRoutes(g)
	RegisterAnalyticsRoutes(g, opts)
	RegisterCVRoutes(g, opts)
	RegisterAdminRoutes(g, opts)
	RegisterHealthCheckRoute(g)
}

// use 返回非 nil 的中间件列表，便于可选中间件的挂载.
func use(mws ...gin.HandlerFunc) []gin.HandlerFunc {
	out := make([]gin.HandlerFunc, 0, len(mws))

	for _, mw := range mws {
		if mw != nil {
			out = append(out, mw)
		}
	}

	return out
}
