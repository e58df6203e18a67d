// Package api 定义对外 HTTP 接口的挂载入口.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/mshahid/portfolio-server/pkg/internal/router"
)

// BasePath API 版本前缀.
const BasePath = "/api/v1"

// RegisterGroup 将业务路由组挂载到传入的 gin 引擎.
func RegisterGroup(e *gin.Engine, opts router.Options) *gin.Engine {
	router.RegisterRoutes(e.Group(BasePath), opts)

	return e
}
