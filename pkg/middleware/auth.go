package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mshahid/portfolio-server/pkg/configs"
	"github.com/mshahid/portfolio-server/pkg/internal/types"
)

// AuthMiddleware 基于共享密钥请求头做管理接口认证。
//   - 每次请求从配置的请求头（默认 password）取值并与管理密码逐字节比较
//   - 缺失或不匹配统一返回 401，不泄露区别
//   - 支持通过配置跳过某些路径（如 /metrics, /health）.
func AuthMiddleware(conf configs.AuthConfig) gin.HandlerFunc {
	headerName := conf.HeaderName
	if headerName == "" {
		headerName = "password"
	}

	return func(c *gin.Context) {
		if isSkippedPath(c.Request.URL.Path, conf.SkipPaths) {
			c.Next()
			return
		}

		provided := c.GetHeader(headerName)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(conf.AdminPassword)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, types.Fail("unauthorized"))

			return
		}

		c.Next()
	}
}

func isSkippedPath(path string, skips []string) bool {
	if path == "" || len(skips) == 0 {
		return false
	}

	for _, p := range skips {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		if strings.HasPrefix(path, p) {
			return true
		}
	}

	return false
}
