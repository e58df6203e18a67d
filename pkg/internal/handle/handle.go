// Package handle 提供HTTP请求处理器的实现.
package handle

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/mshahid/portfolio-server/pkg/internal/service"
	"github.com/mshahid/portfolio-server/pkg/internal/types"
)

func DefaultHandler(c *gin.Context) {
	c.JSON(http.StatusNotImplemented, types.Fail("Not Implemented"))
}

// respondError 将领域错误映射为 HTTP 状态码，内部细节不进入响应体.
func respondError(c *gin.Context, err error) {
	var vErrs validator.ValidationErrors

	switch {
	case errors.As(err, &vErrs):
		c.JSON(http.StatusBadRequest, types.Fail(err.Error()))
	case errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrInvalidPage),
		errors.Is(err, service.ErrInvalidDate),
		errors.Is(err, service.ErrUnsupportedFileType),
		errors.Is(err, service.ErrFileTooLarge):
		c.JSON(http.StatusBadRequest, types.Fail(err.Error()))
	case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrNoCV):
		c.JSON(http.StatusNotFound, types.Fail(err.Error()))
	case errors.Is(err, service.ErrCVFileMissing):
		// 记录在而文件丢失是完整性故障，完整性日志在服务层，对外仍然是 404
		c.JSON(http.StatusNotFound, types.Fail("cv file unavailable"))
	default:
		c.JSON(http.StatusInternalServerError, types.Fail("internal server error"))
	}
}

// parseIDParam 解析路径中的数字 ID.
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, types.Fail("invalid id"))
		return 0, false
	}

	return uint(id), true
}
