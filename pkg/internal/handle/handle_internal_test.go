package handle

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/mshahid/portfolio-server/pkg/internal/service"
)

// TestRespondErrorMapping 测试领域错误到状态码的映射：
// 校验类错误（含文件过大）为 400，缺失类（含文件丢失）为 404，其余 500.
func TestRespondErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"invalid status", service.ErrInvalidStatus, http.StatusBadRequest},
		{"invalid page", service.ErrInvalidPage, http.StatusBadRequest},
		{"invalid date", service.ErrInvalidDate, http.StatusBadRequest},
		{"unsupported file type", service.ErrUnsupportedFileType, http.StatusBadRequest},
		{"file too large", service.ErrFileTooLarge, http.StatusBadRequest},
		{"not found", service.ErrNotFound, http.StatusNotFound},
		{"no cv", service.ErrNoCV, http.StatusNotFound},
		{"cv file missing", service.ErrCVFileMissing, http.StatusNotFound},
		{"wrapped sentinel", fmt.Errorf("upload: %w", service.ErrFileTooLarge), http.StatusBadRequest},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			respondError(c, tc.err)

			if w.Code != tc.want {
				t.Errorf("err %v: expected status %d, got %d", tc.err, tc.want, w.Code)
			}
		})
	}
}
