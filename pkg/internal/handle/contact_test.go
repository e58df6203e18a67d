package handle_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mshahid/portfolio-server/pkg/configs"
	"github.com/mshahid/portfolio-server/pkg/internal/handle"
	"github.com/mshahid/portfolio-server/pkg/internal/model"
	"github.com/mshahid/portfolio-server/pkg/internal/storage"
	"github.com/mshahid/portfolio-server/pkg/internal/storage/db"
	"github.com/mshahid/portfolio-server/pkg/internal/types"
	"github.com/mshahid/portfolio-server/pkg/middleware"
)

// newContactRouter 构造带内存数据库的联系表单测试路由.
func newContactRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	if err := configs.InitConfig(t.TempDir()); err != nil {
		t.Fatalf("init config: %v", err)
	}

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := gdb.AutoMigrate(&model.ContactMessage{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	manager := &storage.Manager{DB: &db.Client{DB: gdb}}

	engine := gin.New()
	engine.Use(middleware.StorageMiddleware(manager))
	engine.POST("/api/v1/contact", handle.SubmitContact)

	return engine
}

// TestSubmitContactResponseIsAcknowledgment 测试响应只含确认信息，
// 落库记录（IP、UA、状态）不回给访客.
func TestSubmitContactResponseIsAcknowledgment(t *testing.T) {
	engine := newContactRouter(t)

	body := `{"name":"Jane","email":"jane@example.com","subject":"Hi","message":"a message that is long enough"}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp types.Response
	if err := sonic.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if !resp.Success || resp.Message == "" {
		t.Errorf("expected success acknowledgment, got %+v", resp)
	}

	if resp.Data != nil {
		t.Errorf("expected no data in response, got %v", resp.Data)
	}

	for _, leaked := range []string{"ip_address", "user_agent", "status"} {
		if strings.Contains(w.Body.String(), leaked) {
			t.Errorf("response leaks stored field %q: %s", leaked, w.Body.String())
		}
	}
}

// TestSubmitContactBadRequest 测试非法负载返回 400 且不落库.
func TestSubmitContactBadRequest(t *testing.T) {
	engine := newContactRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", strings.NewReader(`{"name":"Jane"}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
