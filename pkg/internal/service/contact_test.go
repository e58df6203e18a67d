package service_test

import (
	"testing"

	"github.com/mshahid/portfolio-server/pkg/internal/model"
	"github.com/mshahid/portfolio-server/pkg/internal/service"
	"github.com/mshahid/portfolio-server/pkg/internal/types"
)

// TestSubmitContact 测试正常提交后落库字段与初始状态.
func TestSubmitContact(t *testing.T) {
	ctx := newTestContext(t)
	svc := service.NewContactService(ctx)

	req := &types.SubmitContactRequest{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Subject: "Collaboration",
		Message: "I would like to discuss a project with you.",
	}

	msg, err := svc.Submit(ctx, req, "203.0.113.7", "Mozilla/5.0")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if msg.ID == 0 {
		t.Error("expected assigned id")
	}

	if msg.Status != model.StatusNew {
		t.Errorf("expected status %q, got %q", model.StatusNew, msg.Status)
	}

	if msg.IPAddress != "203.0.113.7" {
		t.Errorf("unexpected ip: %q", msg.IPAddress)
	}
}

// TestSubmitContactNormalizesEmail 测试邮箱归一化为小写后落库.
func TestSubmitContactNormalizesEmail(t *testing.T) {
	ctx := newTestContext(t)
	svc := service.NewContactService(ctx)

	req := &types.SubmitContactRequest{
		Name:    "Jane Doe",
		Email:   "Jane.Doe@Example.COM",
		Subject: "Hello",
		Message: "a message that is long enough",
	}

	msg, err := svc.Submit(ctx, req, "", "")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if msg.Email != "jane.doe@example.com" {
		t.Errorf("expected lowercased email, got %q", msg.Email)
	}
}

// TestSubmitContactMessageBoundary 测试消息长度下界：9 字符拒绝，10 字符接受.
func TestSubmitContactMessageBoundary(t *testing.T) {
	ctx := newTestContext(t)
	svc := service.NewContactService(ctx)

	base := types.SubmitContactRequest{Name: "Jane", Email: "a@b.com", Subject: "Hi"}

	tooShort := base
	tooShort.Message = "123456789" // 9 字符

	if _, err := svc.Submit(ctx, &tooShort, "", ""); err == nil {
		t.Error("expected validation error for 9-char message, got nil")
	}

	minimal := base
	minimal.Message = "1234567890" // 10 字符

	if _, err := svc.Submit(ctx, &minimal, "", ""); err != nil {
		t.Errorf("expected 10-char message accepted, got %v", err)
	}
}

// TestSubmitContactValidation 测试非法请求被拒绝且不落库.
func TestSubmitContactValidation(t *testing.T) {
	ctx := newTestContext(t)
	svc := service.NewContactService(ctx)

	cases := []struct {
		name string
		req  types.SubmitContactRequest
	}{
		{"missing name", types.SubmitContactRequest{Email: "a@b.com", Subject: "Hi", Message: "long enough message"}},
		{"bad email", types.SubmitContactRequest{Name: "Jane", Email: "not-an-email", Subject: "Hi", Message: "long enough message"}},
		{"short message", types.SubmitContactRequest{Name: "Jane", Email: "a@b.com", Subject: "Hi", Message: "short"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Submit(ctx, &tc.req, "", ""); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}

	admin := service.NewAdminService(ctx)

	stats, err := admin.MessageStats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}

	if stats.Total != 0 {
		t.Errorf("expected no persisted messages, got %d", stats.Total)
	}
}
