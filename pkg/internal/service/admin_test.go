package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	ctxPkg "github.com/mshahid/portfolio-server/pkg/context"
	"github.com/mshahid/portfolio-server/pkg/internal/model"
	"github.com/mshahid/portfolio-server/pkg/internal/service"
	"github.com/mshahid/portfolio-server/pkg/internal/types"
)

// seedMessages 写入 n 条消息，时间递增保证排序可预期.
func seedMessages(t *testing.T, ctx context.Context, n int, status string) []model.ContactMessage {
	t.Helper()

	dbc := ctxPkg.GetDBClient(ctx)

	base := time.Now().Add(-time.Duration(n) * time.Minute)
	out := make([]model.ContactMessage, 0, n)

	for i := 0; i < n; i++ {
		msg := model.ContactMessage{
			Name:      fmt.Sprintf("User %d", i),
			Email:     fmt.Sprintf("user%d@example.com", i),
			Subject:   fmt.Sprintf("Subject %d", i),
			Message:   fmt.Sprintf("Message body number %d", i),
			Status:    status,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := dbc.Create(&msg).Error; err != nil {
			t.Fatalf("seed message: %v", err)
		}

		out = append(out, msg)
	}

	return out
}

// TestListMessagesPagination 测试分页切片与元信息.
func TestListMessagesPagination(t *testing.T) {
	ctx := newTestContext(t)
	svc := service.NewAdminService(ctx)

	seedMessages(t, ctx, 25, model.StatusNew)

	msgs, p, err := svc.ListMessages(ctx, &types.ListMessagesQuery{Page: 2, Limit: 10})
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if len(msgs) != 10 {
		t.Errorf("expected 10 messages, got %d", len(msgs))
	}

	if p.Total != 25 || p.Pages != 3 || p.Page != 2 {
		t.Errorf("unexpected pagination: %+v", p)
	}

	// 按 created_at 倒序：第 2 页的第一个应晚于第 2 页的最后一个
	if len(msgs) > 1 && msgs[0].CreatedAt.Before(msgs[len(msgs)-1].CreatedAt) {
		t.Error("expected createdAt descending order")
	}

	// 未指定 limit 时默认每页 20 条
	msgs, p, err = svc.ListMessages(ctx, &types.ListMessagesQuery{})
	if err != nil {
		t.Fatalf("list with defaults: %v", err)
	}

	if len(msgs) != 20 || p.Limit != 20 {
		t.Errorf("expected default limit 20, got %d messages (limit=%d)", len(msgs), p.Limit)
	}
}

// TestListMessagesFilterAndSearch 测试状态过滤与大小写不敏感搜索.
func TestListMessagesFilterAndSearch(t *testing.T) {
	ctx := newTestContext(t)
	svc := service.NewAdminService(ctx)

	seedMessages(t, ctx, 3, model.StatusNew)
	seedMessages(t, ctx, 2, model.StatusArchived)

	msgs, p, err := svc.ListMessages(ctx, &types.ListMessagesQuery{Status: model.StatusArchived})
	if err != nil {
		t.Fatalf("filter: %v", err)
	}

	if p.Total != 2 {
		t.Errorf("expected 2 archived, got %d", p.Total)
	}

	for _, m := range msgs {
		if m.Status != model.StatusArchived {
			t.Errorf("unexpected status %q", m.Status)
		}
	}

	// 非法状态直接拒绝
	if _, _, err := svc.ListMessages(ctx, &types.ListMessagesQuery{Status: "bogus"}); !errors.Is(err, service.ErrInvalidStatus) {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}

	// 搜索大小写不敏感
	_, p, err = svc.ListMessages(ctx, &types.ListMessagesQuery{Search: "USER 1"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}

	if p.Total != 2 { // User 1 出现在两批种子数据中
		t.Errorf("expected 2 search hits, got %d", p.Total)
	}
}

// TestMessageLifecycle 测试查看、状态流转与删除.
func TestMessageLifecycle(t *testing.T) {
	ctx := newTestContext(t)
	svc := service.NewAdminService(ctx)

	seeded := seedMessages(t, ctx, 1, model.StatusNew)
	id := seeded[0].ID

	got, err := svc.GetMessage(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	if got.Email != seeded[0].Email {
		t.Errorf("unexpected email %q", got.Email)
	}

	updated, err := svc.UpdateStatus(ctx, id, model.StatusReplied)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}

	if updated.Status != model.StatusReplied {
		t.Errorf("expected replied, got %q", updated.Status)
	}

	if _, err := svc.UpdateStatus(ctx, id, "wontfix"); !errors.Is(err, service.ErrInvalidStatus) {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}

	if err := svc.DeleteMessage(ctx, id); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := svc.GetMessage(ctx, id); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	if err := svc.DeleteMessage(ctx, id); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("expected ErrNotFound on double delete, got %v", err)
	}
}

// TestMessageStats 测试总量与按状态计数，零计数状态不出现.
func TestMessageStats(t *testing.T) {
	ctx := newTestContext(t)
	svc := service.NewAdminService(ctx)

	seedMessages(t, ctx, 3, model.StatusNew)
	seedMessages(t, ctx, 1, model.StatusRead)

	stats, err := svc.MessageStats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}

	if stats.Total != 4 {
		t.Errorf("expected total 4, got %d", stats.Total)
	}

	if stats.ByStatus[model.StatusNew] != 3 || stats.ByStatus[model.StatusRead] != 1 {
		t.Errorf("unexpected byStatus: %+v", stats.ByStatus)
	}

	if _, ok := stats.ByStatus[model.StatusArchived]; ok {
		t.Error("zero-count status should be omitted")
	}
}
