package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	ctxPkg "github.com/mshahid/portfolio-server/pkg/context"
	"github.com/mshahid/portfolio-server/pkg/internal/model"
	"github.com/mshahid/portfolio-server/pkg/internal/storage/db"
	"github.com/mshahid/portfolio-server/pkg/internal/types"
	nlog "github.com/mshahid/portfolio-server/pkg/log"
)

// AdminService 负责管理端的消息查询与状态管理.
type AdminService struct {
	dbClient *db.Client
}

// NewAdminService 从 context 获取依赖实例.
func NewAdminService(c context.Context) *AdminService {
	dbc := ctxPkg.GetDBClient(c)
	if dbc == nil || dbc.DB == nil {
		nlog.Logger().Panic().Msg("db client not initialized")
	}

	return &AdminService{dbClient: dbc}
}

// ListMessages 分页列出联系消息，支持按状态过滤与子串搜索.
// 搜索对 name/email/subject/message 做大小写不敏感匹配，
// 分页元信息反映过滤后的全集. 返回 (切片, 分页, error).
func (s *AdminService) ListMessages(ctx context.Context, q *types.ListMessagesQuery) ([]model.ContactMessage, types.Pagination, error) {
	page := q.Page
	if page < 1 {
		page = DefaultPage
	}

	limit := q.Limit
	if limit < 1 {
		limit = DefaultLimit
	}

	if limit > MaxLimit {
		limit = MaxLimit
	}

	tx := s.dbClient.WithContext(ctx).Model(&model.ContactMessage{})

	if q.Status != "" {
		if !model.IsValidStatus(q.Status) {
			return nil, types.Pagination{}, fmt.Errorf("%w: %s", ErrInvalidStatus, q.Status)
		}

		tx = tx.Where("status = ?", q.Status)
	}

	if q.Search != "" {
		needle := "%" + strings.ToLower(q.Search) + "%"
		tx = tx.Where(
			"LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(subject) LIKE ? OR LOWER(message) LIKE ?",
			needle, needle, needle, needle,
		)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, types.Pagination{}, fmt.Errorf("count messages: %w", err)
	}

	var messages []model.ContactMessage

	err := tx.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, types.Pagination{}, fmt.Errorf("list messages: %w", err)
	}

	return messages, types.NewPagination(page, limit, total), nil
}

// GetMessage 按 ID 获取单条消息.
func (s *AdminService) GetMessage(ctx context.Context, id uint) (*model.ContactMessage, error) {
	var msg model.ContactMessage

	err := s.dbClient.WithContext(ctx).First(&msg, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: message %d", ErrNotFound, id)
	}

	if err != nil {
		return nil, fmt.Errorf("get message %d: %w", id, err)
	}

	return &msg, nil
}

// UpdateStatus 更新消息状态. 非法状态值在任何写入前就被拒绝.
func (s *AdminService) UpdateStatus(ctx context.Context, id uint, status string) (*model.ContactMessage, error) {
	if !model.IsValidStatus(status) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	msg, err := s.GetMessage(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{
		"status":     status,
		"updated_at": time.Now(),
	}

	if err := s.dbClient.WithContext(ctx).Model(msg).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("update message %d status: %w", id, err)
	}

	msg.Status = status

	return msg, nil
}

// DeleteMessage 永久删除一条消息.
func (s *AdminService) DeleteMessage(ctx context.Context, id uint) error {
	res := s.dbClient.WithContext(ctx).Delete(&model.ContactMessage{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete message %d: %w", id, res.Error)
	}

	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: message %d", ErrNotFound, id)
	}

	return nil
}

// statusCount 按状态分组计数的扫描目标.
type statusCount struct {
	Status string
	Count  int64
}

// MessageStats 统计消息总量与各状态的数量.
// 计数为 0 的状态不会出现在 ByStatus 中.
func (s *AdminService) MessageStats(ctx context.Context) (*types.MessageStats, error) {
	var total int64
	if err := s.dbClient.WithContext(ctx).Model(&model.ContactMessage{}).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("count messages: %w", err)
	}

	var rows []statusCount

	err := s.dbClient.WithContext(ctx).Model(&model.ContactMessage{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("count messages by status: %w", err)
	}

	stats := &types.MessageStats{
		Total:    total,
		ByStatus: make(map[string]int64, len(rows)),
	}

	for _, r := range rows {
		stats.ByStatus[r.Status] = r.Count
	}

	return stats, nil
}
