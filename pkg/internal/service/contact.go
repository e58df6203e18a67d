package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/mshahid/portfolio-server/pkg/configs"
	ctxPkg "github.com/mshahid/portfolio-server/pkg/context"
	"github.com/mshahid/portfolio-server/pkg/internal/model"
	"github.com/mshahid/portfolio-server/pkg/internal/storage/db"
	"github.com/mshahid/portfolio-server/pkg/internal/storage/mq"
	"github.com/mshahid/portfolio-server/pkg/internal/types"
	nlog "github.com/mshahid/portfolio-server/pkg/log"
	"github.com/mshahid/portfolio-server/pkg/metrics"
	"github.com/mshahid/portfolio-server/pkg/queue"
	"github.com/mshahid/portfolio-server/pkg/rule"
)

// ContactService 负责联系表单消息的接收与落库.
type ContactService struct {
	dbClient *db.Client
	mqClient *mq.Client
}

// NewContactService 从 context 获取依赖实例.
func NewContactService(c context.Context) *ContactService {
	dbc := ctxPkg.GetDBClient(c)

	// 为了安全起见，缺 DB 直接 panic，依赖此服务就不需要再检查
	if dbc == nil || dbc.DB == nil {
		nlog.Logger().Panic().Msg("db client not initialized")
	}

	return &ContactService{
		dbClient: dbc,
		mqClient: ctxPkg.GetMQClient(c), // 单测环境可为 nil，发布前判空
	}
}

// Submit 校验并持久化一条联系消息，邮箱归一化为小写，成功后发布事件供通知旁路消费.
// 事件发布失败只记日志，不影响已落库的消息.
func (s *ContactService) Submit(ctx context.Context, req *types.SubmitContactRequest, ip, userAgent string) (*model.ContactMessage, error) {
	if err := rule.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validate contact request: %w", err)
	}

	msg := &model.ContactMessage{
		Name:      req.Name,
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Subject:   req.Subject,
		Message:   req.Message,
		IPAddress: ip,
		UserAgent: userAgent,
		Status:    model.StatusNew,
	}

	if err := s.dbClient.WithContext(ctx).Create(msg).Error; err != nil {
		return nil, fmt.Errorf("persist contact message: %w", err)
	}

	metrics.ContactSubmissions.Inc()

	s.publishReceived(ctx, msg)

	return msg, nil
}

// publishReceived 发布 pf.contact.received 事件.
func (s *ContactService) publishReceived(ctx context.Context, msg *model.ContactMessage) {
	evCfg := configs.GetConfig().Events
	if !evCfg.Enabled || !evCfg.ContactReceived || s.mqClient == nil {
		return
	}

	payload := queue.ContactReceivedPayload{
		MessageID: msg.ID,
		Name:      msg.Name,
		Email:     msg.Email,
		Subject:   msg.Subject,
		Message:   msg.Message,
		IPAddress: msg.IPAddress,
	}

	wmMsg, err := queue.NewWatermillMessage(queue.TopicContactReceived, payload,
		queue.WithProducer(configs.AppName))
	if err != nil {
		nlog.Logger().Error().Err(err).Msg("build contact event")
		return
	}

	if err := s.mqClient.Publish(ctx, queue.TopicContactReceived, wmMsg); err != nil {
		nlog.Logger().Error().Err(err).Uint("message_id", msg.ID).Msg("publish contact event")
	}
}
