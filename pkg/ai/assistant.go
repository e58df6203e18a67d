// Package ai 提供站点助手的回答生成能力.
//
// 远程推理端点不可用时无缝退回基于画像数据的关键词回答，
// 保证 /chat 接口永远返回非空内容.
package ai

import (
	"context"

	"github.com/mshahid/portfolio-server/pkg/configs"
	nlog "github.com/mshahid/portfolio-server/pkg/log"
)

// Assistant 回答生成器接口.
type Assistant interface {
	// Generate 基于用户消息（和可选的上下文）生成回答.
	Generate(ctx context.Context, message, history string) (string, error)
}

// Composite 先尝试远程推理，失败时退回关键词回答.
type Composite struct {
	remote   *RemoteAssistant
	fallback *FallbackAssistant
}

// NewComposite 根据配置组装助手.
// 未启用远程推理时只使用关键词回退.
func NewComposite(cfg configs.AIConfig) *Composite {
	c := &Composite{
		fallback: NewFallbackAssistant(cfg.Profile),
	}

	if cfg.Enabled && cfg.Endpoint != "" {
		c.remote = NewRemoteAssistant(cfg)
	}

	return c
}

// Generate 实现 Assistant 接口.
func (c *Composite) Generate(ctx context.Context, message, history string) (string, error) {
	if c.remote != nil {
		reply, err := c.remote.Generate(ctx, message, history)
		if err == nil && reply != "" {
			return reply, nil
		}

		if err != nil {
			nlog.Logger().Warn().Err(err).Msg("remote assistant failed, using fallback")
		}
	}

	return c.fallback.Generate(ctx, message, history)
}
