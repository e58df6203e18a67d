package ai

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/sony/gobreaker"

	"github.com/mshahid/portfolio-server/pkg/configs"
)

const (
	remoteBreakerMinRequests = 5
	remoteBreakerFailureRate = 0.6
	remoteMinReplyLength     = 3
)

// RemoteAssistant 调用文本生成推理API（HuggingFace Inference格式）.
// 通过熔断器保护，端点连续失败时快速失败交给回退逻辑.
type RemoteAssistant struct {
	cfg     configs.AIConfig
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
}

// NewRemoteAssistant 创建远程推理助手.
func NewRemoteAssistant(cfg configs.AIConfig) *RemoteAssistant {
	settings := gobreaker.Settings{
		Name:    "ai-inference",
		Timeout: 60 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < remoteBreakerMinRequests {
				return false
			}

			return float64(counts.TotalFailures)/float64(counts.Requests) >= remoteBreakerFailureRate
		},
	}

	return &RemoteAssistant{
		cfg:     cfg,
		client:  &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

// inferenceRequest HuggingFace Inference API 请求体.
type inferenceRequest struct {
	Inputs     string              `json:"inputs"`
	Parameters inferenceParameters `json:"parameters"`
}

type inferenceParameters struct {
	MaxNewTokens   int     `json:"max_new_tokens"`
	Temperature    float64 `json:"temperature"`
	DoSample       bool    `json:"do_sample"`
	TopP           float64 `json:"top_p"`
	ReturnFullText bool    `json:"return_full_text"`
}

// inferenceResult 响应条目，不同模型的字段命名略有差异.
type inferenceResult struct {
	GeneratedText string `json:"generated_text"`
	Text          string `json:"text"`
}

// Generate 实现 Assistant 接口.
func (r *RemoteAssistant) Generate(ctx context.Context, message, history string) (string, error) {
	reply, err := r.breaker.Execute(func() (any, error) {
		return r.call(ctx, message, history)
	})
	if err != nil {
		return "", err
	}

	s, _ := reply.(string)

	return s, nil
}

func (r *RemoteAssistant) call(ctx context.Context, message, history string) (string, error) {
	body, err := sonic.Marshal(inferenceRequest{
		Inputs: r.buildPrompt(message, history),
		Parameters: inferenceParameters{
			MaxNewTokens:   r.cfg.MaxNewTokens,
			Temperature:    r.cfg.Temperature,
			DoSample:       true,
			TopP:           0.9,
			ReturnFullText: false,
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal inference request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build inference request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	if r.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+r.cfg.Token)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("call inference endpoint: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("inference endpoint returned %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read inference response: %w", err)
	}

	return parseReply(data)
}

// buildPrompt 组装画像上下文 + 历史 + 用户消息.
func (r *RemoteAssistant) buildPrompt(message, history string) string {
	p := r.cfg.Profile

	var b strings.Builder

	if history != "" {
		b.WriteString("Previous conversation: ")
		b.WriteString(history)
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("Here is information about %s:\n", p.Name))
	b.WriteString(fmt.Sprintf("- Name: %s\n", p.Name))
	b.WriteString(fmt.Sprintf("- Role: %s\n", p.Role))
	b.WriteString(fmt.Sprintf("- Experience: %s\n", p.Experience))
	b.WriteString(fmt.Sprintf("- Skills: %s\n", strings.Join(p.Skills, ", ")))
	b.WriteString(fmt.Sprintf("- Education: %s\n", p.Education))

	if p.Contact != "" {
		b.WriteString(fmt.Sprintf("- Contact: %s\n", p.Contact))
	}

	b.WriteString(fmt.Sprintf("\nYou are %s's AI assistant. Answer questions about the profile naturally and helpfully.\n", p.Name))
	b.WriteString("Human: ")
	b.WriteString(message)
	b.WriteString("\nAssistant:")

	return b.String()
}

// parseReply 解析推理响应，兼容数组与对象两种格式.
func parseReply(data []byte) (string, error) {
	var arr []inferenceResult
	if err := sonic.Unmarshal(data, &arr); err == nil && len(arr) > 0 {
		return cleanReply(firstNonEmpty(arr[0].GeneratedText, arr[0].Text))
	}

	var single inferenceResult
	if err := sonic.Unmarshal(data, &single); err == nil {
		return cleanReply(firstNonEmpty(single.GeneratedText, single.Text))
	}

	return "", fmt.Errorf("unrecognized inference response format")
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}

	return b
}

func cleanReply(s string) (string, error) {
	s = strings.TrimSpace(s)
	// 模型可能回显提示词前缀
	if idx := strings.Index(s, "Assistant:"); idx >= 0 {
		s = strings.TrimSpace(s[idx+len("Assistant:"):])
	}

	if len(s) < remoteMinReplyLength {
		return "", fmt.Errorf("empty or too short reply")
	}

	return s, nil
}
