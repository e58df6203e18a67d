// Package mail 提供联系表单通知邮件的发送能力.
//
// 通知是尽力而为的旁路：发送失败只记录日志，绝不影响联系请求本身.
package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"github.com/mshahid/portfolio-server/pkg/configs"
	nlog "github.com/mshahid/portfolio-server/pkg/log"
	"github.com/mshahid/portfolio-server/pkg/queue"
)

// Notifier SMTP通知器.
type Notifier struct {
	cfg configs.MailConfig
}

// NewNotifier 基于配置创建通知器.
func NewNotifier(cfg configs.MailConfig) *Notifier {
	return &Notifier{cfg: cfg}
}

// Enabled 通知是否已启用且配置完整.
func (n *Notifier) Enabled() bool {
	return n.cfg.Enabled && n.cfg.SMTPHost != "" && n.cfg.From != ""
}

// NotifyContact 发送一封新联系消息的通知邮件.
func (n *Notifier) NotifyContact(ctx context.Context, p queue.ContactReceivedPayload) error {
	if !n.Enabled() {
		return nil
	}

	to := n.cfg.To
	if to == "" {
		to = n.cfg.From
	}

	msg := buildContactMessage(n.cfg.From, to, p)
	addr := fmt.Sprintf("%s:%d", n.cfg.SMTPHost, n.cfg.SMTPPort)

	var auth smtp.Auth
	if n.cfg.Username != "" {
		auth = smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.SMTPHost)
	}

	if err := smtp.SendMail(addr, auth, n.cfg.From, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("send contact notification: %w", err)
	}

	nlog.Logger().Info().Str("to", to).Uint("message_id", p.MessageID).Msg("contact notification sent")

	return nil
}

// buildContactMessage 构造通知邮件正文（纯文本）.
func buildContactMessage(from, to string, p queue.ContactReceivedPayload) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("From: Portfolio Contact <%s>\r\n", from))
	b.WriteString(fmt.Sprintf("To: %s\r\n", to))
	b.WriteString(fmt.Sprintf("Subject: Portfolio Contact: %s\r\n", p.Subject))
	b.WriteString(fmt.Sprintf("Reply-To: %s\r\n", p.Email))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString("New contact form submission\r\n\r\n")
	b.WriteString(fmt.Sprintf("Name: %s\r\n", p.Name))
	b.WriteString(fmt.Sprintf("Email: %s\r\n", p.Email))
	b.WriteString(fmt.Sprintf("Subject: %s\r\n", p.Subject))

	if p.IPAddress != "" {
		b.WriteString(fmt.Sprintf("IP: %s\r\n", p.IPAddress))
	}

	b.WriteString(fmt.Sprintf("Received: %s\r\n\r\n", time.Now().UTC().Format(time.RFC3339)))
	b.WriteString("Message:\r\n")
	b.WriteString(p.Message)
	b.WriteString("\r\n")

	return b.String()
}
