package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/mshahid/portfolio-server/pkg/configs"
)

// FallbackAssistant 基于画像数据的关键词回答，永远返回非空内容.
type FallbackAssistant struct {
	profile configs.AIProfileConfig
}

// NewFallbackAssistant 创建关键词回退助手.
func NewFallbackAssistant(profile configs.AIProfileConfig) *FallbackAssistant {
	return &FallbackAssistant{profile: profile}
}

// Generate 实现 Assistant 接口. history 在关键词回答中不参与匹配.
func (f *FallbackAssistant) Generate(ctx context.Context, message, history string) (string, error) {
	p := f.profile
	m := strings.ToLower(message)

	switch {
	case containsAny(m, "hello", "hi", "hey"):
		return fmt.Sprintf("Hello! I'm %s's assistant. I can help you learn about his %s as a %s. What would you like to know?",
			p.Name, p.Experience, p.Role), nil
	case containsAny(m, "experience", "background"):
		return fmt.Sprintf("%s has %s. He's skilled in %s, and more.",
			p.Name, p.Experience, strings.Join(firstN(p.Skills, 3), ", ")), nil
	case containsAny(m, "skills"):
		return fmt.Sprintf("%s's key skills include: %s.", p.Name, strings.Join(p.Skills, ", ")), nil
	case containsAny(m, "education"):
		return fmt.Sprintf("%s holds %s.", p.Name, p.Education), nil
	case containsAny(m, "contact", "reach", "email"):
		if p.Contact != "" {
			return fmt.Sprintf("You can contact %s at %s.", p.Name, p.Contact), nil
		}

		return fmt.Sprintf("You can reach %s through the contact form on this site.", p.Name), nil
	case containsAny(m, "name", "who are you", "who is"):
		return fmt.Sprintf("I'm assisting %s, a %s with expertise in %s.",
			p.Name, p.Role, strings.Join(firstN(p.Skills, 2), " and ")), nil
	default:
		return fmt.Sprintf("I can help with information about %s's profile! Try asking about his experience, skills, education, or contact details.",
			p.Name), nil
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}

	return false
}

func firstN(ss []string, n int) []string {
	if len(ss) <= n {
		return ss
	}

	return ss[:n]
}
