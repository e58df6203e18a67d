package ai_test

import (
	"context"
	"strings"
	"testing"

	"github.com/mshahid/portfolio-server/pkg/ai"
	"github.com/mshahid/portfolio-server/pkg/configs"
)

func testProfile() configs.AIProfileConfig {
	return configs.AIProfileConfig{
		Name:       "Muhammad",
		Role:       "software engineer",
		Experience: "5 years of backend experience",
		Skills:     []string{"Go", "PostgreSQL", "Docker", "Kubernetes"},
		Education:  "a BSc in Computer Science",
		Contact:    "muhammad@example.com",
	}
}

// TestFallbackKeywordRouting 测试关键词路由到对应的画像回答.
func TestFallbackKeywordRouting(t *testing.T) {
	f := ai.NewFallbackAssistant(testProfile())
	ctx := context.Background()

	cases := []struct {
		message string
		expect  string
	}{
		{"Hello there!", "Hello!"},
		{"Tell me about your experience", "5 years"},
		{"what skills do you have", "Go"},
		{"education?", "BSc"},
		{"How can I contact you", "muhammad@example.com"},
		{"who are you", "software engineer"},
		{"asdf qwerty", "profile"},
	}

	for _, tc := range cases {
		reply, err := f.Generate(ctx, tc.message, "")
		if err != nil {
			t.Fatalf("generate %q: %v", tc.message, err)
		}

		if reply == "" {
			t.Fatalf("empty reply for %q", tc.message)
		}

		if !strings.Contains(reply, tc.expect) {
			t.Errorf("message %q: expected reply to contain %q, got %q", tc.message, tc.expect, reply)
		}
	}
}

// TestCompositeFallsBack 测试远端未配置时组合助手直接走回退.
func TestCompositeFallsBack(t *testing.T) {
	cfg := configs.AIConfig{Profile: testProfile()}

	c := ai.NewComposite(cfg)

	reply, err := c.Generate(context.Background(), "hello", "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if reply == "" {
		t.Error("expected non-empty reply")
	}
}
