package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mshahid/portfolio-server/pkg/configs"
)

// TestIsAllowedExtension 测试扩展名白名单匹配.
func TestIsAllowedExtension(t *testing.T) {
	allowed := []string{".pdf", ".doc", ".docx"}

	cases := []struct {
		ext  string
		want bool
	}{
		{".pdf", true},
		{".PDF", true},
		{".docx", true},
		{".exe", false},
		{"", false},
	}

	for _, tc := range cases {
		if got := isAllowedExtension(strings.ToLower(tc.ext), allowed); got != tc.want {
			t.Errorf("ext %q: expected %v, got %v", tc.ext, tc.want, got)
		}
	}
}

// TestUploadValidation 测试上传前置校验在触达存储之前就拒绝.
func TestUploadValidation(t *testing.T) {
	if err := configs.InitConfig(t.TempDir()); err != nil {
		t.Fatalf("init config: %v", err)
	}

	// 校验在任何存储访问之前完成，零值服务即可触发
	svc := &CVService{}

	if _, err := svc.Upload(context.Background(), &UploadInput{OriginalName: "cv.exe"}); !errors.Is(err, ErrUnsupportedFileType) {
		t.Errorf("expected ErrUnsupportedFileType, got %v", err)
	}

	tooBig := configs.GetConfig().CV.MaxSizeBytes + 1
	if _, err := svc.Upload(context.Background(), &UploadInput{OriginalName: "cv.pdf", Size: tooBig}); !errors.Is(err, ErrFileTooLarge) {
		t.Errorf("expected ErrFileTooLarge, got %v", err)
	}
}

// TestNewULIDOrdering 测试 ULID 单调递增，保证按主键可排序.
func TestNewULIDOrdering(t *testing.T) {
	prev := newULID()

	for i := 0; i < 100; i++ {
		next := newULID()
		if next <= prev {
			t.Fatalf("expected strictly increasing ulids, got %q then %q", prev, next)
		}

		prev = next
	}
}
