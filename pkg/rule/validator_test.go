package rule_test

import (
	"testing"

	"github.com/go-playground/validator/v10"

	"github.com/mshahid/portfolio-server/pkg/rule"
)

// contactForm 用于测试 ValidateStruct 的示例结构体.
type contactForm struct {
	Name    string `rule:"required,max=100"`
	Email   string `rule:"required,email"`
	Message string `rule:"required,min=10"`
}

// TestEngine 测试 Engine 函数返回非 nil 实例.
func TestEngine(t *testing.T) {
	engine := rule.Engine()
	if engine == nil {
		t.Error("Engine() returned nil")
	}
}

// TestValidateStruct 测试 ValidateStruct 对有效和无效结构体的验证.
func TestValidateStruct(t *testing.T) {
	valid := contactForm{Name: "Jane", Email: "jane@example.com", Message: "long enough message"}
	if err := rule.ValidateStruct(valid); err != nil {
		t.Errorf("expected no error for valid struct, got %v", err)
	}

	// 缺少 Name
	if err := rule.ValidateStruct(contactForm{Email: "jane@example.com", Message: "long enough message"}); err == nil {
		t.Error("expected error for missing name, got nil")
	}

	// 非法邮箱
	if err := rule.ValidateStruct(contactForm{Name: "Jane", Email: "not-an-email", Message: "long enough message"}); err == nil {
		t.Error("expected error for invalid email, got nil")
	}

	// 消息过短
	if err := rule.ValidateStruct(contactForm{Name: "Jane", Email: "jane@example.com", Message: "short"}); err == nil {
		t.Error("expected error for short message, got nil")
	}
}

// TestValidateVar 测试 ValidateVar 对变量的验证.
func TestValidateVar(t *testing.T) {
	if err := rule.ValidateVar("test@example.com", "required,email"); err != nil {
		t.Errorf("expected no error for valid email, got %v", err)
	}

	if err := rule.ValidateVar("invalid-email", "required,email"); err == nil {
		t.Error("expected error for invalid email, got nil")
	}

	if err := rule.ValidateVar(25, "gte=18"); err != nil {
		t.Errorf("expected no error for valid number, got %v", err)
	}

	if err := rule.ValidateVar(15, "gte=18"); err == nil {
		t.Error("expected error for invalid number, got nil")
	}
}

// TestRegisterValidation 测试注册自定义验证.
func TestRegisterValidation(t *testing.T) {
	err := rule.RegisterValidation("page_name", func(fl validator.FieldLevel) bool {
		s, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}

		for _, p := range []string{"home", "about", "portfolio", "contact", "resume"} {
			if s == p {
				return true
			}
		}

		return false
	})
	if err != nil {
		t.Fatalf("failed to register validation: %v", err)
	}

	if err := rule.ValidateVar("home", "page_name"); err != nil {
		t.Errorf("expected no error for known page, got %v", err)
	}

	if err := rule.ValidateVar("secret", "page_name"); err == nil {
		t.Error("expected error for unknown page, got nil")
	}
}

// TestRegisterAlias 测试注册别名.
func TestRegisterAlias(t *testing.T) {
	rule.RegisterAlias("subject_rule", "required,max=200")

	if err := rule.ValidateVar("Hello", "subject_rule"); err != nil {
		t.Errorf("expected no error for valid subject, got %v", err)
	}

	if err := rule.ValidateVar("", "subject_rule"); err == nil {
		t.Error("expected error for empty subject, got nil")
	}
}
