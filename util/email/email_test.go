package email

import (
	"strings"
	"testing"
)

func TestRenderVerifyEmail(t *testing.T) {
	subject, body, err := render("verifyEmail.tmpl", map[string]interface{}{
		"Name": "Asha",
		"Code": "4821",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if subject != "Your YatraSetGo verification code" {
		t.Errorf("subject = %q", subject)
	}
	if !strings.Contains(body, "4821") {
		t.Errorf("body missing code: %q", body)
	}
	if !strings.Contains(body, "Asha") {
		t.Errorf("body missing name: %q", body)
	}
}

func TestRenderResetPassword(t *testing.T) {
	subject, body, err := render("resetPassword.tmpl", map[string]interface{}{
		"Code": "9163",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if subject != "Reset your YatraSetGo password" {
		t.Errorf("subject = %q", subject)
	}
	if !strings.Contains(body, "9163") {
		t.Errorf("body missing code: %q", body)
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	if _, _, err := render("noSuchTemplate.tmpl", nil); err == nil {
		t.Error("expected error for missing template, got nil")
	}
}
