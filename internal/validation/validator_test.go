package validation

import (
	"strings"
	"testing"
)

func TestValidateRegisterRequest(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name      string
		email     string
		password  string
		wantCount int
	}{
		{"valid", "brand@example.com", "s3cret", 0},
		{"missing email", "", "s3cret", 1},
		{"bad email", "not-an-email", "s3cret", 1},
		{"missing password", "brand@example.com", "", 1},
		{"short password", "brand@example.com", "abc", 1},
		{"long password", "brand@example.com", strings.Repeat("x", 73), 1},
		{"both invalid", "nope", "a", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := v.ValidateRegisterRequest(tt.email, tt.password)
			if len(errs) != tt.wantCount {
				t.Errorf("got %d errors, want %d: %v", len(errs), tt.wantCount, errs)
			}
		})
	}
}

func TestValidateChatMessage(t *testing.T) {
	v := NewValidator()

	if errs := v.ValidateChatMessage("Draft my Social CoC"); len(errs) != 0 {
		t.Errorf("valid message rejected: %v", errs)
	}
	if errs := v.ValidateChatMessage("   "); len(errs) == 0 {
		t.Error("whitespace-only message accepted")
	}
	if errs := v.ValidateChatMessage(strings.Repeat("x", maxChatMessageLength+1)); len(errs) == 0 {
		t.Error("oversized message accepted")
	}
}

func TestValidatePillarID(t *testing.T) {
	v := NewValidator()

	valid := []string{"01", "09", "19"}
	for _, id := range valid {
		if errs := v.ValidatePillarID(id); len(errs) != 0 {
			t.Errorf("id %q rejected: %v", id, errs)
		}
	}

	invalid := []string{"", "1", "001", "ab", "1a"}
	for _, id := range invalid {
		if errs := v.ValidatePillarID(id); len(errs) == 0 {
			t.Errorf("id %q accepted", id)
		}
	}
}
