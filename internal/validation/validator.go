package validation

import (
	"regexp"
	"strings"

	"fwsr-hub/internal/domain"
)

const maxChatMessageLength = 4000

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateRegisterRequest validates email/password registration input.
func (v *Validator) ValidateRegisterRequest(email, password string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(email) == "" {
		errors = append(errors, domain.NewMissingFieldError("email"))
	} else if !isValidEmail(email) {
		errors = append(errors, domain.NewInvalidFormatError("email", email))
	}

	if password == "" {
		errors = append(errors, domain.NewMissingFieldError("password"))
	} else if len(password) < 6 || len(password) > 72 {
		errors = append(errors, domain.NewOutOfRangeError("password", len(password), 6, 72))
	}

	return errors
}

// ValidateChatMessage validates a workroom message before it is appended.
func (v *Validator) ValidateChatMessage(content string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(content) == "" {
		errors = append(errors, domain.NewMissingFieldError("content"))
	} else if len(content) > maxChatMessageLength {
		errors = append(errors, domain.NewOutOfRangeError("content", len(content), 1, maxChatMessageLength))
	}

	return errors
}

// ValidatePillarID validates a pillar path parameter.
func (v *Validator) ValidatePillarID(pillarID string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(pillarID) == "" {
		errors = append(errors, domain.NewMissingFieldError("pillar_id"))
	} else if !isValidPillarID(pillarID) {
		errors = append(errors, domain.NewInvalidFormatError("pillar_id", pillarID))
	}

	return errors
}

// Helper functions for validation

// isValidEmail checks a minimal email shape, full verification is out of scope.
func isValidEmail(s string) bool {
	if len(s) > 255 {
		return false
	}
	validEmail := regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	return validEmail.MatchString(s)
}

// isValidPillarID checks the two-digit pillar id format ("01".."19").
func isValidPillarID(s string) bool {
	validPillarID := regexp.MustCompile(`^[0-9]{2}$`)
	return validPillarID.MatchString(s)
}
