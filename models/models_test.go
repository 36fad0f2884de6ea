package models

import (
	"strings"
	"testing"
)

// Test Staff validation
func TestStaffValidation(t *testing.T) {
	// Test valid staff
	valid := Staff{
		ID:       "staff-id",
		Strategy: "shopline",
		Name:     "Jane Doe",
		Email:    "jane@example.com",
	}
	errors := valid.Validate()
	if len(errors) != 0 {
		t.Errorf("Expected no errors for valid staff, got: %v", errors)
	}

	// Test invalid staff
	invalid := Staff{
		ID:    "", // Empty ID
		Email: "invalid-email",
	}
	errors = invalid.Validate()
	if len(errors) != 3 {
		t.Errorf("Expected 3 errors for invalid staff, got: %v", errors)
	}

	long := Staff{ID: "x", Strategy: "shopline", Name: strings.Repeat("a", 256)}
	if errors := long.Validate(); len(errors) != 1 {
		t.Errorf("Expected 1 error for long name, got: %v", errors)
	}
}

// Test email validation
func TestIsValidEmail(t *testing.T) {
	validEmails := []string{"a@b.co", "staff.member@shop.example.com"}
	for _, email := range validEmails {
		if !isValidEmail(email) {
			t.Errorf("Expected %s to be valid", email)
		}
	}

	invalidEmails := []string{"", "plain", "@example.com", "a@", "a@b@c.com", "a@example."}
	for _, email := range invalidEmails {
		if isValidEmail(email) {
			t.Errorf("Expected %s to be invalid", email)
		}
	}
}

// Test display name fallbacks
func TestStaffDisplayName(t *testing.T) {
	tests := []struct {
		staff Staff
		want  string
	}{
		{Staff{ID: "id", Name: "Name", Email: "e@x.io"}, "Name"},
		{Staff{ID: "id", Email: "e@x.io"}, "e@x.io"},
		{Staff{ID: "id"}, "id"},
	}
	for _, tt := range tests {
		if got := tt.staff.DisplayName(); got != tt.want {
			t.Errorf("Expected display name %s, got %s", tt.want, got)
		}
	}
}
