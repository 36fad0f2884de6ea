package models

import (
	"time"
)

// Staff is a merchant staff member who has signed in at least once
type Staff struct {
	ID           string    `json:"id" db:"id"`
	MerchantID   string    `json:"merchant_id,omitempty" db:"merchant_id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email,omitempty" db:"email"`
	Strategy     string    `json:"strategy" db:"strategy"`
	Profile      string    `json:"-" db:"profile"`
	FirstLoginAt time.Time `json:"first_login_at" db:"first_login_at"`
	LastLoginAt  time.Time `json:"last_login_at" db:"last_login_at"`
	LoginCount   int       `json:"login_count" db:"login_count"`
}

// DisplayName returns the best human-readable name for the staff member
func (s *Staff) DisplayName() string {
	if s.Name != "" {
		return s.Name
	}
	if s.Email != "" {
		return s.Email
	}
	return s.ID
}

// Validate validates a staff record before it is stored
func (s *Staff) Validate() []string {
	var errors []string

	if s.ID == "" {
		errors = append(errors, "Staff ID is required")
	}

	if s.Strategy == "" {
		errors = append(errors, "Strategy is required")
	}

	if len(s.Name) > 255 {
		errors = append(errors, "Name must be less than 255 characters")
	}

	if s.Email != "" && len(s.Email) > 255 {
		errors = append(errors, "Email must be less than 255 characters")
	}

	if s.Email != "" && !isValidEmail(s.Email) {
		errors = append(errors, "Email format is invalid")
	}

	return errors
}

// isValidEmail performs basic email validation
func isValidEmail(email string) bool {
	// Simple validation: must contain @ and at least one dot after @
	atIndex := -1
	for i, char := range email {
		if char == '@' {
			if atIndex != -1 {
				return false // Multiple @ symbols
			}
			atIndex = i
		}
	}

	if atIndex == -1 || atIndex == 0 || atIndex == len(email)-1 {
		return false // No @, or @ at start/end
	}

	// Check for dot after @
	for i := atIndex + 1; i < len(email); i++ {
		if email[i] == '.' && i < len(email)-1 {
			return true
		}
	}

	return false
}
