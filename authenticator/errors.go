package authenticator

import (
	"errors"
	"fmt"
)

var (
	ErrMissingStaffID = errors.New("token info response has no staff._id")
	ErrRequestFailed  = errors.New("provider request failed")
	ErrDecodeFailed   = errors.New("failed to decode provider response")
	ErrInvalidState   = errors.New("invalid oauth2 state")
	ErrNoSession      = errors.New("no session attached to request")
	ErrProfileFetch   = errors.New("failed to fetch user profile")
	ErrUnauthorized   = errors.New("authentication rejected")
	ErrNoVerifier     = errors.New("no verification callback configured")
	ErrMissingIDToken = errors.New("no id_token in token")
)

// AuthorizationError is reported when the provider redirects back with an error
type AuthorizationError struct {
	Code        string
	Description string
	URI         string
}

func (e *AuthorizationError) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("authorization failed: %s: %s", e.Code, e.Description)
	}
	return "authorization failed: " + e.Code
}
