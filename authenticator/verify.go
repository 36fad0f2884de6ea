package authenticator

import (
	"context"
	"net/http"
)

// VerifyFunc decides whether a resolved profile is accepted. Returning a nil
// user with a nil error rejects the attempt.
type VerifyFunc func(ctx context.Context, token *Token, profile Profile) (any, error)

// VerifyWithRequestFunc is a VerifyFunc that also sees the inbound callback request.
type VerifyWithRequestFunc func(r *http.Request, token *Token, profile Profile) (any, error)

// Verifier holds exactly one of the two verification callback shapes
type Verifier struct {
	plain       VerifyFunc
	withRequest VerifyWithRequestFunc
}

// Verify wraps a request-unaware verification callback
func Verify(fn VerifyFunc) Verifier {
	return Verifier{plain: fn}
}

// VerifyWithRequest wraps a request-aware verification callback
func VerifyWithRequest(fn VerifyWithRequestFunc) Verifier {
	return Verifier{withRequest: fn}
}

// PassesRequest reports whether the callback receives the request
func (v Verifier) PassesRequest() bool {
	return v.withRequest != nil
}

func (v Verifier) call(r *http.Request, token *Token, profile Profile) (any, error) {
	switch {
	case v.PassesRequest():
		return v.withRequest(r, token, profile)
	case v.plain != nil:
		return v.plain(r.Context(), token, profile)
	default:
		return nil, ErrNoVerifier
	}
}
