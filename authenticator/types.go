package authenticator

import (
	"context"
	"net/http"
)

// Config holds the generic OAuth2 client configuration shared by all strategies
type Config struct {
	AuthorizationURL string
	TokenURL         string
	ClientID         string
	ClientSecret     string
	CallbackURL      string
	Scopes           []string
	ScopeSeparator   string
}

// Token represents an authentication token
type Token struct {
	AccessToken  string
	RefreshToken string
	IDToken      string
	Expiry       int64
}

// Overrides are caller-supplied options for a single authentication attempt.
// Recognised keys: "scope" and "callbackURL".
type Overrides map[string]string

// Options is the per-request option bag handed from a strategy to its base.
type Options struct {
	Overrides Overrides
	ReqQuery  map[string]string
}

// Params are extra query parameters added to the authorization redirect
type Params map[string]string

// ProfileDone receives the outcome of a profile lookup. It is called exactly once.
type ProfileDone func(err error, profile Profile)

// Strategy is what the host application dispatches authentication requests to
type Strategy interface {
	Name() string
	Authenticate(w http.ResponseWriter, r *http.Request, overrides Overrides)
}

// BaseStrategy is the generic OAuth2 capability a provider strategy wraps.
type BaseStrategy interface {
	Name() string
	Authenticate(w http.ResponseWriter, r *http.Request, opts Options)
	AuthorizationParams(opts Options) Params
}

// Hooks are the touchpoints a provider strategy customises on the base flow
type Hooks struct {
	AuthorizationParams func(opts Options) Params
	UserProfile         func(ctx context.Context, token *Token, done ProfileDone)
}

// Responder delivers the outcome of an authentication attempt to the host
type Responder interface {
	Success(w http.ResponseWriter, r *http.Request, user any)
	Fail(w http.ResponseWriter, r *http.Request, err error)
	Error(w http.ResponseWriter, r *http.Request, err error)
}

// StateStore issues and checks the OAuth2 state parameter
type StateStore interface {
	Issue(w http.ResponseWriter, r *http.Request) (string, error)
	Verify(w http.ResponseWriter, r *http.Request, state string) error
}

// queryOf flattens the request query string, keeping the first value of each key.
func queryOf(r *http.Request) map[string]string {
	values := r.URL.Query()
	query := make(map[string]string, len(values))
	for key, vals := range values {
		if len(vals) > 0 {
			query[key] = vals[0]
		}
	}
	return query
}

func (o Options) override(key string) string {
	if o.Overrides == nil {
		return ""
	}
	return o.Overrides[key]
}
