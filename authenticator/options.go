package authenticator

import (
	"net/http"

	"go.uber.org/zap"
)

// BaseFactory builds the generic OAuth2 strategy a provider strategy delegates to.
type BaseFactory func(name string, cfg Config, verify Verifier, hooks Hooks, opts ...Option) BaseStrategy

// Option configures a strategy
type Option func(*options)

type options struct {
	httpClient  *http.Client
	requester   Requester
	logger      *zap.Logger
	states      StateStore
	responder   Responder
	baseFactory BaseFactory
}

// WithHTTPClient sets the client used for token exchange and profile calls.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithRequester replaces the HTTP collaborator used for profile calls
func WithRequester(requester Requester) Option {
	return func(o *options) {
		o.requester = requester
	}
}

// WithLogger sets the logger; the default discards everything
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithStateStore replaces the session-backed state store
func WithStateStore(states StateStore) Option {
	return func(o *options) {
		o.states = states
	}
}

// WithResponder sets how authentication outcomes are written to the client
func WithResponder(responder Responder) Option {
	return func(o *options) {
		o.responder = responder
	}
}

// WithBaseFactory replaces the generic OAuth2 strategy a provider strategy wraps.
func WithBaseFactory(factory BaseFactory) Option {
	return func(o *options) {
		o.baseFactory = factory
	}
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	if o.requester == nil {
		o.requester = NewHTTPRequester(o.httpClient)
	}
	if o.baseFactory == nil {
		o.baseFactory = func(name string, cfg Config, verify Verifier, hooks Hooks, opts ...Option) BaseStrategy {
			return NewOAuth2Strategy(name, cfg, verify, hooks, opts...)
		}
	}
	return o
}
