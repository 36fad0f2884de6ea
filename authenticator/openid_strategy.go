package authenticator

import (
	"context"
	"errors"
	"net/http"

	"github.com/coreos/go-oidc/v3/oidc"
	"go.uber.org/zap"
)

// OpenIDStrategyName is the identifier of the OpenID Connect strategy
const OpenIDStrategyName = "openid"

// OpenIDStrategy authenticates users against an OpenID Connect provider
type OpenIDStrategy struct {
	base     BaseStrategy
	verifier *oidc.IDTokenVerifier
	log      *zap.Logger
}

// OpenIDConfig holds OpenID Connect configuration
type OpenIDConfig struct {
	Issuer       string
	ClientID     string
	ClientSecret string
	CallbackURL  string
	Scopes       []string
}

var _ Strategy = (*OpenIDStrategy)(nil)

// NewOpenIDStrategy discovers the provider at cfg.Issuer and creates the strategy
func NewOpenIDStrategy(ctx context.Context, cfg OpenIDConfig, verify Verifier, opts ...Option) (*OpenIDStrategy, error) {
	// Validate required configuration
	if cfg.Issuer == "" {
		return nil, errors.New("issuer is required")
	}
	if cfg.ClientID == "" {
		return nil, errors.New("client ID is required")
	}
	if cfg.ClientSecret == "" {
		return nil, errors.New("client secret is required")
	}
	if cfg.CallbackURL == "" {
		return nil, errors.New("callback URL is required")
	}

	o := newOptions(opts)
	if o.httpClient != nil {
		ctx = oidc.ClientContext(ctx, o.httpClient)
	}

	provider, err := oidc.NewProvider(ctx, cfg.Issuer)
	if err != nil {
		return nil, err
	}

	endpoint := provider.Endpoint()
	s := &OpenIDStrategy{
		verifier: provider.Verifier(&oidc.Config{ClientID: cfg.ClientID}),
		log:      o.logger.With(zap.String("strategy", OpenIDStrategyName)),
	}
	s.base = o.baseFactory(OpenIDStrategyName, Config{
		AuthorizationURL: endpoint.AuthURL,
		TokenURL:         endpoint.TokenURL,
		ClientID:         cfg.ClientID,
		ClientSecret:     cfg.ClientSecret,
		CallbackURL:      cfg.CallbackURL,
		Scopes:           openIDScopes(cfg.Scopes),
		ScopeSeparator:   " ",
	}, verify, Hooks{UserProfile: s.userProfile}, opts...)

	return s, nil
}

// Name returns the strategy identifier
func (s *OpenIDStrategy) Name() string {
	return OpenIDStrategyName
}

// Authenticate runs the authorization-code flow
func (s *OpenIDStrategy) Authenticate(w http.ResponseWriter, r *http.Request, overrides Overrides) {
	s.base.Authenticate(w, r, Options{
		Overrides: overrides,
		ReqQuery:  queryOf(r),
	})
}

// userProfile extracts the claims of the verified ID token
func (s *OpenIDStrategy) userProfile(ctx context.Context, token *Token, done ProfileDone) {
	if token.IDToken == "" {
		done(ErrMissingIDToken, nil)
		return
	}

	idToken, err := s.verifier.Verify(ctx, token.IDToken)
	if err != nil {
		done(err, nil)
		return
	}

	var claims Profile
	if err := idToken.Claims(&claims); err != nil {
		done(err, nil)
		return
	}
	done(nil, claims)
}

func openIDScopes(scopes []string) []string {
	normalized := []string{oidc.ScopeOpenID, "profile"}
	for _, scope := range scopes {
		if scope == "" || scope == oidc.ScopeOpenID || scope == "profile" {
			continue
		}
		normalized = append(normalized, scope)
	}
	return normalized
}
