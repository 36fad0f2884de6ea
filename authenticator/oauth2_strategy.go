package authenticator

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// OAuth2Strategy drives the authorization-code flow for a single provider.
// Provider strategies wrap it and customise it through Hooks.
type OAuth2Strategy struct {
	name       string
	config     Config
	oauth2     *oauth2.Config
	verify     Verifier
	hooks      Hooks
	states     StateStore
	responder  Responder
	httpClient *http.Client
	log        *zap.Logger
}

var _ BaseStrategy = (*OAuth2Strategy)(nil)

// NewOAuth2Strategy creates a generic OAuth2 strategy registered under name
func NewOAuth2Strategy(name string, cfg Config, verify Verifier, hooks Hooks, opts ...Option) *OAuth2Strategy {
	o := newOptions(opts)

	states := o.states
	if states == nil {
		states = NewSessionStateStore(name)
	}
	responder := o.responder
	if responder == nil {
		responder = defaultResponder{}
	}

	// Scopes are joined by hand so the provider's separator can be honoured.
	conf := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.CallbackURL,
		Endpoint: oauth2.Endpoint{
			AuthURL:  cfg.AuthorizationURL,
			TokenURL: cfg.TokenURL,
		},
	}

	return &OAuth2Strategy{
		name:       name,
		config:     cfg,
		oauth2:     conf,
		verify:     verify,
		hooks:      hooks,
		states:     states,
		responder:  responder,
		httpClient: o.httpClient,
		log:        o.logger.With(zap.String("strategy", name)),
	}
}

// Name returns the strategy identifier
func (s *OAuth2Strategy) Name() string {
	return s.name
}

// Config returns the configuration the strategy was built with
func (s *OAuth2Strategy) Config() Config {
	return s.config
}

// AuthorizationParams returns the base strategy's extra authorization parameters
func (s *OAuth2Strategy) AuthorizationParams(_ Options) Params {
	return Params{}
}

// Authenticate redirects to the provider, or completes the flow when the
// request is the provider's callback.
func (s *OAuth2Strategy) Authenticate(w http.ResponseWriter, r *http.Request, opts Options) {
	q := r.URL.Query()

	if code := q.Get("error"); code != "" {
		err := &AuthorizationError{
			Code:        code,
			Description: q.Get("error_description"),
			URI:         q.Get("error_uri"),
		}
		s.log.Info("provider denied authorization", zap.Error(err))
		s.responder.Fail(w, r, err)
		return
	}

	code := q.Get("code")
	if code == "" {
		s.redirect(w, r, opts)
		return
	}
	s.callback(w, r, code, opts)
}

func (s *OAuth2Strategy) redirect(w http.ResponseWriter, r *http.Request, opts Options) {
	state, err := s.states.Issue(w, r)
	if err != nil {
		s.log.Error("failed to issue state", zap.Error(err))
		s.responder.Error(w, r, fmt.Errorf("issue state: %w", err))
		return
	}

	params := s.AuthorizationParams(opts)
	if s.hooks.AuthorizationParams != nil {
		params = s.hooks.AuthorizationParams(opts)
	}

	authOpts := make([]oauth2.AuthCodeOption, 0, len(params)+2)
	for key, value := range params {
		authOpts = append(authOpts, oauth2.SetAuthURLParam(key, value))
	}
	if scope := s.scope(opts); scope != "" {
		authOpts = append(authOpts, oauth2.SetAuthURLParam("scope", scope))
	}
	if callback := opts.override("callbackURL"); callback != "" {
		authOpts = append(authOpts, oauth2.SetAuthURLParam("redirect_uri", callback))
	}

	location := s.oauth2.AuthCodeURL(state, authOpts...)
	s.log.Debug("redirecting to provider", zap.String("location", location))
	http.Redirect(w, r, location, http.StatusFound)
}

func (s *OAuth2Strategy) callback(w http.ResponseWriter, r *http.Request, code string, opts Options) {
	if err := s.states.Verify(w, r, r.URL.Query().Get("state")); err != nil {
		s.log.Warn("state verification failed", zap.Error(err))
		s.responder.Fail(w, r, err)
		return
	}

	ctx := r.Context()
	if s.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, s.httpClient)
	}

	var exchangeOpts []oauth2.AuthCodeOption
	if callback := opts.override("callbackURL"); callback != "" {
		exchangeOpts = append(exchangeOpts, oauth2.SetAuthURLParam("redirect_uri", callback))
	}

	oauth2Token, err := s.oauth2.Exchange(ctx, code, exchangeOpts...)
	if err != nil {
		s.log.Warn("code exchange failed", zap.Error(err))
		s.responder.Error(w, r, fmt.Errorf("failed to obtain access token: %w", err))
		return
	}
	token := convertToken(oauth2Token)

	profile, err := s.loadProfile(ctx, token)
	if err != nil {
		s.log.Warn("profile lookup failed", zap.Error(err))
		s.responder.Error(w, r, fmt.Errorf("%w: %w", ErrProfileFetch, err))
		return
	}

	user, err := s.verify.call(r, token, profile)
	if err != nil {
		s.log.Error("verification callback failed", zap.Error(err))
		s.responder.Error(w, r, err)
		return
	}
	if user == nil {
		s.responder.Fail(w, r, ErrUnauthorized)
		return
	}
	s.responder.Success(w, r, user)
}

func (s *OAuth2Strategy) loadProfile(ctx context.Context, token *Token) (Profile, error) {
	if s.hooks.UserProfile == nil {
		return Profile{}, nil
	}
	var (
		profile Profile
		perr    error
	)
	s.hooks.UserProfile(ctx, token, func(err error, p Profile) {
		profile, perr = p, err
	})
	return profile, perr
}

func (s *OAuth2Strategy) scope(opts Options) string {
	sep := s.config.ScopeSeparator
	if sep == "" {
		sep = " "
	}
	if raw := opts.override("scope"); raw != "" {
		return strings.Join(splitScopes(raw), sep)
	}
	return strings.Join(s.config.Scopes, sep)
}

func splitScopes(raw string) []string {
	return strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' '
	})
}

func convertToken(t *oauth2.Token) *Token {
	token := &Token{
		AccessToken:  t.AccessToken,
		RefreshToken: t.RefreshToken,
	}
	if !t.Expiry.IsZero() {
		token.Expiry = t.Expiry.Unix()
	}
	if idToken, ok := t.Extra("id_token").(string); ok {
		token.IDToken = idToken
	}
	return token
}

// defaultResponder redirects home on success and reports failures as plain text.
type defaultResponder struct{}

func (defaultResponder) Success(w http.ResponseWriter, r *http.Request, _ any) {
	http.Redirect(w, r, "/", http.StatusFound)
}

func (defaultResponder) Fail(w http.ResponseWriter, _ *http.Request, err error) {
	http.Error(w, err.Error(), http.StatusUnauthorized)
}

func (defaultResponder) Error(w http.ResponseWriter, _ *http.Request, err error) {
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
