package authenticator

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

const (
	// ShoplineStrategyName is the identifier the host dispatches Shopline logins to.
	ShoplineStrategyName = "shopline"

	ShoplineAuthorizationURL = "https://developers.shoplineapp.com/oauth/authorize"
	ShoplineTokenURL         = "https://developers.shoplineapp.com/oauth/token"
	ShoplineStaffURL         = "https://open.shoplineapp.com/v1/staffs/:staffId"

	staffIDPlaceholder    = ":staffId"
	merchantIDParam       = "merchant_id"
	defaultScopeSeparator = " "
)

// ShoplineConfig holds Shopline-specific configuration
type ShoplineConfig struct {
	Config

	// StaffURL is the staff lookup endpoint; ":staffId" is replaced with the
	// staff identifier returned by token introspection.
	StaffURL string
}

// ShoplineStrategy authenticates Shopline merchant staff
type ShoplineStrategy struct {
	base         BaseStrategy
	requester    Requester
	tokenInfoURL string
	staffURL     string
	log          *zap.Logger
}

var _ Strategy = (*ShoplineStrategy)(nil)

// NewShoplineStrategy creates a Shopline strategy. Endpoints and the scope
// separator left empty in cfg take Shopline's defaults.
func NewShoplineStrategy(cfg ShoplineConfig, verify Verifier, opts ...Option) *ShoplineStrategy {
	o := newOptions(opts)

	base := cfg.Config
	if base.AuthorizationURL == "" {
		base.AuthorizationURL = ShoplineAuthorizationURL
	}
	if base.TokenURL == "" {
		base.TokenURL = ShoplineTokenURL
	}
	if base.ScopeSeparator == "" {
		base.ScopeSeparator = defaultScopeSeparator
	}

	staffURL := cfg.StaffURL
	if staffURL == "" {
		staffURL = ShoplineStaffURL
	}

	s := &ShoplineStrategy{
		requester:    o.requester,
		tokenInfoURL: base.TokenURL + "/info",
		staffURL:     staffURL,
		log:          o.logger.With(zap.String("strategy", ShoplineStrategyName)),
	}
	s.base = o.baseFactory(ShoplineStrategyName, base, verify, Hooks{
		AuthorizationParams: s.AuthorizationParams,
		UserProfile: func(ctx context.Context, token *Token, done ProfileDone) {
			s.UserProfile(ctx, token.AccessToken, done)
		},
	}, opts...)

	return s
}

// Name returns the strategy identifier
func (s *ShoplineStrategy) Name() string {
	return ShoplineStrategyName
}

// TokenInfoURL returns the token introspection endpoint
func (s *ShoplineStrategy) TokenInfoURL() string {
	return s.tokenInfoURL
}

// StaffURL returns the staff lookup endpoint template
func (s *ShoplineStrategy) StaffURL() string {
	return s.staffURL
}

// Authenticate hands the request to the base flow together with its query
// string, so the merchant can be forwarded to the authorization endpoint.
func (s *ShoplineStrategy) Authenticate(w http.ResponseWriter, r *http.Request, overrides Overrides) {
	s.base.Authenticate(w, r, Options{
		Overrides: overrides,
		ReqQuery:  queryOf(r),
	})
}

// AuthorizationParams adds merchant_id from the inbound request to the base parameters
func (s *ShoplineStrategy) AuthorizationParams(opts Options) Params {
	base := s.base.AuthorizationParams(opts)

	params := make(Params, len(base)+1)
	for key, value := range base {
		params[key] = value
	}
	if merchantID, ok := opts.ReqQuery[merchantIDParam]; ok {
		params[merchantIDParam] = merchantID
	} else {
		delete(params, merchantIDParam)
	}
	return params
}

// UserProfile resolves the staff behind accessToken: token introspection
// first, then a staff lookup by the returned staff._id. done is called once.
func (s *ShoplineStrategy) UserProfile(ctx context.Context, accessToken string, done ProfileDone) {
	profile, err := s.fetchProfile(ctx, accessToken)
	if err != nil {
		done(err, nil)
		return
	}
	done(nil, profile)
}

func (s *ShoplineStrategy) fetchProfile(ctx context.Context, accessToken string) (Profile, error) {
	headers := map[string]string{
		"accept":        "application/json",
		"Authorization": "Bearer " + accessToken,
	}

	s.log.Debug("fetching token info", zap.String("url", s.tokenInfoURL))
	tokenInfo, err := s.requester.Do(ctx, Request{
		Method:  http.MethodGet,
		URL:     s.tokenInfoURL,
		Headers: headers,
	})
	if err != nil {
		return nil, err
	}

	info := Profile(tokenInfo.data())
	staffID, err := info.StaffID()
	if err != nil {
		return nil, err
	}

	staffURL := strings.Replace(s.staffURL, staffIDPlaceholder, staffID, 1)
	s.log.Debug("fetching staff", zap.String("url", staffURL))
	staff, err := s.requester.Do(ctx, Request{
		Method:  http.MethodGet,
		URL:     staffURL,
		Headers: headers,
	})
	if err != nil {
		return nil, err
	}

	return info.merge(staff.data()), nil
}
