package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/blogem/shopline-auth/authenticator"
	"github.com/blogem/shopline-auth/metrics"
	"github.com/blogem/shopline-auth/models"
	"github.com/blogem/shopline-auth/repositories"
)

var (
	// ErrInvalidStaff is returned when the provider describes a staff record we cannot store
	ErrInvalidStaff = errors.New("invalid staff profile")
	// ErrMissingSubject is returned when OpenID claims carry no subject
	ErrMissingSubject = errors.New("claims carry no subject")
)

// AuthService interface defines the login business logic
type AuthService interface {
	VerifyStaff(ctx context.Context, token *authenticator.Token, profile authenticator.Profile) (*models.Staff, error)
	VerifyClaims(ctx context.Context, token *authenticator.Token, claims authenticator.Profile) (*models.Staff, error)
	GetStaff(ctx context.Context, id string) (*models.Staff, error)
	StaffCount(ctx context.Context) (int, error)
}

// authService implements AuthService interface
type authService struct {
	staffRepo repositories.StaffRepository
}

// NewAuthService creates a new auth service
func NewAuthService(staffRepo repositories.StaffRepository) AuthService {
	return &authService{
		staffRepo: staffRepo,
	}
}

// VerifyStaff turns a merged Shopline profile into a stored staff record
func (s *authService) VerifyStaff(ctx context.Context, _ *authenticator.Token, profile authenticator.Profile) (*models.Staff, error) {
	id, err := profile.StaffID()
	if err != nil {
		return nil, err
	}

	staff := profile.Staff()
	member := &models.Staff{
		ID:         id,
		MerchantID: merchantID(profile),
		Name:       strings.TrimSpace(stringField(staff, "name")),
		Email:      strings.TrimSpace(stringField(staff, "email")),
		Strategy:   authenticator.ShoplineStrategyName,
	}

	return s.store(ctx, member, profile)
}

// VerifyClaims turns verified OpenID claims into a stored staff record
func (s *authService) VerifyClaims(ctx context.Context, _ *authenticator.Token, claims authenticator.Profile) (*models.Staff, error) {
	sub := claims.String("sub")
	if sub == "" {
		return nil, ErrMissingSubject
	}

	// Try to get nickname, fallback to name
	name := claims.String("nickname")
	if name == "" {
		name = claims.String("name")
	}

	member := &models.Staff{
		ID:       sub,
		Name:     strings.TrimSpace(name),
		Email:    strings.TrimSpace(claims.String("email")),
		Strategy: authenticator.OpenIDStrategyName,
	}

	return s.store(ctx, member, claims)
}

// GetStaff retrieves a staff member by ID
func (s *authService) GetStaff(ctx context.Context, id string) (*models.Staff, error) {
	if id == "" {
		return nil, fmt.Errorf("invalid staff ID: %q", id)
	}
	return s.staffRepo.GetByID(ctx, id)
}

// StaffCount returns the number of staff who have signed in
func (s *authService) StaffCount(ctx context.Context) (int, error) {
	return s.staffRepo.Count(ctx)
}

func (s *authService) store(ctx context.Context, member *models.Staff, profile authenticator.Profile) (*models.Staff, error) {
	if errs := member.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStaff, strings.Join(errs, ", "))
	}

	raw, err := json.Marshal(profile)
	if err != nil {
		return nil, fmt.Errorf("failed to encode profile: %w", err)
	}
	member.Profile = string(raw)

	if err := s.staffRepo.Upsert(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to save staff: %w", err)
	}

	metrics.StaffLogins.Inc()
	return member, nil
}

// merchantID looks in the places Shopline reports the merchant, most specific first
func merchantID(profile authenticator.Profile) string {
	if id := profile.String("merchant_id"); id != "" {
		return id
	}
	if id := stringField(profile.Staff(), "merchant_id"); id != "" {
		return id
	}
	if merchant, ok := profile["merchant"].(map[string]interface{}); ok {
		return stringField(merchant, "_id")
	}
	return ""
}

func stringField(m map[string]interface{}, key string) string {
	s, _ := m[key].(string)
	return s
}

// Verifier adapts a staff verification function to the strategy callback.
// A nil staff with no error rejects the login.
func Verifier(fn func(ctx context.Context, token *authenticator.Token, profile authenticator.Profile) (*models.Staff, error)) authenticator.Verifier {
	return authenticator.Verify(func(ctx context.Context, token *authenticator.Token, profile authenticator.Profile) (any, error) {
		staff, err := fn(ctx, token, profile)
		if err != nil || staff == nil {
			return nil, err
		}
		return staff, nil
	})
}
