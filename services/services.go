package services

import (
	"github.com/blogem/shopline-auth/repositories"
)

// Services holds all service instances
type Services struct {
	Auth  AuthService
	Audit AuditService
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories) *Services {
	return &Services{
		Auth:  NewAuthService(repos.Staff),
		Audit: NewAuditService(repos.Audit),
	}
}
