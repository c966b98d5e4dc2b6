package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"cleanenergy-leads/internal/adapters/persistence/models"
	"cleanenergy-leads/internal/adapters/persistence/repositories"
	"cleanenergy-leads/internal/config"
	"cleanenergy-leads/internal/core/domain"
	"cleanenergy-leads/internal/pkg/jwt"
	"cleanenergy-leads/internal/pkg/password"

	"gorm.io/gorm"
)

// Auth errors
var (
	ErrInvalidCredentials = domain.ErrInvalidCredentials
	ErrAdminAlreadyExists = domain.ErrAdminAlreadyExists
)

// AuthService handles admin authentication business logic
type AuthService struct {
	adminRepo repositories.AdminRepository
	cfg       *config.Config

	dummyOnce sync.Once
	dummyHash string
}

// NewAuthService creates a new auth service
func NewAuthService(adminRepo repositories.AdminRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		adminRepo: adminRepo,
		cfg:       cfg,
	}
}

// LoginInput represents login input
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ProvisionAdminInput represents admin creation input
type ProvisionAdminInput struct {
	Email    string `json:"email" validate:"required,email,max=191"`
	Password string `json:"password" validate:"required,max=72"`
}

// LoginResult is returned on successful login
type LoginResult struct {
	Token string `json:"token"`
}

// Login checks admin credentials and issues a signed access token.
// Unknown email and wrong password both yield ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginResult, error) {
	input.Email = strings.TrimSpace(input.Email)
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	// 1. Find admin by email
	admin, err := s.adminRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Spend the same bcrypt work as a real comparison
			password.Verify(input.Password, s.fallbackHash())
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	// 2. Verify password
	if !password.Verify(input.Password, admin.Password) {
		return nil, ErrInvalidCredentials
	}

	// 3. Sign token
	token, err := jwt.GenerateAccessToken(admin.ID, admin.Email, s.cfg.JWT.Secret, s.cfg.TokenTTL())
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Admin logged in: %s", admin.Email)

	return &LoginResult{Token: token}, nil
}

// Verify validates a bearer token. Any failure (malformed, forged, expired)
// is reported as ok == false; the cause only goes to the log.
func (s *AuthService) Verify(token string) (*domain.AuthPayload, bool) {
	if token == "" {
		return nil, false
	}

	claims, err := jwt.ValidateAccessToken(token, s.cfg.JWT.Secret)
	if err != nil {
		if s.cfg.IsDev() {
			log.Printf("🔒 Token rejected: %v", err)
		}
		return nil, false
	}

	return &domain.AuthPayload{
		AdminID: claims.AdminID,
		Email:   claims.Email,
	}, true
}

// ProvisionAdmin creates a new admin account storing only a bcrypt hash
func (s *AuthService) ProvisionAdmin(ctx context.Context, input *ProvisionAdminInput) (*domain.AdminSummary, error) {
	input.Email = strings.TrimSpace(input.Email)
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	// 1. Check if email already exists
	exists, err := s.adminRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAdminAlreadyExists
	}

	// 2. Hash password
	hashedPassword, err := password.Hash(input.Password, s.cfg.Security.BcryptCost)
	if err != nil {
		return nil, err
	}

	// 3. Create admin (unique index catches a concurrent duplicate)
	admin := &models.Admin{
		Email:    input.Email,
		Password: hashedPassword,
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, err
	}

	log.Printf("✅ Admin created: %s", admin.Email)

	return admin.ToSummary(), nil
}

// ListAdmins returns every admin account
func (s *AuthService) ListAdmins(ctx context.Context) ([]*domain.AdminSummary, error) {
	admins, err := s.adminRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*domain.AdminSummary, 0, len(admins))
	for _, a := range admins {
		out = append(out, a.ToSummary())
	}
	return out, nil
}

// fallbackHash returns a hash used to keep the unknown-email path as slow as
// a real password check
func (s *AuthService) fallbackHash() string {
	s.dummyOnce.Do(func() {
		hash, err := password.Hash("not-a-real-password", s.cfg.Security.BcryptCost)
		if err != nil {
			log.Printf("⚠️ Failed to build fallback hash: %v", err)
			return
		}
		s.dummyHash = hash
	})
	return s.dummyHash
}
