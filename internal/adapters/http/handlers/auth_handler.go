package handlers

import (
	"errors"
	"strings"

	"cleanenergy-leads/internal/config"
	"cleanenergy-leads/internal/core/domain"
	"cleanenergy-leads/internal/core/services"
	"cleanenergy-leads/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles admin login and provisioning endpoints
type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cfg:         cfg,
	}
}

// CredentialsRequest represents the login and provisioning request body
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles admin login
// @Summary Admin login
// @Description Authenticate an admin and return a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body CredentialsRequest true "Login credentials"
// @Success 200 {object} services.LoginResult
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req CredentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return response.BadRequest(c, "Email and password are required")
	}

	result, err := h.authService.Login(c.UserContext(), &services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			return response.Unauthorized(c, "Invalid credentials")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Email and password are required")
		default:
			return response.InternalServerError(c, "Failed to authenticate")
		}
	}

	return response.Success(c, result)
}

// ProvisionAdmin handles admin account creation
// @Summary Create admin
// @Description Create a new admin account. Can be turned off with ALLOW_ADMIN_PROVISIONING=false.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body CredentialsRequest true "Admin credentials"
// @Success 201 {object} domain.AdminSummary
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Router /admin [post]
func (h *AuthHandler) ProvisionAdmin(c *fiber.Ctx) error {
	if !h.cfg.Security.AllowAdminProvisioning {
		return response.Forbidden(c, "Admin provisioning is disabled")
	}

	var req CredentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return response.BadRequest(c, "Email and password are required")
	}

	admin, err := h.authService.ProvisionAdmin(c.UserContext(), &services.ProvisionAdminInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		var verr *domain.ValidationError
		switch {
		case errors.As(err, &verr):
			return response.BadRequest(c, verr.Error())
		case errors.Is(err, services.ErrAdminAlreadyExists):
			return response.BadRequest(c, "Admin already exists")
		default:
			return response.InternalServerError(c, "Failed to create admin")
		}
	}

	return response.Created(c, admin)
}
