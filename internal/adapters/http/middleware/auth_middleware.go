package middleware

import (
	"strings"

	"cleanenergy-leads/internal/core/domain"
	"cleanenergy-leads/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by AuthMiddleware
const (
	LocalAdminID    = "adminID"
	LocalAdminEmail = "adminEmail"
)

// TokenVerifier verifies bearer tokens; implemented by services.AuthService
type TokenVerifier interface {
	Verify(token string) (*domain.AuthPayload, bool)
}

// AuthMiddleware rejects requests without a valid bearer token.
// Missing, malformed, forged and expired tokens all get the same 401.
func AuthMiddleware(verifier TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return response.Unauthorized(c, "Unauthorized")
		}

		payload, ok := verifier.Verify(token)
		if !ok {
			return response.Unauthorized(c, "Unauthorized")
		}

		c.Locals(LocalAdminID, payload.AdminID)
		c.Locals(LocalAdminEmail, payload.Email)

		return c.Next()
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" header
func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	if token == "" || strings.ContainsAny(token, " \t") {
		return "", false
	}
	return token, true
}
