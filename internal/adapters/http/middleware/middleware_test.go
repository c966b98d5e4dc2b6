package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"cleanenergy-leads/internal/config"
	"cleanenergy-leads/internal/core/domain"

	"github.com/gofiber/fiber/v2"
)

// ---------------------------------------------------------------------------
// AuthMiddleware
// ---------------------------------------------------------------------------

type stubVerifier struct{}

func (stubVerifier) Verify(token string) (*domain.AuthPayload, bool) {
	if token == "good" {
		return &domain.AuthPayload{AdminID: 7, Email: "ops@example.com"}, true
	}
	return nil, false
}

func decodeError(t *testing.T, body io.Reader) string {
	t.Helper()
	var out struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(body).Decode(&out); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return out.Error
}

func TestAuthMiddleware(t *testing.T) {
	app := fiber.New()
	app.Get("/secret", AuthMiddleware(stubVerifier{}), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"id":    c.Locals(LocalAdminID),
			"email": c.Locals(LocalAdminEmail),
		})
	})

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing", "", fiber.StatusUnauthorized},
		{"no scheme", "good", fiber.StatusUnauthorized},
		{"basic scheme", "Basic good", fiber.StatusUnauthorized},
		{"empty bearer", "Bearer ", fiber.StatusUnauthorized},
		{"extra parts", "Bearer good extra", fiber.StatusUnauthorized},
		{"rejected token", "Bearer bad", fiber.StatusUnauthorized},
		{"valid", "Bearer good", fiber.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/secret", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			if resp.StatusCode != tt.status {
				t.Fatalf("got status %d, want %d", resp.StatusCode, tt.status)
			}
			if tt.status == fiber.StatusUnauthorized {
				if msg := decodeError(t, resp.Body); msg != "Unauthorized" {
					t.Errorf("got error %q, want %q", msg, "Unauthorized")
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// CustomErrorHandler
// ---------------------------------------------------------------------------

func TestCustomErrorHandler(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: CustomErrorHandler})
	app.Get("/thing", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("db exploded") })

	tests := []struct {
		method, path string
		status       int
		message      string
	}{
		{"POST", "/thing", fiber.StatusMethodNotAllowed, "Method not allowed"},
		{"GET", "/nowhere", fiber.StatusNotFound, "Not found"},
		{"GET", "/boom", fiber.StatusInternalServerError, "Internal Server Error"},
	}
	for _, tt := range tests {
		resp, err := app.Test(httptest.NewRequest(tt.method, tt.path, nil))
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		if resp.StatusCode != tt.status {
			t.Errorf("%s %s: got %d, want %d", tt.method, tt.path, resp.StatusCode, tt.status)
			continue
		}
		if msg := decodeError(t, resp.Body); msg != tt.message {
			t.Errorf("%s %s: got %q, want %q", tt.method, tt.path, msg, tt.message)
		}
	}
}

// ---------------------------------------------------------------------------
// Setup, rate limiting, timeouts, cache headers
// ---------------------------------------------------------------------------

func TestSetupAddsRequestIDAndSecurityHeaders(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: CustomErrorHandler})
	Setup(app, &config.Config{AppMode: "prod", RequestTimeout: time.Second})
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.Header.Get(fiber.HeaderXRequestID) == "" {
		t.Error("expected X-Request-ID header")
	}
	if resp.Header.Get(fiber.HeaderXContentTypeOptions) != "nosniff" {
		t.Error("expected nosniff header")
	}
}

func TestRateLimiter(t *testing.T) {
	app := fiber.New()
	app.Post("/login", AuthRateLimiter(2), func(c *fiber.Ctx) error { return c.SendString("ok") })

	for i := 0; i < 2; i++ {
		resp, _ := app.Test(httptest.NewRequest("POST", "/login", nil))
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("request %d: got %d, want 200", i+1, resp.StatusCode)
		}
	}

	resp, _ := app.Test(httptest.NewRequest("POST", "/login", nil))
	if resp.StatusCode != fiber.StatusTooManyRequests {
		t.Fatalf("got %d, want 429", resp.StatusCode)
	}
	if msg := decodeError(t, resp.Body); msg != "Too many login attempts" {
		t.Errorf("got %q", msg)
	}
}

func TestRateLimiterDisabled(t *testing.T) {
	app := fiber.New()
	app.Post("/admin", StrictRateLimiter(0), func(c *fiber.Ctx) error { return c.SendString("ok") })

	for i := 0; i < 10; i++ {
		resp, _ := app.Test(httptest.NewRequest("POST", "/admin", nil))
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("request %d: got %d, want 200", i+1, resp.StatusCode)
		}
	}
}

func TestRequestTimeoutSetsDeadline(t *testing.T) {
	app := fiber.New()
	app.Use(RequestTimeout(5 * time.Second))
	app.Get("/", func(c *fiber.Ctx) error {
		deadline, ok := c.UserContext().Deadline()
		if !ok {
			return c.SendStatus(fiber.StatusTeapot)
		}
		if time.Until(deadline) > 5*time.Second {
			return c.SendStatus(fiber.StatusConflict)
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, _ := app.Test(httptest.NewRequest("GET", "/", nil))
	if resp.StatusCode != fiber.StatusNoContent {
		t.Errorf("got %d, want 204", resp.StatusCode)
	}
}

func TestCacheHeaders(t *testing.T) {
	app := fiber.New()
	app.Get("/public", PublicCache(time.Hour), func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/private", NoCacheHeaders(), func(c *fiber.Ctx) error { return c.SendString("ok") })

	resp, _ := app.Test(httptest.NewRequest("GET", "/public", nil))
	if got := resp.Header.Get(fiber.HeaderCacheControl); got != "public, max-age=3600" {
		t.Errorf("public: got %q", got)
	}

	resp, _ = app.Test(httptest.NewRequest("GET", "/private", nil))
	if got := resp.Header.Get(fiber.HeaderCacheControl); got != "no-store, no-cache, must-revalidate" {
		t.Errorf("private: got %q", got)
	}
}
