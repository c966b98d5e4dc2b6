package middleware

import (
	"context"
	"log"
	"time"

	"cleanenergy-leads/internal/config"
	"cleanenergy-leads/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// Setup configures all middlewares for the application
func Setup(app *fiber.App, cfg *config.Config) {
	// Recover middleware - catches panics
	app.Use(recover.New())

	// Request ID, echoed in X-Request-ID and the access log
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))

	// Gzip Compression middleware
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	// Security Headers middleware (Helmet)
	app.Use(helmet.New(helmet.Config{
		XSSProtection:             "1; mode=block",
		ContentTypeNosniff:        "nosniff",
		XFrameOptions:             "SAMEORIGIN",
		ReferrerPolicy:            "strict-origin-when-cross-origin",
		CrossOriginEmbedderPolicy: "require-corp",
		CrossOriginOpenerPolicy:   "same-origin",
		CrossOriginResourcePolicy: "cross-origin", // the form is served from another origin
		PermissionPolicy:          "geolocation=(), microphone=(), camera=()",
	}))

	// Rate Limiter middleware - General API (per IP)
	app.Use(rateLimiter(cfg.Security.RateLimitGeneral, "", "Too many requests"))

	// Logger middleware
	if cfg.IsDev() {
		app.Use(logger.New(logger.Config{
			Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${locals:requestid}\n",
		}))
	} else {
		app.Use(logger.New(logger.Config{
			Format:     "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${locals:requestid} | ${error}\n",
			TimeFormat: "2006-01-02 15:04:05",
		}))
	}

	// CORS middleware
	if cfg.IsDev() {
		// Development: Allow all origins
		app.Use(cors.New(cors.Config{
			AllowOrigins:     "*",
			AllowMethods:     "GET,POST,DELETE,OPTIONS",
			AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
			AllowCredentials: false, // Cannot be true with AllowOrigins: "*"
		}))
	} else {
		// Production: Restrict origins
		origins := cfg.GetAllowedOrigins()
		app.Use(cors.New(cors.Config{
			AllowOrigins:     origins,
			AllowMethods:     "GET,POST,DELETE,OPTIONS",
			AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
			AllowCredentials: origins != "*", // fiber rejects credentials with a wildcard
		}))
	}

	// Per-request deadline propagated to the store
	app.Use(RequestTimeout(cfg.RequestTimeout))
}

// RequestTimeout attaches a deadline to the request's user context.
// Handlers pass c.UserContext() down to services and GORM.
func RequestTimeout(d time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), d)
		defer cancel()

		c.SetUserContext(ctx)
		return c.Next()
	}
}

// AuthRateLimiter creates a stricter rate limiter for the login endpoint
func AuthRateLimiter(max int) fiber.Handler {
	return rateLimiter(max, "-auth", "Too many login attempts")
}

// StrictRateLimiter creates an even stricter rate limiter for admin provisioning
func StrictRateLimiter(max int) fiber.Handler {
	return rateLimiter(max, "-strict", "Rate limit exceeded")
}

// rateLimiter allows max requests per minute per IP; max <= 0 disables it
func rateLimiter(max int, keySuffix, message string) fiber.Handler {
	if max <= 0 {
		return func(c *fiber.Ctx) error {
			return c.Next()
		}
	}

	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP() + keySuffix
		},
		LimitReached: func(c *fiber.Ctx) error {
			return response.Error(c, fiber.StatusTooManyRequests, message)
		},
	})
}

// CustomErrorHandler handles errors globally, keeping the {error} envelope
func CustomErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	} else {
		log.Printf("❌ Unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	}

	switch code {
	case fiber.StatusMethodNotAllowed:
		return response.MethodNotAllowed(c)
	case fiber.StatusNotFound:
		return response.NotFound(c, "Not found")
	}

	return response.Error(c, code, message)
}
