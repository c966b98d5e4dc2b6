package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

// PublicCache sets public cache headers on successful GET responses
func PublicCache(maxAge time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		if c.Method() == fiber.MethodGet && c.Response().StatusCode() == fiber.StatusOK {
			c.Set(fiber.HeaderCacheControl, "public, max-age="+strconv.Itoa(int(maxAge.Seconds())))
		}

		return err
	}
}

// NoCacheHeaders sets no-cache headers (lead data is personal)
func NoCacheHeaders() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderCacheControl, "no-store, no-cache, must-revalidate")
		c.Set(fiber.HeaderPragma, "no-cache")
		c.Set(fiber.HeaderExpires, "0")
		return c.Next()
	}
}
