package response

import "github.com/gofiber/fiber/v2"

// ErrorResponse is the single error envelope returned by every endpoint
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is returned by endpoints that have nothing else to report
type MessageResponse struct {
	Message string `json:"message"`
}

// Success sends a 200 response with data as the body
func Success(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

// Created sends a 201 created response
func Created(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

// Message sends a 200 response carrying only a message
func Message(c *fiber.Ctx, message string) error {
	return Success(c, MessageResponse{Message: message})
}

// Error sends an error response
func Error(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(ErrorResponse{Error: message})
}

// BadRequest sends a 400 bad request response
func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

// Unauthorized sends a 401 unauthorized response
func Unauthorized(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusUnauthorized, message)
}

// Forbidden sends a 403 forbidden response
func Forbidden(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusForbidden, message)
}

// NotFound sends a 404 not found response
func NotFound(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusNotFound, message)
}

// MethodNotAllowed sends a 405 response
func MethodNotAllowed(c *fiber.Ctx) error {
	return Error(c, fiber.StatusMethodNotAllowed, "Method not allowed")
}

// BadGateway sends a 502 response for failed upstream calls
func BadGateway(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadGateway, message)
}

// InternalServerError sends a 500 internal server error response
func InternalServerError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, message)
}
