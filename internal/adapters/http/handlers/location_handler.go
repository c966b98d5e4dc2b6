package handlers

import (
	"errors"
	"log"

	"cleanenergy-leads/internal/adapters/ibge"
	"cleanenergy-leads/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// LocationHandler proxies the IBGE locality lookups used by the lead form
type LocationHandler struct {
	client *ibge.Client
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(client *ibge.Client) *LocationHandler {
	return &LocationHandler{client: client}
}

// ListStates returns every state
// @Summary List states
// @Tags Locations
// @Produce json
// @Success 200 {array} ibge.State
// @Failure 502 {object} response.ErrorResponse
// @Router /locations/states [get]
func (h *LocationHandler) ListStates(c *fiber.Ctx) error {
	states, err := h.client.States(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return response.Success(c, states)
}

// ListCities returns the municipalities of a state
// @Summary List cities of a state
// @Tags Locations
// @Produce json
// @Param uf path string true "State code (e.g. SP)"
// @Success 200 {array} ibge.City
// @Failure 400 {object} response.ErrorResponse
// @Failure 502 {object} response.ErrorResponse
// @Router /locations/states/{uf}/cities [get]
func (h *LocationHandler) ListCities(c *fiber.Ctx) error {
	cities, err := h.client.Cities(c.UserContext(), c.Params("uf"))
	if err != nil {
		return h.fail(c, err)
	}
	return response.Success(c, cities)
}

func (h *LocationHandler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ibge.ErrInvalidState):
		return response.BadRequest(c, "Invalid state code")
	case errors.Is(err, ibge.ErrUpstream):
		log.Printf("⚠️ IBGE lookup failed: %v", err)
		return response.BadGateway(c, "Locality service unavailable")
	default:
		return response.InternalServerError(c, "Failed to fetch localities")
	}
}
