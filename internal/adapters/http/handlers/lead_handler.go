package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"cleanenergy-leads/internal/core/domain"
	"cleanenergy-leads/internal/core/services"
	"cleanenergy-leads/internal/pkg/pagination"
	"cleanenergy-leads/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// LeadHandler handles lead endpoints
type LeadHandler struct {
	leadService *services.LeadService
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(leadService *services.LeadService) *LeadHandler {
	return &LeadHandler{leadService: leadService}
}

// CreateLeadRequest represents the public lead form body.
// monthlyBillValue accepts a JSON number or a numeric string.
type CreateLeadRequest struct {
	Name             string      `json:"name"`
	Email            string      `json:"email"`
	Phone            string      `json:"phone"`
	NationalID       string      `json:"nationalId"`
	City             string      `json:"city"`
	State            string      `json:"state"`
	SupplyType       string      `json:"supplyType"`
	MonthlyBillValue BillValue `json:"monthlyBillValue" swaggertype:"number"`
}

// BillValue keeps the raw monthlyBillValue text. null and "" decode to
// the empty value, which is reported as a missing field.
type BillValue string

func (b *BillValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*b = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*b = BillValue(strings.TrimSpace(s))
		return nil
	}
	*b = BillValue(data)
	return nil
}

// Float64 parses the value; the empty value yields 0
func (b BillValue) Float64() (float64, error) {
	if b == "" {
		return 0, nil
	}
	return strconv.ParseFloat(string(b), 64)
}

// Create handles public lead submission
// @Summary Submit lead
// @Description Capture a prospective customer. The national ID must be unique.
// @Tags Leads
// @Accept json
// @Produce json
// @Param body body CreateLeadRequest true "Lead data"
// @Success 201 {object} models.Lead
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /leads [post]
func (h *LeadHandler) Create(c *fiber.Ctx) error {
	var req CreateLeadRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	billValue, err := req.MonthlyBillValue.Float64()
	if err != nil {
		return response.BadRequest(c, "monthlyBillValue must be a number")
	}

	lead, err := h.leadService.Submit(c.UserContext(), &services.SubmitLeadInput{
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		NationalID:       req.NationalID,
		City:             req.City,
		State:            req.State,
		SupplyType:       domain.SupplyType(req.SupplyType),
		MonthlyBillValue: billValue,
	})
	if err != nil {
		var verr *domain.ValidationError
		switch {
		case errors.As(err, &verr):
			if verr.IsMissing() {
				return response.BadRequest(c, "Missing required fields")
			}
			return response.BadRequest(c, verr.Error())
		case errors.Is(err, services.ErrDuplicateLead):
			return response.BadRequest(c, "Lead already exists")
		default:
			return response.InternalServerError(c, "Failed to create lead")
		}
	}

	return response.Created(c, lead)
}

// List handles the admin lead listing
// @Summary List leads
// @Description List captured leads, newest first. Sending page or limit returns one page and sets X-Total-Count.
// @Tags Leads
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page (max 100)"
// @Success 200 {array} models.Lead
// @Failure 401 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /leads [get]
func (h *LeadHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)
	if params == nil {
		leads, err := h.leadService.List(c.UserContext())
		if err != nil {
			return response.InternalServerError(c, "Failed to fetch leads")
		}
		return response.Success(c, leads)
	}

	leads, total, err := h.leadService.ListPage(c.UserContext(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch leads")
	}

	pagination.SetHeaders(c, params, total)
	return response.Success(c, leads)
}

// Delete handles lead removal
// @Summary Delete lead
// @Description Delete a lead by ID. Any failure, including an unknown ID, is reported as 500.
// @Tags Leads
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lead ID"
// @Success 200 {object} response.MessageResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /leads/{id} [delete]
func (h *LeadHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return response.InternalServerError(c, "Failed to delete lead")
	}

	if err := h.leadService.Remove(c.UserContext(), uint(id)); err != nil {
		return response.InternalServerError(c, "Failed to delete lead")
	}

	return response.Message(c, "Lead deleted successfully")
}
