package pagination

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// TotalCountHeader carries the unpaged row count on paged list responses
const TotalCountHeader = "X-Total-Count"

// Params represents pagination parameters
type Params struct {
	Page   int `json:"page"`
	Limit  int `json:"limit"`
	Offset int `json:"-"`
}

// Meta represents pagination metadata
type Meta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

// DefaultLimit is the default number of items per page
const DefaultLimit = 20

// MaxLimit is the maximum number of items per page
const MaxLimit = 100

// GetParams extracts pagination parameters from request.
// It returns nil when neither page nor limit was sent, meaning "everything".
func GetParams(c *fiber.Ctx) *Params {
	if c.Query("page") == "" && c.Query("limit") == "" {
		return nil
	}

	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", strconv.Itoa(DefaultLimit)))

	// Validate page
	if page < 1 {
		page = 1
	}

	// Validate limit
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return &Params{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

// GetMeta calculates pagination metadata
func GetMeta(params *Params, total int64) *Meta {
	totalPages := int(total) / params.Limit
	if int(total)%params.Limit > 0 {
		totalPages++
	}

	return &Meta{
		Page:       params.Page,
		Limit:      params.Limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    params.Page < totalPages,
		HasPrev:    params.Page > 1,
	}
}

// SetHeaders writes the paging metadata as response headers so list
// bodies can stay plain JSON arrays
func SetHeaders(c *fiber.Ctx, params *Params, total int64) {
	meta := GetMeta(params, total)
	c.Set(TotalCountHeader, strconv.FormatInt(meta.Total, 10))
	c.Set("X-Page", strconv.Itoa(meta.Page))
	c.Set("X-Per-Page", strconv.Itoa(meta.Limit))
	c.Set("X-Total-Pages", strconv.Itoa(meta.TotalPages))
}
