package orders

import (
	"regexp"
	"strings"

	"github.com/magieskin/storefront-backend/pkg/types"
)

// SubmitOrderInput is the checkout payload. ID and Date are optional; the
// service fills them when absent. The storefront sends a status field but
// the server discards it and always persists "pending".
type SubmitOrderInput struct {
	ID       string            `json:"id"`
	Customer types.Customer    `json:"customer"`
	Items    []types.OrderItem `json:"items"`
	Total    *float64          `json:"total"`
	Date     string            `json:"date"`
	Status   string            `json:"status"`
}

// UpdateStatusInput is the admin dashboard's status transition payload.
type UpdateStatusInput struct {
	ID     string `json:"id" validate:"required"`
	Status string `json:"status" validate:"required"`
}

var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const (
	maxNameLen    = 80
	maxAddressLen = 200
	maxEmailLen   = 255
)

// sanitize trims and caps a free-text field.
func sanitize(value string, max int) string {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) > max {
		return trimmed[:max]
	}
	return trimmed
}

func validEmail(value string) bool {
	return value != "" && len(value) <= maxEmailLen && emailShape.MatchString(value)
}
