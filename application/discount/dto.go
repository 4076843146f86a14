package discount

import (
	"time"

	"storefront/domain/discount"
)

// CreateCodeRequest input for defining a discount code. Value is a
// percentage (0-100) for PERCENTAGE codes or minor units for
// FIXED_AMOUNT codes; the optional caps are minor units.
type CreateCodeRequest struct {
	Code        string    `json:"code" binding:"required"`
	Kind        string    `json:"kind" binding:"required,oneof=PERCENTAGE FIXED_AMOUNT"`
	Value       int64     `json:"value" binding:"required,gt=0"`
	MinAmount   *int64    `json:"min_amount"`
	MaxDiscount *int64    `json:"max_discount"`
	MaxUses     *int      `json:"max_uses"`
	ValidFrom   time.Time `json:"valid_from" binding:"required"`
	ValidUntil  time.Time `json:"valid_until" binding:"required"`
}

// CodeResponse discount code view.
type CodeResponse struct {
	ID          string    `json:"id"`
	Code        string    `json:"code"`
	Kind        string    `json:"kind"`
	Value       int64     `json:"value"`
	MinAmount   *int64    `json:"min_amount,omitempty"`
	MaxDiscount *int64    `json:"max_discount,omitempty"`
	MaxUses     *int      `json:"max_uses,omitempty"`
	UsedCount   int       `json:"used_count"`
	ValidFrom   time.Time `json:"valid_from"`
	ValidUntil  time.Time `json:"valid_until"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToCodeResponse converts the entity to its response view.
func ToCodeResponse(c *discount.Code) *CodeResponse {
	response := &CodeResponse{
		ID:         c.ID(),
		Code:       c.Code(),
		Kind:       string(c.Kind()),
		Value:      c.Value(),
		MaxUses:    c.MaxUses(),
		UsedCount:  c.UsedCount(),
		ValidFrom:  c.ValidFrom(),
		ValidUntil: c.ValidUntil(),
		Active:     c.IsActive(),
		CreatedAt:  c.CreatedAt(),
	}
	if min := c.MinAmount(); min != nil {
		amount := min.Amount()
		response.MinAmount = &amount
	}
	if max := c.MaxDiscount(); max != nil {
		amount := max.Amount()
		response.MaxDiscount = &amount
	}
	return response
}
