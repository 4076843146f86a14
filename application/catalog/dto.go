package catalog

import (
	"time"

	"storefront/domain/catalog"
)

// CreateProductRequest input for adding a product. The unit price is in
// minor units of the engine's configured currency.
type CreateProductRequest struct {
	SKU       string `json:"sku" binding:"required"`
	Name      string `json:"name" binding:"required"`
	UnitPrice int64  `json:"unit_price" binding:"required,gt=0"`
	Stock     int    `json:"stock" binding:"gte=0"`
}

// RestockRequest input for adding inbound inventory.
type RestockRequest struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}

// SetActiveRequest input for toggling availability.
type SetActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// ProductResponse product view.
type ProductResponse struct {
	ID        string    `json:"id"`
	SKU       string    `json:"sku"`
	Name      string    `json:"name"`
	UnitPrice int64     `json:"unit_price"`
	Currency  string    `json:"currency"`
	Active    bool      `json:"active"`
	Stock     int       `json:"stock"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToProductResponse converts the entity to its response view.
func ToProductResponse(p *catalog.Product) *ProductResponse {
	return &ProductResponse{
		ID:        p.ID(),
		SKU:       p.SKU(),
		Name:      p.Name(),
		UnitPrice: p.UnitPrice().Amount(),
		Currency:  p.UnitPrice().Currency(),
		Active:    p.IsActive(),
		Stock:     p.Stock(),
		CreatedAt: p.CreatedAt(),
		UpdatedAt: p.UpdatedAt(),
	}
}
