/*
Package catalog - product catalog subdomain.

The catalog owns the products the order engine sells. Its one hard
invariant is that stock never goes negative: stock is mutated only through
the repository's atomic reserve/release operations, never by reading a
value into memory and writing it back.
*/
package catalog

import (
	"fmt"
	"time"

	"storefront/domain/shared"

	"github.com/google/uuid"
)

// Product catalog entity. Price and stock are the fields the order engine
// reads and mutates; everything else is descriptive.
type Product struct {
	id        string
	sku       string
	name      string
	unitPrice shared.Money
	active    bool
	stock     int
	createdAt time.Time
	updatedAt time.Time
}

// NewProduct creates a new Product with initial stock.
func NewProduct(sku, name string, unitPrice shared.Money, stock int) (*Product, error) {
	if sku == "" {
		return nil, ErrInvalidProduct
	}
	if name == "" {
		return nil, ErrInvalidProduct
	}
	if unitPrice.IsNegative() {
		return nil, ErrInvalidProduct
	}
	if stock < 0 {
		return nil, ErrInvalidProduct
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate product ID: %w", err)
	}

	now := time.Now()
	return &Product{
		id:        id.String(),
		sku:       sku,
		name:      name,
		unitPrice: unitPrice,
		active:    true,
		stock:     stock,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructionDTO carries persisted state back into the entity.
// For repository-layer use only.
type ReconstructionDTO struct {
	ID        string
	SKU       string
	Name      string
	UnitPrice shared.Money
	Active    bool
	Stock     int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RebuildFromDTO reconstructs a Product from persisted state.
func RebuildFromDTO(dto ReconstructionDTO) *Product {
	return &Product{
		id:        dto.ID,
		sku:       dto.SKU,
		name:      dto.Name,
		unitPrice: dto.UnitPrice,
		active:    dto.Active,
		stock:     dto.Stock,
		createdAt: dto.CreatedAt,
		updatedAt: dto.UpdatedAt,
	}
}

// Deactivate takes the product off sale. Existing orders keep their
// price snapshots; only new reservations are refused.
func (p *Product) Deactivate() {
	p.active = false
	p.updatedAt = time.Now()
}

// Activate puts the product back on sale.
func (p *Product) Activate() {
	p.active = true
	p.updatedAt = time.Now()
}

func (p *Product) ID() string               { return p.id }
func (p *Product) SKU() string              { return p.sku }
func (p *Product) Name() string             { return p.name }
func (p *Product) UnitPrice() shared.Money  { return p.unitPrice }
func (p *Product) IsActive() bool           { return p.active }
func (p *Product) Stock() int               { return p.stock }
func (p *Product) CreatedAt() time.Time     { return p.createdAt }
func (p *Product) UpdatedAt() time.Time     { return p.updatedAt }
