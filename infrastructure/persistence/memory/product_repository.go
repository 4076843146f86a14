/*
Package memory - in-memory persistence for development and tests.

The repositories mirror the MySQL implementations' semantics, in
particular the atomic conditional updates: stock and usage counters are
checked and mutated under one mutex hold, never read-then-written across
two calls. There are no transactions; the unit of work here is a plain
pass-through, and callers compensate explicitly on failure.
*/
package memory

import (
	"context"
	"sync"

	"storefront/domain/catalog"
)

// ProductRepository in-memory stock ledger.
type ProductRepository struct {
	mu       sync.RWMutex
	products map[string]catalog.ReconstructionDTO
}

// NewProductRepository creates an empty in-memory product repository.
func NewProductRepository() *ProductRepository {
	return &ProductRepository{
		products: make(map[string]catalog.ReconstructionDTO),
	}
}

// FindByID loads a product by id.
func (r *ProductRepository) FindByID(_ context.Context, id string) (*catalog.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	dto, ok := r.products[id]
	if !ok {
		return nil, catalog.ErrProductNotFound
	}
	return catalog.RebuildFromDTO(dto), nil
}

// FindAll lists the catalog.
func (r *ProductRepository) FindAll(_ context.Context) ([]*catalog.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]*catalog.Product, 0, len(r.products))
	for _, dto := range r.products {
		products = append(products, catalog.RebuildFromDTO(dto))
	}
	return products, nil
}

// Save persists a product. The stored stock value is preserved for
// existing entries; stock moves only through ReserveStock/ReleaseStock.
func (r *ProductRepository) Save(_ context.Context, product *catalog.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	dto := catalog.ReconstructionDTO{
		ID:        product.ID(),
		SKU:       product.SKU(),
		Name:      product.Name(),
		UnitPrice: product.UnitPrice(),
		Active:    product.IsActive(),
		Stock:     product.Stock(),
		CreatedAt: product.CreatedAt(),
		UpdatedAt: product.UpdatedAt(),
	}
	if existing, ok := r.products[product.ID()]; ok {
		dto.Stock = existing.Stock
		dto.CreatedAt = existing.CreatedAt
	}
	r.products[product.ID()] = dto
	return nil
}

// ReserveStock atomically decrements stock under the write lock.
func (r *ProductRepository) ReserveStock(_ context.Context, id string, quantity int) error {
	if quantity <= 0 {
		return catalog.ErrInvalidQuantity
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	dto, ok := r.products[id]
	if !ok {
		return catalog.ErrProductNotFound
	}
	if !dto.Active {
		return catalog.ErrProductInactive
	}
	if dto.Stock < quantity {
		return catalog.ErrInsufficientStock
	}

	dto.Stock -= quantity
	r.products[id] = dto
	return nil
}

// ReleaseStock atomically increments stock under the write lock.
func (r *ProductRepository) ReleaseStock(_ context.Context, id string, quantity int) error {
	if quantity <= 0 {
		return catalog.ErrInvalidQuantity
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	dto, ok := r.products[id]
	if !ok {
		return catalog.ErrProductNotFound
	}

	dto.Stock += quantity
	r.products[id] = dto
	return nil
}

// Compile-time interface implementation check
var _ catalog.Repository = (*ProductRepository)(nil)
