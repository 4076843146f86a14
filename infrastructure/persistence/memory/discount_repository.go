package memory

import (
	"context"
	"sync"

	"storefront/domain/discount"
)

// DiscountRepository in-memory discount code store.
type DiscountRepository struct {
	mu     sync.RWMutex
	codes  map[string]discount.ReconstructionDTO // keyed by id
	byCode map[string]string                     // code -> id
}

// NewDiscountRepository creates an empty in-memory discount repository.
func NewDiscountRepository() *DiscountRepository {
	return &DiscountRepository{
		codes:  make(map[string]discount.ReconstructionDTO),
		byCode: make(map[string]string),
	}
}

// FindByCode loads a discount code.
func (r *DiscountRepository) FindByCode(_ context.Context, code string) (*discount.Code, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byCode[code]
	if !ok {
		return nil, discount.ErrCodeNotFound
	}
	dto := r.codes[id]
	return discount.RebuildFromDTO(dto), nil
}

// FindAll lists all discount codes.
func (r *DiscountRepository) FindAll(_ context.Context) ([]*discount.Code, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	codes := make([]*discount.Code, 0, len(r.codes))
	for _, dto := range r.codes {
		codes = append(codes, discount.RebuildFromDTO(dto))
	}
	return codes, nil
}

// Save persists a code definition. The stored usage counter is preserved
// for existing entries; it moves only through IncrementUsage.
func (r *DiscountRepository) Save(_ context.Context, code *discount.Code) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	dto := discount.ReconstructionDTO{
		ID:          code.ID(),
		Code:        code.Code(),
		Kind:        code.Kind(),
		Value:       code.Value(),
		MinAmount:   code.MinAmount(),
		MaxDiscount: code.MaxDiscount(),
		MaxUses:     code.MaxUses(),
		UsedCount:   code.UsedCount(),
		ValidFrom:   code.ValidFrom(),
		ValidUntil:  code.ValidUntil(),
		Active:      code.IsActive(),
		CreatedAt:   code.CreatedAt(),
		UpdatedAt:   code.UpdatedAt(),
	}
	if existing, ok := r.codes[code.ID()]; ok {
		dto.UsedCount = existing.UsedCount
		dto.CreatedAt = existing.CreatedAt
		if existing.Code != dto.Code {
			delete(r.byCode, existing.Code)
		}
	}
	r.codes[code.ID()] = dto
	r.byCode[dto.Code] = dto.ID
	return nil
}

// IncrementUsage atomically spends one use under the write lock,
// re-checking the cap in the same critical section.
func (r *DiscountRepository) IncrementUsage(_ context.Context, code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byCode[code]
	if !ok {
		return discount.ErrCodeNotFound
	}
	dto := r.codes[id]
	if !dto.Active {
		return discount.ErrCodeInactive
	}
	if dto.MaxUses != nil && dto.UsedCount >= *dto.MaxUses {
		return discount.ErrUsageCapReached
	}

	dto.UsedCount++
	r.codes[id] = dto
	return nil
}

// Compile-time interface implementation check
var _ discount.Repository = (*DiscountRepository)(nil)
