package memory

import (
	"context"
	"sort"
	"sync"

	"storefront/domain/order"
)

// OrderRepository in-memory order store. The numbers index plays the role
// of the MySQL unique index: an insert with a taken number fails with
// ErrDuplicateNumber so the generator can redraw.
type OrderRepository struct {
	mu      sync.RWMutex
	orders  map[string]order.ReconstructionDTO // keyed by id
	numbers map[string]string                  // number -> id
}

// NewOrderRepository creates an empty in-memory order repository.
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{
		orders:  make(map[string]order.ReconstructionDTO),
		numbers: make(map[string]string),
	}
}

// Save persists the aggregate, guarding inserts with the number index and
// updates with the optimistic lock version.
func (r *OrderRepository) Save(_ context.Context, o *order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	dto := toDTO(o)

	if o.Version() == 0 {
		if _, taken := r.numbers[o.Number()]; taken {
			return order.ErrDuplicateNumber
		}
		dto.Version = 1
		r.orders[o.ID()] = dto
		r.numbers[o.Number()] = o.ID()
		o.IncrementVersionForSave()
		return nil
	}

	existing, ok := r.orders[o.ID()]
	if !ok {
		return order.ErrOrderNotFound
	}
	if existing.Version != o.Version() {
		return order.ErrConcurrentModification
	}
	dto.Version = o.Version() + 1
	r.orders[o.ID()] = dto
	o.IncrementVersionForSave()
	return nil
}

// FindByID loads an order with its items.
func (r *OrderRepository) FindByID(_ context.Context, id string) (*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	dto, ok := r.orders[id]
	if !ok {
		return nil, order.ErrOrderNotFound
	}
	return order.RebuildFromDTO(dto), nil
}

// FindByUserID lists a user's orders, newest first.
func (r *OrderRepository) FindByUserID(_ context.Context, userID string) ([]*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]*order.Order, 0)
	for _, dto := range r.orders {
		if dto.UserID == userID {
			orders = append(orders, order.RebuildFromDTO(dto))
		}
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt().After(orders[j].CreatedAt())
	})
	return orders, nil
}

// ExistsByNumber reports whether an order already holds the number.
func (r *OrderRepository) ExistsByNumber(_ context.Context, number string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.numbers[number]
	return ok, nil
}

func toDTO(o *order.Order) order.ReconstructionDTO {
	return order.ReconstructionDTO{
		ID:                o.ID(),
		Number:            o.Number(),
		UserID:            o.UserID(),
		Items:             o.Items(),
		Subtotal:          o.Subtotal(),
		DiscountAmount:    o.DiscountAmount(),
		ShippingAmount:    o.ShippingAmount(),
		TaxAmount:         o.TaxAmount(),
		Total:             o.Total(),
		DiscountCode:      o.DiscountCode(),
		PaymentStatus:     o.PaymentStatus(),
		PaymentRef:        o.PaymentRef(),
		DeliveryStatus:    o.DeliveryStatus(),
		ShippingAddress:   o.ShippingAddress(),
		PaymentMethod:     o.PaymentMethod(),
		TrackingNumber:    o.TrackingNumber(),
		EstimatedDelivery: o.EstimatedDelivery(),
		DeliveredAt:       o.DeliveredAt(),
		Notes:             o.Notes(),
		CancelReason:      o.CancelReason(),
		Version:           o.Version(),
		CreatedAt:         o.CreatedAt(),
		UpdatedAt:         o.UpdatedAt(),
	}
}

// Compile-time interface implementation check
var _ order.Repository = (*OrderRepository)(nil)
