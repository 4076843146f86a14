/*
Package order - order subdomain.

Order is the aggregate root: it exclusively owns its OrderItems and
guards the two independent status axes, payment and delivery. Item prices
are snapshots taken at creation time and are never recalculated from the
live catalog, so historical orders stay stable when catalog prices move.

Orders are never deleted; they only transition into a terminal status
(CANCELLED or DELIVERED on the delivery axis, REJECTED or REFUNDED on the
payment axis).
*/
package order

import (
	"fmt"
	"time"

	"storefront/domain/shared"

	"github.com/google/uuid"
)

// PaymentStatus payment axis of the order lifecycle
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentApproved PaymentStatus = "APPROVED"
	PaymentRejected PaymentStatus = "REJECTED"
	PaymentRefunded PaymentStatus = "REFUNDED"
)

// DeliveryStatus delivery axis of the order lifecycle
type DeliveryStatus string

const (
	DeliveryPending    DeliveryStatus = "PENDING"
	DeliveryProcessing DeliveryStatus = "PROCESSING"
	DeliveryShipped    DeliveryStatus = "SHIPPED"
	DeliveryDelivered  DeliveryStatus = "DELIVERED"
	DeliveryCancelled  DeliveryStatus = "CANCELLED"
)

// deliveryRank orders the forward chain. CANCELLED is reachable only
// through Cancel, never through AdvanceDelivery.
var deliveryRank = map[DeliveryStatus]int{
	DeliveryPending:    0,
	DeliveryProcessing: 1,
	DeliveryShipped:    2,
	DeliveryDelivered:  3,
}

// ValidPaymentStatus reports whether s is a known payment status.
func ValidPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentPending, PaymentApproved, PaymentRejected, PaymentRefunded:
		return true
	}
	return false
}

// Order aggregate root
type Order struct {
	id              string
	number          string
	userID          string
	items           []OrderItem
	subtotal        shared.Money
	discountAmount  shared.Money
	shippingAmount  shared.Money
	taxAmount       shared.Money
	total           shared.Money
	discountCode    string // empty when no code was applied
	paymentStatus   PaymentStatus
	paymentRef      string // gateway reference, set by payment updates
	deliveryStatus  DeliveryStatus
	shippingAddress string
	paymentMethod   string
	trackingNumber  string
	estimatedDelivery *time.Time
	deliveredAt     *time.Time
	notes           string
	cancelReason    string
	version         int // optimistic lock version
	createdAt       time.Time
	updatedAt       time.Time
}

// OrderItem is an entity inside the aggregate; it has no global identity
// and is only reachable through its Order.
type OrderItem struct {
	id          string
	productID   string
	productName string
	quantity    int
	unitPrice   shared.Money
	lineTotal   shared.Money
}

// ItemSpec is the input for one order line: the product snapshot taken
// at reservation time.
type ItemSpec struct {
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   shared.Money
}

// NewOrder creates a new Order aggregate with both status axes PENDING.
// The totals are expected to come from the pricing calculator; NewOrder
// recomputes line totals from the specs and verifies the subtotal so a
// stored order always recomposes exactly from its components.
func NewOrder(number, userID string, specs []ItemSpec, totals Totals, shippingAddress, paymentMethod, notes, discountCode string) (*Order, error) {
	if number == "" || userID == "" {
		return nil, fmt.Errorf("order number and user id are required")
	}
	if len(specs) == 0 {
		return nil, ErrEmptyOrderItems
	}

	items := make([]OrderItem, len(specs))
	sum := shared.Zero(totals.Subtotal.Currency())
	for i, spec := range specs {
		if spec.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}

		lineTotal, err := spec.UnitPrice.Multiply(spec.Quantity)
		if err != nil {
			return nil, err
		}

		id, err := uuid.NewV7()
		if err != nil {
			return nil, fmt.Errorf("failed to generate order item ID: %w", err)
		}

		items[i] = OrderItem{
			id:          id.String(),
			productID:   spec.ProductID,
			productName: spec.ProductName,
			quantity:    spec.Quantity,
			unitPrice:   spec.UnitPrice,
			lineTotal:   *lineTotal,
		}

		summed, err := sum.Add(*lineTotal)
		if err != nil {
			return nil, err
		}
		sum = *summed
	}

	if !sum.Equals(totals.Subtotal) {
		return nil, fmt.Errorf("subtotal %d does not match line totals %d", totals.Subtotal.Amount(), sum.Amount())
	}

	orderID, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate order ID: %w", err)
	}

	now := time.Now()
	return &Order{
		id:              orderID.String(),
		number:          number,
		userID:          userID,
		items:           items,
		subtotal:        totals.Subtotal,
		discountAmount:  totals.Discount,
		shippingAmount:  totals.Shipping,
		taxAmount:       totals.Tax,
		total:           totals.Total,
		discountCode:    discountCode,
		paymentStatus:   PaymentPending,
		deliveryStatus:  DeliveryPending,
		shippingAddress: shippingAddress,
		paymentMethod:   paymentMethod,
		notes:           notes,
		version:         0,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

// ============================================================================
// Reconstruction - for repository layer use only
// ============================================================================

// ReconstructionDTO carries persisted state back into the aggregate.
type ReconstructionDTO struct {
	ID                string
	Number            string
	UserID            string
	Items             []OrderItem
	Subtotal          shared.Money
	DiscountAmount    shared.Money
	ShippingAmount    shared.Money
	TaxAmount         shared.Money
	Total             shared.Money
	DiscountCode      string
	PaymentStatus     PaymentStatus
	PaymentRef        string
	DeliveryStatus    DeliveryStatus
	ShippingAddress   string
	PaymentMethod     string
	TrackingNumber    string
	EstimatedDelivery *time.Time
	DeliveredAt       *time.Time
	Notes             string
	CancelReason      string
	Version           int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// RebuildFromDTO reconstructs an Order aggregate from persisted state.
func RebuildFromDTO(dto ReconstructionDTO) *Order {
	return &Order{
		id:                dto.ID,
		number:            dto.Number,
		userID:            dto.UserID,
		items:             dto.Items,
		subtotal:          dto.Subtotal,
		discountAmount:    dto.DiscountAmount,
		shippingAmount:    dto.ShippingAmount,
		taxAmount:         dto.TaxAmount,
		total:             dto.Total,
		discountCode:      dto.DiscountCode,
		paymentStatus:     dto.PaymentStatus,
		paymentRef:        dto.PaymentRef,
		deliveryStatus:    dto.DeliveryStatus,
		shippingAddress:   dto.ShippingAddress,
		paymentMethod:     dto.PaymentMethod,
		trackingNumber:    dto.TrackingNumber,
		estimatedDelivery: dto.EstimatedDelivery,
		deliveredAt:       dto.DeliveredAt,
		notes:             dto.Notes,
		cancelReason:      dto.CancelReason,
		version:           dto.Version,
		createdAt:         dto.CreatedAt,
		updatedAt:         dto.UpdatedAt,
	}
}

// ItemReconstructionDTO order item reconstruction data
type ItemReconstructionDTO struct {
	ID          string
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   shared.Money
	LineTotal   shared.Money
}

// RebuildItemFromDTO reconstructs an OrderItem from persisted state.
func RebuildItemFromDTO(dto ItemReconstructionDTO) OrderItem {
	return OrderItem{
		id:          dto.ID,
		productID:   dto.ProductID,
		productName: dto.ProductName,
		quantity:    dto.Quantity,
		unitPrice:   dto.UnitPrice,
		lineTotal:   dto.LineTotal,
	}
}

// ============================================================================
// State changes
// ============================================================================

// RecordPaymentResult stores a payment result reported by the payment
// collaborator. The engine does not enforce an ordering on the payment
// axis beyond its terminal states: once REJECTED or REFUNDED, further
// results are refused.
func (o *Order) RecordPaymentResult(status PaymentStatus, gatewayRef string) error {
	if !ValidPaymentStatus(status) {
		return ErrInvalidPaymentStatus
	}
	if o.paymentStatus == PaymentRejected || o.paymentStatus == PaymentRefunded {
		return ErrInvalidStateTransition
	}

	o.paymentStatus = status
	if gatewayRef != "" {
		o.paymentRef = gatewayRef
	}
	o.updatedAt = time.Now()
	return nil
}

// AdvanceDelivery moves the delivery status forward along
// PENDING -> PROCESSING -> SHIPPED -> DELIVERED. Moving backwards, out of
// a terminal state, or into CANCELLED is rejected; cancellation has its
// own path. Reaching DELIVERED stamps the delivered timestamp exactly once.
func (o *Order) AdvanceDelivery(target DeliveryStatus, trackingNumber string, estimatedDelivery *time.Time) error {
	targetRank, ok := deliveryRank[target]
	if !ok || target == DeliveryPending {
		return ErrInvalidDeliveryStatus
	}
	currentRank, ok := deliveryRank[o.deliveryStatus]
	if !ok {
		// Current status is CANCELLED: terminal.
		return ErrInvalidStateTransition
	}
	if o.deliveryStatus == DeliveryDelivered || targetRank <= currentRank {
		return ErrInvalidStateTransition
	}

	o.deliveryStatus = target
	if trackingNumber != "" {
		o.trackingNumber = trackingNumber
	}
	if estimatedDelivery != nil {
		o.estimatedDelivery = estimatedDelivery
	}
	if target == DeliveryDelivered && o.deliveredAt == nil {
		now := time.Now()
		o.deliveredAt = &now
	}
	o.updatedAt = time.Now()
	return nil
}

// Cancel marks the order cancelled. Delivered and already-cancelled
// orders are rejected, which also makes a second cancel fail instead of
// releasing stock twice.
func (o *Order) Cancel(reason string) error {
	if o.deliveryStatus == DeliveryDelivered || o.deliveryStatus == DeliveryCancelled {
		return ErrInvalidStateTransition
	}

	o.deliveryStatus = DeliveryCancelled
	o.cancelReason = reason
	o.updatedAt = time.Now()
	return nil
}

// IncrementVersionForSave bumps the optimistic lock version after a
// successful persist. Called by the repository, not by application code.
func (o *Order) IncrementVersionForSave() {
	o.version++
}

// ============================================================================
// Getters
// ============================================================================

func (o *Order) ID() string     { return o.id }
func (o *Order) Number() string { return o.number }
func (o *Order) UserID() string { return o.userID }

// Items returns a copy of the order items.
func (o *Order) Items() []OrderItem {
	items := make([]OrderItem, len(o.items))
	copy(items, o.items)
	return items
}

func (o *Order) Subtotal() shared.Money          { return o.subtotal }
func (o *Order) DiscountAmount() shared.Money    { return o.discountAmount }
func (o *Order) ShippingAmount() shared.Money    { return o.shippingAmount }
func (o *Order) TaxAmount() shared.Money         { return o.taxAmount }
func (o *Order) Total() shared.Money             { return o.total }
func (o *Order) DiscountCode() string            { return o.discountCode }
func (o *Order) PaymentStatus() PaymentStatus    { return o.paymentStatus }
func (o *Order) PaymentRef() string              { return o.paymentRef }
func (o *Order) DeliveryStatus() DeliveryStatus  { return o.deliveryStatus }
func (o *Order) ShippingAddress() string         { return o.shippingAddress }
func (o *Order) PaymentMethod() string           { return o.paymentMethod }
func (o *Order) TrackingNumber() string          { return o.trackingNumber }
func (o *Order) Notes() string                   { return o.notes }
func (o *Order) CancelReason() string            { return o.cancelReason }
func (o *Order) Version() int                    { return o.version }
func (o *Order) CreatedAt() time.Time            { return o.createdAt }
func (o *Order) UpdatedAt() time.Time            { return o.updatedAt }

// EstimatedDelivery returns a copy of the optional estimated delivery time.
func (o *Order) EstimatedDelivery() *time.Time {
	if o.estimatedDelivery == nil {
		return nil
	}
	t := *o.estimatedDelivery
	return &t
}

// DeliveredAt returns a copy of the optional delivered timestamp.
func (o *Order) DeliveredAt() *time.Time {
	if o.deliveredAt == nil {
		return nil
	}
	t := *o.deliveredAt
	return &t
}

// OrderItem getters

func (item OrderItem) ID() string              { return item.id }
func (item OrderItem) ProductID() string       { return item.productID }
func (item OrderItem) ProductName() string     { return item.productName }
func (item OrderItem) Quantity() int           { return item.quantity }
func (item OrderItem) UnitPrice() shared.Money { return item.unitPrice }
func (item OrderItem) LineTotal() shared.Money { return item.lineTotal }
