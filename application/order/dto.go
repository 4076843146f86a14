package order

import (
	"time"

	"storefront/domain/order"
)

// CreateOrderRequest input for placing an order. Quantities and the
// shipping address are validated by binding; prices never come from the
// client, they are snapshotted from the catalog.
type CreateOrderRequest struct {
	Items           []CreateOrderItemRequest `json:"items" binding:"required,min=1,dive"`
	ShippingAddress string                   `json:"shipping_address" binding:"required"`
	PaymentMethod   string                   `json:"payment_method" binding:"required"`
	Notes           string                   `json:"notes"`
	DiscountCode    string                   `json:"discount_code"`
}

// CreateOrderItemRequest one requested order line.
type CreateOrderItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

// UpdatePaymentStatusRequest input for recording a payment result.
type UpdatePaymentStatusRequest struct {
	Status     string `json:"status" binding:"required"`
	PaymentRef string `json:"payment_ref"`
}

// UpdateDeliveryStatusRequest input for advancing the delivery status.
type UpdateDeliveryStatusRequest struct {
	Status            string     `json:"status" binding:"required"`
	TrackingNumber    string     `json:"tracking_number"`
	EstimatedDelivery *time.Time `json:"estimated_delivery"`
}

// CancelOrderRequest input for cancelling an order.
type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

// ValidateDiscountRequest input for checking a discount code against a
// prospective subtotal, without spending a use.
type ValidateDiscountRequest struct {
	Code     string `json:"code" binding:"required"`
	Subtotal int64  `json:"subtotal" binding:"required,gt=0"`
}

// ValidateDiscountResponse result of a discount check.
type ValidateDiscountResponse struct {
	Code           string `json:"code"`
	Valid          bool   `json:"valid"`
	DiscountAmount int64  `json:"discount_amount"`
	Currency       string `json:"currency"`
	Reason         string `json:"reason,omitempty"`
}

// OrderItemResponse one order line in a response.
type OrderItemResponse struct {
	ID          string `json:"id"`
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	UnitPrice   int64  `json:"unit_price"`
	LineTotal   int64  `json:"line_total"`
}

// OrderResponse full order view. All monetary fields are minor units in
// the order's currency.
type OrderResponse struct {
	ID                string              `json:"id"`
	Number            string              `json:"number"`
	UserID            string              `json:"user_id"`
	Items             []OrderItemResponse `json:"items"`
	Subtotal          int64               `json:"subtotal"`
	DiscountAmount    int64               `json:"discount_amount"`
	ShippingAmount    int64               `json:"shipping_amount"`
	TaxAmount         int64               `json:"tax_amount"`
	Total             int64               `json:"total"`
	Currency          string              `json:"currency"`
	DiscountCode      string              `json:"discount_code,omitempty"`
	PaymentStatus     string              `json:"payment_status"`
	PaymentRef        string              `json:"payment_ref,omitempty"`
	DeliveryStatus    string              `json:"delivery_status"`
	ShippingAddress   string              `json:"shipping_address"`
	PaymentMethod     string              `json:"payment_method"`
	TrackingNumber    string              `json:"tracking_number,omitempty"`
	EstimatedDelivery *time.Time          `json:"estimated_delivery,omitempty"`
	DeliveredAt       *time.Time          `json:"delivered_at,omitempty"`
	Notes             string              `json:"notes,omitempty"`
	CancelReason      string              `json:"cancel_reason,omitempty"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`
}

// ToOrderResponse converts the aggregate to its response view.
func ToOrderResponse(o *order.Order) *OrderResponse {
	items := o.Items()
	itemResponses := make([]OrderItemResponse, len(items))
	for i, item := range items {
		itemResponses[i] = OrderItemResponse{
			ID:          item.ID(),
			ProductID:   item.ProductID(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice().Amount(),
			LineTotal:   item.LineTotal().Amount(),
		}
	}

	return &OrderResponse{
		ID:                o.ID(),
		Number:            o.Number(),
		UserID:            o.UserID(),
		Items:             itemResponses,
		Subtotal:          o.Subtotal().Amount(),
		DiscountAmount:    o.DiscountAmount().Amount(),
		ShippingAmount:    o.ShippingAmount().Amount(),
		TaxAmount:         o.TaxAmount().Amount(),
		Total:             o.Total().Amount(),
		Currency:          o.Total().Currency(),
		DiscountCode:      o.DiscountCode(),
		PaymentStatus:     string(o.PaymentStatus()),
		PaymentRef:        o.PaymentRef(),
		DeliveryStatus:    string(o.DeliveryStatus()),
		ShippingAddress:   o.ShippingAddress(),
		PaymentMethod:     o.PaymentMethod(),
		TrackingNumber:    o.TrackingNumber(),
		EstimatedDelivery: o.EstimatedDelivery(),
		DeliveredAt:       o.DeliveredAt(),
		Notes:             o.Notes(),
		CancelReason:      o.CancelReason(),
		CreatedAt:         o.CreatedAt(),
		UpdatedAt:         o.UpdatedAt(),
	}
}

// ToOrderResponses converts a list of aggregates.
func ToOrderResponses(orders []*order.Order) []*OrderResponse {
	responses := make([]*OrderResponse, len(orders))
	for i, o := range orders {
		responses[i] = ToOrderResponse(o)
	}
	return responses
}
