package po

import (
	"time"

	"storefront/domain/order"
	"storefront/domain/shared"
)

// OrderPO order persistence object. The unique index on Number is the
// authoritative guard against order-number collisions.
type OrderPO struct {
	ID                string     `gorm:"primaryKey;size:64"`
	Number            string     `gorm:"size:32;uniqueIndex;not null"`
	UserID            string     `gorm:"size:64;index;not null"`
	Subtotal          int64      `gorm:"not null"`
	DiscountAmount    int64      `gorm:"not null"`
	ShippingAmount    int64      `gorm:"not null"`
	TaxAmount         int64      `gorm:"not null"`
	Total             int64      `gorm:"not null"`
	Currency          string     `gorm:"size:3;not null"`
	DiscountCode      string     `gorm:"size:64"`
	PaymentStatus     string     `gorm:"size:20;not null"`
	PaymentRef        string     `gorm:"size:128"`
	DeliveryStatus    string     `gorm:"size:20;not null"`
	ShippingAddress   string     `gorm:"size:512;not null"`
	PaymentMethod     string     `gorm:"size:64;not null"`
	TrackingNumber    string     `gorm:"size:128"`
	EstimatedDelivery *time.Time `gorm:""`
	DeliveredAt       *time.Time `gorm:""`
	Notes             string     `gorm:"size:1024"`
	CancelReason      string     `gorm:"size:512"`
	Version           int        `gorm:"default:0"`
	CreatedAt         time.Time  `gorm:"autoCreateTime"`
	UpdatedAt         time.Time  `gorm:"autoUpdateTime"`
}

// TableName specifies the table name
func (OrderPO) TableName() string {
	return "orders"
}

// OrderItemPO order item persistence object
type OrderItemPO struct {
	ID          string `gorm:"primaryKey;size:128"`
	OrderID     string `gorm:"size:64;index;not null"`
	ProductID   string `gorm:"size:64;not null"`
	ProductName string `gorm:"size:255;not null"`
	Quantity    int    `gorm:"not null"`
	UnitPrice   int64  `gorm:"not null"`
	LineTotal   int64  `gorm:"not null"`
	Currency    string `gorm:"size:3;not null"`
}

// TableName specifies the table name
func (OrderItemPO) TableName() string {
	return "order_items"
}

// FromOrderDomain converts the aggregate to persistence objects.
func FromOrderDomain(o *order.Order) (*OrderPO, []OrderItemPO) {
	orderPO := &OrderPO{
		ID:                o.ID(),
		Number:            o.Number(),
		UserID:            o.UserID(),
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
		Version:           o.Version(),
		CreatedAt:         o.CreatedAt(),
		UpdatedAt:         o.UpdatedAt(),
	}

	items := o.Items()
	itemPOs := make([]OrderItemPO, len(items))
	for i, item := range items {
		itemPOs[i] = OrderItemPO{
			ID:          item.ID(),
			OrderID:     o.ID(),
			ProductID:   item.ProductID(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice().Amount(),
			LineTotal:   item.LineTotal().Amount(),
			Currency:    item.UnitPrice().Currency(),
		}
	}

	return orderPO, itemPOs
}

// ToDomain converts persistence objects back to the aggregate.
func (p *OrderPO) ToDomain(itemPOs []OrderItemPO) *order.Order {
	items := make([]order.OrderItem, len(itemPOs))
	for i, itemPO := range itemPOs {
		items[i] = order.RebuildItemFromDTO(order.ItemReconstructionDTO{
			ID:          itemPO.ID,
			ProductID:   itemPO.ProductID,
			ProductName: itemPO.ProductName,
			Quantity:    itemPO.Quantity,
			UnitPrice:   *shared.NewMoney(itemPO.UnitPrice, itemPO.Currency),
			LineTotal:   *shared.NewMoney(itemPO.LineTotal, itemPO.Currency),
		})
	}

	return order.RebuildFromDTO(order.ReconstructionDTO{
		ID:                p.ID,
		Number:            p.Number,
		UserID:            p.UserID,
		Items:             items,
		Subtotal:          *shared.NewMoney(p.Subtotal, p.Currency),
		DiscountAmount:    *shared.NewMoney(p.DiscountAmount, p.Currency),
		ShippingAmount:    *shared.NewMoney(p.ShippingAmount, p.Currency),
		TaxAmount:         *shared.NewMoney(p.TaxAmount, p.Currency),
		Total:             *shared.NewMoney(p.Total, p.Currency),
		DiscountCode:      p.DiscountCode,
		PaymentStatus:     order.PaymentStatus(p.PaymentStatus),
		PaymentRef:        p.PaymentRef,
		DeliveryStatus:    order.DeliveryStatus(p.DeliveryStatus),
		ShippingAddress:   p.ShippingAddress,
		PaymentMethod:     p.PaymentMethod,
		TrackingNumber:    p.TrackingNumber,
		EstimatedDelivery: p.EstimatedDelivery,
		DeliveredAt:       p.DeliveredAt,
		Notes:             p.Notes,
		CancelReason:      p.CancelReason,
		Version:           p.Version,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	})
}
