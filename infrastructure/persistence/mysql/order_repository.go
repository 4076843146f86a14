package mysql

import (
	"context"
	"errors"
	"time"

	"storefront/domain/order"
	"storefront/infrastructure/persistence"
	"storefront/infrastructure/persistence/mysql/po"

	"gorm.io/gorm"
)

// OrderRepository MySQL/GORM implementation of the order store.
//
// Inserts rely on the unique index on the order number; a violated index
// surfaces as ErrDuplicateNumber so the number generator can redraw.
// Updates are guarded by the optimistic lock version column.
type OrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates the order repository.
func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// getDB returns the transaction from context if available, otherwise the default db
func (r *OrderRepository) getDB(ctx context.Context) *gorm.DB {
	if tx := persistence.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

// Save persists the aggregate and its items.
func (r *OrderRepository) Save(ctx context.Context, o *order.Order) error {
	if o.Version() == 0 {
		return r.insert(ctx, o)
	}
	return r.update(ctx, o)
}

func (r *OrderRepository) insert(ctx context.Context, o *order.Order) error {
	db := r.getDB(ctx)
	orderPO, itemPOs := po.FromOrderDomain(o)

	if err := db.Create(orderPO).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return order.ErrDuplicateNumber
		}
		return err
	}
	if len(itemPOs) > 0 {
		if err := db.Create(&itemPOs).Error; err != nil {
			return err
		}
	}

	o.IncrementVersionForSave()
	return nil
}

func (r *OrderRepository) update(ctx context.Context, o *order.Order) error {
	db := r.getDB(ctx)
	orderPO, itemPOs := po.FromOrderDomain(o)

	result := db.Model(&po.OrderPO{}).
		Where("id = ? AND version = ?", o.ID(), o.Version()).
		Updates(map[string]interface{}{
			"subtotal":           orderPO.Subtotal,
			"discount_amount":    orderPO.DiscountAmount,
			"shipping_amount":    orderPO.ShippingAmount,
			"tax_amount":         orderPO.TaxAmount,
			"total":              orderPO.Total,
			"discount_code":      orderPO.DiscountCode,
			"payment_status":     orderPO.PaymentStatus,
			"payment_ref":        orderPO.PaymentRef,
			"delivery_status":    orderPO.DeliveryStatus,
			"shipping_address":   orderPO.ShippingAddress,
			"payment_method":     orderPO.PaymentMethod,
			"tracking_number":    orderPO.TrackingNumber,
			"estimated_delivery": orderPO.EstimatedDelivery,
			"delivered_at":       orderPO.DeliveredAt,
			"notes":              orderPO.Notes,
			"cancel_reason":      orderPO.CancelReason,
			"version":            o.Version() + 1,
			"updated_at":         time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return order.ErrConcurrentModification
	}

	// Item snapshots are immutable after creation, but replace them
	// wholesale so Save stays a full-aggregate write.
	if err := db.Where("order_id = ?", o.ID()).Delete(&po.OrderItemPO{}).Error; err != nil {
		return err
	}
	if len(itemPOs) > 0 {
		if err := db.Create(&itemPOs).Error; err != nil {
			return err
		}
	}

	o.IncrementVersionForSave()
	return nil
}

// FindByID loads an order with its items.
func (r *OrderRepository) FindByID(ctx context.Context, id string) (*order.Order, error) {
	db := r.getDB(ctx)

	var orderPO po.OrderPO
	if err := db.First(&orderPO, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, order.ErrOrderNotFound
		}
		return nil, err
	}

	itemPOs, err := r.findItems(db, []string{orderPO.ID})
	if err != nil {
		return nil, err
	}
	return orderPO.ToDomain(itemPOs[orderPO.ID]), nil
}

// FindByUserID lists a user's orders, newest first.
func (r *OrderRepository) FindByUserID(ctx context.Context, userID string) ([]*order.Order, error) {
	db := r.getDB(ctx)

	var orderPOs []po.OrderPO
	if err := db.Where("user_id = ?", userID).Order("created_at DESC").Find(&orderPOs).Error; err != nil {
		return nil, err
	}
	if len(orderPOs) == 0 {
		return []*order.Order{}, nil
	}

	orderIDs := make([]string, len(orderPOs))
	for i, orderPO := range orderPOs {
		orderIDs[i] = orderPO.ID
	}
	itemsByOrder, err := r.findItems(db, orderIDs)
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, len(orderPOs))
	for i, orderPO := range orderPOs {
		orders[i] = orderPO.ToDomain(itemsByOrder[orderPO.ID])
	}
	return orders, nil
}

// ExistsByNumber reports whether an order already holds the number.
func (r *OrderRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	var count int64
	err := r.getDB(ctx).Model(&po.OrderPO{}).
		Where("number = ?", number).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *OrderRepository) findItems(db *gorm.DB, orderIDs []string) (map[string][]po.OrderItemPO, error) {
	var itemPOs []po.OrderItemPO
	if err := db.Where("order_id IN ?", orderIDs).Find(&itemPOs).Error; err != nil {
		return nil, err
	}

	byOrder := make(map[string][]po.OrderItemPO, len(orderIDs))
	for _, itemPO := range itemPOs {
		byOrder[itemPO.OrderID] = append(byOrder[itemPO.OrderID], itemPO)
	}
	return byOrder, nil
}

// Compile-time interface implementation check
var _ order.Repository = (*OrderRepository)(nil)
