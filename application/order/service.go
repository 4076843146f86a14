/*
Package order - order application service.

The service orchestrates one use case per method: it opens a unit of
work, drives the domain objects, and folds domain errors into coded
application errors. Stock reservation runs first so an order is only
built against stock that is already held; every failure path after a
reservation releases what was reserved. Under the transactional store
the rollback already undoes the reservation and the explicit release is
a harmless no-op inside the doomed transaction, but the in-memory store
has no rollback, so the release is what keeps stock consistent there.
*/
package order

import (
	"context"
	"errors"
	"fmt"

	"storefront/domain/catalog"
	"storefront/domain/discount"
	"storefront/domain/order"
	"storefront/domain/shared"
	apperrors "storefront/pkg/errors"
	"storefront/pkg/logger"

	"go.uber.org/zap"
)

// AdminRole actors with this role bypass ownership checks and may drive
// the payment and delivery axes.
const AdminRole = "admin"

// maxNumberRedraws bounds how often a persist is retried after the
// unique index rejected a number the existence check had missed.
const maxNumberRedraws = 3

// Service implements the order use cases.
type Service struct {
	uowFactory shared.UnitOfWorkFactory
	products   catalog.Repository
	orders     order.Repository
	discounts  *discount.Validator
	pricing    *order.PricingCalculator
	numbers    *order.NumberGenerator
}

// NewService creates the order application service.
func NewService(
	uowFactory shared.UnitOfWorkFactory,
	products catalog.Repository,
	orders order.Repository,
	discounts *discount.Validator,
	pricing *order.PricingCalculator,
	numbers *order.NumberGenerator,
) *Service {
	return &Service{
		uowFactory: uowFactory,
		products:   products,
		orders:     orders,
		discounts:  discounts,
		pricing:    pricing,
		numbers:    numbers,
	}
}

// reservation records one held stock line for compensation.
type reservation struct {
	productID string
	quantity  int
}

// CreateOrder places an order: reserve stock, snapshot prices, allocate a
// number, apply the discount code, price and persist. An invalid or
// exhausted discount code degrades to a zero discount instead of failing
// the order.
func (s *Service) CreateOrder(ctx context.Context, userID string, req *CreateOrderRequest) (*OrderResponse, error) {
	if userID == "" {
		return nil, apperrors.BadRequest("user id is required")
	}

	var response *OrderResponse
	err := s.uowFactory.New().Execute(ctx, func(ctx context.Context) error {
		o, err := s.createOrderTx(ctx, userID, req)
		if err != nil {
			return err
		}
		response = ToOrderResponse(o)
		return nil
	})
	if err != nil {
		return nil, apperrors.FromDomainError(err)
	}

	logger.Info("Order created",
		zap.String("order_id", response.ID),
		zap.String("order_number", response.Number),
		zap.String("user_id", userID),
		zap.Int64("total", response.Total),
		zap.String("discount_code", response.DiscountCode),
	)
	return response, nil
}

func (s *Service) createOrderTx(ctx context.Context, userID string, req *CreateOrderRequest) (*order.Order, error) {
	reserved := make([]reservation, 0, len(req.Items))
	release := func() { s.releaseReservations(ctx, reserved) }

	specs := make([]order.ItemSpec, 0, len(req.Items))
	for _, item := range req.Items {
		product, err := s.products.FindByID(ctx, item.ProductID)
		if err != nil {
			release()
			return nil, err
		}
		if err := s.products.ReserveStock(ctx, item.ProductID, item.Quantity); err != nil {
			release()
			return nil, err
		}
		reserved = append(reserved, reservation{productID: item.ProductID, quantity: item.Quantity})

		specs = append(specs, order.ItemSpec{
			ProductID:   product.ID(),
			ProductName: product.Name(),
			Quantity:    item.Quantity,
			UnitPrice:   product.UnitPrice(),
		})
	}

	subtotal, err := s.pricing.Subtotal(specs)
	if err != nil {
		release()
		return nil, err
	}

	number, err := s.numbers.Generate(ctx)
	if err != nil {
		release()
		return nil, err
	}

	// The discount use is spent after the number draw succeeded, so a
	// failed draw never burns a redemption on the transactionless store.
	discountAmount, appliedCode, err := s.applyDiscount(ctx, req.DiscountCode, subtotal)
	if err != nil {
		release()
		return nil, err
	}

	totals, err := s.pricing.Price(subtotal, discountAmount)
	if err != nil {
		release()
		return nil, err
	}

	for redraw := 0; ; redraw++ {
		o, err := order.NewOrder(number, userID, specs, totals,
			req.ShippingAddress, req.PaymentMethod, req.Notes, appliedCode)
		if err != nil {
			release()
			return nil, err
		}

		err = s.orders.Save(ctx, o)
		if err == nil {
			return o, nil
		}
		if !errors.Is(err, order.ErrDuplicateNumber) || redraw >= maxNumberRedraws {
			release()
			return nil, err
		}

		// The existence check raced another writer; draw a fresh number.
		logger.Warn("Order number collided on insert, redrawing",
			zap.String("order_number", number),
			zap.Int("redraw", redraw+1),
		)
		number, err = s.numbers.Generate(ctx)
		if err != nil {
			release()
			return nil, err
		}
	}
}

// applyDiscount redeems the code against the subtotal. Soft rejections
// (unknown, inactive, expired, exhausted, below minimum) degrade to a
// zero discount; infrastructure errors propagate.
func (s *Service) applyDiscount(ctx context.Context, code string, subtotal shared.Money) (shared.Money, string, error) {
	if code == "" {
		return shared.Zero(subtotal.Currency()), "", nil
	}

	amount, _, err := s.discounts.Apply(ctx, code, subtotal)
	if err != nil {
		if discount.IsRejection(err) {
			logger.Warn("Discount code not applied",
				zap.String("discount_code", code),
				zap.String("reason", err.Error()),
			)
			return shared.Zero(subtotal.Currency()), "", nil
		}
		return shared.Zero(subtotal.Currency()), "", err
	}
	return amount, code, nil
}

// releaseReservations hands back held stock on a failed order build.
// Failures are logged, not propagated: the order creation error is the
// one the caller needs to see.
func (s *Service) releaseReservations(ctx context.Context, reserved []reservation) {
	for _, r := range reserved {
		if err := s.products.ReleaseStock(ctx, r.productID, r.quantity); err != nil {
			logger.Error("Failed to release reserved stock",
				zap.String("product_id", r.productID),
				zap.Int("quantity", r.quantity),
				zap.Error(err),
			)
		}
	}
}

// GetOrder loads one order. Non-admin callers may only see their own.
func (s *Service) GetOrder(ctx context.Context, orderID, userID, role string) (*OrderResponse, error) {
	o, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, apperrors.FromDomainError(err)
	}
	if role != AdminRole && o.UserID() != userID {
		return nil, apperrors.FromDomainError(order.ErrForbidden)
	}
	return ToOrderResponse(o), nil
}

// ListUserOrders lists the caller's orders, newest first.
func (s *Service) ListUserOrders(ctx context.Context, userID string) ([]*OrderResponse, error) {
	orders, err := s.orders.FindByUserID(ctx, userID)
	if err != nil {
		return nil, apperrors.FromDomainError(err)
	}
	return ToOrderResponses(orders), nil
}

// CancelOrder cancels an order and releases its stock. The owner or an
// admin may cancel; a second cancel fails in the aggregate, so the stock
// of an order is never released twice.
func (s *Service) CancelOrder(ctx context.Context, orderID, userID, role, reason string) (*OrderResponse, error) {
	var response *OrderResponse
	err := s.uowFactory.New().Execute(ctx, func(ctx context.Context) error {
		o, err := s.orders.FindByID(ctx, orderID)
		if err != nil {
			return err
		}
		if role != AdminRole && o.UserID() != userID {
			return order.ErrForbidden
		}
		if err := o.Cancel(reason); err != nil {
			return err
		}
		if err := s.orders.Save(ctx, o); err != nil {
			return err
		}

		for _, item := range o.Items() {
			if err := s.products.ReleaseStock(ctx, item.ProductID(), item.Quantity()); err != nil {
				return fmt.Errorf("release stock for product %s: %w", item.ProductID(), err)
			}
		}

		response = ToOrderResponse(o)
		return nil
	})
	if err != nil {
		return nil, apperrors.FromDomainError(err)
	}

	logger.Info("Order cancelled",
		zap.String("order_id", orderID),
		zap.String("user_id", userID),
		zap.String("reason", reason),
	)
	return response, nil
}

// UpdatePaymentStatus records a payment result. Admin only; the
// controller enforces the role, the service enforces the state machine.
func (s *Service) UpdatePaymentStatus(ctx context.Context, orderID string, req *UpdatePaymentStatusRequest) (*OrderResponse, error) {
	status := order.PaymentStatus(req.Status)
	if !order.ValidPaymentStatus(status) {
		return nil, apperrors.FromDomainError(order.ErrInvalidPaymentStatus)
	}

	var response *OrderResponse
	err := s.uowFactory.New().Execute(ctx, func(ctx context.Context) error {
		o, err := s.orders.FindByID(ctx, orderID)
		if err != nil {
			return err
		}
		if err := o.RecordPaymentResult(status, req.PaymentRef); err != nil {
			return err
		}
		if err := s.orders.Save(ctx, o); err != nil {
			return err
		}
		response = ToOrderResponse(o)
		return nil
	})
	if err != nil {
		return nil, apperrors.FromDomainError(err)
	}

	logger.Info("Payment status updated",
		zap.String("order_id", orderID),
		zap.String("payment_status", req.Status),
	)
	return response, nil
}

// UpdateDeliveryStatus advances the delivery status. Admin only.
func (s *Service) UpdateDeliveryStatus(ctx context.Context, orderID string, req *UpdateDeliveryStatusRequest) (*OrderResponse, error) {
	var response *OrderResponse
	err := s.uowFactory.New().Execute(ctx, func(ctx context.Context) error {
		o, err := s.orders.FindByID(ctx, orderID)
		if err != nil {
			return err
		}
		if err := o.AdvanceDelivery(order.DeliveryStatus(req.Status), req.TrackingNumber, req.EstimatedDelivery); err != nil {
			return err
		}
		if err := s.orders.Save(ctx, o); err != nil {
			return err
		}
		response = ToOrderResponse(o)
		return nil
	})
	if err != nil {
		return nil, apperrors.FromDomainError(err)
	}

	logger.Info("Delivery status updated",
		zap.String("order_id", orderID),
		zap.String("delivery_status", req.Status),
	)
	return response, nil
}

// ValidateDiscountCode checks a code against a prospective subtotal
// without spending a use. Rejections come back as a non-valid result,
// not an error.
func (s *Service) ValidateDiscountCode(ctx context.Context, req *ValidateDiscountRequest) (*ValidateDiscountResponse, error) {
	subtotal := *shared.NewMoney(req.Subtotal, s.pricing.Currency())

	amount, _, err := s.discounts.Check(ctx, req.Code, subtotal)
	if err != nil {
		if discount.IsRejection(err) {
			return &ValidateDiscountResponse{
				Code:     req.Code,
				Valid:    false,
				Currency: subtotal.Currency(),
				Reason:   err.Error(),
			}, nil
		}
		return nil, apperrors.FromDomainError(err)
	}

	return &ValidateDiscountResponse{
		Code:           req.Code,
		Valid:          true,
		DiscountAmount: amount.Amount(),
		Currency:       subtotal.Currency(),
	}, nil
}
