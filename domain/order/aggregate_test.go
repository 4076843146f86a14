package order

import (
	"errors"
	"testing"
	"time"

	"storefront/domain/shared"
)

func buildTestOrder(t *testing.T) *Order {
	t.Helper()

	calc := NewPricingCalculator(1900, 5000, "EUR")
	specs := []ItemSpec{
		{ProductID: "p-1", ProductName: "Espresso Machine", Quantity: 2, UnitPrice: *shared.NewMoney(30000, "EUR")},
	}
	subtotal, err := calc.Subtotal(specs)
	if err != nil {
		t.Fatalf("Subtotal failed: %v", err)
	}
	totals, err := calc.Price(subtotal, shared.Zero("EUR"))
	if err != nil {
		t.Fatalf("Price failed: %v", err)
	}

	o, err := NewOrder("ORD260831123456", "user-1", specs, totals, "1 Main St", "credit_card", "", "")
	if err != nil {
		t.Fatalf("NewOrder failed: %v", err)
	}
	return o
}

func TestNewOrder(t *testing.T) {
	o := buildTestOrder(t)

	if o.PaymentStatus() != PaymentPending {
		t.Errorf("expected payment PENDING, got %s", o.PaymentStatus())
	}
	if o.DeliveryStatus() != DeliveryPending {
		t.Errorf("expected delivery PENDING, got %s", o.DeliveryStatus())
	}
	if o.Version() != 0 {
		t.Errorf("new orders start at version 0, got %d", o.Version())
	}
	if len(o.Items()) != 1 {
		t.Fatalf("expected 1 item, got %d", len(o.Items()))
	}
	if o.Items()[0].LineTotal().Amount() != 60000 {
		t.Errorf("expected line total 60000, got %d", o.Items()[0].LineTotal().Amount())
	}

	t.Log("✓ Order creation tests passed")
}

func TestNewOrderValidation(t *testing.T) {
	calc := NewPricingCalculator(1900, 5000, "EUR")
	totals, _ := calc.Price(*shared.NewMoney(60000, "EUR"), shared.Zero("EUR"))

	if _, err := NewOrder("", "user-1", nil, totals, "addr", "card", "", ""); err == nil {
		t.Error("expected error for empty order number")
	}
	if _, err := NewOrder("N-1", "user-1", []ItemSpec{}, totals, "addr", "card", "", ""); !errors.Is(err, ErrEmptyOrderItems) {
		t.Errorf("expected ErrEmptyOrderItems, got %v", err)
	}

	specs := []ItemSpec{{ProductID: "p-1", ProductName: "A", Quantity: 0, UnitPrice: *shared.NewMoney(100, "EUR")}}
	if _, err := NewOrder("N-1", "user-1", specs, totals, "addr", "card", "", ""); !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("expected ErrInvalidQuantity, got %v", err)
	}

	// subtotal must match the line totals
	mismatched := []ItemSpec{{ProductID: "p-1", ProductName: "A", Quantity: 1, UnitPrice: *shared.NewMoney(100, "EUR")}}
	if _, err := NewOrder("N-1", "user-1", mismatched, totals, "addr", "card", "", ""); err == nil {
		t.Error("expected error for subtotal mismatch")
	}
}

func TestRecordPaymentResult(t *testing.T) {
	o := buildTestOrder(t)

	if err := o.RecordPaymentResult(PaymentApproved, "gw-123"); err != nil {
		t.Fatalf("RecordPaymentResult failed: %v", err)
	}
	if o.PaymentStatus() != PaymentApproved || o.PaymentRef() != "gw-123" {
		t.Errorf("payment result not recorded: %s %s", o.PaymentStatus(), o.PaymentRef())
	}

	// refund after approval is allowed
	if err := o.RecordPaymentResult(PaymentRefunded, ""); err != nil {
		t.Fatalf("refund failed: %v", err)
	}

	// terminal: no further results
	if err := o.RecordPaymentResult(PaymentApproved, ""); !errors.Is(err, ErrInvalidStateTransition) {
		t.Errorf("expected ErrInvalidStateTransition after REFUNDED, got %v", err)
	}

	o2 := buildTestOrder(t)
	if err := o2.RecordPaymentResult(PaymentRejected, ""); err != nil {
		t.Fatalf("rejection failed: %v", err)
	}
	if err := o2.RecordPaymentResult(PaymentApproved, ""); !errors.Is(err, ErrInvalidStateTransition) {
		t.Errorf("expected ErrInvalidStateTransition after REJECTED, got %v", err)
	}

	if err := buildTestOrder(t).RecordPaymentResult(PaymentStatus("BOGUS"), ""); !errors.Is(err, ErrInvalidPaymentStatus) {
		t.Errorf("expected ErrInvalidPaymentStatus, got %v", err)
	}
}

func TestAdvanceDelivery(t *testing.T) {
	o := buildTestOrder(t)

	if err := o.AdvanceDelivery(DeliveryProcessing, "", nil); err != nil {
		t.Fatalf("advance to PROCESSING failed: %v", err)
	}

	eta := time.Now().Add(48 * time.Hour)
	if err := o.AdvanceDelivery(DeliveryShipped, "TRACK-1", &eta); err != nil {
		t.Fatalf("advance to SHIPPED failed: %v", err)
	}
	if o.TrackingNumber() != "TRACK-1" {
		t.Errorf("tracking number not stored: %q", o.TrackingNumber())
	}
	if o.EstimatedDelivery() == nil {
		t.Error("estimated delivery not stored")
	}

	// backwards is rejected
	if err := o.AdvanceDelivery(DeliveryProcessing, "", nil); !errors.Is(err, ErrInvalidStateTransition) {
		t.Errorf("expected ErrInvalidStateTransition going backwards, got %v", err)
	}

	if err := o.AdvanceDelivery(DeliveryDelivered, "", nil); err != nil {
		t.Fatalf("advance to DELIVERED failed: %v", err)
	}
	delivered := o.DeliveredAt()
	if delivered == nil {
		t.Fatal("deliveredAt not stamped")
	}

	// DELIVERED is terminal
	if err := o.AdvanceDelivery(DeliveryDelivered, "", nil); !errors.Is(err, ErrInvalidStateTransition) {
		t.Errorf("expected ErrInvalidStateTransition after DELIVERED, got %v", err)
	}
	if !o.DeliveredAt().Equal(*delivered) {
		t.Error("deliveredAt must be stamped exactly once")
	}

	t.Log("✓ Delivery state machine tests passed")
}

func TestAdvanceDeliverySkipsLevels(t *testing.T) {
	// jumping straight to SHIPPED is a forward move, so it is allowed
	o := buildTestOrder(t)
	if err := o.AdvanceDelivery(DeliveryShipped, "", nil); err != nil {
		t.Fatalf("skipping PROCESSING should be allowed: %v", err)
	}
}

func TestAdvanceDeliveryRejectsCancelTarget(t *testing.T) {
	o := buildTestOrder(t)
	if err := o.AdvanceDelivery(DeliveryCancelled, "", nil); !errors.Is(err, ErrInvalidDeliveryStatus) {
		t.Errorf("CANCELLED must only be reachable through Cancel, got %v", err)
	}
	if err := o.AdvanceDelivery(DeliveryPending, "", nil); !errors.Is(err, ErrInvalidDeliveryStatus) {
		t.Errorf("PENDING is not a valid advance target, got %v", err)
	}
}

func TestCancel(t *testing.T) {
	o := buildTestOrder(t)

	if err := o.Cancel("changed my mind"); err != nil {
		t.Fatalf("Cancel failed: %v", err)
	}
	if o.DeliveryStatus() != DeliveryCancelled || o.CancelReason() != "changed my mind" {
		t.Errorf("cancel not recorded: %s %q", o.DeliveryStatus(), o.CancelReason())
	}

	// a second cancel fails, which protects against double stock release
	if err := o.Cancel("again"); !errors.Is(err, ErrInvalidStateTransition) {
		t.Errorf("expected ErrInvalidStateTransition on double cancel, got %v", err)
	}

	// advancing a cancelled order fails
	if err := o.AdvanceDelivery(DeliveryShipped, "", nil); !errors.Is(err, ErrInvalidStateTransition) {
		t.Errorf("expected ErrInvalidStateTransition on cancelled order, got %v", err)
	}

	// delivered orders cannot be cancelled
	o2 := buildTestOrder(t)
	if err := o2.AdvanceDelivery(DeliveryDelivered, "", nil); err != nil {
		t.Fatalf("advance failed: %v", err)
	}
	if err := o2.Cancel("too late"); !errors.Is(err, ErrInvalidStateTransition) {
		t.Errorf("expected ErrInvalidStateTransition cancelling delivered order, got %v", err)
	}
}
