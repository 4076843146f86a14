package catalog

import (
	"errors"
	"testing"
	"time"

	"storefront/domain/shared"
)

func TestNewProduct(t *testing.T) {
	product, err := NewProduct("SKU-001", "Espresso Machine", *shared.NewMoney(49900, "EUR"), 10)
	if err != nil {
		t.Fatalf("NewProduct failed: %v", err)
	}

	if product.ID() == "" {
		t.Error("expected a generated product ID")
	}
	if !product.IsActive() {
		t.Error("new products should start active")
	}
	if product.Stock() != 10 {
		t.Errorf("expected stock 10, got %d", product.Stock())
	}

	t.Log("✓ Product creation tests passed")
}

func TestNewProductValidation(t *testing.T) {
	price := *shared.NewMoney(1000, "EUR")

	cases := []struct {
		name  string
		sku   string
		pname string
		price shared.Money
		stock int
	}{
		{"empty sku", "", "Widget", price, 1},
		{"empty name", "SKU-001", "", price, 1},
		{"negative price", "SKU-001", "Widget", *shared.NewMoney(-1, "EUR"), 1},
		{"negative stock", "SKU-001", "Widget", price, -1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewProduct(tc.sku, tc.pname, tc.price, tc.stock); !errors.Is(err, ErrInvalidProduct) {
				t.Errorf("expected ErrInvalidProduct, got %v", err)
			}
		})
	}
}

func TestProductActivation(t *testing.T) {
	product, err := NewProduct("SKU-002", "Grinder", *shared.NewMoney(9900, "EUR"), 5)
	if err != nil {
		t.Fatalf("NewProduct failed: %v", err)
	}

	product.Deactivate()
	if product.IsActive() {
		t.Error("expected product to be inactive after Deactivate")
	}

	product.Activate()
	if !product.IsActive() {
		t.Error("expected product to be active after Activate")
	}
}

func TestProductRebuildFromDTO(t *testing.T) {
	now := time.Now()
	product := RebuildFromDTO(ReconstructionDTO{
		ID:        "p-1",
		SKU:       "SKU-003",
		Name:      "Kettle",
		UnitPrice: *shared.NewMoney(2500, "EUR"),
		Active:    false,
		Stock:     7,
		CreatedAt: now,
		UpdatedAt: now,
	})

	if product.ID() != "p-1" || product.Stock() != 7 || product.IsActive() {
		t.Errorf("rebuilt product does not match DTO: %+v", product)
	}
}
