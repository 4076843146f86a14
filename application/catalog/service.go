// Package catalog - catalog administration use cases.
package catalog

import (
	"context"

	"storefront/domain/catalog"
	"storefront/domain/shared"
	apperrors "storefront/pkg/errors"
	"storefront/pkg/logger"

	"go.uber.org/zap"
)

// Service implements catalog administration: creating products, listing
// them and toggling availability. Stock adjustments outside order flows
// go through Restock.
type Service struct {
	products catalog.Repository
	currency string
}

// NewService creates the catalog application service.
func NewService(products catalog.Repository, currency string) *Service {
	return &Service{products: products, currency: currency}
}

// CreateProduct adds a product to the catalog.
func (s *Service) CreateProduct(ctx context.Context, req *CreateProductRequest) (*ProductResponse, error) {
	product, err := catalog.NewProduct(req.SKU, req.Name, *shared.NewMoney(req.UnitPrice, s.currency), req.Stock)
	if err != nil {
		return nil, apperrors.FromDomainError(err)
	}
	if err := s.products.Save(ctx, product); err != nil {
		return nil, apperrors.FromDomainError(err)
	}

	logger.Info("Product created",
		zap.String("product_id", product.ID()),
		zap.String("sku", product.SKU()),
		zap.Int("stock", product.Stock()),
	)
	return ToProductResponse(product), nil
}

// GetProduct loads one product.
func (s *Service) GetProduct(ctx context.Context, id string) (*ProductResponse, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.FromDomainError(err)
	}
	return ToProductResponse(product), nil
}

// ListProducts lists the catalog.
func (s *Service) ListProducts(ctx context.Context) ([]*ProductResponse, error) {
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, apperrors.FromDomainError(err)
	}

	responses := make([]*ProductResponse, len(products))
	for i, product := range products {
		responses[i] = ToProductResponse(product)
	}
	return responses, nil
}

// SetProductActive toggles whether a product may be ordered.
func (s *Service) SetProductActive(ctx context.Context, id string, active bool) (*ProductResponse, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.FromDomainError(err)
	}
	if active {
		product.Activate()
	} else {
		product.Deactivate()
	}
	if err := s.products.Save(ctx, product); err != nil {
		return nil, apperrors.FromDomainError(err)
	}

	logger.Info("Product availability changed",
		zap.String("product_id", id),
		zap.Bool("active", active),
	)
	return ToProductResponse(product), nil
}

// Restock adds stock outside an order flow, for inbound inventory.
func (s *Service) Restock(ctx context.Context, id string, quantity int) (*ProductResponse, error) {
	if err := s.products.ReleaseStock(ctx, id, quantity); err != nil {
		return nil, apperrors.FromDomainError(err)
	}

	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.FromDomainError(err)
	}

	logger.Info("Product restocked",
		zap.String("product_id", id),
		zap.Int("quantity", quantity),
	)
	return ToProductResponse(product), nil
}
