package mysql

import (
	"context"
	"errors"
	"time"

	"storefront/domain/catalog"
	"storefront/infrastructure/persistence"
	"storefront/infrastructure/persistence/mysql/po"

	"gorm.io/gorm"
)

// ProductRepository MySQL/GORM implementation of the stock ledger.
//
// Stock is mutated exclusively through conditional updates
// (stock = stock - ? WHERE stock >= ?) so the check and the decrement
// are one atomic statement; no interleaving writer can observe a stale
// stock value between them.
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates the product repository.
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// getDB returns the transaction from context if available, otherwise the default db
func (r *ProductRepository) getDB(ctx context.Context) *gorm.DB {
	if tx := persistence.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

// FindByID loads a product by id.
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*catalog.Product, error) {
	var productPO po.ProductPO
	result := r.getDB(ctx).First(&productPO, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrProductNotFound
		}
		return nil, result.Error
	}
	return productPO.ToDomain(), nil
}

// FindAll lists the catalog.
func (r *ProductRepository) FindAll(ctx context.Context) ([]*catalog.Product, error) {
	var productPOs []po.ProductPO
	if err := r.getDB(ctx).Order("created_at DESC").Find(&productPOs).Error; err != nil {
		return nil, err
	}

	products := make([]*catalog.Product, len(productPOs))
	for i, productPO := range productPOs {
		products[i] = productPO.ToDomain()
	}
	return products, nil
}

// Save persists a product. For existing rows the stock column is left
// alone; stock only moves through ReserveStock/ReleaseStock.
func (r *ProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	db := r.getDB(ctx)

	result := db.Model(&po.ProductPO{}).
		Where("id = ?", product.ID()).
		Updates(map[string]interface{}{
			"sku":        product.SKU(),
			"name":       product.Name(),
			"unit_price": product.UnitPrice().Amount(),
			"currency":   product.UnitPrice().Currency(),
			"active":     product.IsActive(),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	return db.Create(po.FromProductDomain(product)).Error
}

// ReserveStock atomically decrements stock, failing when the product is
// missing, inactive or short on stock. A failed conditional update is
// classified with a follow-up read.
func (r *ProductRepository) ReserveStock(ctx context.Context, id string, quantity int) error {
	if quantity <= 0 {
		return catalog.ErrInvalidQuantity
	}
	db := r.getDB(ctx)

	result := db.Model(&po.ProductPO{}).
		Where("id = ? AND active = ? AND stock >= ?", id, true, quantity).
		UpdateColumn("stock", gorm.Expr("stock - ?", quantity))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 1 {
		return nil
	}

	var productPO po.ProductPO
	if err := db.First(&productPO, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return catalog.ErrProductNotFound
		}
		return err
	}
	if !productPO.Active {
		return catalog.ErrProductInactive
	}
	return catalog.ErrInsufficientStock
}

// ReleaseStock atomically increments stock.
func (r *ProductRepository) ReleaseStock(ctx context.Context, id string, quantity int) error {
	if quantity <= 0 {
		return catalog.ErrInvalidQuantity
	}

	result := r.getDB(ctx).Model(&po.ProductPO{}).
		Where("id = ?", id).
		UpdateColumn("stock", gorm.Expr("stock + ?", quantity))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return catalog.ErrProductNotFound
	}
	return nil
}

// Compile-time interface implementation check
var _ catalog.Repository = (*ProductRepository)(nil)
