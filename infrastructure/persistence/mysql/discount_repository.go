package mysql

import (
	"context"
	"errors"
	"time"

	"storefront/domain/discount"
	"storefront/infrastructure/persistence"
	"storefront/infrastructure/persistence/mysql/po"

	"gorm.io/gorm"
)

// DiscountRepository MySQL/GORM implementation of the discount store.
//
// The usage counter moves only through IncrementUsage's conditional
// update, which re-checks the cap in the same statement. That update is
// the authoritative guard: a Redeemable check in application code is
// advisory and may be stale by the time the increment runs.
type DiscountRepository struct {
	db       *gorm.DB
	currency string
}

// NewDiscountRepository creates the discount repository. The currency
// prices the optional min-amount and max-discount caps.
func NewDiscountRepository(db *gorm.DB, currency string) *DiscountRepository {
	return &DiscountRepository{db: db, currency: currency}
}

// getDB returns the transaction from context if available, otherwise the default db
func (r *DiscountRepository) getDB(ctx context.Context) *gorm.DB {
	if tx := persistence.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

// FindByCode loads a discount code.
func (r *DiscountRepository) FindByCode(ctx context.Context, code string) (*discount.Code, error) {
	var codePO po.DiscountCodePO
	result := r.getDB(ctx).First(&codePO, "code = ?", code)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, discount.ErrCodeNotFound
		}
		return nil, result.Error
	}
	return codePO.ToDomain(), nil
}

// FindAll lists all discount codes.
func (r *DiscountRepository) FindAll(ctx context.Context) ([]*discount.Code, error) {
	var codePOs []po.DiscountCodePO
	if err := r.getDB(ctx).Order("created_at DESC").Find(&codePOs).Error; err != nil {
		return nil, err
	}

	codes := make([]*discount.Code, len(codePOs))
	for i, codePO := range codePOs {
		codes[i] = codePO.ToDomain()
	}
	return codes, nil
}

// Save persists a code definition. The usage counter column is left
// alone for existing rows; it only moves through IncrementUsage.
func (r *DiscountRepository) Save(ctx context.Context, code *discount.Code) error {
	db := r.getDB(ctx)
	codePO := po.FromDiscountDomain(code, r.currency)

	result := db.Model(&po.DiscountCodePO{}).
		Where("id = ?", code.ID()).
		Updates(map[string]interface{}{
			"code":         codePO.Code,
			"kind":         codePO.Kind,
			"value":        codePO.Value,
			"currency":     codePO.Currency,
			"min_amount":   codePO.MinAmount,
			"max_discount": codePO.MaxDiscount,
			"max_uses":     codePO.MaxUses,
			"valid_from":   codePO.ValidFrom,
			"valid_until":  codePO.ValidUntil,
			"active":       codePO.Active,
			"updated_at":   time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	return db.Create(codePO).Error
}

// IncrementUsage atomically spends one use, respecting the cap in the
// same statement.
func (r *DiscountRepository) IncrementUsage(ctx context.Context, code string) error {
	db := r.getDB(ctx)

	result := db.Model(&po.DiscountCodePO{}).
		Where("code = ? AND active = ? AND (max_uses IS NULL OR used_count < max_uses)", code, true).
		UpdateColumn("used_count", gorm.Expr("used_count + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 1 {
		return nil
	}

	var codePO po.DiscountCodePO
	if err := db.First(&codePO, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return discount.ErrCodeNotFound
		}
		return err
	}
	if !codePO.Active {
		return discount.ErrCodeInactive
	}
	return discount.ErrUsageCapReached
}

// Compile-time interface implementation check
var _ discount.Repository = (*DiscountRepository)(nil)
