package po

import (
	"time"

	"storefront/domain/discount"
	"storefront/domain/shared"
)

// DiscountCodePO discount code persistence object. Optional caps map to
// nullable columns; the currency column prices MinAmount and MaxDiscount.
type DiscountCodePO struct {
	ID          string    `gorm:"primaryKey;size:64"`
	Code        string    `gorm:"size:64;uniqueIndex;not null"`
	Kind        string    `gorm:"size:20;not null"`
	Value       int64     `gorm:"not null"`
	Currency    string    `gorm:"size:3;not null"`
	MinAmount   *int64    `gorm:""`
	MaxDiscount *int64    `gorm:""`
	MaxUses     *int      `gorm:""`
	UsedCount   int       `gorm:"not null;default:0"`
	ValidFrom   time.Time `gorm:"not null"`
	ValidUntil  time.Time `gorm:"not null"`
	Active      bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the table name
func (DiscountCodePO) TableName() string {
	return "discount_codes"
}

// FromDiscountDomain converts the domain entity to a persistence object.
func FromDiscountDomain(c *discount.Code, currency string) *DiscountCodePO {
	po := &DiscountCodePO{
		ID:         c.ID(),
		Code:       c.Code(),
		Kind:       string(c.Kind()),
		Value:      c.Value(),
		Currency:   currency,
		MaxUses:    c.MaxUses(),
		UsedCount:  c.UsedCount(),
		ValidFrom:  c.ValidFrom(),
		ValidUntil: c.ValidUntil(),
		Active:     c.IsActive(),
		CreatedAt:  c.CreatedAt(),
		UpdatedAt:  c.UpdatedAt(),
	}
	if min := c.MinAmount(); min != nil {
		amount := min.Amount()
		po.MinAmount = &amount
		po.Currency = min.Currency()
	}
	if max := c.MaxDiscount(); max != nil {
		amount := max.Amount()
		po.MaxDiscount = &amount
		po.Currency = max.Currency()
	}
	return po
}

// ToDomain converts the persistence object to the domain entity.
func (p *DiscountCodePO) ToDomain() *discount.Code {
	dto := discount.ReconstructionDTO{
		ID:         p.ID,
		Code:       p.Code,
		Kind:       discount.Kind(p.Kind),
		Value:      p.Value,
		MaxUses:    p.MaxUses,
		UsedCount:  p.UsedCount,
		ValidFrom:  p.ValidFrom,
		ValidUntil: p.ValidUntil,
		Active:     p.Active,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
	if p.MinAmount != nil {
		dto.MinAmount = shared.NewMoney(*p.MinAmount, p.Currency)
	}
	if p.MaxDiscount != nil {
		dto.MaxDiscount = shared.NewMoney(*p.MaxDiscount, p.Currency)
	}
	return discount.RebuildFromDTO(dto)
}
