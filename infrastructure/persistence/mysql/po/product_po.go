package po

import (
	"time"

	"storefront/domain/catalog"
	"storefront/domain/shared"
)

// ProductPO product persistence object. Mapping only, no business logic;
// GORM associations are not used.
type ProductPO struct {
	ID        string    `gorm:"primaryKey;size:64"`
	SKU       string    `gorm:"size:64;uniqueIndex;not null"`
	Name      string    `gorm:"size:255;not null"`
	UnitPrice int64     `gorm:"not null"`
	Currency  string    `gorm:"size:3;not null"`
	Active    bool      `gorm:"not null;default:true"`
	Stock     int       `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the table name
func (ProductPO) TableName() string {
	return "products"
}

// FromProductDomain converts the domain entity to a persistence object.
func FromProductDomain(p *catalog.Product) *ProductPO {
	return &ProductPO{
		ID:        p.ID(),
		SKU:       p.SKU(),
		Name:      p.Name(),
		UnitPrice: p.UnitPrice().Amount(),
		Currency:  p.UnitPrice().Currency(),
		Active:    p.IsActive(),
		Stock:     p.Stock(),
		CreatedAt: p.CreatedAt(),
		UpdatedAt: p.UpdatedAt(),
	}
}

// ToDomain converts the persistence object to the domain entity.
func (p *ProductPO) ToDomain() *catalog.Product {
	return catalog.RebuildFromDTO(catalog.ReconstructionDTO{
		ID:        p.ID,
		SKU:       p.SKU,
		Name:      p.Name,
		UnitPrice: *shared.NewMoney(p.UnitPrice, p.Currency),
		Active:    p.Active,
		Stock:     p.Stock,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	})
}
