// Package catalogrepo reads product prices from the products table.
package catalogrepo

import (
	"github.com/shopspring/decimal"
)

// ProductDTO is one row of the products table. Inactive products cannot be
// purchased but stay readable for historical carts.
type ProductDTO struct {
	ID       string          `gorm:"type:varchar(64);primaryKey"`
	Name     string          `gorm:"not null"`
	Price    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	ImageRef string
	Active   bool `gorm:"not null;default:true"`
}

func (ProductDTO) TableName() string {
	return "products"
}
