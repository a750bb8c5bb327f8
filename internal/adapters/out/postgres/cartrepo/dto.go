// Package cartrepo stores the shopper's cart lines. Prices are not stored:
// they are read from the catalog when the cart is snapshotted.
package cartrepo

import "time"

// CartLineDTO is one product and size in an owner's cart.
type CartLineDTO struct {
	OwnerID   string    `gorm:"type:varchar(128);primaryKey"`
	ProductID string    `gorm:"type:varchar(64);primaryKey"`
	Size      string    `gorm:"type:varchar(16);primaryKey"`
	Quantity  int       `gorm:"not null"`
	AddedAt   time.Time `gorm:"not null"`
}

func (CartLineDTO) TableName() string {
	return "cart_lines"
}
