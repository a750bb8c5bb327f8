package pgtest

import (
	"context"
	"time"

	"vizoshop/internal/adapters/out/postgres/cartrepo"
	"vizoshop/internal/adapters/out/postgres/catalogrepo"
	"vizoshop/internal/core/domain/model/kernel"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PutProduct inserts or replaces a catalog row. Active is written in a second
// statement since the column defaults to true and gorm skips zero values.
func PutProduct(ctx context.Context, db *gorm.DB, product catalogrepo.ProductDTO) error {
	if err := db.WithContext(ctx).Save(&product).Error; err != nil {
		return err
	}
	return db.WithContext(ctx).Model(&catalogrepo.ProductDTO{}).
		Where("id = ?", product.ID).
		Update("active", product.Active).Error
}

// PutCartLine sets the quantity of a cart line, adding it when absent.
func PutCartLine(ctx context.Context, db *gorm.DB, owner kernel.OwnerID, productID, size string, quantity int) error {
	line := cartrepo.CartLineDTO{
		OwnerID:   owner.String(),
		ProductID: productID,
		Size:      size,
		Quantity:  quantity,
		AddedAt:   time.Now().UTC(),
	}

	return db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "owner_id"}, {Name: "product_id"}, {Name: "size"}},
		DoUpdates: clause.AssignmentColumns([]string{"quantity"}),
	}).Create(&line).Error
}
