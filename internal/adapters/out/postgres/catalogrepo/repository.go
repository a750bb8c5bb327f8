package catalogrepo

import (
	"context"
	"errors"

	"vizoshop/internal/core/domain/model/order"
	"vizoshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCatalogRepository implements CatalogRepository using GORM.
type GormCatalogRepository struct {
	db *gorm.DB
}

func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// Snapshot prices quantity units of an active product at its current price.
func (r *GormCatalogRepository) Snapshot(
	ctx context.Context,
	productID string,
	quantity int,
	size string,
) (order.Item, error) {
	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ? AND active", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return order.Item{}, errs.NewObjectNotFoundError("product", productID)
		}
		return order.Item{}, err
	}

	return order.NewItem(dto.ID, dto.Name, dto.Price, quantity, dto.ImageRef, size)
}
