package cartrepo

import (
	"context"

	"vizoshop/internal/core/domain/model/kernel"
	"vizoshop/internal/core/domain/model/order"
	"vizoshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormCartRepository implements CartRepository using GORM.
type GormCartRepository struct {
	db *gorm.DB
}

func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// Items snapshots the cart at current catalog prices, oldest line first.
// A line whose product was removed or deactivated fails the whole snapshot
// with an errs.ObjectNotFoundError naming that product.
func (r *GormCartRepository) Items(ctx context.Context, owner kernel.OwnerID) ([]order.Item, error) {
	if err := owner.Validate(); err != nil {
		return nil, err
	}

	rows, err := r.db.WithContext(ctx).Raw(`
		SELECT
			c.product_id,
			COALESCE(p.active, false),
			p.name,
			p.price,
			c.quantity,
			p.image_ref,
			c.size
		FROM cart_lines c
		LEFT JOIN products p ON p.id = c.product_id
		WHERE c.owner_id = ?
		ORDER BY c.added_at, c.product_id, c.size
	`, owner.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]order.Item, 0)
	for rows.Next() {
		var (
			productID, size string
			available       bool
			name, imageRef  *string
			price           decimal.NullDecimal
			quantity        int
		)
		if err = rows.Scan(&productID, &available, &name, &price, &quantity, &imageRef, &size); err != nil {
			return nil, err
		}
		if !available {
			return nil, errs.NewObjectNotFoundError("product", productID)
		}

		ref := ""
		if imageRef != nil {
			ref = *imageRef
		}

		item, itemErr := order.NewItem(productID, *name, price.Decimal, quantity, ref, size)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *GormCartRepository) Clear(ctx context.Context, owner kernel.OwnerID) error {
	return r.db.WithContext(ctx).Where("owner_id = ?", owner.String()).Delete(&CartLineDTO{}).Error
}
