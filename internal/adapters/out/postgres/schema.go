package postgres

import (
	"vizoshop/internal/adapters/out/postgres/cartrepo"
	"vizoshop/internal/adapters/out/postgres/catalogrepo"
	"vizoshop/internal/adapters/out/postgres/orderrepo"

	"gorm.io/gorm"
)

// legacyKeyIndex made idempotency keys unique across owners. Keys are now
// unique per owner.
const legacyKeyIndex = "idx_orders_idempotency_key"

// Migrate creates or updates every table the storefront reads and writes.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&catalogrepo.ProductDTO{},
		&cartrepo.CartLineDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
	); err != nil {
		return err
	}

	migrator := db.Migrator()
	if migrator.HasIndex(&orderrepo.OrderDTO{}, legacyKeyIndex) {
		return migrator.DropIndex(&orderrepo.OrderDTO{}, legacyKeyIndex)
	}
	return nil
}
