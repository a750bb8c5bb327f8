// Package orderrepo maps the order aggregate to the orders and order_items
// tables.
package orderrepo

import (
	"time"

	"vizoshop/internal/core/domain/model/kernel"
	"vizoshop/internal/core/domain/model/order"
	"vizoshop/internal/core/domain/model/region"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is one row of the orders table. Idempotency keys are unique per
// owner so a replayed submission can never be stored twice.
type OrderDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OwnerID        string          `gorm:"type:varchar(128);not null;uniqueIndex:idx_orders_owner_key,priority:1"`
	IdempotencyKey string          `gorm:"type:varchar(128);not null;uniqueIndex:idx_orders_owner_key,priority:2"`
	Customer       CustomerDTO     `gorm:"embedded;embeddedPrefix:customer_"`
	DeliveryMethod string          `gorm:"type:varchar(16);not null"`
	Subtotal       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	ShippingFee    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Total          decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status         int             `gorm:"not null"`
	Source         string          `gorm:"type:varchar(16);not null"`
	CreatedAt      time.Time       `gorm:"not null;index"`
	Items          []ItemDTO       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// CustomerDTO is the shipping form frozen into the order row.
type CustomerDTO struct {
	FullName  string
	Phone     string
	Address   string
	Region    string
	SubRegion string
}

// ItemDTO is one line of an order, kept in submission order by Position.
type ItemDTO struct {
	OrderID   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Position  int             `gorm:"primaryKey"`
	ProductID string          `gorm:"not null"`
	Name      string          `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Quantity  int             `gorm:"not null"`
	ImageRef  string
	Size      string
}

func (ItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	id := o.ID().Bytes()
	customer := o.Customer()
	summary := o.Summary()

	items := make([]ItemDTO, 0, len(o.Items()))
	for pos, item := range o.Items() {
		items = append(items, ItemDTO{
			OrderID:   id,
			Position:  pos,
			ProductID: item.ProductID(),
			Name:      item.Name(),
			UnitPrice: item.UnitPrice(),
			Quantity:  item.Quantity(),
			ImageRef:  item.ImageRef(),
			Size:      item.Size(),
		})
	}

	return OrderDTO{
		ID:             id,
		OwnerID:        o.Owner().String(),
		IdempotencyKey: o.IdempotencyKey(),
		Customer: CustomerDTO{
			FullName:  customer.FullName,
			Phone:     customer.Phone,
			Address:   customer.Address,
			Region:    customer.Region,
			SubRegion: customer.SubRegion,
		},
		DeliveryMethod: o.DeliveryMethod().String(),
		Subtotal:       summary.Subtotal(),
		ShippingFee:    summary.ShippingFee(),
		Total:          summary.Total(),
		Status:         int(o.Status()),
		Source:         o.Source().String(),
		CreatedAt:      o.CreatedAt(),
		Items:          items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	owner, err := kernel.NewOwnerID(dto.OwnerID)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, line := range dto.Items {
		item, itemErr := order.NewItem(line.ProductID, line.Name, line.UnitPrice, line.Quantity, line.ImageRef, line.Size)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		owner,
		dto.IdempotencyKey,
		order.CustomerInfo{
			FullName:  dto.Customer.FullName,
			Phone:     dto.Customer.Phone,
			Address:   dto.Customer.Address,
			Region:    dto.Customer.Region,
			SubRegion: dto.Customer.SubRegion,
		},
		region.DeliveryMethod(dto.DeliveryMethod),
		items,
		dto.Subtotal,
		dto.ShippingFee,
		dto.Total,
		order.Status(dto.Status),
		order.Source(dto.Source),
		dto.CreatedAt,
	)
}
