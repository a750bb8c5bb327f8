package commands_test

import (
	"context"
	"time"

	"vizoshop/internal/core/application/usecases/commands"
	"vizoshop/internal/core/domain/model/kernel"
	"vizoshop/internal/core/domain/model/order"
	"vizoshop/internal/core/domain/model/shipment"
	"vizoshop/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type orderRepoMock struct{ mock.Mock }

func (m *orderRepoMock) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *orderRepoMock) GetByIdempotencyKey(ctx context.Context, owner kernel.OwnerID, key string) (*order.Order, error) {
	args := m.Called(ctx, owner, key)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type cartRepoMock struct{ mock.Mock }

func (m *cartRepoMock) Items(ctx context.Context, owner kernel.OwnerID) ([]order.Item, error) {
	args := m.Called(ctx, owner)
	items, _ := args.Get(0).([]order.Item)
	return items, args.Error(1)
}

func (m *cartRepoMock) Clear(ctx context.Context, owner kernel.OwnerID) error {
	args := m.Called(ctx, owner)
	return args.Error(0)
}

type catalogMock struct{ mock.Mock }

func (m *catalogMock) Snapshot(ctx context.Context, productID string, quantity int, size string) (order.Item, error) {
	args := m.Called(ctx, productID, quantity, size)
	item, _ := args.Get(0).(order.Item)
	return item, args.Error(1)
}

type orderUoWMock struct{ mock.Mock }

func (m *orderUoWMock) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *orderUoWMock) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *orderUoWMock) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *orderUoWMock) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *orderUoWMock) CartRepository() ports.CartRepository {
	args := m.Called()
	return args.Get(0).(ports.CartRepository)
}

type orderUoWFactoryMock struct{ mock.Mock }

func (m *orderUoWFactoryMock) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type dispatcherMock struct{ mock.Mock }

func (m *dispatcherMock) Dispatch(ctx context.Context, req shipment.Request, key string) (shipment.Receipt, error) {
	args := m.Called(ctx, req, key)
	receipt, _ := args.Get(0).(shipment.Receipt)
	return receipt, args.Error(1)
}

type ledgerMock struct{ mock.Mock }

func (m *ledgerMock) MarkProcessed(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	args := m.Called(ctx, key, ttl)
	return args.Bool(0), args.Error(1)
}

func (m *ledgerMock) Release(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

type partnerMock struct{ mock.Mock }

func (m *partnerMock) CreateParcels(ctx context.Context, parcels []shipment.Request, key string) ([]byte, error) {
	args := m.Called(ctx, parcels, key)
	body, _ := args.Get(0).([]byte)
	return body, args.Error(1)
}
