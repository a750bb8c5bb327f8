package orderrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"vizoshop/internal/adapters/out/postgres/orderrepo"
	"vizoshop/internal/adapters/out/postgres/pgtest"
	"vizoshop/internal/core/domain/model/kernel"
	"vizoshop/internal/core/domain/model/order"
	"vizoshop/internal/core/domain/model/region"
	"vizoshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.container = container
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_items").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

const defaultOwner = "u1AbCdEf"

func (suite *OrderRepositoryIntegrationTestSuite) owner(value string) kernel.OwnerID {
	owner, err := kernel.NewOwnerID(value)
	suite.Require().NoError(err)
	return owner
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder(key string) *order.Order {
	return suite.newOrderFor(defaultOwner, key)
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrderFor(ownerID, key string) *order.Order {
	owner := suite.owner(ownerID)

	shirt, err := order.NewItem("p-1", "Linen shirt", decimal.RequireFromString("2500.50"), 2, "shirt.jpg", "L")
	suite.Require().NoError(err)
	hat, err := order.NewItem("p-2", "Cap", decimal.NewFromInt(800), 1, "", "")
	suite.Require().NoError(err)

	o, err := order.NewOrder(
		kernel.NewUUID(), owner, key,
		order.CustomerInfo{
			FullName:  "Amina Benali",
			Phone:     "+213 555123456",
			Address:   "12 Rue Larbi Ben Mhidi",
			Region:    "Blida",
			SubRegion: "Boufarik",
		},
		region.Home,
		[]order.Item{shirt, hat},
		decimal.NewFromInt(590),
		order.SourceCart,
		time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ThenLookupRestoresAggregate() {
	ctx := context.Background()
	o := suite.newOrder("key-1")
	suite.tracker.On("TrackAggregate", o.ID(), o).Return().Once()

	suite.Require().NoError(suite.repository.Add(ctx, o))

	got, err := suite.repository.GetByIdempotencyKey(ctx, o.Owner(), "key-1")
	suite.Require().NoError(err)

	suite.True(o.ID().IsEqual(got.ID()))
	suite.True(o.Owner().IsEqual(got.Owner()))
	suite.Equal("key-1", got.IdempotencyKey())
	suite.Equal(o.Customer(), got.Customer())
	suite.Equal(region.Home, got.DeliveryMethod())
	suite.Equal(order.Pending, got.Status())
	suite.Equal(order.SourceCart, got.Source())
	suite.True(o.CreatedAt().Equal(got.CreatedAt()))

	suite.Require().Len(got.Items(), 2)
	suite.Equal("p-1", got.Items()[0].ProductID())
	suite.Equal("L", got.Items()[0].Size())
	suite.Equal("p-2", got.Items()[1].ProductID())

	suite.True(decimal.RequireFromString("5801").Equal(got.Summary().Subtotal()))
	suite.True(decimal.RequireFromString("6391").Equal(got.Summary().Total()))
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByIdempotencyKey() {
	ctx := context.Background()
	o := suite.newOrder("key-2")
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Return()
	suite.Require().NoError(suite.repository.Add(ctx, o))

	got, err := suite.repository.GetByIdempotencyKey(ctx, o.Owner(), "key-2")
	suite.Require().NoError(err)
	suite.True(o.ID().IsEqual(got.ID()))

	_, err = suite.repository.GetByIdempotencyKey(ctx, o.Owner(), "missing")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByIdempotencyKey_ScopedToOwner() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Return()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newOrder("key-shared")))

	_, err := suite.repository.GetByIdempotencyKey(ctx, suite.owner("u2XyZ"), "key-shared")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByIdempotencyKey_ZeroOwner() {
	_, err := suite.repository.GetByIdempotencyKey(context.Background(), kernel.OwnerID{}, "key-1")
	suite.Require().ErrorIs(err, kernel.ErrOwnerIDIsRequired)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_SameIdempotencyKeyRejected() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Return().Once()

	suite.Require().NoError(suite.repository.Add(ctx, suite.newOrder("key-3")))

	err := suite.repository.Add(ctx, suite.newOrder("key-3"))
	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)

	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_SameKeyOtherOwnerStored() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Return().Twice()

	first := suite.newOrder("key-4")
	second := suite.newOrderFor("u2XyZ", "key-4")
	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().NoError(suite.repository.Add(ctx, second))

	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Where("idempotency_key = ?", "key-4").Count(&count).Error)
	suite.Equal(int64(2), count)

	got, err := suite.repository.GetByIdempotencyKey(ctx, second.Owner(), "key-4")
	suite.Require().NoError(err)
	suite.True(second.ID().IsEqual(got.ID()))
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ConcurrentSameKeyStoresOnce() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Return()

	const attempts = 5
	results := make([]error, attempts)
	var wg sync.WaitGroup
	for i := range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = suite.repository.Add(ctx, suite.newOrder("key-race"))
		}()
	}
	wg.Wait()

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
			continue
		}
		suite.ErrorIs(err, errs.ErrObjectAlreadyExists)
	}
	suite.Equal(1, succeeded)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_NotConstructedOrder() {
	err := suite.repository.Add(context.Background(), &order.Order{})
	suite.Require().ErrorIs(err, order.ErrOrderIsNotConstructed)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
