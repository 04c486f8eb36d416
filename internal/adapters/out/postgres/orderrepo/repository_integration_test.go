package orderrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"eats/internal/adapters/out/postgres/orderrepo"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ThenGet_RoundTripsItemsAndTotal() {
	ctx := context.Background()
	choice := "L"
	dishID := kernel.NewUUID()
	item, err := order.NewItem(dishID, []order.ItemOption{{Name: "Size", Choice: &choice}, {Name: "Pickle"}},
		kernel.MustMoney("15"))
	suite.Require().NoError(err)
	second, err := order.NewItem(kernel.NewUUID(), nil, kernel.MustMoney("9.90"))
	suite.Require().NoError(err)

	placed, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		[]order.Item{item, second}, time.Now())
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, placed))

	stored, err := suite.repository.Get(ctx, placed.ID())
	suite.Require().NoError(err)

	suite.True(stored.ID().IsEqual(placed.ID()))
	suite.True(stored.OwnerID().IsEqual(placed.OwnerID()))
	suite.Equal(order.Pending, stored.Status())
	suite.Equal("24.90", stored.Total().String())
	suite.Equal(1, stored.Version())
	suite.Nil(stored.DriverID())
	suite.Require().Len(stored.Items(), 2)
	suite.True(stored.Items()[0].DishID().IsEqual(dishID))
	suite.Equal("15.00", stored.Items()[0].LinePrice().String())
	suite.Require().Len(stored.Items()[0].Options(), 2)
	suite.Equal("L", *stored.Items()[0].Options()[0].Choice)
	suite.Nil(stored.Items()[0].Options()[1].Choice)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	retrieved, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Nil(retrieved)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_BumpsVersion() {
	ctx := context.Background()
	placed := suite.addOrder(ctx)

	loaded, err := suite.repository.Get(ctx, placed.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.ChangeStatus(order.Cooking))
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	reloaded, err := suite.repository.Get(ctx, placed.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Cooking, reloaded.Status())
	suite.Equal(2, reloaded.Version())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ReturnsConcurrencyError() {
	ctx := context.Background()
	placed := suite.addOrder(ctx)

	first, err := suite.repository.Get(ctx, placed.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, placed.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(first.Take(kernel.NewUUID()))
	suite.Require().NoError(suite.repository.Update(ctx, first))

	suite.Require().NoError(second.Take(kernel.NewUUID()))
	err = suite.repository.Update(ctx, second)
	suite.Require().ErrorIs(err, errs.ErrConcurrentUpdate)

	stored, err := suite.repository.Get(ctx, placed.ID())
	suite.Require().NoError(err)
	suite.True(stored.DriverID().IsEqual(*first.DriverID()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ConcurrentTakes_OnlyOneWins() {
	ctx := context.Background()
	placed := suite.addOrder(ctx)

	const drivers = 5
	var wg sync.WaitGroup
	results := make(chan error, drivers)
	for range drivers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			loaded, err := suite.repository.Get(ctx, placed.ID())
			if err != nil {
				results <- err
				return
			}
			if err = loaded.Take(kernel.NewUUID()); err != nil {
				results <- err
				return
			}
			results <- suite.repository.Update(ctx, loaded)
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
			continue
		}
		suite.True(errs.IsKnown(err), "unexpected error %v", err)
	}
	suite.Equal(1, succeeded)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	item, err := order.NewItem(kernel.NewUUID(), nil, kernel.MustMoney("1"))
	suite.Require().NoError(err)
	missing, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		[]order.Item{item}, time.Now())
	suite.Require().NoError(err)

	suite.Require().Error(suite.repository.Update(context.Background(), missing))
}

func (suite *OrderRepositoryIntegrationTestSuite) addOrder(ctx context.Context) *order.Order {
	item, err := order.NewItem(kernel.NewUUID(), nil, kernel.MustMoney("12.50"))
	suite.Require().NoError(err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		[]order.Item{item}, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, o))
	return o
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
