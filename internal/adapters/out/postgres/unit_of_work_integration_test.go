package postgres_test

import (
	"context"
	"testing"
	"time"

	"orderintake/internal/adapters/out/postgres"
	"orderintake/internal/adapters/out/postgres/customerrepo"
	"orderintake/internal/adapters/out/postgres/orderrepo"
	"orderintake/internal/adapters/out/postgres/productrepo"
	"orderintake/internal/adapters/out/postgres/zonerepo"
	"orderintake/internal/core/domain/model/customer"
	"orderintake/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies that the unit of work gives the
// order and customer writes all-or-nothing semantics.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&customerrepo.CustomerDTO{},
		&zonerepo.ZoneDTO{},
		&productrepo.ProductDTO{},
	))

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE orders, order_items, customers RESTART IDENTITY CASCADE").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) newPickupOrder() *order.Order {
	item, err := order.NewItem(nil, "Muzzarella", 1, 4500, 4500)
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(
		order.Pickup, nil, nil,
		"", order.Cash,
		[]order.Item{item},
		0, nil,
	)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *UnitOfWorkIntegrationTestSuite) countRows(table string) int64 {
	var count int64
	suite.Require().NoError(suite.db.Table(table).Count(&count).Error)
	return count
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsOrderAndCustomer() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	cust, err := customer.NewCustomer("Ana García", "ana@example.com", "")
	suite.Require().NoError(err)
	suite.Require().NoError(uow.CustomerRepository().Add(ctx, cust))

	aggregate := suite.newPickupOrder()
	suite.Require().NoError(aggregate.AssignCustomer(cust.ID()))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, aggregate))

	suite.Require().NoError(uow.Commit(ctx))

	suite.Equal(int64(1), suite.countRows("orders"))
	suite.Equal(int64(1), suite.countRows("order_items"))
	suite.Equal(int64(1), suite.countRows("customers"))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_LeavesNoRows() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	cust, err := customer.NewCustomer("Ana García", "ana@example.com", "")
	suite.Require().NoError(err)
	suite.Require().NoError(uow.CustomerRepository().Add(ctx, cust))

	aggregate := suite.newPickupOrder()
	suite.Require().NoError(aggregate.AssignCustomer(cust.ID()))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, aggregate))

	suite.Require().NoError(uow.Rollback(ctx))

	suite.Equal(int64(0), suite.countRows("orders"))
	suite.Equal(int64(0), suite.countRows("order_items"))
	suite.Equal(int64(0), suite.countRows("customers"))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitWithoutBegin_Fails() {
	uow := suite.factory.Create()

	err := uow.Commit(context.Background())
	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestBeginTwice_IsNoOp() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
