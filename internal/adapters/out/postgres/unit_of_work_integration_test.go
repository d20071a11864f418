package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/adapters/out/postgres/courierrepo"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"

	"github.com/docker/go-connections/nat"
	_ "github.com/lib/pq" // sql driver for the readiness probe
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transaction semantics of the
// GORM unit of work against a real PostgreSQL instance.
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
			wait.ForSQL("5432/tcp", "postgres", func(host string, port nat.Port) string {
				return fmt.Sprintf(
					"postgres://testuser:testpass@%s:%s/testdb?sslmode=disable",
					host, port.Port())
			}).WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&courierrepo.CourierDTO{},
		&courierrepo.RegionDTO{},
		&courierrepo.WorkingHoursDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.DeliveryHoursDTO{},
	))
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE courier_regions, courier_working_hours, couriers, order_delivery_hours, orders").Error)

	suite.factory = postgres.NewGormUnitOfWorkFactory(suite.db)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsChangesAcrossRepositories() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	aCourier := suite.createCourier()
	anOrder := suite.createOrder()
	suite.Require().NoError(anOrder.Assign(aCourier.ID(), time.Now().UTC()))

	suite.Require().NoError(uow.CourierRepository().Add(ctx, aCourier))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, anOrder))
	suite.Require().NoError(uow.Commit(ctx))

	verify := suite.factory.Create()
	retrievedCourier, err := verify.CourierRepository().Get(ctx, aCourier.ID())
	suite.Require().NoError(err)
	suite.Equal(aCourier.ID(), retrievedCourier.ID())

	retrievedOrder, err := verify.OrderRepository().Get(ctx, anOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Assigned, retrievedOrder.Status())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsChanges() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	anOrder := suite.createOrder()
	suite.Require().NoError(uow.OrderRepository().Add(ctx, anOrder))
	suite.Require().NoError(uow.Rollback(ctx))

	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Zero(count)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin_ReturnsError() {
	uow := suite.factory.Create()
	suite.Require().ErrorIs(uow.Commit(context.Background()), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_WithoutBegin_ReturnsError() {
	uow := suite.factory.Create()
	suite.Require().ErrorIs(uow.Rollback(context.Background()), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestBegin_Twice_KeepsSameTransaction() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx))

	anOrder := suite.createOrder()
	suite.Require().NoError(uow.OrderRepository().Add(ctx, anOrder))
	suite.Require().NoError(uow.Commit(ctx))

	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRepositories_WithoutTransaction_WriteDirectly() {
	ctx := context.Background()

	var uow ports.UnitOfWork = suite.factory.Create()
	anOrder := suite.createOrder()
	suite.Require().NoError(uow.OrderRepository().Add(ctx, anOrder))

	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *UnitOfWorkIntegrationTestSuite) createCourier() *courier.Courier {
	regions, err := kernel.NewRegion(1)
	suite.Require().NoError(err)

	windows, err := kernel.ParseTimeWindows([]string{"09:00-18:00"})
	suite.Require().NoError(err)

	aCourier, err := courier.NewCourier(
		kernel.NewUUID(), courier.Bike, []kernel.Region{regions}, windows)
	suite.Require().NoError(err)
	return aCourier
}

func (suite *UnitOfWorkIntegrationTestSuite) createOrder() *order.Order {
	weight, err := kernel.NewWeightFromFloat(5)
	suite.Require().NoError(err)

	region, err := kernel.NewRegion(1)
	suite.Require().NoError(err)

	windows, err := kernel.ParseTimeWindows([]string{"09:00-18:00"})
	suite.Require().NoError(err)

	anOrder, err := order.NewOrder(kernel.NewUUID(), weight, region, windows)
	suite.Require().NoError(err)
	return anOrder
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
