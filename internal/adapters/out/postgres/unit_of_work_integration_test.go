package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "pocketmart/internal/adapters/out/postgres"
	"pocketmart/internal/adapters/out/postgres/accountrepo"
	"pocketmart/internal/adapters/out/postgres/deliveryrepo"
	"pocketmart/internal/adapters/out/postgres/orderrepo"
	"pocketmart/internal/adapters/out/postgres/personnelrepo"
	"pocketmart/internal/core/domain/model/account"
	"pocketmart/internal/core/domain/model/delivery"
	"pocketmart/internal/core/domain/model/order"
	"pocketmart/internal/core/domain/model/personnel"
	"pocketmart/internal/core/ports"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM-based unit of work
// against a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&accountrepo.UserDTO{},
		&accountrepo.ClientDetailsDTO{},
		&personnelrepo.DeliveryPersonDTO{},
		&orderrepo.OrderDTO{},
		&deliveryrepo.DeliveryDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE deliveries, orders, delivery_person, client_details, users",
	).Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.UserRepository())
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow2.PersonnelRepository())
	suite.NotNil(uow2.DeliveryRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_OnboardingAtomicity verifies the credential row and the
// personnel row land together, linked by the generated user id, and that
// only the bcrypt hash reaches the database.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_OnboardingAtomicity() {
	ctx := context.Background()
	uow := suite.factory.Create()

	user, err := account.NewUser("ben.r", "road-runner-9")
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.UserRepository().Add(ctx, user)
	suite.Require().NoError(err)
	suite.Positive(user.ID(), "Insert should backfill the generated user id")

	person := suite.newDeliveryPerson(user.ID())
	err = uow.PersonnelRepository().Add(ctx, person)
	suite.Require().NoError(err)
	suite.Positive(person.ID())

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	storedUser, err := newUow.UserRepository().GetByUsername(ctx, "ben.r")
	suite.Require().NoError(err)
	suite.Equal(user.ID(), storedUser.ID())
	suite.True(storedUser.VerifyPassword("road-runner-9"))
	suite.False(storedUser.VerifyPassword("wrong-password"))

	storedPerson, err := newUow.PersonnelRepository().Get(ctx, person.ID())
	suite.Require().NoError(err)
	suite.Equal(user.ID(), storedPerson.UserID())
	suite.Equal("Ben Reyes", storedPerson.Name())
	suite.Zero(storedPerson.OrderCountToday())
}

// TestUnitOfWork_OnboardingRollback verifies no credential row survives
// when the personnel insert fails.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_OnboardingRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	user, err := account.NewUser("ben.r", "road-runner-9")
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.UserRepository().Add(ctx, user)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	_, err = newUow.UserRepository().GetByUsername(ctx, "ben.r")
	suite.Require().Error(err, "Credential row should not exist after rollback")
}

// TestUnitOfWork_AssignmentWorkflow runs the full assignment transaction:
// delivery record insert, order transition to On Way, counter increment.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_AssignmentWorkflow() {
	ctx := context.Background()
	clientID, personID, orderID := suite.seedAssignmentFixture()

	uow := suite.factory.Create()
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	orderAggregate, err := uow.OrderRepository().Get(ctx, orderID)
	suite.Require().NoError(err)
	person, err := uow.PersonnelRepository().Get(ctx, personID)
	suite.Require().NoError(err)

	err = orderAggregate.Assign()
	suite.Require().NoError(err)
	person.RecordAssignment()

	record, err := delivery.NewDelivery(orderID, personID, clientID)
	suite.Require().NoError(err)

	err = uow.DeliveryRepository().Add(ctx, record)
	suite.Require().NoError(err)
	suite.Positive(record.ID())

	err = uow.OrderRepository().Update(ctx, orderAggregate)
	suite.Require().NoError(err)
	err = uow.PersonnelRepository().Update(ctx, person)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	storedOrder, err := newUow.OrderRepository().Get(ctx, orderID)
	suite.Require().NoError(err)
	suite.Equal(order.OnWay, storedOrder.Status())

	storedPerson, err := newUow.PersonnelRepository().Get(ctx, personID)
	suite.Require().NoError(err)
	suite.Equal(1, storedPerson.OrderCountToday())

	storedRecord, err := newUow.DeliveryRepository().GetByOrderID(ctx, orderID)
	suite.Require().NoError(err)
	suite.Equal(delivery.Assigned, storedRecord.Status())
	suite.Equal(personID, storedRecord.DeliveryPersonID())
}

// TestUnitOfWork_AssignmentRollback verifies a failed assignment leaves no
// partial state: no delivery row, order still Placed, counter untouched.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_AssignmentRollback() {
	ctx := context.Background()
	clientID, personID, orderID := suite.seedAssignmentFixture()

	uow := suite.factory.Create()
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	orderAggregate, err := uow.OrderRepository().Get(ctx, orderID)
	suite.Require().NoError(err)
	person, err := uow.PersonnelRepository().Get(ctx, personID)
	suite.Require().NoError(err)

	err = orderAggregate.Assign()
	suite.Require().NoError(err)
	person.RecordAssignment()

	record, err := delivery.NewDelivery(orderID, personID, clientID)
	suite.Require().NoError(err)

	err = uow.DeliveryRepository().Add(ctx, record)
	suite.Require().NoError(err)
	err = uow.OrderRepository().Update(ctx, orderAggregate)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	storedOrder, err := newUow.OrderRepository().Get(ctx, orderID)
	suite.Require().NoError(err)
	suite.Equal(order.Placed, storedOrder.Status(), "Order should stay Placed after rollback")

	storedPerson, err := newUow.PersonnelRepository().Get(ctx, personID)
	suite.Require().NoError(err)
	suite.Zero(storedPerson.OrderCountToday())

	_, err = newUow.DeliveryRepository().GetByOrderID(ctx, orderID)
	suite.Require().Error(err, "No delivery row should exist after rollback")
}

// TestUnitOfWork_DoubleAssignmentRejected verifies the unique index on
// deliveries.order_id rejects a second record for the same order.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_DoubleAssignmentRejected() {
	ctx := context.Background()
	clientID, personID, orderID := suite.seedAssignmentFixture()

	uow := suite.factory.Create()
	first, err := delivery.NewDelivery(orderID, personID, clientID)
	suite.Require().NoError(err)
	err = uow.DeliveryRepository().Add(ctx, first)
	suite.Require().NoError(err)

	second, err := delivery.NewDelivery(orderID, personID, clientID)
	suite.Require().NoError(err)
	err = uow.DeliveryRepository().Add(ctx, second)
	suite.Require().Error(err, "Second delivery record for the same order should be rejected")
}

// TestUnitOfWork_ResetAllDailyCounts verifies the roster-wide counter
// reset used by the midnight job.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ResetAllDailyCounts() {
	ctx := context.Background()
	_, personID, _ := suite.seedAssignmentFixture()

	uow := suite.factory.Create()
	person, err := uow.PersonnelRepository().Get(ctx, personID)
	suite.Require().NoError(err)
	person.RecordAssignment()
	person.RecordAssignment()
	err = uow.PersonnelRepository().Update(ctx, person)
	suite.Require().NoError(err)

	err = uow.PersonnelRepository().ResetAllDailyCounts(ctx)
	suite.Require().NoError(err)

	storedPerson, err := uow.PersonnelRepository().Get(ctx, personID)
	suite.Require().NoError(err)
	suite.Zero(storedPerson.OrderCountToday())
}

// seedAssignmentFixture inserts a client account, a delivery person, and a
// placed order outside any transaction. Returns their generated ids.
func (suite *UnitOfWorkIntegrationTestSuite) seedAssignmentFixture() (clientID, personID, orderID int64) {
	ctx := context.Background()
	uow := suite.factory.Create()

	clientUser, err := account.NewUser("lena.c", "pass-123")
	suite.Require().NoError(err)
	err = uow.UserRepository().Add(ctx, clientUser)
	suite.Require().NoError(err)

	details, err := account.NewClientDetails(clientUser.ID(), "Lena Cruz", "5 Bonifacio Drive")
	suite.Require().NoError(err)
	err = uow.ClientRepository().Add(ctx, details)
	suite.Require().NoError(err)

	courierUser, err := account.NewUser("ben.r", "road-runner-9")
	suite.Require().NoError(err)
	err = uow.UserRepository().Add(ctx, courierUser)
	suite.Require().NoError(err)

	person := suite.newDeliveryPerson(courierUser.ID())
	err = uow.PersonnelRepository().Add(ctx, person)
	suite.Require().NoError(err)

	orderAggregate, err := order.NewOrder(
		clientUser.ID(), 49.90, time.Now().UTC(), uuid.NewString(),
	)
	suite.Require().NoError(err)
	err = uow.OrderRepository().Add(ctx, orderAggregate)
	suite.Require().NoError(err)

	return clientUser.ID(), person.ID(), orderAggregate.ID()
}

func (suite *UnitOfWorkIntegrationTestSuite) newDeliveryPerson(userID int64) *personnel.DeliveryPerson {
	person, err := personnel.NewDeliveryPerson(
		userID,
		time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC),
		"Ben Reyes", "12 Mabini St", 29,
		"+63-917-555-0101", "N01-23-456789", "NDK 4821",
	)
	suite.Require().NoError(err)
	return person
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
