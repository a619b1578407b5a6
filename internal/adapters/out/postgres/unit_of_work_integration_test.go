package postgres_test

import (
	"context"
	"testing"

	postgres_adapter "medship/internal/adapters/out/postgres"
	"medship/internal/adapters/out/postgres/shipmentrepo"
	"medship/internal/adapters/out/postgres/transporterrepo"
	"medship/internal/core/domain/model/kernel"
	"medship/internal/core/domain/model/medicine"
	"medship/internal/core/domain/model/shipment"
	"medship/internal/core/domain/model/transporter"
	"medship/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides comprehensive integration testing
// for the GORM-based Unit of Work implementation with real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
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

	// Connect to database
	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Run migrations
	err = db.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&transporterrepo.TransporterDTO{},
		&transporterrepo.CargoBayDTO{},
	)
	suite.Require().NoError(err)

	// Create factory
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
// Truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE shipments, transporters, cargo_bays").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	// Create multiple unit of work instances
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	// Verify instances are different
	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	// Verify both instances provide access to repositories
	suite.NotNil(uow1.ShipmentRepository(), "First instance should provide shipment repository")
	suite.NotNil(uow1.TransporterRepository(), "First instance should provide transporter repository")
	suite.NotNil(uow2.ShipmentRepository(), "Second instance should provide shipment repository")
	suite.NotNil(uow2.TransporterRepository(), "Second instance should provide transporter repository")
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Test begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	// Test multiple begin calls are safe
	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	// Test commit
	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	// Test rollback on new transaction
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Test commit without begin
	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	// Test rollback without begin
	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_SingleRepositoryTransaction verifies repository operations
// within a single transaction boundary work correctly.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SingleRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Create test shipment
	testShipment := createTestShipment()

	// Begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Add shipment within transaction
	err = uow.ShipmentRepository().Add(ctx, testShipment)
	suite.Require().NoError(err)

	// Verify shipment exists within transaction
	retrievedShipment, err := uow.ShipmentRepository().Get(ctx, testShipment.ID())
	suite.Require().NoError(err)
	suite.Equal(testShipment.ID(), retrievedShipment.ID())

	// Commit transaction
	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify shipment persists after commit using new unit of work
	newUow := suite.factory.Create()
	retrievedShipment, err = newUow.ShipmentRepository().Get(ctx, testShipment.ID())
	suite.Require().NoError(err)
	suite.Equal(testShipment.ID(), retrievedShipment.ID())
}

// TestUnitOfWork_MultiRepositoryTransaction verifies multiple repository operations
// within a single transaction work atomically.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_MultiRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Create test entities
	testShipment := createTestShipment()
	testTransporter := createTestTransporter()

	// Begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Add entities using different repositories within same transaction
	err = uow.ShipmentRepository().Add(ctx, testShipment)
	suite.Require().NoError(err)

	err = uow.TransporterRepository().Add(ctx, testTransporter)
	suite.Require().NoError(err)

	// Load the shipment aboard (check capacity first)
	canCarry, err := testTransporter.CanCarry(testShipment)
	suite.Require().NoError(err)
	suite.True(canCarry, "Transporter should be able to carry the shipment")
	err = testTransporter.LoadShipment(testShipment)
	suite.Require().NoError(err)
	err = uow.TransporterRepository().Update(ctx, testTransporter)
	suite.Require().NoError(err)

	// Dispatch the shipment to the transporter
	err = testShipment.Dispatch(testTransporter.ID())
	suite.Require().NoError(err)
	err = uow.ShipmentRepository().Update(ctx, testShipment)
	suite.Require().NoError(err)

	// Commit transaction
	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify both entities persisted correctly with relationships
	newUow := suite.factory.Create()

	retrievedShipment, err := newUow.ShipmentRepository().Get(ctx, testShipment.ID())
	suite.Require().NoError(err)
	suite.Equal(testTransporter.ID(), *retrievedShipment.Transporter())

	retrievedTransporter, err := newUow.TransporterRepository().Get(ctx, testTransporter.ID())
	suite.Require().NoError(err)
	// Check that transporter's cargo bays hold the shipment
	foundShipment := false
	for _, bay := range retrievedTransporter.CargoBays() {
		if bay.ShipmentID() != nil && *bay.ShipmentID() == testShipment.ID() {
			foundShipment = true
			break
		}
	}
	suite.True(foundShipment, "Transporter should hold the shipment in a cargo bay")
}

// TestUnitOfWork_TransactionRollback verifies rollback discards all changes
// made within the transaction across multiple repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Create test entities
	testShipment := createTestShipment()
	testTransporter := createTestTransporter()

	// Begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Add entities within transaction
	err = uow.ShipmentRepository().Add(ctx, testShipment)
	suite.Require().NoError(err)

	err = uow.TransporterRepository().Add(ctx, testTransporter)
	suite.Require().NoError(err)

	// Verify entities exist within transaction
	_, err = uow.ShipmentRepository().Get(ctx, testShipment.ID())
	suite.Require().NoError(err)

	_, err = uow.TransporterRepository().Get(ctx, testTransporter.ID())
	suite.Require().NoError(err)

	// Rollback transaction
	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// Verify entities do not exist after rollback using new unit of work
	newUow := suite.factory.Create()

	_, err = newUow.ShipmentRepository().Get(ctx, testShipment.ID())
	suite.Require().Error(err, "Shipment should not exist after rollback")

	_, err = newUow.TransporterRepository().Get(ctx, testTransporter.ID())
	suite.Require().Error(err, "Transporter should not exist after rollback")
}

// TestUnitOfWork_RepositoryIsolation verifies that repositories obtained
// from different unit of work instances operate independently.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	// Create two unit of work instances
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	// Create test shipments
	shipment1 := createTestShipment()
	shipment2 := createTestShipment()

	// Begin transactions on both
	err := uow1.Begin(ctx)
	suite.Require().NoError(err)

	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	// Add different shipments in each transaction
	err = uow1.ShipmentRepository().Add(ctx, shipment1)
	suite.Require().NoError(err)

	err = uow2.ShipmentRepository().Add(ctx, shipment2)
	suite.Require().NoError(err)

	// Each transaction should only see its own changes
	_, err = uow1.ShipmentRepository().Get(ctx, shipment1.ID())
	suite.Require().NoError(err, "UOW1 should see shipment1")

	_, err = uow1.ShipmentRepository().Get(ctx, shipment2.ID())
	suite.Require().Error(err, "UOW1 should not see shipment2")

	_, err = uow2.ShipmentRepository().Get(ctx, shipment2.ID())
	suite.Require().NoError(err, "UOW2 should see shipment2")

	_, err = uow2.ShipmentRepository().Get(ctx, shipment1.ID())
	suite.Require().Error(err, "UOW2 should not see shipment1")

	// Commit first transaction
	err = uow1.Commit(ctx)
	suite.Require().NoError(err)

	// Rollback second transaction
	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	// Verify only shipment1 persisted
	newUow := suite.factory.Create()
	_, err = newUow.ShipmentRepository().Get(ctx, shipment1.ID())
	suite.Require().NoError(err, "Shipment1 should persist after commit")

	_, err = newUow.ShipmentRepository().Get(ctx, shipment2.ID())
	suite.Require().Error(err, "Shipment2 should not persist after rollback")
}

// TestUnitOfWork_WithoutTransaction verifies that repositories work correctly
// without explicit transaction boundaries for immediate operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Create test shipment
	testShipment := createTestShipment()

	// Add shipment without beginning transaction (should auto-commit)
	err := uow.ShipmentRepository().Add(ctx, testShipment)
	suite.Require().NoError(err)

	// Verify shipment persists immediately
	retrievedShipment, err := uow.ShipmentRepository().Get(ctx, testShipment.ID())
	suite.Require().NoError(err)
	suite.Equal(testShipment.ID(), retrievedShipment.ID())

	// Verify with new unit of work instance
	newUow := suite.factory.Create()
	retrievedShipment, err = newUow.ShipmentRepository().Get(ctx, testShipment.ID())
	suite.Require().NoError(err)
	suite.Equal(testShipment.ID(), retrievedShipment.ID())
}

// createTestShipment creates a valid shipment for testing purposes.
func createTestShipment() *shipment.Shipment {
	med, _ := medicine.NewPainReliever("Paracetamol 500mg")
	testShipment, _ := shipment.NewShipment(kernel.NewUUID(), med, 10)
	return testShipment
}

// createTestTransporter creates a valid transporter for testing purposes.
func createTestTransporter() *transporter.Transporter {
	testTransporter, _ := transporter.NewTransporter(kernel.NewUUID(), "Test Transporter", 3)
	return testTransporter
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
