package queries_test

import (
	"context"
	"testing"
	"time"

	"freightcore/internal/adapters/out/postgres/sequencerepo"
	"freightcore/internal/adapters/out/postgres/shipmentrepo"
	"freightcore/internal/core/application/usecases/queries"
	"freightcore/internal/core/domain/model/kernel"
	"freightcore/internal/core/domain/model/shipment"
	"freightcore/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type ShipmentQueriesTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *shipmentrepo.GormShipmentRepository
	allocator *sequencerepo.GormSequenceAllocator
}

func (suite *ShipmentQueriesTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&shipmentrepo.ShipmentDTO{}, &sequencerepo.CounterDTO{})
	suite.Require().NoError(err)

	suite.repo = shipmentrepo.NewGormShipmentRepository(db, &mockAggregateTracker{})
	suite.allocator = sequencerepo.NewGormSequenceAllocator(db)
}

func (suite *ShipmentQueriesTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *ShipmentQueriesTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE shipments CASCADE").Error
	suite.Require().NoError(err)
	err = suite.db.Exec("TRUNCATE TABLE shipment_counters CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *ShipmentQueriesTestSuite) addShipment(status shipment.Status, sequence uint64) *shipment.Shipment {
	day := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	ref, err := shipment.NewReference(shipment.ModeRoRo, day, sequence)
	suite.Require().NoError(err)

	owner := kernel.NewUUID()
	shipper, err := shipment.NewParty("Acme Exports", "1 Dock Rd, Antwerp", "ops@acme.example")
	suite.Require().NoError(err)
	consignee, err := shipment.NewParty("Beta Imports", "5 Pier Ave, Mombasa", "")
	suite.Require().NoError(err)

	s, err := shipment.RestoreShipment(
		kernel.NewUUID(), ref, status,
		shipment.Details{
			TransportMode: shipment.ModeRoRo,
			OwnerRef:      &owner,
			Shipper:       shipper,
			Consignee:     consignee,
			Route:         shipment.NewRoute("Antwerp", "Mombasa"),
		},
		0, day, day,
	)
	suite.Require().NoError(err)

	err = suite.repo.Add(context.Background(), s)
	suite.Require().NoError(err)
	return s
}

func (suite *ShipmentQueriesTestSuite) TestGetShipmentByReference_Found() {
	created := suite.addShipment(shipment.Booked, 1)

	query, err := queries.NewGetShipmentByReferenceQuery(created.Reference())
	suite.Require().NoError(err)

	result, err := suite.handlerByReference().Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(created.ID(), result.ID)
	suite.Equal("ELX-RORO-250115-0001", result.Reference)
	suite.Equal("booked", result.Status)
	suite.Equal("RoRo", result.TransportMode)
	suite.Equal("Acme Exports", result.ShipperName)
	suite.Equal("Beta Imports", result.ConsigneeName)
	suite.Equal("Antwerp", result.Origin)
	suite.Equal("Mombasa", result.Destination)
}

func (suite *ShipmentQueriesTestSuite) TestGetShipmentByReference_NotFound() {
	ref, err := shipment.ReferenceFromString("ELX-RORO-250115-9999")
	suite.Require().NoError(err)
	query, err := queries.NewGetShipmentByReferenceQuery(ref)
	suite.Require().NoError(err)

	_, err = suite.handlerByReference().Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ShipmentQueriesTestSuite) TestGetShipmentByReference_InvalidQuery() {
	invalidQuery := queries.GetShipmentByReferenceQuery{}

	_, err := suite.handlerByReference().Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetShipmentByReferenceQuery constructor")
}

func (suite *ShipmentQueriesTestSuite) TestGetActiveShipments_EmptyDatabase() {
	query := queries.NewGetActiveShipmentsQuery()

	result, err := suite.handlerActive().Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *ShipmentQueriesTestSuite) TestGetActiveShipments_FiltersLeadsAndTerminals() {
	suite.addShipment(shipment.RequestReceived, 1) // lead: excluded
	suite.addShipment(shipment.Quoted, 2)          // lead: excluded
	active1 := suite.addShipment(shipment.Pending, 3)
	active2 := suite.addShipment(shipment.Sailed, 4)
	active3 := suite.addShipment(shipment.Cleared, 5)
	suite.addShipment(shipment.Delivered, 6) // terminal: excluded
	suite.addShipment(shipment.Cancelled, 7) // terminal: excluded

	query := queries.NewGetActiveShipmentsQuery()

	result, err := suite.handlerActive().Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(result, 3)

	resultIDs := make(map[kernel.UUID]bool)
	for _, r := range result {
		resultIDs[r.ID] = true
	}
	for _, s := range []*shipment.Shipment{active1, active2, active3} {
		suite.True(resultIDs[s.ID()], "shipment %s should be active", s.Reference())
	}
}

func (suite *ShipmentQueriesTestSuite) TestGetActiveShipments_SortedByReference() {
	suite.addShipment(shipment.Booked, 20)
	suite.addShipment(shipment.Booked, 3)
	suite.addShipment(shipment.Booked, 11)

	query := queries.NewGetActiveShipmentsQuery()

	result, err := suite.handlerActive().Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal("ELX-RORO-250115-0003", result[0].Reference)
	suite.Equal("ELX-RORO-250115-0011", result[1].Reference)
	suite.Equal("ELX-RORO-250115-0020", result[2].Reference)
}

func (suite *ShipmentQueriesTestSuite) TestGetDailySequenceUsage_ReportsPerModeCounters() {
	ctx := context.Background()
	day := time.Date(2025, 1, 15, 8, 0, 0, 0, time.UTC)

	roroKey, err := shipment.CounterKey(shipment.ModeRoRo, day)
	suite.Require().NoError(err)
	airKey, err := shipment.CounterKey(shipment.ModeAir, day)
	suite.Require().NoError(err)
	otherDayKey, err := shipment.CounterKey(shipment.ModeRoRo, day.AddDate(0, 0, 1))
	suite.Require().NoError(err)

	for range 3 {
		_, err = suite.allocator.Next(ctx, roroKey)
		suite.Require().NoError(err)
	}
	_, err = suite.allocator.Next(ctx, airKey)
	suite.Require().NoError(err)
	_, err = suite.allocator.Next(ctx, otherDayKey)
	suite.Require().NoError(err)

	query, err := queries.NewGetDailySequenceUsageQuery(day)
	suite.Require().NoError(err)

	result, err := queries.NewGetDailySequenceUsageQueryHandler(suite.db).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("AIR-250115", result[0].Key)
	suite.Equal(uint64(1), result[0].Used)
	suite.Equal("RORO-250115", result[1].Key)
	suite.Equal(uint64(3), result[1].Used)
}

func (suite *ShipmentQueriesTestSuite) TestGetDailySequenceUsage_EmptyDay() {
	query, err := queries.NewGetDailySequenceUsageQuery(time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)

	result, err := queries.NewGetDailySequenceUsageQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *ShipmentQueriesTestSuite) handlerByReference() queries.GetShipmentByReferenceQueryHandler {
	return queries.NewGetShipmentByReferenceQueryHandler(suite.db)
}

func (suite *ShipmentQueriesTestSuite) handlerActive() queries.GetActiveShipmentsQueryHandler {
	return queries.NewGetActiveShipmentsQueryHandler(suite.db)
}

func TestShipmentQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(ShipmentQueriesTestSuite))
}

// mockAggregateTracker is a no-op tracker; query tests never need the
// unit-of-work change tracking.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

func (suite *ShipmentQueriesTestSuite) addShipmentTouchedAt(
	status shipment.Status,
	sequence uint64,
	touched time.Time,
) *shipment.Shipment {
	day := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	ref, err := shipment.NewReference(shipment.ModeRoRo, day, sequence)
	suite.Require().NoError(err)

	owner := kernel.NewUUID()
	shipper, err := shipment.NewParty("Acme Exports", "1 Dock Rd, Antwerp", "ops@acme.example")
	suite.Require().NoError(err)
	consignee, err := shipment.NewParty("Beta Imports", "5 Pier Ave, Mombasa", "")
	suite.Require().NoError(err)

	s, err := shipment.RestoreShipment(
		kernel.NewUUID(), ref, status,
		shipment.Details{
			TransportMode: shipment.ModeRoRo,
			OwnerRef:      &owner,
			Shipper:       shipper,
			Consignee:     consignee,
			Route:         shipment.NewRoute("Antwerp", "Mombasa"),
		},
		0, day, touched,
	)
	suite.Require().NoError(err)

	err = suite.repo.Add(context.Background(), s)
	suite.Require().NoError(err)
	return s
}

func (suite *ShipmentQueriesTestSuite) TestGetStalledShipments_ReportsOnlyStaleActive() {
	base := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)

	stale := suite.addShipmentTouchedAt(shipment.Sailed, 1, base.Add(-72*time.Hour))
	suite.addShipmentTouchedAt(shipment.Booked, 2, base.Add(-1*time.Hour))     // fresh: excluded
	suite.addShipmentTouchedAt(shipment.Quoted, 3, base.Add(-72*time.Hour))    // lead: excluded
	suite.addShipmentTouchedAt(shipment.Delivered, 4, base.Add(-72*time.Hour)) // terminal: excluded

	query, err := queries.NewGetStalledShipmentsQuery(base.Add(-48 * time.Hour))
	suite.Require().NoError(err)

	result, err := suite.handlerStalled().Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(stale.Reference().Value(), result[0].Reference)
	suite.Equal("sailed", result[0].Status)
}

func (suite *ShipmentQueriesTestSuite) TestGetStalledShipments_OldestFirst() {
	base := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)

	newer := suite.addShipmentTouchedAt(shipment.Booked, 1, base.Add(-50*time.Hour))
	oldest := suite.addShipmentTouchedAt(shipment.Pending, 2, base.Add(-200*time.Hour))

	query, err := queries.NewGetStalledShipmentsQuery(base.Add(-48 * time.Hour))
	suite.Require().NoError(err)

	result, err := suite.handlerStalled().Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(oldest.Reference().Value(), result[0].Reference)
	suite.Equal(newer.Reference().Value(), result[1].Reference)
}

func (suite *ShipmentQueriesTestSuite) TestGetStalledShipments_EmptyWhenAllFresh() {
	base := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	suite.addShipmentTouchedAt(shipment.Booked, 1, base.Add(-1*time.Hour))

	query, err := queries.NewGetStalledShipmentsQuery(base.Add(-48 * time.Hour))
	suite.Require().NoError(err)

	result, err := suite.handlerStalled().Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *ShipmentQueriesTestSuite) handlerStalled() queries.GetStalledShipmentsQueryHandler {
	return queries.NewGetStalledShipmentsQueryHandler(suite.db)
}
