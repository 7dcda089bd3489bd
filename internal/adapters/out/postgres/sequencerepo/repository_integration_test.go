package sequencerepo_test

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"freightcore/internal/adapters/out/postgres/sequencerepo"
	"freightcore/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// SequenceAllocatorIntegrationTestSuite verifies the atomic counter behavior
// against a real PostgreSQL instance, including the concurrency guarantees
// the reference scheme depends on.
type SequenceAllocatorIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	allocator *sequencerepo.GormSequenceAllocator
}

func (suite *SequenceAllocatorIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&sequencerepo.CounterDTO{}))
}

func (suite *SequenceAllocatorIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE shipment_counters").Error)
	suite.allocator = sequencerepo.NewGormSequenceAllocator(suite.db)
}

func (suite *SequenceAllocatorIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *SequenceAllocatorIntegrationTestSuite) TestNext_NewKey_StartsAtOne() {
	sequence, err := suite.allocator.Next(context.Background(), "RORO-250115")

	suite.Require().NoError(err)
	suite.Equal(uint64(1), sequence)
}

func (suite *SequenceAllocatorIntegrationTestSuite) TestNext_SameKey_Increments() {
	ctx := context.Background()

	for expected := uint64(1); expected <= 5; expected++ {
		sequence, err := suite.allocator.Next(ctx, "RORO-250115")
		suite.Require().NoError(err)
		suite.Equal(expected, sequence)
	}
}

func (suite *SequenceAllocatorIntegrationTestSuite) TestNext_DistinctKeys_IndependentCounters() {
	ctx := context.Background()

	first, err := suite.allocator.Next(ctx, "RORO-250115")
	suite.Require().NoError(err)
	second, err := suite.allocator.Next(ctx, "FCL-250115")
	suite.Require().NoError(err)
	third, err := suite.allocator.Next(ctx, "RORO-250116")
	suite.Require().NoError(err)

	// each key starts its own numbering at 1
	suite.Equal(uint64(1), first)
	suite.Equal(uint64(1), second)
	suite.Equal(uint64(1), third)
}

func (suite *SequenceAllocatorIntegrationTestSuite) TestNext_EmptyKey_ReturnsValidationError() {
	_, err := suite.allocator.Next(context.Background(), "")

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrValueIsRequired)
}

func (suite *SequenceAllocatorIntegrationTestSuite) TestNext_ConcurrentCallers_NoDuplicatesNoGaps() {
	ctx := context.Background()
	const callers = 50

	results := make([]uint64, callers)
	errors := make([]error, callers)

	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errors[i] = suite.allocator.Next(ctx, "RORO-250115")
		}()
	}
	wg.Wait()

	for i, err := range errors {
		suite.Require().NoError(err, "caller %d failed", i)
	}

	// every caller got a distinct value, and together they form the
	// contiguous range 1..callers
	sorted := make([]uint64, callers)
	copy(sorted, results)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	for i, value := range sorted {
		suite.Equal(uint64(i+1), value)
	}
}

func (suite *SequenceAllocatorIntegrationTestSuite) TestNext_ConcurrentCallers_MixedKeys() {
	ctx := context.Background()
	const perKey = 20
	keys := []string{"RORO-250115", "AIR-250115"}

	type result struct {
		key      string
		sequence uint64
	}
	resultCh := make(chan result, perKey*len(keys))

	var wg sync.WaitGroup
	for _, key := range keys {
		for range perKey {
			wg.Add(1)
			go func() {
				defer wg.Done()
				sequence, err := suite.allocator.Next(ctx, key)
				suite.NoError(err)
				resultCh <- result{key: key, sequence: sequence}
			}()
		}
	}
	wg.Wait()
	close(resultCh)

	perKeySequences := make(map[string][]uint64)
	for r := range resultCh {
		perKeySequences[r.key] = append(perKeySequences[r.key], r.sequence)
	}

	for key, sequences := range perKeySequences {
		suite.Require().Len(sequences, perKey, "key %s", key)
		sort.Slice(sequences, func(i, j int) bool { return sequences[i] < sequences[j] })
		for i, value := range sequences {
			suite.Equal(uint64(i+1), value, "key %s", key)
		}
	}
}

func TestSequenceAllocatorIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(SequenceAllocatorIntegrationTestSuite))
}
