package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"bankpulse/internal/blobstore"
	"bankpulse/internal/database"
	"bankpulse/internal/models"
	"bankpulse/internal/repositories"
	"bankpulse/internal/repositories/repository_mocks"
	"bankpulse/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

var testCoordinatorConfig = CoordinatorConfig{
	ChunkPrefix:  "chunks",
	ChunkSuffix:  ".csv",
	PollInterval: 5 * time.Millisecond,
}

// CoordinatorIntegrationSuite runs the loop against SQLite and an in-memory
// blob store.
type CoordinatorIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	db        *database.DB
	repo      repositories.AggregateRepositoryInterface
	store     blobstore.Store
	generator TransactionGeneratorInterface
}

func TestCoordinatorIntegrationSuite(t *testing.T) {
	suite.Run(t, new(CoordinatorIntegrationSuite))
}

func (s *CoordinatorIntegrationSuite) SetupTest() {
	s.ctx = context.Background()
	s.db = database.SetupTestDB(s.T())
	s.repo = repositories.NewAggregateRepository(s.db.DB)
	s.store = blobstore.NewMemStore()
	s.generator = NewTransactionGenerator(GeneratorConfig{Seed: 11, Customers: 40, Merchants: 5})
}

func (s *CoordinatorIntegrationSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
	_ = s.db.Close()
}

func (s *CoordinatorIntegrationSuite) newCoordinator() *BatchIngestionCoordinator {
	sink := NewBlobDetectionSink(s.store, "detections")
	next, err := sink.NextBatchIndex(s.ctx)
	s.Require().NoError(err)

	metrics := testMetrics()
	events := testPipelineLogger()
	coordinator := NewBatchIngestionCoordinator(
		s.store,
		NewBatchReader(s.store, nil),
		s.repo,
		NewPatternDetector(BuildImportanceIndex(nil)),
		NewDetectionBatcher(sink, DefaultDetectionBatchSize, next, metrics, events),
		NewCircuitBreaker(DefaultCircuitBreakerConfig()),
		fastRetrier(2),
		metrics,
		events,
		testCoordinatorConfig,
	)
	coordinator.logger = discardLogger()
	return coordinator
}

func (s *CoordinatorIntegrationSuite) putBatch(key string, records []models.TransactionRecord) {
	var buf bytes.Buffer
	s.Require().NoError(s.generator.WriteCSV(&buf, records))
	s.Require().NoError(s.store.Put(s.ctx, key, &buf))
}

func (s *CoordinatorIntegrationSuite) snapshot() *models.AggregateSnapshot {
	snapshot, err := s.repo.Snapshot(s.ctx)
	s.Require().NoError(err)
	return snapshot
}

func (s *CoordinatorIntegrationSuite) totalMerchantCount(snapshot *models.AggregateSnapshot) int64 {
	var total int64
	for _, m := range snapshot.MerchantCounts {
		total += m.TxnCount
	}
	return total
}

func (s *CoordinatorIntegrationSuite) TestRunCycle_FoldsBatchIntoAggregates() {
	records := s.generator.Generate(300)
	s.putBatch(ChunkKey("chunks", 0), records)

	result, err := s.newCoordinator().RunCycle(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, result.Listed)
	s.Equal(1, result.Applied)

	pairs := make(map[[2]string]bool)
	expectedTotal := decimal.Zero
	for _, r := range records {
		pairs[[2]string{r.MerchantID, r.CustomerName}] = true
		expectedTotal = expectedTotal.Add(r.Amount)
	}

	snapshot := s.snapshot()
	s.Len(snapshot.Summaries, len(pairs))

	actualTotal := decimal.Zero
	for _, summary := range snapshot.Summaries {
		actualTotal = actualTotal.Add(summary.TotalValue)
	}
	// SQLite keeps decimal columns as REAL, so compare to the cent.
	s.InDelta(expectedTotal.InexactFloat64(), actualTotal.InexactFloat64(), 0.01)
	s.Equal(int64(len(records)), s.totalMerchantCount(snapshot))

	for _, stats := range snapshot.GenderStats {
		for _, m := range snapshot.MerchantCounts {
			if m.MerchantID == stats.MerchantID {
				s.LessOrEqual(stats.MaleCount+stats.FemaleCount, m.TxnCount)
			}
		}
	}
}

func (s *CoordinatorIntegrationSuite) TestRunCycle_ProcessedBatchesAreNotReapplied() {
	s.putBatch(ChunkKey("chunks", 0), s.generator.Generate(50))
	coordinator := s.newCoordinator()

	_, err := coordinator.RunCycle(s.ctx)
	s.Require().NoError(err)
	before := s.totalMerchantCount(s.snapshot())

	result, err := coordinator.RunCycle(s.ctx)
	s.Require().NoError(err)
	s.Equal(0, result.Applied)
	s.Equal(before, s.totalMerchantCount(s.snapshot()))
}

func (s *CoordinatorIntegrationSuite) TestRestart_ResumesFromLedger() {
	first := s.generator.Generate(40)
	s.putBatch(ChunkKey("chunks", 0), first)

	_, err := s.newCoordinator().RunCycle(s.ctx)
	s.Require().NoError(err)

	second := s.generator.Generate(25)
	s.putBatch(ChunkKey("chunks", 1), second)

	restarted := s.newCoordinator()
	result, err := restarted.RunCycle(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, result.Listed)
	s.Equal(1, result.Applied)
	s.Equal(int64(len(first)+len(second)), s.totalMerchantCount(s.snapshot()))

	status := restarted.Status()
	s.Equal(2, status.ProcessedBatches)
	s.Equal(ChunkKey("chunks", 1), status.LastBatchKey)
}

func (s *CoordinatorIntegrationSuite) TestRunCycle_RejectsMalformedBatch() {
	bad := batchHeader + "0,C1,2,M,28007,M1,28007,es_food,not-a-number,0\n"
	s.Require().NoError(s.store.Put(s.ctx, ChunkKey("chunks", 0), strings.NewReader(bad)))
	s.putBatch(ChunkKey("chunks", 1), s.generator.Generate(10))

	coordinator := s.newCoordinator()
	result, err := coordinator.RunCycle(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, result.Rejected)
	s.Equal(1, result.Applied)
	s.Empty(result.DeferredBatchKey)

	batches, total, err := s.repo.ListProcessedBatches(s.ctx, 0, 10)
	s.Require().NoError(err)
	s.Equal(int64(2), total)

	var rejected *models.ProcessedBatch
	for i := range batches {
		if batches[i].BatchKey == ChunkKey("chunks", 0) {
			rejected = &batches[i]
		}
	}
	s.Require().NotNil(rejected)
	s.True(rejected.IsRejected())
	s.Contains(rejected.ErrorMessage, "malformed batch")

	result, err = coordinator.RunCycle(s.ctx)
	s.Require().NoError(err)
	s.Equal(0, result.Rejected)
}

func (s *CoordinatorIntegrationSuite) TestRunCycle_WritesDetectionsToSink() {
	records := make([]models.TransactionRecord, 0, 80)
	for i := 0; i < 80; i++ {
		records = append(records, txn("M1", "C1", models.GenderMale, "1.00"))
	}
	s.putBatch(ChunkKey("chunks", 0), records)

	coordinator := s.newCoordinator()
	result, err := coordinator.RunCycle(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, result.Detections)

	body, err := s.store.Get(s.ctx, DetectionKey("detections", 0))
	s.Require().NoError(err)
	data, err := io.ReadAll(body)
	body.Close()
	s.Require().NoError(err)
	s.Contains(string(data), "PatId2,CHILD,C1,M1")

	status := coordinator.Status()
	s.Equal(1, status.NextDetectionIndex)
	s.Equal(0, status.PendingDetections)
	s.Equal(int64(1), status.Cycles)
	s.NotNil(status.LastCycleAt)
}

func (s *CoordinatorIntegrationSuite) TestRestart_ContinuesDetectionNumbering() {
	records := make([]models.TransactionRecord, 0, 80)
	for i := 0; i < 80; i++ {
		records = append(records, txn("M1", "C1", models.GenderMale, "1.00"))
	}
	s.putBatch(ChunkKey("chunks", 0), records)
	_, err := s.newCoordinator().RunCycle(s.ctx)
	s.Require().NoError(err)

	s.putBatch(ChunkKey("chunks", 1), records[:1])
	_, err = s.newCoordinator().RunCycle(s.ctx)
	s.Require().NoError(err)

	keys, err := blobstore.ListSorted(s.ctx, s.store, "detections", ".csv")
	s.Require().NoError(err)
	s.Equal([]string{DetectionKey("detections", 0), DetectionKey("detections", 1)}, keys)
}

func (s *CoordinatorIntegrationSuite) TestRun_StopsOnCancel() {
	s.putBatch(ChunkKey("chunks", 0), s.generator.Generate(10))
	coordinator := s.newCoordinator()

	ctx, cancel := context.WithTimeout(s.ctx, 50*time.Millisecond)
	defer cancel()

	s.NoError(coordinator.Run(ctx))
	s.GreaterOrEqual(coordinator.Status().Cycles, int64(1))
	s.Equal(1, coordinator.Status().ProcessedBatches)
}

// CoordinatorFailureSuite drives the coordinator with mocked collaborators.
type CoordinatorFailureSuite struct {
	suite.Suite
	ctx         context.Context
	ctrl        *gomock.Controller
	store       blobstore.Store
	mockReader  *service_mocks.MockBatchReaderInterface
	mockRepo    *repository_mocks.MockAggregateRepositoryInterface
	mockBatcher *service_mocks.MockDetectionBatcherInterface
	detector    *service_mocks.MockPatternDetectorInterface
}

func TestCoordinatorFailureSuite(t *testing.T) {
	suite.Run(t, new(CoordinatorFailureSuite))
}

func (s *CoordinatorFailureSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.store = blobstore.NewMemStore()
	s.mockReader = service_mocks.NewMockBatchReaderInterface(s.ctrl)
	s.mockRepo = repository_mocks.NewMockAggregateRepositoryInterface(s.ctrl)
	s.mockBatcher = service_mocks.NewMockDetectionBatcherInterface(s.ctrl)
	s.detector = service_mocks.NewMockPatternDetectorInterface(s.ctrl)

	for i := 0; i < 2; i++ {
		s.Require().NoError(s.store.Put(s.ctx, ChunkKey("chunks", i), strings.NewReader(batchHeader)))
	}
}

func (s *CoordinatorFailureSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CoordinatorFailureSuite) newCoordinator(breaker CircuitBreakerInterface) *BatchIngestionCoordinator {
	coordinator := NewBatchIngestionCoordinator(
		s.store,
		s.mockReader,
		s.mockRepo,
		s.detector,
		s.mockBatcher,
		breaker,
		fastRetrier(2),
		testMetrics(),
		testPipelineLogger(),
		testCoordinatorConfig,
	)
	coordinator.logger = discardLogger()
	return coordinator
}

func (s *CoordinatorFailureSuite) expectStoreReachable() {
	s.mockRepo.EXPECT().HealthCheck(gomock.Any()).Return(nil)
}

func (s *CoordinatorFailureSuite) TestRunCycle_TransientReadFailureDefersBatch() {
	s.expectStoreReachable()
	s.mockRepo.EXPECT().ProcessedBatchKeys(gomock.Any()).Return(nil, nil)
	s.mockReader.EXPECT().
		Read(gomock.Any(), ChunkKey("chunks", 0)).
		Return(nil, errors.New("connection reset")).
		Times(2)
	s.mockBatcher.EXPECT().ForceFlush(gomock.Any()).Return(nil)

	result, err := s.newCoordinator(NewCircuitBreaker(DefaultCircuitBreakerConfig())).RunCycle(s.ctx)

	s.Require().Error(err)
	s.ErrorIs(err, ErrMaxRetriesExceeded)
	s.Equal(ChunkKey("chunks", 0), result.DeferredBatchKey)
	s.Equal(0, result.Applied)
}

func (s *CoordinatorFailureSuite) TestRunCycle_AlreadyAppliedIsSkipped() {
	records := []models.TransactionRecord{txn("M1", "C1", models.GenderFemale, "5.00")}

	s.expectStoreReachable()
	s.mockRepo.EXPECT().ProcessedBatchKeys(gomock.Any()).Return([]string{ChunkKey("chunks", 1)}, nil)
	s.mockReader.EXPECT().Read(gomock.Any(), ChunkKey("chunks", 0)).Return(records, nil)
	s.mockRepo.EXPECT().
		ApplyBatch(gomock.Any(), gomock.Any(), records).
		Return(repositories.ErrBatchAlreadyApplied)
	s.mockBatcher.EXPECT().ForceFlush(gomock.Any()).Return(nil)

	result, err := s.newCoordinator(NewCircuitBreaker(DefaultCircuitBreakerConfig())).RunCycle(s.ctx)

	s.Require().NoError(err)
	s.Equal(1, result.Skipped)
	s.Equal(0, result.Applied)
}

func (s *CoordinatorFailureSuite) TestRun_StoreUnavailableStopsLoop() {
	records := []models.TransactionRecord{txn("M1", "C1", models.GenderFemale, "5.00")}
	breaker := NewCircuitBreaker(CircuitBreakerConfig{MaxFailures: 1, ResetTimeout: time.Hour})

	s.expectStoreReachable()
	s.mockRepo.EXPECT().ProcessedBatchKeys(gomock.Any()).Return(nil, nil)
	s.mockReader.EXPECT().Read(gomock.Any(), ChunkKey("chunks", 0)).Return(records, nil)
	s.mockRepo.EXPECT().
		ApplyBatch(gomock.Any(), gomock.Any(), records).
		Return(errors.New("connection refused")).
		Times(1)
	s.mockBatcher.EXPECT().ForceFlush(gomock.Any()).Return(nil).Times(1)

	err := s.newCoordinator(breaker).Run(s.ctx)

	s.Require().Error(err)
	s.ErrorIs(err, ErrStoreUnavailable)
	s.Equal(StateOpen, breaker.GetState())
}

func (s *CoordinatorFailureSuite) TestRunCycle_SinkFailureReported() {
	records := []models.TransactionRecord{txn("M1", "C1", models.GenderFemale, "5.00")}
	events := detectionEvents(1, time.Now())
	sinkErr := errors.New("bucket unreachable")

	s.expectStoreReachable()
	s.mockRepo.EXPECT().ProcessedBatchKeys(gomock.Any()).Return([]string{ChunkKey("chunks", 1)}, nil)
	s.mockReader.EXPECT().Read(gomock.Any(), ChunkKey("chunks", 0)).Return(records, nil)
	s.mockRepo.EXPECT().ApplyBatch(gomock.Any(), gomock.Any(), records).Return(nil)
	s.mockRepo.EXPECT().Snapshot(gomock.Any()).Return(&models.AggregateSnapshot{}, nil)
	s.detector.EXPECT().Detect(gomock.Any(), gomock.Any()).Return(events)
	s.mockBatcher.EXPECT().AddAll(gomock.Any(), events).Return(sinkErr)
	s.mockBatcher.EXPECT().ForceFlush(gomock.Any()).Return(sinkErr)

	coordinator := s.newCoordinator(NewCircuitBreaker(DefaultCircuitBreakerConfig()))
	result, err := coordinator.RunCycle(s.ctx)

	s.Require().Error(err)
	s.ErrorIs(err, errDetectionSinkUnavailable)
	s.Equal(1, result.Applied)
	s.Empty(result.DeferredBatchKey)

	s.mockBatcher.EXPECT().NextIndex().Return(0)
	s.mockBatcher.EXPECT().Pending().Return(1)
	status := coordinator.Status()
	s.Equal(2, status.ProcessedBatches)
	s.NotEmpty(status.LastError)
}

func (s *CoordinatorFailureSuite) TestRun_IdleStoreLossStopsLoop() {
	breaker := NewCircuitBreaker(CircuitBreakerConfig{MaxFailures: 2, ResetTimeout: time.Hour})

	s.mockRepo.EXPECT().
		HealthCheck(gomock.Any()).
		Return(errors.New("connection refused")).
		Times(2)
	s.mockBatcher.EXPECT().ForceFlush(gomock.Any()).Return(nil).Times(1)

	err := s.newCoordinator(breaker).Run(s.ctx)

	s.Require().Error(err)
	s.ErrorIs(err, ErrStoreUnavailable)
	s.Equal(StateOpen, breaker.GetState())
}

func (s *CoordinatorFailureSuite) TestRunCycle_LedgerLoadFailureTripsBreaker() {
	breaker := NewCircuitBreaker(CircuitBreakerConfig{MaxFailures: 2, ResetTimeout: time.Hour})

	s.expectStoreReachable()
	s.mockRepo.EXPECT().
		ProcessedBatchKeys(gomock.Any()).
		Return(nil, errors.New("connection reset")).
		Times(2)

	_, err := s.newCoordinator(breaker).RunCycle(s.ctx)

	s.Require().Error(err)
	s.ErrorIs(err, ErrStoreUnavailable)
	s.Equal(StateOpen, breaker.GetState())
}

func (s *CoordinatorFailureSuite) TestRunCycle_SnapshotFailureTripsBreaker() {
	records := []models.TransactionRecord{txn("M1", "C1", models.GenderFemale, "5.00")}
	breaker := NewCircuitBreaker(CircuitBreakerConfig{MaxFailures: 2, ResetTimeout: time.Hour})

	s.expectStoreReachable()
	s.mockRepo.EXPECT().ProcessedBatchKeys(gomock.Any()).Return([]string{ChunkKey("chunks", 1)}, nil)
	s.mockReader.EXPECT().Read(gomock.Any(), ChunkKey("chunks", 0)).Return(records, nil)
	s.mockRepo.EXPECT().ApplyBatch(gomock.Any(), gomock.Any(), records).Return(nil)
	s.mockRepo.EXPECT().
		Snapshot(gomock.Any()).
		Return(nil, errors.New("connection reset")).
		Times(2)

	result, err := s.newCoordinator(breaker).RunCycle(s.ctx)

	s.Require().Error(err)
	s.ErrorIs(err, ErrStoreUnavailable)
	s.Equal(1, result.Applied)
	s.Empty(result.DeferredBatchKey)
	s.Equal(StateOpen, breaker.GetState())
}

func (s *CoordinatorFailureSuite) TestRunCycle_OversizeCustomerIsRejectedWithoutTrippingBreaker() {
	s.assertStoreDataErrorRejectsBatch(&pgconn.PgError{
		Code:    "22001",
		Message: "value too long for type character varying(64)",
	})
}

func (s *CoordinatorFailureSuite) TestRunCycle_AmountOverflowIsRejectedWithoutTrippingBreaker() {
	s.assertStoreDataErrorRejectsBatch(&pgconn.PgError{
		Code:    "22003",
		Message: "numeric field overflow",
	})
}

// assertStoreDataErrorRejectsBatch feeds a data exception from the store into
// the coordinator and checks the batch lands in the ledger as rejected while
// the loop keeps running.
func (s *CoordinatorFailureSuite) assertStoreDataErrorRejectsBatch(pgErr *pgconn.PgError) {
	records := []models.TransactionRecord{txn("M1", "C1", models.GenderFemale, "5.00")}
	breaker := NewCircuitBreaker(CircuitBreakerConfig{MaxFailures: 1, ResetTimeout: time.Hour})
	storeErr := fmt.Errorf("%w: %w", repositories.ErrInvalidData, pgErr)

	var rejected *models.ProcessedBatch
	s.expectStoreReachable()
	s.mockRepo.EXPECT().ProcessedBatchKeys(gomock.Any()).Return([]string{ChunkKey("chunks", 1)}, nil)
	s.mockReader.EXPECT().Read(gomock.Any(), ChunkKey("chunks", 0)).Return(records, nil)
	s.mockRepo.EXPECT().ApplyBatch(gomock.Any(), gomock.Any(), records).Return(storeErr).Times(1)
	s.mockRepo.EXPECT().
		MarkRejected(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, batch *models.ProcessedBatch) error {
			rejected = batch
			return nil
		})
	s.mockBatcher.EXPECT().ForceFlush(gomock.Any()).Return(nil)

	result, err := s.newCoordinator(breaker).RunCycle(s.ctx)

	s.Require().NoError(err)
	s.Equal(1, result.Rejected)
	s.Equal(0, result.Applied)
	s.Empty(result.DeferredBatchKey)
	s.Equal(StateClosed, breaker.GetState())
	s.Require().NotNil(rejected)
	s.Equal(ChunkKey("chunks", 0), rejected.BatchKey)
	s.Contains(rejected.ErrorMessage, pgErr.Message)
}
