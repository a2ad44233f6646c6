package postgres

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utafrali/priceradar/internal/domain"
	"github.com/utafrali/priceradar/pkg/database"
)

func setupHistoryRepo(t *testing.T, batchSize int) (*PriceHistoryRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := database.NewMockPool()
	require.NoError(t, err)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	repo := NewPriceHistoryRepository(mock, batchSize, logger)
	return repo, mock
}

func historyRecord(i int) domain.PriceHistoryRecord {
	return domain.PriceHistoryRecord{
		ID:         fmt.Sprintf("ph-%03d", i),
		ProductID:  "prd-001",
		Platform:   domain.PlatformAmazon,
		Price:      150000 + int64(i),
		RecordedAt: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC).AddDate(0, 0, i),
	}
}

func expectBatchCommit(mock pgxmock.PgxPoolIface, rows int64) {
	mock.ExpectBegin()
	mock.ExpectCopyFrom(pgx.Identifier{"price_history"}, historyColumns).
		WillReturnResult(rows)
	mock.ExpectCommit()
}

func TestPriceHistoryRepository_AddBelowBatchSizeDoesNotWrite(t *testing.T) {
	repo, mock := setupHistoryRepo(t, 3)
	defer mock.Close()

	for i := 0; i < 2; i++ {
		require.NoError(t, repo.Add(context.Background(), historyRecord(i)))
	}

	assert.Equal(t, int64(0), repo.Total())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPriceHistoryRepository_AddFlushesFullBatch(t *testing.T) {
	repo, mock := setupHistoryRepo(t, 3)
	defer mock.Close()

	expectBatchCommit(mock, 3)

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Add(context.Background(), historyRecord(i)))
	}

	assert.Equal(t, int64(3), repo.Total())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPriceHistoryRepository_FlushWritesPartialBatch(t *testing.T) {
	repo, mock := setupHistoryRepo(t, 1000)
	defer mock.Close()

	expectBatchCommit(mock, 2)

	for i := 0; i < 2; i++ {
		require.NoError(t, repo.Add(context.Background(), historyRecord(i)))
	}
	require.NoError(t, repo.Flush(context.Background()))

	assert.Equal(t, int64(2), repo.Total())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPriceHistoryRepository_FlushEmptyBufferIsNoOp(t *testing.T) {
	repo, mock := setupHistoryRepo(t, 3)
	defer mock.Close()

	assert.NoError(t, repo.Flush(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPriceHistoryRepository_MultipleBatches(t *testing.T) {
	repo, mock := setupHistoryRepo(t, 2)
	defer mock.Close()

	expectBatchCommit(mock, 2)
	expectBatchCommit(mock, 2)
	expectBatchCommit(mock, 1)

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Add(context.Background(), historyRecord(i)))
	}
	require.NoError(t, repo.Flush(context.Background()))

	assert.Equal(t, int64(5), repo.Total())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPriceHistoryRepository_CopyErrorRollsBack(t *testing.T) {
	repo, mock := setupHistoryRepo(t, 2)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectCopyFrom(pgx.Identifier{"price_history"}, historyColumns).
		WillReturnError(errors.New("copy failed"))
	mock.ExpectRollback()

	require.NoError(t, repo.Add(context.Background(), historyRecord(0)))
	err := repo.Add(context.Background(), historyRecord(1))

	assert.Error(t, err)
	assert.Equal(t, int64(0), repo.Total())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPriceHistoryRepository_BufferSurvivesFailedFlush(t *testing.T) {
	repo, mock := setupHistoryRepo(t, 2)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectCopyFrom(pgx.Identifier{"price_history"}, historyColumns).
		WillReturnError(errors.New("copy failed"))
	mock.ExpectRollback()
	// Retry succeeds with the same two rows.
	expectBatchCommit(mock, 2)

	require.NoError(t, repo.Add(context.Background(), historyRecord(0)))
	require.Error(t, repo.Add(context.Background(), historyRecord(1)))
	require.NoError(t, repo.Flush(context.Background()))

	assert.Equal(t, int64(2), repo.Total())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPriceHistoryRepository_BeginError(t *testing.T) {
	repo, mock := setupHistoryRepo(t, 1)
	defer mock.Close()

	mock.ExpectBegin().WillReturnError(errors.New("pool exhausted"))

	err := repo.Add(context.Background(), historyRecord(0))
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPriceHistoryRepository_ShortCopyRollsBack(t *testing.T) {
	repo, mock := setupHistoryRepo(t, 2)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectCopyFrom(pgx.Identifier{"price_history"}, historyColumns).
		WillReturnResult(1)
	mock.ExpectRollback()

	require.NoError(t, repo.Add(context.Background(), historyRecord(0)))
	err := repo.Add(context.Background(), historyRecord(1))

	assert.Error(t, err)
	assert.Equal(t, int64(0), repo.Total())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPriceHistoryRepository_Clear(t *testing.T) {
	repo, mock := setupHistoryRepo(t, 3)
	defer mock.Close()

	mock.ExpectExec("DELETE FROM price_history").
		WillReturnResult(pgxmock.NewResult("DELETE", 27000))

	require.NoError(t, repo.Add(context.Background(), historyRecord(0)))

	removed, err := repo.Clear(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(27000), removed)
	assert.Equal(t, int64(0), repo.Total())

	// The buffered row was dropped; flushing writes nothing.
	assert.NoError(t, repo.Flush(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPriceHistoryRepository_DefaultBatchSize(t *testing.T) {
	repo, mock := setupHistoryRepo(t, 0)
	defer mock.Close()

	assert.Equal(t, DefaultBatchSize, repo.batchSize)
	assert.NoError(t, mock.ExpectationsWereMet())
}
