package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/utafrali/priceradar/internal/domain"
	"github.com/utafrali/priceradar/pkg/database"
)

// DefaultBatchSize is the number of history rows buffered before a flush.
const DefaultBatchSize = 1000

var historyColumns = []string{"id", "product_id", "platform", "price", "recorded_at"}

// PriceHistoryRepository implements repository.PriceHistoryRepository using
// PostgreSQL. Rows accumulate in memory until the batch size is reached, then
// the whole batch is written with COPY inside one transaction. A failed flush
// keeps the buffer intact so the caller can retry or abort.
type PriceHistoryRepository struct {
	db        database.DBTX
	logger    *slog.Logger
	batchSize int
	buf       []domain.PriceHistoryRecord
	total     int64
}

// NewPriceHistoryRepository creates a batching price history repository. A
// batchSize of zero or less falls back to DefaultBatchSize.
func NewPriceHistoryRepository(db database.DBTX, batchSize int, logger *slog.Logger) *PriceHistoryRepository {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &PriceHistoryRepository{
		db:        db,
		logger:    logger,
		batchSize: batchSize,
		buf:       make([]domain.PriceHistoryRecord, 0, batchSize),
	}
}

// Add buffers one observation, flushing automatically once a full batch has
// accumulated.
func (r *PriceHistoryRepository) Add(ctx context.Context, rec domain.PriceHistoryRecord) error {
	r.buf = append(r.buf, rec)
	if len(r.buf) >= r.batchSize {
		return r.flush(ctx)
	}
	return nil
}

// Flush writes any buffered partial batch. Safe to call with an empty buffer.
func (r *PriceHistoryRepository) Flush(ctx context.Context) error {
	return r.flush(ctx)
}

// Total returns the number of rows committed so far, excluding the buffer.
func (r *PriceHistoryRepository) Total() int64 {
	return r.total
}

// Clear deletes all history rows and returns the number of rows removed. The
// in-memory buffer is dropped as well.
func (r *PriceHistoryRepository) Clear(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM price_history`)
	if err != nil {
		return 0, fmt.Errorf("clear price history: %w", err)
	}

	r.buf = r.buf[:0]
	r.total = 0
	return tag.RowsAffected(), nil
}

func (r *PriceHistoryRepository) flush(ctx context.Context) error {
	if len(r.buf) == 0 {
		return nil
	}

	rows := make([][]any, len(r.buf))
	for i, rec := range r.buf {
		rows[i] = []any{rec.ID, rec.ProductID, string(rec.Platform), rec.Price, rec.RecordedAt}
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin history batch: %w", err)
	}

	copied, err := tx.CopyFrom(ctx, pgx.Identifier{"price_history"}, historyColumns, pgx.CopyFromRows(rows))
	if err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("copy price history: %w (rollback: %v)", err, rbErr)
		}
		return fmt.Errorf("copy price history: %w", err)
	}
	if copied != int64(len(rows)) {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("copy price history: wrote %d of %d rows (rollback: %v)", copied, len(rows), rbErr)
		}
		return fmt.Errorf("copy price history: wrote %d of %d rows", copied, len(rows))
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit history batch: %w", err)
	}

	r.total += copied
	r.buf = r.buf[:0]
	r.logger.Debug("price history batch committed",
		slog.Int64("rows", copied),
		slog.Int64("total", r.total),
	)

	return nil
}
