package repository

import (
	"context"
	"fmt"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"go.uber.org/zap"
)

type HistoryRepository interface {
	Append(ctx context.Context, userID string, bookingID *int64, kind entity.HistoryEventKind) error
	CountByUserID(ctx context.Context, userID string) (int, error)
}

type historyRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewHistoryRepository(db database.PgxIface, log *zap.Logger) HistoryRepository {
	return &historyRepository{
		db:  db,
		log: log.With(zap.String("repository", "history")),
	}
}

// Append inserts a ledger row. The ledger is append-only; there are no
// update or delete operations on this table.
func (r *historyRepository) Append(ctx context.Context, userID string, bookingID *int64, kind entity.HistoryEventKind) error {
	query := `
		INSERT INTO history (user_id, booking_id, event_kind, created_at)
		VALUES ($1, $2, $3, NOW())
	`

	_, err := r.db.Exec(ctx, query, userID, bookingID, kind)
	if err != nil {
		r.log.Error("Failed to append history event",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("event_kind", string(kind)),
		)
		return fmt.Errorf("append %s event for user %s: %w", kind, userID, err)
	}

	return nil
}

func (r *historyRepository) CountByUserID(ctx context.Context, userID string) (int, error) {
	query := `SELECT COUNT(*) FROM history WHERE user_id = $1`

	var count int
	err := r.db.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count history by user ID",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return 0, fmt.Errorf("count history for user %s: %w", userID, err)
	}

	return count, nil
}
