package repository

import (
	"context"
	"fmt"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	// CreateWithInventory persists the booking, decrements room availability
	// and appends the booking_created ledger row as one transaction.
	CreateWithInventory(ctx context.Context, booking *entity.Booking) error

	// CancelWithInventory flips status to canceled, restores one unit of
	// availability and appends the booking_canceled ledger row as one
	// transaction. Returns ErrBookingAlreadyCanceled when the booking has
	// already left the confirmed state.
	CancelWithInventory(ctx context.Context, bookingID int64, userID string, roomID int64) error

	FindByID(ctx context.Context, bookingID int64) (*entity.Booking, error)
	FindByUserID(ctx context.Context, userID string, status entity.BookingStatus, limit, offset int) ([]*entity.Booking, error)
	CountByUserID(ctx context.Context, userID string) (int64, error)
	CountCanceledByUserID(ctx context.Context, userID string) (int, error)
	UpdatePrediction(ctx context.Context, bookingID int64, score float64) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `booking_id, user_id, room_id, lead_time, market_segment_type,
	       no_of_adults, no_of_children, arrival_date, arrival_month,
	       no_of_previous_cancellations, room_type_reserved, no_of_week_nights,
	       no_of_weekend_nights, repeated_guest, type_of_meal_plan,
	       no_of_special_requests, avg_price_per_room, booking_time,
	       cancellation_prediction, status`

func (r *bookingRepository) CreateWithInventory(ctx context.Context, booking *entity.Booking) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create booking tx: %w", err)
	}
	defer tx.Rollback(ctx)

	insertBooking := `
		INSERT INTO bookings (user_id, room_id, lead_time, market_segment_type,
		                      no_of_adults, no_of_children, arrival_date, arrival_month,
		                      no_of_previous_cancellations, room_type_reserved,
		                      no_of_week_nights, no_of_weekend_nights, repeated_guest,
		                      type_of_meal_plan, no_of_special_requests,
		                      avg_price_per_room, booking_time, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
		        $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING booking_id
	`

	err = tx.QueryRow(ctx, insertBooking,
		booking.UserID,
		booking.RoomID,
		booking.LeadTime,
		booking.MarketSegmentType,
		booking.NoOfAdults,
		booking.NoOfChildren,
		booking.ArrivalDate,
		booking.ArrivalMonth,
		booking.NoOfPreviousCancellations,
		booking.RoomTypeReserved,
		booking.NoOfWeekNights,
		booking.NoOfWeekendNights,
		booking.RepeatedGuest,
		booking.TypeOfMealPlan,
		booking.NoOfSpecialRequests,
		booking.AvgPricePerRoom,
		booking.BookingTime,
		booking.Status,
	).Scan(&booking.BookingID)

	if err != nil {
		r.log.Error("Failed to insert booking",
			zap.Error(err),
			zap.String("user_id", booking.UserID),
			zap.Int64("room_id", booking.RoomID),
		)
		return fmt.Errorf("insert booking for user %s: %w", booking.UserID, err)
	}

	// Conditional decrement guards the last-unit race: two concurrent
	// creations at available_rooms = 1 cannot both match.
	decrement := `
		UPDATE rooms
		SET available_rooms = available_rooms - 1
		WHERE room_id = $1 AND available_rooms > 0
	`

	result, err := tx.Exec(ctx, decrement, booking.RoomID)
	if err != nil {
		r.log.Error("Failed to decrement room availability",
			zap.Error(err),
			zap.Int64("room_id", booking.RoomID),
		)
		return fmt.Errorf("decrement availability for room %d: %w", booking.RoomID, err)
	}

	if result.RowsAffected() == 0 {
		r.log.Warn("Room sold out during booking creation",
			zap.Int64("room_id", booking.RoomID),
			zap.String("user_id", booking.UserID),
		)
		return ErrRoomSoldOut
	}

	insertHistory := `
		INSERT INTO history (user_id, booking_id, event_kind, created_at)
		VALUES ($1, $2, $3, NOW())
	`

	if _, err := tx.Exec(ctx, insertHistory, booking.UserID, booking.BookingID, entity.HistoryEventBookingCreated); err != nil {
		r.log.Error("Failed to append booking history",
			zap.Error(err),
			zap.Int64("booking_id", booking.BookingID),
		)
		return fmt.Errorf("append history for booking %d: %w", booking.BookingID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit create booking tx: %w", err)
	}

	return nil
}

func (r *bookingRepository) CancelWithInventory(ctx context.Context, bookingID int64, userID string, roomID int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin cancel booking tx: %w", err)
	}
	defer tx.Rollback(ctx)

	// Conditional update makes cancellation at-most-once even when two
	// cancel requests race.
	cancel := `
		UPDATE bookings
		SET status = $2
		WHERE booking_id = $1 AND status = $3
	`

	result, err := tx.Exec(ctx, cancel, bookingID, entity.BookingStatusCanceled, entity.BookingStatusConfirmed)
	if err != nil {
		r.log.Error("Failed to cancel booking",
			zap.Error(err),
			zap.Int64("booking_id", bookingID),
		)
		return fmt.Errorf("cancel booking %d: %w", bookingID, err)
	}

	if result.RowsAffected() == 0 {
		return ErrBookingAlreadyCanceled
	}

	// Increment stays bounded by total_rooms; the guard only matters if
	// inventory was shrunk by an admin after the booking was taken.
	increment := `
		UPDATE rooms
		SET available_rooms = available_rooms + 1
		WHERE room_id = $1 AND available_rooms < total_rooms
	`

	if _, err := tx.Exec(ctx, increment, roomID); err != nil {
		r.log.Error("Failed to restore room availability",
			zap.Error(err),
			zap.Int64("room_id", roomID),
		)
		return fmt.Errorf("restore availability for room %d: %w", roomID, err)
	}

	insertHistory := `
		INSERT INTO history (user_id, booking_id, event_kind, created_at)
		VALUES ($1, $2, $3, NOW())
	`

	if _, err := tx.Exec(ctx, insertHistory, userID, bookingID, entity.HistoryEventBookingCanceled); err != nil {
		r.log.Error("Failed to append cancellation history",
			zap.Error(err),
			zap.Int64("booking_id", bookingID),
		)
		return fmt.Errorf("append history for booking %d: %w", bookingID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit cancel booking tx: %w", err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, bookingID int64) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE booking_id = $1`

	booking, err := r.scanBooking(r.db.QueryRow(ctx, query, bookingID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.Int64("booking_id", bookingID),
		)
		return nil, fmt.Errorf("find booking by ID %d: %w", bookingID, err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID string, status entity.BookingStatus, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_id = $1
		  AND ($2 = '' OR status = $2)
		ORDER BY booking_time DESC
		LIMIT $3 OFFSET $4
	`

	rows, err := r.db.Query(ctx, query, userID, string(status), limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("find bookings by user ID %s: %w", userID, err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := r.scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

func (r *bookingRepository) CountByUserID(ctx context.Context, userID string) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE user_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return 0, fmt.Errorf("count bookings by user ID %s: %w", userID, err)
	}

	return count, nil
}

func (r *bookingRepository) CountCanceledByUserID(ctx context.Context, userID string) (int, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE user_id = $1 AND status = $2`

	var count int
	err := r.db.QueryRow(ctx, query, userID, entity.BookingStatusCanceled).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count canceled bookings",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return 0, fmt.Errorf("count canceled bookings for user %s: %w", userID, err)
	}

	return count, nil
}

// UpdatePrediction overwrites the stored score; repeated calls are
// idempotent, there is no score versioning.
func (r *bookingRepository) UpdatePrediction(ctx context.Context, bookingID int64, score float64) error {
	query := `UPDATE bookings SET cancellation_prediction = $2 WHERE booking_id = $1`

	result, err := r.db.Exec(ctx, query, bookingID, score)
	if err != nil {
		r.log.Error("Failed to update prediction",
			zap.Error(err),
			zap.Int64("booking_id", bookingID),
		)
		return fmt.Errorf("update prediction for booking %d: %w", bookingID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %d not found", bookingID)
	}

	return nil
}

func (r *bookingRepository) scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.BookingID,
		&booking.UserID,
		&booking.RoomID,
		&booking.LeadTime,
		&booking.MarketSegmentType,
		&booking.NoOfAdults,
		&booking.NoOfChildren,
		&booking.ArrivalDate,
		&booking.ArrivalMonth,
		&booking.NoOfPreviousCancellations,
		&booking.RoomTypeReserved,
		&booking.NoOfWeekNights,
		&booking.NoOfWeekendNights,
		&booking.RepeatedGuest,
		&booking.TypeOfMealPlan,
		&booking.NoOfSpecialRequests,
		&booking.AvgPricePerRoom,
		&booking.BookingTime,
		&booking.CancellationPrediction,
		&booking.Status,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}
