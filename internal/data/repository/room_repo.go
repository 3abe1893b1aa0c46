package repository

import (
	"context"
	"fmt"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type RoomRepository interface {
	Create(ctx context.Context, room *entity.Room) error
	FindByID(ctx context.Context, roomID int64) (*entity.Room, error)
	FindByCode(ctx context.Context, roomCode string) (*entity.Room, error)
	FindAll(ctx context.Context, roomType string, availableOnly bool, limit, offset int) ([]*entity.Room, error)
	Update(ctx context.Context, room *entity.Room) error
	Delete(ctx context.Context, roomID int64) error
}

type roomRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRoomRepository(db database.PgxIface, log *zap.Logger) RoomRepository {
	return &roomRepository{
		db:  db,
		log: log.With(zap.String("repository", "room")),
	}
}

func (r *roomRepository) Create(ctx context.Context, room *entity.Room) error {
	query := `
		INSERT INTO rooms (room_type, room_code, total_rooms, available_rooms, price)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING room_id
	`

	err := r.db.QueryRow(ctx, query,
		room.RoomType,
		room.RoomCode,
		room.TotalRooms,
		room.AvailableRooms,
		room.Price,
	).Scan(&room.RoomID)

	if err != nil {
		r.log.Error("Failed to create room",
			zap.Error(err),
			zap.String("room_code", room.RoomCode),
		)
		return fmt.Errorf("create room %s: %w", room.RoomCode, err)
	}

	return nil
}

func (r *roomRepository) FindByID(ctx context.Context, roomID int64) (*entity.Room, error) {
	query := `
		SELECT room_id, room_type, room_code, total_rooms, available_rooms, price
		FROM rooms
		WHERE room_id = $1
	`

	var room entity.Room
	err := r.db.QueryRow(ctx, query, roomID).Scan(
		&room.RoomID,
		&room.RoomType,
		&room.RoomCode,
		&room.TotalRooms,
		&room.AvailableRooms,
		&room.Price,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find room by ID",
			zap.Error(err),
			zap.Int64("room_id", roomID),
		)
		return nil, fmt.Errorf("find room by ID %d: %w", roomID, err)
	}

	return &room, nil
}

func (r *roomRepository) FindByCode(ctx context.Context, roomCode string) (*entity.Room, error) {
	query := `
		SELECT room_id, room_type, room_code, total_rooms, available_rooms, price
		FROM rooms
		WHERE room_code = $1
	`

	var room entity.Room
	err := r.db.QueryRow(ctx, query, roomCode).Scan(
		&room.RoomID,
		&room.RoomType,
		&room.RoomCode,
		&room.TotalRooms,
		&room.AvailableRooms,
		&room.Price,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find room by code",
			zap.Error(err),
			zap.String("room_code", roomCode),
		)
		return nil, fmt.Errorf("find room by code %s: %w", roomCode, err)
	}

	return &room, nil
}

func (r *roomRepository) FindAll(ctx context.Context, roomType string, availableOnly bool, limit, offset int) ([]*entity.Room, error) {
	query := `
		SELECT room_id, room_type, room_code, total_rooms, available_rooms, price
		FROM rooms
		WHERE ($1 = '' OR room_type = $1)
		  AND (NOT $2 OR available_rooms > 0)
		ORDER BY room_id
		LIMIT $3 OFFSET $4
	`

	rows, err := r.db.Query(ctx, query, roomType, availableOnly, limit, offset)
	if err != nil {
		r.log.Error("Failed to list rooms",
			zap.Error(err),
			zap.String("room_type", roomType),
			zap.Bool("available_only", availableOnly),
		)
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	defer rows.Close()

	var rooms []*entity.Room
	for rows.Next() {
		var room entity.Room
		err := rows.Scan(
			&room.RoomID,
			&room.RoomType,
			&room.RoomCode,
			&room.TotalRooms,
			&room.AvailableRooms,
			&room.Price,
		)
		if err != nil {
			r.log.Error("Failed to scan room row", zap.Error(err))
			return nil, fmt.Errorf("scan room row: %w", err)
		}
		rooms = append(rooms, &room)
	}

	return rooms, nil
}

func (r *roomRepository) Update(ctx context.Context, room *entity.Room) error {
	query := `
		UPDATE rooms
		SET room_type = $2, room_code = $3, total_rooms = $4,
		    available_rooms = $5, price = $6
		WHERE room_id = $1
	`

	result, err := r.db.Exec(ctx, query,
		room.RoomID,
		room.RoomType,
		room.RoomCode,
		room.TotalRooms,
		room.AvailableRooms,
		room.Price,
	)

	if err != nil {
		r.log.Error("Failed to update room",
			zap.Error(err),
			zap.Int64("room_id", room.RoomID),
		)
		return fmt.Errorf("update room %d: %w", room.RoomID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room %d not found", room.RoomID)
	}

	return nil
}

func (r *roomRepository) Delete(ctx context.Context, roomID int64) error {
	query := `DELETE FROM rooms WHERE room_id = $1`

	result, err := r.db.Exec(ctx, query, roomID)
	if err != nil {
		r.log.Error("Failed to delete room",
			zap.Error(err),
			zap.Int64("room_id", roomID),
		)
		return fmt.Errorf("delete room %d: %w", roomID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room %d not found", roomID)
	}

	r.log.Info("Room deleted", zap.Int64("room_id", roomID))
	return nil
}
