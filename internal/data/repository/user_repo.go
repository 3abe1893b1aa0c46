package repository

import (
	"context"
	"fmt"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, userID string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

const userColumns = `user_id, role, email, password_hash, full_name, phone, city,
	       hotel_name, hotel_address, hotel_website, hotel_description,
	       hotel_contact_person, created_at`

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (user_id, role, email, password_hash, full_name, phone, city,
		                   hotel_name, hotel_address, hotel_website, hotel_description,
		                   hotel_contact_person, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.db.Exec(ctx, query,
		user.UserID,
		user.Role,
		user.Email,
		user.PasswordHash,
		user.FullName,
		user.Phone,
		user.City,
		user.HotelName,
		user.HotelAddress,
		user.HotelWebsite,
		user.HotelDescription,
		user.HotelContactPerson,
		user.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("user_id", user.UserID),
			zap.String("email", user.Email),
		)
		return fmt.Errorf("create user %s: %w", user.UserID, err)
	}

	return nil
}

func (r *userRepository) FindByID(ctx context.Context, userID string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`

	user, err := r.scanUser(r.db.QueryRow(ctx, query, userID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find user by ID",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("find user by ID %s: %w", userID, err)
	}

	return user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := r.scanUser(r.db.QueryRow(ctx, query, email))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find user by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find user by email %s: %w", email, err)
	}

	return user, nil
}

func (r *userRepository) scanUser(row pgx.Row) (*entity.User, error) {
	var user entity.User
	err := row.Scan(
		&user.UserID,
		&user.Role,
		&user.Email,
		&user.PasswordHash,
		&user.FullName,
		&user.Phone,
		&user.City,
		&user.HotelName,
		&user.HotelAddress,
		&user.HotelWebsite,
		&user.HotelDescription,
		&user.HotelContactPerson,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
