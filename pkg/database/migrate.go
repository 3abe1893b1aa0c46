package database

import (
	"context"
	"fmt"
)

// Startup DDL. Statements are idempotent so the server can run them on
// every boot against the managed Postgres instance.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		user_id              TEXT PRIMARY KEY,
		role                 TEXT NOT NULL CHECK (role IN ('client', 'admin')),
		email                TEXT NOT NULL UNIQUE,
		password_hash        TEXT NOT NULL,
		full_name            TEXT,
		phone                TEXT,
		city                 TEXT,
		hotel_name           TEXT,
		hotel_address        TEXT,
		hotel_website        TEXT,
		hotel_description    TEXT,
		hotel_contact_person TEXT,
		created_at           TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS rooms (
		room_id         BIGSERIAL PRIMARY KEY,
		room_type       TEXT NOT NULL,
		room_code       TEXT NOT NULL UNIQUE,
		total_rooms     INT NOT NULL CHECK (total_rooms > 0),
		available_rooms INT NOT NULL,
		price           NUMERIC(10,2) NOT NULL CHECK (price > 0),
		CHECK (available_rooms >= 0 AND available_rooms <= total_rooms)
	)`,

	`CREATE TABLE IF NOT EXISTS bookings (
		booking_id                   BIGSERIAL PRIMARY KEY,
		user_id                      TEXT NOT NULL REFERENCES users(user_id),
		room_id                      BIGINT NOT NULL REFERENCES rooms(room_id),
		lead_time                    INT NOT NULL CHECK (lead_time >= 0),
		market_segment_type          TEXT NOT NULL,
		no_of_adults                 INT NOT NULL CHECK (no_of_adults > 0),
		no_of_children               INT NOT NULL CHECK (no_of_children >= 0),
		arrival_date                 DATE NOT NULL,
		arrival_month                INT NOT NULL CHECK (arrival_month BETWEEN 1 AND 12),
		no_of_previous_cancellations INT NOT NULL DEFAULT 0,
		room_type_reserved           TEXT NOT NULL,
		no_of_week_nights            INT NOT NULL CHECK (no_of_week_nights >= 0),
		no_of_weekend_nights         INT NOT NULL CHECK (no_of_weekend_nights >= 0),
		repeated_guest               INT NOT NULL DEFAULT 0,
		type_of_meal_plan            INT NOT NULL,
		no_of_special_requests       INT NOT NULL CHECK (no_of_special_requests >= 0),
		avg_price_per_room           NUMERIC(10,2) NOT NULL,
		booking_time                 TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		cancellation_prediction      NUMERIC(4,3) CHECK (cancellation_prediction BETWEEN 0 AND 1),
		status                       TEXT NOT NULL CHECK (status IN ('confirmed', 'canceled'))
	)`,

	`CREATE TABLE IF NOT EXISTS history (
		history_id BIGSERIAL PRIMARY KEY,
		user_id    TEXT NOT NULL REFERENCES users(user_id),
		booking_id BIGINT REFERENCES bookings(booking_id),
		event_kind TEXT NOT NULL CHECK (event_kind IN ('signup', 'booking_created', 'booking_canceled')),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_bookings_user_id ON bookings(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_history_user_id ON history(user_id)`,
}

// Migrate applies the schema at startup.
func Migrate(ctx context.Context, db PgxIface) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
