package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

func InitialiseDB(ctx context.Context, db *sqlx.DB) error {
	if err := CreateExperiencesTable(ctx, db); err != nil {
		return fmt.Errorf("creating experiences table: %w", err)
	}

	if err := CreateSlotsTable(ctx, db); err != nil {
		return fmt.Errorf("creating slots table: %w", err)
	}

	if err := CreatePromoCodesTable(ctx, db); err != nil {
		return fmt.Errorf("creating promo codes table: %w", err)
	}

	if err := CreateBookingsTable(ctx, db); err != nil {
		return fmt.Errorf("creating bookings table: %w", err)
	}

	return nil
}

func CreateExperiencesTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS experiences (
		id UUID PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		price NUMERIC(10, 2) NOT NULL,
		location VARCHAR(255) NOT NULL DEFAULT '',
		image_url TEXT NOT NULL DEFAULT '',
		category VARCHAR(100) NOT NULL DEFAULT '',
		duration VARCHAR(100) NOT NULL DEFAULT '',
		rating NUMERIC(3, 1) NOT NULL DEFAULT 0,
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now()
	);`)
	return err
}

func CreateSlotsTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS slots (
		id UUID PRIMARY KEY,
		experience_id UUID NOT NULL REFERENCES experiences (id),
		date DATE NOT NULL,
		time VARCHAR(5) NOT NULL,
		total_spots INTEGER NOT NULL,
		available_spots INTEGER NOT NULL,
		CHECK (available_spots >= 0 AND available_spots <= total_spots)
	);`)
	return err
}

func CreatePromoCodesTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS promo_codes (
		code VARCHAR(64) PRIMARY KEY,
		active BOOLEAN NOT NULL DEFAULT true,
		discount_type VARCHAR(16) NOT NULL CHECK (discount_type IN ('percentage', 'fixed')),
		discount_value NUMERIC(10, 2) NOT NULL
	);`)
	return err
}

func CreateBookingsTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS bookings (
		id UUID PRIMARY KEY,
		experience_id UUID NOT NULL REFERENCES experiences (id),
		slot_id UUID NOT NULL REFERENCES slots (id),
		user_name VARCHAR(255) NOT NULL,
		user_email VARCHAR(255) NOT NULL,
		user_phone VARCHAR(64),
		promo_code VARCHAR(64),
		total_price NUMERIC(10, 2) NOT NULL,
		status VARCHAR(16) NOT NULL DEFAULT 'confirmed',
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now()
	);`)
	return err
}
