package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"adventurelane/entity"
	"adventurelane/event"
	"adventurelane/message"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

type BookingRepo struct {
	db     *sqlx.DB
	logger watermill.LoggerAdapter
}

func NewBookingRepo(db *sqlx.DB, logger watermill.LoggerAdapter) BookingRepo {
	return BookingRepo{
		db:     db,
		logger: logger,
	}
}

// Add takes a spot from the booking's slot, stores the booking and records
// the events to forward in one transaction.
func (r BookingRepo) Add(ctx context.Context, booking entity.Booking) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	if err := r.add(ctx, tx, booking); err != nil {
		return errors.Join(err, tx.Rollback())
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func (r BookingRepo) add(ctx context.Context, tx *sqlx.Tx, booking entity.Booking) error {
	// The row lock taken by the update serialises concurrent bookings of
	// the same slot; the WHERE clause keeps available_spots from going
	// below zero.
	row := tx.QueryRowContext(ctx, `UPDATE slots
		SET available_spots = available_spots - 1
		WHERE id = $1 AND experience_id = $2 AND available_spots > 0
		RETURNING available_spots`, booking.SlotID, booking.ExperienceID)
	var availableSpots int
	if err := row.Scan(&availableSpots); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.ErrSlotUnavailable
		}
		return fmt.Errorf("taking spot from slot: %w", err)
	}

	_, err := tx.ExecContext(ctx, `INSERT INTO bookings
		(id, experience_id, slot_id, user_name, user_email, user_phone, promo_code, total_price, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`,
		booking.ID, booking.ExperienceID, booking.SlotID, booking.UserName, booking.UserEmail,
		booking.UserPhone, booking.PromoCode, booking.TotalPrice, booking.Status, booking.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting booking: %w", err)
	}

	e := event.NewBookingConfirmed(booking, availableSpots)
	if err := message.PublishInTx(ctx, e, tx.Tx, r.logger); err != nil {
		return fmt.Errorf("publishing booking confirmed event in transaction: %w", err)
	}

	if availableSpots == 0 {
		e := event.NewSlotSoldOut(booking.ID, booking.ExperienceID, booking.SlotID)
		if err := message.PublishInTx(ctx, e, tx.Tx, r.logger); err != nil {
			return fmt.Errorf("publishing slot sold out event in transaction: %w", err)
		}
	}

	return nil
}

func (r BookingRepo) Get(ctx context.Context, id string) (entity.Booking, error) {
	var b entity.Booking
	err := r.db.GetContext(ctx, &b, `SELECT
		id, experience_id, slot_id, user_name, user_email, user_phone, promo_code, total_price, status, created_at
		FROM bookings WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.Booking{}, entity.ErrNotFound
	}
	if err != nil {
		return entity.Booking{}, fmt.Errorf("querying booking: %w", err)
	}

	return b, nil
}
