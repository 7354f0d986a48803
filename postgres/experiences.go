package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"adventurelane/entity"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

type ExperienceRepo struct {
	db *sqlx.DB
}

func NewExperienceRepo(db *sqlx.DB) ExperienceRepo {
	return ExperienceRepo{
		db: db,
	}
}

func (r ExperienceRepo) Add(ctx context.Context, e entity.Experience) error {
	_, err := r.db.NamedExecContext(ctx, `INSERT INTO experiences
		(id, title, description, price, location, image_url, category, duration, rating, created_at)
		VALUES (:id, :title, :description, :price, :location, :image_url, :category, :duration, :rating, :created_at);`,
		e)
	return err
}

func (r ExperienceRepo) ListExperiences(ctx context.Context) ([]entity.Experience, error) {
	experiences := []entity.Experience{}
	err := r.db.SelectContext(ctx, &experiences, `SELECT
		id, title, description, price, location, image_url, category, duration, rating, created_at
		FROM experiences ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying experiences: %w", err)
	}

	return experiences, nil
}

func (r ExperienceRepo) GetExperience(ctx context.Context, id string) (entity.Experience, error) {
	var e entity.Experience
	err := r.db.GetContext(ctx, &e, `SELECT
		id, title, description, price, location, image_url, category, duration, rating, created_at
		FROM experiences WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.Experience{}, entity.ErrNotFound
	}
	if err != nil {
		return entity.Experience{}, fmt.Errorf("querying experience: %w", err)
	}

	return e, nil
}

func (r ExperienceRepo) AddSlot(ctx context.Context, s entity.Slot) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO slots
		(id, experience_id, date, time, total_spots, available_spots)
		VALUES ($1, $2, $3, $4, $5, $6);`,
		s.ID, s.ExperienceID, s.Date, s.Time, s.TotalSpots, s.AvailableSpots)
	return err
}

func (r ExperienceRepo) ListSlots(ctx context.Context, experienceID string) ([]entity.Slot, error) {
	slots := []entity.Slot{}
	err := r.db.SelectContext(ctx, &slots, `SELECT
		id, experience_id, to_char(date, 'YYYY-MM-DD') AS date, time, total_spots, available_spots
		FROM slots WHERE experience_id = $1
		ORDER BY date ASC, time ASC`, experienceID)
	if err != nil {
		return nil, fmt.Errorf("querying slots: %w", err)
	}

	return slots, nil
}

func (r ExperienceRepo) AvailableSpots(ctx context.Context, slotID string) (int, error) {
	var spots int
	err := r.db.GetContext(ctx, &spots, "SELECT available_spots FROM slots WHERE id = $1", slotID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, entity.ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("querying slot: %w", err)
	}

	return spots, nil
}
