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

type PromoRepo struct {
	db *sqlx.DB
}

func NewPromoRepo(db *sqlx.DB) PromoRepo {
	return PromoRepo{
		db: db,
	}
}

func (r PromoRepo) Add(ctx context.Context, p entity.PromoCode) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO promo_codes
		(code, active, discount_type, discount_value)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (code) DO UPDATE SET
			active = EXCLUDED.active,
			discount_type = EXCLUDED.discount_type,
			discount_value = EXCLUDED.discount_value;`,
		p.Code, p.Active, p.DiscountType, p.DiscountValue)
	return err
}

// GetActive expects an uppercased code.
func (r PromoRepo) GetActive(ctx context.Context, code string) (entity.PromoCode, error) {
	var p entity.PromoCode
	err := r.db.GetContext(ctx, &p, `SELECT code, active, discount_type, discount_value
		FROM promo_codes WHERE code = $1 AND active = true`, code)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.PromoCode{}, entity.ErrNotFound
	}
	if err != nil {
		return entity.PromoCode{}, fmt.Errorf("querying promo code: %w", err)
	}

	return p, nil
}
