package promo

import (
	"context"
	"errors"
	"strings"

	"adventurelane/entity"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

type Repo interface {
	GetActive(ctx context.Context, code string) (entity.PromoCode, error)
}

// Result is the outcome of evaluating a promo code. An invalid code is not
// an error: callers apply no discount.
type Result struct {
	Valid         bool
	Discount      decimal.Decimal
	DiscountType  entity.DiscountType
	DiscountValue decimal.Decimal
}

type Evaluator struct {
	repo Repo
}

func NewEvaluator(repo Repo) Evaluator {
	return Evaluator{
		repo: repo,
	}
}

func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (e Evaluator) Evaluate(ctx context.Context, code string, subtotal decimal.Decimal) Result {
	code = Normalize(code)
	if code == "" {
		return Result{}
	}

	logger := log.FromContext(ctx).WithField("promo_code", code)

	p, err := e.repo.GetActive(ctx, code)
	if errors.Is(err, entity.ErrNotFound) {
		logger.Info("Promo code not found")
		return Result{}
	}
	if err != nil {
		logger.WithError(err).Error("Failed to look up promo code")
		return Result{}
	}
	if !p.Active {
		return Result{}
	}

	discount, ok := Discount(p, subtotal)
	if !ok {
		logger.Warnf("Unsupported discount type %q", p.DiscountType)
		return Result{}
	}

	return Result{
		Valid:         true,
		Discount:      discount,
		DiscountType:  p.DiscountType,
		DiscountValue: p.DiscountValue,
	}
}

// Discount is not clamped to the subtotal.
func Discount(p entity.PromoCode, subtotal decimal.Decimal) (decimal.Decimal, bool) {
	switch p.DiscountType {
	case entity.DiscountPercentage:
		return subtotal.Mul(p.DiscountValue).Div(hundred), true
	case entity.DiscountFixed:
		return p.DiscountValue, true
	default:
		return decimal.Zero, false
	}
}
