package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"adventurelane/entity"
	"adventurelane/metrics"
	"adventurelane/promo"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SlotRepo interface {
	AvailableSpots(ctx context.Context, slotID string) (int, error)
}

type BookingRepo interface {
	// Add stores the booking and takes one spot from its slot atomically.
	// It returns entity.ErrSlotUnavailable when no spot is left.
	Add(ctx context.Context, booking entity.Booking) error
}

type PromoEvaluator interface {
	Evaluate(ctx context.Context, code string, subtotal decimal.Decimal) promo.Result
}

type Request struct {
	ExperienceID string
	SlotID       string
	Contact      entity.Contact
	PromoCode    string
	Subtotal     decimal.Decimal
}

type Committer struct {
	slots    SlotRepo
	bookings BookingRepo
	promos   PromoEvaluator
}

func NewCommitter(s SlotRepo, b BookingRepo, p PromoEvaluator) Committer {
	return Committer{
		slots:    s,
		bookings: b,
		promos:   p,
	}
}

// CheckAvailable returns the remaining spots of a slot, or
// entity.ErrNotFound if the slot does not exist.
func (c Committer) CheckAvailable(ctx context.Context, slotID string) (int, error) {
	spots, err := c.slots.AvailableSpots(ctx, slotID)
	if err != nil {
		return 0, fmt.Errorf("getting available spots for slot %s: %w", slotID, err)
	}

	return spots, nil
}

// Available reports whether the slot can still be booked. A missing slot is
// reported as sold out.
func (c Committer) Available(ctx context.Context, slotID string) (bool, error) {
	spots, err := c.CheckAvailable(ctx, slotID)
	if errors.Is(err, entity.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return spots > 0, nil
}

func (c Committer) Commit(ctx context.Context, req Request) (entity.Booking, error) {
	contact, err := validateContact(req.Contact)
	if err != nil {
		metrics.IncBookingRejected(metrics.ReasonInvalidContact)
		return entity.Booking{}, err
	}
	if req.ExperienceID == "" || req.SlotID == "" {
		metrics.IncBookingRejected(metrics.ReasonInvalidRequest)
		return entity.Booking{}, fmt.Errorf("experience and slot are required: %w", entity.ErrInvalidRequest)
	}

	logger := log.FromContext(ctx).WithField("slot_id", req.SlotID)

	available, err := c.Available(ctx, req.SlotID)
	if err != nil {
		metrics.IncBookingRejected(metrics.ReasonPersistence)
		return entity.Booking{}, err
	}
	if !available {
		metrics.IncBookingRejected(metrics.ReasonSlotUnavailable)
		return entity.Booking{}, entity.ErrSlotUnavailable
	}

	discount := decimal.Zero
	var promoCode *string
	if code := promo.Normalize(req.PromoCode); code != "" {
		promoCode = &code
		if res := c.promos.Evaluate(ctx, code, req.Subtotal); res.Valid {
			discount = res.Discount
		}
	}

	b := entity.Booking{
		ID:           uuid.NewString(),
		ExperienceID: req.ExperienceID,
		SlotID:       req.SlotID,
		UserName:     contact.Name,
		UserEmail:    contact.Email,
		UserPhone:    optional(contact.Phone),
		PromoCode:    promoCode,
		TotalPrice:   Total(req.Subtotal, discount),
		Status:       entity.StatusConfirmed,
		CreatedAt:    time.Now().UTC(),
	}

	if err := c.bookings.Add(ctx, b); err != nil {
		if errors.Is(err, entity.ErrSlotUnavailable) {
			metrics.IncBookingRejected(metrics.ReasonSlotUnavailable)
			return entity.Booking{}, entity.ErrSlotUnavailable
		}

		metrics.IncBookingRejected(metrics.ReasonPersistence)
		logger.WithError(err).Error("Failed to store booking")
		return entity.Booking{}, fmt.Errorf("adding booking: %w", err)
	}

	metrics.IncBookingConfirmed()
	logger.WithField("booking_id", b.ID).Info("Booking confirmed")

	return b, nil
}

// Total is the subtotal less the discount, never below zero.
func Total(subtotal, discount decimal.Decimal) decimal.Decimal {
	total := subtotal.Sub(discount)
	if total.IsNegative() {
		return decimal.Zero
	}
	return total
}

func validateContact(c entity.Contact) (entity.Contact, error) {
	c = entity.Contact{
		Name:  strings.TrimSpace(c.Name),
		Email: strings.TrimSpace(c.Email),
		Phone: strings.TrimSpace(c.Phone),
	}
	if c.Name == "" || c.Email == "" {
		return entity.Contact{}, entity.ErrInvalidContact
	}

	return c, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
