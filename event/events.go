package event

import (
	"time"

	"adventurelane/entity"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/shopspring/decimal"
)

type header struct {
	ID             string    `json:"id"`
	PublishedAt    time.Time `json:"published_at"`
	IdempotencyKey string    `json:"idempotency_key"`
}

func newHeader(idempotencyKey string) header {
	return header{
		ID:             watermill.NewUUID(),
		PublishedAt:    time.Now().UTC(),
		IdempotencyKey: idempotencyKey,
	}
}

type BookingConfirmed struct {
	Header         header          `json:"header"`
	BookingID      string          `json:"booking_id"`
	ExperienceID   string          `json:"experience_id"`
	SlotID         string          `json:"slot_id"`
	UserEmail      string          `json:"user_email"`
	PromoCode      string          `json:"promo_code,omitempty"`
	TotalPrice     decimal.Decimal `json:"total_price"`
	AvailableSpots int             `json:"available_spots"`
}

// NewBookingConfirmed uses the booking ID as the idempotency key, so
// handlers see the same key on redelivery.
func NewBookingConfirmed(booking entity.Booking, availableSpots int) BookingConfirmed {
	var promoCode string
	if booking.PromoCode != nil {
		promoCode = *booking.PromoCode
	}

	return BookingConfirmed{
		Header:         newHeader(booking.ID),
		BookingID:      booking.ID,
		ExperienceID:   booking.ExperienceID,
		SlotID:         booking.SlotID,
		UserEmail:      booking.UserEmail,
		PromoCode:      promoCode,
		TotalPrice:     booking.TotalPrice,
		AvailableSpots: availableSpots,
	}
}

type SlotSoldOut struct {
	Header       header `json:"header"`
	ExperienceID string `json:"experience_id"`
	SlotID       string `json:"slot_id"`
}

func NewSlotSoldOut(idempotencyKey, experienceID, slotID string) SlotSoldOut {
	return SlotSoldOut{
		Header:       newHeader(idempotencyKey),
		ExperienceID: experienceID,
		SlotID:       slotID,
	}
}
