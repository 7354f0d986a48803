package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

const StatusConfirmed = "confirmed"

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

type Experience struct {
	ID          string          `json:"id" db:"id"`
	Title       string          `json:"title" db:"title"`
	Description string          `json:"description" db:"description"`
	Price       decimal.Decimal `json:"price" db:"price"`
	Location    string          `json:"location" db:"location"`
	ImageURL    string          `json:"image_url" db:"image_url"`
	Category    string          `json:"category" db:"category"`
	Duration    string          `json:"duration" db:"duration"`
	Rating      float64         `json:"rating" db:"rating"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
}

// Slot is a bookable date and time of an experience. Date is an ISO
// calendar date and Time a local time of day, both compared as strings.
type Slot struct {
	ID             string `json:"id" db:"id"`
	ExperienceID   string `json:"experience_id" db:"experience_id"`
	Date           string `json:"date" db:"date"`
	Time           string `json:"time" db:"time"`
	TotalSpots     int    `json:"total_spots" db:"total_spots"`
	AvailableSpots int    `json:"available_spots" db:"available_spots"`
}

func (s Slot) SoldOut() bool {
	return s.AvailableSpots <= 0
}

type PromoCode struct {
	Code          string          `json:"code" db:"code"`
	Active        bool            `json:"active" db:"active"`
	DiscountType  DiscountType    `json:"discount_type" db:"discount_type"`
	DiscountValue decimal.Decimal `json:"discount_value" db:"discount_value"`
}

type Contact struct {
	Name  string
	Email string
	Phone string
}

type Booking struct {
	ID           string          `json:"id" db:"id"`
	ExperienceID string          `json:"experience_id" db:"experience_id"`
	SlotID       string          `json:"slot_id" db:"slot_id"`
	UserName     string          `json:"user_name" db:"user_name"`
	UserEmail    string          `json:"user_email" db:"user_email"`
	UserPhone    *string         `json:"user_phone" db:"user_phone"`
	PromoCode    *string         `json:"promo_code" db:"promo_code"`
	TotalPrice   decimal.Decimal `json:"total_price" db:"total_price"`
	Status       string          `json:"status" db:"status"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
}
