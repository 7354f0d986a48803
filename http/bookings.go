package http

import (
	"errors"
	"net/http"

	"adventurelane/booking"
	"adventurelane/entity"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type createBookingRequest struct {
	ExperienceID string           `json:"experience_id"`
	SlotID       string           `json:"slot_id"`
	UserName     string           `json:"user_name"`
	UserEmail    string           `json:"user_email"`
	UserPhone    string           `json:"user_phone"`
	PromoCode    string           `json:"promo_code"`
	TotalPrice   *decimal.Decimal `json:"total_price"`
}

func (r createBookingRequest) complete() bool {
	return r.ExperienceID != "" &&
		r.SlotID != "" &&
		r.UserName != "" &&
		r.UserEmail != "" &&
		r.TotalPrice != nil
}

func (h handler) CreateBooking(c echo.Context) error {
	var request createBookingRequest
	if err := c.Bind(&request); err != nil {
		return badRequest(c, "Failed to parse request")
	}

	if !request.complete() {
		return badRequest(c, "Missing required fields")
	}

	ctx := c.Request().Context()
	logger := log.FromContext(ctx).WithField("experience_id", request.ExperienceID)

	experience, err := h.catalog.GetExperience(ctx, request.ExperienceID)
	if err != nil {
		logger.WithError(err).Error("Error getting experience for booking")
		return badRequest(c, "Experience not found")
	}

	b, err := h.committer.Commit(ctx, booking.Request{
		ExperienceID: request.ExperienceID,
		SlotID:       request.SlotID,
		Contact: entity.Contact{
			Name:  request.UserName,
			Email: request.UserEmail,
			Phone: request.UserPhone,
		},
		PromoCode: request.PromoCode,
		Subtotal:  experience.Price,
	})
	switch {
	case errors.Is(err, entity.ErrSlotUnavailable):
		return badRequest(c, "Slot is no longer available")
	case errors.Is(err, entity.ErrInvalidContact), errors.Is(err, entity.ErrInvalidRequest):
		return badRequest(c, "Missing required fields")
	case err != nil:
		logger.WithError(err).Error("Error creating booking")
		return badRequest(c, "Booking failed")
	}

	if !request.TotalPrice.Equal(b.TotalPrice) {
		logger.WithField("booking_id", b.ID).Warnf(
			"Client total %s differs from booked total %s", request.TotalPrice, b.TotalPrice)
	}

	return c.JSON(http.StatusCreated, b)
}

func (h handler) GetBooking(c echo.Context) error {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "Booking not found"})
	}

	b, err := h.bookingRepo.Get(c.Request().Context(), id)
	if errors.Is(err, entity.ErrNotFound) {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "Booking not found"})
	}
	if err != nil {
		return &echo.HTTPError{
			Code:     http.StatusInternalServerError,
			Message:  http.StatusText(http.StatusInternalServerError),
			Internal: err,
		}
	}

	return c.JSON(http.StatusOK, b)
}
