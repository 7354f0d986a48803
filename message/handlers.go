package message

import (
	"context"
	"fmt"

	"adventurelane/event"
	"adventurelane/metrics"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
)

type CacheInvalidator interface {
	Invalidate(ctx context.Context, experienceID string) error
}

// Cached details carry available_spots, so they go stale with every booking.
func handleInvalidateCacheOnBooking(c CacheInvalidator) func(context.Context, *event.BookingConfirmed) error {
	return func(ctx context.Context, e *event.BookingConfirmed) error {
		if err := c.Invalidate(ctx, e.ExperienceID); err != nil {
			return fmt.Errorf("invalidating details of experience %s: %w", e.ExperienceID, err)
		}

		return nil
	}
}

func handleReportSlotSoldOut(c CacheInvalidator) func(context.Context, *event.SlotSoldOut) error {
	return func(ctx context.Context, e *event.SlotSoldOut) error {
		if err := c.Invalidate(ctx, e.ExperienceID); err != nil {
			return fmt.Errorf("invalidating details of experience %s: %w", e.ExperienceID, err)
		}

		log.FromContext(ctx).WithField("slot_id", e.SlotID).Info("Slot sold out")
		metrics.IncSlotSoldOut()

		return nil
	}
}
