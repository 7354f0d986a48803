package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	ReasonInvalidContact  = "invalid_contact"
	ReasonInvalidRequest  = "invalid_request"
	ReasonSlotUnavailable = "slot_unavailable"
	ReasonPersistence     = "persistence_failure"
)

var (
	once sync.Once

	bookingConfirmed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "adventurelane",
			Name:      "booking_confirmed_total",
			Help:      "Count of confirmed bookings.",
		},
	)

	bookingRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "adventurelane",
			Name:      "booking_rejected_total",
			Help:      "Count of rejected booking attempts by reason.",
		},
		[]string{"reason"},
	)

	slotSoldOut = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "adventurelane",
			Name:      "slot_sold_out_total",
			Help:      "Count of slots whose last spot was booked.",
		},
	)

	promoValidated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "adventurelane",
			Name:      "promo_validated_total",
			Help:      "Count of promo code validations by outcome.",
		},
		[]string{"valid"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(bookingConfirmed, bookingRejected, slotSoldOut, promoValidated)
	})
}

func IncBookingConfirmed() {
	bookingConfirmed.Inc()
}

func IncBookingRejected(reason string) {
	bookingRejected.WithLabelValues(reason).Inc()
}

func IncSlotSoldOut() {
	slotSoldOut.Inc()
}

func IncPromoValidated(valid bool) {
	if valid {
		promoValidated.WithLabelValues("true").Inc()
		return
	}
	promoValidated.WithLabelValues("false").Inc()
}
