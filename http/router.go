package http

import (
	"context"
	"net/http"

	"adventurelane/booking"
	"adventurelane/catalog"
	"adventurelane/entity"
	"adventurelane/promo"

	commonHTTP "github.com/ThreeDotsLabs/go-event-driven/common/http"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
)

var ErrServerClosed = http.ErrServerClosed

type Catalog interface {
	ListExperiences(ctx context.Context) ([]entity.Experience, error)
	GetExperience(ctx context.Context, id string) (entity.Experience, error)
	Details(ctx context.Context, experienceID string) (catalog.Details, error)
}

type Committer interface {
	Commit(ctx context.Context, req booking.Request) (entity.Booking, error)
}

type PromoEvaluator interface {
	Evaluate(ctx context.Context, code string, subtotal decimal.Decimal) promo.Result
}

type BookingRepo interface {
	Get(ctx context.Context, id string) (entity.Booking, error)
}

type handler struct {
	catalog     Catalog
	committer   Committer
	promos      PromoEvaluator
	bookingRepo BookingRepo
}

func NewRouter(c Catalog, cm Committer, p PromoEvaluator, br BookingRepo) *echo.Echo {
	server := commonHTTP.NewEcho()

	server.Use(correlationIDMiddleware)
	server.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{"authorization", "x-client-info", "apikey", "content-type"},
	}))

	server.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	server.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	h := handler{
		catalog:     c,
		committer:   cm,
		promos:      p,
		bookingRepo: br,
	}

	server.GET("/experiences", h.ListExperiences)
	server.GET("/experience-details", h.GetExperienceDetails)
	server.POST("/validate-promo", h.ValidatePromo)
	server.POST("/bookings", h.CreateBooking)
	server.GET("/bookings/:id", h.GetBooking)

	return server
}

type errorResponse struct {
	Error string `json:"error"`
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, errorResponse{Error: message})
}
