package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"adventurelane/booking"
	"adventurelane/cache"
	"adventurelane/catalog"
	"adventurelane/http"
	"adventurelane/message"
	"adventurelane/postgres"
	"adventurelane/promo"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type Deps struct {
	Logger      watermill.LoggerAdapter
	DB          *sqlx.DB
	RedisClient *redis.Client
	CacheTTL    time.Duration
	HTTPAddr    string
}

type Service struct {
	forwarder  *message.Forwarder
	msgRouter  *message.Router
	httpRouter *echo.Echo
	httpAddr   string
}

func New(deps Deps) (*Service, error) {
	experienceRepo := postgres.NewExperienceRepo(deps.DB)
	promoRepo := postgres.NewPromoRepo(deps.DB)
	bookingRepo := postgres.NewBookingRepo(deps.DB, deps.Logger)

	detailsCache := cache.NewDetailsCache(deps.RedisClient, deps.CacheTTL)

	evaluator := promo.NewEvaluator(promoRepo)
	committer := booking.NewCommitter(experienceRepo, bookingRepo, evaluator)
	cat := catalog.New(experienceRepo, detailsCache)

	fwd, err := message.NewForwarder(deps.DB, deps.RedisClient, deps.Logger)
	if err != nil {
		return nil, fmt.Errorf("creating forwarder: %w", err)
	}

	msgRouter, err := message.NewRouter(message.RouterDeps{
		CacheInvalidator: detailsCache,
		Logger:           deps.Logger,
		RedisClient:      deps.RedisClient,
	})
	if err != nil {
		return nil, fmt.Errorf("creating message router: %w", err)
	}

	httpRouter := http.NewRouter(cat, committer, evaluator, bookingRepo)

	return &Service{
		forwarder:  fwd,
		msgRouter:  msgRouter,
		httpRouter: httpRouter,
		httpAddr:   deps.HTTPAddr,
	}, nil
}

func (s Service) Run(ctx context.Context) error {
	g, runCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := s.forwarder.Run(runCtx); err != nil {
			return fmt.Errorf("running outbox forwarder: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		if err := s.msgRouter.Run(runCtx); err != nil {
			return fmt.Errorf("running messaging router: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		// Wait for message router
		<-s.msgRouter.Running()

		logrus.Info("Starting HTTP server...")
		err := s.httpRouter.Start(s.httpAddr)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("starting http server: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		<-runCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		logrus.Info("Shutting down HTTP server...")
		if err := s.httpRouter.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down http server: %w", err)
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("waiting for shutdown: %w", err)
	}
	logrus.Info("Shutdown complete.")

	return nil
}
