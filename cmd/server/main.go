package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"comandas-be/internal/api"
	"comandas-be/internal/category"
	"comandas-be/internal/client"
	"comandas-be/internal/config"
	"comandas-be/internal/db"
	"comandas-be/internal/events"
	"comandas-be/internal/logger"
	"comandas-be/internal/menu"
	"comandas-be/internal/middleware"
	"comandas-be/internal/order"
	"comandas-be/internal/purchase"
	"comandas-be/internal/report"
	"comandas-be/internal/restaurant"
	"comandas-be/internal/seed"
	"comandas-be/internal/user"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// Overridable in tests.
var (
	openDatabase = db.NewDatabase
	dialEvents   = func(cfg *config.Config) (publisherCloser, error) {
		return events.NewRabbitMQPublisher(cfg.RabbitMQURL, cfg.OrderExchange)
	}
)

type publisherCloser interface {
	events.Publisher
	Close() error
}

func main() {
	if err := run(); err != nil {
		logger.L().Fatal("server stopped with error", zap.Error(err))
	}
}

func run() error {
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger.Init(cfg.AppEnv)
	defer logger.Sync()
	log := logger.L()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Storage
	var database *sql.DB
	if cfg.StorageDriver == config.StoragePostgres {
		var err error
		database, err = openDatabase(cfg)
		if err != nil {
			return err
		}
		defer database.Close()
	}

	// 2. Events
	var publisher events.Publisher = events.NoopPublisher{}
	if cfg.RabbitMQURL != "" {
		p, err := dialEvents(cfg)
		if err != nil {
			return err
		}
		defer p.Close()
		publisher = p
	}

	// 3. Services
	handler, err := newHandler(ctx, cfg, database, publisher)
	if err != nil {
		return err
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateBurst)
	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           api.NewRouter(handler, limiter),
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Info("server starting",
		zap.String("addr", srv.Addr),
		zap.String("storage", cfg.StorageDriver),
		zap.String("order_transitions", cfg.OrderTransitions),
	)
	return serve(ctx, srv, limiter)
}

// newHandler builds every service. Orders and dishes live in postgres when database is
// set. Everything else is held in memory.
func newHandler(ctx context.Context, cfg *config.Config, database *sql.DB, publisher events.Publisher) (*api.Handler, error) {
	var (
		orderRepo order.Repository
		seq       order.Sequence
		dishRepo  menu.Repository
	)
	if database != nil {
		orderRepo = order.NewRepository(database)
		seq = order.NewPostgresSequence(database)
		dishRepo = menu.NewRepository(database)
	} else {
		orderRepo = order.NewMemoryRepository()
		seq = order.NewMemorySequence()
		dishRepo = menu.NewMemoryRepository()
	}

	dishes := menu.NewService(dishRepo)
	orders := order.NewService(orderRepo, seq, dishes, order.NewGate(cfg.OrderTransitions), publisher, cfg.RestaurantName)

	clientRepo := client.NewRepository()
	restaurantRepo := restaurant.NewRepository()

	h := &api.Handler{
		Orders:      orders,
		Menu:        dishes,
		Categories:  category.NewService(category.NewRepository()),
		Purchases:   purchase.NewService(purchase.NewRepository()),
		Clients:     client.NewService(clientRepo),
		Users:       user.NewService(user.NewRepository()),
		Restaurants: restaurant.NewService(restaurantRepo),
	}
	h.Reports = report.NewService(orders, dishes, h.Clients)

	if cfg.SeedData {
		err := seed.Run(ctx, seed.Targets{
			Menu:        dishes,
			Categories:  h.Categories,
			Orders:      orders,
			Purchases:   h.Purchases,
			Users:       h.Users,
			Clients:     clientRepo,
			Restaurants: restaurantRepo,
		})
		if err != nil {
			return nil, err
		}
	}
	return h, nil
}

// serve runs the HTTP server and the limiter sweeper until ctx is cancelled, then drains
// in-flight requests.
func serve(ctx context.Context, srv *http.Server, limiter *middleware.RateLimiter) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		return limiter.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.L().Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
