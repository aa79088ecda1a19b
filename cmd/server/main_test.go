package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"comandas-be/internal/api"
	"comandas-be/internal/config"
	"comandas-be/internal/events"
	"comandas-be/internal/middleware"
	"comandas-be/internal/order"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() *config.Config {
	return &config.Config{
		AppPort:          "0",
		StorageDriver:    config.StorageMemory,
		RestaurantName:   "Test",
		OrderTransitions: config.TransitionsPermissive,
		RateLimit:        10,
		RateBurst:        20,
	}
}

func TestNewHandler(t *testing.T) {
	t.Run("MemoryWithSeed", func(t *testing.T) {
		cfg := testConfig()
		cfg.SeedData = true

		h, err := newHandler(context.Background(), cfg, nil, events.NoopPublisher{})
		require.NoError(t, err)

		orders, err := h.Orders.List(context.Background(), order.Filter{})
		require.NoError(t, err)
		assert.Len(t, orders, 3)

		rr := httptest.NewRecorder()
		api.NewRouter(h, nil).ServeHTTP(rr, httptest.NewRequest("GET", "/api/menu", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("PostgresWithoutSeed", func(t *testing.T) {
		database, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer database.Close()

		h, err := newHandler(context.Background(), testConfig(), database, nil)
		require.NoError(t, err)
		assert.NotNil(t, h.Reports)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestServe(t *testing.T) {
	srv := &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- serve(ctx, srv, middleware.NewRateLimiter(1, 1)) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not stop after cancel")
	}
}

func TestRunRejectsBadConfig(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "mongo")
	assert.ErrorContains(t, run(), "unknown STORAGE_DRIVER")
}
