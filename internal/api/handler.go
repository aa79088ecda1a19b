package api

import (
	"fmt"
	"net/http"
	"strconv"

	"comandas-be/internal/apperr"
	"comandas-be/internal/category"
	"comandas-be/internal/client"
	"comandas-be/internal/logger"
	"comandas-be/internal/menu"
	"comandas-be/internal/order"
	"comandas-be/internal/purchase"
	"comandas-be/internal/report"
	"comandas-be/internal/restaurant"
	"comandas-be/internal/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler wires HTTP routes to the domain services.
type Handler struct {
	Orders      order.Service
	Menu        menu.Service
	Categories  category.Service
	Purchases   purchase.Service
	Clients     client.Service
	Users       user.Service
	Restaurants restaurant.Service
	Reports     report.Service
}

var errBadRequest = fmt.Errorf("%w: malformed request body", apperr.ErrValidation)

// statusFor maps an error kind to its HTTP status.
func statusFor(err error) int {
	switch apperr.Kind(err) {
	case apperr.ErrValidation:
		return http.StatusBadRequest
	case apperr.ErrNotFound:
		return http.StatusNotFound
	case apperr.ErrConfirmationRequired:
		return http.StatusPreconditionRequired
	case apperr.ErrConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *gin.Context, err error) {
	status := statusFor(err)
	log := logger.FromCtx(c.Request.Context())

	if status == http.StatusInternalServerError {
		log.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(status, gin.H{"error": http.StatusText(status)})
		return
	}

	log.Debug("request rejected", zap.Int("status", status), zap.Error(err))
	c.JSON(status, gin.H{"error": err.Error()})
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		writeError(c, fmt.Errorf("%w: %v", errBadRequest, err))
		return false
	}
	return true
}

// confirmed reads the ?confirm=true flag that destructive routes require.
func confirmed(c *gin.Context) bool {
	ok, err := strconv.ParseBool(c.Query("confirm"))
	return err == nil && ok
}
