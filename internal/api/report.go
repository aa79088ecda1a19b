package api

import (
	"fmt"
	"net/http"
	"time"

	"comandas-be/internal/apperr"

	"github.com/gin-gonic/gin"
)

var errInvalidDate = fmt.Errorf("%w: date must be YYYY-MM-DD", apperr.ErrValidation)

// dashboard reports on ?date=YYYY-MM-DD in local time, defaulting to today.
func (h *Handler) dashboard(c *gin.Context) {
	day := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.ParseInLocation(time.DateOnly, raw, time.Local)
		if err != nil {
			writeError(c, errInvalidDate)
			return
		}
		day = parsed
	}

	d, err := h.Reports.Dashboard(c.Request.Context(), day)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

func (h *Handler) categoryDishCounts(c *gin.Context) {
	counts, err := h.Reports.CategoryDishCounts(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}
