package api

import (
	"net/http"

	"comandas-be/internal/menu"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type dishRequest struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Description *string         `json:"description"`
}

func (r dishRequest) input() menu.DishInput {
	return menu.DishInput{
		Name:        r.Name,
		Price:       r.Price,
		Category:    r.Category,
		Description: r.Description,
	}
}

func (h *Handler) listDishes(c *gin.Context) {
	var filter menu.Filter
	if cat := c.Query("category"); cat != "" {
		filter.Category = &cat
	}

	dishes, err := h.Menu.List(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dishes)
}

func (h *Handler) createDish(c *gin.Context) {
	var req dishRequest
	if !bindJSON(c, &req) {
		return
	}

	d, err := h.Menu.Create(c.Request.Context(), req.input())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, d)
}

func (h *Handler) getDish(c *gin.Context) {
	d, err := h.Menu.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

func (h *Handler) updateDish(c *gin.Context) {
	var req dishRequest
	if !bindJSON(c, &req) {
		return
	}

	d, err := h.Menu.Update(c.Request.Context(), c.Param("id"), req.input())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

func (h *Handler) deleteDish(c *gin.Context) {
	if err := h.Menu.Delete(c.Request.Context(), c.Param("id"), confirmed(c)); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
