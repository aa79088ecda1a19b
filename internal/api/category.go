package api

import (
	"net/http"

	"comandas-be/internal/category"

	"github.com/gin-gonic/gin"
)

type categoryRequest struct {
	Name      string `json:"name"`
	Color     string `json:"color"`
	Icon      string `json:"icon"`
	DishCount int    `json:"dish_count"`
}

func (r categoryRequest) input() category.CategoryInput {
	return category.CategoryInput{
		Name:      r.Name,
		Color:     r.Color,
		Icon:      r.Icon,
		DishCount: r.DishCount,
	}
}

func (h *Handler) listCategories(c *gin.Context) {
	cats, err := h.Categories.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cats)
}

func (h *Handler) createCategory(c *gin.Context) {
	var req categoryRequest
	if !bindJSON(c, &req) {
		return
	}

	cat, err := h.Categories.Create(c.Request.Context(), req.input())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cat)
}

func (h *Handler) getCategory(c *gin.Context) {
	cat, err := h.Categories.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (h *Handler) updateCategory(c *gin.Context) {
	var req categoryRequest
	if !bindJSON(c, &req) {
		return
	}

	cat, err := h.Categories.Update(c.Request.Context(), c.Param("id"), req.input())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (h *Handler) deleteCategory(c *gin.Context) {
	if err := h.Categories.Delete(c.Request.Context(), c.Param("id"), confirmed(c)); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
