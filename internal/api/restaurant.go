package api

import (
	"net/http"

	"comandas-be/internal/restaurant"

	"github.com/gin-gonic/gin"
)

type registerRestaurantRequest struct {
	Name            string  `json:"name"`
	AdminEmail      string  `json:"admin_email"`
	Password        string  `json:"password"`
	ConfirmPassword string  `json:"confirm_password"`
	Address         string  `json:"address"`
	Phone           *string `json:"phone"`
}

func (h *Handler) listRestaurants(c *gin.Context) {
	list, err := h.Restaurants.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) registerRestaurant(c *gin.Context) {
	var req registerRestaurantRequest
	if !bindJSON(c, &req) {
		return
	}

	r, err := h.Restaurants.Register(c.Request.Context(), restaurant.RegisterInput{
		Name:            req.Name,
		AdminEmail:      req.AdminEmail,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Address:         req.Address,
		Phone:           req.Phone,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, r)
}

func (h *Handler) restaurantSummary(c *gin.Context) {
	s, err := h.Restaurants.Summary(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *Handler) getRestaurant(c *gin.Context) {
	r, err := h.Restaurants.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h *Handler) toggleRestaurant(c *gin.Context) {
	r, err := h.Restaurants.ToggleStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h *Handler) deleteRestaurant(c *gin.Context) {
	if err := h.Restaurants.Delete(c.Request.Context(), c.Param("id"), confirmed(c)); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
