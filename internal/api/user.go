package api

import (
	"net/http"

	"comandas-be/internal/user"

	"github.com/gin-gonic/gin"
)

type userRequest struct {
	Username        string  `json:"username"`
	Email           string  `json:"email"`
	FullName        string  `json:"full_name"`
	Phone           *string `json:"phone"`
	Role            string  `json:"role"`
	Password        string  `json:"password"`
	ConfirmPassword string  `json:"confirm_password"`
}

func (r userRequest) input() user.UserInput {
	return user.UserInput{
		Username:        r.Username,
		Email:           r.Email,
		FullName:        r.FullName,
		Phone:           r.Phone,
		Role:            user.Role(r.Role),
		Password:        r.Password,
		ConfirmPassword: r.ConfirmPassword,
	}
}

func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.Users.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *Handler) createUser(c *gin.Context) {
	var req userRequest
	if !bindJSON(c, &req) {
		return
	}

	u, err := h.Users.Create(c.Request.Context(), req.input())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

func (h *Handler) getUser(c *gin.Context) {
	u, err := h.Users.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *Handler) updateUser(c *gin.Context) {
	var req userRequest
	if !bindJSON(c, &req) {
		return
	}

	u, err := h.Users.Update(c.Request.Context(), c.Param("id"), req.input())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *Handler) toggleUser(c *gin.Context) {
	u, err := h.Users.ToggleActive(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *Handler) deleteUser(c *gin.Context) {
	if err := h.Users.Delete(c.Request.Context(), c.Param("id"), confirmed(c)); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) rolePermissions(c *gin.Context) {
	role, err := user.ParseRole(c.Param("role"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"role":        role,
		"label":       role.Label(),
		"permissions": user.Permissions(role),
	})
}
