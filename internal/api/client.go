package api

import (
	"net/http"

	"comandas-be/internal/client"

	"github.com/gin-gonic/gin"
)

type clientRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	Address *string `json:"address"`
}

func (r clientRequest) input() client.ClientInput {
	return client.ClientInput{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Address: r.Address,
	}
}

func (h *Handler) listClients(c *gin.Context) {
	clients, err := h.Clients.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, clients)
}

func (h *Handler) createClient(c *gin.Context) {
	var req clientRequest
	if !bindJSON(c, &req) {
		return
	}

	cl, err := h.Clients.Create(c.Request.Context(), req.input())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cl)
}

func (h *Handler) getClient(c *gin.Context) {
	cl, err := h.Clients.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cl)
}

func (h *Handler) updateClient(c *gin.Context) {
	var req clientRequest
	if !bindJSON(c, &req) {
		return
	}

	cl, err := h.Clients.Update(c.Request.Context(), c.Param("id"), req.input())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cl)
}

func (h *Handler) toggleClient(c *gin.Context) {
	cl, err := h.Clients.ToggleStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cl)
}

func (h *Handler) deleteClient(c *gin.Context) {
	if err := h.Clients.Delete(c.Request.Context(), c.Param("id"), confirmed(c)); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// clientStats aggregates the order history recorded under the client's name.
func (h *Handler) clientStats(c *gin.Context) {
	ctx := c.Request.Context()

	cl, err := h.Clients.Get(ctx, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	stats, err := h.Reports.ClientStats(ctx, cl.Name)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
