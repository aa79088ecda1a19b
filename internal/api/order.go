package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"comandas-be/internal/apperr"
	"comandas-be/internal/order"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	errInvalidOrderID = fmt.Errorf("%w: invalid order id", apperr.ErrValidation)
	errInvalidIfMatch = fmt.Errorf("%w: If-Match must be an order version number", apperr.ErrValidation)
)

// --- Request / response shapes ---

type orderItemRequest struct {
	DishID   string `json:"dish_id"`
	Quantity *int   `json:"quantity"`
}

type createOrderRequest struct {
	TableID      string             `json:"table_id"`
	CustomerName *string            `json:"customer_name"`
	StaffID      string             `json:"staff_id"`
	Items        []orderItemRequest `json:"items"`
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

type lineRequest struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

type editLinesRequest struct {
	Items []lineRequest `json:"items"`
}

type addItemRequest struct {
	DishID string `json:"dish_id" binding:"required"`
}

type quantityRequest struct {
	Quantity int `json:"quantity"`
}

type lineResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	Subtotal  string `json:"subtotal"`
}

type orderResponse struct {
	ID                 string              `json:"id"`
	Label              string              `json:"label"`
	CustomerName       string              `json:"customer_name"`
	TableID            string              `json:"table_id"`
	Items              []lineResponse      `json:"items"`
	Total              string              `json:"total"`
	Status             order.Status        `json:"status"`
	StatusLabel        string              `json:"status_label"`
	PaymentStatus      order.PaymentStatus `json:"payment_status"`
	PaymentStatusLabel string              `json:"payment_status_label"`
	CreatedAt          time.Time           `json:"created_at"`
	CompletedAt        *time.Time          `json:"completed_at,omitempty"`
	StaffID            string              `json:"staff_id,omitempty"`
	Version            int                 `json:"version"`
}

func toOrderResponse(o *order.Order) orderResponse {
	items := make([]lineResponse, 0, len(o.Lines))
	for _, l := range o.Lines {
		items = append(items, lineResponse{
			ID:        l.ID,
			Name:      l.Name,
			UnitPrice: l.UnitPrice.StringFixed(2),
			Quantity:  l.Quantity,
			Subtotal:  l.Subtotal.StringFixed(2),
		})
	}

	return orderResponse{
		ID:                 o.ID.String(),
		Label:              o.Label,
		CustomerName:       o.DisplayCustomer(),
		TableID:            o.TableID,
		Items:              items,
		Total:              o.Total().StringFixed(2),
		Status:             o.Status,
		StatusLabel:        o.Status.Label(),
		PaymentStatus:      o.PaymentStatus,
		PaymentStatusLabel: o.PaymentStatus.Label(),
		CreatedAt:          o.CreatedAt,
		CompletedAt:        o.CompletedAt,
		StaffID:            o.StaffID,
		Version:            o.Version,
	}
}

func writeOrder(c *gin.Context, status int, o *order.Order) {
	c.Header("ETag", strconv.Itoa(o.Version))
	c.JSON(status, toOrderResponse(o))
}

// --- Param helpers ---

func orderID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeError(c, errInvalidOrderID)
		return uuid.Nil, false
	}
	return id, true
}

// expectedVersion reads the optional If-Match header.
func expectedVersion(c *gin.Context) (*int, bool) {
	raw := c.GetHeader("If-Match")
	if raw == "" {
		return nil, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		writeError(c, errInvalidIfMatch)
		return nil, false
	}
	return &v, true
}

// --- Handlers ---

func (h *Handler) createOrder(c *gin.Context) {
	var req createOrderRequest
	if !bindJSON(c, &req) {
		return
	}

	items := make([]order.ItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		qty := 1
		if it.Quantity != nil {
			qty = *it.Quantity
		}
		items = append(items, order.ItemInput{DishID: it.DishID, Quantity: qty})
	}

	o, err := h.Orders.Create(c.Request.Context(), order.CreateOrderInput{
		TableID:      req.TableID,
		CustomerName: req.CustomerName,
		Items:        items,
		StaffID:      req.StaffID,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	writeOrder(c, http.StatusCreated, o)
}

func (h *Handler) listOrders(c *gin.Context) {
	var filter order.Filter

	if raw := c.Query("status"); raw != "" {
		st, err := order.ParseStatus(raw)
		if err != nil {
			writeError(c, err)
			return
		}
		filter.Status = &st
	}
	if raw := c.Query("payment_status"); raw != "" {
		ps, err := order.ParsePaymentStatus(raw)
		if err != nil {
			writeError(c, err)
			return
		}
		filter.PaymentStatus = &ps
	}
	if table := c.Query("table_id"); table != "" {
		filter.TableID = &table
	}

	orders, err := h.Orders.List(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) getOrder(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	o, err := h.Orders.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	writeOrder(c, http.StatusOK, o)
}

func (h *Handler) updateOrderStatus(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	version, ok := expectedVersion(c)
	if !ok {
		return
	}
	var req statusRequest
	if !bindJSON(c, &req) {
		return
	}

	st, err := order.ParseStatus(req.Status)
	if err != nil {
		writeError(c, err)
		return
	}

	o, err := h.Orders.UpdateStatus(c.Request.Context(), id, st, version)
	if err != nil {
		writeError(c, err)
		return
	}
	writeOrder(c, http.StatusOK, o)
}

func (h *Handler) updatePaymentStatus(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	version, ok := expectedVersion(c)
	if !ok {
		return
	}
	var req statusRequest
	if !bindJSON(c, &req) {
		return
	}

	ps, err := order.ParsePaymentStatus(req.Status)
	if err != nil {
		writeError(c, err)
		return
	}

	o, err := h.Orders.UpdatePaymentStatus(c.Request.Context(), id, ps, version)
	if err != nil {
		writeError(c, err)
		return
	}
	writeOrder(c, http.StatusOK, o)
}

func (h *Handler) editOrderLines(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	version, ok := expectedVersion(c)
	if !ok {
		return
	}
	var req editLinesRequest
	if !bindJSON(c, &req) {
		return
	}

	lines := make([]order.LineItem, 0, len(req.Items))
	for _, l := range req.Items {
		lines = append(lines, order.LineItem{
			ID:        l.ID,
			Name:      l.Name,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
		})
	}

	o, err := h.Orders.EditLines(c.Request.Context(), id, lines, version)
	if err != nil {
		writeError(c, err)
		return
	}
	writeOrder(c, http.StatusOK, o)
}

func (h *Handler) addOrderItem(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	version, ok := expectedVersion(c)
	if !ok {
		return
	}
	var req addItemRequest
	if !bindJSON(c, &req) {
		return
	}

	o, err := h.Orders.AddItem(c.Request.Context(), id, req.DishID, version)
	if err != nil {
		writeError(c, err)
		return
	}
	writeOrder(c, http.StatusOK, o)
}

func (h *Handler) setOrderItemQuantity(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	version, ok := expectedVersion(c)
	if !ok {
		return
	}
	var req quantityRequest
	if !bindJSON(c, &req) {
		return
	}

	o, err := h.Orders.SetItemQuantity(c.Request.Context(), id, c.Param("dishId"), req.Quantity, version)
	if err != nil {
		writeError(c, err)
		return
	}
	writeOrder(c, http.StatusOK, o)
}

func (h *Handler) deleteOrder(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	if err := h.Orders.Delete(c.Request.Context(), id, confirmed(c)); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) orderTicket(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	ticket, err := h.Orders.Ticket(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.String(http.StatusOK, ticket)
}
