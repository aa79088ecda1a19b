package api

import (
	"net/http"
	"time"

	"comandas-be/internal/purchase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type purchaseItemRequest struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type purchaseRequest struct {
	Supplier      string                `json:"supplier"`
	InvoiceNumber string                `json:"invoice_number"`
	Items         []purchaseItemRequest `json:"items"`
	Date          *time.Time            `json:"date"`
	Status        string                `json:"status"`
}

func (h *Handler) listPurchases(c *gin.Context) {
	purchases, err := h.Purchases.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, purchases)
}

func (h *Handler) createPurchase(c *gin.Context) {
	var req purchaseRequest
	if !bindJSON(c, &req) {
		return
	}

	input := purchase.PurchaseInput{
		Supplier:      req.Supplier,
		InvoiceNumber: req.InvoiceNumber,
		Status:        purchase.Status(req.Status),
	}
	if req.Date != nil {
		input.Date = *req.Date
	}
	for _, it := range req.Items {
		input.Items = append(input.Items, purchase.ItemInput{
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}

	p, err := h.Purchases.Create(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *Handler) getPurchase(c *gin.Context) {
	p, err := h.Purchases.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) updatePurchaseStatus(c *gin.Context) {
	var req statusRequest
	if !bindJSON(c, &req) {
		return
	}

	st, err := purchase.ParseStatus(req.Status)
	if err != nil {
		writeError(c, err)
		return
	}

	p, err := h.Purchases.UpdateStatus(c.Request.Context(), c.Param("id"), st)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
