package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/gearmart/orderdesk/internal/domain/errors"
	"github.com/gearmart/orderdesk/internal/domain/model"
	"github.com/gearmart/orderdesk/internal/server/http/dto"
)

// OrderHandler manages order read and ingest endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.Orders(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if len(orders) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// Create handles POST /api/orders. The payload is a raw checkout record;
// missing fields are completed by normalization.
func (h *OrderHandler) Create(c *gin.Context) {
	var order model.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "malformed order record"})
		return
	}

	stored, err := h.facade.AppendOrder(c.Request.Context(), order)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusAccepted, stored)
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.facade.Order(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeLookupError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// Policy handles GET /api/orders/:id/policy. Flags are computed at request
// time, not read from storage.
func (h *OrderHandler) Policy(c *gin.Context) {
	info, err := h.facade.OrderPolicy(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeLookupError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.PolicyResponse{
		CanCancel:  info.CanCancel,
		CanReturn:  info.CanReturn,
		CanReview:  info.CanReview,
		PolicyText: info.PolicyText,
	})
}

// Tracking handles GET /api/orders/:id/tracking.
func (h *OrderHandler) Tracking(c *gin.Context) {
	order, err := h.facade.Order(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeLookupError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.TrackingResponse{
		OrderNumber:       order.OrderNumber,
		Status:            string(order.Status),
		TrackingNumber:    order.TrackingNumber,
		Carrier:           order.Carrier,
		EstimatedDelivery: order.EstimatedDelivery,
	})
}

// Invoice handles GET /api/orders/:id/invoice.
func (h *OrderHandler) Invoice(c *gin.Context) {
	order, err := h.facade.Order(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeLookupError(c, err)
		return
	}

	lines := make([]dto.InvoiceLine, 0, len(order.Items))
	for _, item := range order.Items {
		lines = append(lines, dto.InvoiceLine{
			Name:      item.Product.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.Product.Price,
			LineTotal: item.Product.Price * float64(item.Quantity),
		})
	}

	c.JSON(http.StatusOK, dto.InvoiceResponse{
		OrderNumber:   order.OrderNumber,
		Date:          order.Date,
		Lines:         lines,
		Subtotal:      order.Subtotal,
		Shipping:      order.Shipping,
		Total:         order.Total,
		PaymentMethod: string(order.PaymentMethod),
		ShipTo:        order.ShippingAddress,
	})
}

func writeLookupError(c *gin.Context, err error) {
	if errors.Is(err, domainErrors.ErrNotFound) {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "order not found"})
		return
	}
	c.Status(http.StatusInternalServerError)
}
