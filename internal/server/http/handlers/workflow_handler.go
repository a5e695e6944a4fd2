package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/gearmart/orderdesk/internal/domain/errors"
	"github.com/gearmart/orderdesk/internal/domain/model"
	"github.com/gearmart/orderdesk/internal/server/http/dto"
)

// WorkflowHandler manages cancellation and restore endpoints.
type WorkflowHandler struct {
	facade WorkflowFacade
}

// NewWorkflowHandler constructs WorkflowHandler.
func NewWorkflowHandler(facade WorkflowFacade) *WorkflowHandler {
	return &WorkflowHandler{facade: facade}
}

// Cancel handles POST /api/orders/:id/cancel.
func (h *WorkflowHandler) Cancel(c *gin.Context) {
	var req dto.CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "malformed cancellation payload"})
		return
	}

	result, err := h.facade.CancelOrder(
		c.Request.Context(),
		c.Param("id"),
		model.CancelReason(req.Reason),
		req.Note,
		req.Confirmation,
	)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "order not found"})
		case errors.Is(err, domainErrors.ErrNotEligible):
			c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "order is no longer eligible for cancellation"})
		case errors.Is(err, domainErrors.ErrInvalidConfirmation):
			c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: "confirmation phrase does not match"})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, dto.CancelResponse{
		Order:         result.Order,
		RefundMessage: result.RefundMessage,
	})
}

// Restore handles POST /api/orders/:id/restore.
func (h *WorkflowHandler) Restore(c *gin.Context) {
	order, err := h.facade.RestoreOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "order not found"})
		case errors.Is(err, domainErrors.ErrNotEligible):
			c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "only cancelled orders can be restored"})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusOK, order)
}
