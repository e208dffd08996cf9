package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	app "oficina/internal/application/workorder"
	domain "oficina/internal/domain/workorder"
)

type WorkOrderHandler struct {
	svc *app.Service
}

func NewWorkOrderHandler(svc *app.Service) *WorkOrderHandler {
	return &WorkOrderHandler{svc: svc}
}

func (h *WorkOrderHandler) SubmitOrder(c *gin.Context) {
	var cmd app.SubmitOrderCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.svc.SubmitOrder(c.Request.Context(), cmd)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"id":      order.ID,
		"total":   order.Total,
		"status":  order.Status,
		"message": "work order accepted and queued",
	})
}

func (h *WorkOrderHandler) GetOrder(c *gin.Context) {
	order, err := h.svc.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, app.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, order)
}

func (h *WorkOrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.svc.ListOrders(
		c.Request.Context(),
		c.Query("search"),
		domain.Status(c.Query("status")),
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": orders})
}

func (h *WorkOrderHandler) UpdateStatus(c *gin.Context) {
	var body struct {
		Status domain.Status `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.svc.UpdateStatus(c.Request.Context(), c.Param("id"), body.Status)
	if err != nil {
		if errors.Is(err, app.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, order)
}
