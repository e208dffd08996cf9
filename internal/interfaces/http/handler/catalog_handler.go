package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	app "oficina/internal/application/catalog"
)

type CatalogHandler struct {
	svc *app.Service
}

func NewCatalogHandler(svc *app.Service) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

func (h *CatalogHandler) CreateService(c *gin.Context) {
	var cmd app.CreateServiceCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc, err := h.svc.CreateService(c.Request.Context(), cmd)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, svc)
}

func (h *CatalogHandler) UpdateService(c *gin.Context) {
	var cmd app.CreateServiceCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc, err := h.svc.UpdateService(c.Request.Context(), c.Param("id"), cmd)
	if err != nil {
		if errors.Is(err, app.ErrServiceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, svc)
}

func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.svc.ListServices(c.Request.Context(), c.Query("search"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": services})
}

func (h *CatalogHandler) CreatePart(c *gin.Context) {
	var cmd app.CreatePartCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	part, err := h.svc.CreatePart(c.Request.Context(), cmd)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, part)
}

func (h *CatalogHandler) UpdatePart(c *gin.Context) {
	var cmd app.CreatePartCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	part, err := h.svc.UpdatePart(c.Request.Context(), c.Param("id"), cmd)
	if err != nil {
		if errors.Is(err, app.ErrPartNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, part)
}

func (h *CatalogHandler) ListParts(c *gin.Context) {
	parts, err := h.svc.ListParts(c.Request.Context(), c.Query("search"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": parts})
}

func (h *CatalogHandler) CriticalStock(c *gin.Context) {
	parts, err := h.svc.CriticalStock(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": parts})
}

func (h *CatalogHandler) RegisterMovement(c *gin.Context) {
	var cmd app.MovementCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mv, err := h.svc.RegisterMovement(c.Request.Context(), cmd)
	if err != nil {
		if errors.Is(err, app.ErrPartNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, mv)
}

func (h *CatalogHandler) ListMovements(c *gin.Context) {
	movements, err := h.svc.ListMovements(c.Request.Context(), c.Query("part_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": movements})
}
