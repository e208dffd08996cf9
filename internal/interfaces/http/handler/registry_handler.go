package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	clientapp "oficina/internal/application/client"
	vehicleapp "oficina/internal/application/vehicle"
)

type ClientHandler struct {
	svc *clientapp.Service
}

func NewClientHandler(svc *clientapp.Service) *ClientHandler {
	return &ClientHandler{svc: svc}
}

func (h *ClientHandler) Register(c *gin.Context) {
	var cmd clientapp.RegisterClientCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.svc.Register(c.Request.Context(), cmd)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *ClientHandler) Get(c *gin.Context) {
	found, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, clientapp.ErrClientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, found)
}

func (h *ClientHandler) Search(c *gin.Context) {
	clients, err := h.svc.Search(c.Request.Context(), c.Query("search"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": clients})
}

type VehicleHandler struct {
	svc *vehicleapp.Service
}

func NewVehicleHandler(svc *vehicleapp.Service) *VehicleHandler {
	return &VehicleHandler{svc: svc}
}

func (h *VehicleHandler) Register(c *gin.Context) {
	var cmd vehicleapp.RegisterVehicleCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.svc.Register(c.Request.Context(), cmd)
	if err != nil {
		if errors.Is(err, vehicleapp.ErrUnknownClient) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *VehicleHandler) Get(c *gin.Context) {
	found, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, vehicleapp.ErrVehicleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, found)
}

func (h *VehicleHandler) List(c *gin.Context) {
	vehicles, err := h.svc.SearchByClient(c.Request.Context(), c.Query("client_id"), c.Query("search"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": vehicles})
}
