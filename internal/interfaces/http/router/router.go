package router

import (
	"github.com/gin-gonic/gin"

	"oficina/internal/interfaces/http/handler"
)

type Handlers struct {
	WorkOrders *handler.WorkOrderHandler
	Catalog    *handler.CatalogHandler
	Clients    *handler.ClientHandler
	Vehicles   *handler.VehicleHandler
	Finance    *handler.FinanceHandler
	Health     *handler.HealthHandler
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	r.GET("/health", h.Health.Health)

	api := r.Group("/api")
	{
		api.POST("/orders", h.WorkOrders.SubmitOrder)
		api.GET("/orders", h.WorkOrders.ListOrders)
		api.GET("/orders/:id", h.WorkOrders.GetOrder)
		api.PATCH("/orders/:id/status", h.WorkOrders.UpdateStatus)

		api.POST("/services", h.Catalog.CreateService)
		api.GET("/services", h.Catalog.ListServices)
		api.PUT("/services/:id", h.Catalog.UpdateService)
		api.POST("/parts", h.Catalog.CreatePart)
		api.GET("/parts", h.Catalog.ListParts)
		api.PUT("/parts/:id", h.Catalog.UpdatePart)
		api.GET("/parts/critical", h.Catalog.CriticalStock)
		api.POST("/movements", h.Catalog.RegisterMovement)
		api.GET("/movements", h.Catalog.ListMovements)

		api.POST("/clients", h.Clients.Register)
		api.GET("/clients", h.Clients.Search)
		api.GET("/clients/:id", h.Clients.Get)

		api.POST("/vehicles", h.Vehicles.Register)
		api.GET("/vehicles", h.Vehicles.List)
		api.GET("/vehicles/:id", h.Vehicles.Get)

		api.POST("/transactions", h.Finance.Register)
		api.GET("/transactions", h.Finance.List)
		api.GET("/reports/summary", h.Finance.MonthlySummary)
	}
}
