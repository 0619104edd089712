package handler

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers the matching service HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	orders := e.Group("/orders")
	orders.GET("/:id/match", h.GetOrderMatch)
	orders.POST("/:id/requeue", h.RequeueOrder)
}
