package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/china630/bolt-usta-app/services/matching"
)

// GetOrderMatch returns the current matching outcome for an order
func (h *Handler) GetOrderMatch(c echo.Context) error {
	orderID := c.Param("id")
	if orderID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "order id is required")
	}

	order, err := h.matchingUC.GetOrderMatch(c.Request().Context(), orderID)
	if err != nil {
		if errors.Is(err, matching.ErrOrderNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "order not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, order)
}

// RequeueOrder moves a stuck order back to pending for another matching pass
func (h *Handler) RequeueOrder(c echo.Context) error {
	orderID := c.Param("id")
	if orderID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "order id is required")
	}

	order, err := h.matchingUC.RequeueOrder(c.Request().Context(), orderID)
	if err != nil {
		switch {
		case errors.Is(err, matching.ErrOrderNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "order not found")
		case errors.Is(err, matching.ErrOrderNotRequeueable),
			errors.Is(err, matching.ErrRetriesExhausted):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, order)
}
