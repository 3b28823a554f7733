package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"papi/internal/model"
	"papi/internal/service"
)

// OrderHandler handles buyer and seller order endpoints.
type OrderHandler struct {
	orderService service.OrderService
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// UpdateStatusRequest represents a seller-driven status transition.
type UpdateStatusRequest struct {
	Status model.OrderStatus `json:"status" validate:"required"`
}

// ListMine godoc
// @Summary List the authenticated buyer's orders
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Order
// @Router /orders [get]
func (h *OrderHandler) ListMine(c echo.Context) error {
	session := CurrentSession(c)
	orders := h.orderService.ListByBuyer(c.Request().Context(), session.User.ID)
	return c.JSON(http.StatusOK, orders)
}

// ListForSeller godoc
// @Summary List orders addressed to the authenticated seller
// @Tags seller
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Order
// @Router /seller/orders [get]
func (h *OrderHandler) ListForSeller(c echo.Context) error {
	session := CurrentSession(c)
	orders := h.orderService.ListBySeller(c.Request().Context(), session.User.ID)
	return c.JSON(http.StatusOK, orders)
}

// UpdateStatus godoc
// @Summary Advance an order through its status lifecycle
// @Tags seller
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order id"
// @Param request body UpdateStatusRequest true "Target status"
// @Success 200 {object} model.Order
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /seller/orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.orderService.UpdateStatus(c.Request().Context(), CurrentSession(c), c.Param("id"), req.Status)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, order)
}
