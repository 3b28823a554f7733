package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"papi/internal/service"
)

// AdminHandler handles the admin dashboard endpoints.
type AdminHandler struct {
	userService    service.UserService
	productService service.ProductService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(userService service.UserService, productService service.ProductService) *AdminHandler {
	return &AdminHandler{
		userService:    userService,
		productService: productService,
	}
}

// ListUsers godoc
// @Summary List every user account
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.User
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	return c.JSON(http.StatusOK, h.userService.List(c.Request().Context()))
}

// ToggleUserStatus godoc
// @Summary Flip a user between active and blocked
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "User id"
// @Success 200 {object} model.User
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/users/{id}/status [patch]
func (h *AdminHandler) ToggleUserStatus(c echo.Context) error {
	user, err := h.userService.ToggleStatus(c.Request().Context(), c.Param("id"))
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// DeleteUser godoc
// @Summary Remove a user account
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "User id"
// @Success 200 {object} map[string]string
// @Router /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	h.userService.Delete(c.Request().Context(), c.Param("id"))
	return c.JSON(http.StatusOK, map[string]string{
		"message": "user deleted",
	})
}

// ListProducts godoc
// @Summary List every product for moderation
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Product
// @Router /admin/products [get]
func (h *AdminHandler) ListProducts(c echo.Context) error {
	products := h.productService.Browse(c.Request().Context(), "", "")
	return c.JSON(http.StatusOK, products)
}

// DeleteProduct godoc
// @Summary Remove any product
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/products/{id} [delete]
func (h *AdminHandler) DeleteProduct(c echo.Context) error {
	if err := h.productService.Delete(c.Request().Context(), CurrentSession(c), c.Param("id")); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "product deleted",
	})
}

// Stats godoc
// @Summary Return dashboard counters
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.DashboardStats
// @Router /admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.userService.Stats(c.Request().Context()))
}
