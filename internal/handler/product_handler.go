package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"papi/internal/service"
)

// ProductHandler handles catalog browsing and seller product management.
type ProductHandler struct {
	productService service.ProductService
}

// NewProductHandler creates a new product handler.
func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// List godoc
// @Summary Browse products with optional category and search filters
// @Tags products
// @Produce json
// @Param category query string false "Category slug"
// @Param q query string false "Search query (name, description, category)"
// @Success 200 {array} model.Product
// @Router /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products := h.productService.Browse(
		c.Request().Context(),
		c.QueryParam("category"),
		c.QueryParam("q"),
	)
	return c.JSON(http.StatusOK, products)
}

// Get godoc
// @Summary Fetch one product by id
// @Tags products
// @Produce json
// @Param id path string true "Product id"
// @Success 200 {object} model.Product
// @Failure 404 {object} errors.ErrorResponse
// @Router /products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.productService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, product)
}

// Categories godoc
// @Summary List the product categories
// @Tags products
// @Produce json
// @Success 200 {array} model.Category
// @Router /categories [get]
func (h *ProductHandler) Categories(c echo.Context) error {
	return c.JSON(http.StatusOK, h.productService.Categories(c.Request().Context()))
}

// ListMine godoc
// @Summary List the authenticated seller's products
// @Tags seller
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Product
// @Router /seller/products [get]
func (h *ProductHandler) ListMine(c echo.Context) error {
	session := CurrentSession(c)
	products := h.productService.ListBySeller(c.Request().Context(), session.User.ID)
	return c.JSON(http.StatusOK, products)
}

// Create godoc
// @Summary Create a product owned by the authenticated seller
// @Tags seller
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.ProductInput true "Product fields"
// @Success 201 {object} model.Product
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /seller/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req service.ProductInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Price.Sign() <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "price must be positive")
	}

	product, err := h.productService.Create(c.Request().Context(), CurrentSession(c), req)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, product)
}

// Update godoc
// @Summary Edit one of the authenticated seller's products
// @Tags seller
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product id"
// @Param request body service.ProductUpdate true "Fields to change"
// @Success 200 {object} model.Product
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /seller/products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	var req service.ProductUpdate
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Price != nil && req.Price.Sign() <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "price must be positive")
	}

	product, err := h.productService.Update(c.Request().Context(), CurrentSession(c), c.Param("id"), req)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, product)
}

// Delete godoc
// @Summary Remove one of the authenticated seller's products
// @Tags seller
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product id"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /seller/products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.productService.Delete(c.Request().Context(), CurrentSession(c), c.Param("id")); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "product deleted",
	})
}
