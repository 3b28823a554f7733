package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"papi/internal/model"
	"papi/internal/service"
)

// CartHandler handles the authenticated buyer cart and both checkout variants.
type CartHandler struct {
	cartService     service.CartService
	checkoutService service.CheckoutService
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(cartService service.CartService, checkoutService service.CheckoutService) *CartHandler {
	return &CartHandler{
		cartService:     cartService,
		checkoutService: checkoutService,
	}
}

// AddItemRequest represents adding a product to the cart.
type AddItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity"`
}

// UpdateItemRequest represents overwriting a cart line's quantity.
type UpdateItemRequest struct {
	Quantity int `json:"quantity"`
}

// CheckoutRequest represents the authenticated checkout call.
type CheckoutRequest struct {
	Notes string `json:"notes"`
}

// CartResponse is the cart with its derived totals and seller grouping.
type CartResponse struct {
	Items     []model.CartItem    `json:"items"`
	Total     decimal.Decimal     `json:"total"`
	ItemCount int                 `json:"itemCount"`
	BySeller  []model.SellerGroup `json:"bySeller"`
}

func (h *CartHandler) cartResponse(items []model.CartItem) CartResponse {
	return CartResponse{
		Items:     items,
		Total:     service.CartTotal(items),
		ItemCount: service.CartItemCount(items),
		BySeller:  service.GroupBySeller(items),
	}
}

// Get godoc
// @Summary Return the buyer's cart with totals and seller grouping
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} CartResponse
// @Router /cart [get]
func (h *CartHandler) Get(c echo.Context) error {
	session := CurrentSession(c)
	items := h.cartService.Items(c.Request().Context(), session.User.ID)
	return c.JSON(http.StatusOK, h.cartResponse(items))
}

// AddItem godoc
// @Summary Add a product to the cart, incrementing an existing line
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AddItemRequest true "Product and quantity"
// @Success 200 {object} CartResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c echo.Context) error {
	var req AddItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	session := CurrentSession(c)
	items, err := h.cartService.Add(c.Request().Context(), session.User.ID, req.ProductID, req.Quantity)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, h.cartResponse(items))
}

// UpdateItem godoc
// @Summary Overwrite a cart line's quantity; zero or less removes it
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param productId path string true "Product id"
// @Param request body UpdateItemRequest true "New quantity"
// @Success 200 {object} CartResponse
// @Router /cart/items/{productId} [patch]
func (h *CartHandler) UpdateItem(c echo.Context) error {
	var req UpdateItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	session := CurrentSession(c)
	items := h.cartService.UpdateQuantity(c.Request().Context(), session.User.ID, c.Param("productId"), req.Quantity)
	return c.JSON(http.StatusOK, h.cartResponse(items))
}

// RemoveItem godoc
// @Summary Remove a product from the cart
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param productId path string true "Product id"
// @Success 200 {object} CartResponse
// @Router /cart/items/{productId} [delete]
func (h *CartHandler) RemoveItem(c echo.Context) error {
	session := CurrentSession(c)
	items := h.cartService.Remove(c.Request().Context(), session.User.ID, c.Param("productId"))
	return c.JSON(http.StatusOK, h.cartResponse(items))
}

// Clear godoc
// @Summary Empty the cart
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} CartResponse
// @Router /cart [delete]
func (h *CartHandler) Clear(c echo.Context) error {
	session := CurrentSession(c)
	h.cartService.Clear(c.Request().Context(), session.User.ID)
	return c.JSON(http.StatusOK, h.cartResponse([]model.CartItem{}))
}

// Checkout godoc
// @Summary Place one Pending order per seller from the cart
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CheckoutRequest true "Order notes"
// @Success 201 {array} model.Order
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /cart/checkout [post]
func (h *CartHandler) Checkout(c echo.Context) error {
	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	orders, err := h.cartService.PlaceOrder(c.Request().Context(), CurrentSession(c), req.Notes)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, orders)
}

// GuestCheckout godoc
// @Summary Append a guest order with contact details to the guest-order log
// @Tags cart
// @Accept json
// @Produce json
// @Param request body service.GuestOrderInput true "Contact details and cart snapshot"
// @Success 201 {object} model.GuestOrder
// @Failure 400 {object} errors.ErrorResponse
// @Router /checkout/guest [post]
func (h *CartHandler) GuestCheckout(c echo.Context) error {
	var req service.GuestOrderInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.checkoutService.PlaceGuestOrder(c.Request().Context(), req)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, order)
}
