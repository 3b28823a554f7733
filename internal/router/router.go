package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"papi/internal/config"
	"papi/internal/handler"
	"papi/internal/model"
	"papi/internal/service"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authService service.AuthService,
	authHandler *handler.AuthHandler,
	productHandler *handler.ProductHandler,
	cartHandler *handler.CartHandler,
	orderHandler *handler.OrderHandler,
	adminHandler *handler.AdminHandler,
	seedHandler *handler.SeedHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/reset-password", authHandler.ResetPassword)
	api.GET("/categories", productHandler.Categories)
	api.GET("/products", productHandler.List)
	api.GET("/products/:id", productHandler.Get)
	api.POST("/checkout/guest", cartHandler.GuestCheckout)

	// Secured routes: the JWT middleware rejects unsigned or expired tokens,
	// the session middleware rejects tokens whose persisted session is gone.
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}), sessionMiddleware(authService))

	secured.POST("/auth/logout", authHandler.Logout)
	secured.GET("/auth/me", authHandler.Me)
	secured.PUT("/auth/profile", authHandler.UpdateProfile)

	// Buyer routes
	buyer := secured.Group("", requireRole(model.RoleBuyer))
	buyer.GET("/cart", cartHandler.Get)
	buyer.DELETE("/cart", cartHandler.Clear)
	buyer.POST("/cart/items", cartHandler.AddItem)
	buyer.PATCH("/cart/items/:productId", cartHandler.UpdateItem)
	buyer.DELETE("/cart/items/:productId", cartHandler.RemoveItem)
	buyer.POST("/cart/checkout", cartHandler.Checkout)
	buyer.GET("/orders", orderHandler.ListMine)

	// Seller routes
	seller := secured.Group("/seller", requireRole(model.RoleSeller))
	seller.GET("/products", productHandler.ListMine)
	seller.POST("/products", productHandler.Create)
	seller.PUT("/products/:id", productHandler.Update)
	seller.DELETE("/products/:id", productHandler.Delete)
	seller.GET("/orders", orderHandler.ListForSeller)
	seller.PATCH("/orders/:id/status", orderHandler.UpdateStatus)

	// Admin routes
	admin := secured.Group("/admin", requireRole(model.RoleAdmin))
	admin.GET("/users", adminHandler.ListUsers)
	admin.PATCH("/users/:id/status", adminHandler.ToggleUserStatus)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)
	admin.GET("/products", adminHandler.ListProducts)
	admin.DELETE("/products/:id", adminHandler.DeleteProduct)
	admin.GET("/stats", adminHandler.Stats)
	admin.POST("/seed", seedHandler.Reset)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
