package main

import (
	"context"
	"log"
	"net/http"
	"os"

	_ "papi/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"papi/internal/auth"
	"papi/internal/config"
	"papi/internal/datastore"
	"papi/internal/handler"
	"papi/internal/repository"
	"papi/internal/router"
	"papi/internal/seed"
	"papi/internal/service"
	"papi/internal/store"
)

// @title PAPI Marketplace API
// @version 1.0
// @description Demo produce marketplace connecting buyers and sellers: browsing, cart, checkout and role-scoped dashboards.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	kv, err := openStore(cfg)
	if err != nil {
		log.Fatalf("store init: %v", err)
	}

	ds := datastore.New(kv)
	ctx := context.Background()

	// Write seed data through for collections that have never been stored.
	// RESET_STORE=true overwrites existing collections too.
	force := os.Getenv("RESET_STORE") == "true"
	if force {
		log.Println("RESET_STORE=true detected, overwriting collections with seed data")
	}
	if seeded := ds.Seed(ctx, seed.Collections(), force); seeded > 0 {
		log.Printf("seeded %d collections", seeded)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(ds)
	productRepo := repository.NewProductRepository(ds)
	orderRepo := repository.NewOrderRepository(ds)
	categoryRepo := repository.NewCategoryRepository(ds)
	cartRepo := repository.NewCartRepository(kv)
	guestOrderRepo := repository.NewGuestOrderRepository(kv)

	// Initialize auth components
	tokenService := auth.NewTokenService(cfg.JWTSecret)
	sessionStore := auth.NewSessionStore(kv)

	// Initialize services
	authService := service.NewAuthService(userRepo, tokenService, sessionStore)
	productService := service.NewProductService(productRepo, categoryRepo)
	orderService := service.NewOrderService(orderRepo)
	cartService := service.NewCartService(cartRepo, productRepo, orderRepo)
	checkoutService := service.NewCheckoutService(guestOrderRepo)
	userService := service.NewUserService(userRepo, productRepo, orderRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService)
	cartHandler := handler.NewCartHandler(cartService, checkoutService)
	orderHandler := handler.NewOrderHandler(orderService)
	adminHandler := handler.NewAdminHandler(userService, productService)
	seedHandler := handler.NewSeedHandler(ds)

	// Register routes
	router.Register(
		e,
		cfg,
		authService,
		authHandler,
		productHandler,
		cartHandler,
		orderHandler,
		adminHandler,
		seedHandler,
	)

	if cfg.SwaggerHost != "" {
		log.Printf("Swagger documentation available at: %s/swagger/index.html", cfg.SwaggerHost)
	} else {
		log.Printf("Swagger documentation available at: http://localhost:%s/swagger/index.html", cfg.ServerPort)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}

// openStore picks the blob store backend from configuration. The file backend
// is the default and needs nothing running beside the process.
func openStore(cfg *config.Config) (store.Store, error) {
	switch cfg.StoreDriver {
	case config.DriverRedis:
		return store.NewRedis(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB), nil
	case config.DriverMySQL:
		return store.NewMySQL(cfg.MySQLDSN)
	default:
		return store.NewFile(cfg.DataDir)
	}
}
