package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/soleshop/soleshop/internal/server/http/handlers"
	"github.com/soleshop/soleshop/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.ShopFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	userHandler := handlers.NewUserHandler(facade, facade)
	productHandler := handlers.NewProductHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	walletHandler := handlers.NewWalletHandler(facade)
	adminHandler := handlers.NewAdminHandler(facade, facade)

	api := engine.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	api.GET("/products", productHandler.List)
	api.GET("/products/:id", productHandler.Get)

	authed := api.Group("")
	authed.Use(middleware.AuthRequired(facade))

	user := authed.Group("/user")
	user.GET("/profile", userHandler.Profile)
	user.PUT("/profile", userHandler.UpdateProfile)
	user.GET("/stats", userHandler.Stats)

	wallet := authed.Group("/wallet")
	wallet.POST("/deposit", walletHandler.Deposit)
	wallet.GET("/transactions", walletHandler.Transactions)

	orders := authed.Group("/orders")
	orders.POST("", orderHandler.Place)
	orders.GET("", orderHandler.List)
	orders.GET("/:id", orderHandler.Get)

	admin := authed.Group("/admin")
	admin.Use(middleware.AdminRequired())
	admin.GET("/users", adminHandler.Users)
	admin.GET("/users/:id", adminHandler.User)
	admin.PUT("/users/:id/balance", adminHandler.SetBalance)
	admin.GET("/users/:id/ledger", adminHandler.Ledger)
	admin.GET("/orders", adminHandler.Orders)
	admin.PUT("/orders/:id", adminHandler.SetStatus)
	admin.POST("/products", productHandler.Create)
	admin.GET("/stats", adminHandler.Stats)

	return engine
}
