package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fuelpass.backend/internal/domain/entities"
	"fuelpass.backend/internal/interfaces/http/handlers"
	"fuelpass.backend/internal/interfaces/http/middleware"
	"fuelpass.backend/internal/interfaces/ws"
)

type routeDeps struct {
	authHandler          *handlers.AuthHandler
	walletHandler        *handlers.WalletHandler
	vehicleHandler       *handlers.VehicleHandler
	stationHandler       *handlers.StationHandler
	paymentMethodHandler *handlers.PaymentMethodHandler
	transactionHandler   *handlers.TransactionHandler
	terminalHandler      *handlers.TerminalHandler
	wsHandler            *ws.Handler
	authMiddleware       gin.HandlerFunc
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, Idempotency-Key, X-Request-ID")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "fuelpass-backend",
			"version": "0.1.0",
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	stationRole := middleware.RequireRole(
		string(entities.UserRoleStation),
		string(entities.UserRoleAdmin),
	)

	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.GET("/me", d.authMiddleware, d.authHandler.Me)
		}

		// Station routes (public read, station/admin write)
		stations := v1.Group("/stations")
		{
			stations.GET("", d.stationHandler.List)
			stations.GET("/nearby", d.stationHandler.Nearby)
			stations.GET("/:id", d.stationHandler.Get)
			stations.GET("/:id/prices", d.stationHandler.GetPrices)

			stations.POST("", d.authMiddleware, stationRole, d.stationHandler.Create)
			stations.POST("/:id/prices", d.authMiddleware, stationRole, d.stationHandler.SetPrice)
		}

		// Wallet routes (protected)
		wallet := v1.Group("/wallet")
		wallet.Use(d.authMiddleware)
		{
			wallet.GET("", d.walletHandler.GetWallet)
			wallet.POST("/topup", middleware.IdempotencyMiddleware(), d.walletHandler.TopUp)
			wallet.PUT("/settings", d.walletHandler.UpdateSettings)
		}

		// Vehicle routes (protected)
		vehicles := v1.Group("/vehicles")
		vehicles.Use(d.authMiddleware)
		{
			vehicles.POST("", d.vehicleHandler.Create)
			vehicles.GET("", d.vehicleHandler.List)
			vehicles.GET("/:id", d.vehicleHandler.Get)
			vehicles.PUT("/:id", d.vehicleHandler.Update)
			vehicles.DELETE("/:id", d.vehicleHandler.Delete)
			vehicles.POST("/:id/rfid-tag", d.vehicleHandler.AssignRFIDTag)
		}

		// Payment method routes (protected)
		paymentMethods := v1.Group("/payment-methods")
		paymentMethods.Use(d.authMiddleware)
		{
			paymentMethods.POST("", d.paymentMethodHandler.Create)
			paymentMethods.GET("", d.paymentMethodHandler.List)
			paymentMethods.DELETE("/:id", d.paymentMethodHandler.Delete)
		}

		// Transaction routes (protected)
		transactions := v1.Group("/transactions")
		transactions.Use(d.authMiddleware)
		{
			transactions.GET("", d.transactionHandler.List)
			transactions.POST("", d.transactionHandler.Create)
		}

		// Station terminal routes (station/admin only)
		station := v1.Group("/station")
		station.Use(d.authMiddleware, stationRole)
		{
			station.POST("/rfid-scan", d.terminalHandler.ScanTag)
			station.POST("/complete-transaction", middleware.IdempotencyMiddleware(), d.terminalHandler.CompleteTransaction)
			station.GET("/:id/transactions", d.terminalHandler.StationTransactions)
		}

		// Websocket notifications (protected)
		v1.GET("/ws", d.authMiddleware, d.wsHandler.Serve)
	}
}
