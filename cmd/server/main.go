package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"fuelpass.backend/internal/config"
	"fuelpass.backend/internal/infrastructure/models"
	"fuelpass.backend/internal/infrastructure/repositories"
	"fuelpass.backend/internal/interfaces/http/handlers"
	"fuelpass.backend/internal/interfaces/http/middleware"
	"fuelpass.backend/internal/interfaces/ws"
	"fuelpass.backend/internal/usecases"
	"fuelpass.backend/pkg/jwt"
	"fuelpass.backend/pkg/logger"
	"fuelpass.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Wallet{},
		&models.Vehicle{},
		&models.RFIDTag{},
		&models.FuelStation{},
		&models.FuelPrice{},
		&models.PaymentMethod{},
		&models.Transaction{},
	); err != nil {
		log.Printf("⚠️ Auto-migration failed: %v", err)
	}

	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	walletRepo := repositories.NewWalletRepository(db)
	vehicleRepo := repositories.NewVehicleRepository(db)
	tagRepo := repositories.NewRFIDTagRepository(db)
	stationRepo := repositories.NewStationRepository(db)
	priceRepo := repositories.NewFuelPriceRepository(db)
	pmRepo := repositories.NewPaymentMethodRepository(db)
	txnRepo := repositories.NewTransactionRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Websocket hub doubles as the settlement notifier
	hub := ws.NewHub()

	// Usecases
	authUsecase := usecases.NewAuthUsecase(uow, userRepo, walletRepo, jwtService)
	walletUsecase := usecases.NewWalletUsecase(walletRepo, pmRepo)
	vehicleUsecase := usecases.NewVehicleUsecase(vehicleRepo, tagRepo)
	stationUsecase := usecases.NewStationUsecase(stationRepo, priceRepo, hub)
	pmUsecase := usecases.NewPaymentMethodUsecase(pmRepo)
	txnUsecase := usecases.NewTransactionUsecase(txnRepo)
	terminalUsecase := usecases.NewTerminalUsecase(tagRepo, vehicleRepo, userRepo, walletRepo)
	settlementUsecase := usecases.NewSettlementUsecase(uow, walletRepo, txnRepo, vehicleRepo, pmRepo, hub)

	// Handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	walletHandler := handlers.NewWalletHandler(walletUsecase, settlementUsecase)
	vehicleHandler := handlers.NewVehicleHandler(vehicleUsecase)
	stationHandler := handlers.NewStationHandler(stationUsecase)
	paymentMethodHandler := handlers.NewPaymentMethodHandler(pmUsecase)
	transactionHandler := handlers.NewTransactionHandler(txnUsecase, settlementUsecase)
	terminalHandler := handlers.NewTerminalHandler(terminalUsecase, settlementUsecase, txnUsecase)
	wsHandler := ws.NewHandler(hub)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:          authHandler,
		walletHandler:        walletHandler,
		vehicleHandler:       vehicleHandler,
		stationHandler:       stationHandler,
		paymentMethodHandler: paymentMethodHandler,
		transactionHandler:   transactionHandler,
		terminalHandler:      terminalHandler,
		wsHandler:            wsHandler,
		authMiddleware:       middleware.AuthMiddleware(jwtService),
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		hub.CloseAll()
	}()

	log.Printf("🚀 FuelPass Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
