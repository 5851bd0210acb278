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

	"github.com/InusahIbraheem/solid-life-web/internal/config"
	"github.com/InusahIbraheem/solid-life-web/internal/infrastructure/jobs"
	"github.com/InusahIbraheem/solid-life-web/internal/infrastructure/repositories"
	"github.com/InusahIbraheem/solid-life-web/internal/interfaces/http/handlers"
	"github.com/InusahIbraheem/solid-life-web/internal/interfaces/http/middleware"
	"github.com/InusahIbraheem/solid-life-web/internal/usecases"
	"github.com/InusahIbraheem/solid-life-web/pkg/jwt"
	"github.com/InusahIbraheem/solid-life-web/pkg/logger"
	"github.com/InusahIbraheem/solid-life-web/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
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
		logger.Warn(context.Background(), "Database not available, endpoints will return errors", zap.Error(err))
	} else {
		logger.Info(context.Background(), "Connected to PostgreSQL")
	}

	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	productRepo := repositories.NewProductRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	walletRepo := repositories.NewWalletRepository(db)
	referralRepo := repositories.NewReferralRepository(db)
	registrationRepo := repositories.NewRegistrationRepository(db)
	planRepo := repositories.NewPlanRepository(db)
	dscRepo := repositories.NewDSCRepository(db)
	ticketRepo := repositories.NewTicketRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Usecases
	compensationUsecase := usecases.NewCompensationUsecase(
		orderRepo, userRepo, planRepo, walletRepo, referralRepo, uow,
		cfg.Compensation.MaxUplineDepth, cfg.Compensation.RankRetries,
	)
	authUsecase := usecases.NewAuthUsecase(
		userRepo, referralRepo, registrationRepo, uow, jwtService,
		cfg.Compensation.RegistrationFee, 0,
	)
	orderUsecase := usecases.NewOrderUsecase(orderRepo, productRepo, userRepo, uow, compensationUsecase)
	productUsecase := usecases.NewProductUsecase(productRepo)
	walletUsecase := usecases.NewWalletUsecase(walletRepo, userRepo, uow)
	referralUsecase := usecases.NewReferralUsecase(referralRepo, userRepo, 0)
	rankUsecase := usecases.NewRankUsecase(userRepo, planRepo)
	supportUsecase := usecases.NewSupportUsecase(ticketRepo)
	adminUsecase := usecases.NewAdminUsecase(userRepo, orderRepo, registrationRepo, planRepo, dscRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	productHandler := handlers.NewProductHandler(productUsecase)
	orderHandler := handlers.NewOrderHandler(orderUsecase)
	walletHandler := handlers.NewWalletHandler(walletUsecase)
	referralHandler := handlers.NewReferralHandler(referralUsecase, rankUsecase)
	supportHandler := handlers.NewSupportHandler(supportUsecase)
	adminHandler := handlers.NewAdminHandler(adminUsecase)

	authMiddleware := middleware.AuthMiddleware(jwtService)

	// Background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	expiryJob := jobs.NewOrderExpiryJob(orderRepo, cfg.Compensation.OrderExpiry, 0)
	go expiryJob.Start(ctx)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	registerHealthRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:     authHandler,
		productHandler:  productHandler,
		orderHandler:    orderHandler,
		walletHandler:   walletHandler,
		referralHandler: referralHandler,
		supportHandler:  supportHandler,
		adminHandler:    adminHandler,
		authMiddleware:  authMiddleware,
	})

	logger.Info(context.Background(), "Server starting", zap.String("port", cfg.Server.Port))

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		logger.Info(context.Background(), "Shutting down server")
		expiryJob.Stop()
		cancel()
	}()

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
