package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalogapp "github.com/docuchat/backend/internal/application/catalog"
	chatapp "github.com/docuchat/backend/internal/application/chat"
	docapp "github.com/docuchat/backend/internal/application/document"
	evalapp "github.com/docuchat/backend/internal/application/evaluation"
	financeapp "github.com/docuchat/backend/internal/application/finance"
	identityapp "github.com/docuchat/backend/internal/application/identity"
	reportapp "github.com/docuchat/backend/internal/application/report"
	"github.com/docuchat/backend/internal/infrastructure/auth"
	"github.com/docuchat/backend/internal/infrastructure/config"
	"github.com/docuchat/backend/internal/infrastructure/logger"
	"github.com/docuchat/backend/internal/infrastructure/persistence"
	"github.com/docuchat/backend/internal/infrastructure/storage"
	"github.com/docuchat/backend/internal/interfaces/http/handler"
	"github.com/docuchat/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	log := logger.New(cfg.Log)
	defer func() {
		_ = log.Sync()
	}()

	log.Info("starting docuchat backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("error closing database", zap.Error(err))
		}
	}()

	if err := db.Migrate(); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}
	log.Info("database ready")

	// Token blacklist backed by Redis; logout still works process-locally
	// if Redis is not reachable at startup.
	var blacklist auth.TokenBlacklist
	redisBlacklist, err := auth.NewRedisTokenBlacklist(auth.RedisTokenBlacklistConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Warn("redis unavailable, falling back to in-memory token blacklist", zap.Error(err))
		blacklist = auth.NewInMemoryTokenBlacklist()
	} else {
		blacklist = redisBlacklist
	}

	objectStorage, err := storage.NewS3ObjectStorage(cfg.Storage, log)
	if err != nil {
		log.Fatal("failed to initialize object storage", zap.Error(err))
	}
	{
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := objectStorage.EnsureBucket(ctx); err != nil {
			log.Fatal("failed to ensure storage bucket", zap.Error(err))
		}
		cancel()
	}

	// Repositories
	tenantRepo := persistence.NewGormTenantRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	runRepo := persistence.NewGormTestRunRepository(db.DB)
	questionRepo := persistence.NewGormTestQuestionRepository(db.DB)
	docRepo := persistence.NewGormDocumentRepository(db.DB)
	processingLogRepo := persistence.NewGormProcessingLogRepository(db.DB)
	invoiceRepo := persistence.NewGormInvoiceRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	chatLogRepo := persistence.NewGormChatLogRepository(db.DB)

	// Application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, customerRepo, tenantRepo, jwtService, blacklist, log)
	directoryService := identityapp.NewDirectoryService(customerRepo, tenantRepo, log)
	reportGen := reportapp.NewGenerator()
	runService := evalapp.NewRunService(runRepo, questionRepo, tenantRepo, reportGen, log)
	statusService := docapp.NewStatusService(docRepo, processingLogRepo, objectStorage, log)
	invoiceService := financeapp.NewInvoiceService(invoiceRepo, objectStorage, log)
	productService := catalogapp.NewProductService(productRepo, log)
	chatService := chatapp.NewChatService(chatLogRepo, docRepo, runRepo, log)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := router.New(router.Config{
		Logger:         log,
		HTTP:           cfg.HTTP,
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		System:         handler.NewSystemHandler(db),
		Auth:           handler.NewAuthHandler(authService, directoryService),
		TestRun:        handler.NewTestRunHandler(runService),
		Document:       handler.NewDocumentHandler(statusService),
		Invoice:        handler.NewInvoiceHandler(invoiceService),
		Product:        handler.NewProductHandler(productService),
		Chat:           handler.NewChatHandler(chatService),
	})

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}

	log.Info("server exited gracefully")
}
