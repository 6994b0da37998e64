package router

import (
	"github.com/docuchat/backend/internal/infrastructure/auth"
	"github.com/docuchat/backend/internal/infrastructure/config"
	"github.com/docuchat/backend/internal/infrastructure/logger"
	"github.com/docuchat/backend/internal/interfaces/http/handler"
	"github.com/docuchat/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Config wires middleware dependencies and handlers into the engine
type Config struct {
	Logger         *zap.Logger
	HTTP           config.HTTPConfig
	JWTService     *auth.JWTService
	TokenBlacklist auth.TokenBlacklist

	System   *handler.SystemHandler
	Auth     *handler.AuthHandler
	TestRun  *handler.TestRunHandler
	Document *handler.DocumentHandler
	Invoice  *handler.InvoiceHandler
	Product  *handler.ProductHandler
	Chat     *handler.ChatHandler
}

// New builds the gin engine with all routes and middleware registered
func New(cfg Config) *gin.Engine {
	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		_ = engine.SetTrustedProxies(cfg.HTTP.TrustedProxies)
	}

	engine.Use(logger.Recovery(cfg.Logger))
	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(cfg.Logger))

	corsCfg := middleware.DefaultCORSConfig()
	if len(cfg.HTTP.CORSAllowOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	}
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsCfg.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsCfg.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(corsCfg))

	if cfg.HTTP.MaxBodySize > 0 {
		engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))
	}

	engine.GET("/health", cfg.System.Health)

	v1 := engine.Group("/api/v1")

	// public routes
	v1.POST("/auth/login", cfg.Auth.Login)
	v1.POST("/auth/customer/login", cfg.Auth.CustomerLogin)

	// authenticated routes
	authed := v1.Group("")
	authed.Use(middleware.JWTAuth(middleware.JWTMiddlewareConfig{
		JWTService:     cfg.JWTService,
		TokenBlacklist: cfg.TokenBlacklist,
		Logger:         cfg.Logger,
	}))

	authed.POST("/auth/logout", cfg.Auth.Logout)
	authed.GET("/directory/resolve", cfg.Auth.ResolveTenant)

	authed.GET("/test-runs", cfg.TestRun.List)
	authed.GET("/test-runs/:id", cfg.TestRun.Get)
	authed.GET("/test-runs/:id/progress", cfg.TestRun.GetProgress)
	authed.GET("/test-runs/:id/questions", cfg.TestRun.GetQuestions)
	authed.GET("/test-runs/:id/report", cfg.TestRun.ExportReport)
	authed.DELETE("/test-runs/:id", cfg.TestRun.Delete)

	authed.GET("/documents/status", cfg.Document.GetStatus)
	authed.GET("/documents", cfg.Document.List)
	authed.DELETE("/documents/:id", cfg.Document.Delete)

	authed.POST("/invoices", cfg.Invoice.Upload)
	authed.GET("/invoices", cfg.Invoice.List)
	authed.GET("/invoices/:id", cfg.Invoice.Get)
	authed.GET("/invoices/:id/download", cfg.Invoice.Download)
	authed.POST("/invoices/:id/pay",
		middleware.RequireSubjectType(auth.SubjectCustomer), cfg.Invoice.MarkPaid)
	authed.POST("/invoices/:id/verify",
		middleware.RequireSubjectType(auth.SubjectUser), cfg.Invoice.Verify)
	authed.DELETE("/invoices/:id", cfg.Invoice.Delete)

	authed.GET("/products", cfg.Product.List)
	authed.POST("/products", cfg.Product.Create)
	authed.GET("/products/:id", cfg.Product.Get)
	authed.PUT("/products/:id", cfg.Product.Update)
	authed.DELETE("/products/:id", cfg.Product.Delete)

	authed.GET("/chat-logs", cfg.Chat.ListChatLogs)
	authed.GET("/usage/summary", cfg.Chat.GetUsageSummary)

	return engine
}
