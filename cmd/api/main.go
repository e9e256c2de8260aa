package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vereinsbudget/internal/config"
	"vereinsbudget/internal/database"
	"vereinsbudget/internal/handlers"
	"vereinsbudget/internal/middleware"
	"vereinsbudget/internal/repositories"
	"vereinsbudget/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := config.Load()

	logLevel := slog.LevelInfo
	if cfg.Server.Environment == "development" {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	db, err := database.Initialize(cfg)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}

	// Repositories
	orgRepo := repositories.NewOrganizationRepository(db)
	userRepo := repositories.NewUserRepository(db)
	projectRepo := repositories.NewProjectRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	donorRepo := repositories.NewDonorRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)
	reimbursementRepo := repositories.NewReimbursementRepository(db)
	allowanceRepo := repositories.NewAllowanceRepository(db)

	// Services
	metrics := services.NewPrometheusMetrics()
	passwordService := services.NewPasswordService(cfg.Budget.BCryptCost)
	tokenService := services.NewTokenService(&cfg.JWT)
	authService := services.NewAuthService(userRepo, orgRepo, passwordService, tokenService, logger)
	importService := services.NewImportService(transactionRepo, orgRepo, cfg.Import.MaxRowsPerBatch, metrics, logger)
	transactionService := services.NewTransactionService(transactionRepo, categoryRepo, projectRepo, donorRepo, metrics, logger)
	cashflowService := services.NewCashflowService(transactionRepo, metrics, logger)
	projectService := services.NewProjectService(projectRepo, transactionRepo, logger)
	categoryService := services.NewCategoryService(categoryRepo, logger)
	donorService := services.NewDonorService(donorRepo, logger)
	reimbursementService := services.NewReimbursementService(reimbursementRepo, transactionRepo, userRepo, metrics, logger)
	allowanceService := services.NewAllowanceService(allowanceRepo, userRepo, cfg.Budget.AllowanceAnnualCap, metrics, logger)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	statementHandler := handlers.NewStatementHandler(importService, cfg.Import.MaxUploadBytes)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	cashflowHandler := handlers.NewCashflowHandler(cashflowService)
	projectHandler := handlers.NewProjectHandler(projectService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	donorHandler := handlers.NewDonorHandler(donorService)
	reimbursementHandler := handlers.NewReimbursementHandler(reimbursementService)
	allowanceHandler := handlers.NewAllowanceHandler(allowanceService)
	healthHandler := handlers.NewHealthCheckHandler(db)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiterWithConfig(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/members", authHandler.AddMember, middleware.RequireAuth(tokenService))

	protected := api.Group("", middleware.RequireAuth(tokenService))

	statements := protected.Group("/statements")
	statements.POST("/import", statementHandler.Import)
	statements.POST("/preview", statementHandler.Preview)

	transactions := protected.Group("/transactions")
	transactions.POST("", transactionHandler.Create)
	transactions.GET("", transactionHandler.List)
	transactions.GET("/summary/categories", transactionHandler.CategorySummary)
	transactions.GET("/:id", transactionHandler.Get)
	transactions.PUT("/:id", transactionHandler.Update)
	transactions.DELETE("/:id", transactionHandler.Delete)
	transactions.PUT("/:id/labels", transactionHandler.Categorize)
	transactions.PUT("/:id/process", transactionHandler.MarkProcessed)

	protected.GET("/cashflow", cashflowHandler.GetCashflow)

	projects := protected.Group("/projects")
	projects.POST("", projectHandler.Create)
	projects.GET("", projectHandler.List)
	projects.GET("/:id", projectHandler.Get)
	projects.GET("/:id/totals", projectHandler.GetWithTotals)
	projects.PUT("/:id", projectHandler.Update)
	projects.POST("/:id/archive", projectHandler.Archive)
	projects.DELETE("/:id", projectHandler.Delete)

	categories := protected.Group("/categories")
	categories.POST("", categoryHandler.Create)
	categories.GET("", categoryHandler.List)
	categories.GET("/:id", categoryHandler.Get)
	categories.PUT("/:id", categoryHandler.Update)
	categories.DELETE("/:id", categoryHandler.Delete)

	donors := protected.Group("/donors")
	donors.POST("", donorHandler.Create)
	donors.GET("", donorHandler.List)
	donors.GET("/:id", donorHandler.Get)
	donors.PUT("/:id", donorHandler.Update)
	donors.DELETE("/:id", donorHandler.Delete)

	reimbursements := protected.Group("/reimbursements")
	reimbursements.POST("", reimbursementHandler.Submit)
	reimbursements.GET("", reimbursementHandler.List)
	reimbursements.GET("/:id", reimbursementHandler.Get)
	reimbursements.POST("/:id/approve", reimbursementHandler.Approve)
	reimbursements.POST("/:id/reject", reimbursementHandler.Reject)
	reimbursements.POST("/:id/pay", reimbursementHandler.MarkPaid)

	allowances := protected.Group("/allowances")
	allowances.POST("", allowanceHandler.Grant)
	allowances.GET("", allowanceHandler.List)
	allowances.GET("/remaining/:userId", allowanceHandler.Remaining)
	allowances.DELETE("/:id", allowanceHandler.Revoke)

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	go func() {
		address := cfg.Server.Host + ":" + cfg.Server.Port
		logger.Info("starting server", "address", address, "environment", cfg.Server.Environment)
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			logger.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
