package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/katysh-aa/family-budget/internal/adapters/database/sqlite"
	memrepo "github.com/katysh-aa/family-budget/internal/adapters/memory"
	"github.com/katysh-aa/family-budget/internal/adapters/ratesource"
	"github.com/katysh-aa/family-budget/internal/core/domain"
	portsrepo "github.com/katysh-aa/family-budget/internal/core/ports/repositories"
	"github.com/katysh-aa/family-budget/internal/core/services"
	"github.com/katysh-aa/family-budget/internal/handlers"
	"github.com/katysh-aa/family-budget/internal/middleware"
	"github.com/katysh-aa/family-budget/internal/platform/config"
	"github.com/katysh-aa/family-budget/internal/utils"
	"github.com/katysh-aa/family-budget/internal/utils/budgeting"
	"github.com/katysh-aa/family-budget/pkg/database"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Run migrations before opening the main connection
	logger.Info("Running database migrations...")
	if err := sqlite.RunMigrations(cfg.DBPath); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Database migrations applied.")

	db, err := database.NewSQLiteDB(cfg.DBPath)
	if err != nil {
		logger.Error("Failed to open fallback database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()
	logger.Info("Fallback database opened.", slog.String("path", cfg.DBPath))

	repos := portsrepo.RepositoryProvider{
		TransactionRepo: memrepo.NewTransactionRepository(),
		PlanRepo:        memrepo.NewPlanRepository(),
		GoalRepo:        sqlite.NewGoalRepository(db),
		RateRepo:        sqlite.NewRateRepository(db),
		RateSource: ratesource.NewCBRClient(ratesource.ClientConfig{
			BaseURL: cfg.RateSourceURL,
			Timeout: cfg.RateFetchTimeout,
		}),
	}

	// Collapse bursts of snapshot mutations into one recomputation trigger
	refresher := services.NewRefreshNotifier(cfg.RefreshDebounce)
	defer refresher.Stop()

	container := services.NewServiceContainer(cfg, repos, refresher)

	// Pre-warm the current-month figures after each settled burst of changes.
	refresher.Subscribe(func() {
		ctx := context.Background()
		txns, err := container.Transaction.ListTransactions(ctx)
		if err != nil {
			logger.Warn("Refresh recomputation failed", slog.String("error", err.Error()))
			return
		}
		month := time.Now().Format(domain.MonthLayout)
		summary, err := container.Analytics.MonthlySummary(ctx, month)
		if err != nil {
			logger.Warn("Monthly summary recomputation failed", slog.String("error", err.Error()))
			return
		}
		logger.Info("Snapshot changed",
			slog.Int("transactions", len(txns)),
			slog.String("month", month),
			slog.String("month_income", utils.FormatRubles(summary.Income)),
			slog.String("month_expense", utils.FormatRubles(summary.Expense)),
			slog.String("total_savings", utils.FormatRubles(budgeting.TotalSavings(txns))),
		)
	})

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(cfg.CORSAllowOrigins) == 1 && cfg.CORSAllowOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSAllowOrigins
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(memory.NewStore(), rate)))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterCustomValidations()
	handlers.RegisterRoutes(r, cfg, container)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
