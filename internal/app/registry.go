package app

import (
	"context"
	"database/sql"

	"go-apg/internal/client"
	"go-apg/internal/config"
	"go-apg/internal/margin"
	"go-apg/internal/markettrends"
	"go-apg/internal/messaging/kafka"
	"go-apg/internal/middleware"
	"go-apg/internal/rbac"
	"go-apg/internal/rbac/infra"
	"go-apg/internal/salarysettings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	clientRepo := client.NewRepository(gormDB)
	salarySettingsRepo := salarysettings.NewRepository(gormDB)
	historyRepo := margin.NewHistoryRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService, err := rbac.NewService(rbac.NewStaticRepository(), enforcer, logger)
	if err != nil {
		return err
	}

	// --- Services ---
	clientService := client.NewService(db, clientRepo, logger)
	salarySettingsService := salarysettings.NewService(db, salarySettingsRepo, rdb, cfg.Cache.SalarySettingsTTL, logger)
	marginService := margin.NewServiceWithOutbox(clientService, salarySettingsService, historyRepo, outboxRepo, logger)

	var llm markettrends.LLMClient
	if c, err := markettrends.NewLLMClient(cfg.LLM, nil, ""); err != nil {
		logger.Warn("market trends disabled", zap.Error(err))
	} else {
		llm = c
	}
	marketTrendsService := markettrends.NewService(llm, rdb, cfg.Cache.MarketTrendsTTL, logger)

	// --- Handlers ---
	clientHandler := client.NewHandler(clientService, logger)
	salarySettingsHandler := salarysettings.NewHandler(salarySettingsService, logger)
	marginHandler := margin.NewHandler(marginService, logger)
	marketTrendsHandler := markettrends.NewHandler(marketTrendsService, logger)
	rbacHandler := rbac.NewHandler(rbacService, logger)

	auth := middleware.AuthMiddleware(cfg.Auth.Secret)

	// --- Routes Registration ---
	router.GET("/healthz", healthHandler(map[string]func(ctx context.Context) error{
		"postgres": db.PingContext,
		"redis":    func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
	}))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/v1")
	{
		client.RegisterRoutes(api, clientHandler, auth, rbacService)
		salarysettings.RegisterRoutes(api, salarySettingsHandler, auth, rbacService)
		margin.RegisterRoutes(api, marginHandler, auth, rbacService, rdb)
		markettrends.RegisterRoutes(api, marketTrendsHandler, auth, rbacService)
		rbac.RegisterRoutes(api, rbacHandler, auth, rbacService)
	}

	return nil
}
