package api

import (
	"time"

	authHandler "meal-planner/internal/api/handlers/auth"
	"meal-planner/internal/api/handlers/health"
	mealplanHandler "meal-planner/internal/api/handlers/mealplan"
	recipeHandler "meal-planner/internal/api/handlers/recipe"
	userHandler "meal-planner/internal/api/handlers/user"
	"meal-planner/internal/api/middleware"
	authService "meal-planner/internal/core/auth"
	"meal-planner/internal/core/catalog"
	"meal-planner/internal/core/planner"
	"meal-planner/internal/infrastructure/config"
	"meal-planner/internal/pkg/common"
	"meal-planner/internal/repository"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	// 請求體大小限制 (1MB)，本服務沒有上傳需求
	maxBodySize = 1 << 20
)

// SetupRouter 設置路由
func SetupRouter(cfg *config.Config, db *gorm.DB, catalogService *catalog.Service) (*gin.Engine, error) {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	// 設置 gin 模式
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// 創建路由引擎
	router := gin.New()

	// 註冊基礎中間件
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New()) // 自動生成請求 ID

	// CORS 設置
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 請求體大小限制
	router.Use(middleware.BodySizeLimit(maxBodySize))

	// 限流
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}

	// 初始化資料存取層
	userRepo := repository.NewUserRepository(db)
	mealPlanRepo := repository.NewMealPlanRepository(db)
	listRepo := repository.NewShoppingListRepository(db)

	// 初始化服務
	authSvc := authService.NewService(userRepo, &cfg.Auth)
	plannerSvc := planner.NewService(db, catalogService, userRepo, mealPlanRepo, listRepo)

	common.LogInfo("Services initialized successfully",
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
		zap.String("environment", cfg.App.Env),
	)

	// 初始化處理器
	healthH := health.NewHandler(cfg, db)
	authH := authHandler.NewHandler(authSvc)
	recipeH := recipeHandler.NewHandler(catalogService)
	mealplanH := mealplanHandler.NewHandler(plannerSvc)
	userH := userHandler.NewHandler(plannerSvc)

	// 健康檢查路由
	router.GET("/health", healthH.HealthCheck)
	router.GET("/ready", healthH.ReadinessCheck)
	router.GET("/live", healthH.LivenessCheck)

	// API 路由組
	api := router.Group("/api/v1")
	{
		// 認證路由（不需要 token）
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authH.Register)
			authGroup.POST("/login", authH.Login)
		}

		// 需要認證的路由；去重掛在認證之後，指紋才帶得到使用者 ID
		protected := api.Group("")
		protected.Use(middleware.RequireAuth(authSvc))
		protected.Use(middleware.Deduplication(cfg))
		{
			protected.GET("/recipes", recipeH.List)

			protected.POST("/meal-plan/generate", mealplanH.Generate)
			protected.GET("/meal-plan", mealplanH.Get)

			protected.GET("/shopping-list", mealplanH.GetShoppingList)
			protected.PATCH("/shopping-list/:id", mealplanH.UpdateShoppingList)

			protected.PATCH("/preferences", userH.UpdatePreferences)
		}
	}

	common.LogInfo("Router setup completed successfully",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
		zap.Bool("rate_limit_enabled", cfg.RateLimit.Enabled),
		zap.Int64("max_body_size", maxBodySize),
	)

	return router, nil
}
