package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"meal-planner/internal/api"
	"meal-planner/internal/core/catalog"
	"meal-planner/internal/infrastructure/config"
	"meal-planner/internal/infrastructure/database"
	"meal-planner/internal/pkg/common"
	"meal-planner/internal/repository"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// 載入 .env
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found")
	}

	// 載入設定
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 初始化 logger（需在載入 config 後）
	if err := common.InitLogger(cfg.LogLevel); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer common.Sync()

	// 使用 logger 記錄啟動信息
	common.LogInfo("載入設定",
		zap.String("db_driver", cfg.Database.Driver),
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
	)

	// 連接資料庫並執行遷移
	db, err := database.Connect(&cfg.Database)
	if err != nil {
		common.LogFatal("Failed to connect to database", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		common.LogFatal("Failed to migrate database", zap.Error(err))
	}

	// 初始化目錄快取
	catalogCache, err := catalog.NewCache(&cfg.Cache)
	if err != nil {
		// 只在快取開啟但初始化失敗時才 Fatal
		common.LogFatal("Failed to initialize catalog cache", zap.Error(err))
	}
	defer catalogCache.Close()

	recipeRepo := repository.NewRecipeRepository(db)
	catalogService := catalog.NewService(recipeRepo, catalogCache)

	// 目錄為空時匯入種子資料；失敗不阻擋啟動
	seeder := catalog.NewSeeder(&cfg.Catalog, recipeRepo)
	seedCtx, seedCancel := context.WithTimeout(context.Background(), 60*time.Second)
	if err := seeder.SeedIfEmpty(seedCtx); err != nil {
		common.LogWarn("目錄種子匯入失敗", zap.Error(err))
	}
	seedCancel()

	// 設置路由
	router, err := api.SetupRouter(cfg, db, catalogService)
	if err != nil {
		common.LogError("Failed to setup router", zap.Error(err))
		os.Exit(1)
	}

	// 設置 HTTP 服務器
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// 啟動服務器
	go func() {
		common.LogInfo("啟動應用",
			zap.String("version", cfg.App.Version),
			zap.String("env", cfg.App.Env),
			zap.Bool("debug", cfg.App.Debug),
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			common.LogError("Failed to start server",
				zap.Error(err),
			)
			os.Exit(1)
		}
	}()

	// 等待中斷信號
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	common.LogInfo("Shutting down server...")

	// 設置關閉超時
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		common.LogError("Server forced to shutdown",
			zap.Error(err),
		)
		os.Exit(1)
	}

	common.LogInfo("Server exited")
}
