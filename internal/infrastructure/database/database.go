package database

import (
	"fmt"

	"meal-planner/internal/infrastructure/config"
	"meal-planner/internal/models"
	"meal-planner/internal/pkg/common"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Connect 依設定建立資料庫連線
func Connect(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	}

	var (
		db  *gorm.DB
		err error
	)
	switch cfg.Driver {
	case "postgres":
		db, err = gorm.Open(postgres.Open(cfg.PostgresDSN()), gormCfg)
	case "sqlite":
		db, err = gorm.Open(sqlite.Open(cfg.Path), gormCfg)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	common.LogInfo("資料庫連線成功",
		zap.String("driver", cfg.Driver),
	)

	return db, nil
}

// Migrate 建立或更新資料表結構
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Recipe{},
		&models.MealPlanEntry{},
		&models.ShoppingList{},
	); err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}

	common.LogInfo("資料表遷移完成")
	return nil
}

// Ping 檢查資料庫連線是否存活，供就緒檢查使用
func Ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
