package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"meal-planner/internal/infrastructure/config"
	"meal-planner/internal/models"
	"meal-planner/internal/pkg/common"

	"github.com/go-redis/redis/v8"
)

// 目錄快取鍵；目錄為唯讀資料，整份清單以單一鍵快取
const recipeCacheKey = "catalog:recipes"

// Cache 食譜目錄快取（Redis）
type Cache struct {
	client *redis.Client
	config *config.CacheConfig
}

// NewCache 創建目錄快取；停用時回傳不含連線的實例
func NewCache(cfg *config.CacheConfig) (*Cache, error) {
	if !cfg.Enabled {
		return &Cache{config: cfg}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// 測試連接
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Cache{
		client: client,
		config: cfg,
	}, nil
}

// GetRecipes 獲取快取的食譜清單
func (c *Cache) GetRecipes(ctx context.Context) ([]models.Recipe, error) {
	if !c.config.Enabled || c.client == nil {
		return nil, common.ErrCacheDisabled
	}

	data, err := c.client.Get(ctx, recipeCacheKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("cache miss")
		}
		return nil, fmt.Errorf("failed to get cache: %w", err)
	}

	var recipes []models.Recipe
	if err := json.Unmarshal(data, &recipes); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cache: %w", err)
	}
	return recipes, nil
}

// SetRecipes 快取食譜清單
func (c *Cache) SetRecipes(ctx context.Context, recipes []models.Recipe) error {
	if !c.config.Enabled || c.client == nil {
		return nil
	}

	data, err := json.Marshal(recipes)
	if err != nil {
		return fmt.Errorf("failed to marshal recipes: %w", err)
	}

	if err := c.client.Set(ctx, recipeCacheKey, data, c.config.TTL).Err(); err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}
	return nil
}

// Invalidate 清除目錄快取（種子匯入後使用）
func (c *Cache) Invalidate(ctx context.Context) error {
	if !c.config.Enabled || c.client == nil {
		return nil
	}
	return c.client.Del(ctx, recipeCacheKey).Err()
}

// Close 關閉快取連線
func (c *Cache) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}
