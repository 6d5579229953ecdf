package catalog

import (
	"context"

	"meal-planner/internal/models"
	"meal-planner/internal/pkg/common"
	"meal-planner/internal/repository"

	"go.uber.org/zap"
)

// Service 食譜目錄服務：資料庫前掛一層可選的 Redis 快取
type Service struct {
	recipeRepo repository.RecipeRepository
	cache      *Cache
}

// NewService 創建目錄服務
func NewService(recipeRepo repository.RecipeRepository, cache *Cache) *Service {
	return &Service{
		recipeRepo: recipeRepo,
		cache:      cache,
	}
}

// List 回傳完整食譜目錄，優先讀取快取
func (s *Service) List(ctx context.Context) ([]models.Recipe, error) {
	if recipes, err := s.cache.GetRecipes(ctx); err == nil {
		common.LogCacheHit("catalog", recipeCacheKey)
		return recipes, nil
	}
	common.LogCacheMiss("catalog", recipeCacheKey)

	recipes, err := s.recipeRepo.List(ctx, nil)
	if err != nil {
		return nil, err
	}

	// 回寫快取失敗不影響請求
	if err := s.cache.SetRecipes(ctx, recipes); err != nil {
		common.LogWarn("目錄快取回寫失敗", zap.Error(err))
	}

	return recipes, nil
}
