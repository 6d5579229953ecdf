package catalog

import (
	"context"
	"fmt"
	"net/http"

	"meal-planner/internal/infrastructure/config"
	"meal-planner/internal/models"
	"meal-planner/internal/pkg/common"
	"meal-planner/internal/repository"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// seedRecipe 種子檔案中的一筆食譜
type seedRecipe struct {
	Name            string              `json:"name"`
	Ingredients     []models.Ingredient `json:"ingredients"`
	Instructions    string              `json:"instructions"`
	PreparationTime int                 `json:"preparation_time"`
	Servings        int                 `json:"servings"`
	Tags            []string            `json:"tags"`
}

// Seeder 目錄種子匯入：目錄為外部提供的唯讀資料，
// 啟動時發現空目錄就從設定的 URL 抓取種子檔匯入
type Seeder struct {
	client     *resty.Client
	recipeRepo repository.RecipeRepository
	config     *config.CatalogConfig
}

// NewSeeder 創建種子匯入器
func NewSeeder(cfg *config.CatalogConfig, recipeRepo repository.RecipeRepository) *Seeder {
	client := resty.New().
		SetTimeout(cfg.SeedTimeout).
		SetHeader("Accept", "application/json")

	return &Seeder{
		client:     client,
		recipeRepo: recipeRepo,
		config:     cfg,
	}
}

// SeedIfEmpty 目錄為空且設定了種子 URL 時匯入種子資料
func (s *Seeder) SeedIfEmpty(ctx context.Context) error {
	if s.config.SeedURL == "" {
		return nil
	}

	count, err := s.recipeRepo.Count(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to count recipes: %w", err)
	}
	if count > 0 {
		common.LogDebug("目錄已有資料，略過種子匯入",
			zap.Int64("count", count),
		)
		return nil
	}

	common.LogInfo("目錄為空，開始匯入種子資料",
		zap.String("seed_url", s.config.SeedURL),
	)

	recipes, err := s.fetchSeed(ctx)
	if err != nil {
		return err
	}

	if err := s.recipeRepo.BulkInsert(ctx, nil, recipes); err != nil {
		return fmt.Errorf("failed to insert seed recipes: %w", err)
	}

	common.LogInfo("種子匯入完成",
		zap.Int("count", len(recipes)),
	)
	return nil
}

// fetchSeed 從種子 URL 抓取並解析食譜清單
func (s *Seeder) fetchSeed(ctx context.Context) ([]models.Recipe, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		Get(s.config.SeedURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recipe seed: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("recipe seed returned status %d", resp.StatusCode())
	}

	var seeds []seedRecipe
	if err := common.ParseJSONBytes(resp.Body(), &seeds); err != nil {
		return nil, fmt.Errorf("failed to parse recipe seed: %w", err)
	}

	recipes := make([]models.Recipe, 0, len(seeds))
	for _, seed := range seeds {
		if seed.Name == "" {
			continue
		}
		recipes = append(recipes, models.Recipe{
			ID:              uuid.New(),
			Name:            seed.Name,
			Ingredients:     datatypes.JSONSlice[models.Ingredient](seed.Ingredients),
			Instructions:    seed.Instructions,
			PreparationTime: seed.PreparationTime,
			Servings:        seed.Servings,
			Tags:            datatypes.JSONSlice[string](seed.Tags),
		})
	}
	return recipes, nil
}
