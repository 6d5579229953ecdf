package repository

import (
	"context"

	"meal-planner/internal/models"

	"gorm.io/gorm"
)

// RecipeRepository 食譜目錄資料存取（目錄為唯讀資料，僅種子匯入會寫入）
type RecipeRepository interface {
	List(ctx context.Context, tx *gorm.DB) ([]models.Recipe, error)
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
	BulkInsert(ctx context.Context, tx *gorm.DB, recipes []models.Recipe) error
}

type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository 創建食譜資料存取實例
func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *recipeRepository) List(ctx context.Context, tx *gorm.DB) ([]models.Recipe, error) {
	var recipes []models.Recipe
	if err := r.conn(tx).WithContext(ctx).
		Order("created_at").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	var count int64
	if err := r.conn(tx).WithContext(ctx).
		Model(&models.Recipe{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *recipeRepository) BulkInsert(ctx context.Context, tx *gorm.DB, recipes []models.Recipe) error {
	if len(recipes) == 0 {
		return nil
	}
	return r.conn(tx).WithContext(ctx).Create(&recipes).Error
}
