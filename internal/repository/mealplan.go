package repository

import (
	"context"
	"time"

	"meal-planner/internal/models"
	"meal-planner/internal/pkg/common"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MealPlanRepository 餐點安排資料存取
type MealPlanRepository interface {
	Insert(ctx context.Context, tx *gorm.DB, entries []models.MealPlanEntry) error
	ListForWeek(ctx context.Context, tx *gorm.DB, userID uuid.UUID, weekStart time.Time) ([]models.MealPlanEntry, error)
	DeleteForWeek(ctx context.Context, tx *gorm.DB, userID uuid.UUID, weekStart time.Time) error
}

type mealPlanRepository struct {
	db *gorm.DB
}

// NewMealPlanRepository 創建餐點安排資料存取實例
func NewMealPlanRepository(db *gorm.DB) MealPlanRepository {
	return &mealPlanRepository{db: db}
}

func (r *mealPlanRepository) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *mealPlanRepository) Insert(ctx context.Context, tx *gorm.DB, entries []models.MealPlanEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return r.conn(tx).WithContext(ctx).Create(&entries).Error
}

// ListForWeek 回傳 [weekStart, weekStart+7) 範圍內的安排，依日期排序
func (r *mealPlanRepository) ListForWeek(ctx context.Context, tx *gorm.DB, userID uuid.UUID, weekStart time.Time) ([]models.MealPlanEntry, error) {
	var entries []models.MealPlanEntry
	if err := r.conn(tx).WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", userID, weekStart, common.WeekEnd(weekStart)).
		Order("date").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *mealPlanRepository) DeleteForWeek(ctx context.Context, tx *gorm.DB, userID uuid.UUID, weekStart time.Time) error {
	return r.conn(tx).WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", userID, weekStart, common.WeekEnd(weekStart)).
		Delete(&models.MealPlanEntry{}).Error
}
