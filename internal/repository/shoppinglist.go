package repository

import (
	"context"
	"errors"
	"time"

	"meal-planner/internal/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ShoppingListRepository 購物清單資料存取
type ShoppingListRepository interface {
	Insert(ctx context.Context, tx *gorm.DB, list *models.ShoppingList) error
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*models.ShoppingList, error)
	GetForWeek(ctx context.Context, tx *gorm.DB, userID uuid.UUID, weekStart time.Time) (*models.ShoppingList, error)
	ReplaceItems(ctx context.Context, tx *gorm.DB, id uuid.UUID, items []models.ShoppingListItem) (*models.ShoppingList, error)
	DeleteForWeek(ctx context.Context, tx *gorm.DB, userID uuid.UUID, weekStart time.Time) error
}

type shoppingListRepository struct {
	db *gorm.DB
}

// NewShoppingListRepository 創建購物清單資料存取實例
func NewShoppingListRepository(db *gorm.DB) ShoppingListRepository {
	return &shoppingListRepository{db: db}
}

func (r *shoppingListRepository) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *shoppingListRepository) Insert(ctx context.Context, tx *gorm.DB, list *models.ShoppingList) error {
	return r.conn(tx).WithContext(ctx).Create(list).Error
}

func (r *shoppingListRepository) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*models.ShoppingList, error) {
	var list models.ShoppingList
	if err := r.conn(tx).WithContext(ctx).
		Where("id = ?", id).
		First(&list).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &list, nil
}

// GetForWeek 回傳該使用者該週的購物清單，最多一筆；不存在時回傳 nil
func (r *shoppingListRepository) GetForWeek(ctx context.Context, tx *gorm.DB, userID uuid.UUID, weekStart time.Time) (*models.ShoppingList, error) {
	var list models.ShoppingList
	if err := r.conn(tx).WithContext(ctx).
		Where("user_id = ? AND week_start = ?", userID, weekStart).
		First(&list).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &list, nil
}

// ReplaceItems 以 id 為鍵整批替換品項序列（勾選狀態切換的使用情境）
func (r *shoppingListRepository) ReplaceItems(ctx context.Context, tx *gorm.DB, id uuid.UUID, items []models.ShoppingListItem) (*models.ShoppingList, error) {
	if err := r.conn(tx).WithContext(ctx).
		Model(&models.ShoppingList{}).
		Where("id = ?", id).
		Update("items", datatypes.JSONSlice[models.ShoppingListItem](items)).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, tx, id)
}

func (r *shoppingListRepository) DeleteForWeek(ctx context.Context, tx *gorm.DB, userID uuid.UUID, weekStart time.Time) error {
	return r.conn(tx).WithContext(ctx).
		Where("user_id = ? AND week_start = ?", userID, weekStart).
		Delete(&models.ShoppingList{}).Error
}
