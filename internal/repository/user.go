package repository

import (
	"context"
	"errors"

	"meal-planner/internal/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserRepository 使用者資料存取
type UserRepository interface {
	Create(ctx context.Context, tx *gorm.DB, user *models.User) error
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*models.User, error)
	GetByUsername(ctx context.Context, tx *gorm.DB, username string) (*models.User, error)
	UsernameExists(ctx context.Context, tx *gorm.DB, username string) (bool, error)
	UpdatePreferences(ctx context.Context, tx *gorm.DB, id uuid.UUID, prefs models.Preferences) (*models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository 創建使用者資料存取實例
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *userRepository) Create(ctx context.Context, tx *gorm.DB, user *models.User) error {
	return r.conn(tx).WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.conn(tx).WithContext(ctx).
		Where("id = ?", id).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, tx *gorm.DB, username string) (*models.User, error) {
	var user models.User
	if err := r.conn(tx).WithContext(ctx).
		Where("username = ?", username).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UsernameExists(ctx context.Context, tx *gorm.DB, username string) (bool, error) {
	var count int64
	if err := r.conn(tx).WithContext(ctx).
		Model(&models.User{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userRepository) UpdatePreferences(ctx context.Context, tx *gorm.DB, id uuid.UUID, prefs models.Preferences) (*models.User, error) {
	wrapped := datatypes.NewJSONType(prefs)
	if err := r.conn(tx).WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Update("preferences", &wrapped).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, tx, id)
}
