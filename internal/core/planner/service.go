package planner

import (
	"context"
	"math/rand"
	"time"

	"meal-planner/internal/core/catalog"
	"meal-planner/internal/models"
	"meal-planner/internal/pkg/common"
	"meal-planner/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RandFactory 提供每次生成使用的隨機來源，測試可注入固定種子
type RandFactory func() *rand.Rand

// defaultRandFactory 以當前時間為種子
func defaultRandFactory() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// GenerateResult 一次生成呼叫的結果
type GenerateResult struct {
	MealPlan     []models.MealPlanEntry `json:"meal_plan"`
	ShoppingList *models.ShoppingList   `json:"shopping_list"`
}

// Service 餐點計畫服務
type Service struct {
	db           *gorm.DB
	catalog      *catalog.Service
	userRepo     repository.UserRepository
	mealPlanRepo repository.MealPlanRepository
	listRepo     repository.ShoppingListRepository
	newRand      RandFactory
}

// NewService 創建餐點計畫服務
func NewService(
	db *gorm.DB,
	catalogService *catalog.Service,
	userRepo repository.UserRepository,
	mealPlanRepo repository.MealPlanRepository,
	listRepo repository.ShoppingListRepository,
) *Service {
	return &Service{
		db:           db,
		catalog:      catalogService,
		userRepo:     userRepo,
		mealPlanRepo: mealPlanRepo,
		listRepo:     listRepo,
		newRand:      defaultRandFactory,
	}
}

// WithRandFactory 替換隨機來源，測試用
func (s *Service) WithRandFactory(factory RandFactory) *Service {
	s.newRand = factory
	return s
}

// Generate 為使用者生成一週的餐點計畫與購物清單。
//
// 同一使用者同一週重複生成採取代語義：舊的安排與購物清單
// 會在同一筆交易內刪除後重建，不會累積重複資料列。
// 餐點安排與購物清單的寫入包在單一交易內，失敗時不留半套狀態。
func (s *Service) Generate(ctx context.Context, userID uuid.UUID, weekStart time.Time) (*GenerateResult, error) {
	user, err := s.userRepo.GetByID(ctx, nil, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, common.ErrNotFound
	}

	recipes, err := s.catalog.List(ctx)
	if err != nil {
		return nil, err
	}
	// 空目錄檢查必須先於過濾
	if len(recipes) == 0 {
		return nil, common.ErrEmptyCatalog
	}

	prefs := user.GetPreferences()
	filtered := FilterRecipes(recipes, prefs)
	if len(filtered) == 0 {
		return nil, common.ErrNoMatchingRecipes
	}

	selected := SelectWeeklyRecipes(filtered, s.newRand())
	entries := BuildEntries(userID, weekStart, selected)
	items := AggregateShoppingItems(selected, prefs.PeopleCountOrDefault())

	list := &models.ShoppingList{
		ID:        uuid.New(),
		UserID:    userID,
		WeekStart: weekStart,
		Items:     datatypes.JSONSlice[models.ShoppingListItem](items),
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.mealPlanRepo.DeleteForWeek(ctx, tx, userID, weekStart); err != nil {
			return err
		}
		if err := s.listRepo.DeleteForWeek(ctx, tx, userID, weekStart); err != nil {
			return err
		}
		if err := s.mealPlanRepo.Insert(ctx, tx, entries); err != nil {
			return err
		}
		return s.listRepo.Insert(ctx, tx, list)
	})
	if err != nil {
		return nil, err
	}

	common.LogInfo("餐點計畫生成完成",
		zap.String("user_id", userID.String()),
		zap.Time("week_start", weekStart),
		zap.Int("days", len(entries)),
		zap.Int("items", len(items)),
	)

	return &GenerateResult{
		MealPlan:     entries,
		ShoppingList: list,
	}, nil
}

// GetMealPlan 回傳使用者某一週的餐點安排
func (s *Service) GetMealPlan(ctx context.Context, userID uuid.UUID, weekStart time.Time) ([]models.MealPlanEntry, error) {
	return s.mealPlanRepo.ListForWeek(ctx, nil, userID, weekStart)
}

// GetShoppingList 回傳使用者某一週的購物清單，不存在時回傳 nil
func (s *Service) GetShoppingList(ctx context.Context, userID uuid.UUID, weekStart time.Time) (*models.ShoppingList, error) {
	return s.listRepo.GetForWeek(ctx, nil, userID, weekStart)
}

// UpdateShoppingList 以 id 為鍵整批替換品項（切換勾選狀態的使用情境）。
// 只允許操作自己的清單。
func (s *Service) UpdateShoppingList(ctx context.Context, userID uuid.UUID, listID uuid.UUID, items []models.ShoppingListItem) (*models.ShoppingList, error) {
	list, err := s.listRepo.GetByID(ctx, nil, listID)
	if err != nil {
		return nil, err
	}
	if list == nil || list.UserID != userID {
		return nil, common.ErrNotFound
	}
	return s.listRepo.ReplaceItems(ctx, nil, listID, items)
}

// UpdatePreferences 更新使用者的飲食偏好
func (s *Service) UpdatePreferences(ctx context.Context, userID uuid.UUID, prefs models.Preferences) (*models.User, error) {
	if prefs.PeopleCount < 1 || prefs.PeopleCount > 10 {
		return nil, common.NewValidationError("people_count must be between 1 and 10")
	}
	if prefs.DietaryRestrictions == nil {
		prefs.DietaryRestrictions = []string{}
	}
	if prefs.Allergies == nil {
		prefs.Allergies = []string{}
	}

	user, err := s.userRepo.UpdatePreferences(ctx, nil, userID, prefs)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, common.ErrNotFound
	}
	return user, nil
}
