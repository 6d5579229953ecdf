package planner

import (
	"context"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"meal-planner/internal/core/catalog"
	"meal-planner/internal/infrastructure/config"
	"meal-planner/internal/infrastructure/database"
	"meal-planner/internal/models"
	"meal-planner/internal/pkg/common"
	"meal-planner/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type serviceFixture struct {
	db      *gorm.DB
	service *Service
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()

	// 每個測試一個具名的記憶體資料庫，連線池共享同一份資料
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	recipeRepo := repository.NewRecipeRepository(db)
	cache, err := catalog.NewCache(&config.CacheConfig{Enabled: false})
	require.NoError(t, err)
	catalogService := catalog.NewService(recipeRepo, cache)

	svc := NewService(
		db,
		catalogService,
		repository.NewUserRepository(db),
		repository.NewMealPlanRepository(db),
		repository.NewShoppingListRepository(db),
	).WithRandFactory(func() *rand.Rand {
		return rand.New(rand.NewSource(1))
	})

	return &serviceFixture{db: db, service: svc}
}

func (f *serviceFixture) createUser(t *testing.T, prefs *models.Preferences) uuid.UUID {
	t.Helper()
	user := &models.User{
		ID:       uuid.New(),
		Username: fmt.Sprintf("user-%s", uuid.New().String()[:8]),
		Password: "hash",
	}
	if prefs != nil {
		wrapped := datatypes.NewJSONType(*prefs)
		user.Preferences = &wrapped
	}
	require.NoError(t, f.db.Create(user).Error)
	return user.ID
}

func (f *serviceFixture) seedCatalog(t *testing.T, recipes ...models.Recipe) {
	t.Helper()
	for i := range recipes {
		// created_at 依序遞增，目錄順序穩定
		recipes[i].CreatedAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(i) * time.Minute)
	}
	require.NoError(t, f.db.Create(&recipes).Error)
}

func weekOf(day int) time.Time {
	return time.Date(2024, 3, day, 0, 0, 0, 0, time.Local)
}

func TestGenerateCreatesPlanAndShoppingList(t *testing.T) {
	f := newServiceFixture(t)
	userID := f.createUser(t, &models.Preferences{PeopleCount: 2})
	f.seedCatalog(t, makeCatalog(10)...)
	weekStart := weekOf(4)

	result, err := f.service.Generate(context.Background(), userID, weekStart)
	require.NoError(t, err)

	require.Len(t, result.MealPlan, MaxPlanDays)
	for i, entry := range result.MealPlan {
		assert.Equal(t, weekStart.AddDate(0, 0, i), entry.Date)
		assert.Equal(t, userID, entry.UserID)
	}

	require.NotNil(t, result.ShoppingList)
	assert.Equal(t, userID, result.ShoppingList.UserID)
	assert.Equal(t, weekStart, result.ShoppingList.WeekStart)
	assert.NotEmpty(t, result.ShoppingList.Items)

	// 寫入後能查回
	entries, err := f.service.GetMealPlan(context.Background(), userID, weekStart)
	require.NoError(t, err)
	assert.Len(t, entries, MaxPlanDays)

	list, err := f.service.GetShoppingList(context.Background(), userID, weekStart)
	require.NoError(t, err)
	require.NotNil(t, list)
	assert.Equal(t, result.ShoppingList.ID, list.ID)
}

func TestGenerateEmptyCatalog(t *testing.T) {
	f := newServiceFixture(t)
	userID := f.createUser(t, nil)

	_, err := f.service.Generate(context.Background(), userID, weekOf(4))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrEmptyCatalog)
}

func TestGenerateNoMatchingRecipes(t *testing.T) {
	f := newServiceFixture(t)
	userID := f.createUser(t, &models.Preferences{
		Allergies:   []string{"tomato"},
		PeopleCount: 2,
	})
	f.seedCatalog(t, makeRecipe("Pasta", "tomato", "pasta"))

	_, err := f.service.Generate(context.Background(), userID, weekOf(4))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNoMatchingRecipes)
}

func TestGenerateUnknownUser(t *testing.T) {
	f := newServiceFixture(t)
	f.seedCatalog(t, makeCatalog(3)...)

	_, err := f.service.Generate(context.Background(), uuid.New(), weekOf(4))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestGenerateReplacesExistingWeek(t *testing.T) {
	f := newServiceFixture(t)
	userID := f.createUser(t, &models.Preferences{PeopleCount: 2})
	f.seedCatalog(t, makeCatalog(10)...)
	weekStart := weekOf(4)

	first, err := f.service.Generate(context.Background(), userID, weekStart)
	require.NoError(t, err)
	second, err := f.service.Generate(context.Background(), userID, weekStart)
	require.NoError(t, err)

	// 重複生成取代舊資料，不累積
	entries, err := f.service.GetMealPlan(context.Background(), userID, weekStart)
	require.NoError(t, err)
	assert.Len(t, entries, MaxPlanDays)

	list, err := f.service.GetShoppingList(context.Background(), userID, weekStart)
	require.NoError(t, err)
	require.NotNil(t, list)
	assert.Equal(t, second.ShoppingList.ID, list.ID)
	assert.NotEqual(t, first.ShoppingList.ID, list.ID)
}

func TestGenerateKeepsOtherWeeksIntact(t *testing.T) {
	f := newServiceFixture(t)
	userID := f.createUser(t, &models.Preferences{PeopleCount: 2})
	f.seedCatalog(t, makeCatalog(10)...)

	_, err := f.service.Generate(context.Background(), userID, weekOf(4))
	require.NoError(t, err)
	_, err = f.service.Generate(context.Background(), userID, weekOf(11))
	require.NoError(t, err)

	firstWeek, err := f.service.GetMealPlan(context.Background(), userID, weekOf(4))
	require.NoError(t, err)
	assert.Len(t, firstWeek, MaxPlanDays)

	secondWeek, err := f.service.GetMealPlan(context.Background(), userID, weekOf(11))
	require.NoError(t, err)
	assert.Len(t, secondWeek, MaxPlanDays)
}

func TestGenerateScalesShoppingListByPreferences(t *testing.T) {
	f := newServiceFixture(t)
	userID := f.createUser(t, &models.Preferences{PeopleCount: 4})

	pasta := makeRecipe("Pasta", "tomato")
	pasta.Ingredients = datatypes.JSONSlice[models.Ingredient]{
		{Name: "tomato", Amount: 200, Unit: "g"},
	}
	pasta.Servings = 2
	salad := makeRecipe("Salad", "lettuce")
	salad.Ingredients = datatypes.JSONSlice[models.Ingredient]{
		{Name: "lettuce", Amount: 100, Unit: "g"},
	}
	salad.Servings = 1
	f.seedCatalog(t, pasta, salad)

	result, err := f.service.Generate(context.Background(), userID, weekOf(4))
	require.NoError(t, err)

	require.Len(t, result.ShoppingList.Items, 2)
	amounts := map[string]float64{}
	for _, item := range result.ShoppingList.Items {
		amounts[item.Name] = item.Amount
		assert.False(t, item.Checked)
	}
	assert.InDelta(t, 400.0, amounts["tomato"], 1e-9)
	assert.InDelta(t, 400.0, amounts["lettuce"], 1e-9)
}

func TestGetShoppingListMissingWeek(t *testing.T) {
	f := newServiceFixture(t)
	userID := f.createUser(t, nil)

	list, err := f.service.GetShoppingList(context.Background(), userID, weekOf(4))
	require.NoError(t, err)
	assert.Nil(t, list)
}

func TestUpdateShoppingListTogglesChecked(t *testing.T) {
	f := newServiceFixture(t)
	userID := f.createUser(t, &models.Preferences{PeopleCount: 2})
	f.seedCatalog(t, makeCatalog(3)...)

	result, err := f.service.Generate(context.Background(), userID, weekOf(4))
	require.NoError(t, err)

	items := []models.ShoppingListItem(result.ShoppingList.Items)
	items[0].Checked = true

	updated, err := f.service.UpdateShoppingList(context.Background(), userID, result.ShoppingList.ID, items)
	require.NoError(t, err)
	assert.True(t, updated.Items[0].Checked)
}

func TestUpdateShoppingListOwnershipEnforced(t *testing.T) {
	f := newServiceFixture(t)
	owner := f.createUser(t, &models.Preferences{PeopleCount: 2})
	intruder := f.createUser(t, nil)
	f.seedCatalog(t, makeCatalog(3)...)

	result, err := f.service.Generate(context.Background(), owner, weekOf(4))
	require.NoError(t, err)

	_, err = f.service.UpdateShoppingList(context.Background(), intruder, result.ShoppingList.ID, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestUpdatePreferencesValidation(t *testing.T) {
	f := newServiceFixture(t)
	userID := f.createUser(t, nil)

	_, err := f.service.UpdatePreferences(context.Background(), userID, models.Preferences{PeopleCount: 0})
	require.Error(t, err)
	assert.True(t, common.IsValidationError(err))

	_, err = f.service.UpdatePreferences(context.Background(), userID, models.Preferences{PeopleCount: 11})
	require.Error(t, err)
	assert.True(t, common.IsValidationError(err))
}

func TestUpdatePreferencesPersists(t *testing.T) {
	f := newServiceFixture(t)
	userID := f.createUser(t, nil)

	updated, err := f.service.UpdatePreferences(context.Background(), userID, models.Preferences{
		DietaryRestrictions: []string{"pork"},
		Allergies:           []string{"peanut"},
		PeopleCount:         3,
	})
	require.NoError(t, err)

	prefs := updated.GetPreferences()
	require.NotNil(t, prefs)
	assert.Equal(t, []string{"pork"}, prefs.DietaryRestrictions)
	assert.Equal(t, []string{"peanut"}, prefs.Allergies)
	assert.Equal(t, 3, prefs.PeopleCount)
}
