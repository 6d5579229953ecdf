package planner

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"meal-planner/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeCatalog(n int) []models.Recipe {
	recipes := make([]models.Recipe, 0, n)
	for i := 0; i < n; i++ {
		recipes = append(recipes, makeRecipe(fmt.Sprintf("Recipe %d", i), "ingredient"))
	}
	return recipes
}

func TestSelectWeeklyRecipesTakesAtMostSeven(t *testing.T) {
	recipes := makeCatalog(20)
	rng := rand.New(rand.NewSource(1))

	selected := SelectWeeklyRecipes(recipes, rng)
	assert.Len(t, selected, MaxPlanDays)
}

func TestSelectWeeklyRecipesShortCatalog(t *testing.T) {
	recipes := makeCatalog(3)
	rng := rand.New(rand.NewSource(1))

	// 不足七筆時產生較短的計畫，不重複補滿
	selected := SelectWeeklyRecipes(recipes, rng)
	assert.Len(t, selected, 3)

	seen := make(map[uuid.UUID]bool)
	for _, r := range selected {
		assert.False(t, seen[r.ID], "recipe must not repeat")
		seen[r.ID] = true
	}
}

func TestSelectWeeklyRecipesDeterministicWithSeed(t *testing.T) {
	recipes := makeCatalog(10)

	first := SelectWeeklyRecipes(recipes, rand.New(rand.NewSource(42)))
	second := SelectWeeklyRecipes(recipes, rand.New(rand.NewSource(42)))

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
	}
}

func TestSelectWeeklyRecipesDoesNotMutateInput(t *testing.T) {
	recipes := makeCatalog(10)
	original := make([]models.Recipe, len(recipes))
	copy(original, recipes)

	SelectWeeklyRecipes(recipes, rand.New(rand.NewSource(7)))

	for i := range recipes {
		assert.Equal(t, original[i].ID, recipes[i].ID)
	}
}

func TestBuildEntriesSequentialDates(t *testing.T) {
	userID := uuid.New()
	weekStart := time.Date(2024, 3, 4, 0, 0, 0, 0, time.Local)
	selected := makeCatalog(7)

	entries := BuildEntries(userID, weekStart, selected)
	require.Len(t, entries, 7)

	for i, entry := range entries {
		assert.Equal(t, userID, entry.UserID)
		assert.Equal(t, selected[i].ID, entry.RecipeID)
		assert.Equal(t, weekStart.AddDate(0, 0, i), entry.Date)
	}
}

func TestBuildEntriesShortPlanHasNoGaps(t *testing.T) {
	userID := uuid.New()
	weekStart := time.Date(2024, 3, 4, 0, 0, 0, 0, time.Local)
	selected := makeCatalog(4)

	// 較短的計畫仍從第一天開始連續排列
	entries := BuildEntries(userID, weekStart, selected)
	require.Len(t, entries, 4)
	for i := 1; i < len(entries); i++ {
		assert.Equal(t, entries[i-1].Date.AddDate(0, 0, 1), entries[i].Date)
	}
}
