package planner

import (
	"math/rand"
	"time"

	"meal-planner/internal/models"

	"github.com/google/uuid"
)

// MaxPlanDays 一週最多安排的天數
const MaxPlanDays = 7

// SelectWeeklyRecipes 從過濾後的食譜中隨機挑選一週的餐點。
// 使用注入的隨機來源做均勻洗牌，取前 min(7, n) 筆。
// 食譜不足七筆時產生較短的計畫，不重複補滿。
func SelectWeeklyRecipes(recipes []models.Recipe, rng *rand.Rand) []models.Recipe {
	shuffled := make([]models.Recipe, len(recipes))
	copy(shuffled, recipes)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if len(shuffled) > MaxPlanDays {
		shuffled = shuffled[:MaxPlanDays]
	}
	return shuffled
}

// BuildEntries 將選出的食譜依序指派到連續日期：
// 第 i 筆安排在 weekStart 午夜 + i 天，保持洗牌後的順序。
func BuildEntries(userID uuid.UUID, weekStart time.Time, selected []models.Recipe) []models.MealPlanEntry {
	entries := make([]models.MealPlanEntry, len(selected))
	for i, recipe := range selected {
		entries[i] = models.MealPlanEntry{
			ID:       uuid.New(),
			UserID:   userID,
			Date:     weekStart.AddDate(0, 0, i),
			RecipeID: recipe.ID,
		}
	}
	return entries
}
