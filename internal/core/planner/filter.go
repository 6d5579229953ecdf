package planner

import (
	"strings"

	"meal-planner/internal/models"
)

// FilterRecipes 依使用者偏好過濾食譜。
// prefs 為 nil 時不過濾，全部通過。
//
// 排除規則：
//   - 沒有食材清單的食譜無法比對，偏好存在時一律排除
//   - 任一食材名稱包含任一飲食限制關鍵字（不分大小寫的子字串比對）
//   - 任一食材名稱包含任一過敏原關鍵字
//
// 比對刻意採子字串而非斷詞：限制關鍵字 "egg" 會同時排除 "eggplant"。
// 這是既有產品行為，寧可多排除也不漏掉過敏原，請勿改成全字比對。
func FilterRecipes(recipes []models.Recipe, prefs *models.Preferences) []models.Recipe {
	if prefs == nil {
		return recipes
	}

	filtered := make([]models.Recipe, 0, len(recipes))
	for _, recipe := range recipes {
		if len(recipe.Ingredients) == 0 {
			continue
		}
		if containsKeyword(recipe.Ingredients, prefs.DietaryRestrictions) {
			continue
		}
		if containsKeyword(recipe.Ingredients, prefs.Allergies) {
			continue
		}
		filtered = append(filtered, recipe)
	}
	return filtered
}

// containsKeyword 檢查任一食材名稱是否包含任一關鍵字
func containsKeyword(ingredients []models.Ingredient, keywords []string) bool {
	for _, ingredient := range ingredients {
		name := strings.ToLower(ingredient.Name)
		for _, keyword := range keywords {
			if strings.Contains(name, strings.ToLower(keyword)) {
				return true
			}
		}
	}
	return false
}
