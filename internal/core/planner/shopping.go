package planner

import (
	"meal-planner/internal/models"
)

// AggregateShoppingItems 展開選出食譜的食材並合併成購物清單。
//
// 每個食材的數量依家庭人數縮放：amount × peopleCount / servings。
// servings 為零或負值時視為 1，避免除以零。
//
// 合併規則：name 與 unit 完全相等（區分大小寫、不做正規化）才合併，
// 數量相加。合併後的品項保持首次出現的順序，checked 一律為 false。
func AggregateShoppingItems(selected []models.Recipe, peopleCount int) []models.ShoppingListItem {
	if peopleCount < 1 {
		peopleCount = 1
	}

	type itemKey struct {
		name string
		unit string
	}

	items := make([]models.ShoppingListItem, 0)
	index := make(map[itemKey]int)

	for _, recipe := range selected {
		servings := recipe.ServingsOrDefault()
		for _, ingredient := range recipe.Ingredients {
			scaled := ingredient.Amount * float64(peopleCount) / float64(servings)

			key := itemKey{name: ingredient.Name, unit: ingredient.Unit}
			if i, exists := index[key]; exists {
				items[i].Amount += scaled
				continue
			}

			index[key] = len(items)
			items = append(items, models.ShoppingListItem{
				Name:    ingredient.Name,
				Amount:  scaled,
				Unit:    ingredient.Unit,
				Checked: false,
			})
		}
	}
	return items
}
