package planner

import (
	"testing"

	"meal-planner/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func makeRecipe(name string, ingredientNames ...string) models.Recipe {
	ingredients := make([]models.Ingredient, 0, len(ingredientNames))
	for _, n := range ingredientNames {
		ingredients = append(ingredients, models.Ingredient{Name: n, Amount: 100, Unit: "g"})
	}
	return models.Recipe{
		ID:          uuid.New(),
		Name:        name,
		Ingredients: datatypes.JSONSlice[models.Ingredient](ingredients),
		Servings:    2,
	}
}

func TestFilterRecipesNilPreferences(t *testing.T) {
	recipes := []models.Recipe{
		makeRecipe("Pasta", "tomato"),
		makeRecipe("Salad", "lettuce"),
	}

	filtered := FilterRecipes(recipes, nil)
	assert.Equal(t, recipes, filtered)
}

func TestFilterRecipesExcludesByRestriction(t *testing.T) {
	recipes := []models.Recipe{
		makeRecipe("Pasta", "tomato", "pasta"),
		makeRecipe("Steak", "beef", "butter"),
	}
	prefs := &models.Preferences{
		DietaryRestrictions: []string{"beef"},
		PeopleCount:         2,
	}

	filtered := FilterRecipes(recipes, prefs)

	assert.Len(t, filtered, 1)
	assert.Equal(t, "Pasta", filtered[0].Name)
}

func TestFilterRecipesExcludesByAllergy(t *testing.T) {
	recipes := []models.Recipe{
		makeRecipe("Toast", "bread", "peanut butter"),
		makeRecipe("Salad", "lettuce"),
	}
	prefs := &models.Preferences{
		Allergies:   []string{"nut"},
		PeopleCount: 1,
	}

	filtered := FilterRecipes(recipes, prefs)

	// "nut" 以子字串命中 "peanut butter"
	assert.Len(t, filtered, 1)
	assert.Equal(t, "Salad", filtered[0].Name)
}

func TestFilterRecipesSubstringMatchesWholeWord(t *testing.T) {
	recipes := []models.Recipe{
		makeRecipe("Ratatouille", "eggplant", "tomato"),
		makeRecipe("Omelette", "egg", "butter"),
		makeRecipe("Salad", "lettuce"),
	}
	prefs := &models.Preferences{
		DietaryRestrictions: []string{"egg"},
		PeopleCount:         2,
	}

	filtered := FilterRecipes(recipes, prefs)

	// 子字串比對："egg" 連 "eggplant" 一起排除
	assert.Len(t, filtered, 1)
	assert.Equal(t, "Salad", filtered[0].Name)
}

func TestFilterRecipesCaseInsensitive(t *testing.T) {
	recipes := []models.Recipe{
		makeRecipe("Stir Fry", "Chicken Breast"),
	}
	prefs := &models.Preferences{
		Allergies:   []string{"CHICKEN"},
		PeopleCount: 2,
	}

	filtered := FilterRecipes(recipes, prefs)
	assert.Empty(t, filtered)
}

func TestFilterRecipesExcludesMissingIngredients(t *testing.T) {
	noIngredients := models.Recipe{ID: uuid.New(), Name: "Mystery"}
	recipes := []models.Recipe{
		noIngredients,
		makeRecipe("Salad", "lettuce"),
	}
	prefs := &models.Preferences{
		DietaryRestrictions: []string{"beef"},
		PeopleCount:         2,
	}

	// 沒有食材清單的食譜無法比對，偏好存在時一律排除
	filtered := FilterRecipes(recipes, prefs)
	assert.Len(t, filtered, 1)
	assert.Equal(t, "Salad", filtered[0].Name)
}

func TestFilterRecipesResultIsSubset(t *testing.T) {
	recipes := []models.Recipe{
		makeRecipe("Pasta", "tomato"),
		makeRecipe("Steak", "beef"),
		makeRecipe("Salad", "lettuce"),
	}
	prefs := &models.Preferences{
		DietaryRestrictions: []string{"beef"},
		Allergies:           []string{"shrimp"},
		PeopleCount:         2,
	}

	filtered := FilterRecipes(recipes, prefs)

	ids := make(map[uuid.UUID]bool)
	for _, r := range recipes {
		ids[r.ID] = true
	}
	for _, r := range filtered {
		assert.True(t, ids[r.ID], "filtered recipe must come from the input set")
	}
	assert.LessOrEqual(t, len(filtered), len(recipes))
}

func TestFilterRecipesEmptyKeywordLists(t *testing.T) {
	recipes := []models.Recipe{
		makeRecipe("Pasta", "tomato"),
	}
	prefs := &models.Preferences{
		DietaryRestrictions: []string{},
		Allergies:           []string{},
		PeopleCount:         4,
	}

	filtered := FilterRecipes(recipes, prefs)
	assert.Len(t, filtered, 1)
}
