package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Ingredient 食譜中的單一食材
type Ingredient struct {
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	Unit     string  `json:"unit"`
	Seasonal bool    `json:"seasonal"`
}

// Preferences 使用者的飲食偏好與家庭人數
type Preferences struct {
	DietaryRestrictions []string `json:"dietary_restrictions"`
	Allergies           []string `json:"allergies"`
	PeopleCount         int      `json:"people_count"`
}

// PeopleCountOrDefault 取得家庭人數，未設定時回傳 1 以避免除以零
func (p *Preferences) PeopleCountOrDefault() int {
	if p == nil || p.PeopleCount < 1 {
		return 1
	}
	return p.PeopleCount
}

// User 使用者帳號
type User struct {
	ID          uuid.UUID                         `gorm:"type:uuid;primaryKey" json:"id"`
	Username    string                            `gorm:"uniqueIndex;not null" json:"username"`
	Password    string                            `gorm:"not null" json:"-"`
	Preferences *datatypes.JSONType[Preferences]  `gorm:"column:preferences" json:"preferences,omitempty"`
	CreatedAt   time.Time                         `json:"created_at"`
	UpdatedAt   time.Time                         `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// GetPreferences 取出偏好設定，未設定時回傳 nil
func (u *User) GetPreferences() *Preferences {
	if u.Preferences == nil {
		return nil
	}
	prefs := u.Preferences.Data()
	return &prefs
}

// Recipe 食譜目錄中的一筆資料（唯讀，不可由使用者編輯）
type Recipe struct {
	ID              uuid.UUID                       `gorm:"type:uuid;primaryKey" json:"id"`
	Name            string                          `gorm:"not null" json:"name"`
	Ingredients     datatypes.JSONSlice[Ingredient] `gorm:"column:ingredients" json:"ingredients"`
	Instructions    string                          `gorm:"type:text" json:"instructions"`
	PreparationTime int                             `gorm:"column:preparation_time" json:"preparation_time"`
	Servings        int                             `json:"servings"`
	Tags            datatypes.JSONSlice[string]     `gorm:"column:tags" json:"tags"`
	CreatedAt       time.Time                       `json:"created_at"`
}

func (Recipe) TableName() string {
	return "recipes"
}

// ServingsOrDefault 取得份量，零或負值視為 1 以避免除以零
func (r *Recipe) ServingsOrDefault() int {
	if r.Servings < 1 {
		return 1
	}
	return r.Servings
}

// MealPlanEntry 一位使用者某一天的一筆餐點安排
type MealPlanEntry struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	Date     time.Time `gorm:"not null" json:"date"`
	RecipeID uuid.UUID `gorm:"type:uuid;not null" json:"recipe_id"`
}

func (MealPlanEntry) TableName() string {
	return "meal_plan_entries"
}

// ShoppingListItem 購物清單中的一個品項；同一清單內 (name, unit) 必須唯一
type ShoppingListItem struct {
	Name    string  `json:"name"`
	Amount  float64 `json:"amount"`
	Unit    string  `json:"unit"`
	Checked bool    `json:"checked"`
}

// ShoppingList 一位使用者一週的購物清單
type ShoppingList struct {
	ID        uuid.UUID                             `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID                             `gorm:"type:uuid;index;not null" json:"user_id"`
	WeekStart time.Time                             `gorm:"column:week_start;not null" json:"week_start"`
	Items     datatypes.JSONSlice[ShoppingListItem] `gorm:"column:items" json:"items"`
	CreatedAt time.Time                             `json:"created_at"`
	UpdatedAt time.Time                             `json:"updated_at"`
}

func (ShoppingList) TableName() string {
	return "shopping_lists"
}
