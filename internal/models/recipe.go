package models

import (
	"database/sql/driver"
	"encoding/json"
)

// Ingredient is one ingredient line embedded in a recipe. Nutrition values
// are for the recipe's full batch, not per serving.
type Ingredient struct {
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	Unit     string  `json:"unit"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// IngredientList is a custom type for storing ingredients as JSONB
type IngredientList []Ingredient

// Value implements the driver.Valuer interface
func (l IngredientList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface
func (l *IngredientList) Scan(value interface{}) error {
	if value == nil {
		*l = IngredientList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, l)
}

type Recipe struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Name         string         `gorm:"size:255;not null" json:"name"`
	Description  string         `gorm:"type:text;not null" json:"description"`
	Instructions string         `gorm:"type:text;not null" json:"instructions"`
	Servings     int            `gorm:"not null" json:"servings"`
	PrepTime     int            `gorm:"not null" json:"prepTime"`
	CookTime     int            `gorm:"not null" json:"cookTime"`
	Ingredients  IngredientList `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	ImageURL     string         `gorm:"size:255" json:"imageUrl,omitempty"`
}

// TotalTime is prep plus cook time in minutes; derived, never stored.
func (r *Recipe) TotalTime() int {
	return r.PrepTime + r.CookTime
}
