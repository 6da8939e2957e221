package models

import "time"

// MealType is the slot a recipe is planned into.
type MealType string

const (
	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeDinner    MealType = "dinner"
)

// Valid reports whether t is one of the known meal slots.
func (t MealType) Valid() bool {
	switch t {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner:
		return true
	}
	return false
}

// MealPlan assigns a recipe to a calendar date and meal slot. RecipeID is a
// weak reference: deleting the recipe leaves the plan entry in place.
type MealPlan struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Date     time.Time `gorm:"not null" json:"date"`
	RecipeID uint      `gorm:"not null" json:"recipeId"`
	MealType MealType  `gorm:"size:20;not null" json:"mealType"`
}

// SameDay reports whether the plan falls on the given calendar day,
// comparing year/month/day components rather than full timestamps.
func (m *MealPlan) SameDay(t time.Time) bool {
	y1, mo1, d1 := m.Date.Date()
	y2, mo2, d2 := t.Date()
	return y1 == y2 && mo1 == mo2 && d1 == d2
}
