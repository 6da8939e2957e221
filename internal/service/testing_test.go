package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/raju8309/recipe-manager/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Recipe{}, &models.MealPlan{}))
	return db
}

func validRecipeInput() *RecipeInput {
	return &RecipeInput{
		Name:         "Pancakes",
		Description:  "Fluffy breakfast pancakes",
		Instructions: "Mix and fry",
		Servings:     4,
		PrepTime:     10,
		CookTime:     15,
		Ingredients: models.IngredientList{
			{Name: "Flour", Amount: 200, Unit: "g", Calories: 720, Protein: 20, Carbs: 152, Fat: 2},
			{Name: "Milk", Amount: 300, Unit: "ml", Calories: 180, Protein: 10, Carbs: 14, Fat: 10},
		},
	}
}
