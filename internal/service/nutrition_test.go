package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/raju8309/recipe-manager/internal/models"
)

func TestSummarizePerServing(t *testing.T) {
	recipe := &models.Recipe{
		Servings: 4,
		Ingredients: models.IngredientList{
			{Name: "Chicken", Amount: 500, Unit: "g", Calories: 800, Protein: 100, Carbs: 0, Fat: 40},
			{Name: "Rice", Amount: 300, Unit: "g", Calories: 400, Protein: 8, Carbs: 88, Fat: 4},
		},
	}

	summary := Summarize(recipe)

	assert.Equal(t, 300, summary.Calories)
	assert.Equal(t, 27, summary.Protein)
	assert.Equal(t, 22, summary.Carbs)
	assert.Equal(t, 11, summary.Fat)
}

func TestSummarizeRoundsToNearest(t *testing.T) {
	recipe := &models.Recipe{
		Servings: 3,
		Ingredients: models.IngredientList{
			{Name: "Oats", Amount: 100, Unit: "g", Calories: 100, Protein: 10, Carbs: 20, Fat: 5},
		},
	}

	summary := Summarize(recipe)

	// 100/3 = 33.33 -> 33, 10/3 = 3.33 -> 3, 20/3 = 6.67 -> 7, 5/3 = 1.67 -> 2
	assert.Equal(t, 33, summary.Calories)
	assert.Equal(t, 3, summary.Protein)
	assert.Equal(t, 7, summary.Carbs)
	assert.Equal(t, 2, summary.Fat)
}

func TestSummarizePercentagesSumToHundred(t *testing.T) {
	recipe := &models.Recipe{
		Servings: 2,
		Ingredients: models.IngredientList{
			{Name: "Salmon", Amount: 200, Unit: "g", Calories: 400, Protein: 40, Carbs: 2, Fat: 26},
			{Name: "Quinoa", Amount: 150, Unit: "g", Calories: 180, Protein: 7, Carbs: 30, Fat: 3},
		},
	}

	summary := Summarize(recipe)

	assert.InDelta(t, 100, summary.ProteinPct+summary.CarbsPct+summary.FatPct, 0.001)
	assert.Greater(t, summary.ProteinPct, summary.CarbsPct)
}

func TestSummarizeZeroMacrosFallsBackToZeroPercent(t *testing.T) {
	recipe := &models.Recipe{
		Servings: 1,
		Ingredients: models.IngredientList{
			{Name: "Water", Amount: 250, Unit: "ml"},
		},
	}

	summary := Summarize(recipe)

	assert.Equal(t, 0, summary.Calories)
	assert.Zero(t, summary.ProteinPct)
	assert.Zero(t, summary.CarbsPct)
	assert.Zero(t, summary.FatPct)
}

func TestSummarizeIsPure(t *testing.T) {
	recipe := &models.Recipe{
		Servings: 5,
		Ingredients: models.IngredientList{
			{Name: "Beef", Amount: 400, Unit: "g", Calories: 1000, Protein: 80, Carbs: 0, Fat: 70},
		},
	}

	first := Summarize(recipe)
	second := Summarize(recipe)

	assert.Equal(t, first, second)
}
