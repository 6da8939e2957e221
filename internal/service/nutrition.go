package service

import (
	"math"

	"github.com/raju8309/recipe-manager/internal/models"
)

// NutritionSummary holds per-serving macro values and the relative split of
// protein/carbs/fat. Calories are reported separately and do not take part
// in the percentage denominator.
type NutritionSummary struct {
	Calories   int     `json:"calories"`
	Protein    int     `json:"protein"`
	Carbs      int     `json:"carbs"`
	Fat        int     `json:"fat"`
	ProteinPct float64 `json:"proteinPct"`
	CarbsPct   float64 `json:"carbsPct"`
	FatPct     float64 `json:"fatPct"`
}

// Summarize sums the recipe's ingredient nutrition, scales it down to one
// serving (rounded to the nearest integer) and computes each macro's share
// of the per-serving protein+carbs+fat grams. When those grams sum to zero
// all percentages are reported as 0 rather than dividing by zero.
func Summarize(recipe *models.Recipe) NutritionSummary {
	var calories, protein, carbs, fat float64
	for _, ing := range recipe.Ingredients {
		calories += ing.Calories
		protein += ing.Protein
		carbs += ing.Carbs
		fat += ing.Fat
	}

	servings := float64(recipe.Servings)
	summary := NutritionSummary{
		Calories: int(math.Round(calories / servings)),
		Protein:  int(math.Round(protein / servings)),
		Carbs:    int(math.Round(carbs / servings)),
		Fat:      int(math.Round(fat / servings)),
	}

	totalGrams := float64(summary.Protein + summary.Carbs + summary.Fat)
	if totalGrams > 0 {
		summary.ProteinPct = float64(summary.Protein) / totalGrams * 100
		summary.CarbsPct = float64(summary.Carbs) / totalGrams * 100
		summary.FatPct = float64(summary.Fat) / totalGrams * 100
	}
	return summary
}
