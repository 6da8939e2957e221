package service

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/raju8309/recipe-manager/internal/models"
)

// ShoppingListItem is one consolidated ingredient line. Two ingredient
// occurrences merge only when both name and unit match exactly; there is no
// unit conversion or string normalization.
type ShoppingListItem struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

type ingredientKey struct {
	name string
	unit string
}

// BuildShoppingList resolves every meal plan entry to its recipe and sums
// ingredient amounts grouped by (name, unit). Entries whose recipe no longer
// exists are skipped; a recipe scheduled N times contributes its ingredients
// N times. The result is sorted by name using English collation, ascending.
func BuildShoppingList(plans []models.MealPlan, recipes []models.Recipe) []ShoppingListItem {
	byID := make(map[uint]*models.Recipe, len(recipes))
	for i := range recipes {
		byID[recipes[i].ID] = &recipes[i]
	}

	totals := make(map[ingredientKey]*ShoppingListItem)
	order := []ingredientKey{}
	for _, plan := range plans {
		recipe, ok := byID[plan.RecipeID]
		if !ok {
			// dangling reference, not an error
			continue
		}
		for _, ing := range recipe.Ingredients {
			key := ingredientKey{name: ing.Name, unit: ing.Unit}
			item, ok := totals[key]
			if !ok {
				item = &ShoppingListItem{Name: ing.Name, Unit: ing.Unit}
				totals[key] = item
				order = append(order, key)
			}
			item.Amount += ing.Amount
		}
	}

	list := make([]ShoppingListItem, 0, len(order))
	for _, key := range order {
		list = append(list, *totals[key])
	}

	c := collate.New(language.English)
	sort.SliceStable(list, func(i, j int) bool {
		return c.CompareString(list[i].Name, list[j].Name) < 0
	})
	return list
}
