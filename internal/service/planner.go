package service

import (
	"context"

	"gorm.io/gorm"

	"github.com/raju8309/recipe-manager/internal/models"
)

// ShoppingListCache stores the computed shopping list between mutations.
// Mutating services only see the CacheInvalidator side.
type ShoppingListCache interface {
	CacheInvalidator
	Get(ctx context.Context) ([]ShoppingListItem, bool)
	Set(ctx context.Context, items []ShoppingListItem)
}

// PlannerService serves the derived planner views: the consolidated shopping
// list and per-recipe nutrition summaries.
type PlannerService struct {
	db    *gorm.DB
	cache ShoppingListCache
}

// NewPlannerService creates a new PlannerService instance
func NewPlannerService(db *gorm.DB, cache ShoppingListCache) *PlannerService {
	return &PlannerService{db: db, cache: cache}
}

// ShoppingList returns the aggregated ingredient totals for everything
// currently scheduled. The computed list is cached until the next recipe or
// meal plan mutation invalidates it.
func (s *PlannerService) ShoppingList(ctx context.Context) ([]ShoppingListItem, error) {
	if s.cache != nil {
		if items, ok := s.cache.Get(ctx); ok {
			return items, nil
		}
	}

	plans := []models.MealPlan{}
	if err := s.db.WithContext(ctx).Find(&plans).Error; err != nil {
		return nil, err
	}
	recipes := []models.Recipe{}
	if err := s.db.WithContext(ctx).Find(&recipes).Error; err != nil {
		return nil, err
	}

	items := BuildShoppingList(plans, recipes)
	if s.cache != nil {
		s.cache.Set(ctx, items)
	}
	return items, nil
}

// RecipeNutrition computes the per-serving summary for one recipe.
func (s *PlannerService) RecipeNutrition(ctx context.Context, id uint) (*NutritionSummary, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		return nil, translateGormError(err)
	}
	summary := Summarize(&recipe)
	return &summary, nil
}
