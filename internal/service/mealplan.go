package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/raju8309/recipe-manager/internal/models"
)

// MealPlanInput is the payload for scheduling a recipe. The date arrives as
// an ISO-8601 string; a bare YYYY-MM-DD is also accepted.
type MealPlanInput struct {
	Date     string          `json:"date"`
	RecipeID uint            `json:"recipeId"`
	MealType models.MealType `json:"mealType"`
}

// MealPlanService handles meal plan persistence operations. Plans are never
// updated in place: changing a slot is a delete followed by a create.
type MealPlanService struct {
	db    *gorm.DB
	cache CacheInvalidator
}

// NewMealPlanService creates a new MealPlanService instance
func NewMealPlanService(db *gorm.DB, cache CacheInvalidator) *MealPlanService {
	return &MealPlanService{db: db, cache: cache}
}

// ListMealPlans returns all meal plans
func (s *MealPlanService) ListMealPlans(ctx context.Context) ([]models.MealPlan, error) {
	plans := []models.MealPlan{}
	if err := s.db.WithContext(ctx).Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

// CreateMealPlan validates and persists a plan entry. The recipe reference
// is not checked for existence: it is an unenforced foreign key, and the
// model does not prevent duplicate (date, mealType) entries either.
func (s *MealPlanService) CreateMealPlan(ctx context.Context, input *MealPlanInput) (*models.MealPlan, error) {
	date, err := parsePlanDate(input.Date)
	if err != nil {
		return nil, err
	}
	if input.RecipeID == 0 {
		return nil, &ValidationError{Field: "recipeId", Message: "must be a positive integer"}
	}
	if !input.MealType.Valid() {
		return nil, &ValidationError{Field: "mealType", Message: "must be breakfast, lunch or dinner"}
	}

	plan := models.MealPlan{
		Date:     date,
		RecipeID: input.RecipeID,
		MealType: input.MealType,
	}
	if err := s.db.WithContext(ctx).Create(&plan).Error; err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return &plan, nil
}

// DeleteMealPlan removes the plan if present and reports whether a deletion
// occurred.
func (s *MealPlanService) DeleteMealPlan(ctx context.Context, id uint) (bool, error) {
	result := s.db.WithContext(ctx).Delete(&models.MealPlan{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected == 0 {
		return false, nil
	}
	s.invalidate(ctx)
	return true, nil
}

func (s *MealPlanService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}

func parsePlanDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, &ValidationError{Field: "date", Message: "must not be empty"}
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Time{}, &ValidationError{Field: "date", Message: "must be an ISO-8601 timestamp or YYYY-MM-DD"}
}
