package service

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/raju8309/recipe-manager/internal/models"
)

// CacheInvalidator marks derived data (the shopping list) stale after a
// mutation. A nil invalidator is a no-op.
type CacheInvalidator interface {
	Invalidate(ctx context.Context)
}

// RecipeInput is the payload for creating a recipe; the id is assigned here.
type RecipeInput struct {
	Name         string                `json:"name"`
	Description  string                `json:"description"`
	Instructions string                `json:"instructions"`
	Servings     int                   `json:"servings"`
	PrepTime     int                   `json:"prepTime"`
	CookTime     int                   `json:"cookTime"`
	Ingredients  models.IngredientList `json:"ingredients"`
	ImageURL     string                `json:"imageUrl"`
}

// RecipePatch carries only the fields present in a partial update. Absent
// fields stay nil and are never merged, so a patch can set a field to its
// zero value explicitly.
type RecipePatch struct {
	Name         *string                `json:"name"`
	Description  *string                `json:"description"`
	Instructions *string                `json:"instructions"`
	Servings     *int                   `json:"servings"`
	PrepTime     *int                   `json:"prepTime"`
	CookTime     *int                   `json:"cookTime"`
	Ingredients  *models.IngredientList `json:"ingredients"`
	ImageURL     *string                `json:"imageUrl"`
}

// RecipeService handles recipe persistence operations
type RecipeService struct {
	db    *gorm.DB
	cache CacheInvalidator
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB, cache CacheInvalidator) *RecipeService {
	return &RecipeService{db: db, cache: cache}
}

// ListRecipes returns all recipes, optionally filtered by a case-insensitive
// name/description substring.
func (s *RecipeService) ListRecipes(ctx context.Context, search string) ([]models.Recipe, error) {
	recipes := []models.Recipe{}
	query := s.db.WithContext(ctx)
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}
	if err := query.Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// GetRecipe retrieves a recipe by ID
func (s *RecipeService) GetRecipe(ctx context.Context, id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		return nil, translateGormError(err)
	}
	return &recipe, nil
}

// CreateRecipe validates the input, persists it and returns the stored
// recipe with its assigned id.
func (s *RecipeService) CreateRecipe(ctx context.Context, input *RecipeInput) (*models.Recipe, error) {
	if err := validateRecipeInput(input); err != nil {
		return nil, err
	}

	recipe := models.Recipe{
		Name:         input.Name,
		Description:  input.Description,
		Instructions: input.Instructions,
		Servings:     input.Servings,
		PrepTime:     input.PrepTime,
		CookTime:     input.CookTime,
		Ingredients:  input.Ingredients,
		ImageURL:     input.ImageURL,
	}
	if recipe.Ingredients == nil {
		recipe.Ingredients = models.IngredientList{}
	}

	if err := s.db.WithContext(ctx).Create(&recipe).Error; err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return &recipe, nil
}

// UpdateRecipe merges only the fields present in the patch onto the stored
// recipe. The id is immutable.
func (s *RecipeService) UpdateRecipe(ctx context.Context, id uint, patch *RecipePatch) (*models.Recipe, error) {
	if err := validateRecipePatch(patch); err != nil {
		return nil, err
	}

	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		return nil, translateGormError(err)
	}

	if patch.Name != nil {
		recipe.Name = *patch.Name
	}
	if patch.Description != nil {
		recipe.Description = *patch.Description
	}
	if patch.Instructions != nil {
		recipe.Instructions = *patch.Instructions
	}
	if patch.Servings != nil {
		recipe.Servings = *patch.Servings
	}
	if patch.PrepTime != nil {
		recipe.PrepTime = *patch.PrepTime
	}
	if patch.CookTime != nil {
		recipe.CookTime = *patch.CookTime
	}
	if patch.Ingredients != nil {
		recipe.Ingredients = *patch.Ingredients
	}
	if patch.ImageURL != nil {
		recipe.ImageURL = *patch.ImageURL
	}

	if err := s.db.WithContext(ctx).Save(&recipe).Error; err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return &recipe, nil
}

// DeleteRecipe removes the recipe if present and reports whether a deletion
// occurred. Deleting an absent id is not an error. Meal plans referencing
// the recipe are left in place; the shopping list skips them at read time.
func (s *RecipeService) DeleteRecipe(ctx context.Context, id uint) (bool, error) {
	result := s.db.WithContext(ctx).Delete(&models.Recipe{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected == 0 {
		return false, nil
	}
	s.invalidate(ctx)
	return true, nil
}

func (s *RecipeService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}

func validateRecipeInput(input *RecipeInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return &ValidationError{Field: "name", Message: "must not be empty"}
	}
	if strings.TrimSpace(input.Description) == "" {
		return &ValidationError{Field: "description", Message: "must not be empty"}
	}
	if strings.TrimSpace(input.Instructions) == "" {
		return &ValidationError{Field: "instructions", Message: "must not be empty"}
	}
	if input.Servings < 1 {
		return &ValidationError{Field: "servings", Message: "must be at least 1"}
	}
	if input.PrepTime < 0 {
		return &ValidationError{Field: "prepTime", Message: "must not be negative"}
	}
	if input.CookTime < 0 {
		return &ValidationError{Field: "cookTime", Message: "must not be negative"}
	}
	return validateIngredients(input.Ingredients)
}

func validateRecipePatch(patch *RecipePatch) error {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return &ValidationError{Field: "name", Message: "must not be empty"}
	}
	if patch.Description != nil && strings.TrimSpace(*patch.Description) == "" {
		return &ValidationError{Field: "description", Message: "must not be empty"}
	}
	if patch.Instructions != nil && strings.TrimSpace(*patch.Instructions) == "" {
		return &ValidationError{Field: "instructions", Message: "must not be empty"}
	}
	if patch.Servings != nil && *patch.Servings < 1 {
		return &ValidationError{Field: "servings", Message: "must be at least 1"}
	}
	if patch.PrepTime != nil && *patch.PrepTime < 0 {
		return &ValidationError{Field: "prepTime", Message: "must not be negative"}
	}
	if patch.CookTime != nil && *patch.CookTime < 0 {
		return &ValidationError{Field: "cookTime", Message: "must not be negative"}
	}
	if patch.Ingredients != nil {
		return validateIngredients(*patch.Ingredients)
	}
	return nil
}

func validateIngredients(ingredients models.IngredientList) error {
	for _, ing := range ingredients {
		if ing.Name == "" {
			return &ValidationError{Field: "ingredients", Message: "ingredient name must not be empty"}
		}
		if ing.Amount < 0 || ing.Calories < 0 || ing.Protein < 0 || ing.Carbs < 0 || ing.Fat < 0 {
			return &ValidationError{Field: "ingredients", Message: "ingredient values must not be negative"}
		}
	}
	return nil
}
