package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/raju8309/recipe-manager/internal/models"
	"github.com/raju8309/recipe-manager/internal/service"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Recipe{}, &models.MealPlan{}))

	recipeService := service.NewRecipeService(db, nil)
	mealPlanService := service.NewMealPlanService(db, nil)
	plannerService := service.NewPlannerService(db, nil)

	router := gin.New()
	root := router.Group("/api")
	NewHealthHandler(db).RegisterRoutes(root)
	NewRecipeHandler(recipeService).RegisterRoutes(root)
	NewMealPlanHandler(mealPlanService).RegisterRoutes(root)
	NewPlannerHandler(plannerService).RegisterRoutes(root)
	NewImageHandler(recipeService, nil).RegisterRoutes(root)

	return router, db
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func testRecipeBody() map[string]interface{} {
	return map[string]interface{}{
		"name":         "Pancakes",
		"description":  "Fluffy breakfast pancakes",
		"instructions": "Mix and fry",
		"servings":     4,
		"prepTime":     10,
		"cookTime":     15,
		"ingredients": []map[string]interface{}{
			{"name": "Flour", "amount": 200, "unit": "g", "calories": 720, "protein": 20, "carbs": 152, "fat": 2},
			{"name": "Milk", "amount": 300, "unit": "ml", "calories": 180, "protein": 10, "carbs": 14, "fat": 10},
		},
	}
}
