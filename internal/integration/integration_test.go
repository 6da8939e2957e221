package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raju8309/recipe-manager/config"
	"github.com/raju8309/recipe-manager/internal/models"
	"github.com/raju8309/recipe-manager/internal/server"
	"github.com/raju8309/recipe-manager/internal/service"
	"github.com/raju8309/recipe-manager/internal/testhelpers"
)

func do(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
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

// Exercises the whole planning flow against real postgres: create recipes,
// schedule them, read the consolidated shopping list, then delete a recipe
// and confirm its plan entry dangles harmlessly.
func TestPlanningFlowAgainstPostgres(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := testhelpers.SetupTestDatabase(t)

	srv := server.New(&config.Config{ServerHost: "localhost", ServerPort: "0"}, db, server.Options{})
	router := srv.Router()

	recipeBody := map[string]interface{}{
		"name":         "Chili",
		"description":  "Weeknight chili",
		"instructions": "Simmer everything",
		"servings":     6,
		"prepTime":     15,
		"cookTime":     45,
		"ingredients": []map[string]interface{}{
			{"name": "Beans", "amount": 400, "unit": "g", "calories": 560, "protein": 36, "carbs": 96, "fat": 2},
			{"name": "Beef", "amount": 500, "unit": "g", "calories": 1250, "protein": 130, "carbs": 0, "fat": 75},
		},
	}

	w := do(t, router, "POST", "/api/recipes", recipeBody)
	require.Equal(t, http.StatusCreated, w.Code)
	var chili models.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &chili))

	w = do(t, router, "POST", "/api/meal-plans", map[string]interface{}{
		"date":     "2025-03-10",
		"recipeId": chili.ID,
		"mealType": "dinner",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var plan models.MealPlan
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &plan))

	w = do(t, router, "GET", "/api/shopping-list", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var items []service.ShoppingListItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 2)
	assert.Equal(t, "Beans", items[0].Name)

	// delete the recipe; the plan entry stays but drops out of the list
	w = do(t, router, "DELETE", fmt.Sprintf("/api/recipes/%d", chili.ID), nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, router, "GET", "/api/meal-plans", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var plans []models.MealPlan
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &plans))
	require.Len(t, plans, 1)
	assert.Equal(t, chili.ID, plans[0].RecipeID)

	w = do(t, router, "GET", "/api/shopping-list", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}
