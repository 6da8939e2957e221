package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/raju8309/recipe-manager/internal/service"
)

// PlannerHandler serves the derived views: the consolidated shopping list
// and per-recipe nutrition summaries.
type PlannerHandler struct {
	planner *service.PlannerService
}

func NewPlannerHandler(planner *service.PlannerService) *PlannerHandler {
	return &PlannerHandler{planner: planner}
}

func (h *PlannerHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/shopping-list", h.ShoppingList)
	router.GET("/recipes/:id/nutrition", h.RecipeNutrition)
}

// ShoppingList returns the aggregated ingredient totals for all scheduled
// meals. An empty plan set yields an empty array, not an error.
func (h *PlannerHandler) ShoppingList(c *gin.Context) {
	items, err := h.planner.ShoppingList(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if items == nil {
		items = []service.ShoppingListItem{}
	}
	c.JSON(http.StatusOK, items)
}

func (h *PlannerHandler) RecipeNutrition(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	summary, err := h.planner.RecipeNutrition(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
