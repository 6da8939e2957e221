package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/raju8309/recipe-manager/internal/service"
)

type MealPlanHandler struct {
	plans *service.MealPlanService
}

func NewMealPlanHandler(plans *service.MealPlanService) *MealPlanHandler {
	return &MealPlanHandler{plans: plans}
}

func (h *MealPlanHandler) RegisterRoutes(router *gin.RouterGroup) {
	plans := router.Group("/meal-plans")
	{
		plans.GET("", h.ListMealPlans)
		plans.POST("", h.CreateMealPlan)
		plans.DELETE("/:id", h.DeleteMealPlan)
	}
}

func (h *MealPlanHandler) ListMealPlans(c *gin.Context) {
	plans, err := h.plans.ListMealPlans(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plans)
}

func (h *MealPlanHandler) CreateMealPlan(c *gin.Context) {
	var input service.MealPlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal plan data"})
		return
	}
	plan, err := h.plans.CreateMealPlan(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, plan)
}

func (h *MealPlanHandler) DeleteMealPlan(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	deleted, err := h.plans.DeleteMealPlan(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
