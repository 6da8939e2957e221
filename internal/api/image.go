package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/raju8309/recipe-manager/internal/service"
)

// ImageHandler uploads recipe images to object storage and records the
// resulting URL on the recipe through the normal patch path.
type ImageHandler struct {
	recipes *service.RecipeService
	images  *service.ImageService
}

// NewImageHandler creates an image handler. images may be nil when object
// storage is not configured; uploads then report 503.
func NewImageHandler(recipes *service.RecipeService, images *service.ImageService) *ImageHandler {
	return &ImageHandler{recipes: recipes, images: images}
}

func (h *ImageHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/recipes/:id/image", h.UploadRecipeImage)
}

// UploadRecipeImageRequest carries a data-URL base64 image payload.
type UploadRecipeImageRequest struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

func (h *ImageHandler) UploadRecipeImage(c *gin.Context) {
	if h.images == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image storage is not configured"})
		return
	}

	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UploadRecipeImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid upload payload"})
		return
	}

	// Reject uploads for recipes that do not exist before touching storage.
	if _, err := h.recipes.GetRecipe(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	url, err := h.images.UploadRecipeImage(c.Request.Context(), req.ImageBase64)
	if err != nil {
		respondError(c, err)
		return
	}

	recipe, err := h.recipes.UpdateRecipe(c.Request.Context(), id, &service.RecipePatch{ImageURL: &url})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}
