package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/raju8309/recipe-manager/config"
	"github.com/raju8309/recipe-manager/internal/api"
	"github.com/raju8309/recipe-manager/internal/cache"
	"github.com/raju8309/recipe-manager/internal/middleware"
	"github.com/raju8309/recipe-manager/internal/service"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *gorm.DB
}

// Options carries the optional integrations. Both may be nil: without the
// cache the shopping list is recomputed per request, without S3 the image
// upload endpoint reports unavailable.
type Options struct {
	PlannerCache *cache.PlannerCache
	S3           *config.S3Config
}

// New wires services and handlers onto a gin router.
func New(cfg *config.Config, db *gorm.DB, opts Options) *Server {
	router := gin.Default()

	router.Use(middleware.RequestID())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Accept", "Origin", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	// The cache may be nil; services treat a nil invalidator as a no-op, but
	// a nil *PlannerCache must not be wrapped in a non-nil interface value.
	var invalidator service.CacheInvalidator
	var listCache service.ShoppingListCache
	if opts.PlannerCache != nil {
		invalidator = opts.PlannerCache
		listCache = opts.PlannerCache
	}

	recipeService := service.NewRecipeService(db, invalidator)
	mealPlanService := service.NewMealPlanService(db, invalidator)
	plannerService := service.NewPlannerService(db, listCache)

	var imageService *service.ImageService
	if opts.S3 != nil {
		imageService = service.NewImageService(opts.S3)
	}

	root := router.Group("/api")
	api.NewHealthHandler(db).RegisterRoutes(root)
	api.NewRecipeHandler(recipeService).RegisterRoutes(root)
	api.NewMealPlanHandler(mealPlanService).RegisterRoutes(root)
	api.NewPlannerHandler(plannerService).RegisterRoutes(root)
	api.NewImageHandler(recipeService, imageService).RegisterRoutes(root)

	return &Server{
		router: router,
		db:     db,
		http: &http.Server{
			Addr:    cfg.ServerHost + ":" + cfg.ServerPort,
			Handler: router,
		},
	}
}

// Start begins serving. Blocks until the listener fails or Shutdown is
// called.
func (s *Server) Start() error {
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.http.Shutdown(shutdownCtx)
}

// Router exposes the gin engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}
