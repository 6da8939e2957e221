package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"gorm.io/gorm"

	"github.com/raju8309/recipe-manager/config"
	"github.com/raju8309/recipe-manager/internal/cache"
	"github.com/raju8309/recipe-manager/internal/database"
	"github.com/raju8309/recipe-manager/internal/server"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	var db *gorm.DB
	if os.Getenv("DB_DRIVER") == "sqlite" {
		db, err = database.NewSQLite(os.Getenv("DB_PATH"))
	} else {
		db, err = database.New(cfg)
	}
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	opts := server.Options{}

	if cfg.RedisHost != "" || cfg.RedisURL != "" {
		redisClient, err := database.NewRedisClient(cfg)
		if err != nil {
			log.Printf("Redis unavailable, shopping list will be recomputed per request: %v", err)
		} else {
			opts.PlannerCache = cache.NewPlannerCache(redisClient)
		}
	}

	if cfg.S3Bucket != "" {
		s3Config, err := config.NewS3Config(context.Background(), cfg)
		if err != nil {
			log.Printf("S3 unavailable, image upload disabled: %v", err)
		} else {
			if err := s3Config.SetupBucketPolicy(context.Background()); err != nil {
				log.Printf("Failed to apply bucket policy: %v", err)
			}
			opts.S3 = s3Config
		}
	}

	srv := server.New(cfg, db, opts)

	errChan := make(chan error, 1)
	go func() {
		log.Printf("Starting server on %s:%s", cfg.ServerHost, cfg.ServerPort)
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	if err := srv.Shutdown(context.Background()); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
