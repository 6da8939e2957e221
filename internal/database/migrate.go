package database

import (
	"gorm.io/gorm"

	"github.com/raju8309/recipe-manager/internal/models"
)

// RunMigrations brings the schema up to date. There is deliberately no
// foreign key from meal_plans to recipes: plan entries are allowed to
// dangle after a recipe delete.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Recipe{},
		&models.MealPlan{},
	)
}
