package database

import (
	"agora/internal/models"

	"gorm.io/gorm"
)

// AllModels returns every model registered for auto-migration, ordered so
// that referenced tables are created before their dependents.
func AllModels() []any {
	return []any{
		&models.User{},
		&models.Follow{},
		&models.Feed{},
		&models.Article{},
		&models.Poll{},
		&models.PollChoice{},
		&models.PollBallot{},
		&models.Question{},
		&models.Answer{},
	}
}

// Migrate runs GORM auto-migration for all registered models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
