package database

import (
	"gorm.io/gorm"

	"github.com/dgeemedia/chrenis/models"
)

// AutoMigrate brings the schema up to date for every table the API serves.
// Intended for development; production schemas are managed out of band.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Investment{},
		&models.Transaction{},
		&models.Notification{},
	)
}
