package migration

import (
	"Agri-Assist-Backend/entities"
	"fmt"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.Document{}); err != nil {
		return fmt.Errorf("error migrating document database: %w", err)
	}
	return nil
}
