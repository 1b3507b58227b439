package database

import (
	"fmt"
	"log"

	"github.com/pageza/cookmate/backend/internal/models"
	"gorm.io/gorm"
)

// Models lists every table owned by the service, in creation order
func Models() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Recipe{},
		&models.RecipeView{},
		&models.PantryItem{},
		&models.Favorite{},
		&models.Feedback{},
	}
}

// RunMigrations creates or updates the schema. The unique indexes on
// users.email, recipes.slug and favorites(user_email, recipe_id) are
// what make registration and favoriting safe under concurrent requests.
func RunMigrations(db *gorm.DB) error {
	log.Printf("[Database] running auto-migration on %s", db.Dialector.Name())

	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	// Backfill slugs for rows written before the column existed
	res := db.Exec("UPDATE recipes SET slug = LOWER(REPLACE(TRIM(name), ' ', '-')) WHERE slug IS NULL OR slug = ''")
	if res.Error != nil {
		return fmt.Errorf("failed to backfill recipe slugs: %w", res.Error)
	}
	if res.RowsAffected > 0 {
		log.Printf("[Database] backfilled %d recipe slugs", res.RowsAffected)
	}

	return nil
}
