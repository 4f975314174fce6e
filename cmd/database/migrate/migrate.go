package migration

import (
	"fmt"
	"log"

	"github.com/plateful/plateful-backend/entities"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.IngredientReference{}); err != nil {
		log.Fatalf("Error migrating ingredient reference database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ImpactEvent{}); err != nil {
		log.Fatalf("Error migrating impact event database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.UserGamification{}); err != nil {
		log.Fatalf("Error migrating user gamification database: %v", err)
		return err
	}

	// AutoMigrate does not cover enum guards
	db.Exec(`ALTER TABLE impact_events DROP CONSTRAINT IF EXISTS chk_impact_events_source;`)
	db.Exec(`ALTER TABLE impact_events ADD CONSTRAINT chk_impact_events_source
		CHECK (source IN ('recipe', 'fridge_share', 'manual'));`)
	db.Exec(`ALTER TABLE impact_events DROP CONSTRAINT IF EXISTS chk_impact_events_status;`)
	db.Exec(`ALTER TABLE impact_events ADD CONSTRAINT chk_impact_events_status
		CHECK (status IN ('active', 'reversed', 'deleted'));`)
	db.Exec(`ALTER TABLE ingredient_references DROP CONSTRAINT IF EXISTS chk_ingredient_references_category;`)
	db.Exec(`ALTER TABLE ingredient_references ADD CONSTRAINT chk_ingredient_references_category
		CHECK (category IN ('produce', 'dairy', 'protein', 'grains', 'condiments', 'beverages', 'frozen', 'other'));`)

	fmt.Println("Database migration complete")
	return nil
}
