package postgres

import (
	"log"

	"github.com/LavaJover/shvark-expressstores-service/internal/config"
	"github.com/LavaJover/shvark-expressstores-service/internal/infrastructure/logger"
	"github.com/LavaJover/shvark-expressstores-service/internal/infrastructure/migrate"
	"github.com/LavaJover/shvark-expressstores-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MustInitDB opens the database and brings the schema up to date, using the
// SQL migrations when a migrations path is configured and AutoMigrate
// otherwise.
func MustInitDB(cfg *config.MarketplaceConfig) *gorm.DB {
	dsn := cfg.Storage.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	if cfg.Storage.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.Storage.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v\n", err)
		}
		return db
	}

	err = db.AutoMigrate(
		&models.StoreModel{},
		&models.ProductModel{},
		&models.SuggestedProductModel{},
		&models.PurchaseLedgerModel{},
		&models.PurchasedReferenceModel{},
		&logger.PurchaseCompletedEvent{},
		&logger.PurchaseFailedEvent{},
	)
	if err != nil {
		log.Fatalf("failed to migrate db: %v\n", err)
	}

	return db
}
