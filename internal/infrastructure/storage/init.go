package storage

import (
	"log"

	"github.com/dangol-v2/deal-service/internal/config"
	"github.com/dangol-v2/deal-service/internal/infrastructure/storage/models"
	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MustInitDB opens the configured backend. The repositories are written
// once against gorm; postgres is the production backend, sqlite serves
// single-node deployments and tests behind the same contract.
func MustInitDB(cfg *config.DealConfig) *gorm.DB {
	var dialector gorm.Dialector
	switch cfg.DealDB.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.DealDB.Dsn)
	case "sqlite":
		dialector = sqlite.Open(cfg.DealDB.Dsn)
	default:
		log.Fatalf("unknown db driver: %q\n", cfg.DealDB.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(
		&models.MerchantModel{},
		&models.DealModel{},
		&models.ClaimModel{},
		&models.PushSubscriptionModel{},
		&models.NotificationModel{},
		&models.NotificationDeliveryModel{},
	)

	return db
}
