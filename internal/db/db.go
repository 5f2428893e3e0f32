package db

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/handyhome/handyhome-api/internal/models"
)

func Connect(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
}

// Migrate creates or updates every table the service owns, including the
// quote-to-product pivot. The unique index on home_infos.rwuser_id comes
// from the model tags and is what enforces one home info per user.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&models.Product{},
		&models.User{},
		&models.HomeInfo{},
		&models.QuoteRequest{},
		&models.QuoteRequestProduct{},
	)
}
