package configs

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"storefront/entity"
)

// Connect opens the database selected by the config: postgres when
// DATABASE_URL or DB_DRIVER=postgres is set, sqlite otherwise.
func Connect(cfg *Config) (*gorm.DB, error) {
	if cfg.DatabaseURL != "" {
		return gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	}
	switch cfg.DBDriver {
	case "postgres":
		return gorm.Open(postgres.Open(cfg.DBSource), &gorm.Config{})
	case "sqlite":
		return gorm.Open(sqlite.Open(cfg.DBSource), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.DBDriver)
	}
}

// SetupDatabase migrates the schema.
func SetupDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.Category{}, &entity.Product{},
		&entity.Address{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{},
	)
}
