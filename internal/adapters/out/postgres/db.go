// Package postgres wires the gorm record store: connection setup, schema
// migration and the unit of work shared by the repositories.
package postgres

import (
	"fmt"

	"eats/internal/adapters/out/postgres/orderrepo"
	"eats/internal/adapters/out/postgres/paymentrepo"
	"eats/internal/adapters/out/postgres/restaurantrepo"
	"eats/internal/adapters/out/postgres/userrepo"

	"github.com/glebarez/sqlite"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config selects the database. SQLitePath is only read for DriverSQLite.
type Config struct {
	Driver     string
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SSLMode    string
	SQLitePath string
}

// DSN renders the libpq connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// Open connects with gorm error translation enabled so unique violations
// surface as gorm.ErrDuplicatedKey on every driver.
func Open(cfg Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	}

	switch cfg.Driver {
	case DriverSQLite:
		return gorm.Open(sqlite.Open(cfg.SQLitePath), gormCfg)
	case DriverPostgres, "":
		return gorm.Open(postgresdriver.Open(cfg.DSN()), gormCfg)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Models lists every table of the record store.
func Models() []any {
	return []any{
		&userrepo.UserDTO{},
		&userrepo.VerificationDTO{},
		&restaurantrepo.CategoryDTO{},
		&restaurantrepo.RestaurantDTO{},
		&restaurantrepo.DishDTO{},
		&orderrepo.OrderDTO{},
		&paymentrepo.PaymentDTO{},
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
