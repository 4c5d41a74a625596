package config

import (
	"os"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectDB opens the application database and returns the handle.
// DB_URL selects postgres; otherwise a local sqlite file is used
// (DB_PATH, default covid_center.db).
func ConnectDB() (*gorm.DB, error) {
	if dsn := os.Getenv("DB_URL"); dsn != "" {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "covid_center.db"
	}
	return gorm.Open(sqlite.Open(path), &gorm.Config{})
}
