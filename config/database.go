package config

import (
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DefaultDBPath is the single-file database created next to the binary when
// DB_PATH is not set.
const DefaultDBPath = "barberpro.db"

// DBPath resolves the database file location from the environment.
func DBPath() string {
	if path := os.Getenv("DB_PATH"); path != "" {
		return path
	}
	return DefaultDBPath
}

// ConnectDB opens the SQLite database at the given path. The handle is meant
// to be passed to controllers and services explicitly; there is no package
// level singleton.
func ConnectDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// SQLite allows a single writer; keeping one connection avoids
	// SQLITE_BUSY under the gorm pool.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}
