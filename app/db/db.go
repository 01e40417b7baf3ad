package db

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

// Connect opens the configured database. TranslateError is on so unique
// index violations come back as gorm.ErrDuplicatedKey on both drivers.
func Connect(driver, dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{TranslateError: true}
	switch driver {
	case DriverSQLite:
		return gorm.Open(sqlite.Open(dsn), cfg)
	case DriverMySQL:
		return gorm.Open(mysql.Open(dsn), cfg)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", driver)
	}
}
