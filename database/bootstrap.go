// database/bootstrap.go
package database

import (
	"fmt"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	glog "github.com/labstack/gommon/log"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"farmconnect/entities"
)

// Open connects to the journal database and migrates it. The default DSN is
// a shared in-memory database, so nothing survives a restart.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// a shared-cache memory db disappears when its last connection closes
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(0)
	}
	if err := db.AutoMigrate(&entities.SyncEntry{}); err != nil {
		return nil, fmt.Errorf("automigrate: %w", err)
	}
	return db, nil
}

func OpenSQLite(dsn string) *gorm.DB {
	db, err := Open(dsn)
	if err != nil {
		glog.Fatalf("[db] %v", err)
	}
	return db
}
