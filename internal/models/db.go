package models

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"namecard/internal/structures"
)

// OpenDatabase opens the sqlite database, migrates the schema and seeds
// the singleton recording session row (disabled).
func OpenDatabase(conf *structures.Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(conf.Database.Path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", conf.Database.Path, err)
	}

	if err := db.AutoMigrate(&LocationRecord{}, &RecordingSession{}); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	seed := RecordingSession{ID: SessionRowID, Enabled: false}
	if err := db.Where(RecordingSession{ID: SessionRowID}).FirstOrCreate(&seed).Error; err != nil {
		return nil, fmt.Errorf("seed recording session: %w", err)
	}

	return db, nil
}
