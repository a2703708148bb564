package storage

import (
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/abdulhaseebkhan2166/saranda-quest/internal/game"
)

// CatalogEntry is one cached upstream catalog response, keyed by the
// canonical lookup key (see internal/keys). Bodies are stored verbatim
// so a cold catalog service never blocks play for species already seen.
type CatalogEntry struct {
	gorm.Model
	Key  string `gorm:"uniqueIndex"`
	Body []byte
}

// OpenAndMigrate opens the sqlite database at dataSourceName, creating
// the parent directory when needed, and keeps the schema updated via
// AutoMigrate.
func OpenAndMigrate(dataSourceName string) (*gorm.DB, error) {
	if dir := filepath.Dir(dataSourceName); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&game.Player{}, &game.Creature{}, &CatalogEntry{}); err != nil {
		return nil, err
	}
	return db, nil
}
