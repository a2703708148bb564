package storage

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/abdulhaseebkhan2166/saranda-quest/internal/game"
)

type sqliteRepository struct {
	db *gorm.DB
}

// NewSQLiteRepository wraps an opened gorm database in the Repository
// interface.
func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) LoadOrCreatePlayer(name string) (*game.Player, error) {
	var p game.Player
	err := r.db.Preload("Creatures").Where("name = ?", name).First(&p).Error
	if err == nil {
		return &p, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	p = game.Player{
		Name:  name,
		Money: 3000,
		Items: map[string]int{},
	}
	if err := r.db.Create(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *sqliteRepository) SavePlayer(p *game.Player) error {
	return r.db.Session(&gorm.Session{FullSaveAssociations: true}).Save(p).Error
}

func (r *sqliteRepository) DeleteCreature(c *game.Creature) error {
	if c.ID == 0 {
		return nil
	}
	return r.db.Delete(c).Error
}

func (r *sqliteRepository) GetCatalogEntry(key string) ([]byte, error) {
	var entry CatalogEntry
	err := r.db.Where("key = ?", key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return entry.Body, nil
}

func (r *sqliteRepository) SaveCatalogEntry(key string, body []byte) error {
	entry := CatalogEntry{Key: key, Body: body}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"body", "updated_at"}),
	}).Create(&entry).Error
}
