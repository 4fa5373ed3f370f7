package kv

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kisan/entities"
)

type sqliteStore struct{ db *gorm.DB }

func NewSQLite(db *gorm.DB) Store { return &sqliteStore{db} }

func (s *sqliteStore) Get(key string) ([]byte, error) {
	var e entities.KVEntry
	if err := s.db.Where("key = ?", key).First(&e).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return []byte(e.Value), nil
}

func (s *sqliteStore) Set(key string, value []byte) error {
	e := entities.KVEntry{Key: key, Value: string(value)}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&e).Error
}

func (s *sqliteStore) Delete(key string) error {
	return s.db.Where("key = ?", key).Delete(&entities.KVEntry{}).Error
}
