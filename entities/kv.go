package entities

import "time"

// KVEntry backs the local key-value store. Value holds raw JSON.
type KVEntry struct {
	Key       string `gorm:"primaryKey" json:"key"`
	Value     string `json:"value"`
	UpdatedAt time.Time
}
