package kv

import (
	"encoding/json"
	"errors"
)

// ErrNotFound is returned by Get when the key has never been set.
var ErrNotFound = errors.New("kv: key not found")

var errWriteFailed = errors.New("kv: write failed")

// Store is the local persistence port. Values are raw JSON so callers stay
// in charge of their own shapes.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// GetJSON unmarshals the stored value into out. ErrNotFound passes through.
func GetJSON(s Store, key string, out any) error {
	raw, err := s.Get(key)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

func SetJSON(s Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(key, raw)
}
