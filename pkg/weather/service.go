package weather

import (
	"context"
	"errors"
	"fmt"
	"log"

	"kisan/entities"
	"kisan/pkg/kv"
)

const lastWeatherKey = "last_weather"

// Service fetches snapshots and keeps the last good one cached so the signal
// screen still works when the provider is unreachable.
type Service struct {
	provider Provider
	kv       kv.Store
}

func NewService(p Provider, store kv.Store) *Service {
	return &Service{provider: p, kv: store}
}

func (s *Service) Current(ctx context.Context, location string) (entities.WeatherSnapshot, error) {
	w, err := s.provider.Fetch(ctx, location)
	if err != nil {
		var cached entities.WeatherSnapshot
		if cerr := kv.GetJSON(s.kv, lastWeatherKey, &cached); cerr == nil {
			log.Printf("[weather] provider failed, serving cached snapshot: %v", err)
			return cached, nil
		} else if !errors.Is(cerr, kv.ErrNotFound) {
			log.Printf("[weather] cache read failed: %v", cerr)
		}
		return entities.WeatherSnapshot{}, fmt.Errorf("fetch weather: %w", err)
	}
	if err := kv.SetJSON(s.kv, lastWeatherKey, w); err != nil {
		log.Printf("[weather] cache write failed: %v", err)
	}
	return w, nil
}
