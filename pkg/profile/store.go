package profile

import (
	"errors"
	"fmt"

	"kisan/entities"
	"kisan/pkg/kv"
)

const profileKey = "farmer_profile"

// ErrInvalidInput covers unknown enum values and missing dates; validation
// happens here so the engine can assume clean profiles.
var ErrInvalidInput = errors.New("profile: invalid input")

// ErrNotSet is returned before the farmer completes setup.
var ErrNotSet = errors.New("profile: not set")

type Store struct{ kv kv.Store }

func New(store kv.Store) *Store { return &Store{kv: store} }

func Validate(p entities.FarmerProfile) error {
	if _, ok := entities.ParseCropType(string(p.Crop)); !ok {
		return fmt.Errorf("%w: crop %q", ErrInvalidInput, p.Crop)
	}
	if _, ok := entities.ParseCropStage(string(p.Stage)); !ok {
		return fmt.Errorf("%w: stage %q", ErrInvalidInput, p.Stage)
	}
	if p.SowingDate.IsZero() {
		return fmt.Errorf("%w: sowing date required", ErrInvalidInput)
	}
	switch p.Season {
	case "", entities.SeasonKharif, entities.SeasonRabi, entities.SeasonZaid:
	default:
		return fmt.Errorf("%w: season %q", ErrInvalidInput, p.Season)
	}
	return nil
}

func (s *Store) Save(p entities.FarmerProfile) error {
	if err := Validate(p); err != nil {
		return err
	}
	if err := kv.SetJSON(s.kv, profileKey, p); err != nil {
		return fmt.Errorf("persist profile: %w", err)
	}
	return nil
}

func (s *Store) Load() (entities.FarmerProfile, error) {
	var p entities.FarmerProfile
	if err := kv.GetJSON(s.kv, profileKey, &p); err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return entities.FarmerProfile{}, ErrNotSet
		}
		return entities.FarmerProfile{}, fmt.Errorf("load profile: %w", err)
	}
	return p, nil
}
