package profile

import (
	"errors"
	"testing"
	"time"

	"kisan/entities"
	"kisan/pkg/kv"
)

func validProfile() entities.FarmerProfile {
	return entities.FarmerProfile{
		Crop:       entities.CropRice,
		Stage:      entities.StageFlowering,
		Location:   "Nellore",
		SowingDate: time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		Season:     entities.SeasonKharif,
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*entities.FarmerProfile)
		ok     bool
	}{
		{"valid", func(*entities.FarmerProfile) {}, true},
		{"no season", func(p *entities.FarmerProfile) { p.Season = "" }, true},
		{"unknown crop", func(p *entities.FarmerProfile) { p.Crop = "Banana" }, false},
		{"unknown stage", func(p *entities.FarmerProfile) { p.Stage = "Ripening" }, false},
		{"missing sowing date", func(p *entities.FarmerProfile) { p.SowingDate = time.Time{} }, false},
		{"unknown season", func(p *entities.FarmerProfile) { p.Season = "Monsoon" }, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validProfile()
			tc.mutate(&p)
			err := Validate(p)
			if tc.ok && err != nil {
				t.Errorf("got %v, want valid", err)
			}
			if !tc.ok {
				if err == nil {
					t.Fatal("want validation error")
				}
				if !errors.Is(err, ErrInvalidInput) {
					t.Errorf("got %v, want ErrInvalidInput", err)
				}
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	s := New(kv.NewMemory())
	want := validProfile()
	if err := s.Save(want); err != nil {
		t.Fatal(err)
	}
	got, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if got.Crop != want.Crop || got.Stage != want.Stage || got.Location != want.Location {
		t.Errorf("got %+v, want %+v", got, want)
	}
	if !got.SowingDate.Equal(want.SowingDate) {
		t.Errorf("sowing date = %v, want %v", got.SowingDate, want.SowingDate)
	}
}

func TestSaveRejectsInvalid(t *testing.T) {
	s := New(kv.NewMemory())
	p := validProfile()
	p.Crop = "Banana"
	if err := s.Save(p); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("got %v, want ErrInvalidInput", err)
	}
	if _, err := s.Load(); !errors.Is(err, ErrNotSet) {
		t.Errorf("got %v, want nothing persisted", err)
	}
}

func TestLoadBeforeSetup(t *testing.T) {
	if _, err := New(kv.NewMemory()).Load(); !errors.Is(err, ErrNotSet) {
		t.Errorf("got %v, want ErrNotSet", err)
	}
}
