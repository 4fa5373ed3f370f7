package weather

import (
	"context"
	"math/rand"
	"strings"

	"kisan/entities"
)

var forecastDays = []string{"Today", "Tomorrow", "Day 3", "Day 4", "Day 5"}

// mockProvider simulates district-level micro-climates. Seeded, so tests and
// demos can pin the sequence.
type mockProvider struct {
	rng *rand.Rand
}

func NewMock(seed int64) Provider {
	return &mockProvider{rng: rand.New(rand.NewSource(seed))}
}

func (m *mockProvider) Fetch(_ context.Context, location string) (entities.WeatherSnapshot, error) {
	loc := strings.ToLower(location)

	temp := 28
	humidity := 65
	rainForecast := 0
	description := "Clear Skies"

	switch {
	case strings.Contains(loc, "ludhiana") || strings.Contains(loc, "punjab") ||
		strings.Contains(loc, "haryana") || strings.Contains(loc, "bhatinda"):
		temp = 20 + m.rng.Intn(18)
		humidity = 25 + m.rng.Intn(35)
	case strings.Contains(loc, "nashik") || strings.Contains(loc, "maharashtra") || strings.Contains(loc, "pune"):
		temp = 24 + m.rng.Intn(10)
		humidity = 35 + m.rng.Intn(25)
	case strings.Contains(loc, "nellore") || strings.Contains(loc, "andhra") ||
		strings.Contains(loc, "kerala") || strings.Contains(loc, "coastal"):
		temp = 27 + m.rng.Intn(6)
		humidity = 65 + m.rng.Intn(25)
	}

	switch chance := m.rng.Float64(); {
	case chance > 0.85:
		rainForecast = 35 + m.rng.Intn(40)
		description = "Storm Warning"
	case chance > 0.7:
		rainForecast = 5 + m.rng.Intn(10)
		description = "Light Showers"
	case chance < 0.1:
		humidity = 92
		description = "Very Humid"
	}

	return entities.WeatherSnapshot{
		Temp:         temp,
		Humidity:     humidity,
		RainForecast: rainForecast,
		Description:  description,
		Forecast:     m.forecast(temp),
	}, nil
}

func (m *mockProvider) forecast(baseTemp int) []entities.ForecastDay {
	out := make([]entities.ForecastDay, 0, len(forecastDays))
	for _, day := range forecastDays {
		tempVar := m.rng.Intn(4) - 2
		risk := entities.RiskNormal
		condition := "Clear"
		switch {
		case m.rng.Float64() > 0.7:
			risk = entities.RiskRainLikely
			condition = "Cloudy / Rain"
		case baseTemp+tempVar > 38:
			risk = entities.RiskHeat
			condition = "Extreme Heat"
		case m.rng.Float64() < 0.2:
			risk = entities.RiskDry
			condition = "Dry Wind"
		}
		out = append(out, entities.ForecastDay{
			Day:       day,
			Temp:      baseTemp + tempVar,
			Condition: condition,
			Risk:      risk,
		})
	}
	return out
}
