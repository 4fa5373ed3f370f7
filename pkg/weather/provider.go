package weather

import (
	"context"
	"strings"

	"kisan/entities"
)

// Provider returns a snapshot for a free-text district name.
type Provider interface {
	Fetch(ctx context.Context, location string) (entities.WeatherSnapshot, error)
}

// RegionNote is a one-line characterization of the farmer's belt, keyed on
// district keywords only.
func RegionNote(location string) string {
	loc := strings.ToLower(location)
	switch {
	case strings.Contains(loc, "ludhiana") || strings.Contains(loc, "punjab"):
		return "High Yield Zone - Continental Climate"
	case strings.Contains(loc, "nashik") || strings.Contains(loc, "maharashtra"):
		return "Hilly Terrain - High Humidity Zone"
	case strings.Contains(loc, "nellore") || strings.Contains(loc, "andhra") || strings.Contains(loc, "coastal"):
		return "Coastal Belt - High Rainfall Risk"
	case strings.Contains(loc, "bhatinda") || strings.Contains(loc, "haryana"):
		return "Arid Zone - High Temperature Risk"
	case strings.Contains(loc, "kerala"):
		return "Heavy Monsoon Belt"
	}
	return "Standard Agricultural Zone"
}
