package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port        string
	Timezone    string
	DBPath      string
	DefaultLang string
	LLMEndpoint string
	LLMAPIKey   string
	LLMModel    string
	LocaleXLSX  string
	StageCSV    string
	WeatherSeed int64
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	seed, err := strconv.ParseInt(get("WEATHER_SEED", "0"), 10, 64)
	if err != nil {
		seed = 0
	}
	cfg := AppConfig{
		Port:        get("PORT", "8080"),
		Timezone:    get("TZ", "Asia/Kolkata"),
		DBPath:      get("DB_PATH", "kisan.db"),
		DefaultLang: get("DEFAULT_LANG", "en"),
		LLMEndpoint: get("LLM_ENDPOINT", ""),
		LLMAPIKey:   get("LLM_API_KEY", ""),
		LLMModel:    get("LLM_MODEL", "gpt-4o-mini"),
		LocaleXLSX:  get("LOCALE_XLSX", ""),
		StageCSV:    get("STAGE_CSV", ""),
		WeatherSeed: seed,
	}
	log.Printf("[cfg] %+v", cfg)
	return cfg
}
