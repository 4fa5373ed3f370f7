package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"kisan/config"
	"kisan/database"
	"kisan/router"

	"kisan/pkg/advisory"
	advisoryCtrlImp "kisan/pkg/advisory/controllerImp"
	"kisan/pkg/ai"
	aiCtrlImp "kisan/pkg/ai/controllerImp"
	healthCtrlImp "kisan/pkg/health/controllerImp"
	"kisan/pkg/history"
	historyCtrlImp "kisan/pkg/history/controllerImp"
	"kisan/pkg/kv"
	"kisan/pkg/locale"
	"kisan/pkg/market"
	marketCtrlImp "kisan/pkg/market/controllerImp"
	"kisan/pkg/profile"
	profileCtrlImp "kisan/pkg/profile/controllerImp"
	"kisan/pkg/weather"
	weatherCtrlImp "kisan/pkg/weather/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + the key-value layer everything persists through
	db := database.OpenSQLite(cfg.DBPath)
	store := kv.NewSQLite(db)

	// 3) Locale dictionary (+ optional workbook overrides)
	dict := locale.Default()
	if cfg.LocaleXLSX != "" {
		if err := dict.LoadXLSX(cfg.LocaleXLSX); err != nil {
			log.Printf("[locale] override warn: %v", err)
		}
	}
	if err := dict.Validate(); err != nil {
		log.Fatalf("locale: %v", err)
	}

	// 4) Stage durations override
	if cfg.StageCSV != "" {
		if err := advisory.LoadDurationsCSV(cfg.StageCSV); err != nil {
			log.Printf("[rules] stage csv warn: %v", err)
		}
	}

	// 5) Core wiring
	histStore := history.New(store)
	engine := advisory.NewEngine(dict, histStore)
	advSvc := advisory.NewService(engine, histStore)
	profStore := profile.New(store)

	seed := cfg.WeatherSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	weatherSvc := weather.NewService(weather.NewMock(seed), store)
	marketSvc := market.NewService(seed, store)

	// 6) LLM (mock fallback)
	var llm ai.Client
	if cfg.LLMEndpoint != "" && cfg.LLMAPIKey != "" {
		llm = ai.NewOpenAI(cfg.LLMEndpoint, cfg.LLMAPIKey, cfg.LLMModel)
	} else {
		llm = ai.NewMock()
	}

	// 7) Controllers
	signalCtrl := advisoryCtrlImp.New(advSvc, profStore, weatherSvc, cfg.DefaultLang)
	profCtrl := profileCtrlImp.New(profStore)
	histCtrl := historyCtrlImp.New(histStore)
	weatherCtrl := weatherCtrlImp.New(weatherSvc)
	marketCtrl := marketCtrlImp.New(marketSvc)
	aiCtrl := aiCtrlImp.New(llm)
	healthCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 8) Echo + routes
	e := echo.New()
	e.Use(echoMiddleware.Recover())
	r := router.New(e, signalCtrl, profCtrl, histCtrl, weatherCtrl, marketCtrl, aiCtrl, healthCtrl)

	// 9) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
