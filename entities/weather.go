package entities

type ForecastRisk string

const (
	RiskNormal     ForecastRisk = "NORMAL"
	RiskRainLikely ForecastRisk = "RAIN_LIKELY"
	RiskHeat       ForecastRisk = "HEAT_RISK"
	RiskDry        ForecastRisk = "DRY"
)

type ForecastDay struct {
	Day       string       `json:"day"`
	Temp      int          `json:"temp"`
	Condition string       `json:"condition"`
	Risk      ForecastRisk `json:"risk"`
}

// WeatherSnapshot is an external input; the engine never mutates it.
type WeatherSnapshot struct {
	Temp         int           `json:"temp"`
	Humidity     int           `json:"humidity"`
	RainForecast int           `json:"rain_forecast"`
	Description  string        `json:"description"`
	Forecast     []ForecastDay `json:"forecast"`
}
