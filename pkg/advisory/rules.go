package advisory

import (
	"strings"

	"kisan/entities"
)

type RuleCategory string

const (
	CategoryFlood       RuleCategory = "FLOOD"
	CategoryDrought     RuleCategory = "DROUGHT"
	CategoryDisease     RuleCategory = "DISEASE"
	CategoryPest        RuleCategory = "PEST"
	CategoryFinancial   RuleCategory = "FINANCIAL"
	CategoryPostHarvest RuleCategory = "POST_HARVEST"
	CategoryNutrient    RuleCategory = "NUTRIENT"
	CategoryIrrigation  RuleCategory = "IRRIGATION"
	CategoryRain        RuleCategory = "RAIN"
	CategoryGeneric     RuleCategory = "GENERIC"
)

// categoryPriority orders rule evaluation. Higher wins; ties keep table order.
var categoryPriority = map[RuleCategory]int{
	CategoryFlood:       100,
	CategoryDrought:     95,
	CategoryDisease:     90,
	CategoryPest:        85,
	CategoryFinancial:   80,
	CategoryPostHarvest: 78,
	CategoryNutrient:    75,
	CategoryIrrigation:  72,
	CategoryRain:        70,
	CategoryGeneric:     10,
}

// WeatherInput is the slice of the snapshot a condition may look at. Humidity
// arrives season-adjusted; the snapshot itself is never touched.
type WeatherInput struct {
	Temp         int
	Humidity     int
	RainForecast int
}

type Condition func(w WeatherInput, issues []string) bool

// DecisionRule is one row of the advisory table. A nil Stage applies at any
// stage. Level is the severity Analyze reports; RiskLevel is what the risks
// view reports for the same rule. The two disagree for some categories
// (e.g. financial rules alert in the signal view but only warn in the risks
// view) and that split is kept on purpose.
type DecisionRule struct {
	Crop      entities.CropType
	Stage     *entities.CropStage
	Category  RuleCategory
	Key       string
	Level     entities.SignalLevel
	RiskLevel entities.SignalLevel
	LowCost   bool
	Condition Condition
}

func stagePtr(s entities.CropStage) *entities.CropStage { return &s }

func hasIssue(issues []string, tag string) bool {
	for _, is := range issues {
		if strings.Contains(strings.ToLower(is), strings.ToLower(tag)) {
			return true
		}
	}
	return false
}

// Rules is the static advisory table. Keys double as lookup keys into the
// locale dictionary (<KEY>_REASON etc.) and must be unique.
var Rules = []DecisionRule{
	// Rice
	{
		Crop: entities.CropRice, Category: CategoryFlood, Key: "RICE_FLOOD_ALERT",
		Level: entities.LevelAlert, RiskLevel: entities.LevelAlert,
		Condition: func(w WeatherInput, _ []string) bool { return w.RainForecast > 70 },
	},
	{
		Crop: entities.CropRice, Stage: stagePtr(entities.StageFlowering),
		Category: CategoryDisease, Key: "RICE_BLAST_ALERT",
		Level: entities.LevelAlert, RiskLevel: entities.LevelAlert,
		Condition: func(w WeatherInput, _ []string) bool {
			return w.Humidity >= 90 && w.Temp >= 22 && w.Temp <= 32
		},
	},
	{
		Crop: entities.CropRice, Stage: stagePtr(entities.StageGrowth),
		Category: CategoryPest, Key: "RICE_PEST_WARNING",
		Level: entities.LevelWarning, RiskLevel: entities.LevelWarning, LowCost: true,
		Condition: func(w WeatherInput, _ []string) bool { return w.Humidity > 80 && w.Temp > 30 },
	},
	{
		Crop: entities.CropRice, Stage: stagePtr(entities.StageHarvest),
		Category: CategoryRain, Key: "RICE_RAIN_WARNING",
		Level: entities.LevelWarning, RiskLevel: entities.LevelWarning, LowCost: true,
		Condition: func(w WeatherInput, _ []string) bool { return w.RainForecast > 40 },
	},
	{
		Crop: entities.CropRice, Stage: stagePtr(entities.StageGrowth),
		Category: CategoryIrrigation, Key: "RICE_IRRIGATION_WARNING",
		Level: entities.LevelWarning, RiskLevel: entities.LevelWarning, LowCost: true,
		Condition: func(w WeatherInput, _ []string) bool { return w.Temp > 35 && w.Humidity < 40 },
	},

	// Wheat
	{
		Crop: entities.CropWheat, Stage: stagePtr(entities.StageFlowering),
		Category: CategoryDisease, Key: "WHEAT_RUST_ALERT",
		Level: entities.LevelAlert, RiskLevel: entities.LevelAlert,
		Condition: func(w WeatherInput, _ []string) bool {
			return w.Humidity > 80 && w.Temp >= 15 && w.Temp <= 25
		},
	},
	{
		Crop: entities.CropWheat, Category: CategoryDrought, Key: "WHEAT_DROUGHT_ALERT",
		Level: entities.LevelAlert, RiskLevel: entities.LevelAlert,
		Condition: func(w WeatherInput, _ []string) bool {
			return w.Temp > 38 && w.Humidity < 30 && w.RainForecast < 10
		},
	},
	{
		Crop: entities.CropWheat, Stage: stagePtr(entities.StageHarvest),
		Category: CategoryRain, Key: "WHEAT_RAIN_HARVEST_WARNING",
		Level: entities.LevelWarning, RiskLevel: entities.LevelWarning, LowCost: true,
		Condition: func(w WeatherInput, _ []string) bool { return w.RainForecast > 40 },
	},
	{
		Crop: entities.CropWheat, Stage: stagePtr(entities.StageGrowth),
		Category: CategoryPest, Key: "WHEAT_PEST_WARNING",
		Level: entities.LevelWarning, RiskLevel: entities.LevelWarning, LowCost: true,
		Condition: func(w WeatherInput, _ []string) bool {
			return w.Humidity > 70 && w.Temp >= 18 && w.Temp <= 28
		},
	},
	{
		Crop: entities.CropWheat, Stage: stagePtr(entities.StageHarvest),
		Category: CategoryPostHarvest, Key: "WHEAT_POST_HARVEST_WARNING",
		Level: entities.LevelWarning, RiskLevel: entities.LevelWarning, LowCost: true,
		Condition: func(w WeatherInput, _ []string) bool { return w.Humidity > 75 },
	},

	// Cotton
	{
		Crop: entities.CropCotton, Stage: stagePtr(entities.StageFlowering),
		Category: CategoryPest, Key: "COTTON_PEST_ALERT",
		Level: entities.LevelAlert, RiskLevel: entities.LevelAlert,
		Condition: func(w WeatherInput, issues []string) bool {
			return hasIssue(issues, "bollworm") || (w.Humidity > 75 && w.Temp > 28)
		},
	},
	{
		// staged for the boll-stress window; drought skips the stage match anyway
		Crop: entities.CropCotton, Stage: stagePtr(entities.StageFlowering),
		Category: CategoryDrought, Key: "COTTON_DROUGHT_ALERT",
		Level: entities.LevelAlert, RiskLevel: entities.LevelAlert,
		Condition: func(w WeatherInput, _ []string) bool { return w.Temp > 40 && w.RainForecast < 5 },
	},
	{
		Crop: entities.CropCotton, Stage: stagePtr(entities.StageFlowering),
		Category: CategoryRain, Key: "COTTON_RAIN_WARNING",
		Level: entities.LevelWarning, RiskLevel: entities.LevelWarning,
		Condition: func(w WeatherInput, _ []string) bool { return w.RainForecast > 50 },
	},

	// Maize
	{
		Crop: entities.CropMaize, Category: CategoryFlood, Key: "MAIZE_FLOOD_ALERT",
		Level: entities.LevelAlert, RiskLevel: entities.LevelAlert,
		Condition: func(w WeatherInput, _ []string) bool { return w.RainForecast > 65 },
	},
	{
		Crop: entities.CropMaize, Stage: stagePtr(entities.StageGrowth),
		Category: CategoryPest, Key: "MAIZE_PEST_ALERT",
		Level: entities.LevelAlert, RiskLevel: entities.LevelAlert,
		Condition: func(w WeatherInput, issues []string) bool {
			return hasIssue(issues, "armyworm") || (w.Temp >= 25 && w.Humidity > 70)
		},
	},
	{
		Crop: entities.CropMaize, Stage: stagePtr(entities.StageGrowth),
		Category: CategoryNutrient, Key: "MAIZE_NUTRIENT_WARNING",
		Level: entities.LevelWarning, RiskLevel: entities.LevelWarning, LowCost: true,
		Condition: func(_ WeatherInput, issues []string) bool {
			return hasIssue(issues, "nitrogen deficiency") || hasIssue(issues, "purple stems")
		},
	},

	// Mustard
	{
		Crop: entities.CropMustard, Stage: stagePtr(entities.StageFlowering),
		Category: CategoryPest, Key: "MUSTARD_PEST_WARNING",
		Level: entities.LevelWarning, RiskLevel: entities.LevelWarning, LowCost: true,
		Condition: func(w WeatherInput, _ []string) bool { return w.Humidity > 60 && w.Temp < 25 },
	},
	{
		Crop: entities.CropMustard, Stage: stagePtr(entities.StageFlowering),
		Category: CategoryRain, Key: "MUSTARD_RAIN_ALERT",
		Level: entities.LevelAlert, RiskLevel: entities.LevelAlert,
		Condition: func(w WeatherInput, _ []string) bool { return w.RainForecast > 45 },
	},
	{
		Crop: entities.CropMustard, Stage: stagePtr(entities.StageHarvest),
		Category: CategoryPostHarvest, Key: "MUSTARD_POST_HARVEST_WARNING",
		Level: entities.LevelWarning, RiskLevel: entities.LevelWarning, LowCost: true,
		Condition: func(w WeatherInput, _ []string) bool { return w.Humidity > 70 },
	},
}
