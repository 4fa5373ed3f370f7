package entities

// CropType values match the labels farmers pick in the setup flow.
type CropType string

const (
	CropRice    CropType = "Rice"
	CropWheat   CropType = "Wheat"
	CropCotton  CropType = "Cotton"
	CropMaize   CropType = "Maize"
	CropMustard CropType = "Mustard"
)

func ParseCropType(s string) (CropType, bool) {
	switch CropType(s) {
	case CropRice, CropWheat, CropCotton, CropMaize, CropMustard:
		return CropType(s), true
	}
	return "", false
}

type CropStage string

const (
	StageSowing    CropStage = "Sowing"
	StageGrowth    CropStage = "Vegetative Growth"
	StageFlowering CropStage = "Flowering"
	StageHarvest   CropStage = "Harvesting"
)

// StageOrder is the fixed progression every crop follows.
var StageOrder = []CropStage{StageSowing, StageGrowth, StageFlowering, StageHarvest}

func ParseCropStage(s string) (CropStage, bool) {
	switch CropStage(s) {
	case StageSowing, StageGrowth, StageFlowering, StageHarvest:
		return CropStage(s), true
	}
	return "", false
}

type Season string

const (
	SeasonKharif Season = "Kharif"
	SeasonRabi   Season = "Rabi"
	SeasonZaid   Season = "Zaid"
)

type SignalLevel string

const (
	LevelSafe    SignalLevel = "SAFE"
	LevelWarning SignalLevel = "WARNING"
	LevelAlert   SignalLevel = "ALERT"
)

// StageProgress is derived from sowing date on demand, never persisted.
type StageProgress struct {
	CurrentStage  CropStage  `json:"current_stage"`
	Percent       float64    `json:"percent"`
	DaysInCurrent int        `json:"days_in_current"`
	NextStage     *CropStage `json:"next_stage"`
	DaysToNext    int        `json:"days_to_next"`
}
