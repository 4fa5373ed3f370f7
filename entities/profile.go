package entities

import "time"

// FarmerProfile is an immutable snapshot passed into the engine per evaluation.
// Location is a free-text district name, only ever string-matched.
type FarmerProfile struct {
	Crop           CropType  `json:"crop"`
	Stage          CropStage `json:"stage"`
	Location       string    `json:"location"`
	ObservedIssues []string  `json:"observed_issues"`
	SowingDate     time.Time `json:"sowing_date"`
	Season         Season    `json:"season,omitempty"`
}
