package entities

type Confidence string

const (
	ConfidenceHigh   Confidence = "High"
	ConfidenceMedium Confidence = "Medium"
)

type ActionStatus string

const (
	ActionPending  ActionStatus = "PENDING"
	ActionTaken    ActionStatus = "TAKEN"
	ActionNotTaken ActionStatus = "NOT_TAKEN"
)

// RuleOutput is the advisory signal handed to the caller. RuleKey is empty for
// the generic SAFE default.
type RuleOutput struct {
	Level           SignalLevel `json:"level"`
	Reason          string      `json:"reason"`
	Action          string      `json:"action"`
	Urgency         string      `json:"urgency"`
	Impact          string      `json:"impact,omitempty"`
	Consequence     string      `json:"consequence,omitempty"`
	TimeSensitivity string      `json:"time_sensitivity,omitempty"`
	Confidence      Confidence  `json:"confidence"`
	IsLowCost       bool        `json:"is_low_cost"`
	RuleKey         string      `json:"rule_key,omitempty"`
}

// AlertRecord is a RuleOutput frozen into history. Timestamp is epoch millis.
type AlertRecord struct {
	RuleOutput
	ID            string       `json:"id"`
	Crop          CropType     `json:"crop"`
	Stage         CropStage    `json:"stage"`
	Location      string       `json:"location"`
	Timestamp     int64        `json:"timestamp"`
	FeedbackGiven bool         `json:"feedback_given,omitempty"`
	ActionTaken   ActionStatus `json:"action_taken,omitempty"`
}
