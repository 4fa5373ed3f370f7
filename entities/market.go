package entities

type PriceTrend string

const (
	TrendUp     PriceTrend = "UP"
	TrendDown   PriceTrend = "DOWN"
	TrendStable PriceTrend = "STABLE"
)

type MarketPrice struct {
	Crop        CropType   `json:"crop"`
	AvgPrice    int        `json:"avg_price"`
	Trend       PriceTrend `json:"trend"`
	Unit        string     `json:"unit"`
	StateReport string     `json:"state_report,omitempty"`
}

type Transaction struct {
	ID        string   `json:"id"`
	Type      string   `json:"type"` // BUY|SELL
	Crop      CropType `json:"crop"`
	Quantity  float64  `json:"quantity"`
	Price     float64  `json:"price"`
	Total     float64  `json:"total"`
	Timestamp int64    `json:"timestamp"`
	Status    string   `json:"status"` // PENDING|COMPLETED
}

// ScanReport is the structured verdict from the photo-scan collaborator.
type ScanReport struct {
	Diagnosis  string   `json:"diagnosis"`
	Confidence string   `json:"confidence"`
	Urgency    string   `json:"urgency"` // LOW|MEDIUM|HIGH|CRITICAL
	ActionPlan []string `json:"action_plan"`
	Prevention string   `json:"prevention"`
}
