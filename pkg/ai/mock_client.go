package ai

import (
	"context"
	"strings"

	"kisan/entities"
)

type mockClient struct{}

func NewMock() Client { return &mockClient{} }

func (m *mockClient) Chat(_ context.Context, prompt, imageBase64 string) (string, error) {
	p := strings.ToLower(prompt)
	switch {
	case imageBase64 != "":
		return "I can see the photo. For a firm diagnosis run the scan tool; meanwhile check 4-5 plants at different spots to see how far the symptom has spread.", nil
	case strings.Contains(p, "yellow"):
		return "Yellowing that starts on lower leaves in a V-shape usually means nitrogen shortage; speckled yellowing on new leaves points to a pest or micronutrient issue. Top-dress urea only after ruling out waterlogging.", nil
	case strings.Contains(p, "price") || strings.Contains(p, "mandi") || strings.Contains(p, "sell"):
		return "Check your mandi's procurement dates before selling. Grain below 14% moisture avoids deductions, and MSP centers beat private traders in most weeks of the arrival season.", nil
	case strings.Contains(p, "rain") || strings.Contains(p, "weather"):
		return "Before forecast rain: do not irrigate or spray, clear the drainage channels, and cover any produce lying in the open.", nil
	}
	return "Tell me your crop, its stage and what you observe in the field, and I will suggest a low-cost next step.", nil
}

func (m *mockClient) Scan(_ context.Context, _ string) (entities.ScanReport, error) {
	return entities.ScanReport{
		Diagnosis:  "Leaf spotting consistent with early fungal infection",
		Confidence: "72%",
		Urgency:    "MEDIUM",
		ActionPlan: []string{
			"Remove and burn visibly infected leaves",
			"Avoid overhead irrigation for a week",
			"Spray a copper-based fungicide in the evening",
		},
		Prevention: "Use certified seed and rotate crops; avoid dense sowing in humid weeks.",
	}, nil
}
