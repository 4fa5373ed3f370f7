package advisory

import (
	"errors"
	"strings"
	"testing"
	"time"

	"kisan/entities"
	"kisan/pkg/locale"
)

type stubHistory struct {
	records []entities.AlertRecord
	err     error
}

func (s *stubHistory) All() ([]entities.AlertRecord, error) { return s.records, s.err }

var fixedNow = time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

func newTestEngine(h *stubHistory) *Engine {
	if h == nil {
		h = &stubHistory{}
	}
	e := NewEngine(locale.Default(), h)
	e.now = func() time.Time { return fixedNow }
	return e
}

func TestAnalyzeDefaultsToSafe(t *testing.T) {
	e := newTestEngine(nil)
	p := entities.FarmerProfile{Crop: entities.CropMaize, Stage: entities.StageGrowth}
	w := entities.WeatherSnapshot{Temp: 20, Humidity: 50, RainForecast: 0}

	out := e.Analyze(p, w, "en")
	if out.Level != entities.LevelSafe {
		t.Fatalf("level = %q, want SAFE", out.Level)
	}
	if out.RuleKey != "" {
		t.Errorf("rule key = %q, want empty", out.RuleKey)
	}
	if out.Confidence != entities.ConfidenceHigh {
		t.Errorf("confidence = %q, want High", out.Confidence)
	}
	if !out.IsLowCost {
		t.Error("safe output should be low cost")
	}
	if out.Reason == "" || out.Action == "" {
		t.Error("safe output must still carry reason and action text")
	}
}

func TestAnalyzeRiceBlast(t *testing.T) {
	e := newTestEngine(nil)
	p := entities.FarmerProfile{
		Crop:   entities.CropRice,
		Stage:  entities.StageFlowering,
		Season: entities.SeasonKharif,
	}
	w := entities.WeatherSnapshot{Temp: 28, Humidity: 95, RainForecast: 10}

	out := e.Analyze(p, w, "en")
	if out.RuleKey != "RICE_BLAST_ALERT" {
		t.Fatalf("rule key = %q, want RICE_BLAST_ALERT", out.RuleKey)
	}
	if out.Level != entities.LevelAlert {
		t.Errorf("level = %q, want ALERT", out.Level)
	}
	if out.Confidence != entities.ConfidenceHigh {
		t.Errorf("confidence = %q, want High (humidity 95)", out.Confidence)
	}
	if !strings.Contains(out.TimeSensitivity, "2-3") {
		t.Errorf("time sensitivity = %q, want the 2-3 day window", out.TimeSensitivity)
	}
	if !strings.Contains(out.Reason, "95") || !strings.Contains(out.Reason, "28") {
		t.Errorf("reason should carry raw humidity and temp, got %q", out.Reason)
	}
}

func TestAnalyzeFloodOutranksRain(t *testing.T) {
	e := newTestEngine(nil)
	p := entities.FarmerProfile{Crop: entities.CropRice, Stage: entities.StageHarvest}
	w := entities.WeatherSnapshot{Temp: 28, Humidity: 60, RainForecast: 80}

	out := e.Analyze(p, w, "en")
	if out.RuleKey != "RICE_FLOOD_ALERT" {
		t.Fatalf("rule key = %q, want RICE_FLOOD_ALERT over the rain warning", out.RuleKey)
	}
	if !strings.Contains(out.TimeSensitivity, "12-24") {
		t.Errorf("time sensitivity = %q, want the 12-24 hour window", out.TimeSensitivity)
	}
}

func TestAnalyzeSuppressesDismissedRule(t *testing.T) {
	p := entities.FarmerProfile{Crop: entities.CropRice, Stage: entities.StageHarvest}
	w := entities.WeatherSnapshot{Temp: 28, Humidity: 60, RainForecast: 80}

	cases := []struct {
		name    string
		age     time.Duration
		status  entities.ActionStatus
		wantKey string
	}{
		{"dismissed 1h ago", time.Hour, entities.ActionNotTaken, "RICE_RAIN_WARNING"},
		{"dismissed 25h ago", 25 * time.Hour, entities.ActionNotTaken, "RICE_FLOOD_ALERT"},
		{"taken 1h ago", time.Hour, entities.ActionTaken, "RICE_FLOOD_ALERT"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := &stubHistory{records: []entities.AlertRecord{{
				RuleOutput:  entities.RuleOutput{RuleKey: "RICE_FLOOD_ALERT", Level: entities.LevelAlert},
				ID:          "a1",
				Crop:        entities.CropRice,
				Timestamp:   fixedNow.Add(-tc.age).UnixMilli(),
				ActionTaken: tc.status,
			}}}
			out := newTestEngine(h).Analyze(p, w, "en")
			if out.RuleKey != tc.wantKey {
				t.Errorf("rule key = %q, want %q", out.RuleKey, tc.wantKey)
			}
		})
	}
}

func TestAnalyzeObservedIssuesFallback(t *testing.T) {
	e := newTestEngine(nil)
	p := entities.FarmerProfile{
		Crop:           entities.CropWheat,
		Stage:          entities.StageGrowth,
		ObservedIssues: []string{"Yellowing leaves"},
	}
	w := entities.WeatherSnapshot{Temp: 25, Humidity: 50, RainForecast: 0}

	out := e.Analyze(p, w, "en")
	if out.RuleKey != "OBSERVED_ISSUES" {
		t.Fatalf("rule key = %q, want OBSERVED_ISSUES", out.RuleKey)
	}
	if out.Level != entities.LevelWarning {
		t.Errorf("level = %q, want WARNING", out.Level)
	}
	if !strings.Contains(out.Reason, "Yellowing leaves") {
		t.Errorf("reason should echo the reported issue, got %q", out.Reason)
	}
	if out.Confidence != entities.ConfidenceMedium {
		t.Errorf("confidence = %q, want Medium", out.Confidence)
	}
}

func TestAnalyzeFinancialFallbackAtCashStages(t *testing.T) {
	e := newTestEngine(nil)
	w := entities.WeatherSnapshot{Temp: 25, Humidity: 50, RainForecast: 0}

	for _, stage := range []entities.CropStage{entities.StageSowing, entities.StageHarvest} {
		p := entities.FarmerProfile{Crop: entities.CropWheat, Stage: stage}
		out := e.Analyze(p, w, "en")
		if out.RuleKey != "FINANCIAL_ALERT" {
			t.Errorf("stage %s: rule key = %q, want FINANCIAL_ALERT", stage, out.RuleKey)
		}
		if out.Level != entities.LevelWarning {
			t.Errorf("stage %s: level = %q, want WARNING", stage, out.Level)
		}
	}

	// outside the cash-sensitive windows the same weather is just safe
	p := entities.FarmerProfile{Crop: entities.CropWheat, Stage: entities.StageGrowth}
	if out := e.Analyze(p, w, "en"); out.Level != entities.LevelSafe {
		t.Errorf("growth stage: level = %q, want SAFE", out.Level)
	}
}

func TestAnalyzeSeasonAdjustsHumidity(t *testing.T) {
	e := newTestEngine(nil)
	w := entities.WeatherSnapshot{Temp: 28, Humidity: 86, RainForecast: 10}

	kharif := entities.FarmerProfile{Crop: entities.CropRice, Stage: entities.StageFlowering, Season: entities.SeasonKharif}
	out := e.Analyze(kharif, w, "en")
	if out.RuleKey != "RICE_BLAST_ALERT" {
		t.Fatalf("kharif: rule key = %q, want RICE_BLAST_ALERT (86+5 crosses 90)", out.RuleKey)
	}
	// templates still show the raw reading
	if !strings.Contains(out.Reason, "86") {
		t.Errorf("kharif: reason should carry raw humidity 86, got %q", out.Reason)
	}

	rabi := entities.FarmerProfile{Crop: entities.CropRice, Stage: entities.StageFlowering, Season: entities.SeasonRabi}
	w.Humidity = 93
	if out := e.Analyze(rabi, w, "en"); out.Level != entities.LevelSafe {
		t.Errorf("rabi: level = %q, want SAFE (93-5 stays under 90)", out.Level)
	}
}

func TestAnalyzeStageGate(t *testing.T) {
	e := newTestEngine(nil)

	// blast conditions at sowing: the flowering-only rule must not fire
	p := entities.FarmerProfile{Crop: entities.CropRice, Stage: entities.StageSowing}
	w := entities.WeatherSnapshot{Temp: 28, Humidity: 95, RainForecast: 0}
	if out := e.Analyze(p, w, "en"); out.RuleKey != "FINANCIAL_ALERT" {
		t.Errorf("rule key = %q, want FINANCIAL_ALERT (blast gated to flowering)", out.RuleKey)
	}

	// drought ignores the gate
	p = entities.FarmerProfile{Crop: entities.CropCotton, Stage: entities.StageHarvest}
	w = entities.WeatherSnapshot{Temp: 42, Humidity: 20, RainForecast: 0}
	if out := e.Analyze(p, w, "en"); out.RuleKey != "COTTON_DROUGHT_ALERT" {
		t.Errorf("rule key = %q, want COTTON_DROUGHT_ALERT at any stage", out.RuleKey)
	}
}

func TestAnalyzeSurvivesHistoryFailure(t *testing.T) {
	h := &stubHistory{err: errors.New("disk gone")}
	e := newTestEngine(h)
	p := entities.FarmerProfile{Crop: entities.CropRice, Stage: entities.StageHarvest}
	w := entities.WeatherSnapshot{Temp: 28, Humidity: 60, RainForecast: 80}

	out := e.Analyze(p, w, "en")
	if out.RuleKey != "RICE_FLOOD_ALERT" {
		t.Errorf("rule key = %q, want RICE_FLOOD_ALERT with suppression skipped", out.RuleKey)
	}
}

func TestAnalyzeLocalized(t *testing.T) {
	e := newTestEngine(nil)
	p := entities.FarmerProfile{Crop: entities.CropRice, Stage: entities.StageFlowering}
	w := entities.WeatherSnapshot{Temp: 28, Humidity: 95, RainForecast: 10}

	out := e.Analyze(p, w, "hi")
	if out.Urgency != "तुरंत" {
		t.Errorf("hi urgency = %q, want तुरंत", out.Urgency)
	}
	if !strings.Contains(out.Reason, "95") {
		t.Errorf("hi reason should carry the humidity value, got %q", out.Reason)
	}
}

func TestAnalyzeFallsBackToEnglishStructure(t *testing.T) {
	// wheat rust has no telugu templates; severity must hold while the text
	// degrades to the generic set of the requested locale
	e := newTestEngine(nil)
	p := entities.FarmerProfile{Crop: entities.CropWheat, Stage: entities.StageFlowering}
	w := entities.WeatherSnapshot{Temp: 20, Humidity: 85, RainForecast: 0}

	out := e.Analyze(p, w, "te")
	if out.RuleKey != "WHEAT_RUST_ALERT" {
		t.Fatalf("rule key = %q, want WHEAT_RUST_ALERT", out.RuleKey)
	}
	if out.Level != entities.LevelAlert {
		t.Errorf("level = %q, want ALERT regardless of locale coverage", out.Level)
	}
	if out.Urgency != "తక్షణమే" {
		t.Errorf("urgency = %q, want the telugu immediate label", out.Urgency)
	}
	if out.Reason == "" {
		t.Error("reason must not be empty when rule templates are missing")
	}
}

func TestAnalyzeUnknownLocaleUsesEnglish(t *testing.T) {
	e := newTestEngine(nil)
	p := entities.FarmerProfile{Crop: entities.CropMaize, Stage: entities.StageGrowth}
	w := entities.WeatherSnapshot{Temp: 20, Humidity: 50}

	out := e.Analyze(p, w, "fr")
	if out.Level != entities.LevelSafe || out.Reason == "" {
		t.Errorf("unknown locale: got level %q reason %q, want SAFE with english text", out.Level, out.Reason)
	}
}
