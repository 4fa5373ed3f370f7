package advisory

import (
	"testing"
	"time"

	"kisan/entities"
)

func TestActiveRisksCappedAndOrdered(t *testing.T) {
	e := newTestEngine(nil)
	p := entities.FarmerProfile{Crop: entities.CropRice, Stage: entities.StageHarvest}
	// heavy rain, hot and humid: flood, blast, pest and rain all trigger
	w := entities.WeatherSnapshot{Temp: 31, Humidity: 95, RainForecast: 80}

	risks := e.ActiveRisks(p, w, "en")
	if len(risks) != 3 {
		t.Fatalf("got %d risks, want cap of 3", len(risks))
	}
	for i := 1; i < len(risks); i++ {
		if levelRank[risks[i].Level] > levelRank[risks[i-1].Level] {
			t.Errorf("risks[%d] %q outranks risks[%d] %q", i, risks[i].Level, i-1, risks[i-1].Level)
		}
	}
	// ties keep table order: flood first, blast second
	if risks[0].RuleKey != "RICE_FLOOD_ALERT" || risks[1].RuleKey != "RICE_BLAST_ALERT" {
		t.Errorf("top risks = %q, %q; want flood then blast", risks[0].RuleKey, risks[1].RuleKey)
	}
	for _, r := range risks {
		if r.Confidence != entities.ConfidenceHigh {
			t.Errorf("%s confidence = %q, want High in the risks view", r.RuleKey, r.Confidence)
		}
	}
}

func TestActiveRisksIgnoreStage(t *testing.T) {
	// blast is gated to flowering in the signal view; the risks view lists it
	// at any stage
	e := newTestEngine(nil)
	p := entities.FarmerProfile{Crop: entities.CropRice, Stage: entities.StageSowing}
	w := entities.WeatherSnapshot{Temp: 28, Humidity: 95, RainForecast: 0}

	risks := e.ActiveRisks(p, w, "en")
	if !containsKey(risks, "RICE_BLAST_ALERT") {
		t.Errorf("risks = %v, want RICE_BLAST_ALERT listed despite the sowing stage", keysOf(risks))
	}
}

func TestActiveRisksIgnoreSuppression(t *testing.T) {
	h := &stubHistory{records: []entities.AlertRecord{{
		RuleOutput:  entities.RuleOutput{RuleKey: "RICE_FLOOD_ALERT", Level: entities.LevelAlert},
		ID:          "a1",
		Crop:        entities.CropRice,
		Timestamp:   fixedNow.Add(-time.Hour).UnixMilli(),
		ActionTaken: entities.ActionNotTaken,
	}}}
	e := newTestEngine(h)
	p := entities.FarmerProfile{Crop: entities.CropRice, Stage: entities.StageHarvest}
	w := entities.WeatherSnapshot{Temp: 28, Humidity: 60, RainForecast: 80}

	if risks := e.ActiveRisks(p, w, "en"); !containsKey(risks, "RICE_FLOOD_ALERT") {
		t.Errorf("risks = %v, want the dismissed flood rule still listed", keysOf(risks))
	}
}

func TestActiveRisksObservedIssueEntry(t *testing.T) {
	e := newTestEngine(nil)
	p := entities.FarmerProfile{
		Crop:           entities.CropMaize,
		Stage:          entities.StageGrowth,
		ObservedIssues: []string{"Yellowing leaves"},
	}
	w := entities.WeatherSnapshot{Temp: 20, Humidity: 50, RainForecast: 0}

	risks := e.ActiveRisks(p, w, "en")
	if len(risks) != 1 {
		t.Fatalf("got %d risks, want only the observed-issue entry: %v", len(risks), keysOf(risks))
	}
	r := risks[0]
	if r.RuleKey != "OBSERVED_ISSUES" || r.Level != entities.LevelWarning {
		t.Errorf("got %q/%q, want OBSERVED_ISSUES at WARNING", r.RuleKey, r.Level)
	}
	if r.Confidence != entities.ConfidenceMedium {
		t.Errorf("confidence = %q, want Medium for farmer-reported symptoms", r.Confidence)
	}
}

func TestActiveRisksEmptyWhenCalm(t *testing.T) {
	e := newTestEngine(nil)
	p := entities.FarmerProfile{Crop: entities.CropMaize, Stage: entities.StageGrowth}
	w := entities.WeatherSnapshot{Temp: 20, Humidity: 50, RainForecast: 0}

	if risks := e.ActiveRisks(p, w, "en"); len(risks) != 0 {
		t.Errorf("got %v, want no risks in calm weather", keysOf(risks))
	}
}

func keysOf(outs []entities.RuleOutput) []string {
	keys := make([]string, len(outs))
	for i, o := range outs {
		keys[i] = o.RuleKey
	}
	return keys
}
