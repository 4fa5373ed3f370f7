package advisory

import (
	"log"
	"sort"
	"strings"
	"time"

	"kisan/entities"
	"kisan/pkg/locale"
)

// dismissCooldown is how long a dismissed rule stays silenced.
const dismissCooldown = 24 * time.Hour

// historyReader is the slice of the history store the engine needs. Read
// failures are treated as an empty history; the decision must still come out.
type historyReader interface {
	All() ([]entities.AlertRecord, error)
}

// Engine evaluates the rule table against a profile and weather snapshot and
// renders the single highest-priority advisory.
type Engine struct {
	rules   []DecisionRule
	dict    *locale.Dictionary
	history historyReader
	now     func() time.Time
}

func NewEngine(dict *locale.Dictionary, history historyReader) *Engine {
	return &Engine{rules: Rules, dict: dict, history: history, now: time.Now}
}

// Analyze is deterministic and total: it always returns an output, defaulting
// to SAFE. The input snapshot is never mutated; the seasonal humidity
// adjustment applies to rule evaluation only.
func (e *Engine) Analyze(p entities.FarmerProfile, w entities.WeatherSnapshot, lang string) entities.RuleOutput {
	t := e.dict.Table(lang)
	now := e.now()
	dismissed := e.recentlyDismissed(now)

	adj := 0
	switch p.Season {
	case entities.SeasonKharif:
		adj = 5
	case entities.SeasonRabi:
		adj = -5
	}
	in := WeatherInput{Temp: w.Temp, Humidity: w.Humidity + adj, RainForecast: w.RainForecast}

	matching := make([]DecisionRule, 0, len(e.rules))
	for _, r := range e.rules {
		if r.Crop == p.Crop {
			matching = append(matching, r)
		}
	}
	sort.SliceStable(matching, func(i, j int) bool {
		return categoryPriority[matching[i].Category] > categoryPriority[matching[j].Category]
	})

	vars := locale.Vars{Issues: p.ObservedIssues, Temp: w.Temp, Humidity: w.Humidity, Stage: p.Stage}

	for _, r := range matching {
		if dismissed[r.Key] {
			continue
		}
		if !r.Condition(in, p.ObservedIssues) {
			continue
		}
		// Flood and drought are global hazards and fire regardless of stage.
		stageMatch := r.Stage == nil || *r.Stage == p.Stage
		if !stageMatch && r.Category != CategoryFlood && r.Category != CategoryDrought {
			continue
		}
		return e.render(t, r, w, vars)
	}

	if len(p.ObservedIssues) > 0 {
		reason, _ := t.Render("OBSERVED_ISSUE_REASON", vars)
		action, _ := t.Render("OBSERVED_ISSUE_ACTION", vars)
		impact, _ := t.Render("OBSERVED_ISSUE_IMPACT", vars)
		consequence, _ := t.Render("OBSERVED_ISSUE_CONSEQUENCE", vars)
		urgency, _ := t.Render("URGENCY_CAUTION", vars)
		return entities.RuleOutput{
			Level:       entities.LevelWarning,
			Reason:      reason,
			Action:      action,
			Urgency:     urgency,
			Impact:      impact,
			Consequence: consequence,
			Confidence:  entities.ConfidenceMedium,
			IsLowCost:   true,
			RuleKey:     "OBSERVED_ISSUES",
		}
	}

	// Sowing and harvest are the cash-sensitive windows: surface the
	// institutional-support tip when nothing else fired.
	if p.Stage == entities.StageSowing || p.Stage == entities.StageHarvest {
		reason, _ := t.Render("FINANCIAL_ALERT_REASON", vars)
		action, _ := t.Render("FINANCIAL_ALERT_ACTION", vars)
		impact, _ := t.Render("FINANCIAL_ALERT_IMPACT", vars)
		consequence, _ := t.Render("FINANCIAL_ALERT_CONSEQUENCE", vars)
		urgency, _ := t.Render("URGENCY_SUPPORT", vars)
		return entities.RuleOutput{
			Level:       entities.LevelWarning,
			Reason:      reason,
			Action:      action,
			Urgency:     urgency,
			Impact:      impact,
			Consequence: consequence,
			Confidence:  entities.ConfidenceHigh,
			IsLowCost:   true,
			RuleKey:     "FINANCIAL_ALERT",
		}
	}

	reason, _ := t.Render("DEFAULT_SAFE_REASON", vars)
	action, _ := t.Render("DEFAULT_SAFE_ACTION", vars)
	urgency, _ := t.Render("URGENCY_NORMAL", vars)
	return entities.RuleOutput{
		Level:      entities.LevelSafe,
		Reason:     reason,
		Action:     action,
		Urgency:    urgency,
		Confidence: entities.ConfidenceHigh,
		IsLowCost:  true,
	}
}

func (e *Engine) render(t locale.Table, r DecisionRule, w entities.WeatherSnapshot, vars locale.Vars) entities.RuleOutput {
	confidence := entities.ConfidenceMedium
	if w.RainForecast > 40 || w.Humidity > 90 {
		confidence = entities.ConfidenceHigh
	}

	var timeSensitivity string
	if r.Category == CategoryRain || r.Category == CategoryFlood {
		if tpl, ok := t.Lookup("IGNORE_RISK_HOURS"); ok {
			timeSensitivity = strings.ReplaceAll(tpl, "{h}", "12-24")
		}
	} else {
		if tpl, ok := t.Lookup("IGNORE_RISK_DAYS"); ok {
			timeSensitivity = strings.ReplaceAll(tpl, "{d}", "2-3")
		}
	}

	reason, ok := t.RuleField(r.Key, locale.FieldReason, vars)
	if !ok {
		reason, _ = t.Render("DEFAULT_SAFE_REASON", vars)
	}
	action, ok := t.RuleField(r.Key, locale.FieldAction, vars)
	if !ok {
		action, _ = t.Render("DEFAULT_SAFE_ACTION", vars)
	}
	impact, _ := t.RuleField(r.Key, locale.FieldImpact, vars)
	consequence, _ := t.RuleField(r.Key, locale.FieldConsequence, vars)

	urgencyKey := "URGENCY_CAUTION"
	if r.Level == entities.LevelAlert {
		urgencyKey = "URGENCY_IMMEDIATE"
	}
	urgency, _ := t.Render(urgencyKey, vars)

	return entities.RuleOutput{
		Level:           r.Level,
		Reason:          reason,
		Action:          action,
		Urgency:         urgency,
		Impact:          impact,
		Consequence:     consequence,
		TimeSensitivity: timeSensitivity,
		Confidence:      confidence,
		IsLowCost:       r.LowCost,
		RuleKey:         r.Key,
	}
}

// recentlyDismissed collects rule keys the farmer marked NOT_TAKEN within the
// cooldown window.
func (e *Engine) recentlyDismissed(now time.Time) map[string]bool {
	records, err := e.history.All()
	if err != nil {
		log.Printf("[advisory] history read failed, ignoring suppression: %v", err)
		return nil
	}
	out := map[string]bool{}
	for _, h := range records {
		if h.RuleKey == "" || h.ActionTaken != entities.ActionNotTaken {
			continue
		}
		ts := time.UnixMilli(h.Timestamp)
		if now.Sub(ts) < dismissCooldown {
			out[h.RuleKey] = true
		}
	}
	return out
}
