package advisory

import (
	"sort"

	"kisan/entities"
	"kisan/pkg/locale"
)

var levelRank = map[entities.SignalLevel]int{
	entities.LevelAlert:   3,
	entities.LevelWarning: 2,
	entities.LevelSafe:    1,
}

// ActiveRisks evaluates every rule for the crop and returns the top three by
// severity. Deliberately more permissive than Analyze: no suppression, no
// stage gating, confidence pinned High. Pure function of its inputs.
func (e *Engine) ActiveRisks(p entities.FarmerProfile, w entities.WeatherSnapshot, lang string) []entities.RuleOutput {
	t := e.dict.Table(lang)

	adj := 0
	switch p.Season {
	case entities.SeasonKharif:
		adj = 5
	case entities.SeasonRabi:
		adj = -5
	}
	in := WeatherInput{Temp: w.Temp, Humidity: w.Humidity + adj, RainForecast: w.RainForecast}
	vars := locale.Vars{Issues: p.ObservedIssues, Temp: w.Temp, Humidity: w.Humidity, Stage: p.Stage}

	var risks []entities.RuleOutput
	for _, r := range e.rules {
		if r.Crop != p.Crop {
			continue
		}
		if !r.Condition(in, p.ObservedIssues) {
			continue
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

		urgencyKey := "URGENCY_CAUTION"
		if r.RiskLevel == entities.LevelAlert {
			urgencyKey = "URGENCY_IMMEDIATE"
		}
		urgency, _ := t.Render(urgencyKey, vars)

		risks = append(risks, entities.RuleOutput{
			Level:      r.RiskLevel,
			Reason:     reason,
			Action:     action,
			Urgency:    urgency,
			Impact:     impact,
			Confidence: entities.ConfidenceHigh,
			IsLowCost:  r.LowCost,
			RuleKey:    r.Key,
		})
	}

	if len(p.ObservedIssues) > 0 && !containsKey(risks, "OBSERVED_ISSUES") {
		reason, _ := t.Render("OBSERVED_ISSUE_REASON", vars)
		action, _ := t.Render("OBSERVED_ISSUE_ACTION", vars)
		impact, _ := t.Render("OBSERVED_ISSUE_IMPACT", vars)
		urgency, _ := t.Render("URGENCY_FIELD_RISK", vars)
		risks = append(risks, entities.RuleOutput{
			Level:      entities.LevelWarning,
			Reason:     reason,
			Action:     action,
			Urgency:    urgency,
			Impact:     impact,
			Confidence: entities.ConfidenceMedium,
			IsLowCost:  true,
			RuleKey:    "OBSERVED_ISSUES",
		})
	}

	sort.SliceStable(risks, func(i, j int) bool {
		return levelRank[risks[i].Level] > levelRank[risks[j].Level]
	})
	if len(risks) > 3 {
		risks = risks[:3]
	}
	return risks
}

func containsKey(outs []entities.RuleOutput, key string) bool {
	for _, o := range outs {
		if o.RuleKey == key {
			return true
		}
	}
	return false
}
