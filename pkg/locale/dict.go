package locale

import (
	"fmt"
	"strconv"
	"strings"

	"kisan/entities"
)

// Template field suffixes. Every rule key may carry up to four templates in
// each locale table; missing ones degrade to the generic SAFE text.
const (
	FieldReason      = "REASON"
	FieldImpact      = "IMPACT"
	FieldAction      = "ACTION"
	FieldConsequence = "CONSEQUENCE"
)

// Keys every locale table must carry. Rule templates are optional by policy,
// these are not.
var requiredKeys = []string{
	"DEFAULT_SAFE_REASON", "DEFAULT_SAFE_ACTION",
	"OBSERVED_ISSUE_REASON", "OBSERVED_ISSUE_ACTION", "OBSERVED_ISSUE_IMPACT", "OBSERVED_ISSUE_CONSEQUENCE",
	"FINANCIAL_ALERT_REASON", "FINANCIAL_ALERT_ACTION", "FINANCIAL_ALERT_IMPACT", "FINANCIAL_ALERT_CONSEQUENCE",
	"IGNORE_RISK_HOURS", "IGNORE_RISK_DAYS",
	"URGENCY_IMMEDIATE", "URGENCY_CAUTION", "URGENCY_NORMAL", "URGENCY_SUPPORT", "URGENCY_FIELD_RISK",
}

// Vars are the runtime values substituted into templates.
type Vars struct {
	Issues   []string
	Temp     int
	Humidity int
	Stage    entities.CropStage
}

// Table is one locale's flat key -> template mapping.
type Table map[string]string

// Lookup returns the raw template, reporting whether it exists.
func (t Table) Lookup(key string) (string, bool) {
	s, ok := t[key]
	return s, ok
}

// Render substitutes {issues}, {temp}, {humidity} and {stage} into the
// template for key. The second return reports whether the key existed.
func (t Table) Render(key string, v Vars) (string, bool) {
	s, ok := t[key]
	if !ok {
		return "", false
	}
	return Substitute(s, v), true
}

// RuleField renders "<ruleKey>_<field>", e.g. "RICE_FLOOD_ALERT_REASON".
func (t Table) RuleField(ruleKey, field string, v Vars) (string, bool) {
	return t.Render(ruleKey+"_"+field, v)
}

func Substitute(s string, v Vars) string {
	s = strings.ReplaceAll(s, "{issues}", strings.Join(v.Issues, ", "))
	s = strings.ReplaceAll(s, "{temp}", strconv.Itoa(v.Temp))
	s = strings.ReplaceAll(s, "{humidity}", strconv.Itoa(v.Humidity))
	s = strings.ReplaceAll(s, "{stage}", string(v.Stage))
	return s
}

// Dictionary maps locale tags ("en", "hi", "te") to template tables.
type Dictionary struct {
	tables   map[string]Table
	fallback string
}

// Default returns the built-in dictionary. English is complete; hi/te carry
// the generic set plus the most common rule templates.
func Default() *Dictionary {
	return &Dictionary{
		tables:   map[string]Table{"en": tableEN, "hi": tableHI, "te": tableTE},
		fallback: "en",
	}
}

// Table returns the locale's table, falling back to English for unknown tags.
func (d *Dictionary) Table(lang string) Table {
	if t, ok := d.tables[lang]; ok {
		return t
	}
	return d.tables[d.fallback]
}

func (d *Dictionary) Locales() []string {
	out := make([]string, 0, len(d.tables))
	for k := range d.tables {
		out = append(out, k)
	}
	return out
}

// Validate checks that every locale carries the required generic keys. Rule
// templates are allowed to be missing per the fallback policy.
func (d *Dictionary) Validate() error {
	for lang, t := range d.tables {
		for _, k := range requiredKeys {
			if _, ok := t[k]; !ok {
				return fmt.Errorf("locale %q missing required key %q", lang, k)
			}
		}
	}
	return nil
}
