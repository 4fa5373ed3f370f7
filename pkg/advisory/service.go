package advisory

import (
	"log"
	"time"

	gonanoid "github.com/matoous/go-nanoid"

	"kisan/entities"
)

// historyWriter is what Evaluate needs to persist its record.
type historyWriter interface {
	Append(entities.AlertRecord) error
}

// Service runs the engine and records each evaluation into history. The
// advisory itself is the higher-value result, so a failed history write is
// logged and swallowed.
type Service struct {
	engine  *Engine
	history historyWriter
	newID   func() (string, error)
}

func NewService(engine *Engine, history historyWriter) *Service {
	return &Service{engine: engine, history: history, newID: func() (string, error) { return gonanoid.Nanoid() }}
}

// Evaluate analyzes the profile against the snapshot and appends the result
// to history. The returned record carries the id the UI needs for the
// done/ignore follow-up.
func (s *Service) Evaluate(p entities.FarmerProfile, w entities.WeatherSnapshot, lang string) (entities.RuleOutput, entities.AlertRecord) {
	out := s.engine.Analyze(p, w, lang)

	id, err := s.newID()
	if err != nil {
		// nanoid only fails when the OS entropy source does
		id = time.Now().Format("20060102150405.000000000")
	}
	rec := entities.AlertRecord{
		RuleOutput: out,
		ID:         id,
		Crop:       p.Crop,
		Stage:      p.Stage,
		Location:   p.Location,
		Timestamp:  time.Now().UnixMilli(),
	}
	if err := s.history.Append(rec); err != nil {
		log.Printf("[advisory] history write failed: %v", err)
	}
	return out, rec
}

// Risks is the non-exclusive view over the same inputs.
func (s *Service) Risks(p entities.FarmerProfile, w entities.WeatherSnapshot, lang string) []entities.RuleOutput {
	return s.engine.ActiveRisks(p, w, lang)
}
