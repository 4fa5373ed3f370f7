package history

import (
	"errors"
	"fmt"
	"log"
	"time"

	"kisan/entities"
	"kisan/pkg/kv"
)

const (
	historyKey   = "samarth_kisan_history"
	lastAlertKey = "last_alert"

	// dedupWindow guards Append against retries: an identical
	// (crop, level, ruleKey) within it is dropped.
	dedupWindow = 6 * time.Hour
	maxRecords  = 50
)

// Store keeps the advisory history in the local key-value layer, newest
// first, capped at maxRecords.
type Store struct {
	kv  kv.Store
	now func() time.Time
}

func New(store kv.Store) *Store {
	return &Store{kv: store, now: time.Now}
}

// All returns the persisted history. A missing key is an empty history, not
// an error.
func (s *Store) All() ([]entities.AlertRecord, error) {
	var list []entities.AlertRecord
	if err := kv.GetJSON(s.kv, historyKey, &list); err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load history: %w", err)
	}
	return list, nil
}

// Append prepends the record unless an equivalent one landed within the dedup
// window, trims to the retention cap, and unconditionally refreshes the
// last-alert slot.
func (s *Store) Append(rec entities.AlertRecord) error {
	list, err := s.All()
	if err != nil {
		// fail open: better a duplicate entry than a lost advisory
		log.Printf("[history] read before append failed: %v", err)
		list = nil
	}

	now := s.now()
	dup := false
	for _, h := range list {
		if h.Crop == rec.Crop && h.Level == rec.Level && h.RuleKey == rec.RuleKey &&
			now.Sub(time.UnixMilli(h.Timestamp)) < dedupWindow {
			dup = true
			break
		}
	}

	var writeErr error
	if !dup {
		stored := rec
		stored.ActionTaken = entities.ActionPending
		list = append([]entities.AlertRecord{stored}, list...)
		if len(list) > maxRecords {
			list = list[:maxRecords]
		}
		if err := kv.SetJSON(s.kv, historyKey, list); err != nil {
			writeErr = fmt.Errorf("persist history: %w", err)
		}
	}

	if err := kv.SetJSON(s.kv, lastAlertKey, rec); err != nil && writeErr == nil {
		writeErr = fmt.Errorf("persist last alert: %w", err)
	}
	return writeErr
}

// UpdateActionStatus marks a record done or ignored. Unknown ids are a silent
// no-op so a retried UI tap stays harmless.
func (s *Store) UpdateActionStatus(id string, status entities.ActionStatus) error {
	return s.update(id, func(h *entities.AlertRecord) {
		h.ActionTaken = status
	})
}

// UpdateFeedback records confirmation; feedback implies the action was taken.
func (s *Store) UpdateFeedback(id string) error {
	return s.update(id, func(h *entities.AlertRecord) {
		h.FeedbackGiven = true
		h.ActionTaken = entities.ActionTaken
	})
}

func (s *Store) update(id string, mutate func(*entities.AlertRecord)) error {
	list, err := s.All()
	if err != nil {
		return err
	}
	found := false
	for i := range list {
		if list[i].ID == id {
			mutate(&list[i])
			found = true
			break
		}
	}
	if !found {
		return nil
	}
	if err := kv.SetJSON(s.kv, historyKey, list); err != nil {
		return fmt.Errorf("persist history: %w", err)
	}
	return nil
}

// LastAlert returns the single-slot copy of the most recent evaluation, or
// nil when none was ever stored.
func (s *Store) LastAlert() (*entities.AlertRecord, error) {
	var rec entities.AlertRecord
	if err := kv.GetJSON(s.kv, lastAlertKey, &rec); err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

// Clear drops the whole history list. The last-alert slot stays.
func (s *Store) Clear() error {
	return s.kv.Delete(historyKey)
}
