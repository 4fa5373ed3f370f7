package kv

import (
	"errors"
	"testing"
)

func TestMemoryRoundTrip(t *testing.T) {
	s := NewMemory()
	if err := s.Set("k", []byte("v1")); err != nil {
		t.Fatal(err)
	}
	got, err := s.Get("k")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "v1" {
		t.Errorf("got %q, want v1", got)
	}

	if err := s.Set("k", []byte("v2")); err != nil {
		t.Fatal(err)
	}
	got, _ = s.Get("k")
	if string(got) != "v2" {
		t.Errorf("got %q, want the overwritten value", got)
	}

	if err := s.Delete("k"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Get("k"); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound after delete", err)
	}
}

func TestMemoryGetMissing(t *testing.T) {
	if _, err := NewMemory().Get("never"); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestMemoryReturnsCopy(t *testing.T) {
	s := NewMemory()
	s.Set("k", []byte("abc"))
	got, _ := s.Get("k")
	got[0] = 'x'
	again, _ := s.Get("k")
	if string(again) != "abc" {
		t.Errorf("stored value mutated to %q", again)
	}
}

func TestJSONHelpers(t *testing.T) {
	type blob struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	s := NewMemory()
	if err := SetJSON(s, "b", blob{Name: "mandi", Count: 3}); err != nil {
		t.Fatal(err)
	}
	var out blob
	if err := GetJSON(s, "b", &out); err != nil {
		t.Fatal(err)
	}
	if out.Name != "mandi" || out.Count != 3 {
		t.Errorf("got %+v", out)
	}

	if err := GetJSON(s, "missing", &out); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound passed through", err)
	}
}

func TestFlakyWritesFail(t *testing.T) {
	s := NewFlaky()
	if err := s.Set("k", []byte("v")); err == nil {
		t.Error("want Set to fail")
	}
	if err := s.Delete("k"); err == nil {
		t.Error("want Delete to fail")
	}
	if _, err := s.Get("k"); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want reads to still answer", err)
	}
}
