package domain

import (
	"errors"
	"testing"
	"time"
)

func makeReading(t *testing.T, systolic, diastolic, bpm int, ts time.Time) *Reading {
	t.Helper()
	r, err := NewReading(systolic, diastolic, bpm, ts)
	if err != nil {
		t.Fatalf("unexpected error creating reading: %v", err)
	}
	return r
}

func TestSummarize(t *testing.T) {
	base := time.Date(2024, 6, 1, 8, 0, 0, 0, time.Local)
	readings := []*Reading{
		makeReading(t, 120, 80, 72, base),
		makeReading(t, 181, 121, 90, base.Add(24*time.Hour)),
		makeReading(t, 85, 55, 65, base.Add(48*time.Hour)),
	}

	s, err := Summarize(readings)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	if s.Count != 3 {
		t.Errorf("count = %d, want 3", s.Count)
	}
	if s.Systolic.Min != 85 || s.Systolic.Max != 181 {
		t.Errorf("systolic min/max = %d/%d, want 85/181", s.Systolic.Min, s.Systolic.Max)
	}
	wantAvg := (120.0 + 181.0 + 85.0) / 3
	if s.Systolic.Avg != wantAvg {
		t.Errorf("systolic avg = %v, want %v", s.Systolic.Avg, wantAvg)
	}
	if s.BPM.Min != 65 || s.BPM.Max != 90 {
		t.Errorf("bpm min/max = %d/%d, want 65/90", s.BPM.Min, s.BPM.Max)
	}

	wantByCategory := map[Category]int{
		CategoryHigh1:  1,
		CategoryCrisis: 1,
		CategoryLow:    1,
	}
	for cat, want := range wantByCategory {
		if s.ByCategory[cat] != want {
			t.Errorf("ByCategory[%v] = %d, want %d", cat, s.ByCategory[cat], want)
		}
	}

	if !s.First.Equal(base) {
		t.Errorf("first = %v, want %v", s.First, base)
	}
	if !s.Last.Equal(base.Add(48 * time.Hour)) {
		t.Errorf("last = %v, want %v", s.Last, base.Add(48*time.Hour))
	}
}

func TestSummarize_Empty(t *testing.T) {
	_, err := Summarize(nil)
	if !errors.Is(err, ErrNoReadings) {
		t.Errorf("expected ErrNoReadings, got %v", err)
	}
}
