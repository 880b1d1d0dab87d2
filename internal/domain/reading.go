package domain

import (
	"time"
)

// Reading represents a single blood pressure measurement.
// This is pure domain logic - no files, no CLI, just business concepts.
//
// A Reading is built only through NewReading or ParseReading and is
// never mutated afterwards: the timestamp is assigned exactly once and
// the category is derived from systolic/diastolic at creation.
type Reading struct {
	Systolic  int
	Diastolic int
	BPM       int
	Timestamp time.Time
	Category  Category
}

// NewReading creates a new reading with validation. A zero ts means
// "capture time": the current time is assigned.
func NewReading(systolic, diastolic, bpm int, ts time.Time) (*Reading, error) {
	if err := ValidateReading(systolic, diastolic, bpm); err != nil {
		return nil, err
	}
	if ts.IsZero() {
		ts = time.Now()
	}
	return &Reading{
		Systolic:  systolic,
		Diastolic: diastolic,
		BPM:       bpm,
		Timestamp: ts,
		Category:  Classify(systolic, diastolic),
	}, nil
}

// ParseReading coerces raw string input (CLI arguments, prompt text)
// into a validated reading. All three values are coerced before any
// range check runs, so a non-numeric field is always reported ahead of
// a range violation in another field.
func ParseReading(systolic, diastolic, bpm string) (*Reading, error) {
	s, err := ParseField("systolic", systolic)
	if err != nil {
		return nil, err
	}
	d, err := ParseField("diastolic", diastolic)
	if err != nil {
		return nil, err
	}
	b, err := ParseField("bpm", bpm)
	if err != nil {
		return nil, err
	}
	return NewReading(s, d, b, time.Time{})
}
