package domain

import (
	"errors"
	"testing"
	"time"
)

func TestNewReading(t *testing.T) {
	tests := []struct {
		name      string
		systolic  int
		diastolic int
		bpm       int
		wantErr   bool
		wantCat   Category
	}{
		{name: "valid normal", systolic: 118, diastolic: 76, bpm: 64, wantCat: CategoryNormal},
		{name: "valid crisis", systolic: 185, diastolic: 110, bpm: 90, wantCat: CategoryCrisis},
		{name: "out of range systolic", systolic: 60, diastolic: 50, bpm: 70, wantErr: true},
		{name: "diastolic not below systolic", systolic: 100, diastolic: 100, bpm: 70, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reading, err := NewReading(tt.systolic, tt.diastolic, tt.bpm, time.Time{})

			if tt.wantErr {
				if err == nil {
					t.Error("expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}

			if reading.Systolic != tt.systolic || reading.Diastolic != tt.diastolic || reading.BPM != tt.bpm {
				t.Errorf("values %d/%d/%d, want %d/%d/%d",
					reading.Systolic, reading.Diastolic, reading.BPM,
					tt.systolic, tt.diastolic, tt.bpm)
			}
			if reading.Category != tt.wantCat {
				t.Errorf("category = %v, want %v", reading.Category, tt.wantCat)
			}
			if reading.Timestamp.IsZero() {
				t.Error("expected timestamp to be assigned")
			}
		})
	}
}

func TestNewReading_SuppliedTimestamp(t *testing.T) {
	ts := time.Date(2024, 3, 15, 8, 30, 0, 0, time.Local)

	reading, err := NewReading(120, 80, 72, ts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reading.Timestamp.Equal(ts) {
		t.Errorf("timestamp = %v, want %v", reading.Timestamp, ts)
	}
}

func TestParseReading(t *testing.T) {
	reading, err := ParseReading("120", "80", "72")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reading.Systolic != 120 || reading.Diastolic != 80 || reading.BPM != 72 {
		t.Errorf("got %d/%d/%d, want 120/80/72",
			reading.Systolic, reading.Diastolic, reading.BPM)
	}
	if reading.Category != CategoryHigh1 {
		t.Errorf("category = %v, want %v", reading.Category, CategoryHigh1)
	}
}

// Coercion of all three values precedes range checks: a non-numeric
// bpm is reported even though systolic is also out of range.
func TestParseReading_CoercionFirst(t *testing.T) {
	_, err := ParseReading("300", "80", "abc")
	if err == nil {
		t.Fatal("expected error but got nil")
	}

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if verr.Field != "bpm" {
		t.Errorf("field = %q, want %q", verr.Field, "bpm")
	}
}
