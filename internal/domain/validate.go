package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Accepted value ranges, based on medical standards.
const (
	SystolicMin  = 70
	SystolicMax  = 250
	DiastolicMin = 40
	DiastolicMax = 150
	BPMMin       = 30
	BPMMax       = 250
)

// ParseField coerces a raw string into an integer, failing with a
// ValidationError naming the field.
func ParseField(field, raw string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &ValidationError{
			Field: field,
			Msg:   fmt.Sprintf("%s must be a number, got: %s", field, strings.TrimSpace(raw)),
		}
	}
	return v, nil
}

// ValidateSystolic checks the systolic range.
func ValidateSystolic(v int) error {
	return checkRange("systolic", v, SystolicMin, SystolicMax)
}

// ValidateDiastolic checks the diastolic range, and when systolic is
// non-zero also the diastolic < systolic relationship.
func ValidateDiastolic(v, systolic int) error {
	if err := checkRange("diastolic", v, DiastolicMin, DiastolicMax); err != nil {
		return err
	}
	if systolic != 0 && v >= systolic {
		return relationshipError(v, systolic)
	}
	return nil
}

// ValidateBPM checks the heart rate range.
func ValidateBPM(v int) error {
	return checkRange("bpm", v, BPMMin, BPMMax)
}

// ValidateReading checks all components of a reading. Checks run in a
// fixed order: each field's range first, then the diastolic < systolic
// relationship. The first failure is returned.
func ValidateReading(systolic, diastolic, bpm int) error {
	if err := ValidateSystolic(systolic); err != nil {
		return err
	}
	if err := checkRange("diastolic", diastolic, DiastolicMin, DiastolicMax); err != nil {
		return err
	}
	if err := ValidateBPM(bpm); err != nil {
		return err
	}
	if diastolic >= systolic {
		return relationshipError(diastolic, systolic)
	}
	return nil
}

func checkRange(field string, value, min, max int) error {
	if value < min || value > max {
		return &ValidationError{
			Field: field,
			Msg:   fmt.Sprintf("%s must be between %d and %d, got: %d", field, min, max, value),
		}
	}
	return nil
}

func relationshipError(diastolic, systolic int) error {
	return &ValidationError{
		Field: "diastolic",
		Msg:   fmt.Sprintf("diastolic (%d) must be less than systolic (%d)", diastolic, systolic),
	}
}
