package domain

import (
	"time"
)

// FieldStats holds min/avg/max for one measured field.
type FieldStats struct {
	Min int
	Max int
	Avg float64
}

// Summary aggregates a sequence of readings for trend display.
type Summary struct {
	Count      int
	Systolic   FieldStats
	Diastolic  FieldStats
	BPM        FieldStats
	ByCategory map[Category]int
	First      time.Time
	Last       time.Time
}

// Summarize computes trend statistics over readings in sequence order.
// Returns ErrNoReadings for an empty sequence.
func Summarize(readings []*Reading) (*Summary, error) {
	if len(readings) == 0 {
		return nil, ErrNoReadings
	}

	s := &Summary{
		Count:      len(readings),
		ByCategory: make(map[Category]int),
		First:      readings[0].Timestamp,
		Last:       readings[len(readings)-1].Timestamp,
	}

	var sysSum, diaSum, bpmSum int
	for i, r := range readings {
		accumulate(&s.Systolic, r.Systolic, i == 0)
		accumulate(&s.Diastolic, r.Diastolic, i == 0)
		accumulate(&s.BPM, r.BPM, i == 0)
		sysSum += r.Systolic
		diaSum += r.Diastolic
		bpmSum += r.BPM
		s.ByCategory[r.Category]++

		if r.Timestamp.Before(s.First) {
			s.First = r.Timestamp
		}
		if r.Timestamp.After(s.Last) {
			s.Last = r.Timestamp
		}
	}

	n := float64(s.Count)
	s.Systolic.Avg = float64(sysSum) / n
	s.Diastolic.Avg = float64(diaSum) / n
	s.BPM.Avg = float64(bpmSum) / n

	return s, nil
}

func accumulate(fs *FieldStats, v int, first bool) {
	if first || v < fs.Min {
		fs.Min = v
	}
	if first || v > fs.Max {
		fs.Max = v
	}
}
