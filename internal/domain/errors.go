package domain

import (
	"errors"
	"fmt"
)

// ErrNoReadings indicates the store holds no readings yet.
var ErrNoReadings = errors.New("no readings recorded")

// ValidationError reports a rejected input value. Msg is the full
// human-readable reason; Field names the offending input.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// StorageError reports a failed store operation with the underlying
// cause preserved. Row is the 1-based data row for per-row read
// failures, 0 otherwise.
type StorageError struct {
	Op   string
	Path string
	Row  int
	Err  error
}

func (e *StorageError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("%s %s: row %d: %v", e.Op, e.Path, e.Row, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
