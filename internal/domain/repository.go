package domain

import (
	"context"
)

// ReadingRepository defines operations for storing/retrieving readings
// This is a PORT - adapters (CSV file, Memory) will implement it
type ReadingRepository interface {
	// SaveReading appends a reading to durable storage. A reading is
	// stored exactly once; there is no update or delete.
	SaveReading(ctx context.Context, reading *Reading) error

	// ListReadings retrieves all readings in append order, oldest
	// first. Every call re-reads from the start.
	ListReadings(ctx context.Context) ([]*Reading, error)

	// LatestReading retrieves the most recent reading, or
	// ErrNoReadings when the store is empty.
	LatestReading(ctx context.Context) (*Reading, error)
}
