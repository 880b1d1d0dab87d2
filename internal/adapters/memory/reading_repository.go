package memory

import (
	"context"
	"sync"

	"github.com/quentinrf/bp-tracker/internal/domain"
)

// ReadingRepository implements domain.ReadingRepository with in-memory storage
// This is perfect for tests - no file setup needed
type ReadingRepository struct {
	mu       sync.RWMutex
	readings []*domain.Reading
}

// NewReadingRepository creates an empty in-memory repository
func NewReadingRepository() *ReadingRepository {
	return &ReadingRepository{}
}

// SaveReading stores a reading in memory, preserving append order
func (r *ReadingRepository) SaveReading(ctx context.Context, reading *domain.Reading) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.readings = append(r.readings, reading)
	return nil
}

// ListReadings returns all readings in append order
func (r *ReadingRepository) ListReadings(ctx context.Context) ([]*domain.Reading, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Reading, len(r.readings))
	copy(out, r.readings)
	return out, nil
}

// LatestReading returns the most recently appended reading
func (r *ReadingRepository) LatestReading(ctx context.Context) (*domain.Reading, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.readings) == 0 {
		return nil, domain.ErrNoReadings
	}
	return r.readings[len(r.readings)-1], nil
}
