package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/quentinrf/bp-tracker/internal/domain"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

// header is the current on-disk schema. Legacy files written before
// the Category column was introduced carry only the first five.
var header = []string{"Date", "Time", "Systolic", "Diastolic", "BPM", "Category"}

const legacyColumns = 5

// ReadingRepository implements domain.ReadingRepository on a CSV flat
// file. The file handle is never held between calls: every operation
// opens, works, and closes.
type ReadingRepository struct {
	path string
}

// NewReadingRepository creates a CSV-backed repository and ensures the
// file exists with its header row.
func NewReadingRepository(path string) (*ReadingRepository, error) {
	r := &ReadingRepository{path: path}
	if err := r.Initialize(); err != nil {
		return nil, err
	}
	return r, nil
}

// Path returns the CSV file location.
func (r *ReadingRepository) Path() string {
	return r.path
}

// Initialize creates the parent directory and the CSV file with its
// header row when absent. Idempotent: an existing file is untouched.
func (r *ReadingRepository) Initialize() error {
	if _, err := os.Stat(r.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return r.storageErr("stat", 0, err)
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return r.storageErr("create", 0, err)
	}

	f, err := os.OpenFile(r.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return nil
		}
		return r.storageErr("create", 0, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return r.storageErr("create", 0, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return r.storageErr("create", 0, err)
	}
	return nil
}

// SaveReading appends one reading as a CSV row. The file is opened in
// append mode and closed before returning.
func (r *ReadingRepository) SaveReading(ctx context.Context, reading *domain.Reading) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := r.Initialize(); err != nil {
		return err
	}
	if err := r.ensureTrailingNewline(); err != nil {
		return err
	}

	f, err := os.OpenFile(r.path, os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return r.storageErr("append", 0, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	row := []string{
		reading.Timestamp.Format(dateLayout),
		reading.Timestamp.Format(timeLayout),
		strconv.Itoa(reading.Systolic),
		strconv.Itoa(reading.Diastolic),
		strconv.Itoa(reading.BPM),
		reading.Category.String(),
	}
	if err := w.Write(row); err != nil {
		return r.storageErr("append", 0, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return r.storageErr("append", 0, err)
	}
	return nil
}

// ListReadings returns all readings in file order, oldest first.
//
// Legacy files without the Category column are handled transparently:
// a row with no category gets one derived from its systolic/diastolic
// values. The file itself is never rewritten.
func (r *ReadingRepository) ListReadings(ctx context.Context) ([]*domain.Reading, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, r.storageErr("read", 0, err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1 // column counts checked per row below

	first, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, r.storageErr("read", 0, err)
	}
	if len(first) != len(header) && len(first) != legacyColumns {
		return nil, r.storageErr("read", 0,
			fmt.Errorf("unrecognized header with %d columns", len(first)))
	}

	var readings []*domain.Reading
	for row := 1; ; row++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, r.storageErr("read", row, err)
		}

		reading, err := r.parseRow(record, row)
		if err != nil {
			return nil, err
		}
		readings = append(readings, reading)
	}

	return readings, nil
}

// LatestReading returns the most recent reading, assuming append
// order is chronological order.
func (r *ReadingRepository) LatestReading(ctx context.Context) (*domain.Reading, error) {
	readings, err := r.ListReadings(ctx)
	if err != nil {
		return nil, err
	}
	if len(readings) == 0 {
		return nil, domain.ErrNoReadings
	}
	return readings[len(readings)-1], nil
}

// parseRow rehydrates one data row. row is the 1-based data row number
// used in error reports.
func (r *ReadingRepository) parseRow(record []string, row int) (*domain.Reading, error) {
	if len(record) != len(header) && len(record) != legacyColumns {
		return nil, r.storageErr("read", row,
			fmt.Errorf("expected %d or %d columns, got %d", len(header), legacyColumns, len(record)))
	}

	ts, err := time.ParseInLocation(dateLayout+" "+timeLayout, record[0]+" "+record[1], time.Local)
	if err != nil {
		return nil, r.storageErr("read", row, fmt.Errorf("invalid timestamp: %w", err))
	}

	fields := [3]int{}
	for i, name := range []string{"systolic", "diastolic", "bpm"} {
		v, err := strconv.Atoi(record[i+2])
		if err != nil {
			return nil, r.storageErr("read", row, fmt.Errorf("invalid %s value %q", name, record[i+2]))
		}
		fields[i] = v
	}

	reading := &domain.Reading{
		Systolic:  fields[0],
		Diastolic: fields[1],
		BPM:       fields[2],
		Timestamp: ts,
	}

	// Legacy rows (and rows with an empty Category cell) derive the
	// category on read rather than failing.
	if len(record) == legacyColumns || record[5] == "" {
		reading.Category = domain.Classify(reading.Systolic, reading.Diastolic)
		return reading, nil
	}

	cat, ok := domain.ParseCategory(record[5])
	if !ok {
		return nil, r.storageErr("read", row, fmt.Errorf("unknown category %q", record[5]))
	}
	reading.Category = cat
	return reading, nil
}

// ensureTrailingNewline guards against a hand-edited file whose last
// line lacks a newline, which would merge the appended row into it.
func (r *ReadingRepository) ensureTrailingNewline() error {
	info, err := os.Stat(r.path)
	if err != nil {
		return r.storageErr("append", 0, err)
	}
	if info.Size() == 0 {
		return nil
	}

	f, err := os.OpenFile(r.path, os.O_RDWR, 0o644)
	if err != nil {
		return r.storageErr("append", 0, err)
	}
	defer f.Close()

	last := make([]byte, 1)
	if _, err := f.ReadAt(last, info.Size()-1); err != nil {
		return r.storageErr("append", 0, err)
	}
	if last[0] == '\n' || last[0] == '\r' {
		return nil
	}
	if _, err := f.Seek(0, io.SeekEnd); err != nil {
		return r.storageErr("append", 0, err)
	}
	if _, err := f.Write([]byte{'\n'}); err != nil {
		return r.storageErr("append", 0, err)
	}
	return nil
}

func (r *ReadingRepository) storageErr(op string, row int, err error) *domain.StorageError {
	return &domain.StorageError{Op: op, Path: r.path, Row: row, Err: err}
}
