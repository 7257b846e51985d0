// Package attendance keeps the per-date attendance history and runs the
// roll call that adds to it.
package attendance

import (
	"errors"
	"fmt"
	"sort"

	"github.com/idilsaglam/attendance/internal/model"
	"github.com/idilsaglam/attendance/internal/store/jsonstore"
)

// Store maps a calendar date to the records taken that day, in roster order.
// There is at most one entry per date.
type Store map[model.Date][]model.AttendanceRecord

// NewStore returns an empty store.
func NewStore() Store { return Store{} }

// Load reads the attendance file. A missing file is an empty store and no
// error, since a fresh install has no history. A malformed file yields an
// empty store and a model.ErrParse error the caller may choose to ignore.
func Load(path string) (Store, error) {
	s := NewStore()
	if err := jsonstore.ReadFile(path, &s); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return NewStore(), nil
		}
		return NewStore(), fmt.Errorf("load attendance: %w", err)
	}
	if s == nil {
		s = NewStore()
	}
	return s, nil
}

// Save rewrites the whole attendance file.
func Save(s Store, path string) error {
	if s == nil {
		s = NewStore()
	}
	if err := jsonstore.WriteFile(path, s); err != nil {
		return fmt.Errorf("save attendance: %w", err)
	}
	return nil
}

// RecordForDate sets the records for date, replacing any earlier entry
// outright. The slice is copied.
func (s Store) RecordForDate(date model.Date, records []model.AttendanceRecord) Store {
	if s == nil {
		s = NewStore()
	}
	s[date] = append([]model.AttendanceRecord(nil), records...)
	return s
}

// RecordsForDate returns the records for date, if any were taken.
func (s Store) RecordsForDate(date model.Date) ([]model.AttendanceRecord, bool) {
	records, ok := s[date]
	return records, ok
}

// Dates lists the recorded dates, oldest first.
func (s Store) Dates() []model.Date {
	dates := make([]model.Date, 0, len(s))
	for d := range s {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// Tally counts present and absent records.
func Tally(records []model.AttendanceRecord) (present, absent int) {
	for _, r := range records {
		if r.Attended {
			present++
		} else {
			absent++
		}
	}
	return
}
