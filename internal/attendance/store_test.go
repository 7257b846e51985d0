package attendance

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/attendance/internal/model"
)

var (
	dawood = model.Member{Name: "Dawood", ID: "ws23r"}
	ahmed  = model.Member{Name: "Ahmed", ID: "9ikj7"}
	jan10  = model.Date{Year: 2024, Month: time.January, Day: 10}
	jan11  = model.Date{Year: 2024, Month: time.January, Day: 11}
)

func TestLoadMissingFileIsEmpty(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "attendance-lists", "attendance-list.json"))
	require.NoError(t, err)
	assert.NotNil(t, s)
	assert.Empty(t, s)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "attendance-list.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"not-a-date": []}`), 0o644))

	s, err := Load(path)
	assert.ErrorIs(t, err, model.ErrParse)
	assert.NotNil(t, s)
	assert.Empty(t, s)
}

func TestLoadNullIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "attendance-list.json")
	require.NoError(t, os.WriteFile(path, []byte(`null`), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.NotNil(t, s)
	assert.Empty(t, s)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "attendance-lists", "attendance-list.json")
	in := NewStore().
		RecordForDate(jan10, []model.AttendanceRecord{{Member: dawood, Attended: true}, {Member: ahmed}}).
		RecordForDate(jan11, []model.AttendanceRecord{{Member: ahmed, Attended: true}})
	require.NoError(t, Save(in, path))

	out, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestSaveFileFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "attendance-list.json")
	s := NewStore().RecordForDate(jan10, []model.AttendanceRecord{{Member: dawood, Attended: true}})
	require.NoError(t, Save(s, path))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"2024-01-10":[{"member":{"name":"Dawood","id":"ws23r"},"attended":true}]}`, string(b))
}

func TestRecordForDateReplaces(t *testing.T) {
	s := NewStore()
	s = s.RecordForDate(jan10, []model.AttendanceRecord{{Member: dawood, Attended: true}, {Member: ahmed, Attended: true}})
	s = s.RecordForDate(jan10, []model.AttendanceRecord{{Member: ahmed}})

	got, ok := s.RecordsForDate(jan10)
	require.True(t, ok)
	assert.Equal(t, []model.AttendanceRecord{{Member: ahmed}}, got)
	assert.Len(t, s, 1)
}

func TestRecordForDateCopiesInput(t *testing.T) {
	records := []model.AttendanceRecord{{Member: dawood, Attended: true}}
	s := NewStore().RecordForDate(jan10, records)
	records[0].Attended = false

	got, _ := s.RecordsForDate(jan10)
	assert.True(t, got[0].Attended)
}

func TestRecordForDateOnNilStore(t *testing.T) {
	var s Store
	s = s.RecordForDate(jan10, nil)
	_, ok := s.RecordsForDate(jan10)
	assert.True(t, ok)
}

func TestRecordsForDateMatchesCalendarDay(t *testing.T) {
	s := NewStore().RecordForDate(jan10, []model.AttendanceRecord{{Member: dawood, Attended: true}})

	parsed, err := model.ParseDate("2024-01-10")
	require.NoError(t, err)
	_, ok := s.RecordsForDate(parsed)
	assert.True(t, ok)

	_, ok = s.RecordsForDate(model.DateOf(time.Date(2024, 1, 10, 17, 45, 0, 0, time.Local)))
	assert.True(t, ok)

	_, ok = s.RecordsForDate(jan11)
	assert.False(t, ok)
}

func TestDatesSorted(t *testing.T) {
	dec31 := model.Date{Year: 2023, Month: time.December, Day: 31}
	s := NewStore().RecordForDate(jan11, nil).RecordForDate(dec31, nil).RecordForDate(jan10, nil)
	assert.Equal(t, []model.Date{dec31, jan10, jan11}, s.Dates())
	assert.Empty(t, NewStore().Dates())
}

func TestTally(t *testing.T) {
	present, absent := Tally([]model.AttendanceRecord{
		{Member: dawood, Attended: true},
		{Member: ahmed},
		{Member: ahmed},
	})
	assert.Equal(t, 1, present)
	assert.Equal(t, 2, absent)
}
