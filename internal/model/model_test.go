package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2024-01-10", want: Date{2024, time.January, 10}},
		{in: "  2024-02-29 ", want: Date{2024, time.February, 29}},
		{in: "2023-02-29", wantErr: true},
		{in: "10/01/2024", wantErr: true},
		{in: "", wantErr: true},
		{in: "tomorrow", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDateOfIgnoresClock(t *testing.T) {
	morning := time.Date(2024, 1, 10, 8, 30, 0, 0, time.UTC)
	evening := time.Date(2024, 1, 10, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, DateOf(morning), DateOf(evening))
	assert.Equal(t, "2024-01-10", DateOf(evening).String())
}

func TestDateAsJSONMapKey(t *testing.T) {
	in := map[Date]int{
		{2024, time.March, 1}:   2,
		{2024, time.January, 9}: 1,
	}
	b, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"2024-01-09":1,"2024-03-01":2}`, string(b))

	var out map[Date]int
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, in, out)
}

func TestDateBefore(t *testing.T) {
	a := Date{2023, time.December, 31}
	b := Date{2024, time.January, 1}
	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.False(t, a.Before(a))
}

func TestAttendanceRecordStatus(t *testing.T) {
	m := Member{Name: "Dawood", ID: "ws23r"}
	assert.Equal(t, "Attended", AttendanceRecord{Member: m, Attended: true}.Status())
	assert.Equal(t, "Not Attended", AttendanceRecord{Member: m}.Status())
	assert.Equal(t, "ws23r, Dawood, Attended", AttendanceRecord{Member: m, Attended: true}.String())
}
