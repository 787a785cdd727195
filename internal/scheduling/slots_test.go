package scheduling_test

import (
	"testing"
	"time"

	errorvalues "github.com/JuliPapp/Redimfinal-sub000/internal/error_values"
	"github.com/JuliPapp/Redimfinal-sub000/internal/scheduling"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSlots(t *testing.T) {
	tests := []struct {
		name  string
		start string
		count int
		want  []scheduling.SlotTime
		err   error
	}{
		{
			name:  "three morning slots",
			start: "09:00",
			count: 3,
			want: []scheduling.SlotTime{
				{Start: "09:00", End: "10:00"},
				{Start: "10:00", End: "11:00"},
				{Start: "11:00", End: "12:00"},
			},
		},
		{
			name:  "minutes are kept",
			start: "18:30",
			count: 2,
			want: []scheduling.SlotTime{
				{Start: "18:30", End: "19:30"},
				{Start: "19:30", End: "20:30"},
			},
		},
		{
			name:  "truncated before midnight",
			start: "21:00",
			count: 5,
			want: []scheduling.SlotTime{
				{Start: "21:00", End: "22:00"},
				{Start: "22:00", End: "23:00"},
			},
		},
		{name: "last hour has no room", start: "23:00", count: 3, want: []scheduling.SlotTime{}},
		{name: "zero count", start: "09:00", count: 0, err: errorvalues.ErrInvalidCount},
		{name: "bad hour", start: "25:00", count: 1, err: errorvalues.ErrInvalidTime},
		{name: "missing padding", start: "9:00", count: 1, err: errorvalues.ErrInvalidTime},
		{name: "garbage", start: "nine", count: 1, err: errorvalues.ErrInvalidTime},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := scheduling.GenerateSlots(tt.start, tt.count)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateSlotsNeverCrossesMidnight(t *testing.T) {
	for h := 0; h < 24; h++ {
		start := time.Date(2024, 1, 1, h, 0, 0, 0, time.UTC).Format("15:04")
		slots, err := scheduling.GenerateSlots(start, 30)
		require.NoError(t, err)
		assert.Len(t, slots, max(0, 23-h))
		for _, s := range slots {
			before, err := scheduling.ClockBefore(s.Start, s.End)
			require.NoError(t, err)
			assert.True(t, before, s)
		}
	}
}

func TestDatesInRange(t *testing.T) {
	from := time.Date(2024, 2, 27, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 2, 15, 0, 0, 0, time.UTC)

	dates, err := scheduling.DatesInRange(from, to)
	require.NoError(t, err)
	require.Len(t, dates, 5)
	assert.Equal(t, "2024-02-29", dates[2].Format("2006-01-02"))
	assert.Equal(t, "2024-03-02", dates[4].Format("2006-01-02"))

	t.Run("single day", func(t *testing.T) {
		dates, err := scheduling.DatesInRange(from, from)
		require.NoError(t, err)
		assert.Len(t, dates, 1)
	})
	t.Run("reversed", func(t *testing.T) {
		_, err := scheduling.DatesInRange(to, from)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidRange)
	})
	t.Run("too long", func(t *testing.T) {
		_, err := scheduling.DatesInRange(from, from.AddDate(0, 0, scheduling.MaxRangeDays))
		assert.ErrorIs(t, err, errorvalues.ErrInvalidRange)
	})
}

func TestParseDate(t *testing.T) {
	d, err := scheduling.ParseDate("2024-05-06")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC), d)

	_, err = scheduling.ParseDate("06/05/2024")
	assert.ErrorIs(t, err, errorvalues.ErrInvalidRange)
}

func TestNextWeekday(t *testing.T) {
	// 2024-05-08 is a Wednesday
	now := time.Date(2024, 5, 8, 17, 45, 0, 0, time.UTC)
	assert.Equal(t, "2024-05-08", scheduling.NextWeekday(now, time.Wednesday).Format("2006-01-02"))
	assert.Equal(t, "2024-05-10", scheduling.NextWeekday(now, time.Friday).Format("2006-01-02"))
	assert.Equal(t, "2024-05-13", scheduling.NextWeekday(now, time.Monday).Format("2006-01-02"))
}
