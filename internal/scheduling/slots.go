// Package scheduling holds the pure rules of the leader/disciple meeting
// workflow: slot generation, bulk planning and meeting transitions.
package scheduling

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	errorvalues "github.com/JuliPapp/Redimfinal-sub000/internal/error_values"
)

const (
	dateLayout = "2006-01-02"
	// Longest range accepted by DatesInRange, inclusive.
	MaxRangeDays = 92
)

type SlotTime struct {
	Start string `json:"start_time"`
	End   string `json:"end_time"`
}

// ParseClock parses a strict 24h "HH:MM" value.
func ParseClock(s string) (hour, minute int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, 0, errorvalues.ErrInvalidTime
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, errorvalues.ErrInvalidTime
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, errorvalues.ErrInvalidTime
	}
	return hour, minute, nil
}

func formatClock(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// ClockBefore reports whether a is strictly earlier than b. Both must be valid HH:MM.
func ClockBefore(a, b string) (bool, error) {
	ah, am, err := ParseClock(a)
	if err != nil {
		return false, err
	}
	bh, bm, err := ParseClock(b)
	if err != nil {
		return false, err
	}
	return ah*60+am < bh*60+bm, nil
}

// GenerateSlots returns up to count consecutive one-hour slots starting at
// start. A slot whose start or end hour reaches 24 is dropped; there is no
// wraparound past midnight.
func GenerateSlots(start string, count int) ([]SlotTime, error) {
	hour, minute, err := ParseClock(start)
	if err != nil {
		return nil, err
	}
	if count <= 0 {
		return nil, errorvalues.ErrInvalidCount
	}
	slots := make([]SlotTime, 0, count)
	for i := 0; i < count; i++ {
		from := hour + i
		to := from + 1
		if from >= 24 || to >= 24 {
			break
		}
		slots = append(slots, SlotTime{
			Start: formatClock(from, minute),
			End:   formatClock(to, minute),
		})
	}
	return slots, nil
}

// ParseDate parses a YYYY-MM-DD calendar date as UTC midnight.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, errorvalues.ErrInvalidRange
	}
	return d, nil
}

// Day truncates t to its calendar date in UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DatesInRange lists every calendar date from..to, both inclusive.
func DatesInRange(from, to time.Time) ([]time.Time, error) {
	from, to = Day(from), Day(to)
	if to.Before(from) {
		return nil, errorvalues.ErrInvalidRange
	}
	days := int(to.Sub(from).Hours()/24) + 1
	if days > MaxRangeDays {
		return nil, errorvalues.ErrInvalidRange
	}
	dates := make([]time.Time, 0, days)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates, nil
}

// NextWeekday returns the first date on or after now falling on weekday.
// Used for slots of the legacy weekly variant, which carry a weekday instead of a date.
func NextWeekday(now time.Time, weekday time.Weekday) time.Time {
	d := Day(now)
	shift := (int(weekday) - int(d.Weekday()) + 7) % 7
	return d.AddDate(0, 0, shift)
}
