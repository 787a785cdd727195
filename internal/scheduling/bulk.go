package scheduling

import (
	"errors"
	"fmt"
	"time"

	errorvalues "github.com/JuliPapp/Redimfinal-sub000/internal/error_values"
)

// Number of individual failures reported by BulkResult.Summary.
const summaryErrors = 3

type BulkSlot struct {
	Date time.Time
	SlotTime
}

// PlanBulk expands every date into count consecutive one-hour slots.
// Repeated dates are planned once.
func PlanBulk(dates []time.Time, start string, count int) ([]BulkSlot, error) {
	if len(dates) == 0 {
		return nil, errorvalues.ErrNoDates
	}
	times, err := GenerateSlots(start, count)
	if err != nil {
		return nil, err
	}
	seen := make(map[time.Time]struct{}, len(dates))
	plan := make([]BulkSlot, 0, len(dates)*len(times))
	for _, d := range dates {
		d = Day(d)
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		for _, t := range times {
			plan = append(plan, BulkSlot{Date: d, SlotTime: t})
		}
	}
	return plan, nil
}

type BulkFailure struct {
	Slot BulkSlot
	Err  error
}

type BulkResult struct {
	Created  int
	Skipped  int
	Failures []BulkFailure
}

// Add records the outcome of one slot submission. Already-existing slots are
// counted as skipped, not as failures.
func (r *BulkResult) Add(slot BulkSlot, err error) {
	switch {
	case err == nil:
		r.Created++
	case errors.Is(err, errorvalues.ErrSlotExists):
		r.Skipped++
	default:
		r.Failures = append(r.Failures, BulkFailure{Slot: slot, Err: err})
	}
}

type BulkSummary struct {
	Created    int      `json:"created"`
	Skipped    int      `json:"skipped"`
	Errors     []string `json:"errors"`
	MoreErrors int      `json:"more_errors"`
}

func (r *BulkResult) Summary() BulkSummary {
	s := BulkSummary{
		Created: r.Created,
		Skipped: r.Skipped,
		Errors:  make([]string, 0, summaryErrors),
	}
	for i, f := range r.Failures {
		if i == summaryErrors {
			s.MoreErrors = len(r.Failures) - summaryErrors
			break
		}
		s.Errors = append(s.Errors, fmt.Sprintf("%s %s: %s", f.Slot.Date.Format(dateLayout), f.Slot.Start, f.Err))
	}
	return s
}
