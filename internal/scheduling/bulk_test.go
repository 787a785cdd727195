package scheduling_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	errorvalues "github.com/JuliPapp/Redimfinal-sub000/internal/error_values"
	"github.com/JuliPapp/Redimfinal-sub000/internal/scheduling"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanBulk(t *testing.T) {
	monday := time.Date(2024, 5, 6, 10, 0, 0, 0, time.UTC)
	tuesday := monday.AddDate(0, 0, 1)

	plan, err := scheduling.PlanBulk([]time.Time{monday, tuesday, monday}, "09:00", 2)
	require.NoError(t, err)
	require.Len(t, plan, 4)
	assert.Equal(t, scheduling.Day(monday), plan[0].Date)
	assert.Equal(t, "10:00", plan[1].Start)
	assert.Equal(t, scheduling.Day(tuesday), plan[2].Date)

	t.Run("no dates", func(t *testing.T) {
		_, err := scheduling.PlanBulk(nil, "09:00", 2)
		assert.ErrorIs(t, err, errorvalues.ErrNoDates)
	})
	t.Run("bad start", func(t *testing.T) {
		_, err := scheduling.PlanBulk([]time.Time{monday}, "9am", 2)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidTime)
	})
}

func TestBulkResultSummary(t *testing.T) {
	plan, err := scheduling.PlanBulk([]time.Time{time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)}, "08:00", 8)
	require.NoError(t, err)

	var res scheduling.BulkResult
	res.Add(plan[0], nil)
	res.Add(plan[1], fmt.Errorf("insert: %w", errorvalues.ErrSlotExists))
	for _, s := range plan[2:7] {
		res.Add(s, errors.New("db error"))
	}
	res.Add(plan[7], nil)

	sum := res.Summary()
	assert.Equal(t, 2, sum.Created)
	assert.Equal(t, 1, sum.Skipped)
	assert.Equal(t, []string{
		"2024-05-06 10:00: db error",
		"2024-05-06 11:00: db error",
		"2024-05-06 12:00: db error",
	}, sum.Errors)
	assert.Equal(t, 2, sum.MoreErrors)
}

func TestBulkResultSummaryNoErrors(t *testing.T) {
	var res scheduling.BulkResult
	sum := res.Summary()
	assert.NotNil(t, sum.Errors)
	assert.Empty(t, sum.Errors)
	assert.Zero(t, sum.MoreErrors)
}
