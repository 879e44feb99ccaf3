package planner_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"agricoop-backend/internal/database/models"
	"agricoop-backend/internal/planner"
)

func TestWeekStart(t *testing.T) {
	monday := time.Date(2025, 4, 7, 0, 0, 0, 0, time.UTC)

	// Every day of that week maps back to its Monday.
	for i := 0; i < 7; i++ {
		day := monday.AddDate(0, 0, i)
		assert.Equal(t, monday, planner.WeekStart(day), "weekday %s", day.Weekday())
	}

	// Time of day is irrelevant.
	assert.Equal(t, monday, planner.WeekStart(monday.Add(23*time.Hour)))

	// Sunday belongs to the week begun six days earlier, not the next one.
	sunday := time.Date(2025, 4, 13, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, monday, planner.WeekStart(sunday))
}

func TestWeeklyYieldsSingleWeek(t *testing.T) {
	// Samarahan average is 189.66; 100 + 50 = 150 is medium (above 94.83).
	monday := time.Date(2025, 4, 7, 0, 0, 0, 0, time.UTC)
	schedules := []models.HarvestSchedule{
		schedule(uuid.New(), "Samarahan, Sarawak", monday.AddDate(0, 0, 1), 100),
		schedule(uuid.New(), "Samarahan, Sarawak", monday.AddDate(0, 0, 4), 50),
	}

	weeks := planner.WeeklyYields(schedules, "Samarahan, Sarawak")

	assert.Len(t, weeks, 1)
	assert.Equal(t, monday, weeks[0].WeekStart)
	assert.Equal(t, monday.AddDate(0, 0, 6), weeks[0].WeekEnd)
	assert.Equal(t, 150.0, weeks[0].TotalYield)
	assert.Equal(t, planner.RiskMedium, weeks[0].RiskLevel)
	assert.Equal(t, 2, weeks[0].FarmerCount)
}

func TestWeeklyYieldsSortedAscending(t *testing.T) {
	base := time.Date(2025, 4, 7, 0, 0, 0, 0, time.UTC)
	// Insert out of chronological order.
	schedules := []models.HarvestSchedule{
		schedule(uuid.New(), "Perlis, Perlis", base.AddDate(0, 0, 21), 5),
		schedule(uuid.New(), "Perlis, Perlis", base, 5),
		schedule(uuid.New(), "Perlis, Perlis", base.AddDate(0, 0, 7), 5),
	}

	weeks := planner.WeeklyYields(schedules, "Perlis, Perlis")

	assert.Len(t, weeks, 3)
	for i := 1; i < len(weeks); i++ {
		assert.True(t, weeks[i-1].WeekStart.Before(weeks[i].WeekStart))
	}
	// The empty week between the second and third entries is omitted.
	assert.Equal(t, base.AddDate(0, 0, 21), weeks[2].WeekStart)
}

func TestWeeklyYieldsPartitionInput(t *testing.T) {
	// Every schedule lands in exactly one emitted week: total yields and
	// schedule counts across weeks equal the input's.
	var schedules []models.HarvestSchedule
	var wantTotal float64
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 40; i++ {
		y := float64(i + 1)
		wantTotal += y
		schedules = append(schedules, schedule(uuid.New(), "Perlis, Perlis", base.AddDate(0, 0, i*3), y))
	}

	weeks := planner.WeeklyYields(schedules, "Perlis, Perlis")

	var gotTotal float64
	starts := make(map[time.Time]bool)
	for _, w := range weeks {
		gotTotal += w.TotalYield
		assert.False(t, starts[w.WeekStart], "duplicate week %v", w.WeekStart)
		starts[w.WeekStart] = true
		assert.Equal(t, time.Monday, w.WeekStart.Weekday())
	}
	assert.InDelta(t, wantTotal, gotTotal, 1e-9)

	assert.Empty(t, planner.WeeklyYields(nil, "Perlis, Perlis"))
}

func TestWeeklyYieldsIncludesPastSchedules(t *testing.T) {
	monday := time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC)
	schedules := []models.HarvestSchedule{
		schedule(uuid.New(), "Perlis, Perlis", monday, 12),
	}

	weeks := planner.WeeklyYields(schedules, "Perlis, Perlis")
	assert.Len(t, weeks, 1)
	assert.Equal(t, 12.0, weeks[0].TotalYield)
}

func TestWeeklyYieldsIdempotent(t *testing.T) {
	base := time.Date(2025, 4, 7, 0, 0, 0, 0, time.UTC)
	var schedules []models.HarvestSchedule
	for i := 0; i < 20; i++ {
		schedules = append(schedules, schedule(uuid.New(), "Tuaran, Sabah", base.AddDate(0, 0, i), float64(10+i)))
	}

	first := planner.WeeklyYields(schedules, "Tuaran, Sabah")
	second := planner.WeeklyYields(schedules, "Tuaran, Sabah")
	assert.Equal(t, first, second)
}
