package planner_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"agricoop-backend/internal/database/models"
	"agricoop-backend/internal/planner"
)

func schedule(userID uuid.UUID, region string, start time.Time, yield float64) models.HarvestSchedule {
	s := models.HarvestSchedule{
		UserID:           userID,
		UserName:         "Farmer",
		CropType:         "Pineapple",
		EstimatedYield:   yield,
		HarvestStartDate: start,
		HarvestEndDate:   start.AddDate(0, 0, 7),
		Region:           region,
		Status:           models.HarvestStatusActive,
	}
	s.ID = uuid.New()
	return s
}

func TestDetectConflictsTwoFarmersHighRisk(t *testing.T) {
	// Perlis average is 57.34; 40 + 30 = 70 exceeds it.
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	farmerA, farmerB := uuid.New(), uuid.New()

	schedules := []models.HarvestSchedule{
		schedule(farmerA, "Perlis, Perlis", start, 40),
		schedule(farmerB, "Perlis, Perlis", start, 30),
	}

	conflicts := planner.DetectConflicts(schedules, "Perlis, Perlis", now)

	assert.Len(t, conflicts, 1)
	assert.Equal(t, start, conflicts[0].Date)
	assert.Equal(t, 70.0, conflicts[0].TotalYield)
	assert.Equal(t, planner.RiskHigh, conflicts[0].RiskLevel)
	assert.Len(t, conflicts[0].FarmersAffected, 2)
	assert.Len(t, conflicts[0].Schedules, 2)
	assert.Equal(t, "2025-03-10", conflicts[0].DateKey())
}

func TestDetectConflictsSingleFarmerNeverConflicts(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	farmer := uuid.New()

	// One farmer, absurd yield: high risk but no conflict.
	schedules := []models.HarvestSchedule{
		schedule(farmer, "Perlis, Perlis", start, 1000),
	}
	assert.Empty(t, planner.DetectConflicts(schedules, "Perlis, Perlis", now))

	// Same farmer twice on the same date still counts as one farmer.
	schedules = append(schedules, schedule(farmer, "Perlis, Perlis", start, 500))
	assert.Empty(t, planner.DetectConflicts(schedules, "Perlis, Perlis", now))
}

func TestDetectConflictsNonHighRiskNeverConflicts(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	// Five farmers totalling 50 in Perlis (57.34 avg): medium, no conflict.
	var schedules []models.HarvestSchedule
	for i := 0; i < 5; i++ {
		schedules = append(schedules, schedule(uuid.New(), "Perlis, Perlis", start, 10))
	}
	assert.Empty(t, planner.DetectConflicts(schedules, "Perlis, Perlis", now))
}

func TestDetectConflictsExcludesPastStarts(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	past := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	future := time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)

	schedules := []models.HarvestSchedule{
		schedule(uuid.New(), "Perlis, Perlis", past, 40),
		schedule(uuid.New(), "Perlis, Perlis", past, 30),
		schedule(uuid.New(), "Perlis, Perlis", future, 40),
		schedule(uuid.New(), "Perlis, Perlis", future, 30),
	}

	conflicts := planner.DetectConflicts(schedules, "Perlis, Perlis", now)

	// The past date would have conflicted but is no longer actionable.
	assert.Len(t, conflicts, 1)
	assert.Equal(t, future, conflicts[0].Date)

	// The weekly view still includes the past schedules.
	weeks := planner.WeeklyYields(schedules, "Perlis, Perlis")
	var total float64
	for _, w := range weeks {
		total += w.TotalYield
	}
	assert.Equal(t, 140.0, total)
}

func TestDetectConflictsGroupsByStartDateOnly(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	// Different end dates, same start date: one group.
	a := schedule(uuid.New(), "Perlis, Perlis", start, 40)
	b := schedule(uuid.New(), "Perlis, Perlis", start, 30)
	b.HarvestEndDate = start.AddDate(0, 1, 0)

	conflicts := planner.DetectConflicts([]models.HarvestSchedule{a, b}, "Perlis, Perlis", now)
	assert.Len(t, conflicts, 1)

	// Morning and evening starts on the same calendar day also group together.
	c := schedule(uuid.New(), "Perlis, Perlis", start.Add(8*time.Hour), 40)
	d := schedule(uuid.New(), "Perlis, Perlis", start.Add(20*time.Hour), 30)

	conflicts = planner.DetectConflicts([]models.HarvestSchedule{c, d}, "Perlis, Perlis", now)
	assert.Len(t, conflicts, 1)
	assert.Equal(t, start, conflicts[0].Date)
}

func TestDetectConflictsSortedByYieldDescending(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	day1 := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	day3 := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

	schedules := []models.HarvestSchedule{
		schedule(uuid.New(), "Perlis, Perlis", day1, 35),
		schedule(uuid.New(), "Perlis, Perlis", day1, 35),
		schedule(uuid.New(), "Perlis, Perlis", day2, 100),
		schedule(uuid.New(), "Perlis, Perlis", day2, 100),
		schedule(uuid.New(), "Perlis, Perlis", day3, 60),
		schedule(uuid.New(), "Perlis, Perlis", day3, 60),
	}

	conflicts := planner.DetectConflicts(schedules, "Perlis, Perlis", now)

	assert.Len(t, conflicts, 3)
	assert.Equal(t, 200.0, conflicts[0].TotalYield)
	assert.Equal(t, 120.0, conflicts[1].TotalYield)
	assert.Equal(t, 70.0, conflicts[2].TotalYield)
}

func TestDetectConflictsUnknownRegionFallback(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	// Unknown regions classify against the 1000 default.
	schedules := []models.HarvestSchedule{
		schedule(uuid.New(), "Nowhere, Nowhere", start, 600),
		schedule(uuid.New(), "Nowhere, Nowhere", start, 300),
	}
	assert.Empty(t, planner.DetectConflicts(schedules, "Nowhere, Nowhere", now))

	schedules = append(schedules, schedule(uuid.New(), "Nowhere, Nowhere", start, 200))
	conflicts := planner.DetectConflicts(schedules, "Nowhere, Nowhere", now)
	assert.Len(t, conflicts, 1)
	assert.Equal(t, 1100.0, conflicts[0].TotalYield)
}

func TestDetectConflictsIdempotent(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	var schedules []models.HarvestSchedule
	for day := 10; day < 20; day++ {
		start := time.Date(2025, 3, day, 0, 0, 0, 0, time.UTC)
		schedules = append(schedules,
			schedule(uuid.New(), "Perlis, Perlis", start, 40),
			schedule(uuid.New(), "Perlis, Perlis", start, 30),
		)
	}

	first := planner.DetectConflicts(schedules, "Perlis, Perlis", now)
	second := planner.DetectConflicts(schedules, "Perlis, Perlis", now)
	assert.Equal(t, first, second)
}

func TestFilterValid(t *testing.T) {
	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	ok := schedule(uuid.New(), "Perlis, Perlis", start, 40)
	noOwner := schedule(uuid.Nil, "Perlis, Perlis", start, 40)
	noRegion := schedule(uuid.New(), "", start, 40)
	noStart := schedule(uuid.New(), "Perlis, Perlis", time.Time{}, 40)

	valid, dropped := planner.FilterValid([]models.HarvestSchedule{ok, noOwner, noRegion, noStart})

	assert.Len(t, valid, 1)
	assert.Equal(t, 3, dropped)
	assert.Equal(t, ok.ID, valid[0].ID)

	valid, dropped = planner.FilterValid(nil)
	assert.Empty(t, valid)
	assert.Zero(t, dropped)
}
