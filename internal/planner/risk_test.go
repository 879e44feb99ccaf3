package planner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"agricoop-backend/internal/planner"
)

func TestClassifyRisk(t *testing.T) {
	avg := 100.0

	assert.Equal(t, planner.RiskNormal, planner.ClassifyRisk(0, avg))
	assert.Equal(t, planner.RiskNormal, planner.ClassifyRisk(50, avg)) // exactly half is not medium
	assert.Equal(t, planner.RiskMedium, planner.ClassifyRisk(50.01, avg))
	assert.Equal(t, planner.RiskMedium, planner.ClassifyRisk(100, avg)) // exactly average is not high
	assert.Equal(t, planner.RiskHigh, planner.ClassifyRisk(100.01, avg))
}

func TestClassifyRiskMonotonic(t *testing.T) {
	rank := map[planner.RiskLevel]int{
		planner.RiskNormal: 0,
		planner.RiskMedium: 1,
		planner.RiskHigh:   2,
	}

	for _, region := range planner.Regions() {
		avg := planner.RegionalWeeklyAverage(region)
		yields := []float64{0, avg / 4, avg / 2, avg/2 + 0.01, avg - 0.01, avg, avg + 0.01, avg * 2, avg * 10}

		prev := -1
		for _, y := range yields {
			level := rank[planner.ClassifyRisk(y, avg)]
			assert.GreaterOrEqual(t, level, prev, "risk decreased at yield %v in %s", y, region)
			prev = level
		}
	}
}

func TestRegionalWeeklyAverage(t *testing.T) {
	assert.Equal(t, 57.34, planner.RegionalWeeklyAverage("Perlis, Perlis"))
	assert.Equal(t, 189.66, planner.RegionalWeeklyAverage("Samarahan, Sarawak"))
	assert.Equal(t, 3340.0, planner.RegionalWeeklyAverage("Kluang, Johor"))
	assert.Len(t, planner.Regions(), 13)

	// Unknown regions fall back to the default baseline.
	assert.Equal(t, planner.DefaultWeeklyAverage, planner.RegionalWeeklyAverage("Atlantis"))
	assert.Equal(t, planner.DefaultWeeklyAverage, planner.RegionalWeeklyAverage(""))
}

func TestYieldPercentage(t *testing.T) {
	// Perlis average is 57.34
	assert.Equal(t, 0, planner.YieldPercentage(0, "Perlis, Perlis"))
	assert.Equal(t, 50, planner.YieldPercentage(28.67, "Perlis, Perlis"))
	assert.Equal(t, 100, planner.YieldPercentage(57.34, "Perlis, Perlis"))

	// Clamped for display, while classification stays unclamped.
	assert.Equal(t, 100, planner.YieldPercentage(500, "Perlis, Perlis"))
	assert.Equal(t, planner.RiskHigh, planner.ClassifyRegionRisk(500, "Perlis, Perlis"))
}
