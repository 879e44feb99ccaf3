package planner

import (
	"sort"
	"time"

	"agricoop-backend/internal/database/models"
)

// WeeklyYield is the aggregate projected yield for one Monday-to-Sunday week
// in a region. Recomputed on every query, never persisted.
type WeeklyYield struct {
	WeekStart   time.Time `json:"week_start"`
	WeekEnd     time.Time `json:"week_end"`
	TotalYield  float64   `json:"total_yield"`
	RiskLevel   RiskLevel `json:"risk_level"`
	FarmerCount int       `json:"farmer_count"`
}

// WeeklyYields summarizes total projected yield per calendar week for a
// region. Unlike conflict detection there is no past-date cutoff: every
// schedule contributes to the week containing its harvest start date. Weeks
// without schedules are omitted, not zero-filled. The result is sorted by
// week start ascending.
func WeeklyYields(schedules []models.HarvestSchedule, region string) []WeeklyYield {
	byWeek := make(map[time.Time][]models.HarvestSchedule)
	for _, s := range schedules {
		week := WeekStart(s.HarvestStartDate)
		byWeek[week] = append(byWeek[week], s)
	}

	avg := RegionalWeeklyAverage(region)
	weeks := make([]WeeklyYield, 0, len(byWeek))
	for start, group := range byWeek {
		var total float64
		for _, s := range group {
			total += s.EstimatedYield
		}
		weeks = append(weeks, WeeklyYield{
			WeekStart:   start,
			WeekEnd:     start.AddDate(0, 0, 6),
			TotalYield:  total,
			RiskLevel:   ClassifyRisk(total, avg),
			FarmerCount: len(distinctFarmers(group)),
		})
	}

	sort.Slice(weeks, func(i, j int) bool {
		return weeks[i].WeekStart.Before(weeks[j].WeekStart)
	})
	return weeks
}

// WeekStart returns the Monday beginning the ISO week containing t, at
// midnight. Computed from the date itself, never from a locale's
// first-day-of-week setting.
func WeekStart(t time.Time) time.Time {
	day := truncateToDay(t)
	// time.Weekday numbers Sunday as 0; shift so Monday is 0.
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}
