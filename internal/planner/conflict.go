package planner

import (
	"sort"
	"time"

	"agricoop-backend/internal/database/models"
)

// Conflict is a computed grouping of schedules that jointly oversupply one
// calendar date. Conflicts are recomputed on every query and never stored;
// the date identifies a conflict for clients.
type Conflict struct {
	Date            time.Time                `json:"date"`
	TotalYield      float64                  `json:"total_yield"`
	RiskLevel       RiskLevel                `json:"risk_level"`
	FarmersAffected []string                 `json:"farmers_affected"`
	Schedules       []models.HarvestSchedule `json:"schedules"`
}

// DateKey returns the conflict date formatted as yyyy-MM-dd, the key used
// for the resolution chat thread.
func (c Conflict) DateKey() string {
	return c.Date.Format("2006-01-02")
}

// DetectConflicts finds calendar dates where the combined projected yield of
// more than one farmer is classified high risk for the region. Schedules
// whose harvest start is strictly before now are ignored; only upcoming
// harvests count toward oversupply. Grouping is by the start date only; an
// end date never extends a schedule into other date groups.
//
// The result is sorted by total yield descending, date ascending on ties, so
// repeated invocations on the same input produce identical output.
func DetectConflicts(schedules []models.HarvestSchedule, region string, now time.Time) []Conflict {
	byDate := make(map[time.Time][]models.HarvestSchedule)
	for _, s := range schedules {
		if s.HarvestStartDate.Before(now) {
			continue
		}
		day := truncateToDay(s.HarvestStartDate)
		byDate[day] = append(byDate[day], s)
	}

	avg := RegionalWeeklyAverage(region)
	conflicts := make([]Conflict, 0, len(byDate))
	for day, group := range byDate {
		var total float64
		for _, s := range group {
			total += s.EstimatedYield
		}
		farmers := distinctFarmers(group)

		// Oversupply needs more than one farmer and high risk; a single
		// farmer's enormous yield is their own problem, not a conflict.
		if len(farmers) > 1 && ClassifyRisk(total, avg) == RiskHigh {
			conflicts = append(conflicts, Conflict{
				Date:            day,
				TotalYield:      total,
				RiskLevel:       RiskHigh,
				FarmersAffected: farmers,
				Schedules:       group,
			})
		}
	}

	sort.Slice(conflicts, func(i, j int) bool {
		if conflicts[i].TotalYield != conflicts[j].TotalYield {
			return conflicts[i].TotalYield > conflicts[j].TotalYield
		}
		return conflicts[i].Date.Before(conflicts[j].Date)
	})
	return conflicts
}

// distinctFarmers returns the unique owner ids of a schedule group in
// first-seen order.
func distinctFarmers(schedules []models.HarvestSchedule) []string {
	seen := make(map[string]struct{}, len(schedules))
	farmers := make([]string, 0, len(schedules))
	for _, s := range schedules {
		id := s.UserID.String()
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		farmers = append(farmers, id)
	}
	return farmers
}

// truncateToDay drops the time-of-day component, keeping the location.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
