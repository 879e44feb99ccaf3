package planner

import (
	"github.com/google/uuid"

	"agricoop-backend/internal/database/models"
)

// FilterValid drops schedules that are too malformed to aggregate: missing
// owner, missing region, or a zero harvest start date. Records are
// denormalized and schema drift is expected, so invalid entries are filtered
// rather than failing the whole computation. The dropped count is returned
// for diagnostics; callers decide whether to log it.
func FilterValid(schedules []models.HarvestSchedule) ([]models.HarvestSchedule, int) {
	valid := make([]models.HarvestSchedule, 0, len(schedules))
	dropped := 0
	for _, s := range schedules {
		if s.UserID == uuid.Nil || s.Region == "" || s.HarvestStartDate.IsZero() {
			dropped++
			continue
		}
		valid = append(valid, s)
	}
	return valid, dropped
}
