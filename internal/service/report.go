package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// ReportService exports planner analytics as spreadsheet files for
// cooperative officers
type ReportService struct {
	harvest HarvestServiceInterface
}

// NewReportService creates a new report service
func NewReportService(harvest HarvestServiceInterface) *ReportService {
	return &ReportService{harvest: harvest}
}

// ExportRegionReport builds an xlsx workbook for a region: one sheet of
// weekly yield totals, one of detected conflicts. The workbook is returned
// as bytes for the handler to stream.
func (s *ReportService) ExportRegionReport(region string, now time.Time) ([]byte, error) {
	analytics, err := s.harvest.RegionAnalytics(region, now)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const weeklySheet = "Weekly Yields"
	f.SetSheetName("Sheet1", weeklySheet)

	weeklyHeaders := []string{"Week Start", "Week End", "Total Yield (t)", "Weekly Average (t)", "Risk", "Farmers"}
	for i, h := range weeklyHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(weeklySheet, cell, h)
	}
	for row, w := range analytics.WeeklyYields {
		values := []interface{}{
			w.WeekStart.Format("2006-01-02"),
			w.WeekEnd.Format("2006-01-02"),
			w.TotalYield,
			analytics.WeeklyAverage,
			string(w.RiskLevel),
			w.FarmerCount,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(weeklySheet, cell, v)
		}
	}

	const conflictSheet = "Conflicts"
	if _, err := f.NewSheet(conflictSheet); err != nil {
		return nil, fmt.Errorf("creating conflicts sheet: %w", err)
	}

	conflictHeaders := []string{"Date", "Total Yield (t)", "Risk", "Farmers Affected", "Schedules", "Days Until Start"}
	for i, h := range conflictHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(conflictSheet, cell, h)
	}
	for row, c := range analytics.Conflicts {
		// Every schedule in a conflict shares the start day, so the first
		// one stands in for the group.
		daysUntil := 0
		if len(c.Schedules) > 0 {
			daysUntil = c.Schedules[0].DaysUntilHarvest(now)
		}
		values := []interface{}{
			c.DateKey(),
			c.TotalYield,
			string(c.RiskLevel),
			strings.Join(c.FarmersAffected, ", "),
			len(c.Schedules),
			daysUntil,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(conflictSheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("writing report workbook: %w", err)
	}
	return buf.Bytes(), nil
}
