package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"agricoop-backend/internal/auth"
	"agricoop-backend/internal/service"
)

// PlannerHandler serves the regional planner views: conflict analytics,
// group membership, and spreadsheet exports
type PlannerHandler struct {
	harvestService service.HarvestServiceInterface
	reportService  service.ReportServiceInterface
}

// NewPlannerHandler creates a new planner handler
func NewPlannerHandler(harvestService service.HarvestServiceInterface, reportService service.ReportServiceInterface) *PlannerHandler {
	return &PlannerHandler{
		harvestService: harvestService,
		reportService:  reportService,
	}
}

// callerRegion resolves the region to analyze: an explicit query parameter
// wins, otherwise the caller's own region from their token.
func callerRegion(c *gin.Context) string {
	if region := c.Query("region"); region != "" {
		return region
	}
	region, _ := auth.GetRegion(c)
	return region
}

// Analytics handles GET /planner/analytics
// @Summary Regional planner analytics
// @Description Computes harvest conflicts, weekly yield totals and group statistics for a region
// @Tags planner
// @Produce json
// @Param region query string false "Region to analyze (defaults to the caller's region)"
// @Success 200 {object} service.RegionAnalytics "Computed analytics"
// @Failure 400 {object} ErrorResponse "Missing region"
// @Security BearerAuth
// @Router /planner/analytics [get]
func (h *PlannerHandler) Analytics(c *gin.Context) {
	analytics, err := h.harvestService.RegionAnalytics(callerRegion(c), time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, analytics)
}

// Group handles GET /planner/group
// @Summary List cooperative group members
// @Description Lists the members of a region with their planned harvest activity
// @Tags planner
// @Produce json
// @Param region query string false "Region to list (defaults to the caller's region)"
// @Success 200 {array} service.GroupMember "Group members"
// @Failure 400 {object} ErrorResponse "Missing region"
// @Security BearerAuth
// @Router /planner/group [get]
func (h *PlannerHandler) Group(c *gin.Context) {
	members, err := h.harvestService.GroupMembers(callerRegion(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

// ExportReport handles GET /planner/report/export
// @Summary Export planner report
// @Description Streams an xlsx workbook of the region's weekly yields and conflicts
// @Tags planner
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param region query string false "Region to export (defaults to the caller's region)"
// @Success 200 {file} binary "Report workbook"
// @Failure 400 {object} ErrorResponse "Missing region"
// @Security BearerAuth
// @Router /planner/report/export [get]
func (h *PlannerHandler) ExportReport(c *gin.Context) {
	region := callerRegion(c)
	report, err := h.reportService.ExportRegionReport(region, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}

	filename := fmt.Sprintf("harvest-report-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", report)
}
