package planner

// RiskLevel classifies aggregate projected yield against a region's
// historical weekly average.
type RiskLevel string

const (
	RiskNormal RiskLevel = "normal"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// ClassifyRisk maps a total projected yield to a risk level. High means the
// total exceeds the regional weekly average, medium means it exceeds half of
// it. Stateless; the classification is monotonic in totalYield.
func ClassifyRisk(totalYield, weeklyAverage float64) RiskLevel {
	switch {
	case totalYield > weeklyAverage:
		return RiskHigh
	case totalYield > weeklyAverage/2:
		return RiskMedium
	default:
		return RiskNormal
	}
}

// ClassifyRegionRisk classifies a total yield against the named region's
// weekly average (unknown regions use the default baseline).
func ClassifyRegionRisk(totalYield float64, region string) RiskLevel {
	return ClassifyRisk(totalYield, RegionalWeeklyAverage(region))
}

// YieldPercentage is a display-only helper: the week's total as a percentage
// of the regional weekly average, clamped to [0, 100] for progress bars.
// Risk classification never uses the clamped value.
func YieldPercentage(totalYield float64, region string) int {
	pct := int(totalYield / RegionalWeeklyAverage(region) * 100)
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return pct
}
