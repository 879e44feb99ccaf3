package planner

// regionalWeeklyAverages maps a cooperative region to its historical weekly
// average yield in tonnes. This is the single canonical copy of the table;
// both risk classification and the display percentage read from it.
var regionalWeeklyAverages = map[string]float64{
	"Kluang, Johor":                        3340.0,
	"Kubang Pasu, Kedah":                   46.57,
	"Pasir Puteh, Kelantan":                20.84,
	"Alor Gajah, Melaka":                   36.2,
	"Kuala Pilah, Negeri Sembilan":         44.06,
	"Rompin, Pahang":                       840.25,
	"Seberang Perai Selatan, Pulau Pinang": 70.19,
	"Perak Tengah, Perak":                  85.92,
	"Perlis, Perlis":                       57.34,
	"Kuala Langat, Selangor":               126.39,
	"Setiu, Terengganu":                    36.31,
	"Tuaran, Sabah":                        207.12,
	"Samarahan, Sarawak":                   189.66,
}

// DefaultWeeklyAverage is used for regions without a historical baseline.
const DefaultWeeklyAverage = 1000.0

// RegionalWeeklyAverage returns the historical weekly average yield for a
// region, falling back to DefaultWeeklyAverage for unknown regions.
func RegionalWeeklyAverage(region string) float64 {
	if avg, ok := regionalWeeklyAverages[region]; ok {
		return avg
	}
	return DefaultWeeklyAverage
}

// Regions returns the set of regions with a known weekly-average baseline.
func Regions() []string {
	regions := make([]string, 0, len(regionalWeeklyAverages))
	for region := range regionalWeeklyAverages {
		regions = append(regions, region)
	}
	return regions
}
