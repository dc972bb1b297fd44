package analytics

import "github.com/kiep-data/analytics-cli/internal/model"

// Health band labels, from weakest to strongest.
const (
	BandCritical  = "위험"
	BandCaution   = "주의"
	BandAverage   = "보통"
	BandGood      = "양호"
	BandExcellent = "우수"
)

// ClassifyHealth maps a health score onto its band. Boundaries belong to
// the upper band: 40 is 주의, 85 is 우수. Total over all float inputs.
func ClassifyHealth(score float64) string {
	switch {
	case score < 40:
		return BandCritical
	case score < 55:
		return BandCaution
	case score < 70:
		return BandAverage
	case score < 85:
		return BandGood
	default:
		return BandExcellent
	}
}

// RegionHealthReport is the packaged health view of one region.
type RegionHealthReport struct {
	RegionCode  string              `json:"region_code" yaml:"region_code"`
	RegionName  string              `json:"region_name" yaml:"region_name"`
	Province    string              `json:"province" yaml:"province"`
	HealthScore float64             `json:"health_score" yaml:"health_score"`
	HealthBand  string              `json:"health_band" yaml:"health_band"`
	Metrics     RegionHealthMetrics `json:"metrics" yaml:"metrics"`
}

// RegionHealthMetrics bundles the region aggregates with the health
// component indicators. Indicators missing upstream stay 0.
type RegionHealthMetrics struct {
	CompanyCount  int     `json:"company_count" yaml:"company_count"`
	EmployeeCount int     `json:"employee_count" yaml:"employee_count"`
	GrowthRate    float64 `json:"growth_rate" yaml:"growth_rate"`
	NewBizRate    float64 `json:"new_biz_rate" yaml:"new_biz_rate"`
	ClosureRate   float64 `json:"closure_rate" yaml:"closure_rate"`
	RevenueGrowth float64 `json:"revenue_growth" yaml:"revenue_growth"`
}

// buildHealthReport assembles the report for a fetched region. health may
// be nil when the indicator fetch failed; the indicators then default to 0.
func buildHealthReport(region *model.Region, health *model.HealthMetrics) *RegionHealthReport {
	report := &RegionHealthReport{
		RegionCode:  region.Code,
		RegionName:  region.Name,
		Province:    region.Province,
		HealthScore: region.HealthScore,
		HealthBand:  ClassifyHealth(region.HealthScore),
		Metrics: RegionHealthMetrics{
			CompanyCount:  region.CompanyCount,
			EmployeeCount: region.EmployeeCount,
			GrowthRate:    region.GrowthRate,
		},
	}
	if health != nil {
		report.Metrics.NewBizRate = health.NewBizRate
		report.Metrics.ClosureRate = health.ClosureRate
		report.Metrics.RevenueGrowth = health.RevenueGrowth
	}
	return report
}
