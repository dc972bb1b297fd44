package analytics

import (
	"sort"

	"github.com/kiep-data/analytics-cli/internal/model"
)

// maxCompareRegions caps one comparison request. Larger requests are
// rejected up front, never silently truncated.
const maxCompareRegions = 5

// compareMetrics are the ranked axes, primary first.
var compareMetrics = []string{"health_score", "company_count", "employee_count", "growth_rate"}

// RegionStanding is one region's row in a comparison, annotated with its
// primary health rank and an independent rank per metric.
type RegionStanding struct {
	RegionCode    string  `json:"region_code" yaml:"region_code"`
	Name          string  `json:"name" yaml:"name"`
	HealthScore   float64 `json:"health_score" yaml:"health_score"`
	CompanyCount  int     `json:"company_count" yaml:"company_count"`
	EmployeeCount int     `json:"employee_count" yaml:"employee_count"`
	GrowthRate    float64 `json:"growth_rate" yaml:"growth_rate"`

	HealthRank int `json:"health_rank" yaml:"health_rank"`
	// MetricRanks maps each compared metric to this region's descending
	// rank on that metric alone. Ranks are independent, never combined
	// into a composite score.
	MetricRanks map[string]int `json:"metric_ranks" yaml:"metric_ranks"`
}

// Comparison is a ranked view over up to maxCompareRegions regions,
// ordered by the primary metric (health score).
type Comparison struct {
	Regions    []*RegionStanding `json:"comparison" yaml:"comparison"`
	Count      int               `json:"count" yaml:"count"`
	BestHealth string            `json:"best_health" yaml:"best_health"`
}

func metricValue(s *RegionStanding, metric string) float64 {
	switch metric {
	case "health_score":
		return s.HealthScore
	case "company_count":
		return float64(s.CompanyCount)
	case "employee_count":
		return float64(s.EmployeeCount)
	case "growth_rate":
		return s.GrowthRate
	default:
		return 0
	}
}

// rankRegions builds the comparison for regions already in fetch-request
// order. Ties on any metric keep that order (stable sort).
func rankRegions(regions []model.Region) *Comparison {
	standings := make([]*RegionStanding, len(regions))
	for i, r := range regions {
		standings[i] = &RegionStanding{
			RegionCode:    r.Code,
			Name:          r.Name,
			HealthScore:   r.HealthScore,
			CompanyCount:  r.CompanyCount,
			EmployeeCount: r.EmployeeCount,
			GrowthRate:    r.GrowthRate,
			MetricRanks:   make(map[string]int, len(compareMetrics)),
		}
	}

	for _, metric := range compareMetrics {
		byMetric := make([]*RegionStanding, len(standings))
		copy(byMetric, standings)
		sort.SliceStable(byMetric, func(i, j int) bool {
			return metricValue(byMetric[i], metric) > metricValue(byMetric[j], metric)
		})
		for rank, s := range byMetric {
			s.MetricRanks[metric] = rank + 1
		}
	}

	ranked := make([]*RegionStanding, len(standings))
	copy(ranked, standings)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].HealthScore > ranked[j].HealthScore
	})
	for rank, s := range ranked {
		s.HealthRank = rank + 1
	}

	return &Comparison{
		Regions:    ranked,
		Count:      len(ranked),
		BestHealth: ranked[0].Name,
	}
}
