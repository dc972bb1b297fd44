package analytics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kiep-data/analytics-cli/internal/model"
)

// clusterFetchLimit is the fixed bulk-region fetch size for cluster scans.
const clusterFetchLimit = 250

// ClusterMatch is one region where the searched industry is concentrated.
type ClusterMatch struct {
	RegionCode    string  `json:"region_code" yaml:"region_code"`
	RegionName    string  `json:"region_name" yaml:"region_name"`
	Province      string  `json:"province" yaml:"province"`
	IndustryName  string  `json:"industry_name" yaml:"industry_name"`
	CompanyCount  int     `json:"company_count" yaml:"company_count"`
	EmployeeCount int     `json:"employee_count" yaml:"employee_count"`
	HealthScore   float64 `json:"health_score" yaml:"health_score"`
}

// ClusterReport lists the regions matching an industry keyword, ranked by
// company count. TotalClusters counts every match; TopClusters is capped.
type ClusterReport struct {
	Industry      string         `json:"industry" yaml:"industry"`
	TotalClusters int            `json:"total_clusters" yaml:"total_clusters"`
	TopClusters   []ClusterMatch `json:"top_clusters" yaml:"top_clusters"`
	Summary       string         `json:"summary" yaml:"summary"`
}

// matchClusters scans each region's top-industries list for the first
// entry containing keyword as a substring. A region contributes at most
// one match; the scan stops at the first hit even when a later entry has
// a higher count. Matches below minCompanies are dropped; survivors are
// sorted descending by company count (stable on ties) and capped at topN.
func matchClusters(regions []model.Region, keyword string, minCompanies, topN int) *ClusterReport {
	matches := []ClusterMatch{}
	for _, region := range regions {
		var hit *model.IndustryTally
		for i := range region.TopIndustries {
			if strings.Contains(region.TopIndustries[i].Name, keyword) {
				hit = &region.TopIndustries[i]
				break
			}
		}
		if hit == nil || hit.Count < minCompanies {
			continue
		}
		matches = append(matches, ClusterMatch{
			RegionCode:    region.Code,
			RegionName:    region.Name,
			Province:      region.Province,
			IndustryName:  hit.Name,
			CompanyCount:  hit.Count,
			EmployeeCount: region.EmployeeCount,
			HealthScore:   region.HealthScore,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].CompanyCount > matches[j].CompanyCount
	})

	top := matches
	if len(top) > topN {
		top = top[:topN]
	}

	return &ClusterReport{
		Industry:      keyword,
		TotalClusters: len(matches),
		TopClusters:   top,
		Summary: fmt.Sprintf("found %d cluster regions for %q, showing top %d",
			len(matches), keyword, len(top)),
	}
}
