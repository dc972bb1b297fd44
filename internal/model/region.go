// Package model defines the record types fetched from the KIEP data API.
// Upstream responses omit fields freely; every field here carries its zero
// value when absent, resolved once at the fetch boundary.
package model

// Region is a county/district-level administrative region with aggregate
// industrial statistics.
type Region struct {
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	Province      string          `json:"province"`
	CompanyCount  int             `json:"company_count"`
	EmployeeCount int             `json:"employee_count"`
	GrowthRate    float64         `json:"growth_rate"`
	HealthScore   float64         `json:"health_score"`
	TopIndustries []IndustryTally `json:"top_industries,omitempty"`
}

// IndustryTally is one entry of a region's top-industries list.
type IndustryTally struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// HealthMetrics holds the component indicators behind a region's health
// score. Any indicator the upstream cannot compute comes back as 0.
type HealthMetrics struct {
	NewBizRate    float64 `json:"new_biz_rate"`
	ClosureRate   float64 `json:"closure_rate"`
	RevenueGrowth float64 `json:"revenue_growth"`
}
