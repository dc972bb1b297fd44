package analytics

import (
	"fmt"
	"math"
	"sort"

	"github.com/kiep-data/analytics-cli/internal/model"
)

// maxRiskResults caps the returned list. TotalAnalyzed and HighRiskCount
// always reflect the full set, never the capped slice.
const maxRiskResults = 20

// Risk levels, mapped from the additive score.
const (
	RiskHigh     = "high"
	RiskModerate = "moderate"
	RiskLow      = "low"
)

// Risk factor labels, in check order.
const (
	factorLowOccupancy      = "low occupancy"
	factorModerateOccupancy = "moderate occupancy"
	factorLowOperating      = "low operating rate"
	factorModerateOperating = "moderate operating rate"
	factorSmallEmployment   = "small-scale employment"
)

// RiskMetrics carries the figures the score was derived from.
type RiskMetrics struct {
	OccupancyRate float64 `json:"occupancy_rate" yaml:"occupancy_rate"`
	OperatingRate float64 `json:"operating_rate" yaml:"operating_rate"`
	TenantCount   int     `json:"tenant_count" yaml:"tenant_count"`
	Employment    int     `json:"employment" yaml:"employment"`
}

// ComplexRisk is one complex's scored risk assessment.
type ComplexRisk struct {
	ComplexCode string      `json:"complex_code" yaml:"complex_code"`
	Name        string      `json:"name" yaml:"name"`
	RiskScore   int         `json:"risk_score" yaml:"risk_score"`
	RiskLevel   string      `json:"risk_level" yaml:"risk_level"`
	Factors     []string    `json:"factors" yaml:"factors"`
	Metrics     RiskMetrics `json:"metrics" yaml:"metrics"`
}

// RiskReport ranks complexes by risk score, highest first.
type RiskReport struct {
	TotalAnalyzed int           `json:"total_analyzed" yaml:"total_analyzed"`
	HighRiskCount int           `json:"high_risk_count" yaml:"high_risk_count"`
	Results       []ComplexRisk `json:"results" yaml:"results"`
	Summary       string        `json:"summary" yaml:"summary"`
}

// riskLevel maps an additive score onto its level.
func riskLevel(score int) string {
	switch {
	case score >= 50:
		return RiskHigh
	case score >= 25:
		return RiskModerate
	default:
		return RiskLow
	}
}

// scoreComplex applies the three independent risk rules: occupancy check,
// operating-rate check, employment check, in that order. Each rule fires
// at most once; the score tops out at 80.
func scoreComplex(cx model.Complex) ComplexRisk {
	tenants := cx.TenantCount
	if tenants < 1 {
		tenants = 1
	}
	operatingRate := float64(cx.OperatingCount) / float64(tenants) * 100

	score := 0
	factors := []string{}

	switch {
	case cx.OccupancyRate < 70:
		score += 30
		factors = append(factors, factorLowOccupancy)
	case cx.OccupancyRate < 85:
		score += 15
		factors = append(factors, factorModerateOccupancy)
	}

	switch {
	case operatingRate < 60:
		score += 30
		factors = append(factors, factorLowOperating)
	case operatingRate < 80:
		score += 15
		factors = append(factors, factorModerateOperating)
	}

	if cx.Employment < 1000 {
		score += 20
		factors = append(factors, factorSmallEmployment)
	}

	return ComplexRisk{
		ComplexCode: cx.ID,
		Name:        cx.Name,
		RiskScore:   score,
		RiskLevel:   riskLevel(score),
		Factors:     factors,
		Metrics: RiskMetrics{
			OccupancyRate: cx.OccupancyRate,
			OperatingRate: math.Round(operatingRate*10) / 10,
			TenantCount:   tenants,
			Employment:    cx.Employment,
		},
	}
}

// assessRisk scores every complex and ranks the results descending by
// score, stable on ties.
func assessRisk(complexes []model.Complex) *RiskReport {
	results := make([]ComplexRisk, 0, len(complexes))
	highRisk := 0
	for _, cx := range complexes {
		r := scoreComplex(cx)
		if r.RiskLevel == RiskHigh {
			highRisk++
		}
		results = append(results, r)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].RiskScore > results[j].RiskScore
	})

	total := len(results)
	if len(results) > maxRiskResults {
		results = results[:maxRiskResults]
	}

	return &RiskReport{
		TotalAnalyzed: total,
		HighRiskCount: highRisk,
		Results:       results,
		Summary:       fmt.Sprintf("analyzed %d complexes, %d high risk", total, highRisk),
	}
}
