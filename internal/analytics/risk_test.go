package analytics

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiep-data/analytics-cli/internal/model"
)

func TestScoreComplex_AllFactors(t *testing.T) {
	t.Parallel()

	r := scoreComplex(model.Complex{
		ID:             "COMPLEX-0001",
		Name:           "녹산일반산업단지",
		TenantCount:    10,
		OperatingCount: 5,
		OccupancyRate:  65,
		Employment:     500,
	})

	assert.Equal(t, 80, r.RiskScore)
	assert.Equal(t, RiskHigh, r.RiskLevel)
	assert.Equal(t, []string{"low occupancy", "low operating rate", "small-scale employment"}, r.Factors)
	assert.Equal(t, 65.0, r.Metrics.OccupancyRate)
	assert.Equal(t, 50.0, r.Metrics.OperatingRate)
	assert.Equal(t, 10, r.Metrics.TenantCount)
	assert.Equal(t, 500, r.Metrics.Employment)
}

func TestScoreComplex_NoFactors(t *testing.T) {
	t.Parallel()

	r := scoreComplex(model.Complex{
		TenantCount:    100,
		OperatingCount: 90,
		OccupancyRate:  95,
		Employment:     5000,
	})

	assert.Equal(t, 0, r.RiskScore)
	assert.Equal(t, RiskLow, r.RiskLevel)
	assert.Empty(t, r.Factors)
}

func TestScoreComplex_ZeroTenantsNoDivisionFault(t *testing.T) {
	t.Parallel()

	r := scoreComplex(model.Complex{
		TenantCount:    0,
		OperatingCount: 0,
		OccupancyRate:  90,
		Employment:     2000,
	})

	assert.Equal(t, 0.0, r.Metrics.OperatingRate)
	assert.Equal(t, 1, r.Metrics.TenantCount)
	assert.Equal(t, []string{"low operating rate"}, r.Factors)
	assert.Equal(t, 30, r.RiskScore)
}

func TestScoreComplex_BoundaryRates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		occupancy float64
		operating int
		tenants   int
		want      int
		factors   []string
	}{
		{"occupancy 70 is moderate", 70, 100, 100, 15, []string{"moderate occupancy"}},
		{"occupancy 85 clears", 85, 100, 100, 0, nil},
		{"operating 60pct is moderate", 100, 60, 100, 15, []string{"moderate operating rate"}},
		{"operating 80pct clears", 100, 80, 100, 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := scoreComplex(model.Complex{
				TenantCount:    tt.tenants,
				OperatingCount: tt.operating,
				OccupancyRate:  tt.occupancy,
				Employment:     5000,
			})
			assert.Equal(t, tt.want, r.RiskScore)
			if tt.factors == nil {
				assert.Empty(t, r.Factors)
			} else {
				assert.Equal(t, tt.factors, r.Factors)
			}
		})
	}
}

func TestScoreComplex_OutOfRangeInputs(t *testing.T) {
	t.Parallel()

	// Nonsense upstream values must classify, not crash.
	r := scoreComplex(model.Complex{
		TenantCount:    5,
		OperatingCount: 50,
		OccupancyRate:  240,
		Employment:     -3,
	})

	assert.GreaterOrEqual(t, r.RiskScore, 0)
	assert.LessOrEqual(t, r.RiskScore, 80)
	assert.Equal(t, 1000.0, r.Metrics.OperatingRate)
}

func TestRiskLevel_Thresholds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		score int
		want  string
	}{
		{0, RiskLow},
		{20, RiskLow},
		{24, RiskLow},
		{25, RiskModerate},
		{45, RiskModerate},
		{49, RiskModerate},
		{50, RiskHigh},
		{80, RiskHigh},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, riskLevel(tt.score), "score %d", tt.score)
	}
}

func TestAssessRisk_RanksDescending(t *testing.T) {
	t.Parallel()

	report := assessRisk([]model.Complex{
		{ID: "OK", TenantCount: 100, OperatingCount: 95, OccupancyRate: 95, Employment: 8000},
		{ID: "BAD", TenantCount: 10, OperatingCount: 3, OccupancyRate: 50, Employment: 200},
		{ID: "MID", TenantCount: 100, OperatingCount: 70, OccupancyRate: 80, Employment: 4000},
	})

	require.Len(t, report.Results, 3)
	assert.Equal(t, "BAD", report.Results[0].ComplexCode)
	assert.Equal(t, "MID", report.Results[1].ComplexCode)
	assert.Equal(t, "OK", report.Results[2].ComplexCode)
	assert.Equal(t, 3, report.TotalAnalyzed)
	assert.Equal(t, 1, report.HighRiskCount)
}

func TestAssessRisk_TruncatesButCountsAll(t *testing.T) {
	t.Parallel()

	complexes := make([]model.Complex, 25)
	for i := range complexes {
		complexes[i] = model.Complex{
			ID:          fmt.Sprintf("CX-%02d", i),
			TenantCount: 10, OperatingCount: 2, OccupancyRate: 40, Employment: 100,
		}
	}

	report := assessRisk(complexes)

	assert.Len(t, report.Results, maxRiskResults)
	assert.Equal(t, 25, report.TotalAnalyzed)
	assert.Equal(t, 25, report.HighRiskCount)
}

func TestAssessRisk_StableOnTiedScores(t *testing.T) {
	t.Parallel()

	report := assessRisk([]model.Complex{
		{ID: "FIRST", TenantCount: 10, OperatingCount: 2, OccupancyRate: 40, Employment: 100},
		{ID: "SECOND", TenantCount: 10, OperatingCount: 2, OccupancyRate: 40, Employment: 100},
	})

	require.Len(t, report.Results, 2)
	assert.Equal(t, "FIRST", report.Results[0].ComplexCode)
	assert.Equal(t, "SECOND", report.Results[1].ComplexCode)
}

func TestAssessRisk_EmptyInput(t *testing.T) {
	t.Parallel()

	report := assessRisk(nil)

	assert.Zero(t, report.TotalAnalyzed)
	assert.Zero(t, report.HighRiskCount)
	assert.NotNil(t, report.Results)
	assert.Empty(t, report.Results)
}

func TestScoreComplex_OperatingRateRounding(t *testing.T) {
	t.Parallel()

	// 2/3 of tenants operating: 66.666... rounds to 66.7 in the metrics
	// while the unrounded value drives the rules.
	r := scoreComplex(model.Complex{
		TenantCount:    3,
		OperatingCount: 2,
		OccupancyRate:  95,
		Employment:     5000,
	})

	assert.Equal(t, 66.7, r.Metrics.OperatingRate)
	assert.Equal(t, []string{"moderate operating rate"}, r.Factors)
	assert.Equal(t, 15, r.RiskScore)
}
