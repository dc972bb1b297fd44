package analytics

import (
	"strings"

	"github.com/kiep-data/analytics-cli/internal/model"
)

// bizNoLength is the fixed length of a business registration number
// after separator stripping.
const bizNoLength = 10

// NormalizeBizNo strips hyphens from a business registration number and
// validates the result is exactly 10 characters.
func NormalizeBizNo(raw string) (string, error) {
	clean := strings.ReplaceAll(raw, "-", "")
	if len(clean) != bizNoLength {
		return "", validationErr("business registration number must be %d digits, got %q", bizNoLength, clean)
	}
	return clean, nil
}

// EmploymentProfile is the employment section of a company profile.
type EmploymentProfile struct {
	Current int                     `json:"current" yaml:"current"`
	History []model.EmploymentPoint `json:"history" yaml:"history"`
}

// ProcurementProfile is the public-procurement section of a company profile.
type ProcurementProfile struct {
	TotalContracts int                         `json:"total_contracts" yaml:"total_contracts"`
	TotalAmount    float64                     `json:"total_amount" yaml:"total_amount"`
	Recent         []model.ProcurementContract `json:"recent" yaml:"recent"`
}

// CompanyProfile is the fixed-shape 360° view of a company. Fields the
// upstream omits hold their zero values; list sections are never nil.
type CompanyProfile struct {
	BizNo       string                  `json:"biz_no" yaml:"biz_no"`
	Name        string                  `json:"name" yaml:"name"`
	Status      string                  `json:"status" yaml:"status"`
	Industry    string                  `json:"industry" yaml:"industry"`
	Address     string                  `json:"address" yaml:"address"`
	Employment  EmploymentProfile       `json:"employment" yaml:"employment"`
	Financials  []model.FinancialPeriod `json:"financials" yaml:"financials"`
	Procurement ProcurementProfile      `json:"procurement" yaml:"procurement"`
	HealthScore float64                 `json:"health_score" yaml:"health_score"`
	RegionCode  string                  `json:"region_code" yaml:"region_code"`
}

// assembleProfile reshapes a fetched company into the profile form.
// Pure reshape: no scoring or derivation beyond zero-defaulting.
func assembleProfile(company *model.Company) *CompanyProfile {
	history := company.EmploymentHistory
	if history == nil {
		history = []model.EmploymentPoint{}
	}
	financials := company.Financials
	if financials == nil {
		financials = []model.FinancialPeriod{}
	}
	recent := company.RecentProcurement
	if recent == nil {
		recent = []model.ProcurementContract{}
	}

	return &CompanyProfile{
		BizNo:    company.BizNo,
		Name:     company.Name,
		Status:   company.Status,
		Industry: company.IndustryName,
		Address:  company.Address,
		Employment: EmploymentProfile{
			Current: company.EmployeeCount,
			History: history,
		},
		Financials: financials,
		Procurement: ProcurementProfile{
			TotalContracts: company.ProcurementCount,
			TotalAmount:    company.ProcurementAmount,
			Recent:         recent,
		},
		HealthScore: company.HealthScore,
		RegionCode:  company.RegionCode,
	}
}
