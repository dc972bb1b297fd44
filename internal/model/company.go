package model

// Company is the merged NPS/NTS/FSC/PPS view of a single business,
// keyed by its 10-digit business registration number.
type Company struct {
	BizNo             string                `json:"biz_no"`
	Name              string                `json:"name"`
	Status            string                `json:"status"`
	IndustryName      string                `json:"industry_name"`
	Address           string                `json:"address"`
	EmployeeCount     int                   `json:"employee_count"`
	EmploymentHistory []EmploymentPoint     `json:"employment_history,omitempty"`
	Financials        []FinancialPeriod     `json:"financials,omitempty"`
	ProcurementCount  int                   `json:"procurement_count"`
	ProcurementAmount float64               `json:"procurement_amount"`
	RecentProcurement []ProcurementContract `json:"recent_procurement,omitempty"`
	HealthScore       float64               `json:"health_score"`
	RegionCode        string                `json:"region_code"`
}

// EmploymentPoint is one month of the NPS employment series.
type EmploymentPoint struct {
	YearMonth     string `json:"year_month"`
	EmployeeCount int    `json:"employee_count"`
	NewHires      int    `json:"new_hires"`
	Departures    int    `json:"departures"`
}

// FinancialPeriod is one fiscal period of FSC financial data.
type FinancialPeriod struct {
	FiscalYear      int   `json:"fiscal_year"`
	Revenue         int64 `json:"revenue"`
	OperatingIncome int64 `json:"operating_income"`
	NetIncome       int64 `json:"net_income"`
}

// ProcurementContract is one PPS public-procurement contract.
type ProcurementContract struct {
	ContractNo   string  `json:"contract_no"`
	Title        string  `json:"title"`
	Agency       string  `json:"agency"`
	Amount       float64 `json:"amount"`
	ContractDate string  `json:"contract_date"`
}
