package model

// Complex is an industrial park/zone tracked for occupancy and
// operating status.
type Complex struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Province       string  `json:"province"`
	TenantCount    int     `json:"tenant_count"`
	OperatingCount int     `json:"operating_count"`
	OccupancyRate  float64 `json:"occupancy_rate"`
	Employment     int     `json:"employment"`
}
