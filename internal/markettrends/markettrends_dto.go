package markettrends

type TrendsRequest struct {
	Role                 string   `json:"role" binding:"required"`
	Seniority            *string  `json:"seniority"`
	ResourceType         string   `json:"resourceType" binding:"required"`
	Location             *string  `json:"location"`
	Currency             string   `json:"currency" binding:"required"`
	ProposedAnnualSalary *float64 `json:"proposedAnnualSalary" binding:"omitempty,gt=0"`
	ProposedBillRate     *float64 `json:"proposedBillRate" binding:"omitempty,gt=0"`
	ClientName           *string  `json:"clientName"`
	BusinessUnit         *string  `json:"businessUnit"`
}

type Range struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Currency string  `json:"currency"`
}

type RangeByLevel struct {
	Junior       Range `json:"junior"`
	Intermediate Range `json:"intermediate"`
	Senior       Range `json:"senior"`
}

type TrendsResponse struct {
	SalaryRangeByLevel        *RangeByLevel `json:"salaryRangeByLevel"`
	FreelanceRateRangeByLevel *RangeByLevel `json:"freelanceRateRangeByLevel"`
	SalaryRange               Range         `json:"salaryRange"`
	FreelanceRateRange        Range         `json:"freelanceRateRange"`
	EmployeePositioning       string        `json:"employeePositioning"`
	FreelancePositioning      string        `json:"freelancePositioning"`
	MarketDemand              string        `json:"marketDemand"`
	RiskLevel                 string        `json:"riskLevel"`
	Summary                   string        `json:"summary"`
	Recommendation            string        `json:"recommendation"`
	RawModelOutput            string        `json:"rawModelOutput,omitempty"`
}
