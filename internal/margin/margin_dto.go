package margin

type SimulateRequest struct {
	ResourceType      string   `json:"resourceType" binding:"required"`
	AnnualGrossSalary *float64 `json:"annualGrossSalary"`
	ClientID          int64    `json:"clientId" binding:"required,gt=0"`
	ProposedBillRate  float64  `json:"proposedBillRate" binding:"required,gt=0"`

	// Accepted for forward compatibility; not used by the calculation.
	PlannedHours *int    `json:"plannedHours" binding:"omitempty,gte=0"`
	Seniority    *string `json:"seniority" binding:"omitempty,max=100"`
}

type TargetResults struct {
	CostPerHour                   float64 `json:"costPerHour"`
	EffectiveTargetBillRate       float64 `json:"effectiveTargetBillRate"`
	TheoreticalMarginPercent      float64 `json:"theoreticalMarginPercent"`
	TheoreticalMarginPerHour      float64 `json:"theoreticalMarginPerHour"`
	ConfiguredTargetMarginPercent float64 `json:"configuredTargetMarginPercent"`
	ConfiguredMinMarginPercent    float64 `json:"configuredMinMarginPercent"`
	ConfiguredDiscountPercent     float64 `json:"configuredDiscountPercent"`
	ForcedVacationDaysPerYear     int     `json:"forcedVacationDaysPerYear"`
	Status                        Status  `json:"status"`
}

type ProposedResults struct {
	ProposedBillRate       float64  `json:"proposedBillRate"`
	MarginPercent          float64  `json:"marginPercent"`
	MarginPerHour          float64  `json:"marginPerHour"`
	DiscountPercentApplied *float64 `json:"discountPercentApplied"`
	Status                 Status   `json:"status"`
}

type SimulationResponse struct {
	TargetResults   TargetResults   `json:"targetResults"`
	ProposedResults ProposedResults `json:"proposedResults"`
}

type HistoryFilter struct {
	ClientID *int64
	Page     int
	PageSize int
}

const (
	defaultHistoryPageSize = 20
	maxHistoryPageSize     = 100

	// keeps (Page-1)*PageSize well inside int range
	maxHistoryPage = 100000
)

func (f *HistoryFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Page > maxHistoryPage {
		f.Page = maxHistoryPage
	}
	if f.PageSize < 1 {
		f.PageSize = defaultHistoryPageSize
	}
	if f.PageSize > maxHistoryPageSize {
		f.PageSize = maxHistoryPageSize
	}
}

type HistoryResponse struct {
	ID                       int64    `json:"id"`
	EventID                  string   `json:"eventId"`
	RequestID                string   `json:"requestId,omitempty"`
	UserID                   string   `json:"userId,omitempty"`
	ClientID                 int64    `json:"clientId"`
	ResourceType             string   `json:"resourceType"`
	AnnualGrossSalary        *float64 `json:"annualGrossSalary"`
	ProposedBillRate         float64  `json:"proposedBillRate"`
	CostPerHour              float64  `json:"costPerHour"`
	EffectiveTargetBillRate  float64  `json:"effectiveTargetBillRate"`
	TheoreticalMarginPercent float64  `json:"theoreticalMarginPercent"`
	TargetStatus             string   `json:"targetStatus"`
	ProposedMarginPercent    float64  `json:"proposedMarginPercent"`
	ProposedStatus           string   `json:"proposedStatus"`
	SimulatedAt              string   `json:"simulatedAt"`
}
