package domain

import "github.com/shopspring/decimal"

// ClientFinancialConfig is the read-only view of a client's commercial
// parameters. A nil field means the value was never configured.
type ClientFinancialConfig struct {
	ClientID                  int64
	TargetMarginPercent       *decimal.Decimal
	MinimumMarginPercent      *decimal.Decimal
	DiscountPercent           *decimal.Decimal
	ForcedVacationDaysPerYear *int
	TargetHourlyRate          *decimal.Decimal
}

// MissingFields lists the json names of the unset fields, in a stable order.
func (c ClientFinancialConfig) MissingFields() []string {
	missing := make([]string, 0, 5)
	if c.TargetMarginPercent == nil {
		missing = append(missing, "targetMarginPercent")
	}
	if c.MinimumMarginPercent == nil {
		missing = append(missing, "minimumMarginPercent")
	}
	if c.DiscountPercent == nil {
		missing = append(missing, "discountPercent")
	}
	if c.ForcedVacationDaysPerYear == nil {
		missing = append(missing, "forcedVacationDaysPerYear")
	}
	if c.TargetHourlyRate == nil {
		missing = append(missing, "targetHourlyRate")
	}
	return missing
}

func (c ClientFinancialConfig) IsComplete() bool {
	return len(c.MissingFields()) == 0
}

// SalarySettings is the snapshot of the active global salary settings record.
type SalarySettings struct {
	ID                   int64           `json:"id"`
	EmployerChargesRate  decimal.Decimal `json:"employerChargesRate"`
	IndirectAnnualCosts  decimal.Decimal `json:"indirectAnnualCosts"`
	BillableHoursPerYear int             `json:"billableHoursPerYear"`
}
