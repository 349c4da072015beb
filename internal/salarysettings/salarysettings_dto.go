package salarysettings

// Range checks live in the service so callers get the domain messages.
type CreateSettingsRequest struct {
	EmployerChargesRate  *float64 `json:"employerChargesRate" binding:"required"`
	IndirectAnnualCosts  *float64 `json:"indirectAnnualCosts" binding:"required"`
	BillableHoursPerYear *int     `json:"billableHoursPerYear" binding:"required"`
}

type UpdateSettingsRequest = CreateSettingsRequest

type SettingsResponse struct {
	ID                   int64   `json:"id"`
	EmployerChargesRate  float64 `json:"employerChargesRate"`
	IndirectAnnualCosts  float64 `json:"indirectAnnualCosts"`
	BillableHoursPerYear int     `json:"billableHoursPerYear"`
	IsActive             bool    `json:"isActive"`
	CreatedAt            string  `json:"createdAt"`
	UpdatedAt            string  `json:"updatedAt"`
}

type ActiveSettingsResponse struct {
	HasActiveSettings bool              `json:"hasActiveSettings"`
	Settings          *SettingsResponse `json:"settings"`
}
