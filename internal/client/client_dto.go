package client

const (
	financialConfigComplete   = "Complet"
	financialConfigIncomplete = "Paramètres incomplets, à compléter par le CFO (marges, remise, jours de vacances forcés et vendant cible)"
)

type CreateClientRequest struct {
	Code           string `json:"code" binding:"required,min=2,max=50"`
	Name           string `json:"name" binding:"required,min=2,max=200"`
	BusinessUnitID int64  `json:"businessUnitId" binding:"required,gt=0"`
	SectorID       int64  `json:"sectorId" binding:"required,gt=0"`
	CountryID      int64  `json:"countryId" binding:"required,gt=0"`
	CurrencyID     int64  `json:"currencyId" binding:"required,gt=0"`
	ContactName    string `json:"contactName" binding:"required,min=2,max=200"`
	ContactEmail   string `json:"contactEmail" binding:"required,email,max=200"`
}

type UpdateClientRequest struct {
	CreateClientRequest
	IsActive *bool `json:"isActive"`
}

// FinancialConfigRequest replaces all five financial fields. A null clears the value.
type FinancialConfigRequest struct {
	TargetMarginPercent       *float64 `json:"targetMarginPercent" binding:"omitempty,gte=0,lte=100"`
	MinimumMarginPercent      *float64 `json:"minimumMarginPercent" binding:"omitempty,gte=0,lte=100"`
	DiscountPercent           *float64 `json:"discountPercent" binding:"omitempty,gte=0,lte=100"`
	ForcedVacationDaysPerYear *int     `json:"forcedVacationDaysPerYear" binding:"omitempty,gte=0,lte=365"`
	TargetHourlyRate          *float64 `json:"targetHourlyRate" binding:"omitempty,gt=0"`
}

type ClientResponse struct {
	ID             int64  `json:"id"`
	Code           string `json:"code"`
	Name           string `json:"name"`
	BusinessUnitID int64  `json:"businessUnitId"`
	SectorID       int64  `json:"sectorId"`
	CountryID      int64  `json:"countryId"`
	CurrencyID     int64  `json:"currencyId"`

	TargetMarginPercent       *float64 `json:"targetMarginPercent"`
	MinimumMarginPercent      *float64 `json:"minimumMarginPercent"`
	DiscountPercent           *float64 `json:"discountPercent"`
	ForcedVacationDaysPerYear *int     `json:"forcedVacationDaysPerYear"`
	TargetHourlyRate          *float64 `json:"targetHourlyRate"`

	IsFinancialConfigComplete    bool     `json:"isFinancialConfigComplete"`
	FinancialConfigStatusMessage string   `json:"financialConfigStatusMessage"`
	MissingFinancialFields       []string `json:"missingFinancialFields,omitempty"`

	ContactName  string `json:"contactName"`
	ContactEmail string `json:"contactEmail"`
	IsActive     bool   `json:"isActive"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt,omitempty"`
}
