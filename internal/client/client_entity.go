package client

import (
	"time"

	"go-apg/internal/domain"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Client struct {
	ID             int64 `gorm:"primaryKey"`
	Code           string
	Name           string
	BusinessUnitID int64
	SectorID       int64
	CountryID      int64
	CurrencyID     int64

	TargetMarginPercent       *decimal.Decimal `gorm:"type:numeric(5,2)"`
	MinimumMarginPercent      *decimal.Decimal `gorm:"type:numeric(5,2)"`
	DiscountPercent           *decimal.Decimal `gorm:"type:numeric(5,2)"`
	ForcedVacationDaysPerYear *int
	TargetHourlyRate          *decimal.Decimal `gorm:"type:numeric(18,2)"`

	ContactName  string
	ContactEmail string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (Client) TableName() string {
	return "clients"
}

func (c Client) FinancialConfig() domain.ClientFinancialConfig {
	return domain.ClientFinancialConfig{
		ClientID:                  c.ID,
		TargetMarginPercent:       c.TargetMarginPercent,
		MinimumMarginPercent:      c.MinimumMarginPercent,
		DiscountPercent:           c.DiscountPercent,
		ForcedVacationDaysPerYear: c.ForcedVacationDaysPerYear,
		TargetHourlyRate:          c.TargetHourlyRate,
	}
}

func (c Client) IsFinancialConfigComplete() bool {
	return c.FinancialConfig().IsComplete()
}

// MissingFinancialFields lists the json names of unset financial fields.
func (c Client) MissingFinancialFields() []string {
	return c.FinancialConfig().MissingFields()
}
