package salarysettings

import (
	"time"

	"github.com/shopspring/decimal"
)

type GlobalSalarySettings struct {
	ID                   int64           `gorm:"primaryKey"`
	EmployerChargesRate  decimal.Decimal `gorm:"type:numeric(5,2)"`
	IndirectAnnualCosts  decimal.Decimal `gorm:"type:numeric(18,2)"`
	BillableHoursPerYear int
	IsActive             bool
	IsDeleted            bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (GlobalSalarySettings) TableName() string {
	return "global_salary_settings"
}
