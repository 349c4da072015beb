package margin

import (
	"time"

	"github.com/shopspring/decimal"
)

// SimulationHistory is one row of the append-only simulation log.
type SimulationHistory struct {
	ID                       int64            `gorm:"primaryKey"`
	EventID                  string           `gorm:"type:uuid;uniqueIndex:uq_margin_history_event"`
	RequestID                string
	UserID                   string
	ClientID                 int64            `gorm:"index"`
	ResourceType             string
	AnnualGrossSalary        *decimal.Decimal `gorm:"type:numeric(18,2)"`
	ProposedBillRate         decimal.Decimal  `gorm:"type:numeric(18,2)"`
	CostPerHour              decimal.Decimal  `gorm:"type:numeric(18,2)"`
	EffectiveTargetBillRate  decimal.Decimal  `gorm:"type:numeric(18,2)"`
	TheoreticalMarginPercent decimal.Decimal  `gorm:"type:numeric(18,2)"`
	TargetStatus             string
	ProposedMarginPercent    decimal.Decimal `gorm:"type:numeric(18,2)"`
	ProposedStatus           string
	SimulatedAt              time.Time
	CreatedAt                time.Time
}

func (SimulationHistory) TableName() string {
	return "margin_simulation_history"
}
