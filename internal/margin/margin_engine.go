package margin

import (
	"go-apg/internal/domain"

	"github.com/shopspring/decimal"
)

const (
	ResourceTypeSalarie = "Salarie"
	ResourceTypePigiste = "Pigiste"
)

type Status string

const (
	StatusOK      Status = "OK"
	StatusWarning Status = "WARNING"
	StatusKO      Status = "KO"
)

var (
	// HoursPerDay converts forced vacation days into non-billable hours.
	HoursPerDay = decimal.RequireFromString("7.5")

	minEffectiveBillableHours = decimal.NewFromInt(1)
	minBillRate               = decimal.RequireFromString("0.01")
	hundred                   = decimal.NewFromInt(100)
)

func IsValidResourceType(resourceType string) bool {
	return resourceType == ResourceTypeSalarie || resourceType == ResourceTypePigiste
}

// FinancialTerms is a complete client financial configuration.
type FinancialTerms struct {
	TargetMarginPercent       decimal.Decimal
	MinimumMarginPercent      decimal.Decimal
	DiscountPercent           decimal.Decimal
	ForcedVacationDaysPerYear int
	TargetHourlyRate          decimal.Decimal
}

// TermsFromConfig returns the terms and true when every field of cfg is set.
func TermsFromConfig(cfg domain.ClientFinancialConfig) (FinancialTerms, bool) {
	if !cfg.IsComplete() {
		return FinancialTerms{}, false
	}
	return FinancialTerms{
		TargetMarginPercent:       *cfg.TargetMarginPercent,
		MinimumMarginPercent:      *cfg.MinimumMarginPercent,
		DiscountPercent:           *cfg.DiscountPercent,
		ForcedVacationDaysPerYear: *cfg.ForcedVacationDaysPerYear,
		TargetHourlyRate:          *cfg.TargetHourlyRate,
	}, true
}

// Input holds already-validated simulation parameters. Settings is only
// read for salaried resources.
type Input struct {
	ResourceType      string
	AnnualGrossSalary decimal.Decimal
	ProposedBillRate  decimal.Decimal
	Terms             FinancialTerms
	Settings          domain.SalarySettings
}

// TargetScenario values are unrounded.
type TargetScenario struct {
	CostPerHour                   decimal.Decimal
	EffectiveTargetBillRate       decimal.Decimal
	MarginPercent                 decimal.Decimal
	MarginPerHour                 decimal.Decimal
	ConfiguredTargetMarginPercent decimal.Decimal
	ConfiguredMinMarginPercent    decimal.Decimal
	ConfiguredDiscountPercent     decimal.Decimal
	ForcedVacationDaysPerYear     int
	Status                        Status
}

// ProposedScenario values are unrounded.
type ProposedScenario struct {
	BillRate               decimal.Decimal
	MarginPercent          decimal.Decimal
	MarginPerHour          decimal.Decimal
	DiscountPercentApplied *decimal.Decimal
	Status                 Status
}

type Simulation struct {
	Target   TargetScenario
	Proposed ProposedScenario
}

// Calculate runs both scenarios. It has no side effects and never fails:
// degenerate inputs are clamped rather than rejected.
func Calculate(in Input) Simulation {
	cost := CostPerHour(in)
	target := targetScenario(cost, in.Terms)
	proposed := proposedScenario(cost, in.ProposedBillRate, target.EffectiveTargetBillRate, in.Terms)
	return Simulation{Target: target, Proposed: proposed}
}

// CostPerHour returns the fully loaded hourly cost. For freelancers the
// proposed bill rate stands in for the cost, so their margin is always 0%.
func CostPerHour(in Input) decimal.Decimal {
	if in.ResourceType == ResourceTypePigiste {
		return in.ProposedBillRate
	}
	return SalariedCostPerHour(in.AnnualGrossSalary, in.Settings, in.Terms.ForcedVacationDaysPerYear)
}

// SalariedCostPerHour spreads salary, employer charges and indirect costs over
// the billable hours left after forced vacation. Effective hours are floored
// at 1, so vacation exceeding billable hours yields a very high cost.
func SalariedCostPerHour(annualGrossSalary decimal.Decimal, settings domain.SalarySettings, forcedVacationDays int) decimal.Decimal {
	chargesFactor := decimal.NewFromInt(1).Add(settings.EmployerChargesRate.Div(hundred))
	totalAnnualCost := annualGrossSalary.Mul(chargesFactor).Add(settings.IndirectAnnualCosts)

	vacationHours := decimal.NewFromInt(int64(forcedVacationDays)).Mul(HoursPerDay)
	effectiveHours := decimal.NewFromInt(int64(settings.BillableHoursPerYear)).Sub(vacationHours)
	if effectiveHours.LessThanOrEqual(decimal.Zero) {
		effectiveHours = minEffectiveBillableHours
	}

	return totalAnnualCost.Div(effectiveHours)
}

// EffectiveTargetBillRate applies the client discount to the target rate,
// floored at 0.01.
func EffectiveTargetBillRate(terms FinancialTerms) decimal.Decimal {
	discountFactor := decimal.NewFromInt(1).Sub(terms.DiscountPercent.Div(hundred))
	rate := terms.TargetHourlyRate.Mul(discountFactor)
	if rate.LessThanOrEqual(decimal.Zero) {
		return minBillRate
	}
	return rate
}

// Classify compares a margin against the client thresholds. Meeting a
// threshold exactly counts as reaching it.
func Classify(actual, target, minimum decimal.Decimal) Status {
	switch {
	case actual.GreaterThanOrEqual(target):
		return StatusOK
	case actual.GreaterThanOrEqual(minimum):
		return StatusWarning
	default:
		return StatusKO
	}
}

func targetScenario(cost decimal.Decimal, terms FinancialTerms) TargetScenario {
	rate := EffectiveTargetBillRate(terms)
	marginPerHour := rate.Sub(cost)
	marginPercent := marginPerHour.Div(rate).Mul(hundred)

	return TargetScenario{
		CostPerHour:                   cost,
		EffectiveTargetBillRate:       rate,
		MarginPercent:                 marginPercent,
		MarginPerHour:                 marginPerHour,
		ConfiguredTargetMarginPercent: terms.TargetMarginPercent,
		ConfiguredMinMarginPercent:    terms.MinimumMarginPercent,
		ConfiguredDiscountPercent:     terms.DiscountPercent,
		ForcedVacationDaysPerYear:     terms.ForcedVacationDaysPerYear,
		Status:                        Classify(marginPercent, terms.TargetMarginPercent, terms.MinimumMarginPercent),
	}
}

func proposedScenario(cost, proposedBillRate, effectiveTargetRate decimal.Decimal, terms FinancialTerms) ProposedScenario {
	billRate := proposedBillRate
	if billRate.LessThanOrEqual(decimal.Zero) {
		billRate = minBillRate
	}

	marginPerHour := billRate.Sub(cost)
	marginPercent := marginPerHour.Div(billRate).Mul(hundred)

	var discountApplied *decimal.Decimal
	if effectiveTargetRate.GreaterThan(decimal.Zero) {
		d := effectiveTargetRate.Sub(billRate).Div(effectiveTargetRate).Mul(hundred)
		discountApplied = &d
	}

	return ProposedScenario{
		BillRate:               billRate,
		MarginPercent:          marginPercent,
		MarginPerHour:          marginPerHour,
		DiscountPercentApplied: discountApplied,
		Status:                 Classify(marginPercent, terms.TargetMarginPercent, terms.MinimumMarginPercent),
	}
}

// RoundOutput rounds to 2 places for presentation, half to even.
func RoundOutput(d decimal.Decimal) float64 {
	return d.RoundBank(2).InexactFloat64()
}
