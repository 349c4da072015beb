package domain_test

import (
	"testing"

	"go-apg/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestClientFinancialConfig_MissingFields(t *testing.T) {
	d := func(v string) *decimal.Decimal {
		x := decimal.RequireFromString(v)
		return &x
	}
	days := 5

	t.Run("complete", func(t *testing.T) {
		cfg := domain.ClientFinancialConfig{
			TargetMarginPercent:       d("25"),
			MinimumMarginPercent:      d("15"),
			DiscountPercent:           d("0"),
			ForcedVacationDaysPerYear: &days,
			TargetHourlyRate:          d("150"),
		}

		assert.True(t, cfg.IsComplete())
		assert.Empty(t, cfg.MissingFields())
	})

	t.Run("zero values still count as configured", func(t *testing.T) {
		zero := 0
		cfg := domain.ClientFinancialConfig{
			TargetMarginPercent:       d("0"),
			MinimumMarginPercent:      d("0"),
			DiscountPercent:           d("0"),
			ForcedVacationDaysPerYear: &zero,
			TargetHourlyRate:          d("0"),
		}

		assert.True(t, cfg.IsComplete())
	})

	t.Run("missing fields in declaration order", func(t *testing.T) {
		cfg := domain.ClientFinancialConfig{
			MinimumMarginPercent: d("15"),
			TargetHourlyRate:     d("150"),
		}

		assert.False(t, cfg.IsComplete())
		assert.Equal(t,
			[]string{"targetMarginPercent", "discountPercent", "forcedVacationDaysPerYear"},
			cfg.MissingFields(),
		)
	})
}

func TestSeesAllBusinessUnits(t *testing.T) {
	assert.True(t, domain.SeesAllBusinessUnits(domain.RoleAdmin))
	assert.True(t, domain.SeesAllBusinessUnits(domain.RoleCFO))
	assert.False(t, domain.SeesAllBusinessUnits(domain.RoleManager))
	assert.False(t, domain.SeesAllBusinessUnits(""))
}
