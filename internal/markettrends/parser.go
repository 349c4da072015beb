package markettrends

import (
	"errors"
	"strings"

	"github.com/goccy/go-json"
)

const (
	defaultCurrency        = "CAD"
	fallbackPositioning    = "in_line"
	fallbackMarketDemand   = "medium"
	fallbackRiskLevel      = "medium"
	fallbackSummary        = "Market analysis completed."
	fallbackRecommendation = "Review market data and adjust compensation strategy accordingly."
)

var (
	positionings  = []string{"far_below", "below", "in_line", "above", "far_above"}
	marketDemands = []string{"low", "medium", "high", "very_high"}
	riskLevels    = []string{"low", "medium", "high"}
)

var errNoJSONObject = errors.New("no json object in model output")

// parseModelOutput decodes the first '{' .. last '}' span of raw and
// normalizes the enum and text fields.
func parseModelOutput(raw string) (TrendsResponse, error) {
	start := strings.IndexByte(raw, '{')
	end := strings.LastIndexByte(raw, '}')
	if start < 0 || end < start {
		return TrendsResponse{}, errNoJSONObject
	}

	var resp TrendsResponse
	if err := json.Unmarshal([]byte(raw[start:end+1]), &resp); err != nil {
		return TrendsResponse{}, err
	}

	fillCurrency(&resp.SalaryRange)
	fillCurrency(&resp.FreelanceRateRange)
	for _, lvl := range []*RangeByLevel{resp.SalaryRangeByLevel, resp.FreelanceRateRangeByLevel} {
		if lvl == nil {
			continue
		}
		fillCurrency(&lvl.Junior)
		fillCurrency(&lvl.Intermediate)
		fillCurrency(&lvl.Senior)
	}

	resp.EmployeePositioning = coerce(resp.EmployeePositioning, positionings, fallbackPositioning)
	resp.FreelancePositioning = coerce(resp.FreelancePositioning, positionings, fallbackPositioning)
	resp.MarketDemand = coerce(resp.MarketDemand, marketDemands, fallbackMarketDemand)
	resp.RiskLevel = coerce(resp.RiskLevel, riskLevels, fallbackRiskLevel)

	if strings.TrimSpace(resp.Summary) == "" {
		resp.Summary = fallbackSummary
	}
	if strings.TrimSpace(resp.Recommendation) == "" {
		resp.Recommendation = fallbackRecommendation
	}

	return resp, nil
}

func fillCurrency(r *Range) {
	if strings.TrimSpace(r.Currency) == "" {
		r.Currency = defaultCurrency
	}
}

// coerce returns the canonical lower-case form of v, or fallback when v is not allowed.
func coerce(v string, allowed []string, fallback string) string {
	for _, a := range allowed {
		if strings.EqualFold(strings.TrimSpace(v), a) {
			return a
		}
	}
	return fallback
}
