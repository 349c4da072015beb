package events

import "time"

const (
	MarginSimulationCompletedTopic = "apg.margin.simulation.completed.v1"
	MarginSimulationCompletedType  = "margin.simulation.completed"
)

// MarginSimulationCompletedEvent carries the rounded figures returned to the caller.
type MarginSimulationCompletedEvent struct {
	EventID                  string    `json:"event_id"`
	EventType                string    `json:"event_type"`
	RequestID                string    `json:"request_id,omitempty"`
	UserID                   string    `json:"user_id,omitempty"`
	ClientID                 int64     `json:"client_id"`
	ResourceType             string    `json:"resource_type"`
	AnnualGrossSalary        *float64  `json:"annual_gross_salary,omitempty"`
	ProposedBillRate         float64   `json:"proposed_bill_rate"`
	CostPerHour              float64   `json:"cost_per_hour"`
	EffectiveTargetBillRate  float64   `json:"effective_target_bill_rate"`
	TheoreticalMarginPercent float64   `json:"theoretical_margin_percent"`
	TargetStatus             string    `json:"target_status"`
	ProposedMarginPercent    float64   `json:"proposed_margin_percent"`
	ProposedStatus           string    `json:"proposed_status"`
	OccurredAt               time.Time `json:"occurred_at"`
}
