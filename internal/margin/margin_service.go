package margin

import (
	"context"
	"strconv"
	"strings"
	"time"

	"go-apg/internal/domain"
	"go-apg/internal/events"
	marginerrors "go-apg/internal/margin/errors"
	"go-apg/internal/messaging/kafka"
	"go-apg/internal/shared/contextutil"
	"go-apg/internal/shared/metrics"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ClientConfigReader returns nil, nil when the client does not exist.
type ClientConfigReader interface {
	GetFinancialConfig(ctx context.Context, clientID int64) (*domain.ClientFinancialConfig, error)
}

// SalarySettingsReader returns nil, nil when no settings record is active.
type SalarySettingsReader interface {
	GetActiveSnapshot(ctx context.Context) (*domain.SalarySettings, error)
}

//go:generate mockgen -source=margin_service.go -destination=mock/margin_service_mock.go -package=mock
type Service interface {
	Simulate(ctx context.Context, req SimulateRequest) (SimulationResponse, error)
	GetHistory(ctx context.Context, filter HistoryFilter) ([]HistoryResponse, int64, error)
	RecordHistory(ctx context.Context, event events.MarginSimulationCompletedEvent) (bool, error)
}

type service struct {
	clients  ClientConfigReader
	settings SalarySettingsReader
	history  HistoryRepository
	outbox   kafka.OutboxRepository
	logger   *zap.Logger
	now      func() time.Time
}

func NewService(
	clients ClientConfigReader,
	settings SalarySettingsReader,
	history HistoryRepository,
	logger ...*zap.Logger,
) Service {
	return NewServiceWithOutbox(clients, settings, history, nil, logger...)
}

func NewServiceWithOutbox(
	clients ClientConfigReader,
	settings SalarySettingsReader,
	history HistoryRepository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("margin.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("margin.service")
	}
	return &service{
		clients:  clients,
		settings: settings,
		history:  history,
		outbox:   outboxRepo,
		logger:   l,
		now:      time.Now,
	}
}

func (s *service) Simulate(ctx context.Context, req SimulateRequest) (SimulationResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("margin simulation requested",
		zap.String("request_id", rid),
		zap.String("resource_type", req.ResourceType),
		zap.Int64("client_id", req.ClientID),
	)

	if !IsValidResourceType(req.ResourceType) {
		return SimulationResponse{}, marginerrors.ErrInvalidResourceType
	}

	cfg, err := s.clients.GetFinancialConfig(ctx, req.ClientID)
	if err != nil {
		s.logger.Error("load client financial config failed",
			zap.String("request_id", rid),
			zap.Int64("client_id", req.ClientID),
			zap.Error(err),
		)
		return SimulationResponse{}, err
	}
	if cfg == nil {
		return SimulationResponse{}, marginerrors.ErrClientNotFound
	}

	terms, ok := TermsFromConfig(*cfg)
	if !ok {
		missing := cfg.MissingFields()
		return SimulationResponse{}, marginerrors.ErrIncompleteConfiguration.
			WithMessage("Client financial configuration is incomplete. Missing: " + strings.Join(missing, ", ")).
			WithDetails(map[string]any{"missingFields": missing})
	}

	in := Input{
		ResourceType:     req.ResourceType,
		ProposedBillRate: decimal.NewFromFloat(req.ProposedBillRate),
		Terms:            terms,
	}

	if req.ResourceType == ResourceTypeSalarie {
		if req.AnnualGrossSalary == nil || *req.AnnualGrossSalary <= 0 {
			return SimulationResponse{}, marginerrors.ErrSalaryRequired
		}
		in.AnnualGrossSalary = decimal.NewFromFloat(*req.AnnualGrossSalary)

		settings, err := s.settings.GetActiveSnapshot(ctx)
		if err != nil {
			s.logger.Error("load active salary settings failed", zap.String("request_id", rid), zap.Error(err))
			return SimulationResponse{}, err
		}
		if settings == nil {
			return SimulationResponse{}, marginerrors.ErrMissingGlobalSettings
		}
		in.Settings = *settings
	}

	result := Calculate(in)
	resp := mapToResponse(result)

	metrics.MarginSimulationsTotal.WithLabelValues(req.ResourceType, "target", string(result.Target.Status)).Inc()
	metrics.MarginSimulationsTotal.WithLabelValues(req.ResourceType, "proposed", string(result.Proposed.Status)).Inc()

	s.queueCompletedEvent(ctx, req, resp)

	s.logger.Info("margin simulation completed",
		zap.String("request_id", rid),
		zap.Int64("client_id", req.ClientID),
		zap.String("resource_type", req.ResourceType),
		zap.String("target_status", string(result.Target.Status)),
		zap.String("proposed_status", string(result.Proposed.Status)),
	)

	return resp, nil
}

// queueCompletedEvent is best-effort: the simulation result stands even if
// the history event cannot be stored.
func (s *service) queueCompletedEvent(ctx context.Context, req SimulateRequest, resp SimulationResponse) {
	if s.outbox == nil {
		return
	}

	md := contextutil.ExtractMetadata(ctx)
	event := events.MarginSimulationCompletedEvent{
		EventID:                  uuid.NewString(),
		EventType:                events.MarginSimulationCompletedType,
		RequestID:                md.RequestID,
		UserID:                   md.UserID,
		ClientID:                 req.ClientID,
		ResourceType:             req.ResourceType,
		ProposedBillRate:         resp.ProposedResults.ProposedBillRate,
		CostPerHour:              resp.TargetResults.CostPerHour,
		EffectiveTargetBillRate:  resp.TargetResults.EffectiveTargetBillRate,
		TheoreticalMarginPercent: resp.TargetResults.TheoreticalMarginPercent,
		TargetStatus:             string(resp.TargetResults.Status),
		ProposedMarginPercent:    resp.ProposedResults.MarginPercent,
		ProposedStatus:           string(resp.ProposedResults.Status),
		OccurredAt:               s.now().UTC(),
	}
	if req.ResourceType == ResourceTypeSalarie {
		event.AnnualGrossSalary = req.AnnualGrossSalary
	}

	outboxEvent, err := kafka.NewOutboxEvent(
		event.EventID,
		md.RequestID,
		"client",
		strconv.FormatInt(req.ClientID, 10),
		event.EventType,
		events.MarginSimulationCompletedTopic,
		event,
	)
	if err == nil {
		err = s.outbox.Create(ctx, outboxEvent)
	}
	if err != nil {
		s.logger.Warn("queue margin simulation event failed",
			zap.String("request_id", md.RequestID),
			zap.Int64("client_id", req.ClientID),
			zap.Error(err),
		)
	}
}

func (s *service) GetHistory(ctx context.Context, filter HistoryFilter) ([]HistoryResponse, int64, error) {
	if filter.ClientID != nil && *filter.ClientID <= 0 {
		return nil, 0, marginerrors.ErrInvalidHistoryQuery
	}
	filter.Normalize()

	rows, total, err := s.history.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("list margin history failed", zap.Error(err))
		return nil, 0, err
	}

	return mapToHistoryListResponse(rows), total, nil
}

func (s *service) RecordHistory(ctx context.Context, event events.MarginSimulationCompletedEvent) (bool, error) {
	h := &SimulationHistory{
		EventID:                  event.EventID,
		RequestID:                event.RequestID,
		UserID:                   event.UserID,
		ClientID:                 event.ClientID,
		ResourceType:             event.ResourceType,
		ProposedBillRate:         decimal.NewFromFloat(event.ProposedBillRate),
		CostPerHour:              decimal.NewFromFloat(event.CostPerHour),
		EffectiveTargetBillRate:  decimal.NewFromFloat(event.EffectiveTargetBillRate),
		TheoreticalMarginPercent: decimal.NewFromFloat(event.TheoreticalMarginPercent),
		TargetStatus:             event.TargetStatus,
		ProposedMarginPercent:    decimal.NewFromFloat(event.ProposedMarginPercent),
		ProposedStatus:           event.ProposedStatus,
		SimulatedAt:              event.OccurredAt,
	}
	if event.AnnualGrossSalary != nil {
		salary := decimal.NewFromFloat(*event.AnnualGrossSalary)
		h.AnnualGrossSalary = &salary
	}

	created, err := s.history.Create(ctx, h)
	if err != nil {
		s.logger.Error("record margin history failed",
			zap.String("event_id", event.EventID),
			zap.Error(err),
		)
		return false, err
	}

	return created, nil
}

func mapToResponse(sim Simulation) SimulationResponse {
	t, p := sim.Target, sim.Proposed

	resp := SimulationResponse{
		TargetResults: TargetResults{
			CostPerHour:                   RoundOutput(t.CostPerHour),
			EffectiveTargetBillRate:       RoundOutput(t.EffectiveTargetBillRate),
			TheoreticalMarginPercent:      RoundOutput(t.MarginPercent),
			TheoreticalMarginPerHour:      RoundOutput(t.MarginPerHour),
			ConfiguredTargetMarginPercent: RoundOutput(t.ConfiguredTargetMarginPercent),
			ConfiguredMinMarginPercent:    RoundOutput(t.ConfiguredMinMarginPercent),
			ConfiguredDiscountPercent:     RoundOutput(t.ConfiguredDiscountPercent),
			ForcedVacationDaysPerYear:     t.ForcedVacationDaysPerYear,
			Status:                        t.Status,
		},
		ProposedResults: ProposedResults{
			ProposedBillRate: RoundOutput(p.BillRate),
			MarginPercent:    RoundOutput(p.MarginPercent),
			MarginPerHour:    RoundOutput(p.MarginPerHour),
			Status:           p.Status,
		},
	}
	if p.DiscountPercentApplied != nil {
		v := RoundOutput(*p.DiscountPercentApplied)
		resp.ProposedResults.DiscountPercentApplied = &v
	}
	return resp
}

func mapToHistoryResponse(h SimulationHistory) HistoryResponse {
	resp := HistoryResponse{
		ID:                       h.ID,
		EventID:                  h.EventID,
		RequestID:                h.RequestID,
		UserID:                   h.UserID,
		ClientID:                 h.ClientID,
		ResourceType:             h.ResourceType,
		ProposedBillRate:         h.ProposedBillRate.InexactFloat64(),
		CostPerHour:              h.CostPerHour.InexactFloat64(),
		EffectiveTargetBillRate:  h.EffectiveTargetBillRate.InexactFloat64(),
		TheoreticalMarginPercent: h.TheoreticalMarginPercent.InexactFloat64(),
		TargetStatus:             h.TargetStatus,
		ProposedMarginPercent:    h.ProposedMarginPercent.InexactFloat64(),
		ProposedStatus:           h.ProposedStatus,
		SimulatedAt:              h.SimulatedAt.UTC().Format(time.RFC3339),
	}
	if h.AnnualGrossSalary != nil {
		v := h.AnnualGrossSalary.InexactFloat64()
		resp.AnnualGrossSalary = &v
	}
	return resp
}

func mapToHistoryListResponse(rows []SimulationHistory) []HistoryResponse {
	res := make([]HistoryResponse, len(rows))
	for i, h := range rows {
		res[i] = mapToHistoryResponse(h)
	}
	return res
}
