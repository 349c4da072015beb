package client

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	clienterrors "go-apg/internal/client/errors"
	"go-apg/internal/domain"
	"go-apg/internal/tenant"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=client_service.go -destination=mock/client_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, access tenant.Access, req CreateClientRequest) (ClientResponse, error)
	GetAll(ctx context.Context, access tenant.Access) ([]ClientResponse, error)
	GetByID(ctx context.Context, access tenant.Access, id int64) (ClientResponse, error)
	Update(ctx context.Context, access tenant.Access, id int64, req UpdateClientRequest) (ClientResponse, error)
	UpdateFinancialConfig(ctx context.Context, access tenant.Access, id int64, req FinancialConfigRequest) (ClientResponse, error)
	Delete(ctx context.Context, access tenant.Access, id int64) error
	// GetFinancialConfig returns nil, nil when the client does not exist.
	GetFinancialConfig(ctx context.Context, clientID int64) (*domain.ClientFinancialConfig, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("client.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("client.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, access tenant.Access, req CreateClientRequest) (ClientResponse, error) {
	if !access.Allows(req.BusinessUnitID) {
		return ClientResponse{}, clienterrors.ErrBusinessUnitAccess
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ClientResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	code := strings.TrimSpace(req.Code)
	exists, err := qtx.CodeExists(ctx, code, 0)
	if err != nil {
		return ClientResponse{}, mapRepositoryError(err)
	}
	if exists {
		return ClientResponse{}, clienterrors.ErrClientCodeExists
	}

	now := time.Now().UTC()
	c := &Client{
		Code:           code,
		Name:           strings.TrimSpace(req.Name),
		BusinessUnitID: req.BusinessUnitID,
		SectorID:       req.SectorID,
		CountryID:      req.CountryID,
		CurrencyID:     req.CurrencyID,
		ContactName:    strings.TrimSpace(req.ContactName),
		ContactEmail:   strings.ToLower(strings.TrimSpace(req.ContactEmail)),
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := qtx.Create(ctx, c); err != nil {
		return ClientResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return ClientResponse{}, err
	}

	s.logger.Info("client created",
		zap.Int64("client_id", c.ID),
		zap.String("code", c.Code),
	)
	return mapToResponse(*c), nil
}

func (s *service) GetAll(ctx context.Context, access tenant.Access) ([]ClientResponse, error) {
	clients, err := s.repo.FindAll(ctx, access)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(clients), nil
}

func (s *service) GetByID(ctx context.Context, access tenant.Access, id int64) (ClientResponse, error) {
	c, err := s.findAccessible(ctx, s.repo, access, id)
	if err != nil {
		return ClientResponse{}, err
	}
	return mapToResponse(*c), nil
}

func (s *service) Update(ctx context.Context, access tenant.Access, id int64, req UpdateClientRequest) (ClientResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ClientResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	c, err := s.findAccessible(ctx, qtx, access, id)
	if err != nil {
		return ClientResponse{}, err
	}
	if c.BusinessUnitID != req.BusinessUnitID && !access.Allows(req.BusinessUnitID) {
		return ClientResponse{}, clienterrors.ErrBusinessUnitAccess
	}

	code := strings.TrimSpace(req.Code)
	exists, err := qtx.CodeExists(ctx, code, id)
	if err != nil {
		return ClientResponse{}, mapRepositoryError(err)
	}
	if exists {
		return ClientResponse{}, clienterrors.ErrClientCodeExists
	}

	c.Code = code
	c.Name = strings.TrimSpace(req.Name)
	c.BusinessUnitID = req.BusinessUnitID
	c.SectorID = req.SectorID
	c.CountryID = req.CountryID
	c.CurrencyID = req.CurrencyID
	c.ContactName = strings.TrimSpace(req.ContactName)
	c.ContactEmail = strings.ToLower(strings.TrimSpace(req.ContactEmail))
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}
	c.UpdatedAt = time.Now().UTC()

	if err := qtx.Update(ctx, c); err != nil {
		return ClientResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return ClientResponse{}, err
	}

	return mapToResponse(*c), nil
}

func (s *service) UpdateFinancialConfig(
	ctx context.Context,
	access tenant.Access,
	id int64,
	req FinancialConfigRequest,
) (ClientResponse, error) {
	if req.MinimumMarginPercent != nil && req.TargetMarginPercent != nil &&
		*req.MinimumMarginPercent > *req.TargetMarginPercent {
		return ClientResponse{}, clienterrors.ErrMinimumAboveTarget
	}

	c, err := s.findAccessible(ctx, s.repo, access, id)
	if err != nil {
		return ClientResponse{}, err
	}

	c.TargetMarginPercent = toDecimal(req.TargetMarginPercent)
	c.MinimumMarginPercent = toDecimal(req.MinimumMarginPercent)
	c.DiscountPercent = toDecimal(req.DiscountPercent)
	c.ForcedVacationDaysPerYear = req.ForcedVacationDaysPerYear
	c.TargetHourlyRate = toDecimal(req.TargetHourlyRate)
	c.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, c); err != nil {
		return ClientResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("client financial configuration updated",
		zap.Int64("client_id", c.ID),
		zap.Bool("complete", c.IsFinancialConfigComplete()),
	)
	return mapToResponse(*c), nil
}

func (s *service) Delete(ctx context.Context, access tenant.Access, id int64) error {
	if _, err := s.findAccessible(ctx, s.repo, access, id); err != nil {
		return err
	}
	return mapRepositoryError(s.repo.Delete(ctx, id))
}

func (s *service) GetFinancialConfig(ctx context.Context, clientID int64) (*domain.ClientFinancialConfig, error) {
	c, err := s.repo.FindByID(ctx, clientID)
	if err != nil {
		mapped := mapRepositoryError(err)
		if errors.Is(mapped, clienterrors.ErrClientNotFound) {
			return nil, nil
		}
		return nil, mapped
	}
	cfg := c.FinancialConfig()
	return &cfg, nil
}

func (s *service) findAccessible(ctx context.Context, repo Repository, access tenant.Access, id int64) (*Client, error) {
	c, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	if !access.Allows(c.BusinessUnitID) {
		return nil, clienterrors.ErrBusinessUnitAccess
	}
	return c, nil
}

func toDecimal(v *float64) *decimal.Decimal {
	if v == nil {
		return nil
	}
	d := decimal.NewFromFloat(*v)
	return &d
}

func fromDecimal(d *decimal.Decimal) *float64 {
	if d == nil {
		return nil
	}
	f := d.InexactFloat64()
	return &f
}

func mapToResponse(c Client) ClientResponse {
	resp := ClientResponse{
		ID:                        c.ID,
		Code:                      c.Code,
		Name:                      c.Name,
		BusinessUnitID:            c.BusinessUnitID,
		SectorID:                  c.SectorID,
		CountryID:                 c.CountryID,
		CurrencyID:                c.CurrencyID,
		TargetMarginPercent:       fromDecimal(c.TargetMarginPercent),
		MinimumMarginPercent:      fromDecimal(c.MinimumMarginPercent),
		DiscountPercent:           fromDecimal(c.DiscountPercent),
		ForcedVacationDaysPerYear: c.ForcedVacationDaysPerYear,
		TargetHourlyRate:          fromDecimal(c.TargetHourlyRate),
		ContactName:               c.ContactName,
		ContactEmail:              c.ContactEmail,
		IsActive:                  c.IsActive,
	}

	resp.MissingFinancialFields = c.MissingFinancialFields()
	resp.IsFinancialConfigComplete = len(resp.MissingFinancialFields) == 0
	if resp.IsFinancialConfigComplete {
		resp.FinancialConfigStatusMessage = financialConfigComplete
	} else {
		resp.FinancialConfigStatusMessage = financialConfigIncomplete
	}

	if !c.CreatedAt.IsZero() {
		resp.CreatedAt = c.CreatedAt.Format(time.RFC3339)
	}
	if !c.UpdatedAt.IsZero() {
		resp.UpdatedAt = c.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}

func mapToListResponse(clients []Client) []ClientResponse {
	res := make([]ClientResponse, len(clients))
	for i, c := range clients {
		res[i] = mapToResponse(c)
	}
	return res
}
