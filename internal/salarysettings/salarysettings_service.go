package salarysettings

import (
	"context"
	"database/sql"
	"time"

	"go-apg/internal/domain"
	salarysettingserrors "go-apg/internal/salarysettings/errors"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const ActiveSettingsCacheKey = "salary_settings:active"

const (
	maxEmployerChargesRate  = 200
	minBillableHoursPerYear = 1
	maxBillableHoursPerYear = 3000
)

//go:generate mockgen -source=salarysettings_service.go -destination=mock/salarysettings_service_mock.go -package=mock
type Service interface {
	GetActive(ctx context.Context) (ActiveSettingsResponse, error)
	GetAll(ctx context.Context) ([]SettingsResponse, error)
	Create(ctx context.Context, req CreateSettingsRequest) (SettingsResponse, error)
	Update(ctx context.Context, id int64, req UpdateSettingsRequest) (SettingsResponse, error)
	Activate(ctx context.Context, id int64) (SettingsResponse, error)
	Delete(ctx context.Context, id int64) error
	// GetActiveSnapshot returns nil, nil when nothing is active.
	GetActiveSnapshot(ctx context.Context) (*domain.SalarySettings, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	rdb      *redis.Client
	sf       *singleflight.Group
	cacheTTL time.Duration
	logger   *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	rdb *redis.Client,
	cacheTTL time.Duration,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("salarysettings.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("salarysettings.service")
	}
	if cacheTTL <= 0 {
		cacheTTL = 30 * time.Minute
	}
	return &service{
		db:       db,
		repo:     repo,
		rdb:      rdb,
		sf:       &singleflight.Group{},
		cacheTTL: cacheTTL,
		logger:   l,
	}
}

func (s *service) GetActive(ctx context.Context) (ActiveSettingsResponse, error) {
	active, err := s.repo.FindActive(ctx)
	if err != nil {
		return ActiveSettingsResponse{}, mapRepositoryError(err)
	}
	if active == nil {
		return ActiveSettingsResponse{HasActiveSettings: false}, nil
	}
	resp := mapToResponse(*active)
	return ActiveSettingsResponse{HasActiveSettings: true, Settings: &resp}, nil
}

func (s *service) GetAll(ctx context.Context) ([]SettingsResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(rows), nil
}

func (s *service) Create(ctx context.Context, req CreateSettingsRequest) (SettingsResponse, error) {
	if err := validate(req); err != nil {
		return SettingsResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SettingsResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.DeactivateAll(ctx); err != nil {
		return SettingsResponse{}, mapRepositoryError(err)
	}

	now := time.Now().UTC()
	settings := &GlobalSalarySettings{
		EmployerChargesRate:  decimal.NewFromFloat(*req.EmployerChargesRate),
		IndirectAnnualCosts:  decimal.NewFromFloat(*req.IndirectAnnualCosts),
		BillableHoursPerYear: *req.BillableHoursPerYear,
		IsActive:             true,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := qtx.Create(ctx, settings); err != nil {
		return SettingsResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return SettingsResponse{}, err
	}

	s.invalidateCache(ctx)
	s.logger.Info("global salary settings created",
		zap.Int64("id", settings.ID),
	)

	return mapToResponse(*settings), nil
}

func (s *service) Update(ctx context.Context, id int64, req UpdateSettingsRequest) (SettingsResponse, error) {
	if err := validate(req); err != nil {
		return SettingsResponse{}, err
	}

	settings, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return SettingsResponse{}, mapRepositoryError(err)
	}

	settings.EmployerChargesRate = decimal.NewFromFloat(*req.EmployerChargesRate)
	settings.IndirectAnnualCosts = decimal.NewFromFloat(*req.IndirectAnnualCosts)
	settings.BillableHoursPerYear = *req.BillableHoursPerYear
	settings.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, settings); err != nil {
		return SettingsResponse{}, mapRepositoryError(err)
	}

	if settings.IsActive {
		s.invalidateCache(ctx)
	}

	return mapToResponse(*settings), nil
}

func (s *service) Activate(ctx context.Context, id int64) (SettingsResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SettingsResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	settings, err := qtx.FindByID(ctx, id)
	if err != nil {
		return SettingsResponse{}, mapRepositoryError(err)
	}
	if settings.IsActive {
		return mapToResponse(*settings), nil
	}

	if err := qtx.DeactivateAll(ctx); err != nil {
		return SettingsResponse{}, mapRepositoryError(err)
	}

	settings.IsActive = true
	settings.UpdatedAt = time.Now().UTC()
	if err := qtx.Update(ctx, settings); err != nil {
		return SettingsResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return SettingsResponse{}, err
	}

	s.invalidateCache(ctx)
	s.logger.Info("global salary settings activated", zap.Int64("id", id))

	return mapToResponse(*settings), nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	settings, err := qtx.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	if settings.IsActive {
		return salarysettingserrors.ErrCannotDeleteActive
	}

	count, err := qtx.CountNotDeleted(ctx)
	if err != nil {
		return mapRepositoryError(err)
	}
	if count <= 1 {
		return salarysettingserrors.ErrCannotDeleteLast
	}

	if err := qtx.SoftDelete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	return tx.Commit()
}

func (s *service) GetActiveSnapshot(ctx context.Context) (*domain.SalarySettings, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, ActiveSettingsCacheKey).Result()
		if err == nil {
			var snap domain.SalarySettings
			if err := json.Unmarshal([]byte(cached), &snap); err == nil {
				return &snap, nil
			}
		}
	}

	v, err, _ := s.sf.Do(ActiveSettingsCacheKey, func() (any, error) {
		active, err := s.repo.FindActive(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}
		if active == nil {
			return (*domain.SalarySettings)(nil), nil
		}

		snap := &domain.SalarySettings{
			ID:                   active.ID,
			EmployerChargesRate:  active.EmployerChargesRate,
			IndirectAnnualCosts:  active.IndirectAnnualCosts,
			BillableHoursPerYear: active.BillableHoursPerYear,
		}

		if s.rdb != nil {
			if data, err := json.Marshal(snap); err == nil {
				if err := s.rdb.Set(ctx, ActiveSettingsCacheKey, data, s.cacheTTL).Err(); err != nil {
					s.logger.Warn("failed to cache active salary settings", zap.Error(err))
				}
			}
		}
		return snap, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*domain.SalarySettings), nil
}

func (s *service) invalidateCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, ActiveSettingsCacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate cache",
			zap.String("key", ActiveSettingsCacheKey),
			zap.Error(err),
		)
	}
}

func validate(req CreateSettingsRequest) error {
	if *req.EmployerChargesRate < 0 || *req.EmployerChargesRate > maxEmployerChargesRate {
		return salarysettingserrors.ErrInvalidEmployerChargesRate
	}
	if *req.IndirectAnnualCosts < 0 {
		return salarysettingserrors.ErrInvalidIndirectAnnualCosts
	}
	if *req.BillableHoursPerYear < minBillableHoursPerYear || *req.BillableHoursPerYear > maxBillableHoursPerYear {
		return salarysettingserrors.ErrInvalidBillableHours
	}
	return nil
}

func mapToResponse(s GlobalSalarySettings) SettingsResponse {
	resp := SettingsResponse{
		ID:                   s.ID,
		EmployerChargesRate:  s.EmployerChargesRate.InexactFloat64(),
		IndirectAnnualCosts:  s.IndirectAnnualCosts.InexactFloat64(),
		BillableHoursPerYear: s.BillableHoursPerYear,
		IsActive:             s.IsActive,
	}
	if !s.CreatedAt.IsZero() {
		resp.CreatedAt = s.CreatedAt.Format(time.RFC3339)
	}
	if !s.UpdatedAt.IsZero() {
		resp.UpdatedAt = s.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}

func mapToListResponse(rows []GlobalSalarySettings) []SettingsResponse {
	res := make([]SettingsResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res
}
