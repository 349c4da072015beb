package margin

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=margin_repo.go -destination=mock/margin_repo_mock.go -package=mock
type HistoryRepository interface {
	// Create stores h and reports false when its event was already recorded.
	Create(ctx context.Context, h *SimulationHistory) (bool, error)
	FindAll(ctx context.Context, filter HistoryFilter) ([]SimulationHistory, int64, error)
}

type historyRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) HistoryRepository {
	return &historyRepository{db: db}
}

func (r *historyRepository) Create(ctx context.Context, h *SimulationHistory) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "event_id"}},
			DoNothing: true,
		}).
		Create(h)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *historyRepository) FindAll(ctx context.Context, filter HistoryFilter) ([]SimulationHistory, int64, error) {
	q := r.db.WithContext(ctx).Model(&SimulationHistory{})
	if filter.ClientID != nil {
		q = q.Where("client_id = ?", *filter.ClientID)
	}
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []SimulationHistory
	err := q.
		Order("simulated_at DESC").
		Order("id DESC").
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&rows).Error
	return rows, total, err
}
