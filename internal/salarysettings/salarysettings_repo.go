package salarysettings

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=salarysettings_repo.go -destination=mock/salarysettings_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, s *GlobalSalarySettings) error
	Update(ctx context.Context, s *GlobalSalarySettings) error
	FindAll(ctx context.Context) ([]GlobalSalarySettings, error)
	FindByID(ctx context.Context, id int64) (*GlobalSalarySettings, error)
	// FindActive returns nil, nil when no record is active.
	FindActive(ctx context.Context) (*GlobalSalarySettings, error)
	DeactivateAll(ctx context.Context) error
	CountNotDeleted(ctx context.Context) (int64, error)
	SoftDelete(ctx context.Context, id int64) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

// conn runs statements on the bound transaction when there is one.
func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *repository) Create(ctx context.Context, s *GlobalSalarySettings) error {
	return r.conn(ctx).Create(s).Error
}

func (r *repository) Update(ctx context.Context, s *GlobalSalarySettings) error {
	return r.conn(ctx).Save(s).Error
}

func (r *repository) FindAll(ctx context.Context) ([]GlobalSalarySettings, error) {
	var rows []GlobalSalarySettings
	err := r.conn(ctx).
		Where("is_deleted = ?", false).
		Order("created_at DESC").
		Order("id DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, id int64) (*GlobalSalarySettings, error) {
	var s GlobalSalarySettings
	err := r.conn(ctx).
		Where("is_deleted = ?", false).
		First(&s, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) FindActive(ctx context.Context) (*GlobalSalarySettings, error) {
	var rows []GlobalSalarySettings
	err := r.conn(ctx).
		Where("is_active = ? AND is_deleted = ?", true, false).
		Limit(1).
		Find(&rows).Error
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return &rows[0], nil
}

func (r *repository) DeactivateAll(ctx context.Context) error {
	return r.conn(ctx).
		Model(&GlobalSalarySettings{}).
		Where("is_active = ?", true).
		Updates(map[string]any{"is_active": false, "updated_at": time.Now().UTC()}).Error
}

func (r *repository) CountNotDeleted(ctx context.Context) (int64, error) {
	var n int64
	err := r.conn(ctx).
		Model(&GlobalSalarySettings{}).
		Where("is_deleted = ?", false).
		Count(&n).Error
	return n, err
}

func (r *repository) SoftDelete(ctx context.Context, id int64) error {
	return r.conn(ctx).
		Model(&GlobalSalarySettings{}).
		Where("id = ?", id).
		Updates(map[string]any{"is_deleted": true, "updated_at": time.Now().UTC()}).Error
}
