package client

import (
	"context"
	"database/sql"
	"time"

	"go-apg/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=client_repo.go -destination=mock/client_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, c *Client) error
	FindAll(ctx context.Context, access tenant.Access) ([]Client, error)
	FindByID(ctx context.Context, id int64) (*Client, error)
	// CodeExists matches case-insensitively, deleted clients included.
	CodeExists(ctx context.Context, code string, excludeID int64) (bool, error)
	Update(ctx context.Context, c *Client) error
	Delete(ctx context.Context, id int64) error
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

func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *repository) Create(ctx context.Context, c *Client) error {
	return r.conn(ctx).Create(c).Error
}

func (r *repository) FindAll(ctx context.Context, access tenant.Access) ([]Client, error) {
	var clients []Client
	err := r.conn(ctx).
		Scopes(tenant.BusinessUnitScope(access)).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&clients).Error
	return clients, err
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Client, error) {
	var c Client
	err := r.conn(ctx).First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) CodeExists(ctx context.Context, code string, excludeID int64) (bool, error) {
	var n int64
	q := r.conn(ctx).
		Unscoped().
		Model(&Client{}).
		Where("LOWER(code) = LOWER(?)", code)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&n).Error
	return n > 0, err
}

func (r *repository) Update(ctx context.Context, c *Client) error {
	return r.conn(ctx).Save(c).Error
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	now := time.Now().UTC()
	return r.conn(ctx).
		Model(&Client{}).
		Where("id = ?", id).
		Updates(map[string]any{"is_active": false, "updated_at": now, "deleted_at": now}).Error
}
