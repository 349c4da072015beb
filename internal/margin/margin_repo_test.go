package margin_test

import (
	"context"
	"testing"
	"time"

	"go-apg/internal/margin"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newGormMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	require.NoError(t, err)
	return gdb, mock
}

func historyRow() *margin.SimulationHistory {
	return &margin.SimulationHistory{
		EventID:          "3f1c7d9e-8a0b-4c2d-9e5f-1a2b3c4d5e6f",
		ClientID:         4,
		ResourceType:     margin.ResourceTypePigiste,
		ProposedBillRate: decimal.NewFromInt(100),
		CostPerHour:      decimal.NewFromInt(100),
		TargetStatus:     "OK",
		ProposedStatus:   "KO",
		SimulatedAt:      time.Now().UTC(),
	}
}

func TestHistoryRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("new event", func(t *testing.T) {
		gdb, mock := newGormMock(t)
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "margin_simulation_history" .* ON CONFLICT \("event_id"\) DO NOTHING`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectCommit()

		created, err := margin.NewHistoryRepository(gdb).Create(ctx, historyRow())

		require.NoError(t, err)
		assert.True(t, created)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate event", func(t *testing.T) {
		gdb, mock := newGormMock(t)
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "margin_simulation_history"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectCommit()

		created, err := margin.NewHistoryRepository(gdb).Create(ctx, historyRow())

		require.NoError(t, err)
		assert.False(t, created)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestHistoryRepository_FindAll(t *testing.T) {
	gdb, mock := newGormMock(t)
	clientID := int64(4)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "margin_simulation_history" WHERE client_id = `).
		WithArgs(clientID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT \* FROM "margin_simulation_history" WHERE client_id = .* ORDER BY simulated_at DESC,id DESC LIMIT`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "client_id", "resource_type", "proposed_bill_rate"}).
			AddRow(9, 4, "Pigiste", "100.00"))

	rows, total, err := margin.NewHistoryRepository(gdb).FindAll(context.Background(),
		margin.HistoryFilter{ClientID: &clientID, Page: 1, PageSize: 20})

	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(9), rows[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
