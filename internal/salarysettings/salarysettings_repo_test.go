package salarysettings_test

import (
	"context"
	"testing"

	"go-apg/internal/salarysettings"

	"github.com/DATA-DOG/go-sqlmock"
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

func TestSalarySettingsRepository_FindActive(t *testing.T) {
	ctx := context.Background()

	t.Run("no active record", func(t *testing.T) {
		gdb, mock := newGormMock(t)
		mock.ExpectQuery(`SELECT \* FROM "global_salary_settings" WHERE \(?is_active = .* AND is_deleted = `).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		got, err := salarysettings.NewRepository(gdb).FindActive(ctx)

		assert.NoError(t, err)
		assert.Nil(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("active record", func(t *testing.T) {
		gdb, mock := newGormMock(t)
		rows := sqlmock.NewRows([]string{"id", "employer_charges_rate", "indirect_annual_costs", "billable_hours_per_year", "is_active", "is_deleted"}).
			AddRow(4, "45.00", "5000.00", 1607, true, false)
		mock.ExpectQuery(`SELECT \* FROM "global_salary_settings"`).WillReturnRows(rows)

		got, err := salarysettings.NewRepository(gdb).FindActive(ctx)

		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, int64(4), got.ID)
		assert.Equal(t, "45", got.EmployerChargesRate.String())
		assert.Equal(t, 1607, got.BillableHoursPerYear)
	})
}

func TestSalarySettingsRepository_CountNotDeleted(t *testing.T) {
	gdb, mock := newGormMock(t)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "global_salary_settings" WHERE is_deleted = `).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	n, err := salarysettings.NewRepository(gdb).CountNotDeleted(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
