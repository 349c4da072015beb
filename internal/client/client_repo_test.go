package client_test

import (
	"context"
	"testing"

	"go-apg/internal/client"
	"go-apg/internal/domain"
	"go-apg/internal/tenant"

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

func TestClientRepository_FindAll_Scoped(t *testing.T) {
	gdb, mock := newGormMock(t)
	mock.ExpectQuery(`SELECT \* FROM "clients" WHERE .*business_unit_id IN \(.*\).*"clients"."deleted_at" IS NULL ORDER BY name ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "code", "business_unit_id"}).AddRow(1, "ACME", 10))

	rows, err := client.NewRepository(gdb).FindAll(context.Background(), tenant.Access{
		Role:            domain.RoleManager,
		BusinessUnitIDs: []int64{10, 11},
	})

	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepository_FindAll_NoUnits(t *testing.T) {
	gdb, mock := newGormMock(t)
	mock.ExpectQuery(`SELECT \* FROM "clients" WHERE .*1 = 0`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	rows, err := client.NewRepository(gdb).FindAll(context.Background(), tenant.Access{Role: domain.RoleUser})

	assert.NoError(t, err)
	assert.Empty(t, rows)
}

func TestClientRepository_CodeExists(t *testing.T) {
	gdb, mock := newGormMock(t)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "clients" WHERE LOWER\(code\) = LOWER\(\$1\) AND id <> \$2`).
		WithArgs("acme", int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := client.NewRepository(gdb).CodeExists(context.Background(), "acme", 4)

	assert.NoError(t, err)
	assert.True(t, exists)
}
