package rbac

import (
	"errors"
	"testing"

	"go-apg/internal/domain"
	"go-apg/internal/rbac/infra"

	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	rows []RolePermissionRow
	err  error
}

func (f *fakeRepo) GetRolePermissions() ([]RolePermissionRow, error) {
	return f.rows, f.err
}

func newTestService(t *testing.T, repo Repository) Service {
	t.Helper()
	enforcer, err := infra.NewEnforcer()
	assert.NoError(t, err)

	svc, err := NewService(repo, enforcer)
	assert.NoError(t, err)
	return svc
}

func TestRBACService_Enforce(t *testing.T) {
	svc := newTestService(t, NewStaticRepository())

	tests := []struct {
		name     string
		role     string
		resource string
		action   string
		allowed  bool
	}{
		{"admin can do anything", domain.RoleAdmin, "salary_settings", "delete", true},
		{"cfo can update financials", domain.RoleCFO, "client_financial", "update", true},
		{"manager reads clients", domain.RoleManager, "client", "read", true},
		{"manager cannot update financials", domain.RoleManager, "client_financial", "update", false},
		{"user simulates", domain.RoleUser, "margin", "simulate", true},
		{"user queries market trends", domain.RoleUser, "market_trends", "query", true},
		{"user cannot read financials", domain.RoleUser, "client_financial", "read", false},
		{"user cannot manage settings", domain.RoleUser, "salary_settings", "create", false},
		{"unknown role", "Guest", "client", "read", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allowed, err := svc.Enforce(domain.EnforceRequest{Role: tt.role, Resource: tt.resource, Action: tt.action})

			assert.NoError(t, err)
			assert.Equal(t, tt.allowed, allowed)
		})
	}
}

func TestRBACService_LoadPolicyError(t *testing.T) {
	enforcer, err := infra.NewEnforcer()
	assert.NoError(t, err)

	svc, err := NewService(&fakeRepo{err: errors.New("boom")}, enforcer)

	assert.Error(t, err)
	assert.Nil(t, svc)
}

func TestRBACService_ListRoles(t *testing.T) {
	svc := newTestService(t, &fakeRepo{rows: []RolePermissionRow{
		{Role: "User", Resource: "margin", Action: "simulate"},
		{Role: "Admin", Resource: "*", Action: "*"},
		{Role: "User", Resource: "client", Action: "read"},
	}})

	roles, err := svc.ListRoles()

	assert.NoError(t, err)
	assert.Len(t, roles, 2)
	assert.Equal(t, "Admin", roles[0].Name)
	assert.Equal(t, "User", roles[1].Name)
	assert.Len(t, roles[1].Permissions, 2)
}
