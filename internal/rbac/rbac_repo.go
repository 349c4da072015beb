package rbac

import "go-apg/internal/domain"

type RolePermissionRow struct {
	Role     string
	Resource string
	Action   string
}

type Repository interface {
	GetRolePermissions() ([]RolePermissionRow, error)
}

// staticRepository serves the built-in role table. Roles come from the
// identity provider, so only their permissions live here.
type staticRepository struct {
	rows []RolePermissionRow
}

func NewStaticRepository() Repository {
	return &staticRepository{rows: DefaultRolePermissions()}
}

func (r *staticRepository) GetRolePermissions() ([]RolePermissionRow, error) {
	out := make([]RolePermissionRow, len(r.rows))
	copy(out, r.rows)
	return out, nil
}

func DefaultRolePermissions() []RolePermissionRow {
	return []RolePermissionRow{
		{Role: domain.RoleAdmin, Resource: "*", Action: "*"},
		{Role: domain.RoleCFO, Resource: "*", Action: "*"},

		{Role: domain.RoleManager, Resource: "client", Action: "read"},
		{Role: domain.RoleManager, Resource: "client_financial", Action: "read"},
		{Role: domain.RoleManager, Resource: "margin", Action: "simulate"},
		{Role: domain.RoleManager, Resource: "margin_history", Action: "read"},
		{Role: domain.RoleManager, Resource: "market_trends", Action: "query"},

		{Role: domain.RoleUser, Resource: "client", Action: "read"},
		{Role: domain.RoleUser, Resource: "margin", Action: "simulate"},
		{Role: domain.RoleUser, Resource: "market_trends", Action: "query"},
	}
}
