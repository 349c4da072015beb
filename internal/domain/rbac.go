package domain

// EnforceRequest asks whether a role may perform action on resource.
type EnforceRequest struct {
	Role     string `json:"role" binding:"required"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}

type PermissionResponse struct {
	Resource string `json:"resource"`
	Action   string `json:"action"`
}

type RoleResponse struct {
	Name        string               `json:"name"`
	Permissions []PermissionResponse `json:"permissions"`
}

const (
	RoleAdmin   = "Admin"
	RoleCFO     = "CFO"
	RoleManager = "Manager"
	RoleUser    = "User"
)

// SeesAllBusinessUnits reports whether role bypasses business-unit filtering.
func SeesAllBusinessUnits(role string) bool {
	return role == RoleAdmin || role == RoleCFO
}
