package models

type AdminRole string

const (
	AdminRoleSuperAdmin AdminRole = "super_admin"
	AdminRoleAdmin      AdminRole = "admin"
	AdminRoleSupport    AdminRole = "support"
)

// Operator identifies the admin performing an action.
type Operator struct {
	ID   string    `json:"id" yaml:"id"`
	Name string    `json:"name,omitempty" yaml:"name"`
	Role AdminRole `json:"role,omitempty" yaml:"role"`
}
