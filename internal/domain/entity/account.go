package entity

import "slices"

// Role represents the type of role an account has in the restaurant app.
type Role string

const (
	RoleCustomer    Role = "customer"
	RoleStaff       Role = "staff"
	RoleBranchAdmin Role = "branch_admin"
	RoleSuperAdmin  Role = "super_admin"
)

// StaffRoles are the roles reached by a staff broadcast.
var StaffRoles = Roles{RoleStaff, RoleBranchAdmin, RoleSuperAdmin}

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleStaff, RoleBranchAdmin, RoleSuperAdmin:
		return true
	default:
		return false
	}
}

// IsStaffTier reports whether the role belongs to restaurant staff.
func (r Role) IsStaffTier() bool {
	return StaffRoles.Contains(r)
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string for query parameters.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// Account is the externally owned user profile. Only the fields needed to
// resolve staff recipients are read here.
type Account struct {
	UserID     string  `json:"user_id"`
	Role       Role    `json:"role"`
	BranchID   *int64  `json:"branch_id,omitempty"`
	BranchName *string `json:"branch_name,omitempty"`
}

// BranchSelector targets a branch by id or, as a fallback, by name.
type BranchSelector struct {
	ID   *int64
	Name string
}

// IsZero reports whether neither id nor name is set.
func (b BranchSelector) IsZero() bool {
	return b.ID == nil && b.Name == ""
}

// Caller is the authenticated identity behind a request.
type Caller struct {
	UserID string
	Role   Role
}
