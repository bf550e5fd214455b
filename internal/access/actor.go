package access

import (
	"github.com/google/uuid"
)

// Role is the canonical role enum. The store used both "ADMIN"/"PRODUCT_MANAGER"
// and "admin"/"product-manager" historically; the lowercase spelling is canonical.
type Role string

const (
	RoleAdmin          Role = "admin"
	RoleProductManager Role = "product-manager"
	RoleAnonymous      Role = "anonymous"
)

func AllRoles() []Role {
	return []Role{RoleAdmin, RoleProductManager, RoleAnonymous}
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleProductManager, RoleAnonymous:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// IsStaff reports whether the role belongs to an authenticated back-office user.
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleProductManager
}

// Actor is the principal behind a request. Unauthenticated requests carry the
// anonymous actor; absence of a session is a normal state, not a fault.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

// Anonymous returns the implicit actor for requests without a valid session.
func Anonymous() Actor {
	return Actor{Role: RoleAnonymous}
}

func (a Actor) IsAnonymous() bool {
	return a.Role == RoleAnonymous || a.Role == ""
}

// HasRole is an exact match. There is no role hierarchy: admin is not
// implicitly product-manager, each predicate enumerates qualifying roles.
func (a Actor) HasRole(role Role) bool {
	return a.Role == role
}
