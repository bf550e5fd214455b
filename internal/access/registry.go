package access

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// EntityType identifies a managed content collection.
type EntityType string

const (
	EntityProduct         EntityType = "products"
	EntityCategory        EntityType = "categories"
	EntityBrand           EntityType = "brands"
	EntityMedia           EntityType = "media"
	EntityNews            EntityType = "news"
	EntityCompanyInfo     EntityType = "company-info"
	EntityHomepageContent EntityType = "homepage-content"
	EntityUser            EntityType = "users"
)

func AllEntityTypes() []EntityType {
	return []EntityType{
		EntityProduct, EntityCategory, EntityBrand, EntityMedia,
		EntityNews, EntityCompanyInfo, EntityHomepageContent, EntityUser,
	}
}

type Operation string

const (
	OpCreate Operation = "create"
	OpRead   Operation = "read"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

func AllOperations() []Operation {
	return []Operation{OpCreate, OpRead, OpUpdate, OpDelete}
}

// ErrForbidden is the sentinel for authorization failures. Handlers map it to
// 403, keeping it distinguishable from not-found and validation errors.
var ErrForbidden = errors.New("forbidden")

// Decision is the outcome of an authorization check.
type Decision struct {
	Allowed bool
	Reason  string
}

func Allow() Decision {
	return Decision{Allowed: true}
}

func Deny(reason string) Decision {
	return Decision{Reason: reason}
}

// Err returns nil for an allow, or an ErrForbidden-wrapped error for a deny.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrForbidden, d.Reason)
}

type predicate func(Actor) Decision

func anyone(Actor) Decision {
	return Allow()
}

func roles(allowed ...Role) predicate {
	return func(a Actor) Decision {
		for _, r := range allowed {
			if a.HasRole(r) {
				return Allow()
			}
		}
		if a.IsAnonymous() {
			return Deny("authentication required")
		}
		return Deny(fmt.Sprintf("role %q is not permitted", a.Role))
	}
}

// The predicate table. One row per entity type, one predicate per operation.
// Row-scoped reads (news, users) allow the read here and narrow rows via ReadScope.
var registry = map[EntityType]map[Operation]predicate{
	EntityProduct: {
		OpCreate: roles(RoleAdmin, RoleProductManager),
		OpRead:   anyone,
		OpUpdate: roles(RoleAdmin, RoleProductManager),
		OpDelete: roles(RoleAdmin),
	},
	EntityCategory: {
		OpCreate: roles(RoleAdmin, RoleProductManager),
		OpRead:   anyone,
		OpUpdate: roles(RoleAdmin, RoleProductManager),
		OpDelete: roles(RoleAdmin),
	},
	EntityBrand: {
		OpCreate: roles(RoleAdmin, RoleProductManager),
		OpRead:   anyone,
		OpUpdate: roles(RoleAdmin, RoleProductManager),
		OpDelete: roles(RoleAdmin),
	},
	EntityMedia: {
		OpCreate: roles(RoleAdmin, RoleProductManager),
		OpRead:   anyone,
		OpUpdate: roles(RoleAdmin, RoleProductManager),
		OpDelete: roles(RoleAdmin),
	},
	EntityNews: {
		OpCreate: roles(RoleAdmin, RoleProductManager),
		OpRead:   anyone, // anonymous readers are narrowed to published rows
		OpUpdate: roles(RoleAdmin, RoleProductManager),
		OpDelete: roles(RoleAdmin),
	},
	EntityCompanyInfo: {
		OpCreate: roles(RoleAdmin),
		OpRead:   anyone,
		OpUpdate: roles(RoleAdmin),
		OpDelete: roles(RoleAdmin),
	},
	EntityHomepageContent: {
		OpCreate: roles(RoleAdmin),
		OpRead:   anyone,
		OpUpdate: roles(RoleAdmin),
		OpDelete: roles(RoleAdmin),
	},
	EntityUser: {
		OpCreate: roles(RoleAdmin),
		OpRead:   roles(RoleAdmin, RoleProductManager), // narrowed to own row unless admin
		OpUpdate: roles(RoleAdmin, RoleProductManager), // narrowed to own row unless admin
		OpDelete: roles(RoleAdmin),
	},
}

// Authorize evaluates the predicate table for one entity/operation/actor triple.
// Unknown entity types deny rather than fall open.
func Authorize(entity EntityType, op Operation, actor Actor) Decision {
	ops, ok := registry[entity]
	if !ok {
		return Deny(fmt.Sprintf("unknown entity type %q", entity))
	}
	pred, ok := ops[op]
	if !ok {
		return Deny(fmt.Sprintf("unknown operation %q", op))
	}
	return pred(actor)
}

// Scope is a query-level restriction applied where read access is
// row-conditional rather than all-or-nothing.
type Scope struct {
	// Status, when non-empty, restricts rows to that status value.
	Status string
	// OwnerID, when set, restricts rows to the given owner/primary id.
	OwnerID *uuid.UUID
	// DenyAll marks a scope that matches no rows at all.
	DenyAll bool
}

// Unrestricted reports whether the scope places no constraint on the query.
func (s Scope) Unrestricted() bool {
	return !s.DenyAll && s.Status == "" && s.OwnerID == nil
}

// ReadScope narrows read queries for row-scoped entity types. News is the
// one content type with a status constraint: anonymous and unrecognized
// actors only see published posts, staff see every status. User rows are
// visible to their owner and to admins. Every other entity type is
// unconstrained.
func ReadScope(entity EntityType, actor Actor) Scope {
	switch entity {
	case EntityNews:
		if actor.Role.IsStaff() {
			return Scope{}
		}
		return Scope{Status: "published"}
	case EntityUser:
		if actor.HasRole(RoleAdmin) {
			return Scope{}
		}
		if actor.IsAnonymous() {
			return Scope{DenyAll: true}
		}
		id := actor.ID
		return Scope{OwnerID: &id}
	default:
		return Scope{}
	}
}
