package access

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func actorWithRole(role Role) Actor {
	if role == RoleAnonymous {
		return Anonymous()
	}
	return Actor{ID: uuid.New(), Role: role}
}

// One expectation per (entity, operation, role) triple, the full predicate table.
func TestAuthorizeTable(t *testing.T) {
	staffOnly := map[Role]bool{RoleAdmin: true, RoleProductManager: true, RoleAnonymous: false}
	adminOnly := map[Role]bool{RoleAdmin: true, RoleProductManager: false, RoleAnonymous: false}
	everyone := map[Role]bool{RoleAdmin: true, RoleProductManager: true, RoleAnonymous: true}

	expected := map[EntityType]map[Operation]map[Role]bool{
		EntityProduct:  {OpCreate: staffOnly, OpRead: everyone, OpUpdate: staffOnly, OpDelete: adminOnly},
		EntityCategory: {OpCreate: staffOnly, OpRead: everyone, OpUpdate: staffOnly, OpDelete: adminOnly},
		EntityBrand:    {OpCreate: staffOnly, OpRead: everyone, OpUpdate: staffOnly, OpDelete: adminOnly},
		EntityMedia:    {OpCreate: staffOnly, OpRead: everyone, OpUpdate: staffOnly, OpDelete: adminOnly},
		EntityNews:     {OpCreate: staffOnly, OpRead: everyone, OpUpdate: staffOnly, OpDelete: adminOnly},
		EntityCompanyInfo: {
			OpCreate: adminOnly, OpRead: everyone, OpUpdate: adminOnly, OpDelete: adminOnly,
		},
		EntityHomepageContent: {
			OpCreate: adminOnly, OpRead: everyone, OpUpdate: adminOnly, OpDelete: adminOnly,
		},
		EntityUser: {
			OpCreate: adminOnly, OpRead: staffOnly, OpUpdate: staffOnly, OpDelete: adminOnly,
		},
	}

	for entity, ops := range expected {
		for op, byRole := range ops {
			for role, want := range byRole {
				decision := Authorize(entity, op, actorWithRole(role))
				assert.Equalf(t, want, decision.Allowed,
					"%s %s as %s: want allowed=%v, got %+v", op, entity, role, want, decision)
				if !want {
					assert.NotEmpty(t, decision.Reason)
					assert.ErrorIs(t, decision.Err(), ErrForbidden)
				} else {
					assert.NoError(t, decision.Err())
				}
			}
		}
	}
}

func TestAuthorizeUnknownEntityDenies(t *testing.T) {
	decision := Authorize(EntityType("orders"), OpRead, actorWithRole(RoleAdmin))
	assert.False(t, decision.Allowed)
	assert.ErrorIs(t, decision.Err(), ErrForbidden)
}

func TestAuthorizeUnknownOperationDenies(t *testing.T) {
	decision := Authorize(EntityProduct, Operation("publish"), actorWithRole(RoleAdmin))
	assert.False(t, decision.Allowed)
}

func TestReadScopeNews(t *testing.T) {
	assert.Equal(t, Scope{Status: "published"}, ReadScope(EntityNews, Anonymous()))
	assert.True(t, ReadScope(EntityNews, actorWithRole(RoleAdmin)).Unrestricted())
	assert.True(t, ReadScope(EntityNews, actorWithRole(RoleProductManager)).Unrestricted())
}

func TestReadScopeUser(t *testing.T) {
	assert.True(t, ReadScope(EntityUser, actorWithRole(RoleAdmin)).Unrestricted())

	pm := actorWithRole(RoleProductManager)
	scope := ReadScope(EntityUser, pm)
	require.NotNil(t, scope.OwnerID)
	assert.Equal(t, pm.ID, *scope.OwnerID)
	assert.False(t, scope.Unrestricted())

	assert.True(t, ReadScope(EntityUser, Anonymous()).DenyAll)
}

func TestReadScopeUnconstrainedForContent(t *testing.T) {
	for _, entity := range []EntityType{
		EntityProduct, EntityCategory, EntityBrand, EntityMedia,
		EntityCompanyInfo, EntityHomepageContent,
	} {
		assert.Truef(t, ReadScope(entity, Anonymous()).Unrestricted(), "entity %s", entity)
	}
}

func TestHasRoleIsExactMatch(t *testing.T) {
	admin := actorWithRole(RoleAdmin)
	assert.True(t, admin.HasRole(RoleAdmin))
	assert.False(t, admin.HasRole(RoleProductManager))
	assert.False(t, Anonymous().HasRole(RoleAdmin))
	assert.True(t, Anonymous().IsAnonymous())
}

func TestDenyReasonDistinguishesAnonymous(t *testing.T) {
	decision := Authorize(EntityProduct, OpCreate, Anonymous())
	require.False(t, decision.Allowed)
	assert.Equal(t, "authentication required", decision.Reason)

	err := Authorize(EntityProduct, OpDelete, actorWithRole(RoleProductManager)).Err()
	assert.True(t, errors.Is(err, ErrForbidden))
	assert.Contains(t, err.Error(), "product-manager")
}
