//go:build unit

package rbac_test

import (
	"testing"

	"carestay/internal/domain/rbac"
	"carestay/internal/domain/user"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

var sortPermissions = cmpopts.SortSlices(func(a, b rbac.Permission) bool { return a < b })

func TestPermissionsFor(t *testing.T) {
	t.Run("every role has an explicit grant set", func(t *testing.T) {
		for _, role := range user.AllRoles() {
			assert.NotEmpty(t, rbac.PermissionsFor(role), "role %s has no grants", role)
		}
	})

	t.Run("admin holds every permission", func(t *testing.T) {
		if diff := cmp.Diff(rbac.AllPermissions(), rbac.PermissionsFor(user.RoleAdmin), sortPermissions); diff != "" {
			t.Errorf("admin permission set mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("customer grants", func(t *testing.T) {
		expected := []rbac.Permission{
			rbac.PermUserRead,
			rbac.PermUserUpdate,
			rbac.PermBookingCreate,
			rbac.PermBookingRead,
			rbac.PermBookingUpdate,
			rbac.PermNursingHomeRead,
		}
		if diff := cmp.Diff(expected, rbac.PermissionsFor(user.RoleCustomer), sortPermissions); diff != "" {
			t.Errorf("customer permission set mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("unknown role holds nothing", func(t *testing.T) {
		assert.Empty(t, rbac.PermissionsFor(user.Role("ghost")))
	})
}

func TestHasPermission(t *testing.T) {
	cases := []struct {
		name string
		role user.Role
		perm rbac.Permission
		want bool
	}{
		{"customer can create bookings", user.RoleCustomer, rbac.PermBookingCreate, true},
		{"customer cannot create nursing homes", user.RoleCustomer, rbac.PermNursingHomeCreate, false},
		{"customer cannot read analytics", user.RoleCustomer, rbac.PermAnalyticsRead, false},
		{"supplier can create nursing homes", user.RoleSupplier, rbac.PermNursingHomeCreate, true},
		{"supplier can read analytics", user.RoleSupplier, rbac.PermAnalyticsRead, true},
		{"supplier cannot create bookings", user.RoleSupplier, rbac.PermBookingCreate, false},
		{"supplier cannot delete users", user.RoleSupplier, rbac.PermUserDelete, false},
		{"admin can configure system", user.RoleAdmin, rbac.PermSystemConfig, true},
		{"admin can delete users", user.RoleAdmin, rbac.PermUserDelete, true},
		{"unknown role denied", user.Role("ghost"), rbac.PermUserRead, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, rbac.HasPermission(tc.role, tc.perm))
		})
	}
}

func TestHasAnyAndAllPermissions(t *testing.T) {
	t.Run("any matches a single grant", func(t *testing.T) {
		assert.True(t, rbac.HasAnyPermission(user.RoleCustomer, []rbac.Permission{
			rbac.PermSystemConfig,
			rbac.PermBookingCreate,
		}))
	})

	t.Run("any with no matching grant", func(t *testing.T) {
		assert.False(t, rbac.HasAnyPermission(user.RoleCustomer, []rbac.Permission{
			rbac.PermSystemConfig,
			rbac.PermUserDelete,
		}))
	})

	t.Run("all requires the full set", func(t *testing.T) {
		assert.True(t, rbac.HasAllPermissions(user.RoleSupplier, []rbac.Permission{
			rbac.PermNursingHomeCreate,
			rbac.PermNursingHomeUpdate,
		}))
		assert.False(t, rbac.HasAllPermissions(user.RoleSupplier, []rbac.Permission{
			rbac.PermNursingHomeCreate,
			rbac.PermUserDelete,
		}))
	})

	t.Run("empty wanted set", func(t *testing.T) {
		assert.False(t, rbac.HasAnyPermission(user.RoleAdmin, nil))
		assert.True(t, rbac.HasAllPermissions(user.RoleCustomer, nil))
	})
}

func TestHasAnyRole(t *testing.T) {
	assert.True(t, rbac.HasAnyRole(user.RoleSupplier, []user.Role{user.RoleSupplier, user.RoleAdmin}))
	assert.False(t, rbac.HasAnyRole(user.RoleCustomer, []user.Role{user.RoleSupplier, user.RoleAdmin}))
	assert.False(t, rbac.HasAnyRole(user.RoleCustomer, nil))
}

func TestCanAccessResource(t *testing.T) {
	assert.True(t, rbac.CanAccessResource(user.RoleCustomer, "booking", "create"))
	assert.False(t, rbac.CanAccessResource(user.RoleCustomer, "supplier", "update"))
	assert.True(t, rbac.CanAccessResource(user.RoleAdmin, "system", "monitor"))
}

func TestCanAccessOwnResource(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()

	t.Run("owner can access", func(t *testing.T) {
		assert.True(t, rbac.CanAccessOwnResource(owner, user.RoleCustomer, owner))
	})

	t.Run("non-owner denied", func(t *testing.T) {
		assert.False(t, rbac.CanAccessOwnResource(other, user.RoleCustomer, owner))
		assert.False(t, rbac.CanAccessOwnResource(other, user.RoleSupplier, owner))
	})

	t.Run("admin bypasses ownership", func(t *testing.T) {
		assert.True(t, rbac.CanAccessOwnResource(other, user.RoleAdmin, owner))
	})
}
