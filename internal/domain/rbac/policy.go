package rbac

import (
	"carestay/internal/domain/user"

	"github.com/google/uuid"
)

// permissionsFor is the single place the role policy lives. The switch is
// exhaustive over user.AllRoles; a new role fails the policy unit tests
// until it gets an explicit arm here.
func permissionsFor(role user.Role) []Permission {
	switch role {
	case user.RoleCustomer:
		return []Permission{
			PermUserRead,
			PermUserUpdate,
			PermBookingCreate,
			PermBookingRead,
			PermBookingUpdate,
			PermNursingHomeRead,
		}
	case user.RoleSupplier:
		return []Permission{
			PermUserRead,
			PermUserUpdate,
			PermSupplierRead,
			PermSupplierUpdate,
			PermNursingHomeCreate,
			PermNursingHomeRead,
			PermNursingHomeUpdate,
			PermBookingRead,
			PermBookingUpdate,
			PermAnalyticsRead,
		}
	case user.RoleAdmin:
		return AllPermissions()
	default:
		return nil
	}
}

var rolePermissions = buildPolicy()

func buildPolicy() map[user.Role]map[Permission]struct{} {
	policy := make(map[user.Role]map[Permission]struct{}, len(user.AllRoles()))
	for _, role := range user.AllRoles() {
		grants := make(map[Permission]struct{})
		for _, p := range permissionsFor(role) {
			grants[p] = struct{}{}
		}
		policy[role] = grants
	}
	return policy
}

// PermissionsFor returns the permission set assigned to a role. Unknown
// roles hold nothing.
func PermissionsFor(role user.Role) []Permission {
	return permissionsFor(role)
}

func HasPermission(role user.Role, p Permission) bool {
	_, ok := rolePermissions[role][p]
	return ok
}

func HasAnyPermission(role user.Role, perms []Permission) bool {
	for _, p := range perms {
		if HasPermission(role, p) {
			return true
		}
	}
	return false
}

func HasAllPermissions(role user.Role, perms []Permission) bool {
	for _, p := range perms {
		if !HasPermission(role, p) {
			return false
		}
	}
	return true
}

func HasRole(role user.Role, want user.Role) bool {
	return role == want
}

func HasAnyRole(role user.Role, wants []user.Role) bool {
	for _, w := range wants {
		if role == w {
			return true
		}
	}
	return false
}

// CanAccessResource checks the "resource:action" grant for a role.
func CanAccessResource(role user.Role, resource, action string) bool {
	return HasPermission(role, Permission(resource+":"+action))
}

// CanAccessOwnResource is the sole ownership primitive: the caller must
// pass the resource owner id explicitly. Admins bypass the check.
func CanAccessOwnResource(actorID uuid.UUID, role user.Role, ownerID uuid.UUID) bool {
	if role == user.RoleAdmin {
		return true
	}
	return actorID == ownerID
}
