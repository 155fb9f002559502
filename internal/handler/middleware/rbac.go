package middleware

import (
	"strings"

	"carestay/internal/domain/rbac"
	"carestay/internal/domain/user"
	"carestay/internal/handler/httperr"
	"carestay/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var (
	errNoSession        = errs.New("no session in context")
	errRoleNotPermitted = errs.New("role not permitted")
)

// RequireRole allows only the listed roles. The denial message lists the
// required roles in the order supplied; clients parse it.
func RequireRole(roles ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := GetSession(c)
		if !ok {
			httperr.Unauthorized(c, errNoSession)
			return
		}

		if !rbac.HasAnyRole(session.Role, roles) {
			names := make([]string, len(roles))
			for i, role := range roles {
				names[i] = role.String()
			}
			msg := "Access denied. Required role(s): " + strings.Join(names, ", ")
			httperr.Forbidden(c, errRoleNotPermitted, msg)
			return
		}

		c.Next()
	}
}

// RequirePermission gates on a fine-grained permission instead of a role
// list, for routes where roles are too coarse.
func RequirePermission(p rbac.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := GetSession(c)
		if !ok {
			httperr.Unauthorized(c, errNoSession)
			return
		}

		if !rbac.HasPermission(session.Role, p) {
			httperr.Forbidden(c, errRoleNotPermitted, "Access denied.")
			return
		}

		c.Next()
	}
}

func RequireAdmin() gin.HandlerFunc {
	return RequireRole(user.RoleAdmin)
}

func RequireSupplier() gin.HandlerFunc {
	return RequireRole(user.RoleSupplier)
}

func RequireCustomer() gin.HandlerFunc {
	return RequireRole(user.RoleCustomer)
}

func RequireSupplierOrAdmin() gin.HandlerFunc {
	return RequireRole(user.RoleSupplier, user.RoleAdmin)
}

func RequireCustomerOrAdmin() gin.HandlerFunc {
	return RequireRole(user.RoleCustomer, user.RoleAdmin)
}
