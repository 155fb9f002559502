//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"carestay/internal/domain/rbac"
	"carestay/internal/domain/user"
	"carestay/internal/handler/middleware"
	"carestay/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRoleRouter(role user.Role, guard gin.HandlerFunc) (*gin.Engine, *bool) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	session := customerSession()
	session.Role = role
	resolver := &stubSessionResolver{session: session}

	reached := false
	router.GET("/guarded",
		middleware.NewAuthMiddleware(resolver).RequireAuth(),
		guard,
		func(c *gin.Context) {
			reached = true
			c.Status(http.StatusOK)
		})
	return router, &reached
}

func TestRequireRole(t *testing.T) {
	cases := []struct {
		name       string
		role       user.Role
		guard      gin.HandlerFunc
		expectCode int
	}{
		{"admin passes admin gate", user.RoleAdmin, middleware.RequireAdmin(), http.StatusOK},
		{"supplier blocked at admin gate", user.RoleSupplier, middleware.RequireAdmin(), http.StatusForbidden},
		{"customer blocked at admin gate", user.RoleCustomer, middleware.RequireAdmin(), http.StatusForbidden},
		{"supplier passes supplier gate", user.RoleSupplier, middleware.RequireSupplier(), http.StatusOK},
		{"admin blocked at supplier-only gate", user.RoleAdmin, middleware.RequireSupplier(), http.StatusForbidden},
		{"customer passes customer-or-admin gate", user.RoleCustomer, middleware.RequireCustomerOrAdmin(), http.StatusOK},
		{"admin passes customer-or-admin gate", user.RoleAdmin, middleware.RequireCustomerOrAdmin(), http.StatusOK},
		{"supplier blocked at customer-or-admin gate", user.RoleSupplier, middleware.RequireCustomerOrAdmin(), http.StatusForbidden},
		{"supplier passes supplier-or-admin gate", user.RoleSupplier, middleware.RequireSupplierOrAdmin(), http.StatusOK},
		{"customer blocked at supplier-or-admin gate", user.RoleCustomer, middleware.RequireSupplierOrAdmin(), http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router, reached := newRoleRouter(tc.role, tc.guard)
			w := httptest.PerformRequest(t, router, http.MethodGet, "/guarded", nil, "valid-token")

			assert.Equal(t, tc.expectCode, w.Code)
			assert.Equal(t, tc.expectCode == http.StatusOK, *reached)
		})
	}
}

func TestRequireRoleDenialBody(t *testing.T) {
	router, _ := newRoleRouter(user.RoleCustomer, middleware.RequireSupplierOrAdmin())
	w := httptest.PerformRequest(t, router, http.MethodGet, "/guarded", nil, "valid-token")

	assert.JSONEq(t,
		`{"success":false,"error":{"code":"FORBIDDEN","message":"Access denied. Required role(s): supplier, admin"}}`,
		w.Body.String())
}

func TestRequireRoleWithoutSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/guarded", middleware.RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.PerformRequest(t, router, http.MethodGet, "/guarded", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequirePermission(t *testing.T) {
	t.Run("granted permission passes", func(t *testing.T) {
		router, reached := newRoleRouter(user.RoleSupplier, middleware.RequirePermission(rbac.PermNursingHomeCreate))
		w := httptest.PerformRequest(t, router, http.MethodGet, "/guarded", nil, "valid-token")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, *reached)
	})

	t.Run("missing permission yields 403", func(t *testing.T) {
		router, reached := newRoleRouter(user.RoleCustomer, middleware.RequirePermission(rbac.PermNursingHomeCreate))
		w := httptest.PerformRequest(t, router, http.MethodGet, "/guarded", nil, "valid-token")

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.False(t, *reached)
	})
}
