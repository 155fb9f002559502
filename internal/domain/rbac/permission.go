package rbac

// Permission is a "resource:action" grant string.
type Permission string

const (
	// User management
	PermUserCreate Permission = "user:create"
	PermUserRead   Permission = "user:read"
	PermUserUpdate Permission = "user:update"
	PermUserDelete Permission = "user:delete"

	// Booking management
	PermBookingCreate Permission = "booking:create"
	PermBookingRead   Permission = "booking:read"
	PermBookingUpdate Permission = "booking:update"
	PermBookingDelete Permission = "booking:delete"

	// Nursing home management
	PermNursingHomeCreate Permission = "nursing_home:create"
	PermNursingHomeRead   Permission = "nursing_home:read"
	PermNursingHomeUpdate Permission = "nursing_home:update"
	PermNursingHomeDelete Permission = "nursing_home:delete"

	// Supplier management
	PermSupplierCreate Permission = "supplier:create"
	PermSupplierRead   Permission = "supplier:read"
	PermSupplierUpdate Permission = "supplier:update"
	PermSupplierDelete Permission = "supplier:delete"

	// Analytics and reports
	PermAnalyticsRead   Permission = "analytics:read"
	PermAnalyticsExport Permission = "analytics:export"

	// System administration
	PermSystemConfig  Permission = "system:config"
	PermSystemMonitor Permission = "system:monitor"
)

func (p Permission) String() string {
	return string(p)
}

// AllPermissions returns every defined permission. The admin role is
// granted exactly this set.
func AllPermissions() []Permission {
	return []Permission{
		PermUserCreate, PermUserRead, PermUserUpdate, PermUserDelete,
		PermBookingCreate, PermBookingRead, PermBookingUpdate, PermBookingDelete,
		PermNursingHomeCreate, PermNursingHomeRead, PermNursingHomeUpdate, PermNursingHomeDelete,
		PermSupplierCreate, PermSupplierRead, PermSupplierUpdate, PermSupplierDelete,
		PermAnalyticsRead, PermAnalyticsExport,
		PermSystemConfig, PermSystemMonitor,
	}
}
