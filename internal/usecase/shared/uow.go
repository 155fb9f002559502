package shared

import (
	"context"
	"time"

	"carestay/internal/domain/booking"
	"carestay/internal/domain/listing"
	"carestay/internal/domain/payment"
	"carestay/internal/domain/supplier"
	"carestay/internal/domain/user"
	"carestay/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Users() UserRepository
	Suppliers() SupplierRepository
	Listings() ListingRepository
	Calendar() CalendarRepository
	Bookings() BookingRepository
	Payments() PaymentRepository
	Payouts() PayoutRepository
	Reads() CommandReads
	DB() db.DBTX
}

type UserRepository interface {
	Create(ctx context.Context, db db.DBTX, u *user.User) error
	CreateCredential(ctx context.Context, db db.DBTX, userID uuid.UUID, passwordHash string) error
	UpdateLastLogin(ctx context.Context, db db.DBTX, userID uuid.UUID) error
}

type SupplierRepository interface {
	Create(ctx context.Context, db db.DBTX, s *supplier.Supplier) error
	UpdateQCStatus(ctx context.Context, db db.DBTX, supplierID uuid.UUID, status supplier.QCStatus) error
}

type ListingRepository interface {
	CreateNursingHome(ctx context.Context, db db.DBTX, n *listing.NursingHome) error
	UpdateNursingHomeStatus(ctx context.Context, db db.DBTX, nursingHomeID uuid.UUID, status listing.HomeStatus) error
	CreateRoomType(ctx context.Context, db db.DBTX, r *listing.RoomType) error
	CreateRatePlan(ctx context.Context, db db.DBTX, r *listing.RatePlan) error
}

type CalendarRepository interface {
	UpsertDays(ctx context.Context, db db.DBTX, ratePlanID uuid.UUID, days []listing.DayPrice) error
	// DecrementAvailability performs a conditional decrement; it fails with
	// KindConditionFailed when the day has no remaining availability.
	DecrementAvailability(ctx context.Context, db db.DBTX, ratePlanID uuid.UUID, day time.Time) error
}

type BookingRepository interface {
	Create(ctx context.Context, db db.DBTX, b *booking.Booking) error
	UpdateStatus(ctx context.Context, db db.DBTX, bookingID uuid.UUID, status booking.Status) error
}

type PaymentRepository interface {
	Create(ctx context.Context, db db.DBTX, p *payment.Payment) error
	Update(ctx context.Context, db db.DBTX, p *payment.Payment) error
	CreateRefund(ctx context.Context, db db.DBTX, r *payment.Refund) error
}

type PayoutRepository interface {
	Create(ctx context.Context, db db.DBTX, p *payment.Payout) error
	UpdateStatus(ctx context.Context, db db.DBTX, payoutID uuid.UUID, status payment.PayoutStatus) error
}

type CommandReads interface {
	SupplierByID(ctx context.Context, id uuid.UUID) (*SupplierSnapshot, error)
	SupplierByOwner(ctx context.Context, ownerUserID uuid.UUID) (*SupplierSnapshot, error)
	NursingHomeByID(ctx context.Context, id uuid.UUID) (*NursingHomeSnapshot, error)
	RoomTypeByID(ctx context.Context, id uuid.UUID) (*RoomTypeSnapshot, error)
	RatePlanByID(ctx context.Context, id uuid.UUID) (*RatePlanSnapshot, error)
	CalendarRange(ctx context.Context, ratePlanID uuid.UUID, from, to time.Time) ([]CalendarDaySnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	PaymentByID(ctx context.Context, id uuid.UUID) (*PaymentSnapshot, error)
	PayoutByID(ctx context.Context, id uuid.UUID) (*PayoutSnapshot, error)
}
