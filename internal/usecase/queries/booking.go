package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"carestay/internal/domain/rbac"
	"carestay/internal/domain/user"
	"carestay/internal/infra"
	"carestay/internal/infra/db"
	"carestay/internal/pkg/errs"
	"carestay/internal/usecase/shared"
)

var (
	ErrBookingNotFound     = errs.New("booking not found")
	ErrBookingAccessDenied = errs.New("booking access denied")
	ErrSupplierNotFound    = errs.New("supplier not found")
)

type BookingReadStore interface {
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*BookingView, error)
	ListByUser(ctx context.Context, dbtx db.DBTX, userID uuid.UUID, after time.Time, afterID uuid.UUID, limit int) ([]BookingView, error)
	ListBySupplier(ctx context.Context, dbtx db.DBTX, supplierID uuid.UUID, after time.Time, afterID uuid.UUID, limit int) ([]BookingView, error)
	PaymentsByBooking(ctx context.Context, dbtx db.DBTX, bookingID uuid.UUID) ([]PaymentView, error)
}

type BookingList struct {
	Bookings   []BookingView
	NextCursor *string
}

type BookingQueries interface {
	GetByID(ctx context.Context, actorID uuid.UUID, actorRole user.Role, id uuid.UUID) (*BookingView, error)
	ListMine(ctx context.Context, userID uuid.UUID, afterCursor string, limit int) (*BookingList, error)
	ListForSupplier(ctx context.Context, ownerUserID uuid.UUID, afterCursor string, limit int) (*BookingList, error)
	ListPayments(ctx context.Context, actorID uuid.UUID, actorRole user.Role, bookingID uuid.UUID) ([]PaymentView, error)
}

type bookingQueriesImpl struct {
	uow       shared.UnitOfWork
	readStore BookingReadStore
}

func NewBookingQueries(uow shared.UnitOfWork, readStore BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{
		uow:       uow,
		readStore: readStore,
	}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actorID uuid.UUID, actorRole user.Role, id uuid.UUID) (*BookingView, error) {
	view, err := q.findBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := q.authorize(ctx, actorID, actorRole, view); err != nil {
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListMine(ctx context.Context, userID uuid.UUID, afterCursor string, limit int) (*BookingList, error) {
	limit = ValidateLimit(limit)
	after, afterID, err := resolveCursor(afterCursor)
	if err != nil {
		return nil, err
	}

	var bookings []BookingView
	err = q.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		var err error
		bookings, err = q.readStore.ListByUser(ctx, dbtx, userID, after, afterID, limit)
		return err
	})
	if err != nil {
		return nil, err
	}
	return toBookingList(bookings, limit), nil
}

func (q *bookingQueriesImpl) ListForSupplier(ctx context.Context, ownerUserID uuid.UUID, afterCursor string, limit int) (*BookingList, error) {
	limit = ValidateLimit(limit)
	after, afterID, err := resolveCursor(afterCursor)
	if err != nil {
		return nil, err
	}

	sup, err := q.uow.CommandReads().SupplierByOwner(ctx, ownerUserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSupplierNotFound
		}
		return nil, err
	}

	var bookings []BookingView
	err = q.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		var err error
		bookings, err = q.readStore.ListBySupplier(ctx, dbtx, sup.ID, after, afterID, limit)
		return err
	})
	if err != nil {
		return nil, err
	}
	return toBookingList(bookings, limit), nil
}

func (q *bookingQueriesImpl) ListPayments(ctx context.Context, actorID uuid.UUID, actorRole user.Role, bookingID uuid.UUID) ([]PaymentView, error) {
	view, err := q.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := q.authorize(ctx, actorID, actorRole, view); err != nil {
		return nil, err
	}

	var payments []PaymentView
	err = q.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		var err error
		payments, err = q.readStore.PaymentsByBooking(ctx, dbtx, bookingID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (q *bookingQueriesImpl) findBooking(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	var view *BookingView
	err := q.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		var err error
		view, err = q.readStore.FindByID(ctx, dbtx, id)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return view, nil
}

// authorize allows the booking customer, the supplier that owns the
// booked home, and admins.
func (q *bookingQueriesImpl) authorize(ctx context.Context, actorID uuid.UUID, actorRole user.Role, view *BookingView) error {
	if rbac.CanAccessOwnResource(actorID, actorRole, view.UserID) {
		return nil
	}
	if actorRole == user.RoleSupplier {
		sup, err := q.uow.CommandReads().SupplierByOwner(ctx, actorID)
		if err == nil && sup.ID == view.SupplierID {
			return nil
		}
	}
	return ErrBookingAccessDenied
}

func resolveCursor(afterCursor string) (time.Time, uuid.UUID, error) {
	if afterCursor == "" {
		return time.Now().Add(time.Hour), uuid.Max, nil
	}
	after, afterID, err := DecodeAfterCursor(afterCursor)
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Wrap(err, "invalid cursor")
	}
	return after, afterID, nil
}

func toBookingList(bookings []BookingView, limit int) *BookingList {
	result := &BookingList{Bookings: bookings}
	if len(bookings) == limit {
		last := bookings[len(bookings)-1]
		cursor := EncodeAfterCursor(last.CreatedAt, last.ID)
		result.NextCursor = &cursor
	}
	return result
}
