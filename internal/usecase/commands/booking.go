package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"carestay/internal/domain/booking"
	"carestay/internal/domain/payment"
	"carestay/internal/domain/user"
	reqdto "carestay/internal/handler/dto/request"
	"carestay/internal/infra"
	"carestay/internal/infra/cache"
	"carestay/internal/pkg/clock"
	"carestay/internal/pkg/config"
	"carestay/internal/pkg/errs"
	"carestay/internal/usecase/queries"
	"carestay/internal/usecase/shared"
)

var (
	ErrBookingNotFound     = errs.New("booking not found")
	ErrPaymentNotFound     = errs.New("payment not found")
	ErrNursingHomeNotLive  = errs.New("nursing home is not live")
	ErrRatePlanMismatch    = errs.New("rate plan does not belong to the requested room")
	ErrPriceMissing        = errs.New("price calendar does not cover the stay")
	ErrNonUniformPricing   = errs.New("nightly price varies across the stay")
	ErrNoAvailability      = errs.New("no availability for the requested stay")
	ErrBookingStateInvalid = errs.New("booking state does not allow this operation")
	ErrBookingAccessDenied = errs.New("booking does not belong to the actor")
)

type CreateBookingResult struct {
	Booking   *queries.BookingView
	PaymentID uuid.UUID
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, userID uuid.UUID, req reqdto.CreateBookingRequest) (*CreateBookingResult, error)
	ApproveBooking(ctx context.Context, actorID uuid.UUID, actorRole user.Role, bookingID uuid.UUID) error
	ConfirmPayment(ctx context.Context, actorID uuid.UUID, actorRole user.Role, paymentID uuid.UUID, req reqdto.ConfirmPaymentRequest) error
}

type bookingCommandsImpl struct {
	uow   shared.UnitOfWork
	cache *cache.Service
	clock clock.Clock
	cfg   config.PaymentConfig
}

func NewBookingCommands(uow shared.UnitOfWork, cache *cache.Service, clock clock.Clock, cfg config.PaymentConfig) BookingCommands {
	return &bookingCommandsImpl{
		uow:   uow,
		cache: cache,
		clock: clock,
		cfg:   cfg,
	}
}

// CreateBooking reserves availability, prices the stay and opens a pending
// payment in one transaction. Any failure rolls everything back, including
// the per-night availability decrements.
func (b *bookingCommandsImpl) CreateBooking(ctx context.Context, userID uuid.UUID, req reqdto.CreateBookingRequest) (*CreateBookingResult, error) {
	stay, err := req.ToStay()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	currency, err := booking.NewCurrency(req.Currency)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	today := b.clock.Now().UTC().Truncate(24 * time.Hour)
	if stay.CheckIn().Before(today) {
		return nil, errs.Mark(errs.New("check-in date is in the past"), ErrDomainValidation)
	}

	var (
		created *booking.Booking
		pay     *payment.Payment
	)

	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		home, err := tx.Reads().NursingHomeByID(ctx, req.NursingHomeID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrNursingHomeNotFound)
			}
			return err
		}
		if home.Status != "live" {
			return ErrNursingHomeNotLive
		}

		created, err = booking.NewBooking(userID, home.SupplierID, home.ID, stay, req.Guests, currency)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		for _, itemReq := range req.Items {
			item, err := b.buildItem(ctx, tx, created, home, itemReq, stay)
			if err != nil {
				return err
			}
			created.AddItem(item)
		}

		if err := tx.Bookings().Create(ctx, tx.DB(), created); err != nil {
			return err
		}

		pay, err = payment.NewPayment(created.ID(), b.cfg.Provider, created.TotalCents(), currency.String())
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		return tx.Payments().Create(ctx, tx.DB(), pay)
	})
	if err != nil {
		return nil, err
	}

	b.cache.InvalidateDashboardStats(ctx, userID)

	return &CreateBookingResult{
		Booking:   toBookingView(created),
		PaymentID: pay.ID(),
	}, nil
}

func (b *bookingCommandsImpl) buildItem(
	ctx context.Context,
	tx shared.Tx,
	created *booking.Booking,
	home *shared.NursingHomeSnapshot,
	itemReq reqdto.BookingItemRequest,
	stay booking.StayPeriod,
) (*booking.Item, error) {
	plan, err := tx.Reads().RatePlanByID(ctx, itemReq.RatePlanID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrRatePlanNotFound)
		}
		return nil, err
	}
	if plan.RoomTypeID != itemReq.RoomTypeID || plan.NursingHomeID != home.ID {
		return nil, ErrRatePlanMismatch
	}
	if plan.SupplierID != home.SupplierID {
		return nil, errs.Mark(booking.ErrHomeSupplierMismatch, ErrDomainValidation)
	}

	days, err := tx.Reads().CalendarRange(ctx, itemReq.RatePlanID, stay.CheckIn(), stay.CheckOut())
	if err != nil {
		return nil, err
	}
	if int32(len(days)) != stay.Nights() {
		return nil, ErrPriceMissing
	}

	unitPrice := days[0].PriceCents
	for _, day := range days {
		if day.PriceCents != unitPrice {
			return nil, ErrNonUniformPricing
		}
		if err := tx.Calendar().DecrementAvailability(ctx, tx.DB(), itemReq.RatePlanID, day.Day); err != nil {
			if infra.IsKind(err, infra.KindConditionFailed) {
				return nil, errs.Mark(err, ErrNoAvailability)
			}
			return nil, err
		}
	}

	item, err := booking.NewItem(created.ID(), itemReq.RoomTypeID, itemReq.RatePlanID, stay.Nights(), unitPrice)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	return item, nil
}

func (b *bookingCommandsImpl) ApproveBooking(ctx context.Context, actorID uuid.UUID, actorRole user.Role, bookingID uuid.UUID) error {
	return b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().BookingByID(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrBookingNotFound)
			}
			return err
		}

		if actorRole != user.RoleAdmin {
			sup, err := tx.Reads().SupplierByOwner(ctx, actorID)
			if err != nil {
				if infra.IsKind(err, infra.KindNotFound) {
					return errs.Mark(err, ErrSupplierNotFound)
				}
				return err
			}
			if snap.SupplierID != sup.ID {
				return ErrBookingAccessDenied
			}
		}

		if snap.Status != booking.StatusDraft.String() {
			return ErrBookingStateInvalid
		}
		return tx.Bookings().UpdateStatus(ctx, tx.DB(), bookingID, booking.StatusApproved)
	})
}

// ConfirmPayment settles a pending payment and moves the booking to its
// terminal paid/failed state in the same transaction.
func (b *bookingCommandsImpl) ConfirmPayment(ctx context.Context, actorID uuid.UUID, actorRole user.Role, paymentID uuid.UUID, req reqdto.ConfirmPaymentRequest) error {
	var bookingUserID uuid.UUID

	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		paySnap, err := tx.Reads().PaymentByID(ctx, paymentID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrPaymentNotFound)
			}
			return err
		}

		bookingSnap, err := tx.Reads().BookingByID(ctx, paySnap.BookingID)
		if err != nil {
			return err
		}
		bookingUserID = bookingSnap.UserID

		if actorRole != user.RoleAdmin && bookingSnap.UserID != actorID {
			return ErrBookingAccessDenied
		}
		if paySnap.Status != payment.StatusPending.String() {
			return ErrBookingStateInvalid
		}

		pay := payment.ReconstructPayment(
			paySnap.ID, paySnap.BookingID, b.cfg.Provider, nil,
			payment.StatusPending, paySnap.AmountCents, paySnap.Currency,
			time.Time{}, time.Time{},
		)

		if *req.Succeeded {
			if bookingSnap.Status != booking.StatusApproved.String() {
				return ErrBookingStateInvalid
			}
			providerRef := ""
			if req.ProviderRef != nil {
				providerRef = *req.ProviderRef
			}
			if err := pay.Succeed(providerRef); err != nil {
				return errs.Mark(err, ErrBookingStateInvalid)
			}
			if err := tx.Payments().Update(ctx, tx.DB(), pay); err != nil {
				return err
			}
			return tx.Bookings().UpdateStatus(ctx, tx.DB(), paySnap.BookingID, booking.StatusPaid)
		}

		if err := pay.Fail(); err != nil {
			return errs.Mark(err, ErrBookingStateInvalid)
		}
		if err := tx.Payments().Update(ctx, tx.DB(), pay); err != nil {
			return err
		}
		return tx.Bookings().UpdateStatus(ctx, tx.DB(), paySnap.BookingID, booking.StatusFailed)
	})
	if err != nil {
		return err
	}

	b.cache.InvalidateDashboardStats(ctx, bookingUserID)
	return nil
}

func toBookingView(b *booking.Booking) *queries.BookingView {
	view := &queries.BookingView{
		ID:               b.ID(),
		UserID:           b.UserID(),
		SupplierID:       b.SupplierID(),
		NursingHomeID:    b.NursingHomeID(),
		Status:           b.Status().String(),
		CheckIn:          b.Stay().CheckIn(),
		CheckOut:         b.Stay().CheckOut(),
		Guests:           b.Guests(),
		TotalAmountCents: b.TotalCents(),
		Currency:         b.Currency().String(),
		Items:            make([]queries.BookingItemView, 0, len(b.Items())),
	}
	for _, item := range b.Items() {
		view.Items = append(view.Items, queries.BookingItemView{
			ID:             item.ID(),
			RoomTypeID:     item.RoomTypeID(),
			RatePlanID:     item.RatePlanID(),
			Nights:         item.Nights(),
			UnitPriceCents: item.UnitPriceCents(),
			SubtotalCents:  item.SubtotalCents(),
		})
	}
	return view
}
