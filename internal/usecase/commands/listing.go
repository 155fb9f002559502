package commands

import (
	"context"

	"github.com/google/uuid"

	"carestay/internal/domain/listing"
	"carestay/internal/domain/supplier"
	reqdto "carestay/internal/handler/dto/request"
	"carestay/internal/infra"
	"carestay/internal/infra/cache"
	"carestay/internal/pkg/errs"
	"carestay/internal/usecase/queries"
	"carestay/internal/usecase/shared"
)

var (
	ErrSupplierNotFound    = errs.New("supplier not found")
	ErrNursingHomeNotFound = errs.New("nursing home not found")
	ErrRoomTypeNotFound    = errs.New("room type not found")
	ErrRatePlanNotFound    = errs.New("rate plan not found")
	ErrNotOwner            = errs.New("resource not owned by supplier")
	ErrSupplierNotApproved = errs.New("supplier has not passed quality control")
	ErrDomainValidation    = errs.New("domain validation error")
)

type ListingCommands interface {
	CreateNursingHome(ctx context.Context, ownerUserID uuid.UUID, req reqdto.CreateNursingHomeRequest) (*queries.NursingHomeView, error)
	UpdateNursingHomeStatus(ctx context.Context, ownerUserID, nursingHomeID uuid.UUID, status string) error
	CreateRoomType(ctx context.Context, ownerUserID, nursingHomeID uuid.UUID, req reqdto.CreateRoomTypeRequest) (uuid.UUID, error)
	CreateRatePlan(ctx context.Context, ownerUserID, roomTypeID uuid.UUID, req reqdto.CreateRatePlanRequest) (uuid.UUID, error)
	UpsertCalendar(ctx context.Context, ownerUserID, ratePlanID uuid.UUID, req reqdto.UpsertCalendarRequest) error
}

type listingCommandsImpl struct {
	uow   shared.UnitOfWork
	cache *cache.Service
}

func NewListingCommands(uow shared.UnitOfWork, cache *cache.Service) ListingCommands {
	return &listingCommandsImpl{uow: uow, cache: cache}
}

func (l *listingCommandsImpl) CreateNursingHome(ctx context.Context, ownerUserID uuid.UUID, req reqdto.CreateNursingHomeRequest) (*queries.NursingHomeView, error) {
	var home *listing.NursingHome

	err := l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sup, err := l.ownSupplier(ctx, tx, ownerUserID)
		if err != nil {
			return err
		}

		home, err = req.ToDomain(sup.ID)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		return tx.Listings().CreateNursingHome(ctx, tx.DB(), home)
	})
	if err != nil {
		return nil, err
	}

	return &queries.NursingHomeView{
		ID:         home.ID(),
		SupplierID: home.SupplierID(),
		Name:       home.Name(),
		Address:    home.Address(),
		City:       home.City(),
		Province:   home.Province(),
		GPS:        home.GPS(),
		Status:     home.Status().String(),
	}, nil
}

func (l *listingCommandsImpl) UpdateNursingHomeStatus(ctx context.Context, ownerUserID, nursingHomeID uuid.UUID, status string) error {
	newStatus, err := listing.NewHomeStatus(status)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	err = l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sup, err := l.ownSupplier(ctx, tx, ownerUserID)
		if err != nil {
			return err
		}

		home, err := tx.Reads().NursingHomeByID(ctx, nursingHomeID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrNursingHomeNotFound)
			}
			return err
		}
		if home.SupplierID != sup.ID {
			return ErrNotOwner
		}

		// Listings go live only after the supplier passes QC.
		if newStatus == listing.HomeLive && sup.QCStatus != supplier.QCApproved.String() {
			return ErrSupplierNotApproved
		}

		return tx.Listings().UpdateNursingHomeStatus(ctx, tx.DB(), nursingHomeID, newStatus)
	})
	if err != nil {
		return err
	}

	l.cache.InvalidateNursingHome(ctx, nursingHomeID)
	return nil
}

func (l *listingCommandsImpl) CreateRoomType(ctx context.Context, ownerUserID, nursingHomeID uuid.UUID, req reqdto.CreateRoomTypeRequest) (uuid.UUID, error) {
	var roomTypeID uuid.UUID

	err := l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sup, err := l.ownSupplier(ctx, tx, ownerUserID)
		if err != nil {
			return err
		}

		home, err := tx.Reads().NursingHomeByID(ctx, nursingHomeID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrNursingHomeNotFound)
			}
			return err
		}
		if home.SupplierID != sup.ID {
			return ErrNotOwner
		}

		roomType, err := req.ToDomain(nursingHomeID)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		roomTypeID = roomType.ID()
		return tx.Listings().CreateRoomType(ctx, tx.DB(), roomType)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return roomTypeID, nil
}

func (l *listingCommandsImpl) CreateRatePlan(ctx context.Context, ownerUserID, roomTypeID uuid.UUID, req reqdto.CreateRatePlanRequest) (uuid.UUID, error) {
	var ratePlanID uuid.UUID

	err := l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sup, err := l.ownSupplier(ctx, tx, ownerUserID)
		if err != nil {
			return err
		}

		roomType, err := tx.Reads().RoomTypeByID(ctx, roomTypeID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrRoomTypeNotFound)
			}
			return err
		}
		home, err := tx.Reads().NursingHomeByID(ctx, roomType.NursingHomeID)
		if err != nil {
			return err
		}
		if home.SupplierID != sup.ID {
			return ErrNotOwner
		}

		ratePlan, err := req.ToDomain(roomTypeID)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		ratePlanID = ratePlan.ID()
		return tx.Listings().CreateRatePlan(ctx, tx.DB(), ratePlan)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return ratePlanID, nil
}

func (l *listingCommandsImpl) UpsertCalendar(ctx context.Context, ownerUserID, ratePlanID uuid.UUID, req reqdto.UpsertCalendarRequest) error {
	days, err := req.ToDomain()
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	return l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sup, err := l.ownSupplier(ctx, tx, ownerUserID)
		if err != nil {
			return err
		}

		ratePlan, err := tx.Reads().RatePlanByID(ctx, ratePlanID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrRatePlanNotFound)
			}
			return err
		}
		if ratePlan.SupplierID != sup.ID {
			return ErrNotOwner
		}

		return tx.Calendar().UpsertDays(ctx, tx.DB(), ratePlanID, days)
	})
}

func (l *listingCommandsImpl) ownSupplier(ctx context.Context, tx shared.Tx, ownerUserID uuid.UUID) (*shared.SupplierSnapshot, error) {
	sup, err := tx.Reads().SupplierByOwner(ctx, ownerUserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrSupplierNotFound)
		}
		return nil, err
	}
	return sup, nil
}
