package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"carestay/internal/infra"
	"carestay/internal/infra/cache"
	"carestay/internal/infra/db"
	"carestay/internal/pkg/errs"
	"carestay/internal/usecase/shared"
)

var ErrNursingHomeNotFound = errs.New("nursing home not found")

type ListingReadStore interface {
	SearchLive(ctx context.Context, dbtx db.DBTX, city string) ([]NursingHomeView, error)
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*NursingHomeView, error)
	FindBySupplier(ctx context.Context, dbtx db.DBTX, supplierID uuid.UUID) ([]NursingHomeView, error)
	RoomTypesByHome(ctx context.Context, dbtx db.DBTX, nursingHomeID uuid.UUID) ([]RoomTypeView, error)
	RatePlansByRoomType(ctx context.Context, dbtx db.DBTX, roomTypeID uuid.UUID) ([]RatePlanView, error)
	CalendarRange(ctx context.Context, dbtx db.DBTX, ratePlanID uuid.UUID, from, to time.Time) ([]CalendarDayView, error)
}

// NursingHomeDetail bundles a home with its room types for the public
// detail endpoint, read inside one consistent snapshot.
type NursingHomeDetail struct {
	NursingHome NursingHomeView `json:"nursing_home"`
	RoomTypes   []RoomTypeView  `json:"room_types"`
}

type ListingQueries interface {
	Search(ctx context.Context, city string) ([]NursingHomeView, error)
	GetNursingHome(ctx context.Context, id uuid.UUID) (*NursingHomeDetail, error)
	ListRatePlans(ctx context.Context, roomTypeID uuid.UUID) ([]RatePlanView, error)
	GetCalendar(ctx context.Context, ratePlanID uuid.UUID, from, to time.Time) ([]CalendarDayView, error)
}

type listingQueriesImpl struct {
	uow       shared.UnitOfWork
	readStore ListingReadStore
	cache     *cache.Service
}

func NewListingQueries(uow shared.UnitOfWork, readStore ListingReadStore, cache *cache.Service) ListingQueries {
	return &listingQueriesImpl{
		uow:       uow,
		readStore: readStore,
		cache:     cache,
	}
}

func (q *listingQueriesImpl) Search(ctx context.Context, city string) ([]NursingHomeView, error) {
	searchKey := "live:city:" + city

	var cached []NursingHomeView
	if q.cache.GetSearchResults(ctx, searchKey, &cached) {
		return cached, nil
	}

	var homes []NursingHomeView
	err := q.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		var err error
		homes, err = q.readStore.SearchLive(ctx, dbtx, city)
		return err
	})
	if err != nil {
		return nil, err
	}

	q.cache.CacheSearchResults(ctx, searchKey, homes)
	return homes, nil
}

func (q *listingQueriesImpl) GetNursingHome(ctx context.Context, id uuid.UUID) (*NursingHomeDetail, error) {
	var detail NursingHomeDetail
	if q.cache.GetNursingHome(ctx, id, &detail) {
		return &detail, nil
	}

	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		home, err := q.readStore.FindByID(ctx, dbtx, id)
		if err != nil {
			return err
		}
		roomTypes, err := q.readStore.RoomTypesByHome(ctx, dbtx, id)
		if err != nil {
			return err
		}
		detail.NursingHome = *home
		detail.RoomTypes = roomTypes
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrNursingHomeNotFound
		}
		return nil, err
	}

	q.cache.CacheNursingHome(ctx, id, detail)
	return &detail, nil
}

func (q *listingQueriesImpl) ListRatePlans(ctx context.Context, roomTypeID uuid.UUID) ([]RatePlanView, error) {
	var plans []RatePlanView
	err := q.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		var err error
		plans, err = q.readStore.RatePlansByRoomType(ctx, dbtx, roomTypeID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return plans, nil
}

func (q *listingQueriesImpl) GetCalendar(ctx context.Context, ratePlanID uuid.UUID, from, to time.Time) ([]CalendarDayView, error) {
	var days []CalendarDayView
	err := q.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		var err error
		days, err = q.readStore.CalendarRange(ctx, dbtx, ratePlanID, from, to)
		return err
	})
	if err != nil {
		return nil, err
	}
	return days, nil
}
