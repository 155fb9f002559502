package queries

import (
	"context"

	"github.com/google/uuid"

	"carestay/internal/infra"
	"carestay/internal/infra/cache"
	"carestay/internal/infra/db"
	"carestay/internal/usecase/shared"
)

type DashboardReadStore interface {
	SupplierStats(ctx context.Context, dbtx db.DBTX, supplierID uuid.UUID) (*SupplierStatsView, error)
	AdminStats(ctx context.Context, dbtx db.DBTX) (*AdminStatsView, error)
	ListPayouts(ctx context.Context, dbtx db.DBTX, supplierID *uuid.UUID) ([]PayoutView, error)
	SupplierByOwner(ctx context.Context, dbtx db.DBTX, ownerUserID uuid.UUID) (*SupplierView, error)
	CompanySettings(ctx context.Context, dbtx db.DBTX) (*CompanySettingsView, error)
	TaxRates(ctx context.Context, dbtx db.DBTX) ([]TaxRateView, error)
}

type DashboardQueries interface {
	SupplierDashboard(ctx context.Context, ownerUserID uuid.UUID) (*SupplierStatsView, error)
	AdminDashboard(ctx context.Context, actorID uuid.UUID) (*AdminStatsView, error)
	MySupplier(ctx context.Context, ownerUserID uuid.UUID) (*SupplierView, error)
	ListPayouts(ctx context.Context, supplierID *uuid.UUID) ([]PayoutView, error)
	CompanySettings(ctx context.Context) (*CompanySettingsView, error)
	TaxRates(ctx context.Context) ([]TaxRateView, error)
}

type dashboardQueriesImpl struct {
	uow       shared.UnitOfWork
	readStore DashboardReadStore
	cache     *cache.Service
}

func NewDashboardQueries(uow shared.UnitOfWork, readStore DashboardReadStore, cache *cache.Service) DashboardQueries {
	return &dashboardQueriesImpl{
		uow:       uow,
		readStore: readStore,
		cache:     cache,
	}
}

// SupplierDashboard caches per owner user, not per supplier, so a login's
// bulk invalidation also drops the dashboard entry.
func (q *dashboardQueriesImpl) SupplierDashboard(ctx context.Context, ownerUserID uuid.UUID) (*SupplierStatsView, error) {
	var cached SupplierStatsView
	if q.cache.GetDashboardStats(ctx, ownerUserID, &cached) {
		return &cached, nil
	}

	var stats *SupplierStatsView
	err := q.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		sup, err := q.readStore.SupplierByOwner(ctx, dbtx, ownerUserID)
		if err != nil {
			return err
		}
		stats, err = q.readStore.SupplierStats(ctx, dbtx, sup.ID)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSupplierNotFound
		}
		return nil, err
	}

	q.cache.CacheDashboardStats(ctx, ownerUserID, stats)
	return stats, nil
}

func (q *dashboardQueriesImpl) AdminDashboard(ctx context.Context, actorID uuid.UUID) (*AdminStatsView, error) {
	var cached AdminStatsView
	if q.cache.GetDashboardStats(ctx, actorID, &cached) {
		return &cached, nil
	}

	var stats *AdminStatsView
	err := q.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		var err error
		stats, err = q.readStore.AdminStats(ctx, dbtx)
		return err
	})
	if err != nil {
		return nil, err
	}

	q.cache.CacheDashboardStats(ctx, actorID, stats)
	return stats, nil
}

func (q *dashboardQueriesImpl) MySupplier(ctx context.Context, ownerUserID uuid.UUID) (*SupplierView, error) {
	var sup *SupplierView
	err := q.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		var err error
		sup, err = q.readStore.SupplierByOwner(ctx, dbtx, ownerUserID)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSupplierNotFound
		}
		return nil, err
	}
	return sup, nil
}

func (q *dashboardQueriesImpl) ListPayouts(ctx context.Context, supplierID *uuid.UUID) ([]PayoutView, error) {
	var payouts []PayoutView
	err := q.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		var err error
		payouts, err = q.readStore.ListPayouts(ctx, dbtx, supplierID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return payouts, nil
}

func (q *dashboardQueriesImpl) CompanySettings(ctx context.Context) (*CompanySettingsView, error) {
	var cached CompanySettingsView
	if q.cache.GetCompanySettings(ctx, &cached) {
		return &cached, nil
	}

	var settings *CompanySettingsView
	err := q.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		var err error
		settings, err = q.readStore.CompanySettings(ctx, dbtx)
		return err
	})
	if err != nil {
		return nil, err
	}

	q.cache.CacheCompanySettings(ctx, settings)
	return settings, nil
}

func (q *dashboardQueriesImpl) TaxRates(ctx context.Context) ([]TaxRateView, error) {
	var cached []TaxRateView
	if q.cache.GetTaxRates(ctx, &cached) {
		return cached, nil
	}

	var rates []TaxRateView
	err := q.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		var err error
		rates, err = q.readStore.TaxRates(ctx, dbtx)
		return err
	})
	if err != nil {
		return nil, err
	}

	q.cache.CacheTaxRates(ctx, rates)
	return rates, nil
}
