package readstore

import (
	"context"

	"carestay/internal/infra"
	"carestay/internal/infra/db"
	"carestay/internal/pkg/pgconv"
	"carestay/internal/usecase/queries"

	"github.com/google/uuid"
)

type DashboardReadStore struct{}

func NewDashboardReadStore() *DashboardReadStore {
	return &DashboardReadStore{}
}

const supplierStatsSQL = `
SELECT
	(SELECT count(*) FROM booking WHERE supplier_id = $1),
	(SELECT count(*) FROM booking WHERE supplier_id = $1 AND status = 'paid'),
	(SELECT coalesce(sum(total_amount_cents), 0) FROM booking WHERE supplier_id = $1 AND status = 'paid'),
	(SELECT count(*) FROM nursing_home WHERE supplier_id = $1 AND status = 'live')`

func (r *DashboardReadStore) SupplierStats(ctx context.Context, dbtx db.DBTX, supplierID uuid.UUID) (*queries.SupplierStatsView, error) {
	var v queries.SupplierStatsView
	err := dbtx.QueryRow(ctx, supplierStatsSQL, supplierID).Scan(
		&v.TotalBookings, &v.PaidBookings, &v.GrossRevenueCents, &v.LiveNursingHomes,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read supplier stats", err)
	}
	return &v, nil
}

const adminStatsSQL = `
SELECT
	(SELECT count(*) FROM users),
	(SELECT count(*) FROM supplier),
	(SELECT count(*) FROM nursing_home WHERE status = 'live'),
	(SELECT count(*) FROM booking),
	(SELECT coalesce(sum(total_amount_cents), 0) FROM booking WHERE status = 'paid')`

func (r *DashboardReadStore) AdminStats(ctx context.Context, dbtx db.DBTX) (*queries.AdminStatsView, error) {
	var v queries.AdminStatsView
	err := dbtx.QueryRow(ctx, adminStatsSQL).Scan(
		&v.TotalUsers, &v.TotalSuppliers, &v.LiveNursingHomes, &v.TotalBookings, &v.GrossRevenueCents,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read admin stats", err)
	}
	return &v, nil
}

const listPayoutsSQL = `
SELECT id, supplier_id, amount_cents, currency, status, created_at
FROM payout
WHERE ($1::uuid IS NULL OR supplier_id = $1)
ORDER BY created_at DESC`

func (r *DashboardReadStore) ListPayouts(ctx context.Context, dbtx db.DBTX, supplierID *uuid.UUID) ([]queries.PayoutView, error) {
	rows, err := dbtx.Query(ctx, listPayoutsSQL, supplierID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payouts", err)
	}
	defer rows.Close()

	var result []queries.PayoutView
	for rows.Next() {
		var v queries.PayoutView
		if err := rows.Scan(&v.ID, &v.SupplierID, &v.AmountCents, &v.Currency, &v.Status, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan payout row", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list payouts", err)
	}
	return result, nil
}

const supplierByOwnerViewSQL = `
SELECT id, owner_user_id, legal_name, tax_id, payout_account_ref, qc_status, created_at, updated_at
FROM supplier WHERE owner_user_id = $1`

func (r *DashboardReadStore) SupplierByOwner(ctx context.Context, dbtx db.DBTX, ownerUserID uuid.UUID) (*queries.SupplierView, error) {
	var (
		v                queries.SupplierView
		taxID            *string
		payoutAccountRef *string
	)
	err := dbtx.QueryRow(ctx, supplierByOwnerViewSQL, ownerUserID).Scan(
		&v.ID, &v.OwnerUserID, &v.LegalName, &taxID, &payoutAccountRef, &v.QCStatus, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("supplier not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find supplier by owner", err)
	}
	v.TaxID = taxID
	v.PayoutAccountRef = payoutAccountRef
	return &v, nil
}

const companySettingsSQL = `
SELECT company_name, support_email, currency FROM company_settings LIMIT 1`

func (r *DashboardReadStore) CompanySettings(ctx context.Context, dbtx db.DBTX) (*queries.CompanySettingsView, error) {
	var v queries.CompanySettingsView
	err := dbtx.QueryRow(ctx, companySettingsSQL).Scan(&v.CompanyName, &v.SupportEmail, &v.Currency)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("company settings not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read company settings", err)
	}
	return &v, nil
}

const taxRatesSQL = `
SELECT name, rate_percent FROM tax_rate ORDER BY name`

func (r *DashboardReadStore) TaxRates(ctx context.Context, dbtx db.DBTX) ([]queries.TaxRateView, error) {
	rows, err := dbtx.Query(ctx, taxRatesSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read tax rates", err)
	}
	defer rows.Close()

	var result []queries.TaxRateView
	for rows.Next() {
		var v queries.TaxRateView
		if err := rows.Scan(&v.Name, &v.RatePercent); err != nil {
			return nil, infra.WrapRepoErr("failed to scan tax rate row", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read tax rates", err)
	}
	return result, nil
}
