package repository

import (
	"context"

	"carestay/internal/domain/supplier"
	"carestay/internal/infra"
	"carestay/internal/infra/db"
	"carestay/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type SupplierRepository struct{}

func NewSupplierRepository() *SupplierRepository {
	return &SupplierRepository{}
}

const createSupplierSQL = `
INSERT INTO supplier (id, owner_user_id, legal_name, tax_id, payout_account_ref, qc_status)
VALUES ($1, $2, $3, $4, $5, $6)`

func (r *SupplierRepository) Create(ctx context.Context, dbtx db.DBTX, s *supplier.Supplier) error {
	_, err := dbtx.Exec(ctx, createSupplierSQL,
		s.ID(), s.OwnerUserID(), s.LegalName(),
		pgconv.TextFromStringPtr(s.TaxID()),
		pgconv.TextFromStringPtr(s.PayoutAccountRef()),
		s.QCStatus().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create supplier", err)
	}
	return nil
}

const updateSupplierQCStatusSQL = `
UPDATE supplier SET qc_status = $2, updated_at = now() WHERE id = $1`

func (r *SupplierRepository) UpdateQCStatus(ctx context.Context, dbtx db.DBTX, supplierID uuid.UUID, status supplier.QCStatus) error {
	tag, err := dbtx.Exec(ctx, updateSupplierQCStatusSQL, supplierID, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update supplier qc status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("supplier not found", nil, infra.KindNotFound)
	}
	return nil
}
