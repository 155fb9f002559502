package repository

import (
	"context"

	"carestay/internal/domain/payment"
	"carestay/internal/infra"
	"carestay/internal/infra/db"

	"github.com/google/uuid"
)

type PayoutRepository struct{}

func NewPayoutRepository() *PayoutRepository {
	return &PayoutRepository{}
}

const createPayoutSQL = `
INSERT INTO payout (id, supplier_id, amount_cents, currency, status)
VALUES ($1, $2, $3, $4, $5)`

func (r *PayoutRepository) Create(ctx context.Context, dbtx db.DBTX, p *payment.Payout) error {
	_, err := dbtx.Exec(ctx, createPayoutSQL,
		p.ID(), p.SupplierID(), p.AmountCents(), p.Currency(), p.Status().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create payout", err)
	}
	return nil
}

const updatePayoutStatusSQL = `
UPDATE payout SET status = $2, updated_at = now() WHERE id = $1`

func (r *PayoutRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, payoutID uuid.UUID, status payment.PayoutStatus) error {
	tag, err := dbtx.Exec(ctx, updatePayoutStatusSQL, payoutID, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update payout status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("payout not found", nil, infra.KindNotFound)
	}
	return nil
}
