package repository

import (
	"context"

	"carestay/internal/domain/payment"
	"carestay/internal/infra"
	"carestay/internal/infra/db"
	"carestay/internal/pkg/pgconv"
)

type PaymentRepository struct{}

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{}
}

const createPaymentSQL = `
INSERT INTO payment (id, booking_id, provider, provider_ref, status, amount_cents, currency)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

func (r *PaymentRepository) Create(ctx context.Context, dbtx db.DBTX, p *payment.Payment) error {
	_, err := dbtx.Exec(ctx, createPaymentSQL,
		p.ID(), p.BookingID(), p.Provider(),
		pgconv.TextFromStringPtr(p.ProviderRef()),
		p.Status().String(), p.AmountCents(), p.Currency(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create payment", err)
	}
	return nil
}

const updatePaymentSQL = `
UPDATE payment SET status = $2, provider_ref = $3, updated_at = now() WHERE id = $1`

func (r *PaymentRepository) Update(ctx context.Context, dbtx db.DBTX, p *payment.Payment) error {
	tag, err := dbtx.Exec(ctx, updatePaymentSQL,
		p.ID(), p.Status().String(), pgconv.TextFromStringPtr(p.ProviderRef()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update payment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("payment not found", nil, infra.KindNotFound)
	}
	return nil
}

const createRefundSQL = `
INSERT INTO refund (id, payment_id, amount_cents, reason, status)
VALUES ($1, $2, $3, $4, $5)`

func (r *PaymentRepository) CreateRefund(ctx context.Context, dbtx db.DBTX, rf *payment.Refund) error {
	_, err := dbtx.Exec(ctx, createRefundSQL,
		rf.ID(), rf.PaymentID(), rf.AmountCents(),
		pgconv.TextFromStringPtr(rf.Reason()),
		rf.Status().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create refund", err)
	}
	return nil
}
