package commands

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"carestay/internal/domain/payment"
	"carestay/internal/domain/supplier"
	reqdto "carestay/internal/handler/dto/request"
	"carestay/internal/infra"
	"carestay/internal/infra/cache"
	"carestay/internal/pkg/config"
	"carestay/internal/pkg/errs"
	"carestay/internal/usecase/shared"
)

var (
	ErrPayoutNotFound       = errs.New("payout not found")
	ErrRefundNotAllowed     = errs.New("payment cannot be refunded")
	ErrPayoutStateInvalid   = errs.New("payout state does not allow this operation")
	ErrRefundExceedsPayment = errs.New("refund amount exceeds payment amount")
)

type AdminCommands interface {
	UpdateSupplierQC(ctx context.Context, supplierID uuid.UUID, req reqdto.UpdateSupplierQCRequest) error
	CreateRefund(ctx context.Context, req reqdto.CreateRefundRequest) (uuid.UUID, error)
	CreatePayout(ctx context.Context, req reqdto.CreatePayoutRequest) (uuid.UUID, error)
	UpdatePayoutStatus(ctx context.Context, payoutID uuid.UUID, req reqdto.UpdatePayoutStatusRequest) error
}

type adminCommandsImpl struct {
	uow   shared.UnitOfWork
	cache *cache.Service
	cfg   config.PaymentConfig
}

func NewAdminCommands(uow shared.UnitOfWork, cache *cache.Service, cfg config.PaymentConfig) AdminCommands {
	return &adminCommandsImpl{
		uow:   uow,
		cache: cache,
		cfg:   cfg,
	}
}

func (a *adminCommandsImpl) UpdateSupplierQC(ctx context.Context, supplierID uuid.UUID, req reqdto.UpdateSupplierQCRequest) error {
	status, err := supplier.NewQCStatus(req.Status)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	var ownerUserID uuid.UUID
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sup, err := tx.Reads().SupplierByID(ctx, supplierID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrSupplierNotFound)
			}
			return err
		}
		ownerUserID = sup.OwnerUserID
		return tx.Suppliers().UpdateQCStatus(ctx, tx.DB(), supplierID, status)
	})
	if err != nil {
		return err
	}

	a.cache.InvalidateUserData(ctx, ownerUserID)
	return nil
}

func (a *adminCommandsImpl) CreateRefund(ctx context.Context, req reqdto.CreateRefundRequest) (uuid.UUID, error) {
	var refundID uuid.UUID

	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		paySnap, err := tx.Reads().PaymentByID(ctx, req.PaymentID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrPaymentNotFound)
			}
			return err
		}
		if paySnap.Status != payment.StatusSucceeded.String() {
			return ErrRefundNotAllowed
		}

		parent := payment.ReconstructPayment(
			paySnap.ID, paySnap.BookingID, "", nil,
			payment.StatusSucceeded, paySnap.AmountCents, paySnap.Currency,
			time.Time{}, time.Time{},
		)
		refund, err := payment.NewRefund(parent, req.AmountCents, &req.Reason, a.cfg.EnforceRefundCap)
		if err != nil {
			if errors.Is(err, payment.ErrRefundExceedsPayment) {
				return errs.Mark(err, ErrRefundExceedsPayment)
			}
			return errs.Mark(err, ErrDomainValidation)
		}
		refundID = refund.ID()
		return tx.Payments().CreateRefund(ctx, tx.DB(), refund)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return refundID, nil
}

func (a *adminCommandsImpl) CreatePayout(ctx context.Context, req reqdto.CreatePayoutRequest) (uuid.UUID, error) {
	var payoutID uuid.UUID

	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().SupplierByID(ctx, req.SupplierID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrSupplierNotFound)
			}
			return err
		}

		payout, err := payment.NewPayout(req.SupplierID, req.AmountCents, req.Currency)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		payoutID = payout.ID()
		return tx.Payouts().Create(ctx, tx.DB(), payout)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return payoutID, nil
}

func (a *adminCommandsImpl) UpdatePayoutStatus(ctx context.Context, payoutID uuid.UUID, req reqdto.UpdatePayoutStatusRequest) error {
	return a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().PayoutByID(ctx, payoutID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrPayoutNotFound)
			}
			return err
		}

		payout := payment.ReconstructPayout(
			snap.ID, snap.SupplierID, snap.AmountCents, snap.Currency,
			payment.PayoutStatus(snap.Status), time.Time{}, time.Time{},
		)

		switch payment.PayoutStatus(req.Status) {
		case payment.PayoutApproved:
			err = payout.Approve()
		case payment.PayoutPaid:
			err = payout.MarkPaid()
		case payment.PayoutFailed:
			err = payout.MarkFailed()
		default:
			return errs.Mark(payment.ErrInvalidPayoutStatus, ErrDomainValidation)
		}
		if err != nil {
			return errs.Mark(err, ErrPayoutStateInvalid)
		}

		return tx.Payouts().UpdateStatus(ctx, tx.DB(), payoutID, payout.Status())
	})
}
