package request

import (
	"github.com/google/uuid"
)

type UpdateSupplierQCRequest struct {
	Status string `json:"status" binding:"required,oneof=pending approved rejected"`
}

type CreateRefundRequest struct {
	PaymentID   uuid.UUID `json:"payment_id" binding:"required"`
	AmountCents int64     `json:"amount_cents" binding:"required,gt=0"`
	Reason      string    `json:"reason" binding:"required"`
}

type CreatePayoutRequest struct {
	SupplierID  uuid.UUID `json:"supplier_id" binding:"required"`
	AmountCents int64     `json:"amount_cents" binding:"required,gt=0"`
	Currency    string    `json:"currency" binding:"required,len=3"`
}

type UpdatePayoutStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=approved paid failed"`
}
