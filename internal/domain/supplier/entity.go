package supplier

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidLegalName = errors.New("legal name must not be empty")
	ErrInvalidQCStatus  = errors.New("invalid qc status")
	ErrNotApproved      = errors.New("supplier is not approved")
)

type QCStatus string

const (
	QCPending  QCStatus = "pending"
	QCApproved QCStatus = "approved"
	QCRejected QCStatus = "rejected"
)

func (s QCStatus) String() string {
	return string(s)
}

func (s QCStatus) IsValid() bool {
	switch s {
	case QCPending, QCApproved, QCRejected:
		return true
	default:
		return false
	}
}

func NewQCStatus(s string) (QCStatus, error) {
	status := QCStatus(s)
	if !status.IsValid() {
		return "", ErrInvalidQCStatus
	}
	return status, nil
}

// Supplier is a business entity owning listings and receiving payouts.
// ownerUserID references exactly one user with the supplier role.
type Supplier struct {
	id               uuid.UUID
	ownerUserID      uuid.UUID
	legalName        string
	taxID            *string
	payoutAccountRef *string
	qcStatus         QCStatus
	createdAt        time.Time
	updatedAt        time.Time
}

func NewSupplier(ownerUserID uuid.UUID, legalName string, taxID, payoutAccountRef *string) (*Supplier, error) {
	legalName = strings.TrimSpace(legalName)
	if legalName == "" {
		return nil, ErrInvalidLegalName
	}
	return &Supplier{
		id:               uuid.New(),
		ownerUserID:      ownerUserID,
		legalName:        legalName,
		taxID:            taxID,
		payoutAccountRef: payoutAccountRef,
		qcStatus:         QCPending,
	}, nil
}

func ReconstructSupplier(
	id, ownerUserID uuid.UUID,
	legalName string,
	taxID, payoutAccountRef *string,
	qcStatus QCStatus,
	createdAt, updatedAt time.Time,
) *Supplier {
	return &Supplier{
		id:               id,
		ownerUserID:      ownerUserID,
		legalName:        legalName,
		taxID:            taxID,
		payoutAccountRef: payoutAccountRef,
		qcStatus:         qcStatus,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

func (s *Supplier) IsApproved() bool {
	return s.qcStatus == QCApproved
}

func (s *Supplier) ID() uuid.UUID             { return s.id }
func (s *Supplier) OwnerUserID() uuid.UUID    { return s.ownerUserID }
func (s *Supplier) LegalName() string         { return s.legalName }
func (s *Supplier) TaxID() *string            { return s.taxID }
func (s *Supplier) PayoutAccountRef() *string { return s.payoutAccountRef }
func (s *Supplier) QCStatus() QCStatus        { return s.qcStatus }
func (s *Supplier) CreatedAt() time.Time      { return s.createdAt }
func (s *Supplier) UpdatedAt() time.Time      { return s.updatedAt }
