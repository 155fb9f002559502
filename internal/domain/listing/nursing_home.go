package listing

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidHomeName   = errors.New("nursing home name must not be empty")
	ErrInvalidAddress    = errors.New("address must not be empty")
	ErrInvalidHomeStatus = errors.New("invalid nursing home status")
)

type HomeStatus string

const (
	HomeDraft  HomeStatus = "draft"
	HomeLive   HomeStatus = "live"
	HomePaused HomeStatus = "paused"
)

func (s HomeStatus) String() string {
	return string(s)
}

func (s HomeStatus) IsValid() bool {
	switch s {
	case HomeDraft, HomeLive, HomePaused:
		return true
	default:
		return false
	}
}

func NewHomeStatus(s string) (HomeStatus, error) {
	status := HomeStatus(s)
	if !status.IsValid() {
		return "", ErrInvalidHomeStatus
	}
	return status, nil
}

// NursingHome is a physical property listing belonging to exactly one supplier.
type NursingHome struct {
	id         uuid.UUID
	supplierID uuid.UUID
	name       string
	address    string
	city       string
	province   string
	gps        *string
	status     HomeStatus
	createdAt  time.Time
	updatedAt  time.Time
}

func NewNursingHome(supplierID uuid.UUID, name, address, city, province string, gps *string) (*NursingHome, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidHomeName
	}
	if strings.TrimSpace(address) == "" || strings.TrimSpace(city) == "" || strings.TrimSpace(province) == "" {
		return nil, ErrInvalidAddress
	}
	return &NursingHome{
		id:         uuid.New(),
		supplierID: supplierID,
		name:       name,
		address:    address,
		city:       city,
		province:   province,
		gps:        gps,
		status:     HomeDraft,
	}, nil
}

func ReconstructNursingHome(
	id, supplierID uuid.UUID,
	name, address, city, province string,
	gps *string,
	status HomeStatus,
	createdAt, updatedAt time.Time,
) *NursingHome {
	return &NursingHome{
		id:         id,
		supplierID: supplierID,
		name:       name,
		address:    address,
		city:       city,
		province:   province,
		gps:        gps,
		status:     status,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (n *NursingHome) IsLive() bool { return n.status == HomeLive }

func (n *NursingHome) ID() uuid.UUID         { return n.id }
func (n *NursingHome) SupplierID() uuid.UUID { return n.supplierID }
func (n *NursingHome) Name() string          { return n.name }
func (n *NursingHome) Address() string       { return n.address }
func (n *NursingHome) City() string          { return n.city }
func (n *NursingHome) Province() string      { return n.province }
func (n *NursingHome) GPS() *string          { return n.gps }
func (n *NursingHome) Status() HomeStatus    { return n.status }
func (n *NursingHome) CreatedAt() time.Time  { return n.createdAt }
func (n *NursingHome) UpdatedAt() time.Time  { return n.updatedAt }
