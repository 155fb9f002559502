package listing

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidRoomName = errors.New("room type name must not be empty")
	ErrInvalidCapacity = errors.New("capacity must be positive")
)

// RoomType is a category of room within a nursing home.
type RoomType struct {
	id            uuid.UUID
	nursingHomeID uuid.UUID
	name          string
	capacity      int32
	amenities     *string
	policyRef     *string
	createdAt     time.Time
	updatedAt     time.Time
}

func NewRoomType(nursingHomeID uuid.UUID, name string, capacity int32, amenities, policyRef *string) (*RoomType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidRoomName
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &RoomType{
		id:            uuid.New(),
		nursingHomeID: nursingHomeID,
		name:          name,
		capacity:      capacity,
		amenities:     amenities,
		policyRef:     policyRef,
	}, nil
}

func ReconstructRoomType(
	id, nursingHomeID uuid.UUID,
	name string,
	capacity int32,
	amenities, policyRef *string,
	createdAt, updatedAt time.Time,
) *RoomType {
	return &RoomType{
		id:            id,
		nursingHomeID: nursingHomeID,
		name:          name,
		capacity:      capacity,
		amenities:     amenities,
		policyRef:     policyRef,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (r *RoomType) ID() uuid.UUID            { return r.id }
func (r *RoomType) NursingHomeID() uuid.UUID { return r.nursingHomeID }
func (r *RoomType) Name() string             { return r.name }
func (r *RoomType) Capacity() int32          { return r.capacity }
func (r *RoomType) Amenities() *string       { return r.amenities }
func (r *RoomType) PolicyRef() *string       { return r.policyRef }
func (r *RoomType) CreatedAt() time.Time     { return r.createdAt }
func (r *RoomType) UpdatedAt() time.Time     { return r.updatedAt }
