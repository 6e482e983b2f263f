package hotel

import (
	"time"
)

// DefaultRoomCapacity applies to rooms persisted without a positive capacity.
const DefaultRoomCapacity = 3

type Hotel struct {
	ID        int32
	Name      string
	Image     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Room struct {
	ID        int32
	HotelID   int32
	Name      string
	Capacity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EffectiveCapacity falls back to fallback when the stored capacity is not positive.
func (r Room) EffectiveCapacity(fallback int) int {
	if r.Capacity > 0 {
		return r.Capacity
	}
	if fallback > 0 {
		return fallback
	}
	return DefaultRoomCapacity
}

// IsFull reports whether occupancy has reached capacity.
func (r Room) IsFull(occupancy, fallback int) bool {
	return occupancy >= r.EffectiveCapacity(fallback)
}

// Vacancies never goes below zero.
func (r Room) Vacancies(occupancy, fallback int) int {
	v := r.EffectiveCapacity(fallback) - occupancy
	if v < 0 {
		return 0
	}
	return v
}
