package queries

import (
	"time"
)

type RoomView struct {
	ID        int32     `json:"id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	HotelID   int32     `json:"hotelId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type BookingView struct {
	ID        int32     `json:"id"`
	UserID    int32     `json:"userId"`
	RoomID    int32     `json:"roomId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Room      *RoomView `json:"Room,omitempty"`
}

type HotelView struct {
	ID        int32     `json:"id"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RoomAvailabilityView carries the live occupancy of a room.
type RoomAvailabilityView struct {
	RoomView
	Occupancy int `json:"occupancy"`
	Vacancies int `json:"vacancies"`
}

type HotelWithRoomsView struct {
	HotelView
	Rooms []*RoomAvailabilityView `json:"Rooms"`
}

type AuthorizedUserView struct {
	ID    int32  `json:"id"`
	Email string `json:"email"`
}
