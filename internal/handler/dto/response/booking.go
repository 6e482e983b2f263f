package response

import (
	"time"

	"lodging-service/internal/usecase/queries"
)

type BookingResponse struct {
	ID        int32         `json:"id"`
	UserID    int32         `json:"userId"`
	RoomID    int32         `json:"roomId"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
	Room      *RoomResponse `json:"Room,omitempty"`
}

type RoomResponse struct {
	ID        int32     `json:"id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	HotelID   int32     `json:"hotelId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	res := &BookingResponse{
		ID:        v.ID,
		UserID:    v.UserID,
		RoomID:    v.RoomID,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
	if v.Room != nil {
		room := fromRoomView(*v.Room)
		res.Room = &room
	}
	return res
}

func fromRoomView(v queries.RoomView) RoomResponse {
	return RoomResponse{
		ID:        v.ID,
		Name:      v.Name,
		Capacity:  v.Capacity,
		HotelID:   v.HotelID,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}
