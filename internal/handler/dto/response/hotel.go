package response

import (
	"time"

	"lodging-service/internal/usecase/queries"
)

type HotelResponse struct {
	ID        int32     `json:"id"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type RoomAvailabilityResponse struct {
	RoomResponse
	Occupancy int `json:"occupancy"`
	Vacancies int `json:"vacancies"`
}

type HotelWithRoomsResponse struct {
	HotelResponse
	Rooms []RoomAvailabilityResponse `json:"Rooms"`
}

func FromHotelViews(views []*queries.HotelView) []HotelResponse {
	res := make([]HotelResponse, len(views))
	for i, v := range views {
		res[i] = fromHotelView(v)
	}
	return res
}

func FromHotelWithRoomsView(v *queries.HotelWithRoomsView) *HotelWithRoomsResponse {
	rooms := make([]RoomAvailabilityResponse, len(v.Rooms))
	for i, r := range v.Rooms {
		rooms[i] = RoomAvailabilityResponse{
			RoomResponse: fromRoomView(r.RoomView),
			Occupancy:    r.Occupancy,
			Vacancies:    r.Vacancies,
		}
	}
	return &HotelWithRoomsResponse{
		HotelResponse: fromHotelView(&v.HotelView),
		Rooms:         rooms,
	}
}

func fromHotelView(v *queries.HotelView) HotelResponse {
	return HotelResponse{
		ID:        v.ID,
		Name:      v.Name,
		Image:     v.Image,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}
