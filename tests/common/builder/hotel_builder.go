//go:build unit || e2e

package builder

import (
	"time"

	sqlc "lodging-service/internal/infra/sqlc/generated"
	"lodging-service/internal/pkg/pgconv"
	"lodging-service/internal/usecase/queries"
)

type HotelBuilder struct {
	ID        int32
	Name      string
	Image     string
	Rooms     []RoomSpec
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RoomSpec describes one room and how many bookings it holds.
type RoomSpec struct {
	ID        int32
	Name      string
	Capacity  int
	Occupancy int
}

func NewHotelBuilder() *HotelBuilder {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	return &HotelBuilder{
		ID:    100,
		Name:  "Driven Resort",
		Image: "https://example.com/driven-resort.png",
		Rooms: []RoomSpec{
			{ID: 10, Name: "101", Capacity: 3, Occupancy: 1},
			{ID: 11, Name: "102", Capacity: 2, Occupancy: 2},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (h *HotelBuilder) With(mutate func(*HotelBuilder)) *HotelBuilder {
	mutate(h)
	return h
}

// Build methods
func (h *HotelBuilder) BuildInfra() sqlc.Hotels {
	return sqlc.Hotels{
		ID:        h.ID,
		Name:      h.Name,
		Image:     h.Image,
		CreatedAt: pgconv.TimeToPgtype(h.CreatedAt),
		UpdatedAt: pgconv.TimeToPgtype(h.UpdatedAt),
	}
}

func (h *HotelBuilder) BuildRoomRows() []sqlc.ListRoomsByHotelIDRow {
	rows := make([]sqlc.ListRoomsByHotelIDRow, len(h.Rooms))
	for i, r := range h.Rooms {
		rows[i] = sqlc.ListRoomsByHotelIDRow{
			ID:        r.ID,
			Name:      r.Name,
			Capacity:  int32(r.Capacity),
			HotelID:   h.ID,
			CreatedAt: pgconv.TimeToPgtype(h.CreatedAt),
			UpdatedAt: pgconv.TimeToPgtype(h.UpdatedAt),
			Occupancy: int32(r.Occupancy),
		}
	}
	return rows
}

func (h *HotelBuilder) BuildView() *queries.HotelView {
	return &queries.HotelView{
		ID:        h.ID,
		Name:      h.Name,
		Image:     h.Image,
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	}
}

func (h *HotelBuilder) BuildWithRoomsView() *queries.HotelWithRoomsView {
	rooms := make([]*queries.RoomAvailabilityView, len(h.Rooms))
	for i, r := range h.Rooms {
		rooms[i] = &queries.RoomAvailabilityView{
			RoomView: queries.RoomView{
				ID:        r.ID,
				Name:      r.Name,
				Capacity:  r.Capacity,
				HotelID:   h.ID,
				CreatedAt: h.CreatedAt,
				UpdatedAt: h.UpdatedAt,
			},
			Occupancy: r.Occupancy,
			Vacancies: max(r.Capacity-r.Occupancy, 0),
		}
	}
	return &queries.HotelWithRoomsView{HotelView: *h.BuildView(), Rooms: rooms}
}
