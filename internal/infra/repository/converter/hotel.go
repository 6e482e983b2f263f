package converter

import (
	"lodging-service/internal/domain/hotel"
	sqlc "lodging-service/internal/infra/sqlc/generated"
	"lodging-service/internal/pkg/pgconv"
	"lodging-service/internal/usecase/queries"
)

func RoomToDomain(row sqlc.Rooms) *hotel.Room {
	return &hotel.Room{
		ID:        row.ID,
		HotelID:   row.HotelID,
		Name:      row.Name,
		Capacity:  int(row.Capacity),
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func HotelViewFromRow(row sqlc.Hotels) *queries.HotelView {
	return &queries.HotelView{
		ID:        row.ID,
		Name:      row.Name,
		Image:     row.Image,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func RoomOccupancyFromRow(row sqlc.ListRoomsByHotelIDRow) *queries.RoomOccupancy {
	return &queries.RoomOccupancy{
		Room: queries.RoomView{
			ID:        row.ID,
			Name:      row.Name,
			Capacity:  int(row.Capacity),
			HotelID:   row.HotelID,
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
		},
		Occupancy: int(row.Occupancy),
	}
}
