package converter

import (
	"lodging-service/internal/domain/booking"
	sqlc "lodging-service/internal/infra/sqlc/generated"
	"lodging-service/internal/pkg/pgconv"
	"lodging-service/internal/usecase/queries"
)

func BookingToDomain(row sqlc.Bookings) *booking.Booking {
	return &booking.Booking{
		ID:        row.ID,
		UserID:    row.UserID,
		RoomID:    row.RoomID,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func BookingViewFromRow(row sqlc.GetBookingViewByUserIDRow) *queries.BookingView {
	return &queries.BookingView{
		ID:        row.ID,
		UserID:    row.UserID,
		RoomID:    row.RoomID,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
		Room: &queries.RoomView{
			ID:        row.RoomID,
			Name:      row.RoomName,
			Capacity:  int(row.RoomCapacity),
			HotelID:   row.RoomHotelID,
			CreatedAt: pgconv.TimeFromPgtype(row.RoomCreatedAt),
			UpdatedAt: pgconv.TimeFromPgtype(row.RoomUpdatedAt),
		},
	}
}
