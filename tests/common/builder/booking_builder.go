//go:build unit || e2e

package builder

import (
	"time"

	"lodging-service/internal/domain/booking"
	reqdto "lodging-service/internal/handler/dto/request"
	sqlc "lodging-service/internal/infra/sqlc/generated"
	"lodging-service/internal/pkg/pgconv"
	"lodging-service/internal/usecase/queries"
)

type BookingBuilder struct {
	ID        int32
	UserID    int32
	RoomID    int32
	HotelID   int32
	RoomName  string
	Capacity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		ID:        1,
		UserID:    1,
		RoomID:    10,
		HotelID:   100,
		RoomName:  "101",
		Capacity:  3,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() *booking.Booking {
	return &booking.Booking{
		ID:        b.ID,
		UserID:    b.UserID,
		RoomID:    b.RoomID,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildInfra() sqlc.Bookings {
	return sqlc.Bookings{
		ID:        b.ID,
		UserID:    b.UserID,
		RoomID:    b.RoomID,
		CreatedAt: pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt: pgconv.TimeToPgtype(b.UpdatedAt),
	}
}

// BuildView returns the booking as written by a command, without its room.
func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:        b.ID,
		UserID:    b.UserID,
		RoomID:    b.RoomID,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildViewWithRoom() *queries.BookingView {
	v := b.BuildView()
	v.Room = &queries.RoomView{
		ID:        b.RoomID,
		Name:      b.RoomName,
		Capacity:  b.Capacity,
		HotelID:   b.HotelID,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
	return v
}

func (b *BookingBuilder) BuildRequestDTO() reqdto.BookingRequest {
	roomID := b.RoomID
	return reqdto.BookingRequest{RoomID: &roomID}
}
