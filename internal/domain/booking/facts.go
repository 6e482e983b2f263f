package booking

import (
	"context"

	"lodging-service/internal/domain/hotel"
)

// Facts is the read side the engine evaluates against.
// Lookups return (nil, nil) when the entity is absent.
type Facts interface {
	FindRoom(ctx context.Context, roomID int32) (*hotel.Room, error)
	CountBookingsForRoom(ctx context.Context, roomID int32) (int, error)
	FindUserBooking(ctx context.Context, userID int32) (*Booking, error)
	HasPaidHotelTicket(ctx context.Context, userID int32) (bool, error)
}
