package shared

import (
	"context"

	"lodging-service/internal/domain/booking"
)

type UnitOfWork interface {
	// Within runs fn in one transaction, retrying on serialization failures and deadlocks.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Bookings() BookingRepository
	// Reads locks the room it loads until the transaction ends.
	Reads() booking.Facts
}

type BookingRepository interface {
	Create(ctx context.Context, userID, roomID int32) (*booking.Booking, error)
	UpdateRoom(ctx context.Context, bookingID, roomID int32) (*booking.Booking, error)
}
