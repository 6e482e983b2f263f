package uow

import (
	"context"

	"lodging-service/internal/domain/booking"
	"lodging-service/internal/domain/hotel"
	"lodging-service/internal/infra"
)

type RoomLocker interface {
	LockRoomByID(ctx context.Context, id int32) (*hotel.Room, error)
}

type BookingFinder interface {
	FindByUserID(ctx context.Context, userID int32) (*booking.Booking, error)
	CountByRoomID(ctx context.Context, roomID int32) (int, error)
}

type TicketChecker interface {
	HasPaidHotelTicket(ctx context.Context, userID int32) (bool, error)
}

// txFacts adapts the read stores of one transaction to booking.Facts.
// FindRoom takes a row lock so occupancy cannot change until commit.
type txFacts struct {
	rooms    RoomLocker
	bookings BookingFinder
	tickets  TicketChecker
}

func NewTxFacts(rooms RoomLocker, bookings BookingFinder, tickets TicketChecker) booking.Facts {
	return &txFacts{
		rooms:    rooms,
		bookings: bookings,
		tickets:  tickets,
	}
}

func (f *txFacts) FindRoom(ctx context.Context, roomID int32) (*hotel.Room, error) {
	room, err := f.rooms.LockRoomByID(ctx, roomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return room, nil
}

func (f *txFacts) CountBookingsForRoom(ctx context.Context, roomID int32) (int, error) {
	return f.bookings.CountByRoomID(ctx, roomID)
}

func (f *txFacts) FindUserBooking(ctx context.Context, userID int32) (*booking.Booking, error) {
	b, err := f.bookings.FindByUserID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return b, nil
}

func (f *txFacts) HasPaidHotelTicket(ctx context.Context, userID int32) (bool, error) {
	return f.tickets.HasPaidHotelTicket(ctx, userID)
}
