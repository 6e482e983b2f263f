//go:build unit

package uow

import (
	"context"
	"testing"

	"lodging-service/internal/domain/booking"
	"lodging-service/internal/domain/hotel"
	"lodging-service/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRoomLocker struct{ mock.Mock }

func (m *mockRoomLocker) LockRoomByID(ctx context.Context, id int32) (*hotel.Room, error) {
	args := m.Called(ctx, id)
	room, _ := args.Get(0).(*hotel.Room)
	return room, args.Error(1)
}

type mockBookingFinder struct{ mock.Mock }

func (m *mockBookingFinder) FindByUserID(ctx context.Context, userID int32) (*booking.Booking, error) {
	args := m.Called(ctx, userID)
	b, _ := args.Get(0).(*booking.Booking)
	return b, args.Error(1)
}

func (m *mockBookingFinder) CountByRoomID(ctx context.Context, roomID int32) (int, error) {
	args := m.Called(ctx, roomID)
	return args.Int(0), args.Error(1)
}

type mockTicketChecker struct{ mock.Mock }

func (m *mockTicketChecker) HasPaidHotelTicket(ctx context.Context, userID int32) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func TestTxFacts_FindRoom(t *testing.T) {
	notFound := infra.WrapRepoErr("room not found", pgx.ErrNoRows, infra.KindNotFound)
	dbFailure := infra.WrapRepoErr("failed to lock room", assert.AnError)

	rooms := new(mockRoomLocker)
	rooms.On("LockRoomByID", mock.Anything, int32(1)).Return(&hotel.Room{ID: 1, Capacity: 3}, nil)
	rooms.On("LockRoomByID", mock.Anything, int32(0)).Return(nil, notFound)
	rooms.On("LockRoomByID", mock.Anything, int32(9)).Return(nil, dbFailure)

	facts := NewTxFacts(rooms, new(mockBookingFinder), new(mockTicketChecker))

	room, err := facts.FindRoom(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 3, room.Capacity)

	room, err = facts.FindRoom(context.Background(), 0)
	require.NoError(t, err)
	assert.Nil(t, room)

	_, err = facts.FindRoom(context.Background(), 9)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestTxFacts_FindUserBooking(t *testing.T) {
	notFound := infra.WrapRepoErr("booking not found", pgx.ErrNoRows, infra.KindNotFound)

	bookings := new(mockBookingFinder)
	bookings.On("FindByUserID", mock.Anything, int32(1)).Return(&booking.Booking{ID: 5, UserID: 1}, nil)
	bookings.On("FindByUserID", mock.Anything, int32(2)).Return(nil, notFound)
	bookings.On("FindByUserID", mock.Anything, int32(3)).Return(nil, assert.AnError)
	bookings.On("CountByRoomID", mock.Anything, int32(10)).Return(2, nil)

	facts := NewTxFacts(new(mockRoomLocker), bookings, new(mockTicketChecker))

	b, err := facts.FindUserBooking(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int32(5), b.ID)

	b, err = facts.FindUserBooking(context.Background(), 2)
	require.NoError(t, err)
	assert.Nil(t, b)

	_, err = facts.FindUserBooking(context.Background(), 3)
	assert.Error(t, err)

	n, err := facts.CountBookingsForRoom(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestTxFacts_HasPaidHotelTicket(t *testing.T) {
	tickets := new(mockTicketChecker)
	tickets.On("HasPaidHotelTicket", mock.Anything, int32(1)).Return(true, nil)

	ok, err := NewTxFacts(new(mockRoomLocker), new(mockBookingFinder), tickets).HasPaidHotelTicket(context.Background(), 1)

	require.NoError(t, err)
	assert.True(t, ok)
	tickets.AssertExpectations(t)
}
