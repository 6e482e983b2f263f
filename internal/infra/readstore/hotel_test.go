//go:build unit

package readstore

import (
	"context"
	"testing"

	"lodging-service/internal/infra"
	sqlc "lodging-service/internal/infra/sqlc/generated"
	"lodging-service/tests/common/builder"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockHotelReadQueries struct {
	mock.Mock
}

func (m *MockHotelReadQueries) ListHotels(ctx context.Context, db sqlc.DBTX) ([]sqlc.Hotels, error) {
	args := m.Called(ctx, db)
	return args.Get(0).([]sqlc.Hotels), args.Error(1)
}

func (m *MockHotelReadQueries) GetHotelByID(ctx context.Context, db sqlc.DBTX, id int32) (sqlc.Hotels, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Hotels), args.Error(1)
}

func (m *MockHotelReadQueries) ListRoomsByHotelID(ctx context.Context, db sqlc.DBTX, hotelID int32) ([]sqlc.ListRoomsByHotelIDRow, error) {
	args := m.Called(ctx, db, hotelID)
	return args.Get(0).([]sqlc.ListRoomsByHotelIDRow), args.Error(1)
}

func (m *MockHotelReadQueries) LockRoomByID(ctx context.Context, db sqlc.DBTX, id int32) (sqlc.Rooms, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Rooms), args.Error(1)
}

func TestHotelReadStore_ListHotels(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockQueries := new(MockHotelReadQueries)
		mockQueries.On("ListHotels", mock.Anything, mock.Anything).Return([]sqlc.Hotels{
			{ID: 1, Name: "Copacabana Palace", Image: "https://img/1.png"},
			{ID: 2, Name: "Ibis", Image: "https://img/2.png"},
		}, nil)

		hotels, err := NewHotelReadStore(mockQueries, nil).ListHotels(context.Background())

		require.NoError(t, err)
		require.Len(t, hotels, 2)
		assert.Equal(t, "Copacabana Palace", hotels[0].Name)
		assert.Equal(t, int32(2), hotels[1].ID)
	})

	t.Run("empty catalog is not an error", func(t *testing.T) {
		mockQueries := new(MockHotelReadQueries)
		mockQueries.On("ListHotels", mock.Anything, mock.Anything).Return([]sqlc.Hotels(nil), nil)

		hotels, err := NewHotelReadStore(mockQueries, nil).ListHotels(context.Background())

		require.NoError(t, err)
		assert.NotNil(t, hotels)
		assert.Empty(t, hotels)
	})

	t.Run("database error", func(t *testing.T) {
		mockQueries := new(MockHotelReadQueries)
		mockQueries.On("ListHotels", mock.Anything, mock.Anything).Return([]sqlc.Hotels(nil), assert.AnError)

		_, err := NewHotelReadStore(mockQueries, nil).ListHotels(context.Background())

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestHotelReadStore_FindHotelByID(t *testing.T) {
	hb := builder.NewHotelBuilder()
	mockQueries := new(MockHotelReadQueries)
	mockQueries.On("GetHotelByID", mock.Anything, mock.Anything, hb.ID).Return(hb.BuildInfra(), nil)
	mockQueries.On("GetHotelByID", mock.Anything, mock.Anything, int32(0)).Return(sqlc.Hotels{}, pgx.ErrNoRows)

	store := NewHotelReadStore(mockQueries, nil)

	h, err := store.FindHotelByID(context.Background(), hb.ID)
	require.NoError(t, err)
	assert.Equal(t, hb.BuildView(), h)

	_, err = store.FindHotelByID(context.Background(), 0)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestHotelReadStore_ListRoomsWithOccupancy(t *testing.T) {
	hb := builder.NewHotelBuilder().With(func(h *builder.HotelBuilder) {
		h.Rooms = []builder.RoomSpec{
			{ID: 10, Name: "101", Capacity: 3, Occupancy: 2},
			{ID: 11, Name: "102", Capacity: 2, Occupancy: 0},
		}
	})
	mockQueries := new(MockHotelReadQueries)
	mockQueries.On("ListRoomsByHotelID", mock.Anything, mock.Anything, hb.ID).Return(hb.BuildRoomRows(), nil)

	rooms, err := NewHotelReadStore(mockQueries, nil).ListRoomsWithOccupancy(context.Background(), hb.ID)

	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, "101", rooms[0].Room.Name)
	assert.Equal(t, hb.ID, rooms[0].Room.HotelID)
	assert.Equal(t, 2, rooms[0].Occupancy)
	assert.Equal(t, 2, rooms[1].Room.Capacity)
	assert.Zero(t, rooms[1].Occupancy)
}

func TestHotelReadStore_Rooms(t *testing.T) {
	tests := []struct {
		name   string
		method string
		call   func(s *HotelReadStore, id int32) error
	}{
		{
			name:   "lock",
			method: "LockRoomByID",
			call: func(s *HotelReadStore, id int32) error {
				_, err := s.LockRoomByID(context.Background(), id)
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockHotelReadQueries)
			mockQueries.On(tt.method, mock.Anything, mock.Anything, int32(10)).Return(sqlc.Rooms{ID: 10, Capacity: 3, HotelID: 1}, nil)
			mockQueries.On(tt.method, mock.Anything, mock.Anything, int32(0)).Return(sqlc.Rooms{}, pgx.ErrNoRows)
			mockQueries.On(tt.method, mock.Anything, mock.Anything, int32(99)).Return(sqlc.Rooms{}, assert.AnError)

			store := NewHotelReadStore(mockQueries, nil)

			assert.NoError(t, tt.call(store, 10))
			assert.True(t, infra.IsKind(tt.call(store, 0), infra.KindNotFound))
			assert.True(t, infra.IsKind(tt.call(store, 99), infra.KindDBFailure))
			mockQueries.AssertExpectations(t)
		})
	}
}
