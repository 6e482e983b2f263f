//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"lodging-service/internal/infra"
	sqlc "lodging-service/internal/infra/sqlc/generated"
	"lodging-service/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBookingReadQueries struct {
	mock.Mock
}

func (m *MockBookingReadQueries) GetBookingViewByUserID(ctx context.Context, db sqlc.DBTX, userID int32) (sqlc.GetBookingViewByUserIDRow, error) {
	args := m.Called(ctx, db, userID)
	return args.Get(0).(sqlc.GetBookingViewByUserIDRow), args.Error(1)
}

func (m *MockBookingReadQueries) GetBookingByUserID(ctx context.Context, db sqlc.DBTX, userID int32) (sqlc.Bookings, error) {
	args := m.Called(ctx, db, userID)
	return args.Get(0).(sqlc.Bookings), args.Error(1)
}

func (m *MockBookingReadQueries) CountBookingsByRoomID(ctx context.Context, db sqlc.DBTX, roomID int32) (int32, error) {
	args := m.Called(ctx, db, roomID)
	return args.Get(0).(int32), args.Error(1)
}

func TestBookingReadStore_FindViewByUserID(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	row := sqlc.GetBookingViewByUserIDRow{
		ID:            3,
		UserID:        7,
		RoomID:        11,
		CreatedAt:     pgconv.TimeToPgtype(now),
		UpdatedAt:     pgconv.TimeToPgtype(now),
		RoomName:      "101",
		RoomCapacity:  3,
		RoomHotelID:   2,
		RoomCreatedAt: pgconv.TimeToPgtype(now),
		RoomUpdatedAt: pgconv.TimeToPgtype(now),
	}

	tests := []struct {
		name      string
		mockRow   sqlc.GetBookingViewByUserIDRow
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{name: "success", mockRow: row},
		{name: "no booking", mockError: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "database error", mockError: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockBookingReadQueries)
			mockQueries.On("GetBookingViewByUserID", mock.Anything, mock.Anything, int32(7)).Return(tt.mockRow, tt.mockError)

			store := NewBookingReadStore(mockQueries, nil)
			view, err := store.FindViewByUserID(context.Background(), 7)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.Nil(t, view)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				require.NoError(t, err)
				assert.Equal(t, int32(3), view.ID)
				assert.Equal(t, int32(11), view.RoomID)
				require.NotNil(t, view.Room)
				assert.Equal(t, "101", view.Room.Name)
				assert.Equal(t, 3, view.Room.Capacity)
				assert.Equal(t, int32(2), view.Room.HotelID)
				assert.True(t, view.CreatedAt.Equal(now))
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestBookingReadStore_FindByUserID(t *testing.T) {
	mockQueries := new(MockBookingReadQueries)
	mockQueries.On("GetBookingByUserID", mock.Anything, mock.Anything, int32(7)).
		Return(sqlc.Bookings{ID: 3, UserID: 7, RoomID: 11}, nil).Once()
	mockQueries.On("GetBookingByUserID", mock.Anything, mock.Anything, int32(8)).
		Return(sqlc.Bookings{}, pgx.ErrNoRows).Once()

	store := NewBookingReadStore(mockQueries, nil)

	b, err := store.FindByUserID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int32(3), b.ID)
	assert.True(t, b.OwnedBy(7))

	b, err = store.FindByUserID(context.Background(), 8)
	assert.Nil(t, b)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))

	mockQueries.AssertExpectations(t)
}

func TestBookingReadStore_CountByRoomID(t *testing.T) {
	mockQueries := new(MockBookingReadQueries)
	mockQueries.On("CountBookingsByRoomID", mock.Anything, mock.Anything, int32(11)).Return(int32(2), nil).Once()
	mockQueries.On("CountBookingsByRoomID", mock.Anything, mock.Anything, int32(12)).Return(int32(0), assert.AnError).Once()

	store := NewBookingReadStore(mockQueries, nil)

	n, err := store.CountByRoomID(context.Background(), 11)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = store.CountByRoomID(context.Background(), 12)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}
