//go:build unit

package queries_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"lodging-service/internal/infra"
	"lodging-service/internal/pkg/config"
	"lodging-service/internal/pkg/errs"
	"lodging-service/internal/usecase/queries"
	queriesmock "lodging-service/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type hotelFixture struct {
	store       *queriesmock.MockHotelReadStore
	eligibility *queriesmock.MockEligibilityReadStore
	cache       *queriesmock.MockCatalogCache
	q           queries.HotelQueries
}

func newHotelFixture(t *testing.T) *hotelFixture {
	ctrl := gomock.NewController(t)
	f := &hotelFixture{
		store:       queriesmock.NewMockHotelReadStore(ctrl),
		eligibility: queriesmock.NewMockEligibilityReadStore(ctrl),
		cache:       queriesmock.NewMockCatalogCache(ctrl),
	}
	cfg := config.NewTestConfig()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.q = queries.NewHotelQueries(f.store, f.eligibility, f.cache, cfg, logger)
	return f
}

func TestListHotels(t *testing.T) {
	hotels := []*queries.HotelView{{ID: 1, Name: "Driven Resort"}, {ID: 2, Name: "Driven Palace"}}

	t.Run("未払いユーザーは402相当", func(t *testing.T) {
		f := newHotelFixture(t)
		f.eligibility.EXPECT().HasPaidHotelTicket(gomock.Any(), int32(5)).Return(false, nil)

		got, err := f.q.ListHotels(context.Background(), 5)

		assert.Nil(t, got)
		assert.True(t, errs.Is(err, queries.ErrPaymentRequired))
	})

	t.Run("キャッシュミスでDBから取得して保存", func(t *testing.T) {
		f := newHotelFixture(t)
		f.eligibility.EXPECT().HasPaidHotelTicket(gomock.Any(), int32(5)).Return(true, nil)
		f.cache.EXPECT().GetJSON(gomock.Any(), "catalog:hotels", gomock.Any()).Return(false, nil)
		f.store.EXPECT().ListHotels(gomock.Any()).Return(hotels, nil)
		f.cache.EXPECT().SetJSON(gomock.Any(), "catalog:hotels", hotels, gomock.Any()).Return(nil)

		got, err := f.q.ListHotels(context.Background(), 5)

		require.NoError(t, err)
		assert.Equal(t, hotels, got)
	})

	t.Run("キャッシュヒットではDBを読まない", func(t *testing.T) {
		f := newHotelFixture(t)
		f.eligibility.EXPECT().HasPaidHotelTicket(gomock.Any(), int32(5)).Return(true, nil)
		f.cache.EXPECT().GetJSON(gomock.Any(), "catalog:hotels", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, dst any) (bool, error) {
				*dst.(*[]*queries.HotelView) = hotels
				return true, nil
			})

		got, err := f.q.ListHotels(context.Background(), 5)

		require.NoError(t, err)
		assert.Equal(t, hotels, got)
	})

	t.Run("キャッシュ障害時はDBにフォールバック", func(t *testing.T) {
		f := newHotelFixture(t)
		f.eligibility.EXPECT().HasPaidHotelTicket(gomock.Any(), int32(5)).Return(true, nil)
		f.cache.EXPECT().GetJSON(gomock.Any(), "catalog:hotels", gomock.Any()).Return(false, errors.New("redis down"))
		f.store.EXPECT().ListHotels(gomock.Any()).Return(hotels, nil)
		f.cache.EXPECT().SetJSON(gomock.Any(), "catalog:hotels", hotels, gomock.Any()).Return(errors.New("redis down"))

		got, err := f.q.ListHotels(context.Background(), 5)

		require.NoError(t, err)
		assert.Equal(t, hotels, got)
	})

	t.Run("呼び出し元のキャンセルは共有の読み込みに伝播しない", func(t *testing.T) {
		f := newHotelFixture(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		f.eligibility.EXPECT().HasPaidHotelTicket(gomock.Any(), int32(5)).Return(true, nil)
		f.cache.EXPECT().GetJSON(gomock.Any(), "catalog:hotels", gomock.Any()).Return(false, nil)
		f.store.EXPECT().ListHotels(gomock.Any()).
			DoAndReturn(func(ctx context.Context) ([]*queries.HotelView, error) {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				return hotels, nil
			})
		f.cache.EXPECT().SetJSON(gomock.Any(), "catalog:hotels", hotels, gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ string, _ any, _ time.Duration) error {
				assert.NoError(t, ctx.Err())
				return nil
			})

		got, err := f.q.ListHotels(ctx, 5)

		require.NoError(t, err)
		assert.Equal(t, hotels, got)
	})

	t.Run("資格確認の失敗", func(t *testing.T) {
		f := newHotelFixture(t)
		f.eligibility.EXPECT().HasPaidHotelTicket(gomock.Any(), int32(5)).Return(false, assert.AnError)

		_, err := f.q.ListHotels(context.Background(), 5)

		require.ErrorIs(t, err, assert.AnError)
		assert.False(t, errs.Is(err, queries.ErrPaymentRequired))
	})
}

func TestListRooms(t *testing.T) {
	h := &queries.HotelView{ID: 1, Name: "Driven Resort"}

	t.Run("空室数を計算する", func(t *testing.T) {
		f := newHotelFixture(t)
		f.cache.EXPECT().GetJSON(gomock.Any(), "catalog:hotel:1", gomock.Any()).Return(false, nil)
		f.store.EXPECT().FindHotelByID(gomock.Any(), int32(1)).Return(h, nil)
		f.cache.EXPECT().SetJSON(gomock.Any(), "catalog:hotel:1", h, gomock.Any()).Return(nil)
		f.store.EXPECT().ListRoomsWithOccupancy(gomock.Any(), int32(1)).Return([]*queries.RoomOccupancy{
			{Room: queries.RoomView{ID: 10, Name: "101", Capacity: 2, HotelID: 1}, Occupancy: 1},
			{Room: queries.RoomView{ID: 11, Name: "102", Capacity: 3, HotelID: 1}, Occupancy: 3},
			{Room: queries.RoomView{ID: 12, Name: "103", HotelID: 1}, Occupancy: 0},
		}, nil)

		got, err := f.q.ListRooms(context.Background(), 5, 1)

		require.NoError(t, err)
		assert.Equal(t, "Driven Resort", got.Name)
		require.Len(t, got.Rooms, 3)
		assert.Equal(t, 1, got.Rooms[0].Vacancies)
		assert.Equal(t, 0, got.Rooms[1].Vacancies)
		// capacity falls back to the configured default
		assert.Equal(t, 3, got.Rooms[2].Capacity)
		assert.Equal(t, 3, got.Rooms[2].Vacancies)
	})

	t.Run("チケット未払いでも閲覧できる", func(t *testing.T) {
		f := newHotelFixture(t)
		f.cache.EXPECT().GetJSON(gomock.Any(), "catalog:hotel:1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, dst any) (bool, error) {
				*dst.(*queries.HotelView) = *h
				return true, nil
			})
		f.store.EXPECT().ListRoomsWithOccupancy(gomock.Any(), int32(1)).Return([]*queries.RoomOccupancy{}, nil)

		got, err := f.q.ListRooms(context.Background(), 5, 1)

		require.NoError(t, err)
		assert.Equal(t, int32(1), got.ID)
		assert.Empty(t, got.Rooms)
	})

	t.Run("キャンセル済みの呼び出しでもホテル情報の読み込みは完了する", func(t *testing.T) {
		f := newHotelFixture(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		f.cache.EXPECT().GetJSON(gomock.Any(), "catalog:hotel:1", gomock.Any()).Return(false, nil)
		f.store.EXPECT().FindHotelByID(gomock.Any(), int32(1)).
			DoAndReturn(func(ctx context.Context, _ int32) (*queries.HotelView, error) {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				return h, nil
			})
		f.cache.EXPECT().SetJSON(gomock.Any(), "catalog:hotel:1", h, gomock.Any()).Return(nil)
		f.store.EXPECT().ListRoomsWithOccupancy(gomock.Any(), int32(1)).Return([]*queries.RoomOccupancy{}, nil)

		got, err := f.q.ListRooms(ctx, 5, 1)

		require.NoError(t, err)
		assert.Equal(t, "Driven Resort", got.Name)
	})

	t.Run("存在しないホテル", func(t *testing.T) {
		f := newHotelFixture(t)
		f.cache.EXPECT().GetJSON(gomock.Any(), "catalog:hotel:404", gomock.Any()).Return(false, nil)
		f.store.EXPECT().FindHotelByID(gomock.Any(), int32(404)).
			Return(nil, infra.WrapRepoErr("hotel not found", nil, infra.KindNotFound))

		_, err := f.q.ListRooms(context.Background(), 5, 404)

		assert.True(t, errs.Is(err, queries.ErrHotelNotFound))
	})
}
