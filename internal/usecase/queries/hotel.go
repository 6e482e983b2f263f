package queries

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"lodging-service/internal/domain/hotel"
	"lodging-service/internal/infra"
	"lodging-service/internal/pkg/config"
	"lodging-service/internal/pkg/errs"

	"golang.org/x/sync/singleflight"
)

var (
	ErrHotelNotFound   = errs.New("hotel not found")
	ErrPaymentRequired = errs.New("no paid ticket that includes hotel")
)

const (
	hotelListCacheKey   = "catalog:hotels"
	hotelCacheKeyPrefix = "catalog:hotel:"
)

type HotelQueries interface {
	ListHotels(ctx context.Context, userID int32) ([]*HotelView, error)
	ListRooms(ctx context.Context, userID, hotelID int32) (*HotelWithRoomsView, error)
}

type HotelReadStore interface {
	ListHotels(ctx context.Context) ([]*HotelView, error)
	FindHotelByID(ctx context.Context, id int32) (*HotelView, error)
	ListRoomsWithOccupancy(ctx context.Context, hotelID int32) ([]*RoomOccupancy, error)
}

type EligibilityReadStore interface {
	HasPaidHotelTicket(ctx context.Context, userID int32) (bool, error)
}

// CatalogCache stores static catalog data. A miss returns (false, nil).
type CatalogCache interface {
	GetJSON(ctx context.Context, key string, dst any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

// RoomOccupancy is a room together with its current booking count.
type RoomOccupancy struct {
	Room      RoomView
	Occupancy int
}

type hotelQueriesImpl struct {
	store       HotelReadStore
	eligibility EligibilityReadStore
	cache       CatalogCache
	ttl         time.Duration
	capacity    int
	group       singleflight.Group
	logger      *slog.Logger
}

func NewHotelQueries(
	store HotelReadStore,
	eligibility EligibilityReadStore,
	cache CatalogCache,
	cfg config.Config,
	logger *slog.Logger,
) HotelQueries {
	return &hotelQueriesImpl{
		store:       store,
		eligibility: eligibility,
		cache:       cache,
		ttl:         cfg.Redis.CacheTTL,
		capacity:    cfg.Booking.DefaultRoomCapacity,
		logger:      logger,
	}
}

func (q *hotelQueriesImpl) ListHotels(ctx context.Context, userID int32) ([]*HotelView, error) {
	eligible, err := q.eligibility.HasPaidHotelTicket(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !eligible {
		return nil, ErrPaymentRequired
	}

	var hotels []*HotelView
	if q.cacheGet(ctx, hotelListCacheKey, &hotels) {
		return hotels, nil
	}

	// Shared with concurrent callers; one caller cancelling must not fail the rest.
	fillCtx := context.WithoutCancel(ctx)
	v, err, _ := q.group.Do(hotelListCacheKey, func() (any, error) {
		rows, err := q.store.ListHotels(fillCtx)
		if err != nil {
			return nil, err
		}
		q.cacheSet(fillCtx, hotelListCacheKey, rows)
		return rows, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]*HotelView), nil
}

// ListRooms is open to any authenticated user; occupancy is always read fresh.
func (q *hotelQueriesImpl) ListRooms(ctx context.Context, userID, hotelID int32) (*HotelWithRoomsView, error) {
	h, err := q.findHotel(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	rows, err := q.store.ListRoomsWithOccupancy(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	rooms := make([]*RoomAvailabilityView, 0, len(rows))
	for _, r := range rows {
		room := hotel.Room{ID: r.Room.ID, Capacity: r.Room.Capacity}
		view := &RoomAvailabilityView{
			RoomView:  r.Room,
			Occupancy: r.Occupancy,
			Vacancies: room.Vacancies(r.Occupancy, q.capacity),
		}
		view.Capacity = room.EffectiveCapacity(q.capacity)
		rooms = append(rooms, view)
	}

	q.logger.DebugContext(ctx, "rooms listed", "user_id", userID, "hotel_id", hotelID, "rooms", len(rooms))

	return &HotelWithRoomsView{HotelView: *h, Rooms: rooms}, nil
}

func (q *hotelQueriesImpl) findHotel(ctx context.Context, hotelID int32) (*HotelView, error) {
	key := hotelCacheKeyPrefix + strconv.FormatInt(int64(hotelID), 10)

	var cached HotelView
	if q.cacheGet(ctx, key, &cached) {
		return &cached, nil
	}

	fillCtx := context.WithoutCancel(ctx)
	v, err, _ := q.group.Do(key, func() (any, error) {
		h, err := q.store.FindHotelByID(fillCtx, hotelID)
		if err != nil {
			return nil, err
		}
		q.cacheSet(fillCtx, key, h)
		return h, nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrHotelNotFound)
		}
		return nil, err
	}
	return v.(*HotelView), nil
}

// Cache failures degrade to a database read.
func (q *hotelQueriesImpl) cacheGet(ctx context.Context, key string, dst any) bool {
	if q.cache == nil {
		return false
	}
	hit, err := q.cache.GetJSON(ctx, key, dst)
	if err != nil {
		q.logger.WarnContext(ctx, "catalog cache read failed", "key", key, "error", err.Error())
		return false
	}
	return hit
}

func (q *hotelQueriesImpl) cacheSet(ctx context.Context, key string, value any) {
	if q.cache == nil {
		return
	}
	if err := q.cache.SetJSON(ctx, key, value, q.ttl); err != nil {
		q.logger.WarnContext(ctx, "catalog cache write failed", "key", key, "error", err.Error())
	}
}
