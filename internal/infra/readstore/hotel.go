package readstore

import (
	"context"

	"lodging-service/internal/domain/hotel"
	"lodging-service/internal/infra"
	"lodging-service/internal/infra/repository/converter"
	sqlc "lodging-service/internal/infra/sqlc/generated"
	"lodging-service/internal/pkg/pgconv"
	"lodging-service/internal/usecase/queries"
)

type HotelReadQueries interface {
	ListHotels(ctx context.Context, db sqlc.DBTX) ([]sqlc.Hotels, error)
	GetHotelByID(ctx context.Context, db sqlc.DBTX, id int32) (sqlc.Hotels, error)
	ListRoomsByHotelID(ctx context.Context, db sqlc.DBTX, hotelID int32) ([]sqlc.ListRoomsByHotelIDRow, error)
	LockRoomByID(ctx context.Context, db sqlc.DBTX, id int32) (sqlc.Rooms, error)
}

type HotelReadStore struct {
	queries HotelReadQueries
	db      sqlc.DBTX
}

func NewHotelReadStore(queries HotelReadQueries, db sqlc.DBTX) *HotelReadStore {
	return &HotelReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *HotelReadStore) ListHotels(ctx context.Context) ([]*queries.HotelView, error) {
	rows, err := r.queries.ListHotels(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list hotels", err)
	}

	hotels := make([]*queries.HotelView, 0, len(rows))
	for _, row := range rows {
		hotels = append(hotels, converter.HotelViewFromRow(row))
	}
	return hotels, nil
}

func (r *HotelReadStore) FindHotelByID(ctx context.Context, id int32) (*queries.HotelView, error) {
	row, err := r.queries.GetHotelByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hotel not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find hotel by ID", err)
	}
	return converter.HotelViewFromRow(row), nil
}

func (r *HotelReadStore) ListRoomsWithOccupancy(ctx context.Context, hotelID int32) ([]*queries.RoomOccupancy, error) {
	rows, err := r.queries.ListRoomsByHotelID(ctx, r.db, hotelID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms of hotel", err)
	}

	rooms := make([]*queries.RoomOccupancy, 0, len(rows))
	for _, row := range rows {
		rooms = append(rooms, converter.RoomOccupancyFromRow(row))
	}
	return rooms, nil
}

// LockRoomByID must run inside a transaction; the row stays locked until it ends.
func (r *HotelReadStore) LockRoomByID(ctx context.Context, id int32) (*hotel.Room, error) {
	row, err := r.queries.LockRoomByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock room", err)
	}
	return converter.RoomToDomain(row), nil
}
