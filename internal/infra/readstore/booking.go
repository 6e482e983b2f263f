package readstore

import (
	"context"

	"lodging-service/internal/domain/booking"
	"lodging-service/internal/infra"
	"lodging-service/internal/infra/repository/converter"
	sqlc "lodging-service/internal/infra/sqlc/generated"
	"lodging-service/internal/pkg/pgconv"
	"lodging-service/internal/usecase/queries"
)

type BookingReadQueries interface {
	GetBookingViewByUserID(ctx context.Context, db sqlc.DBTX, userID int32) (sqlc.GetBookingViewByUserIDRow, error)
	GetBookingByUserID(ctx context.Context, db sqlc.DBTX, userID int32) (sqlc.Bookings, error)
	CountBookingsByRoomID(ctx context.Context, db sqlc.DBTX, roomID int32) (int32, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindViewByUserID(ctx context.Context, userID int32) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingViewByUserID(ctx, r.db, userID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking view", err)
	}
	return converter.BookingViewFromRow(row), nil
}

func (r *BookingReadStore) FindByUserID(ctx context.Context, userID int32) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByUserID(ctx, r.db, userID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by user", err)
	}
	return converter.BookingToDomain(row), nil
}

func (r *BookingReadStore) CountByRoomID(ctx context.Context, roomID int32) (int, error) {
	n, err := r.queries.CountBookingsByRoomID(ctx, r.db, roomID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count bookings of room", err)
	}
	return int(n), nil
}
