package repository

import (
	"context"

	"lodging-service/internal/domain/booking"
	"lodging-service/internal/infra"
	"lodging-service/internal/infra/repository/converter"
	sqlc "lodging-service/internal/infra/sqlc/generated"
	"lodging-service/internal/pkg/pgconv"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (sqlc.Bookings, error)
	UpdateBookingRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingRoomParams) (sqlc.Bookings, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) Create(ctx context.Context, userID, roomID int32) (*booking.Booking, error) {
	row, err := r.queries.CreateBooking(ctx, r.db, sqlc.CreateBookingParams{
		UserID: userID,
		RoomID: roomID,
	})
	if err != nil {
		return nil, wrapWriteErr("failed to create booking", err)
	}
	return converter.BookingToDomain(row), nil
}

func (r *BookingRepository) UpdateRoom(ctx context.Context, bookingID, roomID int32) (*booking.Booking, error) {
	row, err := r.queries.UpdateBookingRoom(ctx, r.db, sqlc.UpdateBookingRoomParams{
		ID:     bookingID,
		RoomID: roomID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, wrapWriteErr("failed to update booking room", err)
	}
	return converter.BookingToDomain(row), nil
}

func wrapWriteErr(msg string, err error) error {
	switch {
	case pgconv.IsUniqueViolation(err):
		return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
	case pgconv.IsForeignKeyViolation(err):
		return infra.WrapRepoErr(msg, err, infra.KindForeignKeyViolated)
	default:
		return infra.WrapRepoErr(msg, err)
	}
}
