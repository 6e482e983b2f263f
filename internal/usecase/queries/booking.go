package queries

import (
	"context"

	"lodging-service/internal/infra"
	"lodging-service/internal/pkg/errs"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
)

type BookingQueries interface {
	GetBooking(ctx context.Context, userID int32) (*BookingView, error)
}

type BookingReadStore interface {
	FindViewByUserID(ctx context.Context, userID int32) (*BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetBooking(ctx context.Context, userID int32) (*BookingView, error) {
	view, err := q.store.FindViewByUserID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrBookingNotFound)
		}
		return nil, err
	}
	if view == nil {
		return nil, ErrBookingNotFound
	}
	return view, nil
}
