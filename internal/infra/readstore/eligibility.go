package readstore

import (
	"context"

	"lodging-service/internal/infra"
	sqlc "lodging-service/internal/infra/sqlc/generated"
)

type EligibilityReadQueries interface {
	HasPaidHotelTicket(ctx context.Context, db sqlc.DBTX, userID int32) (bool, error)
}

type EligibilityReadStore struct {
	queries EligibilityReadQueries
	db      sqlc.DBTX
}

func NewEligibilityReadStore(queries EligibilityReadQueries, db sqlc.DBTX) *EligibilityReadStore {
	return &EligibilityReadStore{
		queries: queries,
		db:      db,
	}
}

// HasPaidHotelTicket is true for a PAID, in-person ticket whose type includes hotel.
func (r *EligibilityReadStore) HasPaidHotelTicket(ctx context.Context, userID int32) (bool, error) {
	ok, err := r.queries.HasPaidHotelTicket(ctx, r.db, userID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check hotel ticket", err)
	}
	return ok, nil
}
