package components

import (
	"lodging-service/internal/infra/readstore"
	sqlc "lodging-service/internal/infra/sqlc/generated"
	"lodging-service/internal/infra/uow"
	"lodging-service/internal/usecase/commands"
	"lodging-service/internal/usecase/queries"
	"lodging-service/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Hotel
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.HotelReadQueries)),
		),
		fx.Annotate(
			readstore.NewHotelReadStore,
			fx.As(new(queries.HotelReadStore)),
		),
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingReadQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// Eligibility
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.EligibilityReadQueries)),
		),
		fx.Annotate(
			readstore.NewEligibilityReadStore,
			fx.As(new(queries.EligibilityReadStore)),
		),
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(commands.UserReadStore)),
		),
	),
)

// the booking repository is built per transaction by the unit of work
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
