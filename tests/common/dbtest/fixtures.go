//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const (
	DefaultPassword = "password123"
	// bcrypt hash of DefaultPassword
	defaultPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."
)

// TicketSpec selects the ticket type a user is enrolled with.
type TicketSpec struct {
	IsRemote      bool
	IncludesHotel bool
	Status        string // RESERVED | PAID
}

// PaidHotelTicket makes a user eligible for lodging.
var PaidHotelTicket = TicketSpec{IsRemote: false, IncludesHotel: true, Status: "PAID"}

func CreateTestUser(t *testing.T, db DBLike, email string) int32 {
	t.Helper()

	var userID int32
	ctx := context.Background()
	err := db.QueryRow(ctx,
		"INSERT INTO users (email, password_hash) VALUES ($1, $2) ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email RETURNING id",
		email, defaultPasswordHash).Scan(&userID)
	require.NoError(t, err)

	return userID
}

// CreateEnrollmentWithTicket enrolls the user and issues one ticket of the given kind.
func CreateEnrollmentWithTicket(t *testing.T, db DBLike, userID int32, spec TicketSpec) {
	t.Helper()
	ctx := context.Background()

	var enrollmentID, ticketTypeID int32
	err := db.QueryRow(ctx,
		"INSERT INTO enrollments (user_id, name, cpf) VALUES ($1, $2, $3) RETURNING id",
		userID, fmt.Sprintf("Attendee %d", userID), "000.000.000-00").Scan(&enrollmentID)
	require.NoError(t, err)

	err = db.QueryRow(ctx,
		"INSERT INTO ticket_types (name, price, is_remote, includes_hotel) VALUES ($1, $2, $3, $4) RETURNING id",
		"Presencial", 600, spec.IsRemote, spec.IncludesHotel).Scan(&ticketTypeID)
	require.NoError(t, err)

	_, err = db.Exec(ctx,
		"INSERT INTO tickets (ticket_type_id, enrollment_id, status) VALUES ($1, $2, $3)",
		ticketTypeID, enrollmentID, spec.Status)
	require.NoError(t, err)
}

func CreateHotel(t *testing.T, db DBLike, name string) int32 {
	t.Helper()

	var hotelID int32
	err := db.QueryRow(context.Background(),
		"INSERT INTO hotels (name, image) VALUES ($1, $2) RETURNING id",
		name, "https://example.com/"+strings.ReplaceAll(strings.ToLower(name), " ", "-")+".png").Scan(&hotelID)
	require.NoError(t, err)

	return hotelID
}

func CreateRoom(t *testing.T, db DBLike, hotelID int32, name string, capacity int) int32 {
	t.Helper()

	var roomID int32
	err := db.QueryRow(context.Background(),
		"INSERT INTO rooms (name, capacity, hotel_id) VALUES ($1, $2, $3) RETURNING id",
		name, capacity, hotelID).Scan(&roomID)
	require.NoError(t, err)

	return roomID
}

func CreateBooking(t *testing.T, db DBLike, userID, roomID int32) int32 {
	t.Helper()

	var bookingID int32
	err := db.QueryRow(context.Background(),
		"INSERT INTO bookings (user_id, room_id) VALUES ($1, $2) RETURNING id",
		userID, roomID).Scan(&bookingID)
	require.NoError(t, err)

	return bookingID
}

// FillRoom books every remaining slot of the room with fresh users.
func FillRoom(t *testing.T, db DBLike, roomID int32, capacity int) {
	t.Helper()
	for i := range capacity {
		occupant := CreateTestUser(t, db, fmt.Sprintf("occupant-%d-%d@example.com", roomID, i))
		CreateBooking(t, db, occupant, roomID)
	}
}

func CountBookings(t *testing.T, db DBLike, roomID int32) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT COUNT(*) FROM bookings WHERE room_id = $1", roomID).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
