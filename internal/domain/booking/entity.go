package booking

import (
	"time"
)

type Booking struct {
	ID        int32
	UserID    int32
	RoomID    int32
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (b *Booking) OwnedBy(userID int32) bool {
	return b != nil && b.UserID == userID
}
