package request

// BookingRequest is shared by create and move. A pointer keeps roomId: 0 distinguishable from a missing field.
type BookingRequest struct {
	RoomID *int32 `json:"roomId" binding:"required"`
}
