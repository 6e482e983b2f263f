package booking

import (
	"context"

	"lodging-service/internal/domain/hotel"
	"lodging-service/internal/pkg/errs"
)

// Engine evaluates admission rules in a fixed order and stops at the first failure.
type Engine struct {
	defaultCapacity int
}

func NewEngine(defaultCapacity int) *Engine {
	if defaultCapacity <= 0 {
		defaultCapacity = hotel.DefaultRoomCapacity
	}
	return &Engine{defaultCapacity: defaultCapacity}
}

// EvaluateCreate checks room existence, capacity, eligibility and uniqueness.
func (e *Engine) EvaluateCreate(ctx context.Context, facts Facts, userID, roomID int32) (Decision, error) {
	if d, err := e.checkRoom(ctx, facts, roomID); err != nil || d != DecisionAdmit {
		return d, err
	}

	eligible, err := facts.HasPaidHotelTicket(ctx, userID)
	if err != nil {
		return DecisionUnknown, errs.Wrapf(err, "checking ticket of user %d", userID)
	}
	if !eligible {
		return DecisionUserIneligible, nil
	}

	held, err := facts.FindUserBooking(ctx, userID)
	if err != nil {
		return DecisionUnknown, errs.Wrapf(err, "loading booking of user %d", userID)
	}
	if held != nil {
		return DecisionUserAlreadyBooked, nil
	}

	return DecisionAdmit, nil
}

// EvaluateUpdate checks room existence, capacity, that the user holds a booking and owns bookingID.
func (e *Engine) EvaluateUpdate(ctx context.Context, facts Facts, userID, bookingID, roomID int32) (Decision, error) {
	if d, err := e.checkRoom(ctx, facts, roomID); err != nil || d != DecisionAdmit {
		return d, err
	}

	held, err := facts.FindUserBooking(ctx, userID)
	if err != nil {
		return DecisionUnknown, errs.Wrapf(err, "loading booking of user %d", userID)
	}
	if held == nil {
		return DecisionUserHasNoBooking, nil
	}
	if held.ID != bookingID || !held.OwnedBy(userID) {
		return DecisionUserDoesNotOwnBooking, nil
	}

	return DecisionAdmit, nil
}

func (e *Engine) checkRoom(ctx context.Context, facts Facts, roomID int32) (Decision, error) {
	room, err := facts.FindRoom(ctx, roomID)
	if err != nil {
		return DecisionUnknown, errs.Wrapf(err, "loading room %d", roomID)
	}
	if room == nil {
		return DecisionRoomNotFound, nil
	}

	occupancy, err := facts.CountBookingsForRoom(ctx, roomID)
	if err != nil {
		return DecisionUnknown, errs.Wrapf(err, "counting bookings of room %d", roomID)
	}
	if room.IsFull(occupancy, e.defaultCapacity) {
		return DecisionRoomFull, nil
	}

	return DecisionAdmit, nil
}
