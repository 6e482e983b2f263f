package booking

import (
	"errors"
)

var (
	ErrRoomNotFound      = errors.New("room not found")
	ErrRoomFull          = errors.New("room is full")
	ErrUserIneligible    = errors.New("user has no paid ticket that includes hotel")
	ErrUserAlreadyBooked = errors.New("user already holds a booking")
	ErrUserHasNoBooking  = errors.New("user holds no booking")
	ErrBookingNotOwned   = errors.New("booking does not belong to user")
	ErrUndecided         = errors.New("admission could not be decided")
)

// Decision is the outcome of an admission evaluation.
type Decision int

const (
	DecisionUnknown Decision = iota
	DecisionAdmit
	DecisionRoomNotFound
	DecisionRoomFull
	DecisionUserIneligible
	DecisionUserAlreadyBooked
	DecisionUserHasNoBooking
	DecisionUserDoesNotOwnBooking
)

// Kind classifies a rejection for the transport layer.
type Kind string

const (
	KindNone      Kind = ""
	KindNotFound  Kind = "not_found"
	KindForbidden Kind = "forbidden"
)

func (d Decision) String() string {
	switch d {
	case DecisionAdmit:
		return "admit"
	case DecisionRoomNotFound:
		return "room_not_found"
	case DecisionRoomFull:
		return "room_full"
	case DecisionUserIneligible:
		return "user_ineligible"
	case DecisionUserAlreadyBooked:
		return "user_already_booked"
	case DecisionUserHasNoBooking:
		return "user_has_no_booking"
	case DecisionUserDoesNotOwnBooking:
		return "user_does_not_own_booking"
	default:
		return "unknown"
	}
}

func (d Decision) Admitted() bool {
	return d == DecisionAdmit
}

// Err returns nil for DecisionAdmit.
func (d Decision) Err() error {
	switch d {
	case DecisionAdmit:
		return nil
	case DecisionRoomNotFound:
		return ErrRoomNotFound
	case DecisionRoomFull:
		return ErrRoomFull
	case DecisionUserIneligible:
		return ErrUserIneligible
	case DecisionUserAlreadyBooked:
		return ErrUserAlreadyBooked
	case DecisionUserHasNoBooking:
		return ErrUserHasNoBooking
	case DecisionUserDoesNotOwnBooking:
		return ErrBookingNotOwned
	default:
		return ErrUndecided
	}
}

func (d Decision) Kind() Kind {
	switch d {
	case DecisionAdmit, DecisionUnknown:
		return KindNone
	case DecisionRoomNotFound:
		return KindNotFound
	default:
		return KindForbidden
	}
}

// KindOf returns the rejection kind carried by err, or KindNone.
func KindOf(err error) Kind {
	switch {
	case errors.Is(err, ErrRoomNotFound):
		return KindNotFound
	case errors.Is(err, ErrRoomFull),
		errors.Is(err, ErrUserIneligible),
		errors.Is(err, ErrUserAlreadyBooked),
		errors.Is(err, ErrUserHasNoBooking),
		errors.Is(err, ErrBookingNotOwned):
		return KindForbidden
	default:
		return KindNone
	}
}
