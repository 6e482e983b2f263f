package commands

import (
	"context"
	"fmt"
	"log/slog"

	"lodging-service/internal/domain/booking"
	"lodging-service/internal/infra"
	"lodging-service/internal/pkg/errs"
	"lodging-service/internal/usecase/queries"
	"lodging-service/internal/usecase/shared"
)

const (
	OperationCreate = "create"
	OperationUpdate = "update"
)

// AdmissionError reports a rejected admission. errors.Is matches the decision's sentinel.
type AdmissionError struct {
	Decision booking.Decision
}

func (e *AdmissionError) Error() string {
	return fmt.Sprintf("booking rejected: %s", e.Decision.Err())
}

func (e *AdmissionError) Unwrap() error {
	return e.Decision.Err()
}

func (e *AdmissionError) Kind() booking.Kind {
	return e.Decision.Kind()
}

type AdmissionRecorder interface {
	RecordAdmission(operation string, decision booking.Decision)
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, userID, roomID int32) (*queries.BookingView, error)
	UpdateBooking(ctx context.Context, userID, bookingID, roomID int32) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	uow      shared.UnitOfWork
	engine   *booking.Engine
	recorder AdmissionRecorder
	logger   *slog.Logger
}

func NewBookingCommands(uow shared.UnitOfWork, engine *booking.Engine, recorder AdmissionRecorder, logger *slog.Logger) BookingCommands {
	return &bookingCommandsImpl{
		uow:      uow,
		engine:   engine,
		recorder: recorder,
		logger:   logger,
	}
}

func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, userID, roomID int32) (*queries.BookingView, error) {
	var created *booking.Booking

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		decision, err := c.engine.EvaluateCreate(ctx, tx.Reads(), userID, roomID)
		if err != nil {
			return err
		}
		if !decision.Admitted() {
			return &AdmissionError{Decision: decision}
		}

		created, err = tx.Bookings().Create(ctx, userID, roomID)
		if err != nil {
			// a concurrent request of the same user won the unique index
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return &AdmissionError{Decision: booking.DecisionUserAlreadyBooked}
			}
			return errs.Wrap(err, "inserting booking")
		}
		return nil
	})

	c.record(OperationCreate, err)
	if err != nil {
		c.logRejection(ctx, OperationCreate, userID, roomID, err)
		return nil, err
	}

	c.logger.InfoContext(ctx, "booking created", "booking_id", created.ID, "user_id", userID, "room_id", roomID)
	return toBookingView(created), nil
}

func (c *bookingCommandsImpl) UpdateBooking(ctx context.Context, userID, bookingID, roomID int32) (*queries.BookingView, error) {
	var updated *booking.Booking

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		decision, err := c.engine.EvaluateUpdate(ctx, tx.Reads(), userID, bookingID, roomID)
		if err != nil {
			return err
		}
		if !decision.Admitted() {
			return &AdmissionError{Decision: decision}
		}

		updated, err = tx.Bookings().UpdateRoom(ctx, bookingID, roomID)
		if err != nil {
			return errs.Wrap(err, "moving booking")
		}
		return nil
	})

	c.record(OperationUpdate, err)
	if err != nil {
		c.logRejection(ctx, OperationUpdate, userID, roomID, err)
		return nil, err
	}

	c.logger.InfoContext(ctx, "booking moved", "booking_id", updated.ID, "user_id", userID, "room_id", roomID)
	return toBookingView(updated), nil
}

func (c *bookingCommandsImpl) record(operation string, err error) {
	if c.recorder == nil {
		return
	}
	decision := booking.DecisionAdmit
	if err != nil {
		decision = booking.DecisionUnknown
		if ae, ok := AsAdmissionError(err); ok {
			decision = ae.Decision
		}
	}
	c.recorder.RecordAdmission(operation, decision)
}

func (c *bookingCommandsImpl) logRejection(ctx context.Context, operation string, userID, roomID int32, err error) {
	if ae, ok := AsAdmissionError(err); ok {
		c.logger.InfoContext(ctx, "booking rejected",
			"operation", operation, "decision", ae.Decision.String(), "user_id", userID, "room_id", roomID)
		return
	}
	c.logger.ErrorContext(ctx, "booking failed",
		"operation", operation, "user_id", userID, "room_id", roomID, "error", err.Error())
}

func AsAdmissionError(err error) (*AdmissionError, bool) {
	var ae *AdmissionError
	if errs.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

func toBookingView(b *booking.Booking) *queries.BookingView {
	return &queries.BookingView{
		ID:        b.ID,
		UserID:    b.UserID,
		RoomID:    b.RoomID,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
