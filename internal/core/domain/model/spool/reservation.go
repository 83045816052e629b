package spool

import (
	"errors"
	"fmt"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"
)

// ErrReservationIsNotConstructed is returned when a Reservation instance was
// not created through the newReservation factory.
var ErrReservationIsNotConstructed = errors.New(
	"Reservation must be created via Spool.Reserve or RestoreReservation")

// ReservationStatus tracks the lifecycle of a soft hold on filament grams.
//
// State transitions:
//
//	Held ──┬──> Committed
//	       └──> Returned
//
// Committed and Returned are terminal. A double commit or double return is a
// logic bug in the caller and surfaces as an error, never a silent no-op.
type ReservationStatus int

const (
	// ReservationUnknown represents an invalid or undefined status.
	ReservationUnknown ReservationStatus = iota

	// ReservationHeld is the initial status: grams are held against the
	// spool's availability but not yet deducted.
	ReservationHeld

	// ReservationCommitted means the held grams were permanently deducted
	// from the spool.
	ReservationCommitted

	// ReservationReturned means the hold was released without deduction.
	ReservationReturned
)

func getReservationStatusStrings() map[ReservationStatus]string {
	return map[ReservationStatus]string{
		ReservationUnknown:   "Unknown",
		ReservationHeld:      "Held",
		ReservationCommitted: "Committed",
		ReservationReturned:  "Returned",
	}
}

// Validate checks that the status holds one of the defined values.
func (s ReservationStatus) Validate() error {
	if s != ReservationHeld && s != ReservationCommitted && s != ReservationReturned {
		return errs.NewValueIsInvalidErrorWithCause("reservation status is invalid",
			fmt.Errorf("%d is not a valid reservation status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s ReservationStatus) String() string {
	if str, ok := getReservationStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Commit transitions the status to Committed.
// Only Held reservations may commit; anything else is an invalid state.
func (s ReservationStatus) Commit() (ReservationStatus, error) {
	if s != ReservationHeld {
		return 0, fmt.Errorf("%w: cannot commit a %s reservation",
			ErrReservationStateInvalid, s.String())
	}
	return ReservationCommitted, nil
}

// Return transitions the status to Returned.
// Only Held reservations may return; a committed reservation stays committed.
func (s ReservationStatus) Return() (ReservationStatus, error) {
	if s != ReservationHeld {
		return 0, fmt.Errorf("%w: cannot return a %s reservation",
			ErrReservationStateInvalid, s.String())
	}
	return ReservationReturned, nil
}

// Reservation is a soft hold on filament grams, owned by its Spool. It acts
// as the handle the order lifecycle passes back to commit or return the hold.
type Reservation struct {
	id     kernel.UUID
	grams  float64
	status ReservationStatus

	isConstructed bool
}

// newReservation creates a Held reservation. Only Spool.Reserve calls this;
// the quantity guard lives in the aggregate.
func newReservation(id kernel.UUID, grams float64) (*Reservation, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if grams <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("grams is invalid",
			fmt.Errorf("%v is not greater than 0", grams))
	}

	return &Reservation{
		id:            id,
		grams:         grams,
		status:        ReservationHeld,
		isConstructed: true,
	}, nil
}

// RestoreReservation reconstructs a reservation from persistence in its
// previously saved status.
func RestoreReservation(id kernel.UUID, grams float64, status ReservationStatus) (*Reservation, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if grams <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("grams is invalid",
			fmt.Errorf("%v is not greater than 0", grams))
	}

	return &Reservation{
		id:            id,
		grams:         grams,
		status:        status,
		isConstructed: true,
	}, nil
}

// Validate ensures the reservation was properly constructed.
func (r *Reservation) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReservationIsNotConstructed
	}
	return nil
}

// ID returns the reservation's unique identifier.
func (r *Reservation) ID() kernel.UUID {
	return r.id
}

// Grams returns the quantity held by the reservation.
func (r *Reservation) Grams() float64 {
	return r.grams
}

// Status returns the current lifecycle status of the reservation.
func (r *Reservation) Status() ReservationStatus {
	return r.status
}

// IsHeld reports whether the reservation is still an open hold.
func (r *Reservation) IsHeld() bool {
	return r.status == ReservationHeld
}

func (r *Reservation) commit() error {
	newStatus, err := r.status.Commit()
	if err != nil {
		return err
	}
	r.status = newStatus
	return nil
}

func (r *Reservation) returnHold() error {
	newStatus, err := r.status.Return()
	if err != nil {
		return err
	}
	r.status = newStatus
	return nil
}
