package spool

import (
	"errors"
	"fmt"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"
)

// ArchiveThresholdGrams is the remaining weight below which an operator may
// archive a spool. Above it the spool is still considered usable inventory.
const ArchiveThresholdGrams = 20.0

var (
	// ErrSpoolIsNotConstructed is returned when a Spool instance was not
	// created through the NewSpool or RestoreSpool factory methods.
	ErrSpoolIsNotConstructed = errors.New("Spool must be created via NewSpool or RestoreSpool constructor")

	// ErrInsufficientStock indicates a reservation request exceeds the
	// spool's unreserved remaining weight. The caller reports it and does
	// not add the order item; quantities are never guessed or corrected.
	ErrInsufficientStock = errors.New("insufficient filament stock")

	// ErrReservationStateInvalid indicates a commit or return on a
	// reservation that is not in the Held state. It signals a logic bug in
	// the calling workflow and must not be swallowed.
	ErrReservationStateInvalid = errors.New("reservation is not in a valid state")

	// ErrReservationNotFound indicates the handle does not belong to this
	// spool.
	ErrReservationNotFound = errors.New("reservation not found on spool")

	// ErrSpoolIsArchived indicates a mutation on an archived spool.
	ErrSpoolIsArchived = errors.New("spool is archived")

	// ErrSpoolHasHeldReservations blocks archiving while grams are still
	// soft-held by open orders.
	ErrSpoolHasHeldReservations = errors.New("spool has held reservations")

	// ErrSpoolNotBelowThreshold blocks archiving a spool that still carries
	// usable filament.
	ErrSpoolNotBelowThreshold = errors.New("spool remaining weight is not below archive threshold")
)

// Spool is the aggregate root for a physical unit of filament. It owns its
// reservations and enforces gram conservation across every mutation:
//
//	0 <= reservedWeight <= remainingWeight <= totalWeight
//
// remainingWeight decreases only when a reservation commits, never on
// reserve. Spools are archived rather than deleted so consumption history
// stays auditable.
type Spool struct {
	id           kernel.UUID
	name         string
	color        string
	brand        string
	filamentType string
	category     Category

	totalWeight     float64
	remainingWeight float64
	reservedWeight  float64

	status       Status
	reservations []*Reservation

	isConstructed bool
}

// NewSpool creates a full spool entering inventory. Remaining weight starts
// equal to total weight and no grams are reserved.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - name: optional label; empty falls back to brand/type/color display
//   - color, brand, filamentType: filament metadata (color is required)
//   - category: Standard (purchased as a unit) or Remaining (sunk cost)
//   - totalWeight: grams on the spool (must be positive)
func NewSpool(
	id kernel.UUID,
	name, color, brand, filamentType string,
	category Category,
	totalWeight float64,
) (*Spool, error) {
	s := &Spool{
		status:        StatusActive,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setColor(color),
		s.setCategory(category),
		s.setTotalWeight(totalWeight),
	); err != nil {
		return nil, err
	}

	s.name = name
	s.brand = brand
	s.filamentType = filamentType
	s.remainingWeight = totalWeight
	return s, nil
}

// RestoreSpool reconstructs a spool from persistence, including its
// reservations and current quantities. The conservation invariant is
// re-checked so corrupted rows cannot enter the domain.
func RestoreSpool(
	id kernel.UUID,
	name, color, brand, filamentType string,
	category Category,
	totalWeight, remainingWeight, reservedWeight float64,
	status Status,
	reservations []*Reservation,
) (*Spool, error) {
	s := &Spool{
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setColor(color),
		s.setCategory(category),
		s.setTotalWeight(totalWeight),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if reservedWeight < 0 || remainingWeight < reservedWeight || totalWeight < remainingWeight {
		return nil, errs.NewValueIsOutOfRangeError("remainingWeight", remainingWeight, reservedWeight, totalWeight)
	}

	for _, r := range reservations {
		if err := r.Validate(); err != nil {
			return nil, err
		}
	}

	s.name = name
	s.brand = brand
	s.filamentType = filamentType
	s.remainingWeight = remainingWeight
	s.reservedWeight = reservedWeight
	s.status = status
	s.reservations = reservations
	return s, nil
}

// Validate ensures the Spool instance was properly constructed.
func (s *Spool) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSpoolIsNotConstructed
	}
	return nil
}

// IsEqual compares two spools by identity.
func (s *Spool) IsEqual(other *Spool) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the spool's unique identifier.
func (s *Spool) ID() kernel.UUID {
	return s.id
}

// Name returns the spool's label, falling back to brand, type and color.
func (s *Spool) Name() string {
	if s.name != "" {
		return s.name
	}
	return fmt.Sprintf("%s %s %s", s.brand, s.filamentType, s.color)
}

// Color returns the filament color.
func (s *Spool) Color() string {
	return s.color
}

// Brand returns the filament brand.
func (s *Spool) Brand() string {
	return s.brand
}

// FilamentType returns the material type, e.g. "PLA+".
func (s *Spool) FilamentType() string {
	return s.filamentType
}

// Category returns the cost-attribution category of the spool.
func (s *Spool) Category() Category {
	return s.category
}

// IsNew reports whether the spool was purchased as a unit, which drives the
// flat acquisition cost in the pricing engine.
func (s *Spool) IsNew() bool {
	return s.category == CategoryStandard
}

// TotalWeight returns the grams the spool held when it entered inventory,
// plus any explicit restocks.
func (s *Spool) TotalWeight() float64 {
	return s.totalWeight
}

// RemainingWeight returns the grams physically left on the spool.
func (s *Spool) RemainingWeight() float64 {
	return s.remainingWeight
}

// ReservedWeight returns the grams currently soft-held by open reservations.
func (s *Spool) ReservedWeight() float64 {
	return s.reservedWeight
}

// AvailableWeight returns the grams a new reservation may still claim.
func (s *Spool) AvailableWeight() float64 {
	return s.remainingWeight - s.reservedWeight
}

// UsedWeight returns the grams permanently consumed so far.
func (s *Spool) UsedWeight() float64 {
	return s.totalWeight - s.remainingWeight
}

// Status returns the inventory status of the spool.
func (s *Spool) Status() Status {
	return s.status
}

// Reservations returns the reservations owned by the spool.
func (s *Spool) Reservations() []*Reservation {
	return s.reservations
}

// Reserve places a soft hold on grams of filament and returns the
// reservation handle. The hold counts against availability but does not
// change the remaining weight.
//
// Returns ErrInsufficientStock when grams exceeds the unreserved remaining
// weight, and ErrSpoolIsArchived for archived spools.
func (s *Spool) Reserve(grams float64) (*Reservation, error) {
	if s.status != StatusActive {
		return nil, ErrSpoolIsArchived
	}
	if grams <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("grams is invalid",
			fmt.Errorf("%v is not greater than 0", grams))
	}
	if grams > s.AvailableWeight() {
		return nil, fmt.Errorf("%w: requested %.1fg, available %.1fg",
			ErrInsufficientStock, grams, s.AvailableWeight())
	}

	reservation, err := newReservation(kernel.NewUUID(), grams)
	if err != nil {
		return nil, err
	}

	s.reservedWeight += grams
	s.reservations = append(s.reservations, reservation)
	return reservation, nil
}

// CanCommit pre-validates that the reservation is committable without
// mutating anything. The order confirmation workflow calls it on every item
// before committing any, so a failed confirmation leaves no partial commits.
func (s *Spool) CanCommit(reservationID kernel.UUID) error {
	r, err := s.findReservation(reservationID)
	if err != nil {
		return err
	}
	if !r.IsHeld() {
		return fmt.Errorf("%w: cannot commit a %s reservation",
			ErrReservationStateInvalid, r.Status().String())
	}
	if r.Grams() > s.remainingWeight {
		return fmt.Errorf("%w: reservation of %.1fg exceeds remaining %.1fg",
			ErrInsufficientStock, r.Grams(), s.remainingWeight)
	}
	return nil
}

// CommitReservation permanently deducts the held grams:
//
//	remainingWeight -= grams; reservedWeight -= grams
//
// Committing an already committed or returned reservation fails with
// ErrReservationStateInvalid.
func (s *Spool) CommitReservation(reservationID kernel.UUID) error {
	if err := s.CanCommit(reservationID); err != nil {
		return err
	}

	r, err := s.findReservation(reservationID)
	if err != nil {
		return err
	}
	if err = r.commit(); err != nil {
		return err
	}

	s.remainingWeight -= r.Grams()
	s.reservedWeight -= r.Grams()
	return nil
}

// ReturnReservation releases a hold that was never committed. The remaining
// weight is untouched. Returning a committed or already returned reservation
// fails with ErrReservationStateInvalid.
func (s *Spool) ReturnReservation(reservationID kernel.UUID) error {
	r, err := s.findReservation(reservationID)
	if err != nil {
		return err
	}
	if err = r.returnHold(); err != nil {
		return err
	}

	s.reservedWeight -= r.Grams()
	return nil
}

// Restock adds grams to the spool. It is the only path besides commit that
// changes the conservation sum, and it is always an explicit operator action.
func (s *Spool) Restock(grams float64) error {
	if s.status != StatusActive {
		return ErrSpoolIsArchived
	}
	if grams <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("grams is invalid",
			fmt.Errorf("%v is not greater than 0", grams))
	}

	s.totalWeight += grams
	s.remainingWeight += grams
	return nil
}

// Archive retires the spool and returns the write-once waste record for the
// filament history log. Archiving requires:
//   - no held reservations (reservedWeight == 0)
//   - remaining weight below ArchiveThresholdGrams
func (s *Spool) Archive() (*WasteRecord, error) {
	if s.reservedWeight > 0 {
		return nil, fmt.Errorf("%w: %.1fg still reserved", ErrSpoolHasHeldReservations, s.reservedWeight)
	}
	if s.remainingWeight >= ArchiveThresholdGrams {
		return nil, fmt.Errorf("%w: %.1fg remaining, threshold %.0fg",
			ErrSpoolNotBelowThreshold, s.remainingWeight, ArchiveThresholdGrams)
	}

	newStatus, err := s.status.Archive()
	if err != nil {
		return nil, err
	}
	s.status = newStatus

	return NewWasteRecord(kernel.NewUUID(), s.id, s.Name(), s.color, s.UsedWeight(), s.remainingWeight)
}

func (s *Spool) findReservation(reservationID kernel.UUID) (*Reservation, error) {
	for _, r := range s.reservations {
		if r.ID().IsEqual(reservationID) {
			return r, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrReservationNotFound, reservationID.String())
}

func (s *Spool) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Spool) setColor(color string) error {
	if color == "" {
		return errs.NewValueIsRequiredError("color")
	}
	s.color = color
	return nil
}

func (s *Spool) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	s.category = category
	return nil
}

func (s *Spool) setTotalWeight(totalWeight float64) error {
	if totalWeight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("totalWeight is invalid",
			fmt.Errorf("%v is not greater than 0", totalWeight))
	}
	s.totalWeight = totalWeight
	return nil
}
