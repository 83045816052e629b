package order

import (
	"errors"
	"fmt"
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/pricing"
	"printshop/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderIsNotDraft blocks item changes once an order left the Draft
	// status. Reservations were committed at confirmation and the sheet is
	// frozen from that point.
	ErrOrderIsNotDraft = errors.New("order is not a draft")

	// ErrItemNotFound indicates the item ID does not belong to this order.
	ErrItemNotFound = errors.New("item not found on order")

	// ErrOrderHasNoItems blocks confirming or completing an empty order.
	ErrOrderHasNoItems = errors.New("order has no items")
)

// Order is the aggregate root for a print job. It owns its items and drives
// the lifecycle state machine; filament itself is held by the spool
// aggregates the items reference.
//
// Invariants:
//   - items change only in Draft status
//   - Confirm and Complete require at least one item
//   - Completed and Cancelled are final
type Order struct {
	id          kernel.UUID
	orderNumber string
	customerID  kernel.UUID

	items  []*Item
	status Status

	shippingCost         float64
	paymentMethod        pricing.PaymentMethod
	orderDiscountPercent float64
	amountReceived       float64
	isRnD                bool

	createdAt time.Time
	events    []StatusChangedEvent

	isConstructed bool
}

// NewOrder creates a draft order with no items.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - orderNumber: human-facing number printed on the sheet (required)
//   - customerID: the ordering customer
//   - paymentMethod: how the order will be settled
//   - isRnD: internal research orders are billed at cost with zero profit
func NewOrder(
	id kernel.UUID,
	orderNumber string,
	customerID kernel.UUID,
	paymentMethod pricing.PaymentMethod,
	isRnD bool,
) (*Order, error) {
	o := &Order{
		status:        StatusDraft,
		isRnD:         isRnD,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(orderNumber),
		o.setCustomerID(customerID),
		o.setPaymentMethod(paymentMethod),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence, including its items
// and money fields.
func RestoreOrder(
	id kernel.UUID,
	orderNumber string,
	customerID kernel.UUID,
	items []*Item,
	status Status,
	shippingCost float64,
	paymentMethod pricing.PaymentMethod,
	orderDiscountPercent float64,
	amountReceived float64,
	isRnD bool,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(orderNumber),
		o.setCustomerID(customerID),
		o.setPaymentMethod(paymentMethod),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}
	if shippingCost < 0 || amountReceived < 0 {
		return nil, errs.NewValueIsInvalidError("money fields must not be negative")
	}
	if orderDiscountPercent < 0 || orderDiscountPercent > 100 {
		return nil, errs.NewValueIsOutOfRangeError("order discount percent", orderDiscountPercent, 0, 100)
	}

	o.items = items
	o.status = status
	o.shippingCost = shippingCost
	o.orderDiscountPercent = orderDiscountPercent
	o.amountReceived = amountReceived
	o.isRnD = isRnD
	o.createdAt = createdAt
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the human-facing order number.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// CustomerID returns the ordering customer's ID.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Items returns the order's line items.
func (o *Order) Items() []*Item {
	return o.items
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// ShippingCost returns the shipping charge in EGP.
func (o *Order) ShippingCost() float64 {
	return o.shippingCost
}

// PaymentMethod returns how the order is settled.
func (o *Order) PaymentMethod() pricing.PaymentMethod {
	return o.paymentMethod
}

// OrderDiscountPercent returns the manual order-level discount.
func (o *Order) OrderDiscountPercent() float64 {
	return o.orderDiscountPercent
}

// AmountReceived returns what the customer actually paid, 0 until settled.
func (o *Order) AmountReceived() float64 {
	return o.amountReceived
}

// IsRnD reports whether this is an internal research order.
func (o *Order) IsRnD() bool {
	return o.isRnD
}

// CreatedAt returns when the order entered the system.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// AddItem appends a line item to a draft order. The item's filament must
// already be reserved on its spool; the order only records the handle.
func (o *Order) AddItem(item *Item) error {
	if o.status != StatusDraft {
		return fmt.Errorf("%w: status is %s", ErrOrderIsNotDraft, o.status.String())
	}
	if err := item.Validate(); err != nil {
		return err
	}
	for _, existing := range o.items {
		if existing.ID().IsEqual(item.ID()) {
			return errs.NewValueIsInvalidErrorWithCause("item is invalid",
				fmt.Errorf("item %s is already on the order", item.ID().String()))
		}
	}

	o.items = append(o.items, item)
	return nil
}

// RemoveItem removes a line item from a draft order and returns it so the
// caller can release the item's reservation on its spool.
func (o *Order) RemoveItem(itemID kernel.UUID) (*Item, error) {
	if o.status != StatusDraft {
		return nil, fmt.Errorf("%w: status is %s", ErrOrderIsNotDraft, o.status.String())
	}

	for idx, item := range o.items {
		if item.ID().IsEqual(itemID) {
			o.items = append(o.items[:idx], o.items[idx+1:]...)
			return item, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrItemNotFound, itemID.String())
}

// FindItem returns the item with the given ID.
func (o *Order) FindItem(itemID kernel.UUID) (*Item, error) {
	for _, item := range o.items {
		if item.ID().IsEqual(itemID) {
			return item, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrItemNotFound, itemID.String())
}

// SetShippingCost sets the shipping charge. Allowed until the order reaches
// a terminal status.
func (o *Order) SetShippingCost(cost float64) error {
	if o.status.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s order cannot be changed", o.status.String()))
	}
	if cost < 0 {
		return errs.NewValueIsInvalidErrorWithCause("shipping cost is invalid",
			fmt.Errorf("%v is negative", cost))
	}
	o.shippingCost = cost
	return nil
}

// SetOrderDiscountPercent sets the manual order-level discount applied after
// the automatic rate discount.
func (o *Order) SetOrderDiscountPercent(percent float64) error {
	if o.status.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s order cannot be changed", o.status.String()))
	}
	if percent < 0 || percent > 100 {
		return errs.NewValueIsOutOfRangeError("order discount percent", percent, 0, 100)
	}
	o.orderDiscountPercent = percent
	return nil
}

// RecordPayment stores the amount the customer actually handed over. The
// pricing engine reports the shortfall against the invoiced total as
// rounding loss.
func (o *Order) RecordPayment(amount float64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount received is invalid",
			fmt.Errorf("%v is not greater than 0", amount))
	}
	o.amountReceived = amount
	return nil
}

// Confirm moves a draft order to Confirmed. The caller (the confirmation
// domain service) is responsible for committing every item's reservation
// before calling Confirm; the aggregate only enforces the state machine and
// the non-empty rule.
func (o *Order) Confirm() error {
	if len(o.items) == 0 {
		return ErrOrderHasNoItems
	}

	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}

	o.recordTransition(o.status, newStatus)
	o.status = newStatus
	return nil
}

// Start marks printing as started.
func (o *Order) Start() error {
	newStatus, err := o.status.Start()
	if err != nil {
		return err
	}

	o.recordTransition(o.status, newStatus)
	o.status = newStatus
	return nil
}

// Complete finishes the order. Completion is allowed from any non-terminal
// status but requires at least one item.
func (o *Order) Complete() error {
	if len(o.items) == 0 {
		return ErrOrderHasNoItems
	}

	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.recordTransition(o.status, newStatus)
	o.status = newStatus
	return nil
}

// Cancel abandons the order. The caller returns held reservations for draft
// orders; grams committed at confirmation stay consumed.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.recordTransition(o.status, newStatus)
	o.status = newStatus
	return nil
}

// PricingSnapshot projects the order into the pricing engine's input.
// isNewSpool reports whether a spool carries the flat acquisition cost; the
// caller closes it over the spools loaded for this order.
func (o *Order) PricingSnapshot(isNewSpool func(kernel.UUID) bool) pricing.OrderSnapshot {
	snapshot := pricing.OrderSnapshot{
		ShippingCost:         o.shippingCost,
		PaymentMethod:        o.paymentMethod,
		OrderDiscountPercent: o.orderDiscountPercent,
		AmountReceived:       o.amountReceived,
		IsRnD:                o.isRnD,
	}

	for _, item := range o.items {
		snapshot.Items = append(snapshot.Items, pricing.ItemSnapshot{
			EstimatedGrams: item.EstimatedWeight(),
			ActualGrams:    item.ActualWeight(),
			Quantity:       item.Quantity(),
			RatePerGram:    item.RatePerGram(),
			Hours:          item.BillableHours(),
			SpoolID:        item.SpoolID().String(),
			SpoolIsNew:     isNewSpool != nil && isNewSpool(item.SpoolID()),
		})
	}
	return snapshot
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	o.orderNumber = orderNumber
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return fmt.Errorf("customerID: %w", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setPaymentMethod(method pricing.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	o.paymentMethod = method
	return nil
}
