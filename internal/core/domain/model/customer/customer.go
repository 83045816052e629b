// Package customer implements the customer entity orders reference by ID.
package customer

import (
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through the NewCustomer or RestoreCustomer factory methods.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or RestoreCustomer constructor")

// Customer is the party an order belongs to. Deletion rules live in the
// application layer because they depend on the orders referencing it.
type Customer struct {
	id    kernel.UUID
	name  string
	phone string

	isConstructed bool
}

// NewCustomer creates a customer.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - name: display name (required)
//   - phone: contact number, optional
func NewCustomer(id kernel.UUID, name, phone string) (*Customer, error) {
	c := &Customer{
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
	); err != nil {
		return nil, err
	}

	c.phone = phone
	return c, nil
}

// RestoreCustomer reconstructs a customer from persistence.
func RestoreCustomer(id kernel.UUID, name, phone string) (*Customer, error) {
	return NewCustomer(id, name, phone)
}

// Validate ensures the Customer instance was properly constructed.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// IsEqual compares two customers by identity.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the display name.
func (c *Customer) Name() string {
	return c.name
}

// Phone returns the contact number, empty when unknown.
func (c *Customer) Phone() string {
	return c.phone
}

// Rename changes the display name.
func (c *Customer) Rename(name string) error {
	return c.setName(name)
}

// SetPhone updates the contact number.
func (c *Customer) SetPhone(phone string) {
	c.phone = phone
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}
