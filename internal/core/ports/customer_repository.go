package ports

import (
	"context"

	"printshop/internal/core/domain/model/customer"
	"printshop/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customers.
type CustomerRepository interface {
	// Add persists a new customer to storage.
	Add(ctx context.Context, entity *customer.Customer) error

	// Update persists changes to an existing customer.
	Update(ctx context.Context, entity *customer.Customer) error

	// Get retrieves a customer by their unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// Delete removes a customer. The caller checks first that no live order
	// references them.
	Delete(ctx context.Context, id kernel.UUID) error
}
