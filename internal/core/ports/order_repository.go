package ports

import (
	"context"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are stored with their items and lifecycle events.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, including its
	// items and any pulled lifecycle events.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllInStatus retrieves all orders in the given lifecycle status.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// ExistsForCustomer reports whether any non-cancelled order references
	// the customer. Customer deletion is blocked while this holds.
	ExistsForCustomer(ctx context.Context, customerID kernel.UUID) (bool, error)

	// NextOrderNumber allocates the next human-facing order number.
	NextOrderNumber(ctx context.Context) (string, error)

	// Delete removes an order with its items and lifecycle events. The
	// caller must release the items' held reservations first.
	Delete(ctx context.Context, id kernel.UUID) error
}
