// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/pricing"
	"printshop/internal/pkg/guard"
)

var ErrGetOrderTotalsQueryIsNotConstructed = errors.New(
	"GetOrderTotalsQuery must be created via NewGetOrderTotalsQuery constructor",
)

// GetOrderTotalsQuery retrieves the full money breakdown of one order:
// customer-facing totals and internal cost attribution.
type GetOrderTotalsQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderTotalsQuery creates a query for an order's totals.
func NewGetOrderTotalsQuery(orderID kernel.UUID) (GetOrderTotalsQuery, error) {
	q := GetOrderTotalsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return GetOrderTotalsQuery{}, err
	}
	q.orderID = orderID
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderTotalsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderTotalsQueryIsNotConstructed)
}

// OrderID returns the order to price.
func (q GetOrderTotalsQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderTotalsQueryResponse is the read model of an order's money
// breakdown.
type GetOrderTotalsQueryResponse struct {
	OrderID     kernel.UUID
	OrderNumber string
	Status      string
	Totals      pricing.Totals
	Costs       pricing.Costs
}
