package queries

import (
	"context"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/pricing"
	"printshop/internal/core/ports"
)

// GetOrderTotalsQueryHandler prices one order through the pricing engine.
// Unlike the raw-SQL read handlers it loads the full aggregates: totals
// depend on domain rules (tolerance band, R&D billing) that must not be
// duplicated in SQL.
type GetOrderTotalsQueryHandler struct {
	orderRepo ports.OrderRepository
	spoolRepo ports.SpoolRepository
	policy    pricing.Policy
}

// NewGetOrderTotalsQueryHandler creates a handler for order totals queries.
func NewGetOrderTotalsQueryHandler(
	orderRepo ports.OrderRepository,
	spoolRepo ports.SpoolRepository,
	policy pricing.Policy,
) GetOrderTotalsQueryHandler {
	return GetOrderTotalsQueryHandler{
		orderRepo: orderRepo,
		spoolRepo: spoolRepo,
		policy:    policy,
	}
}

// Handle executes the query: loads the order and its spools, projects the
// pricing snapshot and computes totals and costs.
func (h GetOrderTotalsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderTotalsQuery,
) (GetOrderTotalsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderTotalsQueryResponse{}, err
	}

	aggregate, err := h.orderRepo.Get(ctx, query.OrderID())
	if err != nil {
		return GetOrderTotalsQueryResponse{}, err
	}

	newSpools := make(map[string]bool)
	for _, item := range aggregate.Items() {
		if _, ok := newSpools[item.SpoolID().String()]; ok {
			continue
		}
		sp, spErr := h.spoolRepo.Get(ctx, item.SpoolID())
		if spErr != nil {
			return GetOrderTotalsQueryResponse{}, spErr
		}
		newSpools[sp.ID().String()] = sp.IsNew()
	}

	snapshot := aggregate.PricingSnapshot(func(id kernel.UUID) bool {
		return newSpools[id.String()]
	})

	totals, err := pricing.ComputeTotals(snapshot, h.policy)
	if err != nil {
		return GetOrderTotalsQueryResponse{}, err
	}

	return GetOrderTotalsQueryResponse{
		OrderID:     aggregate.ID(),
		OrderNumber: aggregate.OrderNumber(),
		Status:      aggregate.Status().String(),
		Totals:      totals,
		Costs:       pricing.ComputeCosts(snapshot, h.policy),
	}, nil
}
