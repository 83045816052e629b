package queries

import (
	"errors"

	"printshop/internal/pkg/guard"
)

var ErrGetStatisticsQueryIsNotConstructed = errors.New(
	"GetStatisticsQuery must be created via NewGetStatisticsQuery constructor",
)

// GetStatisticsQuery retrieves the shop-wide dashboard numbers: order
// counts, money aggregates over non-cancelled orders, inventory totals,
// waste and printer usage.
type GetStatisticsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetStatisticsQuery creates a parameterless statistics query.
func NewGetStatisticsQuery() GetStatisticsQuery {
	return GetStatisticsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetStatisticsQueryIsNotConstructed)
}

// GetStatisticsQueryResponse is the dashboard read model. Money fields
// aggregate non-cancelled orders only; cancelled orders contribute nothing
// but their committed filament stays in the consumption numbers.
type GetStatisticsQueryResponse struct {
	TotalOrders     int
	CompletedOrders int
	ActiveOrders    int
	CancelledOrders int

	Revenue       float64
	ShippingTotal float64
	FeeTotal      float64
	MaterialCost  float64
	Profit        float64
	RoundingLoss  float64

	ActiveSpools           int
	FilamentRemainingGrams float64
	FilamentUsedGrams      float64
	WasteGrams             float64

	PrintHours    float64
	NozzleChanges int
}
