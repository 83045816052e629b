package queries

import (
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/guard"
)

var ErrGetLowSpoolsQueryIsNotConstructed = errors.New(
	"GetLowSpoolsQuery must be created via NewGetLowSpoolsQuery constructor",
)

// GetLowSpoolsQuery retrieves active spools whose remaining weight is below
// the archive threshold. The nightly low-stock scan and the inventory view
// both run it.
type GetLowSpoolsQuery struct {
	thresholdGrams float64

	guard guard.ConstructorGuard
}

// NewGetLowSpoolsQuery creates a query for spools below thresholdGrams.
func NewGetLowSpoolsQuery(thresholdGrams float64) (GetLowSpoolsQuery, error) {
	if thresholdGrams <= 0 {
		return GetLowSpoolsQuery{}, errors.New("threshold must be greater than 0")
	}

	return GetLowSpoolsQuery{
		thresholdGrams: thresholdGrams,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLowSpoolsQuery) Validate() error {
	return q.guard.Validate(ErrGetLowSpoolsQueryIsNotConstructed)
}

// ThresholdGrams returns the cut-off weight.
func (q GetLowSpoolsQuery) ThresholdGrams() float64 {
	return q.thresholdGrams
}

// GetLowSpoolsQueryResponse is the read model of one nearly depleted spool.
type GetLowSpoolsQueryResponse struct {
	ID              kernel.UUID
	Name            string
	Color           string
	RemainingWeight float64
	ReservedWeight  float64
}
