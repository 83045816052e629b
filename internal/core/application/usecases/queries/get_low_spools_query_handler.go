package queries

import (
	"context"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/spool"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetLowSpoolsQueryHandler retrieves nearly depleted spools from the
// database. Uses direct SQL for optimal read performance in the CQRS
// pattern.
type GetLowSpoolsQueryHandler struct {
	db *gorm.DB
}

// NewGetLowSpoolsQueryHandler creates a handler for low-stock queries.
// Requires a GORM database connection for query execution.
func NewGetLowSpoolsQueryHandler(db *gorm.DB) GetLowSpoolsQueryHandler {
	return GetLowSpoolsQueryHandler{db: db}
}

// Handle executes the query. Returns active spools under the threshold,
// emptiest first, with the display-name fallback applied in SQL.
func (h GetLowSpoolsQueryHandler) Handle(
	ctx context.Context,
	query GetLowSpoolsQuery,
) ([]GetLowSpoolsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	spools := make([]GetLowSpoolsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			CASE WHEN name = '' THEN brand || ' ' || filament_type || ' ' || color ELSE name END,
			color,
			remaining_weight,
			reserved_weight
		FROM spools
		WHERE status = ? AND remaining_weight < ?
		ORDER BY remaining_weight
	`, spool.StatusActive, query.ThresholdGrams()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetLowSpoolsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Color,
			&resp.RemainingWeight,
			&resp.ReservedWeight,
		)
		if err != nil {
			return nil, err
		}

		spoolID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = spoolID
		spools = append(spools, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return spools, nil
}
