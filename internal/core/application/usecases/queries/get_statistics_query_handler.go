package queries

import (
	"context"

	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/domain/model/spool"
	"printshop/internal/core/domain/pricing"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStatisticsQueryHandler computes the dashboard aggregates. Counts and
// inventory sums come straight from SQL; the money fields cannot, because
// fees, tolerance concessions and R&D billing are pricing-engine rules, so
// the handler streams the non-cancelled orders out of the database and runs
// each one through the engine.
type GetStatisticsQueryHandler struct {
	db     *gorm.DB
	policy pricing.Policy
}

// NewGetStatisticsQueryHandler creates a handler for statistics queries.
func NewGetStatisticsQueryHandler(db *gorm.DB, policy pricing.Policy) GetStatisticsQueryHandler {
	return GetStatisticsQueryHandler{db: db, policy: policy}
}

// Handle executes the query.
func (h GetStatisticsQueryHandler) Handle(
	ctx context.Context,
	query GetStatisticsQuery,
) (GetStatisticsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetStatisticsQueryResponse{}, err
	}

	var resp GetStatisticsQueryResponse

	if err := h.scanOrderCounts(ctx, &resp); err != nil {
		return GetStatisticsQueryResponse{}, err
	}
	if err := h.scanInventory(ctx, &resp); err != nil {
		return GetStatisticsQueryResponse{}, err
	}

	snapshots, err := h.loadOrderSnapshots(ctx)
	if err != nil {
		return GetStatisticsQueryResponse{}, err
	}

	for _, snapshot := range snapshots {
		totals, totalsErr := pricing.ComputeTotals(snapshot, h.policy)
		if totalsErr != nil {
			return GetStatisticsQueryResponse{}, totalsErr
		}
		costs := pricing.ComputeCosts(snapshot, h.policy)

		resp.Revenue += totals.GrandTotal
		resp.ShippingTotal += totals.Shipping
		resp.FeeTotal += totals.Fee
		resp.MaterialCost += costs.MaterialCost
		resp.Profit += costs.Profit
		resp.RoundingLoss += totals.RoundingLoss
	}

	return resp, nil
}

func (h GetStatisticsQueryHandler) scanOrderCounts(
	ctx context.Context,
	resp *GetStatisticsQueryResponse,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*)
		FROM orders
		GROUP BY status
	`).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var status order.Status
		var count int

		if err = rows.Scan(&status, &count); err != nil {
			return err
		}

		resp.TotalOrders += count
		switch status {
		case order.StatusCompleted:
			resp.CompletedOrders += count
		case order.StatusCancelled:
			resp.CancelledOrders += count
		default:
			resp.ActiveOrders += count
		}
	}

	return rows.Err()
}

func (h GetStatisticsQueryHandler) scanInventory(
	ctx context.Context,
	resp *GetStatisticsQueryResponse,
) error {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) FILTER (WHERE status = ?),
			COALESCE(SUM(remaining_weight) FILTER (WHERE status = ?), 0),
			COALESCE(SUM(total_weight - remaining_weight), 0)
		FROM spools
	`, spool.StatusActive, spool.StatusActive).Row()

	err := row.Scan(&resp.ActiveSpools, &resp.FilamentRemainingGrams, &resp.FilamentUsedGrams)
	if err != nil {
		return err
	}

	row = h.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(waste_weight), 0) FROM waste_records
	`).Row()
	if err = row.Scan(&resp.WasteGrams); err != nil {
		return err
	}

	row = h.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total_print_hours), 0), COALESCE(SUM(nozzle_change_count), 0)
		FROM printers
	`).Row()
	return row.Scan(&resp.PrintHours, &resp.NozzleChanges)
}

// loadOrderSnapshots streams every non-cancelled order joined with its items
// and their spools, grouped back into one pricing snapshot per order.
func (h GetStatisticsQueryHandler) loadOrderSnapshots(
	ctx context.Context,
) (map[string]pricing.OrderSnapshot, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.shipping_cost,
			o.payment_method,
			o.order_discount_percent,
			o.amount_received,
			o.is_rnd,
			i.estimated_weight,
			i.actual_weight,
			i.quantity,
			i.rate_per_gram,
			CASE WHEN i.actual_hours > 0 THEN i.actual_hours ELSE i.print_hours END,
			s.id,
			s.category
		FROM orders o
		JOIN order_items i ON i.order_id = o.id
		JOIN spools s ON s.id = i.spool_id
		WHERE o.status <> ?
	`, order.StatusCancelled).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	snapshots := make(map[string]pricing.OrderSnapshot)

	for rows.Next() {
		var orderID, spoolID uuid.UUID
		var item pricing.ItemSnapshot
		var shippingCost, orderDiscountPercent, amountReceived float64
		var paymentMethod pricing.PaymentMethod
		var isRnD bool
		var category spool.Category

		err = rows.Scan(
			&orderID,
			&shippingCost,
			&paymentMethod,
			&orderDiscountPercent,
			&amountReceived,
			&isRnD,
			&item.EstimatedGrams,
			&item.ActualGrams,
			&item.Quantity,
			&item.RatePerGram,
			&item.Hours,
			&spoolID,
			&category,
		)
		if err != nil {
			return nil, err
		}

		item.SpoolID = spoolID.String()
		item.SpoolIsNew = category == spool.CategoryStandard

		snapshot, ok := snapshots[orderID.String()]
		if !ok {
			snapshot = pricing.OrderSnapshot{
				ShippingCost:         shippingCost,
				PaymentMethod:        paymentMethod,
				OrderDiscountPercent: orderDiscountPercent,
				AmountReceived:       amountReceived,
				IsRnD:                isRnD,
			}
		}
		snapshot.Items = append(snapshot.Items, item)
		snapshots[orderID.String()] = snapshot
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return snapshots, nil
}
