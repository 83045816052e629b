package http

import (
	"printshop/internal/core/domain/model/spool"
	"printshop/internal/core/domain/pricing"
	"printshop/internal/pkg/errs"
)

// Error is the uniform error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// IDResponse returns the identifier of a newly created resource.
type IDResponse struct {
	ID string `json:"id"`
}

// CreateCustomerRequest is the body of POST /customers.
type CreateCustomerRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// CreateSpoolRequest is the body of POST /spools.
type CreateSpoolRequest struct {
	Name         string  `json:"name"`
	Color        string  `json:"color"`
	Brand        string  `json:"brand"`
	FilamentType string  `json:"filament_type"`
	Category     string  `json:"category"`
	TotalWeight  float64 `json:"total_weight"`
}

// RestockSpoolRequest is the body of POST /spools/:id/restock.
type RestockSpoolRequest struct {
	Grams float64 `json:"grams"`
}

// LowSpoolResponse is one row of GET /spools/low.
type LowSpoolResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Color           string  `json:"color"`
	RemainingWeight float64 `json:"remaining_weight"`
	ReservedWeight  float64 `json:"reserved_weight"`
}

// RegisterPrinterRequest is the body of POST /printers.
type RegisterPrinterRequest struct {
	Name                string  `json:"name"`
	Model               string  `json:"model"`
	NozzleLifetimeHours float64 `json:"nozzle_lifetime_hours"`
}

// CreateOrderRequest is the body of POST /orders.
type CreateOrderRequest struct {
	CustomerID    string `json:"customer_id"`
	PaymentMethod string `json:"payment_method"`
	IsRnD         bool   `json:"is_rnd"`
}

// AddOrderItemRequest is the body of POST /orders/:id/items.
type AddOrderItemRequest struct {
	SpoolID        string  `json:"spool_id"`
	Name           string  `json:"name"`
	EstimatedGrams float64 `json:"estimated_grams"`
	Quantity       int     `json:"quantity"`
	RatePerGram    float64 `json:"rate_per_gram"`
	PrintHours     float64 `json:"print_hours"`
	LayerHeightMM  float64 `json:"layer_height_mm"`
	InfillPercent  int     `json:"infill_percent"`
}

// CompleteOrderRequest is the body of POST /orders/:id/complete. Each result
// carries the measured weight of one item and optionally the printer that
// produced it.
type CompleteOrderRequest struct {
	Results        []ItemResultRequest `json:"results"`
	AmountReceived float64             `json:"amount_received"`
}

// ItemResultRequest is one item's production outcome.
type ItemResultRequest struct {
	ItemID      string  `json:"item_id"`
	ActualGrams float64 `json:"actual_grams"`
	PrintHours  float64 `json:"print_hours"`
	PrinterID   string  `json:"printer_id,omitempty"`
}

// TotalsResponse is the customer-facing money breakdown of an order.
type TotalsResponse struct {
	BaseTotal           float64 `json:"base_total"`
	ActualTotal         float64 `json:"actual_total"`
	DiscountAmount      float64 `json:"discount_amount"`
	DiscountPercent     float64 `json:"discount_percent"`
	ToleranceDiscount   float64 `json:"tolerance_discount"`
	OrderDiscountAmount float64 `json:"order_discount_amount"`
	Shipping            float64 `json:"shipping"`
	Fee                 float64 `json:"fee"`
	GrandTotal          float64 `json:"grand_total"`
	RoundingLoss        float64 `json:"rounding_loss"`
	OutOfToleranceItems int     `json:"out_of_tolerance_items"`
}

// CostsResponse is the internal cost attribution of an order.
type CostsResponse struct {
	MaterialCost         float64 `json:"material_cost"`
	SpoolAcquisitionCost float64 `json:"spool_acquisition_cost"`
	ElectricityCost      float64 `json:"electricity_cost"`
	DepreciationCost     float64 `json:"depreciation_cost"`
	Profit               float64 `json:"profit"`
}

// OrderTotalsResponse is the body of GET /orders/:id/totals.
type OrderTotalsResponse struct {
	OrderID     string         `json:"order_id"`
	OrderNumber string         `json:"order_number"`
	Status      string         `json:"status"`
	Totals      TotalsResponse `json:"totals"`
	Costs       CostsResponse  `json:"costs"`
}

// StatisticsResponse is the body of GET /statistics.
type StatisticsResponse struct {
	TotalOrders     int `json:"total_orders"`
	CompletedOrders int `json:"completed_orders"`
	ActiveOrders    int `json:"active_orders"`
	CancelledOrders int `json:"cancelled_orders"`

	Revenue       float64 `json:"revenue"`
	ShippingTotal float64 `json:"shipping_total"`
	FeeTotal      float64 `json:"fee_total"`
	MaterialCost  float64 `json:"material_cost"`
	Profit        float64 `json:"profit"`
	RoundingLoss  float64 `json:"rounding_loss"`

	ActiveSpools           int     `json:"active_spools"`
	FilamentRemainingGrams float64 `json:"filament_remaining_grams"`
	FilamentUsedGrams      float64 `json:"filament_used_grams"`
	WasteGrams             float64 `json:"waste_grams"`

	PrintHours    float64 `json:"print_hours"`
	NozzleChanges int     `json:"nozzle_changes"`
}

// toTotalsResponse converts pricing totals to the wire representation.
func toTotalsResponse(t pricing.Totals) TotalsResponse {
	return TotalsResponse{
		BaseTotal:           t.BaseTotal,
		ActualTotal:         t.ActualTotal,
		DiscountAmount:      t.DiscountAmount,
		DiscountPercent:     t.DiscountPercent,
		ToleranceDiscount:   t.ToleranceDiscount,
		OrderDiscountAmount: t.OrderDiscountAmount,
		Shipping:            t.Shipping,
		Fee:                 t.Fee,
		GrandTotal:          t.GrandTotal,
		RoundingLoss:        t.RoundingLoss,
		OutOfToleranceItems: t.OutOfToleranceItems,
	}
}

// toCostsResponse converts pricing costs to the wire representation.
func toCostsResponse(c pricing.Costs) CostsResponse {
	return CostsResponse{
		MaterialCost:         c.MaterialCost,
		SpoolAcquisitionCost: c.SpoolAcquisitionCost,
		ElectricityCost:      c.ElectricityCost,
		DepreciationCost:     c.DepreciationCost,
		Profit:               c.Profit,
	}
}

// parsePaymentMethod maps the wire representation to the pricing enum.
func parsePaymentMethod(s string) (pricing.PaymentMethod, error) {
	switch s {
	case "Cash":
		return pricing.PaymentCash, nil
	case "Vodafone":
		return pricing.PaymentVodafone, nil
	case "InstaPay":
		return pricing.PaymentInstaPay, nil
	default:
		return pricing.PaymentUnknown, errs.NewValueIsInvalidError("payment_method")
	}
}

// parseCategory maps the wire representation to the spool category enum.
func parseCategory(s string) (spool.Category, error) {
	switch s {
	case "Standard":
		return spool.CategoryStandard, nil
	case "Remaining":
		return spool.CategoryRemaining, nil
	default:
		return spool.CategoryUnknown, errs.NewValueIsInvalidError("category")
	}
}
