// Package pricing is the pure costing engine for print-shop orders. Every
// function is deterministic and side-effect free: identical snapshots and
// policy always produce identical output, which keeps the whole engine
// testable with value tables.
package pricing

import (
	"errors"
	"fmt"
)

// ErrRateIsInvalid rejects negative per-gram rates at the input boundary.
// Rates are money; they are never silently corrected.
var ErrRateIsInvalid = errors.New("rate per gram is invalid")

// ItemSnapshot captures the pricing-relevant view of one order item.
type ItemSnapshot struct {
	// EstimatedGrams is the slicer estimate per unit.
	EstimatedGrams float64
	// ActualGrams is the measured weight per unit after printing, 0 when
	// not yet measured.
	ActualGrams float64
	// Quantity of identical units.
	Quantity int
	// RatePerGram in EGP, at or below the policy ceiling.
	RatePerGram float64
	// Hours of print time per unit.
	Hours float64
	// SpoolID is the weak reference to the consuming spool.
	SpoolID string
	// SpoolIsNew marks spools purchased as a unit, which carry the flat
	// acquisition cost.
	SpoolIsNew bool
}

// BillableGrams returns the weight a unit is billed at: the measured weight
// once known, the estimate before that.
func (i ItemSnapshot) BillableGrams() float64 {
	if i.ActualGrams > 0 {
		return i.ActualGrams
	}
	return i.EstimatedGrams
}

// OrderSnapshot captures the pricing-relevant view of a whole order.
type OrderSnapshot struct {
	Items                []ItemSnapshot
	ShippingCost         float64
	PaymentMethod        PaymentMethod
	OrderDiscountPercent float64
	AmountReceived       float64
	// IsRnD zeroes profit and bills the order at cost.
	IsRnD bool
}

// Totals is the customer-facing money breakdown of an order.
type Totals struct {
	BaseTotal           float64
	ActualTotal         float64
	DiscountAmount      float64
	DiscountPercent     float64
	ToleranceDiscount   float64
	OrderDiscountAmount float64
	Shipping            float64
	Fee                 float64
	GrandTotal          float64
	RoundingLoss        float64
	OutOfToleranceItems int
}

// Costs is the internal cost attribution of an order.
type Costs struct {
	// MaterialCost is grams consumed at the normalized reference rate.
	MaterialCost float64
	// SpoolAcquisitionCost is the flat per-spool price of every new spool
	// the order consumes from, reported separately from MaterialCost.
	SpoolAcquisitionCost float64
	ElectricityCost      float64
	DepreciationCost     float64
	Profit               float64
}

// BasePrice returns the price of an item at the policy ceiling rate.
func BasePrice(grams float64, quantity int, policy Policy) float64 {
	return grams * float64(quantity) * policy.CeilingRatePerGram
}

// ActualPrice returns the price of an item at its negotiated rate.
func ActualPrice(grams float64, quantity int, rate float64) float64 {
	return grams * float64(quantity) * rate
}

// DiscountPercent returns the automatic discount implied by pricing below
// the ceiling rate, as a percentage of the base price. It is 0 when the base
// price is 0 and fails with ErrRateIsInvalid for negative rates.
func DiscountPercent(grams float64, quantity int, rate float64, policy Policy) (float64, error) {
	if rate < 0 {
		return 0, fmt.Errorf("%w: %v is negative", ErrRateIsInvalid, rate)
	}

	base := BasePrice(grams, quantity, policy)
	if base == 0 {
		return 0, nil
	}

	return (base - ActualPrice(grams, quantity, rate)) / base * 100, nil
}

// ToleranceDiscount grants a one-gram-per-unit concession when the printed
// weight overshoots the estimate by 1 to 5 grams. Overshoot beyond the band
// is an out-of-tolerance condition reported to the operator, never a silent
// discount. Underweight prints get no concession either way.
func ToleranceDiscount(estimatedGrams, actualGrams float64, quantity int, rate float64, policy Policy) (discount float64, outOfTolerance bool) {
	if actualGrams <= 0 {
		return 0, false
	}

	diff := actualGrams - estimatedGrams
	if diff >= policy.ToleranceMinGrams && diff <= policy.ToleranceMaxGrams {
		return rate * float64(quantity), false
	}
	if diff > policy.ToleranceMaxGrams {
		return 0, true
	}
	return 0, false
}

// PaymentFee returns the transaction fee for settling amount with the given
// method. Fees are clamped to their policy bounds, so the fee is
// monotonically non-decreasing in the amount until the cap, then constant.
func PaymentFee(method PaymentMethod, amount float64, policy Policy) float64 {
	switch method {
	case PaymentVodafone:
		return clamp(amount*policy.VodafoneFeeRate, policy.VodafoneFeeMin, policy.VodafoneFeeMax)
	case PaymentInstaPay:
		return clamp(amount*policy.InstaPayFeeRate, policy.InstaPayFeeMin, policy.InstaPayFeeMax)
	default:
		return 0
	}
}

// ElectricityCost returns the power cost of the given print hours.
func ElectricityCost(hours float64, policy Policy) float64 {
	return hours * policy.ElectricityRatePerHour
}

// DepreciationCost returns printer wear amortized over printed kilograms.
func DepreciationCost(grams float64, policy Policy) float64 {
	return grams / 1000 * policy.DepreciationPerKg
}

// RoundingLoss returns the shortfall between the invoiced total and what the
// customer actually paid. Overpayment is not a negative loss.
func RoundingLoss(total, amountReceived float64) float64 {
	if amountReceived <= 0 {
		return 0
	}
	loss := total - amountReceived
	if loss < 0 {
		return 0
	}
	return loss
}

// ComputeTotals prices a whole order snapshot. The sequence mirrors the shop
// workflow: per-item tolerance concessions, the automatic rate discount
// against the ceiling, the manual order-level discount, then the payment fee
// on the shipped subtotal.
//
// R&D orders are billed at cost: material, electricity and depreciation
// replace the item subtotal and the manual discount is ignored. Fee and
// tolerance logic still run; only profit is zeroed.
func ComputeTotals(order OrderSnapshot, policy Policy) (Totals, error) {
	var t Totals
	t.Shipping = order.ShippingCost

	for _, item := range order.Items {
		if item.RatePerGram < 0 {
			return Totals{}, fmt.Errorf("%w: %v is negative", ErrRateIsInvalid, item.RatePerGram)
		}

		grams := item.BillableGrams()
		discount, outOfTolerance := ToleranceDiscount(
			item.EstimatedGrams, item.ActualGrams, item.Quantity, item.RatePerGram, policy)
		if outOfTolerance {
			t.OutOfToleranceItems++
		}

		t.ToleranceDiscount += discount
		t.BaseTotal += BasePrice(grams, item.Quantity, policy)
		t.ActualTotal += ActualPrice(grams, item.Quantity, item.RatePerGram) - discount
	}

	if t.BaseTotal > 0 {
		t.DiscountAmount = t.BaseTotal - t.ActualTotal
		t.DiscountPercent = t.DiscountAmount / t.BaseTotal * 100
	}

	finalSubtotal := t.ActualTotal
	if order.OrderDiscountPercent > 0 {
		t.OrderDiscountAmount = finalSubtotal * order.OrderDiscountPercent / 100
		finalSubtotal -= t.OrderDiscountAmount
	}

	if order.IsRnD {
		costs := ComputeCosts(order, policy)
		finalSubtotal = costs.MaterialCost + costs.ElectricityCost + costs.DepreciationCost
		t.OrderDiscountAmount = 0
	}

	t.Fee = PaymentFee(order.PaymentMethod, finalSubtotal+order.ShippingCost, policy)
	t.GrandTotal = finalSubtotal + order.ShippingCost + t.Fee
	t.RoundingLoss = RoundingLoss(t.GrandTotal, order.AmountReceived)

	return t, nil
}

// ComputeCosts attributes internal costs to an order snapshot. Material cost
// uses the normalized reference rate; the flat acquisition price of new
// spools is reported separately because the spool was purchased as a unit.
// Used and remaining spools carry no acquisition cost: it is sunk.
func ComputeCosts(order OrderSnapshot, policy Policy) Costs {
	var c Costs
	var totalGrams, totalHours float64

	newSpools := make(map[string]struct{})
	for _, item := range order.Items {
		qty := float64(item.Quantity)
		totalGrams += item.BillableGrams() * qty
		totalHours += item.Hours * qty

		if item.SpoolIsNew && item.SpoolID != "" {
			newSpools[item.SpoolID] = struct{}{}
		}
	}

	c.MaterialCost = totalGrams * policy.ReferenceCostPerGram
	c.SpoolAcquisitionCost = float64(len(newSpools)) * policy.SpoolUnitPrice
	c.ElectricityCost = ElectricityCost(totalHours, policy)
	c.DepreciationCost = DepreciationCost(totalGrams, policy)

	if order.IsRnD {
		c.Profit = 0
		return c
	}

	totals, err := ComputeTotals(order, policy)
	if err != nil {
		// Negative rates were rejected before costs are ever computed;
		// treat the order as contributing no profit.
		return c
	}
	finalSubtotal := totals.ActualTotal - totals.OrderDiscountAmount
	c.Profit = finalSubtotal - c.MaterialCost - c.ElectricityCost - c.DepreciationCost
	return c
}

func clamp(x, lo, hi float64) float64 {
	return min(max(x, lo), hi)
}
