package pricing

import (
	"errors"
	"fmt"

	"printshop/internal/pkg/errs"
)

// Policy is the versioned set of business pricing constants. The numbers are
// shop policy, not engine logic, so they live in one value that can be
// overridden through configuration and carried alongside historical orders.
type Policy struct {
	// Version identifies the constant set an order was priced with.
	Version int

	// CeilingRatePerGram is the reference ceiling rate in EGP per gram used
	// for the base price and the automatic rate discount.
	CeilingRatePerGram float64

	// ReferenceCostPerGram is the normalized material cost in EGP per gram,
	// distinct from the flat spool acquisition price.
	ReferenceCostPerGram float64

	// SpoolUnitPrice is the flat acquisition cost of a spool purchased as a
	// unit, attributed regardless of grams consumed.
	SpoolUnitPrice float64

	// Payment fee rates with their clamp bounds, in EGP.
	VodafoneFeeRate float64
	VodafoneFeeMin  float64
	VodafoneFeeMax  float64
	InstaPayFeeRate float64
	InstaPayFeeMin  float64
	InstaPayFeeMax  float64

	// ElectricityRatePerHour is the power cost in EGP per print hour.
	ElectricityRatePerHour float64

	// DepreciationPerKg amortizes printer purchase price over its expected
	// lifetime throughput, in EGP per kilogram printed.
	DepreciationPerKg float64

	// Tolerance band, in grams of overshoot per unit, inside which a one
	// gram concession per unit is granted.
	ToleranceMinGrams float64
	ToleranceMaxGrams float64
}

// DefaultPolicy returns version 1 of the shop's pricing constants:
// 4.0 EGP/g ceiling, 0.84 EGP/g reference cost, 840 EGP per new spool,
// the documented Vodafone and InstaPay fee clamps, 0.31 EGP per print hour
// and 50 EGP/kg depreciation (25000 EGP purchase over 500 kg lifetime).
func DefaultPolicy() Policy {
	return Policy{
		Version:                1,
		CeilingRatePerGram:     4.0,
		ReferenceCostPerGram:   0.84,
		SpoolUnitPrice:         840.0,
		VodafoneFeeRate:        0.005,
		VodafoneFeeMin:         1.0,
		VodafoneFeeMax:         15.0,
		InstaPayFeeRate:        0.001,
		InstaPayFeeMin:         0.50,
		InstaPayFeeMax:         20.0,
		ElectricityRatePerHour: 0.31,
		DepreciationPerKg:      50.0,
		ToleranceMinGrams:      1.0,
		ToleranceMaxGrams:      5.0,
	}
}

// Validate checks the policy for values that would corrupt every downstream
// calculation.
func (p Policy) Validate() error {
	var result error

	if p.Version < 1 {
		result = errors.Join(result, errs.NewVersionIsInvalidError("policy version"))
	}
	if p.CeilingRatePerGram <= 0 {
		result = errors.Join(result, errs.NewValueIsInvalidError("ceiling rate per gram"))
	}
	if p.ReferenceCostPerGram < 0 {
		result = errors.Join(result, errs.NewValueIsInvalidError("reference cost per gram"))
	}
	if p.SpoolUnitPrice < 0 {
		result = errors.Join(result, errs.NewValueIsInvalidError("spool unit price"))
	}
	if p.VodafoneFeeMin > p.VodafoneFeeMax {
		result = errors.Join(result, errs.NewValueIsOutOfRangeError(
			"vodafone fee min", p.VodafoneFeeMin, 0, p.VodafoneFeeMax))
	}
	if p.InstaPayFeeMin > p.InstaPayFeeMax {
		result = errors.Join(result, errs.NewValueIsOutOfRangeError(
			"instapay fee min", p.InstaPayFeeMin, 0, p.InstaPayFeeMax))
	}
	if p.ToleranceMinGrams > p.ToleranceMaxGrams {
		result = errors.Join(result, errs.NewValueIsOutOfRangeError(
			"tolerance min grams", p.ToleranceMinGrams, 0, p.ToleranceMaxGrams))
	}

	return result
}

// PaymentMethod identifies how a customer settles an order. Fee formulas are
// policy per method, which is why the type lives in the pricing package.
type PaymentMethod int

const (
	// PaymentUnknown represents an invalid or undefined method.
	PaymentUnknown PaymentMethod = iota

	// PaymentCash carries no fee.
	PaymentCash

	// PaymentVodafone is Vodafone Cash: 0.5% of the amount, clamped.
	PaymentVodafone

	// PaymentInstaPay is InstaPay: 0.1% of the amount, clamped.
	PaymentInstaPay
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		PaymentUnknown:  "Unknown",
		PaymentCash:     "Cash",
		PaymentVodafone: "Vodafone Cash",
		PaymentInstaPay: "InstaPay",
	}
}

// Validate checks that the method holds one of the defined values.
func (m PaymentMethod) Validate() error {
	if m != PaymentCash && m != PaymentVodafone && m != PaymentInstaPay {
		return errs.NewValueIsInvalidErrorWithCause("payment method is invalid",
			fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// String returns the human-readable name of the payment method.
func (m PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[m]; ok {
		return str
	}
	return "Unknown"
}
