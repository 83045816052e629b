package pricing_test

import (
	"testing"

	"printshop/internal/core/domain/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const delta = 1e-9

func TestPolicy(t *testing.T) {
	t.Run("default policy is valid", func(t *testing.T) {
		require.NoError(t, pricing.DefaultPolicy().Validate())
	})

	t.Run("rejects zero version", func(t *testing.T) {
		p := pricing.DefaultPolicy()
		p.Version = 0

		require.Error(t, p.Validate())
	})

	t.Run("rejects inverted clamp bounds", func(t *testing.T) {
		p := pricing.DefaultPolicy()
		p.VodafoneFeeMin = 20
		p.VodafoneFeeMax = 1

		require.Error(t, p.Validate())
	})
}

func TestDiscountPercent(t *testing.T) {
	policy := pricing.DefaultPolicy()

	tests := []struct {
		name  string
		grams float64
		qty   int
		rate  float64
		want  float64
	}{
		{"ceiling rate gives zero discount", 100, 1, 4.0, 0},
		{"rate below ceiling gives positive discount", 100, 2, 3.0, 25},
		{"reference scenario 182g at 2.75", 182, 1, 2.75, 31.25},
		{"zero weight gives zero discount", 0, 5, 2.0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pricing.DiscountPercent(tt.grams, tt.qty, tt.rate, policy)

			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, delta)
		})
	}

	t.Run("negative rate fails with invalid rate", func(t *testing.T) {
		_, err := pricing.DiscountPercent(100, 1, -1, policy)

		require.ErrorIs(t, err, pricing.ErrRateIsInvalid)
	})

	t.Run("rate above ceiling gives negative discount", func(t *testing.T) {
		got, err := pricing.DiscountPercent(100, 1, 5.0, policy)

		require.NoError(t, err)
		assert.InDelta(t, -25, got, delta)
	})
}

func TestPaymentFee(t *testing.T) {
	policy := pricing.DefaultPolicy()

	tests := []struct {
		name   string
		method pricing.PaymentMethod
		amount float64
		want   float64
	}{
		{"cash is always free", pricing.PaymentCash, 10000, 0},
		{"vodafone clamps small amounts to minimum", pricing.PaymentVodafone, 100, 1.00},
		{"vodafone mid range uses half percent", pricing.PaymentVodafone, 1000, 5.00},
		{"vodafone caps at fifteen", pricing.PaymentVodafone, 10000, 15.00},
		{"instapay clamps small amounts to fifty piasters", pricing.PaymentInstaPay, 100, 0.50},
		{"instapay mid range uses tenth of a percent", pricing.PaymentInstaPay, 10000, 10.00},
		{"instapay caps at twenty", pricing.PaymentInstaPay, 30000, 20.00},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pricing.PaymentFee(tt.method, tt.amount, policy)

			assert.InDelta(t, tt.want, got, delta)
		})
	}

	t.Run("fee is non-decreasing up to the cap", func(t *testing.T) {
		prev := 0.0
		for amount := 100.0; amount <= 40000; amount += 100 {
			fee := pricing.PaymentFee(pricing.PaymentInstaPay, amount, policy)
			assert.GreaterOrEqual(t, fee, prev)
			prev = fee
		}
		assert.InDelta(t, policy.InstaPayFeeMax, prev, delta)
	})
}

func TestToleranceDiscount(t *testing.T) {
	policy := pricing.DefaultPolicy()

	t.Run("overshoot inside the band grants one gram per unit", func(t *testing.T) {
		discount, outOfTolerance := pricing.ToleranceDiscount(182, 185, 2, 2.75, policy)

		assert.InDelta(t, 5.5, discount, delta)
		assert.False(t, outOfTolerance)
	})

	t.Run("overshoot beyond the band is flagged, not discounted", func(t *testing.T) {
		discount, outOfTolerance := pricing.ToleranceDiscount(182, 188, 1, 2.75, policy)

		assert.InDelta(t, 0, discount, delta)
		assert.True(t, outOfTolerance)
	})

	t.Run("exact weight gets no concession", func(t *testing.T) {
		discount, outOfTolerance := pricing.ToleranceDiscount(182, 182, 1, 2.75, policy)

		assert.InDelta(t, 0, discount, delta)
		assert.False(t, outOfTolerance)
	})

	t.Run("underweight gets no concession", func(t *testing.T) {
		discount, outOfTolerance := pricing.ToleranceDiscount(182, 178, 1, 2.75, policy)

		assert.InDelta(t, 0, discount, delta)
		assert.False(t, outOfTolerance)
	})

	t.Run("unmeasured weight gets no concession", func(t *testing.T) {
		discount, outOfTolerance := pricing.ToleranceDiscount(182, 0, 1, 2.75, policy)

		assert.InDelta(t, 0, discount, delta)
		assert.False(t, outOfTolerance)
	})
}

func TestRoundingLoss(t *testing.T) {
	tests := []struct {
		name     string
		total    float64
		received float64
		want     float64
	}{
		{"shortfall is a loss", 500.5, 500, 0.5},
		{"exact payment is no loss", 500, 500, 0},
		{"overpayment is not a negative loss", 500, 510, 0},
		{"unset payment is no loss", 500, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, pricing.RoundingLoss(tt.total, tt.received), delta)
		})
	}
}

func TestComputeTotals(t *testing.T) {
	policy := pricing.DefaultPolicy()

	t.Run("reference scenario 182g at 2.75", func(t *testing.T) {
		order := pricing.OrderSnapshot{
			Items: []pricing.ItemSnapshot{
				{EstimatedGrams: 182, Quantity: 1, RatePerGram: 2.75, Hours: 10, SpoolID: "s1", SpoolIsNew: true},
			},
			PaymentMethod: pricing.PaymentCash,
		}

		totals, err := pricing.ComputeTotals(order, policy)

		require.NoError(t, err)
		assert.InDelta(t, 728.0, totals.BaseTotal, delta)
		assert.InDelta(t, 500.5, totals.ActualTotal, delta)
		assert.InDelta(t, 227.5, totals.DiscountAmount, delta)
		assert.InDelta(t, 31.25, totals.DiscountPercent, delta)
		assert.InDelta(t, 0, totals.Fee, delta)
		assert.InDelta(t, 500.5, totals.GrandTotal, delta)
	})

	t.Run("tolerance discount flows into the actual total", func(t *testing.T) {
		order := pricing.OrderSnapshot{
			Items: []pricing.ItemSnapshot{
				{EstimatedGrams: 182, ActualGrams: 185, Quantity: 1, RatePerGram: 2.75},
			},
			PaymentMethod: pricing.PaymentCash,
		}

		totals, err := pricing.ComputeTotals(order, policy)

		require.NoError(t, err)
		// Billed at 185g minus the one gram concession.
		assert.InDelta(t, 2.75, totals.ToleranceDiscount, delta)
		assert.InDelta(t, 185*2.75-2.75, totals.ActualTotal, delta)
		assert.Equal(t, 0, totals.OutOfToleranceItems)
	})

	t.Run("overshoot beyond the band surfaces as a flag", func(t *testing.T) {
		order := pricing.OrderSnapshot{
			Items: []pricing.ItemSnapshot{
				{EstimatedGrams: 182, ActualGrams: 188, Quantity: 1, RatePerGram: 2.75},
			},
			PaymentMethod: pricing.PaymentCash,
		}

		totals, err := pricing.ComputeTotals(order, policy)

		require.NoError(t, err)
		assert.InDelta(t, 0, totals.ToleranceDiscount, delta)
		assert.Equal(t, 1, totals.OutOfToleranceItems)
		assert.InDelta(t, 188*2.75, totals.ActualTotal, delta)
	})

	t.Run("manual order discount applies after the rate discount", func(t *testing.T) {
		order := pricing.OrderSnapshot{
			Items: []pricing.ItemSnapshot{
				{EstimatedGrams: 100, Quantity: 1, RatePerGram: 4.0},
			},
			OrderDiscountPercent: 10,
			PaymentMethod:        pricing.PaymentCash,
		}

		totals, err := pricing.ComputeTotals(order, policy)

		require.NoError(t, err)
		assert.InDelta(t, 400.0, totals.ActualTotal, delta)
		assert.InDelta(t, 40.0, totals.OrderDiscountAmount, delta)
		assert.InDelta(t, 360.0, totals.GrandTotal, delta)
	})

	t.Run("fee is computed on the shipped subtotal", func(t *testing.T) {
		order := pricing.OrderSnapshot{
			Items: []pricing.ItemSnapshot{
				{EstimatedGrams: 100, Quantity: 1, RatePerGram: 4.0},
			},
			ShippingCost:  100,
			PaymentMethod: pricing.PaymentVodafone,
		}

		totals, err := pricing.ComputeTotals(order, policy)

		require.NoError(t, err)
		// (400 + 100) * 0.5% = 2.50
		assert.InDelta(t, 2.50, totals.Fee, delta)
		assert.InDelta(t, 502.50, totals.GrandTotal, delta)
	})

	t.Run("negative rate fails the whole computation", func(t *testing.T) {
		order := pricing.OrderSnapshot{
			Items: []pricing.ItemSnapshot{{EstimatedGrams: 100, Quantity: 1, RatePerGram: -2}},
		}

		_, err := pricing.ComputeTotals(order, policy)

		require.ErrorIs(t, err, pricing.ErrRateIsInvalid)
	})

	t.Run("identical inputs yield identical outputs", func(t *testing.T) {
		order := pricing.OrderSnapshot{
			Items: []pricing.ItemSnapshot{
				{EstimatedGrams: 182, ActualGrams: 184, Quantity: 3, RatePerGram: 3.25, Hours: 7},
			},
			ShippingCost:   55,
			PaymentMethod:  pricing.PaymentInstaPay,
			AmountReceived: 1800,
		}

		first, err := pricing.ComputeTotals(order, policy)
		require.NoError(t, err)
		second, err := pricing.ComputeTotals(order, policy)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}

func TestComputeCosts(t *testing.T) {
	policy := pricing.DefaultPolicy()

	t.Run("splits reference material cost from flat acquisition", func(t *testing.T) {
		order := pricing.OrderSnapshot{
			Items: []pricing.ItemSnapshot{
				{EstimatedGrams: 500, Quantity: 1, RatePerGram: 4.0, Hours: 20, SpoolID: "new-1", SpoolIsNew: true},
				{EstimatedGrams: 100, Quantity: 1, RatePerGram: 4.0, Hours: 4, SpoolID: "rem-1", SpoolIsNew: false},
			},
			PaymentMethod: pricing.PaymentCash,
		}

		costs := pricing.ComputeCosts(order, policy)

		assert.InDelta(t, 600*0.84, costs.MaterialCost, delta)
		assert.InDelta(t, 840.0, costs.SpoolAcquisitionCost, delta)
		assert.InDelta(t, 24*0.31, costs.ElectricityCost, delta)
		assert.InDelta(t, 0.6*50, costs.DepreciationCost, delta)
	})

	t.Run("one new spool is charged once across items", func(t *testing.T) {
		order := pricing.OrderSnapshot{
			Items: []pricing.ItemSnapshot{
				{EstimatedGrams: 100, Quantity: 1, RatePerGram: 4.0, SpoolID: "new-1", SpoolIsNew: true},
				{EstimatedGrams: 200, Quantity: 1, RatePerGram: 4.0, SpoolID: "new-1", SpoolIsNew: true},
			},
		}

		costs := pricing.ComputeCosts(order, policy)

		assert.InDelta(t, 840.0, costs.SpoolAcquisitionCost, delta)
	})

	t.Run("research orders always report zero profit", func(t *testing.T) {
		rates := []float64{0, 1.5, 4.0, 9.99}
		for _, rate := range rates {
			order := pricing.OrderSnapshot{
				Items: []pricing.ItemSnapshot{
					{EstimatedGrams: 250, Quantity: 2, RatePerGram: rate, Hours: 12},
				},
				IsRnD:         true,
				PaymentMethod: pricing.PaymentCash,
			}

			costs := pricing.ComputeCosts(order, policy)

			assert.InDelta(t, 0, costs.Profit, delta)
		}
	})

	t.Run("research orders are billed at cost", func(t *testing.T) {
		order := pricing.OrderSnapshot{
			Items: []pricing.ItemSnapshot{
				{EstimatedGrams: 250, Quantity: 2, RatePerGram: 4.0, Hours: 12},
			},
			IsRnD:         true,
			PaymentMethod: pricing.PaymentCash,
		}

		costs := pricing.ComputeCosts(order, policy)
		totals, err := pricing.ComputeTotals(order, policy)

		require.NoError(t, err)
		wantCost := costs.MaterialCost + costs.ElectricityCost + costs.DepreciationCost
		assert.InDelta(t, wantCost, totals.GrandTotal, delta)
	})

	t.Run("profit is subtotal minus reference costs", func(t *testing.T) {
		order := pricing.OrderSnapshot{
			Items: []pricing.ItemSnapshot{
				{EstimatedGrams: 100, Quantity: 1, RatePerGram: 4.0, Hours: 10},
			},
			PaymentMethod: pricing.PaymentCash,
		}

		costs := pricing.ComputeCosts(order, policy)

		want := 400.0 - 100*0.84 - 10*0.31 - 0.1*50
		assert.InDelta(t, want, costs.Profit, delta)
	})
}
