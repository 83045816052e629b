package cmd

import (
	"fmt"
	"strconv"

	"printshop/internal/core/domain/pricing"
)

type Config struct {
	HTTPPort      string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSslMode     string
	PricingPolicy pricing.Policy
}

// PolicyFromEnv builds the pricing policy from environment overrides applied
// on top of the defaults. lookup returns the raw value for a key, empty when
// unset; unset keys keep their default constant.
func PolicyFromEnv(lookup func(string) string) (pricing.Policy, error) {
	policy := pricing.DefaultPolicy()

	overrides := []struct {
		key    string
		target *float64
	}{
		{"PRICING_CEILING_RATE_PER_GRAM", &policy.CeilingRatePerGram},
		{"PRICING_REFERENCE_COST_PER_GRAM", &policy.ReferenceCostPerGram},
		{"PRICING_SPOOL_UNIT_PRICE", &policy.SpoolUnitPrice},
		{"PRICING_VODAFONE_FEE_RATE", &policy.VodafoneFeeRate},
		{"PRICING_VODAFONE_FEE_MIN", &policy.VodafoneFeeMin},
		{"PRICING_VODAFONE_FEE_MAX", &policy.VodafoneFeeMax},
		{"PRICING_INSTAPAY_FEE_RATE", &policy.InstaPayFeeRate},
		{"PRICING_INSTAPAY_FEE_MIN", &policy.InstaPayFeeMin},
		{"PRICING_INSTAPAY_FEE_MAX", &policy.InstaPayFeeMax},
		{"PRICING_ELECTRICITY_RATE_PER_HOUR", &policy.ElectricityRatePerHour},
		{"PRICING_DEPRECIATION_PER_KG", &policy.DepreciationPerKg},
		{"PRICING_TOLERANCE_MIN_GRAMS", &policy.ToleranceMinGrams},
		{"PRICING_TOLERANCE_MAX_GRAMS", &policy.ToleranceMaxGrams},
	}

	for _, override := range overrides {
		raw := lookup(override.key)
		if raw == "" {
			continue
		}
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return pricing.Policy{}, fmt.Errorf("%s: %w", override.key, err)
		}
		*override.target = parsed
	}

	if err := policy.Validate(); err != nil {
		return pricing.Policy{}, err
	}

	return policy, nil
}
