package cmd_test

import (
	"testing"

	"printshop/cmd"
	"printshop/internal/core/domain/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) func(string) string {
	return func(key string) string {
		return env[key]
	}
}

func TestPolicyFromEnv_Defaults(t *testing.T) {
	policy, err := cmd.PolicyFromEnv(lookupFrom(nil))

	require.NoError(t, err)
	assert.Equal(t, pricing.DefaultPolicy(), policy)
}

func TestPolicyFromEnv_Overrides(t *testing.T) {
	policy, err := cmd.PolicyFromEnv(lookupFrom(map[string]string{
		"PRICING_CEILING_RATE_PER_GRAM":     "5.25",
		"PRICING_ELECTRICITY_RATE_PER_HOUR": "0.45",
	}))

	require.NoError(t, err)
	assert.Equal(t, 5.25, policy.CeilingRatePerGram)
	assert.Equal(t, 0.45, policy.ElectricityRatePerHour)
	// Untouched keys keep their defaults.
	assert.Equal(t, pricing.DefaultPolicy().SpoolUnitPrice, policy.SpoolUnitPrice)
}

func TestPolicyFromEnv_RejectsMalformedValue(t *testing.T) {
	_, err := cmd.PolicyFromEnv(lookupFrom(map[string]string{
		"PRICING_SPOOL_UNIT_PRICE": "eight-forty",
	}))

	require.Error(t, err)
	assert.ErrorContains(t, err, "PRICING_SPOOL_UNIT_PRICE")
}

func TestPolicyFromEnv_RejectsInvalidPolicy(t *testing.T) {
	_, err := cmd.PolicyFromEnv(lookupFrom(map[string]string{
		"PRICING_CEILING_RATE_PER_GRAM": "-1",
	}))

	require.Error(t, err)
}
