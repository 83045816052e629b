package customer_test

import (
	"testing"

	"printshop/internal/core/domain/model/customer"
	"printshop/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	t.Run("should create customer", func(t *testing.T) {
		c, err := customer.NewCustomer(kernel.NewUUID(), "Omar", "+20 100 000 0000")

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, "Omar", c.Name())
		assert.Equal(t, "+20 100 000 0000", c.Phone())
	})

	t.Run("phone is optional", func(t *testing.T) {
		c, err := customer.NewCustomer(kernel.NewUUID(), "Omar", "")

		require.NoError(t, err)
		assert.Empty(t, c.Phone())
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		c, err := customer.NewCustomer(kernel.NewUUID(), "", "")

		require.Error(t, err)
		assert.Nil(t, c)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var c customer.Customer

		assert.Equal(t, customer.ErrCustomerIsNotConstructed, c.Validate())
	})
}

func TestCustomer_Rename(t *testing.T) {
	t.Run("renames", func(t *testing.T) {
		c, err := customer.NewCustomer(kernel.NewUUID(), "Omar", "")
		require.NoError(t, err)

		require.NoError(t, c.Rename("Omar K."))

		assert.Equal(t, "Omar K.", c.Name())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		c, err := customer.NewCustomer(kernel.NewUUID(), "Omar", "")
		require.NoError(t, err)

		require.Error(t, c.Rename(""))
	})
}
