package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer_ContactValidation(t *testing.T) {
	cases := []struct {
		contact string
		valid   bool
	}{
		{"77001112233", true},
		{"0123456789", true},
		{"12345", false},
		{"abcde12345", false},
		{"", false},
		{"+7700111223", false},
		{"7700 111 2233", false},
		{"١٢٣٤٥٦٧٨٩٠", false},
	}

	for _, tc := range cases {
		t.Run(tc.contact, func(t *testing.T) {
			customer, err := NewCustomer("1", "Aigerim", tc.contact)
			if tc.valid {
				require.NoError(t, err)
				assert.Equal(t, tc.contact, customer.Contact())
				return
			}
			assert.ErrorIs(t, err, ErrInvalidData)
			assert.Nil(t, customer)
		})
	}
}

func TestCustomer_CartIsSharedReference(t *testing.T) {
	customer, err := NewCustomer("1", "Aigerim", "77001112233")
	require.NoError(t, err)

	item, err := NewItem("1", "Laptop", 10, 5)
	require.NoError(t, err)
	require.NoError(t, customer.Cart().AddLine(item, 2))
	assert.Equal(t, 1, customer.Cart().Len())

	customer.resetCart()
	assert.True(t, customer.Cart().IsEmpty())
}
