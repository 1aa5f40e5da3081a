package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePaymentMethod(t *testing.T) {
	for _, value := range []string{"CASH", "CREDIT_CARD", "DEBIT_CARD", "BANK_TRANSFER"} {
		method, err := ParsePaymentMethod(value)
		require.NoError(t, err)
		assert.Equal(t, value, method.String())
	}

	_, err := ParsePaymentMethod("cash")
	require.ErrorIs(t, err, ErrValidation)

	_, err = ParsePaymentMethod("CRYPTO")
	require.ErrorIs(t, err, ErrValidation)
}
