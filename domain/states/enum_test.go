package states

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStateEnum(t *testing.T) {
	require.Equal(t, "Review", Review.StateName())
	require.Equal(t, 1, Review.StateIndex())
	require.Equal(t, "Checkout_Success", CheckoutSuccess.StateName())
	require.Equal(t, 40, CheckoutSuccess.StateIndex())
	require.Len(t, Review.Values(), 5)
}

func TestFromIndex(t *testing.T) {
	for _, index := range []int{1, 10, 20, 30, 40} {
		enumState, err := FromIndex(index)
		require.NoError(t, err)
		require.Equal(t, index, enumState.StateIndex())
	}

	_, err := FromIndex(2)
	require.Error(t, err)
}
