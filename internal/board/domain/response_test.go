package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResponseStatusTransitions(t *testing.T) {
	tests := []struct {
		from    ResponseStatus
		to      ResponseStatus
		allowed bool
	}{
		{ResponsePending, ResponseApproved, true},
		{ResponsePending, ResponseDeleted, true},
		{ResponsePending, ResponsePending, false},
		{ResponseApproved, ResponseApproved, false},
		{ResponseApproved, ResponseDeleted, false},
		{ResponseApproved, ResponsePending, false},
		{ResponseDeleted, ResponseApproved, false},
		{ResponseDeleted, ResponsePending, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			require.Equal(t, tt.allowed, tt.from.CanTransition(tt.to))
		})
	}
}

func TestResponseStatusTerminal(t *testing.T) {
	require.False(t, ResponsePending.Terminal())
	require.True(t, ResponseApproved.Terminal())
	require.True(t, ResponseDeleted.Terminal())
}

func TestResponseStatusValid(t *testing.T) {
	require.True(t, ResponsePending.Valid())
	require.True(t, ResponseApproved.Valid())
	require.True(t, ResponseDeleted.Valid())
	require.False(t, ResponseStatus("archived").Valid())
	require.False(t, ResponseStatus("").Valid())
}
