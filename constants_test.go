package main

import (
	"testing"

	"github.com/carlmjohnson/be"
)

func TestSessionStateString(t *testing.T) {
	tests := []struct {
		name     string
		state    sessionState
		expected string
	}{
		{
			name:     "transactions state",
			state:    transactions,
			expected: "transactions",
		},
		{
			name:     "transaction modal state",
			state:    transactionModal,
			expected: "transaction form",
		},
		{
			name:     "customers state",
			state:    customersState,
			expected: "customers",
		},
		{
			name:     "packages state",
			state:    packagesState,
			expected: "packages",
		},
		{
			name:     "overview state",
			state:    overviewState,
			expected: "overview",
		},
		{
			name:     "config view state",
			state:    configView,
			expected: "configuration",
		},
		{
			name:     "loading state",
			state:    loading,
			expected: "loading",
		},
		{
			name:     "error state",
			state:    errorState,
			expected: "error",
		},
		{
			name:     "unknown state",
			state:    sessionState(999),
			expected: "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.state.String()
			be.Equal(t, tt.expected, result)
		})
	}
}

func TestSessionStateConstants(t *testing.T) {
	// Test that session state constants are defined and have different values
	be.True(t, transactions != transactionModal)
	be.True(t, transactionModal != customersState)
	be.True(t, customersState != packagesState)
	be.True(t, packagesState != overviewState)
	be.True(t, overviewState != configView)
	be.True(t, configView != loading)
	be.True(t, loading != errorState)

	// Test that transactions is 0 (first iota value)
	be.Equal(t, sessionState(0), transactions)
}
