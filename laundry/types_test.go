package laundry

import (
	"testing"

	"github.com/carlmjohnson/be"
)

func TestRupiah(t *testing.T) {
	tests := []struct {
		name     string
		amount   int64
		expected string
	}{
		{
			name:     "zero",
			amount:   0,
			expected: "Rp0",
		},
		{
			name:     "small amount",
			amount:   7000,
			expected: "Rp7.000",
		},
		{
			name:     "grouped thousands",
			amount:   150000,
			expected: "Rp150.000",
		},
		{
			name:     "millions",
			amount:   1250000,
			expected: "Rp1.250.000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			be.Equal(t, tt.expected, Rupiah(tt.amount))
		})
	}
}

func TestPaymentStatusValid(t *testing.T) {
	be.True(t, Unpaid.Valid())
	be.True(t, Paid.Valid())
	be.False(t, PaymentStatus("").Valid())
	be.False(t, PaymentStatus("pending").Valid())
}

func TestStatusValid(t *testing.T) {
	for _, status := range Statuses() {
		be.True(t, status.Valid())
	}

	be.False(t, Status("").Valid())
	be.False(t, Status("cancelled").Valid())
}

func TestStatusesOrder(t *testing.T) {
	statuses := Statuses()

	be.Equal(t, 4, len(statuses))
	be.Equal(t, StatusNew, statuses[0])
	be.Equal(t, StatusInProgress, statuses[1])
	be.Equal(t, StatusDone, statuses[2])
	be.Equal(t, StatusPickedUp, statuses[3])
}
