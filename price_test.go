package main

import (
	"testing"

	"github.com/carlmjohnson/be"

	"github.com/adrianhalim/laundrytui/laundry"
)

func TestComputePrice(t *testing.T) {
	expressWash := &laundry.Package{ID: "p3", Name: "Express Wash", Price: 50000, Type: "kiloan"}

	tests := []struct {
		name     string
		pkg      *laundry.Package
		qty      string
		expected int64
		ok       bool
	}{
		{
			name:     "unit price times qty",
			pkg:      expressWash,
			qty:      "3",
			expected: 150000,
			ok:       true,
		},
		{
			name:     "fractional kilos round up",
			pkg:      expressWash,
			qty:      "2.2",
			expected: 150000,
			ok:       true,
		},
		{
			name:     "surrounding whitespace",
			pkg:      expressWash,
			qty:      " 1 ",
			expected: 50000,
			ok:       true,
		},
		{
			name: "no package selected",
			pkg:  nil,
			qty:  "3",
			ok:   false,
		},
		{
			name: "empty qty",
			pkg:  expressWash,
			qty:  "",
			ok:   false,
		},
		{
			name: "non-numeric qty",
			pkg:  expressWash,
			qty:  "abc",
			ok:   false,
		},
		{
			name: "negative qty",
			pkg:  expressWash,
			qty:  "-2",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, ok := computePrice(tt.pkg, tt.qty)
			be.Equal(t, tt.ok, ok)
			if tt.ok {
				be.Equal(t, tt.expected, total)
			}
		})
	}
}
