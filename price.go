package main

import (
	"math"
	"strconv"
	"strings"

	"github.com/adrianhalim/laundrytui/laundry"
)

// computePrice derives a bill line total from the selected package and the
// raw quantity input. Fractional quantities are rounded up. ok is false
// when no package is selected or the quantity does not parse as a
// non-negative number; callers must keep the previous total in that case
// rather than clearing it.
func computePrice(pkg *laundry.Package, qty string) (int64, bool) {
	if pkg == nil {
		return 0, false
	}

	q, err := strconv.ParseFloat(strings.TrimSpace(qty), 64)
	if err != nil || q < 0 || math.IsInf(q, 0) || math.IsNaN(q) {
		return 0, false
	}

	return pkg.Price * int64(math.Ceil(q)), true
}
