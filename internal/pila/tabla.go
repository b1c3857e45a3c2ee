package pila

import (
	"fmt"
	"strings"
)

// DefaultRequiredDays is the business-day count applied when a NIT suffix is
// somehow missing from the bracket table. The shipped table covers every
// suffix 00-99, so this is a robustness fallback, not a reachable branch
// under current data.
const DefaultRequiredDays = 10

// bracketRanges encodes the PILA payment schedule (Decreto 1990 de 2016):
// the last two digits of the NIT select on which business day of the month
// the contribution is due.
var bracketRanges = []struct {
	from, to int // inclusive suffix range
	days     int // required business days
}{
	{0, 7, 2},
	{8, 14, 3},
	{15, 21, 4},
	{22, 28, 5},
	{29, 35, 6},
	{36, 42, 7},
	{43, 49, 8},
	{50, 56, 9},
	{57, 63, 10},
	{64, 69, 11},
	{70, 75, 12},
	{76, 81, 13},
	{82, 87, 14},
	{88, 93, 15},
	{94, 99, 16},
}

// tabla maps every two-digit suffix "00".."99" to its business-day count.
// Built once at init, read-only afterwards.
var tabla = buildTabla()

func buildTabla() map[string]int {
	m := make(map[string]int, 100)
	for _, r := range bracketRanges {
		for s := r.from; s <= r.to; s++ {
			m[fmt.Sprintf("%02d", s)] = r.days
		}
	}
	return m
}

// NitSuffix normalizes a NIT to its two-digit deadline key: keep decimal
// digits only, take the last two, left-pad with '0'.
func NitSuffix(nit string) string {
	var b strings.Builder
	for _, r := range nit {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) > 2 {
		digits = digits[len(digits)-2:]
	}
	for len(digits) < 2 {
		digits = "0" + digits
	}
	return digits
}

// RequiredBusinessDays resolves the business-day count for a NIT. The second
// return is true when the suffix was not in the table and the default was
// used; that is advisory, never an error.
func RequiredBusinessDays(nit string) (int, bool) {
	return requiredForSuffix(NitSuffix(nit), DefaultRequiredDays)
}

func requiredForSuffix(suffix string, def int) (int, bool) {
	if days, ok := tabla[suffix]; ok {
		return days, false
	}
	return def, true
}
