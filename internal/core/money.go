// Package core holds the domain records shared by the ledgers, the catalogs
// and the analytics engine, together with parsing helpers for the money and
// quantity fields they carry.
//
// Monetary amounts are plain float64 soles: accumulation keeps full floating
// precision and rounding to two decimals happens only at presentation time.
package core

import (
	"math"
	"strconv"
	"strings"
)

// ParsePrice parses a non-negative decimal amount. Both dot (12.50) and
// comma (12,50) separators are accepted since prices are typed by hand.
func ParsePrice(s string) (float64, error) {
	v, err := parseDecimal(s)
	if err != nil || v < 0 {
		return 0, ErrInvalidPrice
	}
	return v, nil
}

// ParseQuantity parses a strictly positive decimal quantity.
func ParseQuantity(s string) (float64, error) {
	v, err := parseDecimal(s)
	if err != nil || v <= 0 {
		return 0, ErrInvalidQuantity
	}
	return v, nil
}

func parseDecimal(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, strconv.ErrSyntax
	}
	return v, nil
}

// Round2 rounds half away from zero to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatAmount renders an amount with two decimals for display and
// serialization of derived totals.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(Round2(v), 'f', 2, 64)
}
