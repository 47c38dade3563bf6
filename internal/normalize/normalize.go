// Package normalize converts raw extracted strings into typed listing
// values. Every function is pure: raw string in, (value, ok) out, with ok
// false meaning "no value" — never a zero sentinel. Pattern tables are
// package-owned static configuration.
package normalize

import (
	"strconv"
	"strings"

	"golang.org/x/text/width"
)

// fold maps full-width digits, punctuation and unit markers to their ASCII
// forms. Portal markup mixes ３，４８０万円 and 3,480万円 freely.
func fold(s string) string {
	return width.Fold.String(s)
}

func parseDecimal(s string) (float64, bool) {
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
