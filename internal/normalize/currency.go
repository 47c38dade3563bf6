package normalize

import (
	"math"
	"regexp"
)

// Price strings combine up to three magnitudes: 億 (100,000,000 yen),
// 万 (10,000 yen), and a bare 円 amount. "12,345万円" is 123,450,000 yen;
// "500円" is 500 yen.
var currencyRe = regexp.MustCompile(`(?:(\d+(?:,\d{3})*(?:\.\d+)?)億)?(?:(\d+(?:,\d{3})*(?:\.\d+)?)万)?(\d+(?:,\d{3})*)?円`)

// Currency parses a Japanese price string into whole yen. Returns false when
// no digits accompany the unit marker.
func Currency(raw string) (int64, bool) {
	m := currencyRe.FindStringSubmatch(fold(raw))
	if m == nil {
		return 0, false
	}
	var total float64
	found := false
	if m[1] != "" {
		if v, ok := parseDecimal(m[1]); ok {
			total += v * 1e8
			found = true
		}
	}
	if m[2] != "" {
		if v, ok := parseDecimal(m[2]); ok {
			total += v * 1e4
			found = true
		}
	}
	if m[3] != "" {
		if v, ok := parseDecimal(m[3]); ok {
			total += v
			found = true
		}
	}
	if !found {
		return 0, false
	}
	return int64(math.Round(total)), true
}
