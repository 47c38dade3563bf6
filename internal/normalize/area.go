package normalize

import "regexp"

// areaRe accepts the square-meter spellings seen across portals. The unit
// spelling is discarded after parsing.
var areaRe = regexp.MustCompile(`(\d+(?:,\d{3})*(?:\.\d+)?)\s*(?:㎡|m²|m2|平米|平方メートル)`)

// Area parses a square-meter quantity from raw text.
func Area(raw string) (float64, bool) {
	m := areaRe.FindStringSubmatch(fold(raw))
	if m == nil {
		return 0, false
	}
	return parseDecimal(m[1])
}
