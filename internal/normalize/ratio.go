package normalize

import (
	"regexp"
	"strings"
)

var pctRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*%`)

// Percent parses the first decimal-percent value in raw text. Full-width ％
// folds to % before matching.
func Percent(raw string) (float64, bool) {
	m := pctRe.FindStringSubmatch(fold(raw))
	if m == nil {
		return 0, false
	}
	return parseDecimal(m[1])
}

// CoverageAndFloorArea splits a combined ratio string such as
// "建ぺい率：60％　容積率：200％" or "60%・200%". With two percentages the
// first is the building coverage ratio and the second the floor-area ratio.
// A lone percentage is assigned by label: text naming only 容積率 yields a
// floor-area ratio, anything else a coverage ratio.
func CoverageAndFloorArea(raw string) (coverage, floorArea float64, covOK, farOK bool) {
	s := fold(raw)
	ms := pctRe.FindAllStringSubmatch(s, 2)
	switch len(ms) {
	case 1:
		if strings.Contains(s, "容積率") &&
			!strings.Contains(s, "建ぺい率") && !strings.Contains(s, "建蔽率") {
			floorArea, farOK = parseDecimal(ms[0][1])
		} else {
			coverage, covOK = parseDecimal(ms[0][1])
		}
	case 2:
		coverage, covOK = parseDecimal(ms[0][1])
		floorArea, farOK = parseDecimal(ms[1][1])
	}
	return coverage, floorArea, covOK, farOK
}
