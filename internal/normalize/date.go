package normalize

import (
	"regexp"
	"strconv"
)

var (
	absYearRe = regexp.MustCompile(`(\d{4})年(?:\s*(\d{1,2})月)?`)
	eraYearRe = regexp.MustCompile(`(令和|平成|昭和)(元|\d{1,2})年(?:\s*(\d{1,2})月)?`)
	ageRe     = regexp.MustCompile(`築\s*(\d{1,3})年`)
)

// eraBase maps an era name to the Gregorian year before its first year,
// so 平成10年 = 1988 + 10.
var eraBase = map[string]int{
	"昭和": 1925,
	"平成": 1988,
	"令和": 2018,
}

// BuiltDate parses a construction date. It accepts an absolute year with
// optional month ("1998年3月"), an era year ("平成10年3月"), or a building
// age ("築20年") resolved against asOfYear. Month is 0 when absent or out of
// 1..12. asOfYear is caller-supplied so age conversion stays deterministic.
func BuiltDate(raw string, asOfYear int) (year, month int, ok bool) {
	s := fold(raw)
	if m := absYearRe.FindStringSubmatch(s); m != nil {
		year, _ = strconv.Atoi(m[1])
		return year, validMonth(m[2]), true
	}
	if m := eraYearRe.FindStringSubmatch(s); m != nil {
		n := 1
		if m[2] != "元" {
			n, _ = strconv.Atoi(m[2])
		}
		return eraBase[m[1]] + n, validMonth(m[3]), true
	}
	if m := ageRe.FindStringSubmatch(s); m != nil {
		age, _ := strconv.Atoi(m[1])
		return asOfYear - age, 0, true
	}
	return 0, 0, false
}

func validMonth(s string) int {
	if s == "" {
		return 0
	}
	m, err := strconv.Atoi(s)
	if err != nil || m < 1 || m > 12 {
		return 0
	}
	return m
}
