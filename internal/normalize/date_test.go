package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuiltDate_AbsoluteYear(t *testing.T) {
	y, m, ok := BuiltDate("1998年3月", 2026)
	assert.True(t, ok)
	assert.Equal(t, 1998, y)
	assert.Equal(t, 3, m)

	y, m, ok = BuiltDate("2005年", 2026)
	assert.True(t, ok)
	assert.Equal(t, 2005, y)
	assert.Equal(t, 0, m)
}

func TestBuiltDate_AgeUsesAsOfYear(t *testing.T) {
	y, m, ok := BuiltDate("築20年", 2026)
	assert.True(t, ok)
	assert.Equal(t, 2006, y)
	assert.Equal(t, 0, m)

	// Same input, different as-of year: the conversion is anchored, not
	// wall-clock dependent.
	y, _, _ = BuiltDate("築20年", 2020)
	assert.Equal(t, 2000, y)
}

func TestBuiltDate_EraYears(t *testing.T) {
	y, m, ok := BuiltDate("平成10年3月", 2026)
	assert.True(t, ok)
	assert.Equal(t, 1998, y)
	assert.Equal(t, 3, m)

	y, _, ok = BuiltDate("昭和55年", 2026)
	assert.True(t, ok)
	assert.Equal(t, 1980, y)

	y, _, ok = BuiltDate("令和元年", 2026)
	assert.True(t, ok)
	assert.Equal(t, 2019, y)
}

func TestBuiltDate_InvalidMonthDropped(t *testing.T) {
	y, m, ok := BuiltDate("1998年13月", 2026)
	assert.True(t, ok)
	assert.Equal(t, 1998, y)
	assert.Equal(t, 0, m)
}

func TestBuiltDate_FullWidthDigits(t *testing.T) {
	y, m, ok := BuiltDate("１９９８年３月", 2026)
	assert.True(t, ok)
	assert.Equal(t, 1998, y)
	assert.Equal(t, 3, m)
}

func TestBuiltDate_NoValue(t *testing.T) {
	for _, raw := range []string{"", "新築", "築年月不詳"} {
		_, _, ok := BuiltDate(raw, 2026)
		assert.False(t, ok, "raw %q", raw)
	}
}
