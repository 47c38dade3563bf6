package sanitize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccept_RejectsCodeLikeText(t *testing.T) {
	rejected := []string{
		`function initMap() { ... }`,
		`{"price": 34800000}`,
		`var gaq = [];`,
		`window.dataLayer.push()`,
		`<script src="/tag.js">`,
		`</div>`,
		`googletag.cmd.push`,
		`gtag('config', 'UA-1')`,
	}
	for _, s := range rejected {
		assert.False(t, Accept(ShortText, s), "should reject %q", s)
	}
}

func TestAccept_RejectsBareURLs(t *testing.T) {
	// No canonical field expects a URL, regardless of class.
	for _, class := range []Class{ShortText, FreeText, Numeric, Transit} {
		assert.False(t, Accept(class, "http://tracker.example.com/px"), "class %d", class)
		assert.False(t, Accept(class, "see https://example.com 徒歩5分"), "class %d", class)
	}
}

func TestAccept_RejectsOverlongText(t *testing.T) {
	assert.False(t, Accept(ShortText, strings.Repeat("あ", 121)))
	assert.True(t, Accept(ShortText, strings.Repeat("あ", 120)))
	assert.False(t, Accept(Numeric, strings.Repeat("9", 65)))
	assert.True(t, Accept(FreeText, strings.Repeat("あ", 300)))
}

func TestAccept_TransitNeedsMarkers(t *testing.T) {
	assert.True(t, Accept(Transit, "ＪＲ山手線「渋谷」駅 徒歩5分"))
	assert.True(t, Accept(Transit, "最寄りバス停まで3分"))
	assert.False(t, Accept(Transit, "閑静な住宅街の人気物件です"))
}

func TestAccept_EmptyAndWhitespace(t *testing.T) {
	assert.False(t, Accept(ShortText, ""))
	assert.False(t, Accept(ShortText, "   \n\t"))
}

func TestAccept_PlainListingValues(t *testing.T) {
	accepted := []struct {
		class Class
		s     string
	}{
		{ShortText, "世田谷区の中古一戸建て 3LDK"},
		{ShortText, "東京都世田谷区桜丘２丁目"},
		{Numeric, "3,480万円"},
		{Numeric, "83.5㎡"},
		{FreeText, "南側公道 幅員4.0m に接道"},
	}
	for _, c := range accepted {
		assert.True(t, Accept(c.class, c.s), "should accept %q", c.s)
	}
}
