// Package interstitial recognizes challenge pages that listing portals serve
// to automated clients in place of the actual listing. Extracting fields from
// one of these silently yields wrong data, so callers must check before any
// extraction runs.
package interstitial

import "strings"

// signatures is a curated list of textual markers seen on authentication
// walls and anti-bot challenges. All entries are lowercase.
var signatures = []string{
	"access denied",
	"attention required",
	"checking your browser",
	"verify you are human",
	"enable javascript and cookies to continue",
	"recaptcha",
	"just a moment...",
	"アクセスが集中",
	"一時的にアクセスを制限",
	"ロボットではないことを確認",
	"認証にご協力ください",
}

// Detect reports whether raw document text matches a known challenge-page
// signature. Case-insensitive substring match.
func Detect(text string) bool {
	lower := strings.ToLower(text)
	for _, sig := range signatures {
		if strings.Contains(lower, sig) {
			return true
		}
	}
	return false
}
