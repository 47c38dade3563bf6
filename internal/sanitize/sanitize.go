// Package sanitize gates raw field candidates before they may enter the
// canonical record. Structural selectors occasionally match inline script
// payloads or template leftovers instead of rendered text; those values must
// be rejected here, before assembly, so they can never reach a data store or
// a downstream prompt.
package sanitize

import (
	"strings"
	"unicode/utf8"
)

// Class groups canonical fields by the shape of text they may carry.
type Class int

const (
	// ShortText covers titles, addresses, and single-cell labels.
	ShortText Class = iota
	// FreeText covers multi-sentence descriptions such as road access.
	FreeText
	// Numeric covers prices, areas, and ratios before normalization.
	Numeric
	// Transit covers rail access text, which must read like one.
	Transit
)

func maxLen(c Class) int {
	switch c {
	case Numeric:
		return 64
	case FreeText, Transit:
		return 400
	}
	return 120
}

// codeTokens mark strings that are script or template output, not rendered
// listing text.
var codeTokens = []string{
	"{",
	"}",
	"function",
	"var ",
	"=>",
	"<script",
	"</",
	"window.",
	"document.",
}

// vendorTokens are tracking and ad snippets that leak through naive
// selectors on these portals.
var vendorTokens = []string{
	"googletag",
	"gtag(",
	"google-analytics",
	"adsbygoogle",
	"doubleclick",
	"criteo",
	"dmp.im",
}

// transitMarkers: a real rail access description carries at least one of
// these.
var transitMarkers = []string{"線", "駅", "徒歩", "分", "バス"}

// Accept reports whether a raw candidate may become a value of the given
// field class. No listing field carries a URL, so bare http(s) text is
// always rejected.
func Accept(class Class, s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	if utf8.RuneCountInString(s) > maxLen(class) {
		return false
	}
	lower := strings.ToLower(s)
	for _, tok := range codeTokens {
		if strings.Contains(lower, tok) {
			return false
		}
	}
	for _, tok := range vendorTokens {
		if strings.Contains(lower, tok) {
			return false
		}
	}
	if strings.Contains(lower, "http://") || strings.Contains(lower, "https://") {
		return false
	}
	if class == Transit && !containsAny(s, transitMarkers) {
		return false
	}
	return true
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
