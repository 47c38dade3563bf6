package source

import (
	"net/url"
	"strings"
)

// Profile identifies which listing portal a URL belongs to. The set is
// closed: adding a portal means adding a variant here plus its extractor.
type Profile int

const (
	Unsupported Profile = iota
	Suumo
	Homes
	Rakumachi
)

func (p Profile) String() string {
	switch p {
	case Suumo:
		return "suumo"
	case Homes:
		return "homes"
	case Rakumachi:
		return "rakumachi"
	}
	return "unsupported"
}

// hostPatterns is ordered; the first substring match wins.
var hostPatterns = []struct {
	needle  string
	profile Profile
}{
	{"suumo", Suumo},
	{"homes.co.jp", Homes},
	{"rakumachi", Rakumachi},
}

// Classify maps a URL's hostname to a Profile. It is total: malformed or
// unknown hosts classify as Unsupported, never an error.
func Classify(rawURL string) Profile {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return Unsupported
	}
	host := strings.ToLower(u.Hostname())
	for _, p := range hostPatterns {
		if strings.Contains(host, p.needle) {
			return p.profile
		}
	}
	return Unsupported
}
