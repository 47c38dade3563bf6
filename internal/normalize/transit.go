package normalize

import (
	"regexp"
	"sort"
	"strconv"
)

// Route is one parsed rail access entry.
type Route struct {
	Line        string
	Station     string
	WalkMinutes int
}

// maxRoutes caps the parsed list. Portal pages sometimes enumerate dozens of
// nearby stations from boilerplate; only the first few belong to the unit,
// so the cap must keep the routes that appear earliest in the text.
const maxRoutes = 5

// routeRes is ordered most-specific first: bracketed station names, then the
// slash-separated form, then the unspaced run-on form.
var routeRes = []*regexp.Regexp{
	// ＪＲ山手線「渋谷」駅 徒歩5分
	regexp.MustCompile(`([^\s、。／/「」]+線)\s*「([^」]+)」\s*駅?\s*徒歩\s*(\d{1,3})分`),
	// 東急東横線/中目黒 徒歩10分
	regexp.MustCompile(`([^\s、。／/]+線)[／/]\s*([^\s、。／/]+?)駅?\s*徒歩\s*(\d{1,3})分`),
	// 山手線渋谷駅徒歩5分 or 山手線 渋谷駅 徒歩5分
	regexp.MustCompile(`([^\s、。／/「」]+線)\s*([^\s、。／/「」]+?)駅\s*徒歩\s*(\d{1,3})分`),
}

// Routes scans free text for rail access entries, deduplicates by
// (line, station), and returns at most maxRoutes in the order the entries
// appear in the text, regardless of which pattern recognized each one.
func Routes(raw string) []Route {
	s := fold(raw)

	type span struct {
		start, end int
		route      Route
	}
	var spans []span
	for _, re := range routeRes {
		for _, idx := range re.FindAllStringSubmatchIndex(s, -1) {
			minutes, err := strconv.Atoi(s[idx[6]:idx[7]])
			if err != nil {
				continue
			}
			spans = append(spans, span{
				start: idx[0],
				end:   idx[1],
				route: Route{
					Line:        s[idx[2]:idx[3]],
					Station:     s[idx[4]:idx[5]],
					WalkMinutes: minutes,
				},
			})
		}
	}
	// Text order decides; at equal offsets the more specific pattern wins.
	sort.SliceStable(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	seen := map[string]bool{}
	consumed := 0
	var out []Route
	for _, sp := range spans {
		if sp.start < consumed {
			// Overlaps a span another pattern already claimed.
			continue
		}
		key := sp.route.Line + "\x00" + sp.route.Station
		if seen[key] {
			consumed = sp.end
			continue
		}
		seen[key] = true
		consumed = sp.end
		out = append(out, sp.route)
		if len(out) == maxRoutes {
			break
		}
	}
	return out
}
