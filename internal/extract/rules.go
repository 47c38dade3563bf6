package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/width"

	"github.com/estatelens/estatelens/internal/sanitize"
)

// rule is one field's ordered list of selector attempts. Selectors are tried
// in order; the first non-empty, sanitization-passing text wins. Keeping the
// policy in data keeps it reviewable apart from the tree-walking mechanics.
type rule struct {
	field     Field
	selectors []string
}

// bySelectors evaluates ordered selector rules against the tree. The second
// return value counts non-empty matches the sanitization policy dropped;
// the assembler surfaces it so repeated rejections can flag markup drift.
func bySelectors(doc *Document, rules []rule) ([]Candidate, int) {
	var out []Candidate
	rejected := 0
	for _, r := range rules {
		for _, sel := range r.selectors {
			txt := cellText(doc.Find(sel).First())
			if txt == "" {
				continue
			}
			if !sanitize.Accept(r.field.Class(), txt) {
				rejected++
				continue
			}
			out = append(out, Candidate{Field: r.field, Raw: txt, Where: sel})
			break
		}
	}
	return out, rejected
}

// labelValue is one label cell paired with the value cell that follows it.
type labelValue struct {
	label string
	value string
}

// labelValueTable walks the rows of the first table matching any of the
// ordered tableSelectors, pairing cells: the first cell of each pair is the
// label, the second its value. Only that one table is walked; document order
// and first-seen labels are preserved so later duplicate labels cannot
// override earlier ones.
func labelValueTable(doc *Document, tableSelectors []string) []labelValue {
	var table *goquery.Selection
	for _, sel := range tableSelectors {
		s := doc.Find(sel)
		if s.Length() > 0 {
			table = s.First()
			break
		}
	}
	if table == nil {
		return nil
	}
	var pairs []labelValue
	seen := map[string]bool{}
	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("th, td")
		for i := 0; i+1 < cells.Length(); i += 2 {
			label := cellText(cells.Eq(i))
			value := cellText(cells.Eq(i + 1))
			if label == "" || value == "" || seen[label] {
				continue
			}
			seen[label] = true
			pairs = append(pairs, labelValue{label: label, value: value})
		}
	})
	return pairs
}

// labelRule maps a label substring to a canonical field. Ordered: for each
// field the first pair whose label contains the needle wins.
type labelRule struct {
	needle string
	field  Field
}

// byLabels resolves label rules against table pairs in document order,
// counting values the sanitization policy dropped.
func byLabels(pairs []labelValue, rules []labelRule, where string) ([]Candidate, int) {
	var out []Candidate
	rejected := 0
	done := map[Field]bool{}
	for _, r := range rules {
		if done[r.field] {
			continue
		}
		for _, p := range pairs {
			if !strings.Contains(p.label, r.needle) {
				continue
			}
			if !sanitize.Accept(r.field.Class(), p.value) {
				rejected++
				continue
			}
			done[r.field] = true
			out = append(out, Candidate{Field: r.field, Raw: p.value, Where: where + ":" + p.label})
			break
		}
	}
	return out, rejected
}

// textFallbacks locate numeric quantities in free text when structural
// selectors miss. Patterns tolerate both : and ： after the label and the
// unit spellings the normalizers accept.
var textFallbacks = []struct {
	field Field
	re    *regexp.Regexp
}{
	{FieldLandArea, regexp.MustCompile(`土地面積\s*[:：]?\s*([\d,.]+\s*(?:㎡|m²|m2|平米|平方メートル))`)},
	{FieldBuildingArea, regexp.MustCompile(`(?:建物面積|専有面積)\s*[:：]?\s*([\d,.]+\s*(?:㎡|m²|m2|平米|平方メートル))`)},
	{FieldRatios, regexp.MustCompile(`建ぺい率\s*[:：]?\s*[\d.]+\s*%[^%\n]{0,20}容積率\s*[:：]?\s*[\d.]+\s*%`)},
	{FieldYield, regexp.MustCompile(`利回り\s*[:：]?\s*([\d.]+\s*%)`)},
}

// textFallback scans the whole visible text for fields still missing,
// counting matches the sanitization policy dropped. The ratios pattern
// keeps the combined string so the normalizer can split it by position.
func textFallback(doc *Document, have map[Field]bool) ([]Candidate, int) {
	text := width.Fold.String(doc.Text())
	var out []Candidate
	rejected := 0
	for _, fb := range textFallbacks {
		if have[fb.field] {
			continue
		}
		m := fb.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		raw := m[0]
		if len(m) > 1 && m[1] != "" {
			raw = m[1]
		}
		if !sanitize.Accept(fb.field.Class(), raw) {
			rejected++
			continue
		}
		out = append(out, Candidate{Field: fb.field, Raw: raw, Where: "text"})
	}
	return out, rejected
}

// fieldsOf indexes which fields a candidate set already covers.
func fieldsOf(cands []Candidate) map[Field]bool {
	have := make(map[Field]bool, len(cands))
	for _, c := range cands {
		have[c.Field] = true
	}
	return have
}

func cellText(s *goquery.Selection) string {
	return strings.Join(strings.Fields(s.Text()), " ")
}
