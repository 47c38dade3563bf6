// Package extract locates raw field candidates in parsed listing pages. One
// extractor exists per source profile; each walks the same immutable
// Document with its own strategy and returns unnormalized string candidates
// for the assembler to sanitize and type.
package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/estatelens/estatelens/internal/sanitize"
	"github.com/estatelens/estatelens/internal/source"
)

// Field names a canonical listing attribute an extractor may emit.
type Field string

const (
	FieldTitle        Field = "title"
	FieldPrice        Field = "price"
	FieldAddress      Field = "address"
	FieldPropertyType Field = "propertyType"
	FieldFloorPlan    Field = "floorPlan"
	FieldBuilt        Field = "built"
	FieldBuildingArea Field = "buildingArea"
	FieldLandArea     Field = "landArea"
	FieldFloors       Field = "floors"
	FieldAccess       Field = "access"
	FieldStructure    Field = "structure"
	FieldRoadAccess   Field = "roadAccess"
	FieldRatios       Field = "ratios"
	FieldLandCategory Field = "landCategory"
	FieldZoning       Field = "zoning"
	FieldYield        Field = "yield"
)

// Class returns the sanitization class candidates for f must satisfy.
func (f Field) Class() sanitize.Class {
	switch f {
	case FieldPrice, FieldBuildingArea, FieldLandArea, FieldRatios, FieldYield, FieldBuilt:
		return sanitize.Numeric
	case FieldAccess:
		return sanitize.Transit
	case FieldRoadAccess:
		return sanitize.FreeText
	}
	return sanitize.ShortText
}

// Candidate is one raw field value located in a document, before
// normalization. Where records the selector or strategy that produced it.
type Candidate struct {
	Field Field
	Raw   string
	Where string
}

// Document is the parsed representation of one fetched page. It is created
// once per extraction and read-only afterwards: the goquery tree is shared
// by every strategy, and the visible text (script/style subtrees removed)
// backs the regex fallbacks.
type Document struct {
	tree *goquery.Document
	text string
}

// NewDocument parses raw HTML into an immutable Document.
func NewDocument(body string) (*Document, error) {
	tree, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, err
	}
	// Visible text comes from a pruned clone so the shared tree stays intact.
	pruned := goquery.CloneDocument(tree)
	pruned.Find("script, style, noscript, iframe").Remove()
	return &Document{tree: tree, text: collapseText(pruned.Selection.Text())}, nil
}

// Find runs a selector against the parse tree.
func (d *Document) Find(selector string) *goquery.Selection {
	return d.tree.Find(selector)
}

// Text returns the page's visible text with script and style content removed.
func (d *Document) Text() string {
	return d.text
}

// Result is one extraction pass over a document: the candidates that passed
// the sanitization policy plus a count of non-empty values it dropped. The
// count feeds listing diagnostics so systematic rejections are visible.
type Result struct {
	Candidates []Candidate
	Rejections int
}

// Extractor produces raw field candidates from one parsed document.
type Extractor interface {
	Extract(doc *Document) Result
}

// ForProfile returns the extraction strategy for a classified source. The
// dispatch is closed: an unknown or Unsupported profile has no extractor.
func ForProfile(p source.Profile) (Extractor, bool) {
	switch p {
	case source.Suumo:
		return suumoExtractor{}, true
	case source.Homes:
		return homesExtractor{}, true
	case source.Rakumachi:
		return rakumachiExtractor{}, true
	}
	return nil, false
}

// collapseText trims each line and collapses whitespace runs, keeping line
// breaks as block separators for the regex fallbacks.
func collapseText(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		out = append(out, strings.Join(fields, " "))
	}
	return strings.Join(out, "\n")
}
