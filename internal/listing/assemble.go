package listing

import (
	"math"
	"strings"

	"github.com/estatelens/estatelens/internal/extract"
	"github.com/estatelens/estatelens/internal/normalize"
	"github.com/estatelens/estatelens/internal/sanitize"
)

// Assembler folds accepted candidates into one NormalizedListing. Missing
// fields stay nil; only the derived price-per-area is computed here, last.
type Assembler struct {
	// AsOfYear anchors 築N年 age conversion so assembly is deterministic.
	AsOfYear int
}

// Assemble merges an extraction result (first candidate per field wins),
// applies the sanitization policy, normalizes values, and computes derived
// fields. It never fails: a candidate that does not sanitize or parse is a
// per-field miss, counted in diagnostics together with the rejections the
// extractors already dropped.
func (a Assembler) Assemble(res extract.Result) NormalizedListing {
	var l NormalizedListing

	accepted := map[extract.Field]string{}
	rejections := res.Rejections
	for _, c := range res.Candidates {
		if _, dup := accepted[c.Field]; dup {
			continue
		}
		raw := strings.TrimSpace(c.Raw)
		if !sanitize.Accept(c.Field.Class(), raw) {
			rejections++
			continue
		}
		accepted[c.Field] = raw
	}

	l.Title = strField(accepted, extract.FieldTitle)
	l.Address = strField(accepted, extract.FieldAddress)
	l.PropertyType = strField(accepted, extract.FieldPropertyType)
	l.FloorPlan = strField(accepted, extract.FieldFloorPlan)
	l.Floors = strField(accepted, extract.FieldFloors)
	l.Structure = strField(accepted, extract.FieldStructure)
	l.RoadAccess = strField(accepted, extract.FieldRoadAccess)
	l.LandCategory = strField(accepted, extract.FieldLandCategory)
	l.Zoning = strField(accepted, extract.FieldZoning)

	if raw, ok := accepted[extract.FieldPrice]; ok {
		if yen, ok := normalize.Currency(raw); ok {
			l.PriceYen = &yen
		}
	}
	if raw, ok := accepted[extract.FieldBuildingArea]; ok {
		if sqm, ok := normalize.Area(raw); ok {
			l.BuildingAreaSqm = &sqm
		}
	}
	if raw, ok := accepted[extract.FieldLandArea]; ok {
		if sqm, ok := normalize.Area(raw); ok {
			l.LandAreaSqm = &sqm
		}
	}
	if raw, ok := accepted[extract.FieldBuilt]; ok {
		if year, month, ok := normalize.BuiltDate(raw, a.AsOfYear); ok {
			l.BuiltYear = &year
			if month > 0 {
				l.BuiltMonth = &month
			}
		}
	}
	if raw, ok := accepted[extract.FieldRatios]; ok {
		cov, far, covOK, farOK := normalize.CoverageAndFloorArea(raw)
		if covOK {
			l.CoverageRatioPct = &cov
		}
		if farOK {
			l.FloorAreaRatioPct = &far
		}
	}
	if raw, ok := accepted[extract.FieldYield]; ok {
		if pct, ok := normalize.Percent(raw); ok {
			l.YieldPct = &pct
		}
	}
	if raw, ok := accepted[extract.FieldAccess]; ok {
		l.Access = &raw
		for _, r := range normalize.Routes(raw) {
			l.Transport = append(l.Transport, TransportRoute{
				Line:        r.Line,
				Station:     r.Station,
				WalkMinutes: r.WalkMinutes,
			})
		}
	}

	// Derived last. Land area is preferred over building area when both are
	// present; downstream valuation depends on this tie-break, keep it.
	if l.PriceYen != nil {
		area := l.LandAreaSqm
		if area == nil {
			area = l.BuildingAreaSqm
		}
		if area != nil && *area > 0 {
			pp := int64(math.Round(float64(*l.PriceYen) / *area))
			l.PricePerSqmYen = &pp
		}
	}

	l.Diagnostics = Diagnostics{
		FieldsFound:        foundMap(&l),
		SanitizeRejections: rejections,
	}
	return l
}

func strField(accepted map[extract.Field]string, f extract.Field) *string {
	if v, ok := accepted[f]; ok {
		return &v
	}
	return nil
}

func foundMap(l *NormalizedListing) map[string]bool {
	return map[string]bool{
		"title":             l.Title != nil,
		"priceYen":          l.PriceYen != nil,
		"pricePerSqmYen":    l.PricePerSqmYen != nil,
		"address":           l.Address != nil,
		"propertyType":      l.PropertyType != nil,
		"floorPlan":         l.FloorPlan != nil,
		"builtYear":         l.BuiltYear != nil,
		"builtMonth":        l.BuiltMonth != nil,
		"buildingAreaSqm":   l.BuildingAreaSqm != nil,
		"landAreaSqm":       l.LandAreaSqm != nil,
		"floors":            l.Floors != nil,
		"access":            l.Access != nil,
		"structure":         l.Structure != nil,
		"roadAccess":        l.RoadAccess != nil,
		"coverageRatioPct":  l.CoverageRatioPct != nil,
		"floorAreaRatioPct": l.FloorAreaRatioPct != nil,
		"landCategory":      l.LandCategory != nil,
		"zoning":            l.Zoning != nil,
		"transport":         len(l.Transport) > 0,
		"yieldPct":          l.YieldPct != nil,
	}
}
