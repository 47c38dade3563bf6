package extract

// suumoExtractor handles Suumo detail pages, where the listing spec is a
// literal label/value table. Strategy: walk the spec table in cell pairs,
// then fall back to full-text regex for quantities the table variant omits.
type suumoExtractor struct{}

var suumoTables = []string{
	"table.property_view_table",
	"table[class*=bukkenSpec]",
	"table[summary*=物件]",
	"table",
}

var suumoLabels = []labelRule{
	{"価格", FieldPrice},
	{"所在地", FieldAddress},
	{"間取り", FieldFloorPlan},
	{"物件種別", FieldPropertyType},
	{"築年月", FieldBuilt},
	{"完成時期", FieldBuilt},
	{"建物面積", FieldBuildingArea},
	{"専有面積", FieldBuildingArea},
	{"土地面積", FieldLandArea},
	{"敷地面積", FieldLandArea},
	{"交通", FieldAccess},
	{"アクセス", FieldAccess},
	{"構造", FieldStructure},
	{"階建", FieldFloors},
	{"接道", FieldRoadAccess},
	{"建ぺい率", FieldRatios},
	{"地目", FieldLandCategory},
	{"用途地域", FieldZoning},
}

var suumoTitleRules = []rule{
	{FieldTitle, []string{"h1.section_h1-header-title", "h1", "title"}},
}

func (suumoExtractor) Extract(doc *Document) Result {
	cands, rejected := bySelectors(doc, suumoTitleRules)
	pairs := labelValueTable(doc, suumoTables)
	labeled, n := byLabels(pairs, suumoLabels, "table")
	cands, rejected = append(cands, labeled...), rejected+n
	fallback, n := textFallback(doc, fieldsOf(cands))
	return Result{Candidates: append(cands, fallback...), Rejections: rejected + n}
}
