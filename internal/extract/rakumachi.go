package extract

// rakumachiExtractor handles Rakumachi detail pages. The portal is aimed at
// investors, so yield appears alongside the usual spec-table fields; page
// variants drift often enough that the full-text fallback does real work
// here.
type rakumachiExtractor struct{}

var rakumachiTables = []string{
	"table.propertyDetail",
	"table[class*=detailTable]",
	"div.property_data table",
	"table",
}

var rakumachiLabels = []labelRule{
	{"物件名", FieldTitle},
	{"価格", FieldPrice},
	{"所在地", FieldAddress},
	{"物件種別", FieldPropertyType},
	{"間取り", FieldFloorPlan},
	{"利回り", FieldYield},
	{"築年月", FieldBuilt},
	{"建築年", FieldBuilt},
	{"建物面積", FieldBuildingArea},
	{"土地面積", FieldLandArea},
	{"交通", FieldAccess},
	{"沿線", FieldAccess},
	{"建物構造", FieldStructure},
	{"構造", FieldStructure},
	{"階数", FieldFloors},
	{"接道状況", FieldRoadAccess},
	{"建ぺい率", FieldRatios},
	{"地目", FieldLandCategory},
	{"用途地域", FieldZoning},
}

var rakumachiTitleRules = []rule{
	{FieldTitle, []string{"h1.propertyName", "h1[class*=property]", "h1"}},
}

func (rakumachiExtractor) Extract(doc *Document) Result {
	cands, rejected := bySelectors(doc, rakumachiTitleRules)
	pairs := labelValueTable(doc, rakumachiTables)
	labeled, n := byLabels(pairs, rakumachiLabels, "table")
	cands, rejected = append(cands, labeled...), rejected+n
	fallback, n := textFallback(doc, fieldsOf(cands))
	return Result{Candidates: append(cands, fallback...), Rejections: rejected + n}
}
