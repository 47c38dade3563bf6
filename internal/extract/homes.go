package extract

// homesExtractor handles Homes detail pages. The markup uses semantic-ish
// ids and class names, applied inconsistently across page variants, so each
// field carries an ordered selector list: stable ids first, looser class
// heuristics after.
type homesExtractor struct{}

var homesRules = []rule{
	{FieldTitle, []string{"h1.mod-bukkenName", "h1[class*=bukkenName]", "h1"}},
	{FieldPrice, []string{"#chk-bkc-moneyroom", "[class*=priceLabel]", "[class*=price] span", "[class*=price]"}},
	{FieldAddress, []string{"#chk-bkc-fulladdress", "[class*=address]", "[class*=fulladdress]"}},
	{FieldPropertyType, []string{"#chk-bkc-kind", "[class*=bukkenKind]", "[class*=propertyType]"}},
	{FieldFloorPlan, []string{"#chk-bkc-madori", "[class*=madori]", "[class*=floorPlan]"}},
	{FieldBuilt, []string{"#chk-bkc-kenchikudate", "[class*=kenchiku]", "[class*=built]"}},
	{FieldBuildingArea, []string{"#chk-bkc-housearea", "[class*=houseArea]", "[class*=buildingArea]"}},
	{FieldLandArea, []string{"#chk-bkc-landarea", "[class*=landArea]"}},
	{FieldFloors, []string{"#chk-bkc-kai", "[class*=kaidate]", "[class*=floorCount]"}},
	{FieldAccess, []string{"#chk-bkc-transfer", "[class*=traffic]", "[class*=transfer]", "[class*=access]"}},
	{FieldStructure, []string{"#chk-bkc-structure", "[class*=kouzou]", "[class*=structure]"}},
	{FieldRoadAccess, []string{"#chk-bkc-setsudou", "[class*=setsudou]", "[class*=roadAccess]"}},
	{FieldRatios, []string{"#chk-bkc-kenpei", "[class*=kenpei]", "[class*=youseki]"}},
	{FieldLandCategory, []string{"#chk-bkc-chimoku", "[class*=chimoku]"}},
	{FieldZoning, []string{"#chk-bkc-youto", "[class*=youto]", "[class*=zoning]"}},
}

func (homesExtractor) Extract(doc *Document) Result {
	cands, rejected := bySelectors(doc, homesRules)
	fallback, n := textFallback(doc, fieldsOf(cands))
	return Result{Candidates: append(cands, fallback...), Rejections: rejected + n}
}
