package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estatelens/estatelens/internal/extract"
)

func fullCandidates() []extract.Candidate {
	return []extract.Candidate{
		{Field: extract.FieldTitle, Raw: "世田谷区桜丘 中古一戸建て"},
		{Field: extract.FieldPrice, Raw: "3,480万円"},
		{Field: extract.FieldAddress, Raw: "東京都世田谷区桜丘２丁目"},
		{Field: extract.FieldPropertyType, Raw: "中古一戸建て"},
		{Field: extract.FieldFloorPlan, Raw: "3LDK"},
		{Field: extract.FieldBuilt, Raw: "1998年3月"},
		{Field: extract.FieldBuildingArea, Raw: "83.5㎡"},
		{Field: extract.FieldLandArea, Raw: "100.0㎡"},
		{Field: extract.FieldFloors, Raw: "2階建"},
		{Field: extract.FieldAccess, Raw: "小田急線「千歳船橋」駅 徒歩7分"},
		{Field: extract.FieldStructure, Raw: "木造"},
		{Field: extract.FieldRoadAccess, Raw: "南側公道 幅員4.0mに接道"},
		{Field: extract.FieldRatios, Raw: "建ぺい率：60％　容積率：200％"},
		{Field: extract.FieldLandCategory, Raw: "宅地"},
		{Field: extract.FieldZoning, Raw: "第一種低層住居専用地域"},
		{Field: extract.FieldYield, Raw: "8.2%"},
	}
}

func TestAssemble_FullRecord(t *testing.T) {
	l := Assembler{AsOfYear: 2026}.Assemble(extract.Result{Candidates: fullCandidates()})

	require.NotNil(t, l.Title)
	assert.Equal(t, "世田谷区桜丘 中古一戸建て", *l.Title)
	require.NotNil(t, l.PriceYen)
	assert.Equal(t, int64(34_800_000), *l.PriceYen)
	require.NotNil(t, l.BuiltYear)
	assert.Equal(t, 1998, *l.BuiltYear)
	require.NotNil(t, l.BuiltMonth)
	assert.Equal(t, 3, *l.BuiltMonth)
	require.NotNil(t, l.BuildingAreaSqm)
	assert.Equal(t, 83.5, *l.BuildingAreaSqm)
	require.NotNil(t, l.LandAreaSqm)
	assert.Equal(t, 100.0, *l.LandAreaSqm)
	require.NotNil(t, l.CoverageRatioPct)
	assert.Equal(t, 60.0, *l.CoverageRatioPct)
	require.NotNil(t, l.FloorAreaRatioPct)
	assert.Equal(t, 200.0, *l.FloorAreaRatioPct)
	require.NotNil(t, l.YieldPct)
	assert.Equal(t, 8.2, *l.YieldPct)
	require.Len(t, l.Transport, 1)
	assert.Equal(t, TransportRoute{Line: "小田急線", Station: "千歳船橋", WalkMinutes: 7}, l.Transport[0])

	// Derived: land area preferred over building area.
	require.NotNil(t, l.PricePerSqmYen)
	assert.Equal(t, int64(348_000), *l.PricePerSqmYen)

	assert.True(t, l.Diagnostics.FieldsFound["priceYen"])
	assert.True(t, l.Diagnostics.FieldsFound["transport"])
	assert.Zero(t, l.Diagnostics.SanitizeRejections)
}

func TestAssemble_PricePerAreaFallsBackToBuildingArea(t *testing.T) {
	cands := []extract.Candidate{
		{Field: extract.FieldPrice, Raw: "2,000万円"},
		{Field: extract.FieldBuildingArea, Raw: "80㎡"},
	}
	l := Assembler{AsOfYear: 2026}.Assemble(extract.Result{Candidates: cands})
	require.NotNil(t, l.PricePerSqmYen)
	assert.Equal(t, int64(250_000), *l.PricePerSqmYen)
}

func TestAssemble_NoAreaNoDerivedPrice(t *testing.T) {
	l := Assembler{AsOfYear: 2026}.Assemble(extract.Result{Candidates: []extract.Candidate{
		{Field: extract.FieldPrice, Raw: "2,000万円"},
	}})
	assert.Nil(t, l.PricePerSqmYen)
	assert.False(t, l.Diagnostics.FieldsFound["pricePerSqmYen"])
}

func TestAssemble_FirstCandidatePerFieldWins(t *testing.T) {
	l := Assembler{AsOfYear: 2026}.Assemble(extract.Result{Candidates: []extract.Candidate{
		{Field: extract.FieldPrice, Raw: "3,000万円"},
		{Field: extract.FieldPrice, Raw: "9,999万円"},
	}})
	require.NotNil(t, l.PriceYen)
	assert.Equal(t, int64(30_000_000), *l.PriceYen)
}

func TestAssemble_SanitizeRejectionCountedAsMiss(t *testing.T) {
	l := Assembler{AsOfYear: 2026}.Assemble(extract.Result{Candidates: []extract.Candidate{
		{Field: extract.FieldTitle, Raw: `function track() { gtag('send'); }`},
		{Field: extract.FieldAddress, Raw: "東京都世田谷区桜丘２丁目"},
	}})
	assert.Nil(t, l.Title)
	assert.False(t, l.Diagnostics.FieldsFound["title"])
	assert.Equal(t, 1, l.Diagnostics.SanitizeRejections)
	require.NotNil(t, l.Address)
}

func TestAssemble_ExtractorRejectionsFolded(t *testing.T) {
	// Values the extractors already dropped arrive only as a count; it must
	// surface in diagnostics alongside assembly-time rejections.
	l := Assembler{AsOfYear: 2026}.Assemble(extract.Result{
		Candidates: []extract.Candidate{
			{Field: extract.FieldTitle, Raw: `window.dataLayer = [];`},
		},
		Rejections: 2,
	})
	assert.Nil(t, l.Title)
	assert.Equal(t, 3, l.Diagnostics.SanitizeRejections)
}

func TestAssemble_EmptyCandidatesValid(t *testing.T) {
	l := Assembler{AsOfYear: 2026}.Assemble(extract.Result{})
	assert.Nil(t, l.Title)
	assert.Nil(t, l.PriceYen)
	assert.Empty(t, l.Transport)
	for _, found := range l.Diagnostics.FieldsFound {
		assert.False(t, found)
	}
}

func TestAssemble_AgeAnchoredToAsOfYear(t *testing.T) {
	l := Assembler{AsOfYear: 2024}.Assemble(extract.Result{Candidates: []extract.Candidate{
		{Field: extract.FieldBuilt, Raw: "築20年"},
	}})
	require.NotNil(t, l.BuiltYear)
	assert.Equal(t, 2004, *l.BuiltYear)
	assert.Nil(t, l.BuiltMonth)
}
