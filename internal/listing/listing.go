// Package listing defines the canonical, site-independent listing record
// and the assembler that builds it from raw extraction candidates.
package listing

// TransportRoute is one rail access entry: line, station, and minutes on
// foot from the station.
type TransportRoute struct {
	Line        string `json:"line"`
	Station     string `json:"station"`
	WalkMinutes int    `json:"walkMinutes"`
}

// Diagnostics summarizes what extraction found. Callers use it to decide
// whether a listing is complete enough to keep or should be re-fetched; a
// climbing rejection count on one source usually means its markup changed.
type Diagnostics struct {
	// FieldsFound records, per canonical JSON field name, whether a value
	// was extracted.
	FieldsFound map[string]bool `json:"fieldsFound"`
	// SanitizeRejections counts candidates dropped by the sanitization
	// policy. Rejections are silent per field; only the count surfaces.
	SanitizeRejections int `json:"sanitizeRejections"`
	// Note carries a page-level degradation remark, e.g. a parse failure.
	Note string `json:"note,omitempty"`
}

// NormalizedListing is the canonical output record. Every field is
// independently optional: nil means "not found", never zero. A record with
// all fields empty is valid and signals that extraction found nothing.
type NormalizedListing struct {
	Title             *string          `json:"title,omitempty"`
	PriceYen          *int64           `json:"priceYen,omitempty"`
	PricePerSqmYen    *int64           `json:"pricePerSqmYen,omitempty"`
	Address           *string          `json:"address,omitempty"`
	PropertyType      *string          `json:"propertyType,omitempty"`
	FloorPlan         *string          `json:"floorPlan,omitempty"`
	BuiltYear         *int             `json:"builtYear,omitempty"`
	BuiltMonth        *int             `json:"builtMonth,omitempty"`
	BuildingAreaSqm   *float64         `json:"buildingAreaSqm,omitempty"`
	LandAreaSqm       *float64         `json:"landAreaSqm,omitempty"`
	Floors            *string          `json:"floors,omitempty"`
	Access            *string          `json:"access,omitempty"`
	Structure         *string          `json:"structure,omitempty"`
	RoadAccess        *string          `json:"roadAccess,omitempty"`
	CoverageRatioPct  *float64         `json:"coverageRatioPct,omitempty"`
	FloorAreaRatioPct *float64         `json:"floorAreaRatioPct,omitempty"`
	LandCategory      *string          `json:"landCategory,omitempty"`
	Zoning            *string          `json:"zoning,omitempty"`
	Transport         []TransportRoute `json:"transport,omitempty"`
	YieldPct          *float64         `json:"yieldPct,omitempty"`

	Diagnostics Diagnostics `json:"diagnostics"`
}
