package attractions

// RawItem is a single record as returned by the attractions backend.
// The backend's endpoints do not agree on key names, so the shape is
// kept loose and unified by Normalize.
type RawItem = map[string]any

// Attraction is the canonical, field-unified form of a backend record.
// A nil pointer (or nil slice) means the field was absent upstream;
// present-but-falsy values are kept as-is.
type Attraction struct {
	Name          *string
	CityName      *string
	CountryName   *string
	Description   *string
	EntryFee      *string
	GuidedTours   *bool
	ProtectedArea *bool
	Style         *string
	YearBuilt     *string
	Latitude      *float64
	Longitude     *float64
	ImageURLs     []string

	// Raw keeps the original backend record for diagnostics.
	Raw RawItem
}

// Record returns the attraction as a map keyed by the canonical field
// names. Feeding the result back through Normalize yields the same
// visible fields, which is what makes Normalize idempotent.
func (a Attraction) Record() RawItem {
	r := RawItem{}
	if a.Name != nil {
		r["name"] = *a.Name
	}
	if a.CityName != nil {
		r["cityName"] = *a.CityName
	}
	if a.CountryName != nil {
		r["countryName"] = *a.CountryName
	}
	if a.Description != nil {
		r["description"] = *a.Description
	}
	if a.EntryFee != nil {
		r["entryFee"] = *a.EntryFee
	}
	if a.GuidedTours != nil {
		r["guidedToursAvailable"] = *a.GuidedTours
	}
	if a.ProtectedArea != nil {
		r["isProtectedArea"] = *a.ProtectedArea
	}
	if a.Style != nil {
		r["style"] = *a.Style
	}
	if a.YearBuilt != nil {
		r["yearBuilt"] = *a.YearBuilt
	}
	if a.Latitude != nil {
		r["latitude"] = *a.Latitude
	}
	if a.Longitude != nil {
		r["longitude"] = *a.Longitude
	}
	if a.ImageURLs != nil {
		r["imageUrls"] = a.ImageURLs
	}
	return r
}
