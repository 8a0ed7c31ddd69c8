package attractions

import "strconv"

// Normalize unifies a raw backend record into an Attraction. Each
// canonical field takes the first key of its alias chain that is
// present with a non-null value; a present falsy value (false, 0, "")
// wins over later aliases. A nil raw item is treated as an empty
// record. The first alias of every chain is the canonical key itself,
// so normalizing an already-canonical record changes nothing.
func Normalize(raw RawItem) Attraction {
	if raw == nil {
		raw = RawItem{}
	}
	return Attraction{
		Name:          pickString(raw, "name", "attractionName", "locationName"),
		CityName:      pickString(raw, "cityName", "city"),
		CountryName:   pickString(raw, "countryName", "country"),
		Description:   pickString(raw, "description", "details", "about"),
		EntryFee:      pickString(raw, "entryFee", "entranceFee", "fee"),
		GuidedTours:   pickBool(raw, "guidedToursAvailable", "guideToursAvailable", "guidedTours"),
		ProtectedArea: pickBool(raw, "isProtectedArea", "protectedArea", "isProtected"),
		Style:         pickString(raw, "style", "architecturalStyle"),
		YearBuilt:     pickString(raw, "yearBuilt", "yearOfConstruction", "constructionYear"),
		Latitude:      pickFloat(raw, "latitude", "lat"),
		Longitude:     pickFloat(raw, "longitude", "lng", "lon"),
		ImageURLs:     pickStrings(raw, "imageUrls", "images", "photos"),
		Raw:           raw,
	}
}

// pick returns the first alias that is present and non-null. JSON null
// decodes to nil, so the check covers both missing and null keys.
func pick(raw RawItem, keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := raw[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func pickString(raw RawItem, keys ...string) *string {
	v, ok := pick(raw, keys...)
	if !ok {
		return nil
	}
	var s string
	switch t := v.(type) {
	case string:
		s = t
	case float64:
		s = strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		s = strconv.Itoa(t)
	case bool:
		s = strconv.FormatBool(t)
	default:
		return nil
	}
	return &s
}

func pickBool(raw RawItem, keys ...string) *bool {
	v, ok := pick(raw, keys...)
	if !ok {
		return nil
	}
	var b bool
	switch t := v.(type) {
	case bool:
		b = t
	case float64:
		b = t != 0
	case string:
		parsed, err := strconv.ParseBool(t)
		if err != nil {
			return nil
		}
		b = parsed
	default:
		return nil
	}
	return &b
}

func pickFloat(raw RawItem, keys ...string) *float64 {
	v, ok := pick(raw, keys...)
	if !ok {
		return nil
	}
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case int:
		f = float64(t)
	case string:
		parsed, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}
	return &f
}

func pickStrings(raw RawItem, keys ...string) []string {
	v, ok := pick(raw, keys...)
	if !ok {
		return nil
	}
	switch t := v.(type) {
	case []string:
		return t
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		return []string{t}
	default:
		return nil
	}
}
