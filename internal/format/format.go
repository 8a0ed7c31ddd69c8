// Package format renders canonical attractions into chatbot-ready text.
package format

import (
	"strconv"
	"strings"

	"github.com/elatifinajib/tourism-bot-backend-sub000/internal/attractions"
)

// Formatter renders one attraction as a text block
type Formatter func(icon string, a attractions.Attraction) string

// Terse renders "<icon> <name>", with " (<city>)" appended when the
// city is known. This is the default list formatter.
func Terse(icon string, a attractions.Attraction) string {
	line := icon + " " + orUnknown(a.Name)
	if a.CityName != nil {
		line += " (" + *a.CityName + ")"
	}
	return line
}

// CityList renders "<icon> <name> (<city>)" with Unknown defaults for
// both fields. Used for by-city lookups where the city column is the
// point of the listing.
func CityList(icon string, a attractions.Attraction) string {
	return icon + " " + orUnknown(a.Name) + " (" + orUnknown(a.CityName) + ")"
}

// Full renders a multi-line detail block. Absent fields produce no
// line at all; coordinates only appear when both halves are present.
func Full(icon string, a attractions.Attraction) string {
	lines := []string{icon + " " + orUnknown(a.Name)}

	if a.CityName != nil {
		lines = append(lines, "🏙️ City: "+*a.CityName)
	}
	if a.CountryName != nil {
		lines = append(lines, "🌍 Country: "+*a.CountryName)
	}
	if a.Description != nil {
		lines = append(lines, "📖 Description: "+*a.Description)
	}
	if a.EntryFee != nil {
		lines = append(lines, "💰 Entry fee: "+*a.EntryFee)
	}
	if a.GuidedTours != nil {
		lines = append(lines, "🧭 Guided tours: "+yesNo(*a.GuidedTours))
	}
	if a.ProtectedArea != nil {
		lines = append(lines, "🌳 Protected area: "+yesNo(*a.ProtectedArea))
	}
	if a.Style != nil {
		lines = append(lines, "🏛️ Style: "+*a.Style)
	}
	if a.YearBuilt != nil {
		lines = append(lines, "📅 Year built: "+*a.YearBuilt)
	}
	if a.Latitude != nil && a.Longitude != nil {
		lines = append(lines, "📍 Coordinates: "+coord(*a.Latitude)+", "+coord(*a.Longitude))
	}
	if len(a.ImageURLs) > 0 {
		lines = append(lines, "🖼️ Images: "+strings.Join(a.ImageURLs, ", "))
	}

	return strings.Join(lines, "\n")
}

// RenderList formats every item and joins the blocks under the intro
// line: intro, newline, items separated by blank lines.
func RenderList(intro, icon string, items []attractions.Attraction, f Formatter) string {
	if f == nil {
		f = Terse
	}
	blocks := make([]string, 0, len(items))
	for _, a := range items {
		blocks = append(blocks, f(icon, a))
	}
	return intro + "\n" + strings.Join(blocks, "\n\n")
}

func orUnknown(s *string) string {
	if s == nil {
		return "Unknown"
	}
	return *s
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func coord(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
