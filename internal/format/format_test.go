package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/elatifinajib/tourism-bot-backend-sub000/internal/attractions"
)

func TestTerseWithCity(t *testing.T) {
	a := attractions.Normalize(attractions.RawItem{"name": "Eiffel Tower", "cityName": "Paris"})
	assert.Equal(t, "🌟 Eiffel Tower (Paris)", Terse("🌟", a))
}

func TestTerseWithoutCity(t *testing.T) {
	a := attractions.Normalize(attractions.RawItem{"name": "Stonehenge"})
	assert.Equal(t, "🌟 Stonehenge", Terse("🌟", a))
}

func TestTerseUnknownName(t *testing.T) {
	a := attractions.Normalize(attractions.RawItem{"cityName": "Paris"})
	assert.Equal(t, "🌟 Unknown (Paris)", Terse("🌟", a))
}

func TestCityListDefaultsIndependently(t *testing.T) {
	a := attractions.Normalize(attractions.RawItem{"name": "Louvre"})
	assert.Equal(t, "🏙️ Louvre (Unknown)", CityList("🏙️", a))

	b := attractions.Normalize(attractions.RawItem{"cityName": "Paris"})
	assert.Equal(t, "🏙️ Unknown (Paris)", CityList("🏙️", b))
}

func TestFullAllFields(t *testing.T) {
	a := attractions.Normalize(attractions.RawItem{
		"name":                 "Colosseum",
		"cityName":             "Rome",
		"countryName":          "Italy",
		"description":          "An ancient amphitheatre",
		"entryFee":             "16",
		"guidedToursAvailable": true,
		"isProtectedArea":      false,
		"style":                "Roman",
		"yearBuilt":            float64(80),
		"latitude":             41.8902,
		"longitude":            12.4922,
		"imageUrls":            []any{"http://img/a.jpg", "http://img/b.jpg"},
	})

	got := Full("🌟", a)
	want := strings.Join([]string{
		"🌟 Colosseum",
		"🏙️ City: Rome",
		"🌍 Country: Italy",
		"📖 Description: An ancient amphitheatre",
		"💰 Entry fee: 16",
		"🧭 Guided tours: Yes",
		"🌳 Protected area: No",
		"🏛️ Style: Roman",
		"📅 Year built: 80",
		"📍 Coordinates: 41.8902, 12.4922",
		"🖼️ Images: http://img/a.jpg, http://img/b.jpg",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestFullSkipsAbsentFields(t *testing.T) {
	a := attractions.Normalize(attractions.RawItem{"name": "Petra", "countryName": "Jordan"})
	got := Full("🌟", a)
	assert.Equal(t, "🌟 Petra\n🌍 Country: Jordan", got)
	assert.NotContains(t, got, "City")
	assert.NotContains(t, got, "Coordinates")
}

func TestFullCoordinatesNeedBothHalves(t *testing.T) {
	a := attractions.Normalize(attractions.RawItem{"name": "Petra", "latitude": 30.3285})
	assert.NotContains(t, Full("🌟", a), "Coordinates")
}

func TestFullEmptyImagesProduceNoLine(t *testing.T) {
	a := attractions.Normalize(attractions.RawItem{"name": "Petra", "imageUrls": []any{}})
	assert.NotContains(t, Full("🌟", a), "Images")
}

func TestRenderList(t *testing.T) {
	items := []attractions.Attraction{
		attractions.Normalize(attractions.RawItem{"name": "Eiffel Tower", "cityName": "Paris"}),
		attractions.Normalize(attractions.RawItem{"name": "Louvre", "cityName": "Paris"}),
	}

	got := RenderList("Here are the attractions:", "🌟", items, Terse)
	want := "Here are the attractions:\n🌟 Eiffel Tower (Paris)\n\n🌟 Louvre (Paris)"
	assert.Equal(t, want, got)
}

func TestRenderListDefaultsToTerse(t *testing.T) {
	items := []attractions.Attraction{
		attractions.Normalize(attractions.RawItem{"name": "Stonehenge"}),
	}
	assert.Equal(t, "Intro:\n🌟 Stonehenge", RenderList("Intro:", "🌟", items, nil))
}
