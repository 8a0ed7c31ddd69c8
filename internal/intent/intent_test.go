package intent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elatifinajib/tourism-bot-backend-sub000/internal/attractions"
)

type fakeBackend struct {
	items []attractions.RawItem
	err   error
	calls []string
}

func (f *fakeBackend) Fetch(ctx context.Context, path string) ([]attractions.RawItem, error) {
	f.calls = append(f.calls, path)
	return f.items, f.err
}

func TestHandleUnknownIntent(t *testing.T) {
	d := NewDispatcher(&fakeBackend{})

	_, err := d.Handle(context.Background(), "Ask_For_Pizza", nil)
	assert.ErrorIs(t, err, ErrUnknownIntent)
}

func TestHandleMissingParameterSkipsFetch(t *testing.T) {
	backend := &fakeBackend{}
	d := NewDispatcher(backend)

	reply, err := d.Handle(context.Background(), "Ask_Attraction_ByName", nil)
	require.NoError(t, err)
	assert.Equal(t, "Please tell me the name of the attraction.", reply)
	assert.Empty(t, backend.calls, "no backend call may be made without the parameter")
}

func TestHandleBlankParameterSkipsFetch(t *testing.T) {
	backend := &fakeBackend{}
	d := NewDispatcher(backend)

	reply, err := d.Handle(context.Background(), "Ask_Attraction_ByCity", map[string]string{"cityName": "  "})
	require.NoError(t, err)
	assert.Equal(t, "Please tell me which city you are interested in.", reply)
	assert.Empty(t, backend.calls)
}

func TestHandleEscapesParameter(t *testing.T) {
	backend := &fakeBackend{items: []attractions.RawItem{{"name": "Eiffel Tower"}}}
	d := NewDispatcher(backend)

	_, err := d.Handle(context.Background(), "Ask_Attraction_ByName", map[string]string{"name": "Eiffel Tower"})
	require.NoError(t, err)
	require.Len(t, backend.calls, 1)
	assert.Equal(t, "/getLocationByName/Eiffel%20Tower", backend.calls[0])
}

func TestHandleEmptyResult(t *testing.T) {
	d := NewDispatcher(&fakeBackend{items: nil})

	reply, err := d.Handle(context.Background(), "Ask_Natural_Attractions", nil)
	require.NoError(t, err)
	assert.Equal(t, "Sorry, I couldn't find any natural attractions.", reply)
}

func TestHandleRendersListWithIntro(t *testing.T) {
	d := NewDispatcher(&fakeBackend{items: []attractions.RawItem{
		{"name": "Eiffel Tower", "cityName": "Paris"},
		{"attractionName": "Louvre", "city": "Paris"},
	}})

	reply, err := d.Handle(context.Background(), "Ask_All_Attractions", nil)
	require.NoError(t, err)
	assert.Equal(t, "Here are the attractions I found:\n🌟 Eiffel Tower (Paris)\n\n🌟 Louvre (Paris)", reply)
}

func TestHandleFullFormatterForByName(t *testing.T) {
	d := NewDispatcher(&fakeBackend{items: []attractions.RawItem{
		{"name": "Eiffel Tower", "cityName": "Paris", "countryName": "France"},
	}})

	reply, err := d.Handle(context.Background(), "Ask_Attraction_ByName", map[string]string{"name": "Eiffel Tower"})
	require.NoError(t, err)
	assert.Contains(t, reply, "Here is what I found:")
	assert.Contains(t, reply, "🏙️ City: Paris")
	assert.Contains(t, reply, "🌍 Country: France")
}

func TestHandlePropagatesBackendError(t *testing.T) {
	backendErr := errors.New("connection refused")
	d := NewDispatcher(&fakeBackend{err: backendErr})

	_, err := d.Handle(context.Background(), "Ask_All_Attractions", nil)
	assert.ErrorIs(t, err, backendErr)
}

func TestLookup(t *testing.T) {
	cfg, ok := Lookup("Ask_All_Attractions")
	require.True(t, ok)
	assert.Equal(t, attractions.PathAllAttractions, cfg.Path)

	_, ok = Lookup("Nope")
	assert.False(t, ok)
}
