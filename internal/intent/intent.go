// Package intent maps classified intents to backend lookups and reply
// rendering.
package intent

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"github.com/elatifinajib/tourism-bot-backend-sub000/internal/attractions"
	"github.com/elatifinajib/tourism-bot-backend-sub000/internal/format"
)

// ErrUnknownIntent is returned when no configuration exists for the
// requested intent. The caller decides how to apologize.
var ErrUnknownIntent = errors.New("unknown intent")

// Shared replies for the failure modes that are never surfaced as
// transport errors, used by every inbound surface.
const (
	ReplyUnknownIntent = "Sorry, I didn't understand your request."
	ReplyFailure       = "Sorry, something went wrong while looking that up. Please try again later."
)

// Config describes how one intent is fulfilled: which backend path to
// hit, how to decorate the reply, and what to say when the backend has
// nothing. Entries are defined once at startup and never mutated.
type Config struct {
	Path      string
	Icon      string
	Intro     string
	Empty     string
	Param     string // required path parameter, empty when none
	Prompt    string // sent when Param is missing from the request
	Formatter format.Formatter
}

var registry = map[string]Config{
	"Ask_All_Attractions": {
		Path:  attractions.PathAllAttractions,
		Icon:  "🌟",
		Intro: "Here are the attractions I found:",
		Empty: "Sorry, I couldn't find any attractions.",
	},
	"Ask_Natural_Attractions": {
		Path:  attractions.PathNaturalAttractions,
		Icon:  "🌿",
		Intro: "Here are some natural attractions:",
		Empty: "Sorry, I couldn't find any natural attractions.",
	},
	"Ask_Historical_Attractions": {
		Path:  attractions.PathHistoricalAttractions,
		Icon:  "🏛️",
		Intro: "Here are some historical attractions:",
		Empty: "Sorry, I couldn't find any historical attractions.",
	},
	"Ask_Cultural_Attractions": {
		Path:  attractions.PathCulturalAttractions,
		Icon:  "🎭",
		Intro: "Here are some cultural attractions:",
		Empty: "Sorry, I couldn't find any cultural attractions.",
	},
	"Ask_Artificial_Attractions": {
		Path:  attractions.PathArtificialAttractions,
		Icon:  "🏗️",
		Intro: "Here are some artificial attractions:",
		Empty: "Sorry, I couldn't find any artificial attractions.",
	},
	"Ask_Attraction_ByName": {
		Path:      attractions.PathLocationByName,
		Icon:      "🌟",
		Intro:     "Here is what I found:",
		Empty:     "Sorry, I couldn't find an attraction with that name.",
		Param:     "name",
		Prompt:    "Please tell me the name of the attraction.",
		Formatter: format.Full,
	},
	"Ask_Attraction_ByCity": {
		Path:      attractions.PathLocationByCity,
		Icon:      "🏙️",
		Intro:     "Here are the attractions in that city:",
		Empty:     "Sorry, I couldn't find attractions in that city.",
		Param:     "cityName",
		Prompt:    "Please tell me which city you are interested in.",
		Formatter: format.CityList,
	},
}

// Lookup returns the configuration for an intent name
func Lookup(name string) (Config, bool) {
	cfg, ok := registry[name]
	return cfg, ok
}

// Fetcher is the slice of the backend client the dispatcher needs
type Fetcher interface {
	Fetch(ctx context.Context, path string) ([]attractions.RawItem, error)
}

// Dispatcher fulfills intents against the attractions backend
type Dispatcher struct {
	backend Fetcher
}

// NewDispatcher creates a dispatcher backed by the given fetcher
func NewDispatcher(backend Fetcher) *Dispatcher {
	return &Dispatcher{backend: backend}
}

// Handle fulfills a single intent: look up the config, resolve the
// path parameter, fetch once, and render. Missing-parameter and empty
// results are user-level replies, not errors; transport failures
// propagate so the caller can log them and fall back to a generic
// apology. Each call is one independent try, nothing is retried or
// cached.
func (d *Dispatcher) Handle(ctx context.Context, name string, params map[string]string) (string, error) {
	cfg, ok := registry[name]
	if !ok {
		return "", ErrUnknownIntent
	}

	path := cfg.Path
	if cfg.Param != "" {
		value := strings.TrimSpace(params[cfg.Param])
		if value == "" {
			return cfg.Prompt, nil
		}
		path += url.PathEscape(value)
	}

	items, err := d.backend.Fetch(ctx, path)
	if err != nil {
		return "", err
	}
	if len(items) == 0 {
		return cfg.Empty, nil
	}

	normalized := make([]attractions.Attraction, 0, len(items))
	for _, item := range items {
		normalized = append(normalized, attractions.Normalize(item))
	}

	return format.RenderList(cfg.Intro, cfg.Icon, normalized, cfg.Formatter), nil
}
