package models

import "encoding/json"

// Theme selects the presentation color scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// SortMode selects the secondary ordering of the derived task view.
type SortMode string

const (
	SortByDate         SortMode = "date"
	SortByPriority     SortMode = "priority"
	SortByAlphabetical SortMode = "alphabetical"
)

// StatusFilter narrows the derived view by completion state.
type StatusFilter string

const (
	StatusAll       StatusFilter = "all"
	StatusPending   StatusFilter = "pending"
	StatusCompleted StatusFilter = "completed"
)

// FilterCategoryAll is the sentinel FilterCategory value meaning "no
// category filter".
const FilterCategoryAll = "all"

// Settings is the single persisted settings record. Known fields are typed;
// keys this version does not recognize survive a load/store round trip
// through Extra so that a newer writer's settings are not silently dropped.
type Settings struct {
	Theme          Theme        `json:"theme"`
	SortBy         SortMode     `json:"sortBy"`
	FilterCategory string       `json:"filterCategory"`
	FilterStatus   StatusFilter `json:"filterStatus"`

	Extra map[string]json.RawMessage `json:"-"`
}

// DefaultSettings returns the settings record seeded on first run.
func DefaultSettings() Settings {
	return Settings{
		Theme:          ThemeLight,
		SortBy:         SortByDate,
		FilterCategory: FilterCategoryAll,
		FilterStatus:   StatusAll,
	}
}

// settingsKnown mirrors Settings' typed fields for (un)marshaling.
type settingsKnown struct {
	Theme          Theme        `json:"theme"`
	SortBy         SortMode     `json:"sortBy"`
	FilterCategory string       `json:"filterCategory"`
	FilterStatus   StatusFilter `json:"filterStatus"`
}

var settingsKnownKeys = map[string]struct{}{
	"theme":          {},
	"sortBy":         {},
	"filterCategory": {},
	"filterStatus":   {},
}

// MarshalJSON emits the typed fields plus every retained unknown key as one
// flat object.
func (s Settings) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, 4+len(s.Extra))
	for k, v := range s.Extra {
		out[k] = v
	}
	known, err := json.Marshal(settingsKnown{
		Theme:          s.Theme,
		SortBy:         s.SortBy,
		FilterCategory: s.FilterCategory,
		FilterStatus:   s.FilterStatus,
	})
	if err != nil {
		return nil, err
	}
	var knownMap map[string]json.RawMessage
	if err := json.Unmarshal(known, &knownMap); err != nil {
		return nil, err
	}
	for k, v := range knownMap {
		out[k] = v
	}
	return json.Marshal(out)
}

// UnmarshalJSON reads the typed fields and stashes every other key in Extra.
func (s *Settings) UnmarshalJSON(data []byte) error {
	var known settingsKnown
	if err := json.Unmarshal(data, &known); err != nil {
		return err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.Theme = known.Theme
	s.SortBy = known.SortBy
	s.FilterCategory = known.FilterCategory
	s.FilterStatus = known.FilterStatus
	s.Extra = nil
	for k, v := range raw {
		if _, ok := settingsKnownKeys[k]; ok {
			continue
		}
		if s.Extra == nil {
			s.Extra = make(map[string]json.RawMessage)
		}
		s.Extra[k] = v
	}
	return nil
}
