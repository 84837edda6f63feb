package model

// CitySuggestion is one autocomplete candidate. Transient: it lives only for
// the duration of a search session and is never persisted.
type CitySuggestion struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Country string  `json:"country"`
	State   string  `json:"state,omitempty"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// Coord returns the suggestion's coordinate pair.
func (s CitySuggestion) Coord() Coord {
	return Coord{Lat: s.Lat, Lon: s.Lon}
}
