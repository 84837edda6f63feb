package model

// SessionSnapshot is a read-only copy of the weather session state handed to
// UI layers. All mutations go through the session use case operations.
type SessionSnapshot struct {
	CurrentWeather    *CurrentWeather  `json:"currentWeather"`
	Forecast          *Forecast        `json:"forecast"`
	SearchQuery       string           `json:"searchQuery"`
	SearchSuggestions []CitySuggestion `json:"searchSuggestions"`
	Favorites         []Favorite       `json:"favorites"`
	Error             string           `json:"error"`
	IsLoading         bool             `json:"isLoading"`
	IsSearching       bool             `json:"isSearching"`
	IsGettingLocation bool             `json:"isGettingLocation"`
}
