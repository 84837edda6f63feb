package session

import (
	"haru-weather/internal/domain/model"
)

type UseCase interface {
	// LoadFavorites replaces the in-memory favorites with the stored list
	LoadFavorites()

	// GetCurrentLocation resolves the precise device position and loads
	// the weather for it. It never falls back to the IP lookup.
	GetCurrentLocation()

	// LoadWeatherByCoords fetches current conditions and the forecast for
	// a coordinate pair concurrently, replacing both on success
	LoadWeatherByCoords(coord model.Coord)

	// SearchWeather resolves the typed query to its first matching city
	// and loads that city's weather
	SearchWeather()

	// SetSearchQuery updates the typed query without side effects
	SetSearchQuery(query string)

	// OnSearchInput refreshes autocomplete suggestions for the current
	// query. Failures never surface an error.
	OnSearchInput()

	// SelectSuggestion loads weather for a chosen suggestion and fills
	// the query with its display name
	SelectSuggestion(suggestion model.CitySuggestion)

	// AddToFavorites saves the current weather as a favorite. Re-adding
	// the same coordinates is a no-op.
	AddToFavorites(weather *model.CurrentWeather)

	// RemoveFromFavorites drops the favorite with the given id
	RemoveFromFavorites(favoriteID string)

	// LoadFavoriteWeather loads weather for a stored favorite
	LoadFavoriteWeather(favorite model.Favorite)

	// Snapshot returns a copy of the session state
	Snapshot() model.SessionSnapshot
}
