package session

import (
	"strings"
	"sync"

	"haru-weather/internal/domain/apperr"
	"haru-weather/internal/domain/gateway/api"
	"haru-weather/internal/domain/gateway/store"
	"haru-weather/internal/domain/model"
	"haru-weather/internal/domain/usecase/location"
	"haru-weather/pkg/log"
)

const maxSuggestions = 5

// sessionUseCase holds the single weather session. State mutations happen
// under the mutex; network calls run outside it, so overlapping loads race
// and the last one to resolve wins.
type sessionUseCase struct {
	apiGateway      api.WeatherGateway
	settingsStore   store.SettingsStore
	locationUseCase location.UseCase

	mutex sync.Mutex
	state model.SessionSnapshot
}

func NewSessionUseCase(apiGateway api.WeatherGateway, settingsStore store.SettingsStore, locationUseCase location.UseCase) UseCase {
	return &sessionUseCase{
		apiGateway:      apiGateway,
		settingsStore:   settingsStore,
		locationUseCase: locationUseCase,
		state: model.SessionSnapshot{
			SearchSuggestions: []model.CitySuggestion{},
			Favorites:         []model.Favorite{},
		},
	}
}

// LoadFavorites replaces the in-memory favorites with the stored list
func (uc *sessionUseCase) LoadFavorites() {
	favorites := uc.settingsStore.GetFavorites()

	uc.mutex.Lock()
	defer uc.mutex.Unlock()
	uc.state.Favorites = favorites
}

// GetCurrentLocation resolves the precise device position and loads the
// weather for it. A resolution failure sets the session error; the IP
// fallback is reserved for explicit resolver calls.
func (uc *sessionUseCase) GetCurrentLocation() {
	uc.mutex.Lock()
	uc.state.IsGettingLocation = true
	uc.state.Error = ""
	uc.mutex.Unlock()

	defer func() {
		uc.mutex.Lock()
		uc.state.IsGettingLocation = false
		uc.mutex.Unlock()
	}()

	coord, err := uc.locationUseCase.CurrentPosition()
	if err != nil {
		log.Warnf("current location failed: %v", err)
		uc.setError(err)
		return
	}

	uc.LoadWeatherByCoords(coord)
}

// LoadWeatherByCoords fetches current conditions and the forecast
// concurrently. Both payloads are replaced together; when either fetch fails
// the previous state stays intact and only the error is set.
func (uc *sessionUseCase) LoadWeatherByCoords(coord model.Coord) {
	uc.mutex.Lock()
	uc.state.IsLoading = true
	uc.state.Error = ""
	uc.mutex.Unlock()

	defer func() {
		uc.mutex.Lock()
		uc.state.IsLoading = false
		uc.mutex.Unlock()
	}()

	var wg sync.WaitGroup
	var weather *model.CurrentWeather
	var forecast *model.Forecast
	var weatherErr, forecastErr error

	wg.Add(1)
	go func() {
		defer wg.Done()
		weather, weatherErr = uc.apiGateway.CurrentByCoords(coord)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		forecast, forecastErr = uc.apiGateway.ForecastByCoords(coord)
	}()

	wg.Wait()

	if weatherErr != nil {
		uc.setError(weatherErr)
		return
	}
	if forecastErr != nil {
		uc.setError(forecastErr)
		return
	}

	uc.mutex.Lock()
	uc.state.CurrentWeather = weather
	uc.state.Forecast = forecast
	uc.mutex.Unlock()

	if err := uc.settingsStore.SaveLastLocation(coord); err != nil {
		log.Warnf("last location save failed: %v", err)
	}
}

// SearchWeather resolves the typed query to its first matching city and
// loads that city's weather. A blank query is a silent no-op.
func (uc *sessionUseCase) SearchWeather() {
	uc.mutex.Lock()
	query := strings.TrimSpace(uc.state.SearchQuery)
	uc.mutex.Unlock()

	if query == "" {
		return
	}

	uc.mutex.Lock()
	uc.state.IsSearching = true
	uc.state.Error = ""
	uc.mutex.Unlock()

	defer func() {
		uc.mutex.Lock()
		uc.state.IsSearching = false
		uc.mutex.Unlock()
	}()

	cities := uc.apiGateway.SearchCities(query)
	if len(cities) == 0 {
		uc.setError(apperr.New(apperr.KindLocationNotFound, "weather.error.not-found", nil))
		return
	}

	uc.loadCity(cities[0].Coord(), "")
}

// SetSearchQuery updates the typed query without side effects
func (uc *sessionUseCase) SetSearchQuery(query string) {
	uc.mutex.Lock()
	defer uc.mutex.Unlock()
	uc.state.SearchQuery = query
}

// OnSearchInput refreshes autocomplete suggestions for the current query.
// Queries shorter than two characters clear the list, and lookup failures
// leave it empty without touching the session error.
func (uc *sessionUseCase) OnSearchInput() {
	uc.mutex.Lock()
	query := uc.state.SearchQuery
	uc.mutex.Unlock()

	if len([]rune(query)) < 2 {
		uc.mutex.Lock()
		uc.state.SearchSuggestions = []model.CitySuggestion{}
		uc.mutex.Unlock()
		return
	}

	suggestions := uc.apiGateway.SearchCities(query)
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}

	uc.mutex.Lock()
	defer uc.mutex.Unlock()
	uc.state.SearchSuggestions = suggestions
}

// SelectSuggestion loads weather for a chosen suggestion and echoes its
// display name back into the query
func (uc *sessionUseCase) SelectSuggestion(suggestion model.CitySuggestion) {
	uc.mutex.Lock()
	uc.state.IsSearching = true
	uc.state.Error = ""
	uc.mutex.Unlock()

	defer func() {
		uc.mutex.Lock()
		uc.state.IsSearching = false
		uc.mutex.Unlock()
	}()

	uc.loadCity(suggestion.Coord(), suggestion.Name+", "+suggestion.Country)
}

// loadCity fetches current conditions then the forecast for a coordinate
// pair. Both must succeed before any state changes; query is echoed into the
// search box when non-empty.
func (uc *sessionUseCase) loadCity(coord model.Coord, query string) {
	weather, err := uc.apiGateway.CurrentByCoords(coord)
	if err != nil {
		uc.setError(err)
		return
	}

	forecast, err := uc.apiGateway.ForecastByCoords(coord)
	if err != nil {
		uc.setError(err)
		return
	}

	uc.mutex.Lock()
	defer uc.mutex.Unlock()
	uc.state.CurrentWeather = weather
	uc.state.Forecast = forecast
	uc.state.SearchSuggestions = []model.CitySuggestion{}
	if query != "" {
		uc.state.SearchQuery = query
	}
}

// AddToFavorites saves the current weather as a favorite at the front of the
// list. Re-adding coordinates that are already saved changes nothing.
func (uc *sessionUseCase) AddToFavorites(weather *model.CurrentWeather) {
	if weather == nil {
		return
	}

	favorite := model.NewFavorite(weather)

	uc.mutex.Lock()
	for _, existing := range uc.state.Favorites {
		if existing.ID == favorite.ID {
			uc.mutex.Unlock()
			return
		}
	}
	uc.state.Favorites = append([]model.Favorite{favorite}, uc.state.Favorites...)
	favorites := uc.snapshotFavorites()
	uc.mutex.Unlock()

	if err := uc.settingsStore.SaveFavorites(favorites); err != nil {
		log.Warnf("favorites save failed: %v", err)
	}
}

// RemoveFromFavorites drops the favorite with the given id and persists the
// result even when the id was absent
func (uc *sessionUseCase) RemoveFromFavorites(favoriteID string) {
	uc.mutex.Lock()
	remaining := make([]model.Favorite, 0, len(uc.state.Favorites))
	for _, favorite := range uc.state.Favorites {
		if favorite.ID != favoriteID {
			remaining = append(remaining, favorite)
		}
	}
	uc.state.Favorites = remaining
	favorites := uc.snapshotFavorites()
	uc.mutex.Unlock()

	if err := uc.settingsStore.SaveFavorites(favorites); err != nil {
		log.Warnf("favorites save failed: %v", err)
	}
}

// LoadFavoriteWeather loads weather for a stored favorite
func (uc *sessionUseCase) LoadFavoriteWeather(favorite model.Favorite) {
	uc.LoadWeatherByCoords(favorite.Coord())
}

// Snapshot returns a copy of the session state
func (uc *sessionUseCase) Snapshot() model.SessionSnapshot {
	uc.mutex.Lock()
	defer uc.mutex.Unlock()

	snapshot := uc.state
	snapshot.SearchSuggestions = append([]model.CitySuggestion{}, uc.state.SearchSuggestions...)
	snapshot.Favorites = uc.snapshotFavorites()
	return snapshot
}

func (uc *sessionUseCase) snapshotFavorites() []model.Favorite {
	return append([]model.Favorite{}, uc.state.Favorites...)
}

func (uc *sessionUseCase) setError(err error) {
	uc.mutex.Lock()
	defer uc.mutex.Unlock()
	uc.state.Error = apperr.UserMessage(err)
}
