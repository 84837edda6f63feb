package api

import (
	"context"
	"strconv"
	"strings"
	"time"

	"haru-weather/internal/domain/apperr"
	"haru-weather/internal/domain/model"
	"haru-weather/internal/domain/model/external"
	"haru-weather/pkg/http"
	"haru-weather/pkg/log"
	"haru-weather/pkg/redis"
)

const (
	currentCachePrefix  = "haru:weather:cache:current:"
	forecastCachePrefix = "haru:weather:cache:forecast:"
	searchLimit         = 5

	// OpenWeatherMap uses "kr" as its Korean language code, but the
	// geocoding local_names map is keyed by ISO 639-1 "ko".
	localNameLang = "ko"
)

// openWeatherGateway implements WeatherGateway against the OpenWeatherMap API
type openWeatherGateway struct {
	dataClient *http.Client
	geoClient  *http.Client
	apiKey     string
	lang       string
	cache      *redis.Client
	cacheTTL   time.Duration
}

// NewOpenWeatherGateway creates a WeatherGateway backed by OpenWeatherMap.
// The cache client is optional: when nil, every call goes to the API.
func NewOpenWeatherGateway(baseURL, geoURL, apiKey, lang string, cache *redis.Client, cacheTTL time.Duration) WeatherGateway {
	options := http.ClientOptions{
		Logger: http.ZapHTTPLogger{},
	}

	return &openWeatherGateway{
		dataClient: http.NewHttpClient(baseURL, options),
		geoClient:  http.NewHttpClient(geoURL, options),
		apiKey:     apiKey,
		lang:       lang,
		cache:      cache,
		cacheTTL:   cacheTTL,
	}
}

// CurrentByCoords gets the current weather for a coordinate pair
func (g *openWeatherGateway) CurrentByCoords(coord model.Coord) (*model.CurrentWeather, error) {
	cacheKey := currentCachePrefix + coord.Key()
	if cached := g.cachedCurrent(cacheKey); cached != nil {
		return cached, nil
	}

	weather, err := g.fetchCurrent(map[string]string{
		"lat": formatCoord(coord.Lat),
		"lon": formatCoord(coord.Lon),
	})
	if err != nil {
		return nil, err
	}

	g.storeCache(cacheKey, weather)
	return weather, nil
}

// CurrentByCity gets the current weather for a city by name
func (g *openWeatherGateway) CurrentByCity(cityName string) (*model.CurrentWeather, error) {
	return g.fetchCurrent(map[string]string{"q": cityName})
}

// ForecastByCoords gets the 5-day forecast for a coordinate pair
func (g *openWeatherGateway) ForecastByCoords(coord model.Coord) (*model.Forecast, error) {
	cacheKey := forecastCachePrefix + coord.Key()
	if cached := g.cachedForecast(cacheKey); cached != nil {
		return cached, nil
	}

	forecast, err := g.fetchForecast(map[string]string{
		"lat": formatCoord(coord.Lat),
		"lon": formatCoord(coord.Lon),
	})
	if err != nil {
		return nil, err
	}

	g.storeCache(cacheKey, forecast)
	return forecast, nil
}

// ForecastByCity gets the 5-day forecast for a city by name
func (g *openWeatherGateway) ForecastByCity(cityName string) (*model.Forecast, error) {
	return g.fetchForecast(map[string]string{"q": cityName})
}

// SearchCities queries the geocoding API for autocomplete suggestions.
// Failures are logged and degrade to an empty result so typing in the
// search box never surfaces an error.
func (g *openWeatherGateway) SearchCities(query string) []model.CitySuggestion {
	successResp, _, _, err := g.geoClient.Request().
		WithPath("/direct").
		WithQueryParams(g.withAuth(map[string]string{
			"q":     query,
			"limit": strconv.Itoa(searchLimit),
		})).
		WithSuccessResp(&[]external.GeoDirectResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		log.Warnf("city search failed for %q: %v", query, err)
		return []model.CitySuggestion{}
	}

	results := *successResp.(*[]external.GeoDirectResponse)
	suggestions := make([]model.CitySuggestion, 0, len(results))
	for _, item := range results {
		coord := model.Coord{Lat: item.Lat, Lon: item.Lon}
		suggestions = append(suggestions, model.CitySuggestion{
			ID:      coord.Key(),
			Name:    item.DisplayName(localNameLang),
			Country: item.Country,
			State:   item.State,
			Lat:     item.Lat,
			Lon:     item.Lon,
		})
	}
	return suggestions
}

func (g *openWeatherGateway) fetchCurrent(params map[string]string) (*model.CurrentWeather, error) {
	successResp, errResp, status, err := g.dataClient.Request().
		WithPath("/weather").
		WithQueryParams(g.withAuth(params)).
		WithSuccessResp(&model.CurrentWeather{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		return nil, mapWeatherError(status, errResp, err)
	}
	return successResp.(*model.CurrentWeather), nil
}

func (g *openWeatherGateway) fetchForecast(params map[string]string) (*model.Forecast, error) {
	successResp, errResp, status, err := g.dataClient.Request().
		WithPath("/forecast").
		WithQueryParams(g.withAuth(params)).
		WithSuccessResp(&model.Forecast{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		return nil, mapWeatherError(status, errResp, err)
	}
	return successResp.(*model.Forecast), nil
}

func (g *openWeatherGateway) withAuth(params map[string]string) map[string]string {
	params["appid"] = g.apiKey
	params["units"] = "metric"
	params["lang"] = g.lang
	return params
}

func (g *openWeatherGateway) cachedCurrent(key string) *model.CurrentWeather {
	if g.cache == nil {
		return nil
	}
	ctx, cancel := cacheContext()
	defer cancel()

	var weather model.CurrentWeather
	if err := g.cache.GetJSON(ctx, key, &weather); err != nil {
		log.Warnf("weather cache read failed: %v", err)
		return nil
	}
	if weather.Cod == 0 {
		return nil
	}
	return &weather
}

func (g *openWeatherGateway) cachedForecast(key string) *model.Forecast {
	if g.cache == nil {
		return nil
	}
	ctx, cancel := cacheContext()
	defer cancel()

	var forecast model.Forecast
	if err := g.cache.GetJSON(ctx, key, &forecast); err != nil {
		log.Warnf("weather cache read failed: %v", err)
		return nil
	}
	if forecast.Cod == "" {
		return nil
	}
	return &forecast
}

func (g *openWeatherGateway) storeCache(key string, value any) {
	if g.cache == nil {
		return
	}
	ctx, cancel := cacheContext()
	defer cancel()

	if err := g.cache.SetJSON(ctx, key, value, g.cacheTTL); err != nil {
		log.Warnf("weather cache write failed: %v", err)
	}
}

func cacheContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 2*time.Second)
}

// mapWeatherError converts an API failure into the classified error the
// session layer surfaces to the user.
func mapWeatherError(status int, errResp any, err error) error {
	if status == 0 {
		return apperr.New(apperr.KindNetworkUnavailable, "weather.error.network", err)
	}

	switch status {
	case 401:
		return apperr.New(apperr.KindInvalidCredential, "weather.error.invalid-key", err)
	case 404:
		return apperr.New(apperr.KindLocationNotFound, "weather.error.not-found", err)
	case 429:
		return apperr.New(apperr.KindRateLimited, "weather.error.rate-limited", err)
	}

	if errResp != nil {
		if apiErr, ok := errResp.(*external.APIErrorResponse); ok && strings.TrimSpace(apiErr.Message) != "" {
			return apperr.WithMessage(apperr.KindUpstream, apiErr.Message, err)
		}
	}
	return apperr.New(apperr.KindUpstream, "weather.error.upstream", err)
}

func formatCoord(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
