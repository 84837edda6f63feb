package api

import (
	"haru-weather/internal/domain/model"
)

// WeatherGateway defines the interface for weather provider API calls
type WeatherGateway interface {
	// CurrentByCoords gets the current weather for a coordinate pair
	CurrentByCoords(coord model.Coord) (*model.CurrentWeather, error)

	// CurrentByCity gets the current weather for a city by name
	CurrentByCity(cityName string) (*model.CurrentWeather, error)

	// ForecastByCoords gets the 5-day forecast for a coordinate pair
	ForecastByCoords(coord model.Coord) (*model.Forecast, error)

	// ForecastByCity gets the 5-day forecast for a city by name
	ForecastByCity(cityName string) (*model.Forecast, error)

	// SearchCities searches cities by name prefix for autocomplete.
	// It never fails: lookup errors degrade to an empty result.
	SearchCities(query string) []model.CitySuggestion
}
