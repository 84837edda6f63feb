package model

import (
	"math"
	"time"
)

// Favorite is a saved location. ID is the coordinate-derived key, so two
// cities sharing a name at different coordinates stay distinct and re-adding
// the same coordinate is a no-op.
type Favorite struct {
	ID      string           `json:"id"`
	Name    string           `json:"name"`
	Country string           `json:"country"`
	Lat     float64          `json:"lat"`
	Lon     float64          `json:"lon"`
	Temp    int              `json:"temp"`
	Weather WeatherCondition `json:"weather"`
	AddedAt string           `json:"addedAt"`
}

// NewFavorite derives a Favorite from a current-weather snapshot: coordinate
// key as identity, temperature rounded to the nearest integer and the first
// condition entry as the summary.
func NewFavorite(weather *CurrentWeather) Favorite {
	var condition WeatherCondition
	if len(weather.Weather) > 0 {
		condition = weather.Weather[0]
	}

	return Favorite{
		ID:      weather.Coord.Key(),
		Name:    weather.Name,
		Country: weather.Sys.Country,
		Lat:     weather.Coord.Lat,
		Lon:     weather.Coord.Lon,
		Temp:    int(math.Round(weather.Main.Temp)),
		Weather: condition,
		AddedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

// Coord returns the favorite's coordinate pair.
func (f Favorite) Coord() Coord {
	return Coord{Lat: f.Lat, Lon: f.Lon}
}
