package model

import "strconv"

// Coord is a geographic coordinate pair as the upstream API encodes it.
type Coord struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Key derives the identity used for favorites and cache entries: the shortest
// decimal rendering of both components joined by an underscore.
func (c Coord) Key() string {
	return strconv.FormatFloat(c.Lat, 'f', -1, 64) + "_" + strconv.FormatFloat(c.Lon, 'f', -1, 64)
}

// WeatherCondition is one condition entry of an upstream payload.
type WeatherCondition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// MainMetrics bundles the thermodynamic readings of a payload.
type MainMetrics struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Pressure  float64 `json:"pressure"`
	Humidity  float64 `json:"humidity"`
}

type Wind struct {
	Speed float64 `json:"speed"`
	Deg   float64 `json:"deg"`
}

type Clouds struct {
	All int `json:"all"`
}

type Sys struct {
	Type    int    `json:"type,omitempty"`
	ID      int64  `json:"id,omitempty"`
	Country string `json:"country"`
	Sunrise int64  `json:"sunrise"`
	Sunset  int64  `json:"sunset"`
}

// CurrentWeather is the current-conditions payload. It is replaced wholesale
// on each fetch, never merged.
type CurrentWeather struct {
	Coord      Coord              `json:"coord"`
	Weather    []WeatherCondition `json:"weather"`
	Base       string             `json:"base,omitempty"`
	Main       MainMetrics        `json:"main"`
	Visibility int                `json:"visibility"`
	Wind       Wind               `json:"wind"`
	Clouds     Clouds             `json:"clouds"`
	Dt         int64              `json:"dt"`
	Sys        Sys                `json:"sys"`
	Timezone   int                `json:"timezone"`
	ID         int64              `json:"id"`
	Name       string             `json:"name"`
	Cod        int                `json:"cod"`
}

// ForecastEntry is one three-hour prediction slot.
type ForecastEntry struct {
	Dt         int64              `json:"dt"`
	Main       MainMetrics        `json:"main"`
	Weather    []WeatherCondition `json:"weather"`
	Wind       Wind               `json:"wind"`
	Visibility int                `json:"visibility"`
	Pop        float64            `json:"pop"`
	DtTxt      string             `json:"dt_txt"`
}

// CityInfo summarizes the city a forecast belongs to.
type CityInfo struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Coord      Coord  `json:"coord"`
	Country    string `json:"country"`
	Population int64  `json:"population"`
	Timezone   int    `json:"timezone"`
	Sunrise    int64  `json:"sunrise"`
	Sunset     int64  `json:"sunset"`
}

// Forecast is the ordered multi-day prediction payload.
type Forecast struct {
	Cod     string          `json:"cod"`
	Message float64         `json:"message"`
	Cnt     int             `json:"cnt"`
	List    []ForecastEntry `json:"list"`
	City    CityInfo        `json:"city"`
}
