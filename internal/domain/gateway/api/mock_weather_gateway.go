package api

import (
	"strings"
	"time"

	"haru-weather/internal/domain/model"
)

const forecastSlots = 40

// mockCities is the offline autocomplete table.
var mockCities = []model.CitySuggestion{
	{ID: "37.5683_126.9778", Name: "서울", Country: "KR", Lat: 37.5683, Lon: 126.9778},
	{ID: "35.1796_129.0756", Name: "부산", Country: "KR", Lat: 35.1796, Lon: 129.0756},
	{ID: "37.4563_126.7052", Name: "인천", Country: "KR", Lat: 37.4563, Lon: 126.7052},
	{ID: "35.8714_128.6014", Name: "대구", Country: "KR", Lat: 35.8714, Lon: 128.6014},
	{ID: "36.3504_127.3845", Name: "대전", Country: "KR", Lat: 36.3504, Lon: 127.3845},
	{ID: "35.1595_126.8526", Name: "광주", Country: "KR", Lat: 35.1595, Lon: 126.8526},
	{ID: "35.5384_129.3114", Name: "울산", Country: "KR", Lat: 35.5384, Lon: 129.3114},
	{ID: "37.2636_127.0286", Name: "수원", Country: "KR", Lat: 37.2636, Lon: 127.0286},
	{ID: "37.6584_126.832", Name: "고양", Country: "KR", Lat: 37.6584, Lon: 126.8320},
	{ID: "37.241_127.1776", Name: "용인", Country: "KR", Lat: 37.2410, Lon: 127.1776},
}

// mockWeatherGateway serves fixed Seoul payloads so the whole flow works
// without an API key. Payloads vary only in their timestamps.
type mockWeatherGateway struct {
	delay time.Duration
	now   func() time.Time
}

// NewMockWeatherGateway creates the offline WeatherGateway. The delay
// simulates upstream latency and may be zero.
func NewMockWeatherGateway(delay time.Duration) WeatherGateway {
	return &mockWeatherGateway{delay: delay, now: time.Now}
}

func (g *mockWeatherGateway) CurrentByCoords(coord model.Coord) (*model.CurrentWeather, error) {
	return g.current("서울"), nil
}

func (g *mockWeatherGateway) CurrentByCity(cityName string) (*model.CurrentWeather, error) {
	return g.current(cityName), nil
}

func (g *mockWeatherGateway) ForecastByCoords(coord model.Coord) (*model.Forecast, error) {
	return g.forecast(), nil
}

func (g *mockWeatherGateway) ForecastByCity(cityName string) (*model.Forecast, error) {
	return g.forecast(), nil
}

func (g *mockWeatherGateway) SearchCities(query string) []model.CitySuggestion {
	g.sleep()

	needle := strings.ToLower(query)
	matches := make([]model.CitySuggestion, 0, searchLimit)
	for _, city := range mockCities {
		if strings.Contains(strings.ToLower(city.Name), needle) {
			matches = append(matches, city)
			if len(matches) == searchLimit {
				break
			}
		}
	}
	return matches
}

func (g *mockWeatherGateway) current(cityName string) *model.CurrentWeather {
	g.sleep()

	now := g.now()
	return &model.CurrentWeather{
		Coord:   model.Coord{Lat: 37.5683, Lon: 126.9778},
		Weather: []model.WeatherCondition{{ID: 800, Main: "Clear", Description: "맑음", Icon: "01d"}},
		Base:    "stations",
		Main: model.MainMetrics{
			Temp:      22.5,
			FeelsLike: 23.1,
			TempMin:   19.2,
			TempMax:   25.8,
			Pressure:  1013,
			Humidity:  65,
		},
		Visibility: 10000,
		Wind:       model.Wind{Speed: 2.3, Deg: 180},
		Clouds:     model.Clouds{All: 20},
		Dt:         now.Unix(),
		Sys: model.Sys{
			Type:    1,
			ID:      8105,
			Country: "KR",
			Sunrise: now.Add(-time.Hour).Unix(),
			Sunset:  now.Add(2 * time.Hour).Unix(),
		},
		Timezone: 32400,
		ID:       1835848,
		Name:     cityName,
		Cod:      200,
	}
}

func (g *mockWeatherGateway) forecast() *model.Forecast {
	g.sleep()

	now := g.now()
	list := make([]model.ForecastEntry, 0, forecastSlots)
	conditions := []model.WeatherCondition{
		{ID: 800, Main: "Clear", Description: "맑음", Icon: "01d"},
		{ID: 801, Main: "Clouds", Description: "구름 조금", Icon: "02d"},
		{ID: 500, Main: "Rain", Description: "비", Icon: "10d"},
	}

	for i := 0; i < forecastSlots; i++ {
		at := now.Add(time.Duration(i) * 3 * time.Hour)
		list = append(list, model.ForecastEntry{
			Dt: at.Unix(),
			Main: model.MainMetrics{
				Temp:      20 + float64(i%10),
				FeelsLike: 22 + float64(i%8),
				TempMin:   18 + float64(i%6),
				TempMax:   25 + float64(i%8),
				Pressure:  1010 + float64(i%20),
				Humidity:  50 + float64(i%40),
			},
			Weather:    []model.WeatherCondition{conditions[i%len(conditions)]},
			Wind:       model.Wind{Speed: float64(i % 10), Deg: float64((i * 45) % 360)},
			Visibility: 10000,
			Pop:        float64(i%8) / 10,
			DtTxt:      at.UTC().Format("2006-01-02 15:04:05"),
		})
	}

	return &model.Forecast{
		Cod:     "200",
		Message: 0,
		Cnt:     forecastSlots,
		List:    list,
		City: model.CityInfo{
			ID:         1835848,
			Name:       "서울",
			Coord:      model.Coord{Lat: 37.5683, Lon: 126.9778},
			Country:    "KR",
			Population: 10349312,
			Timezone:   32400,
			Sunrise:    now.Add(-time.Hour).Unix(),
			Sunset:     now.Add(2 * time.Hour).Unix(),
		},
	}
}

func (g *mockWeatherGateway) sleep() {
	if g.delay > 0 {
		time.Sleep(g.delay)
	}
}
