package favorite

import (
	"errors"
	"testing"

	"haru-weather/internal/domain/gateway/queue"
	"haru-weather/internal/domain/model"
)

type fakeSender struct {
	queueName string
	messages  []queue.BatchMessage
	result    *queue.BatchResult
	err       error
	calls     int
}

func (s *fakeSender) SendMessage(queueName string, body any) error { return nil }

func (s *fakeSender) SendMessageBatch(queueName string, messages []queue.BatchMessage) (*queue.BatchResult, error) {
	s.calls++
	s.queueName = queueName
	s.messages = messages
	if s.err != nil {
		return nil, s.err
	}
	if s.result != nil {
		return s.result, nil
	}
	ids := make([]string, len(messages))
	for i, message := range messages {
		ids[i] = message.MessageID
	}
	return &queue.BatchResult{Successful: ids}, nil
}

type fakeWeatherGateway struct {
	weather *model.CurrentWeather
	err     error
}

func (g *fakeWeatherGateway) CurrentByCoords(coord model.Coord) (*model.CurrentWeather, error) {
	return g.weather, g.err
}

func (g *fakeWeatherGateway) CurrentByCity(cityName string) (*model.CurrentWeather, error) {
	return g.weather, g.err
}

func (g *fakeWeatherGateway) ForecastByCoords(coord model.Coord) (*model.Forecast, error) {
	return nil, errors.New("not wired")
}

func (g *fakeWeatherGateway) ForecastByCity(cityName string) (*model.Forecast, error) {
	return nil, errors.New("not wired")
}

func (g *fakeWeatherGateway) SearchCities(query string) []model.CitySuggestion { return nil }

type fakeSettingsStore struct {
	favorites []model.Favorite
	saveCalls int
}

func (s *fakeSettingsStore) GetFavorites() []model.Favorite {
	return append([]model.Favorite{}, s.favorites...)
}

func (s *fakeSettingsStore) SaveFavorites(favorites []model.Favorite) error {
	s.saveCalls++
	s.favorites = append([]model.Favorite{}, favorites...)
	return nil
}

func (s *fakeSettingsStore) GetDarkMode() bool { return false }
func (s *fakeSettingsStore) SaveDarkMode(v bool) error { return nil }
func (s *fakeSettingsStore) GetLastLocation() *model.LastLocation { return nil }
func (s *fakeSettingsStore) SaveLastLocation(model.Coord) error { return nil }
func (s *fakeSettingsStore) ClearAll() error { return nil }
func (s *fakeSettingsStore) IsAvailable() bool { return true }
func (s *fakeSettingsStore) UsageReport() model.UsageReport { return model.UsageReport{} }

func storedFavorites() []model.Favorite {
	return []model.Favorite{
		{ID: "37.5683_126.9778", Name: "서울", Lat: 37.5683, Lon: 126.9778, Temp: 22,
			Weather: model.WeatherCondition{Main: "Clear", Description: "맑음", Icon: "01d"}, AddedAt: "2026-08-30T00:00:00Z"},
		{ID: "35.1796_129.0756", Name: "부산", Lat: 35.1796, Lon: 129.0756, Temp: 25},
	}
}

func TestEnqueueRefreshAllBatchesEveryFavorite(t *testing.T) {
	sender := &fakeSender{}
	useCase := NewFavoriteUseCase("favorite-refresh", sender, &fakeWeatherGateway{}, &fakeSettingsStore{favorites: storedFavorites()})

	if err := useCase.EnqueueRefreshAll("req-1"); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if sender.queueName != "favorite-refresh" {
		t.Errorf("queue = %q", sender.queueName)
	}
	if len(sender.messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(sender.messages))
	}
	if sender.messages[0].MessageID != "favorite-37.5683_126.9778" {
		t.Errorf("unexpected message id %q", sender.messages[0].MessageID)
	}
}

func TestEnqueueRefreshAllEmptyListIsNoOp(t *testing.T) {
	sender := &fakeSender{}
	useCase := NewFavoriteUseCase("favorite-refresh", sender, &fakeWeatherGateway{}, &fakeSettingsStore{})

	if err := useCase.EnqueueRefreshAll("req-2"); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if sender.calls != 0 {
		t.Error("expected no batch send for an empty list")
	}
}

func TestEnqueueRefreshAllWrapsSendFailure(t *testing.T) {
	sender := &fakeSender{err: errors.New("queue offline")}
	useCase := NewFavoriteUseCase("favorite-refresh", sender, &fakeWeatherGateway{}, &fakeSettingsStore{favorites: storedFavorites()})

	if err := useCase.EnqueueRefreshAll("req-3"); err == nil {
		t.Fatal("expected an error")
	}
}

func TestRefreshFavoriteRewritesTempAndCondition(t *testing.T) {
	storeFake := &fakeSettingsStore{favorites: storedFavorites()}
	gateway := &fakeWeatherGateway{weather: &model.CurrentWeather{
		Main:    model.MainMetrics{Temp: 18.6},
		Weather: []model.WeatherCondition{{Main: "Rain", Description: "비", Icon: "10d"}},
	}}
	useCase := NewFavoriteUseCase("favorite-refresh", &fakeSender{}, gateway, storeFake)

	if err := useCase.RefreshFavorite(storeFake.favorites[0]); err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	refreshed := storeFake.favorites[0]
	if refreshed.Temp != 19 {
		t.Errorf("temp = %d, want 19", refreshed.Temp)
	}
	if refreshed.Weather.Description != "비" {
		t.Errorf("condition = %q", refreshed.Weather.Description)
	}
	if refreshed.AddedAt != "2026-08-30T00:00:00Z" {
		t.Error("expected the added timestamp to survive a refresh")
	}
	if storeFake.favorites[1].Temp != 25 {
		t.Error("expected the other favorite untouched")
	}
}

func TestRefreshFavoriteSkipsRemovedEntry(t *testing.T) {
	storeFake := &fakeSettingsStore{favorites: storedFavorites()}
	gateway := &fakeWeatherGateway{weather: &model.CurrentWeather{Main: model.MainMetrics{Temp: 18.6}}}
	useCase := NewFavoriteUseCase("favorite-refresh", &fakeSender{}, gateway, storeFake)

	removed := model.Favorite{ID: "0_0", Name: "유령"}
	if err := useCase.RefreshFavorite(removed); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if storeFake.saveCalls != 0 {
		t.Error("expected no persist for a removed favorite")
	}
}

func TestRefreshFavoritePropagatesFetchFailure(t *testing.T) {
	storeFake := &fakeSettingsStore{favorites: storedFavorites()}
	gateway := &fakeWeatherGateway{err: errors.New("upstream down")}
	useCase := NewFavoriteUseCase("favorite-refresh", &fakeSender{}, gateway, storeFake)

	if err := useCase.RefreshFavorite(storeFake.favorites[0]); err == nil {
		t.Fatal("expected an error")
	}
	if storeFake.saveCalls != 0 {
		t.Error("expected no persist after a failed fetch")
	}
}
