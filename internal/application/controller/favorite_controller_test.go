package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"haru-weather/internal/domain/model"

	"github.com/labstack/echo/v4"
)

// fakeSessionUseCase serves a scripted snapshot and records calls.
type fakeSessionUseCase struct {
	snapshot    model.SessionSnapshot
	loadedCoord model.Coord
	removedID   string
	addCalls    int
	loadCalls   int
}

func (u *fakeSessionUseCase) LoadFavorites() {}
func (u *fakeSessionUseCase) GetCurrentLocation() {}
func (u *fakeSessionUseCase) LoadWeatherByCoords(coord model.Coord) { u.loadedCoord = coord }
func (u *fakeSessionUseCase) SearchWeather() {}
func (u *fakeSessionUseCase) SetSearchQuery(query string) {}
func (u *fakeSessionUseCase) OnSearchInput() {}
func (u *fakeSessionUseCase) SelectSuggestion(s model.CitySuggestion) {}
func (u *fakeSessionUseCase) RemoveFromFavorites(id string) { u.removedID = id }
func (u *fakeSessionUseCase) Snapshot() model.SessionSnapshot { return u.snapshot }

func (u *fakeSessionUseCase) AddToFavorites(weather *model.CurrentWeather) {
	u.addCalls++
	u.snapshot.Favorites = append([]model.Favorite{model.NewFavorite(weather)}, u.snapshot.Favorites...)
}

func (u *fakeSessionUseCase) LoadFavoriteWeather(favorite model.Favorite) {
	u.loadCalls++
	u.loadedCoord = favorite.Coord()
}

func newFavoriteServer(useCase *fakeSessionUseCase) *echo.Echo {
	e := echo.New()
	NewFavoriteController(e.Group("/haru"), useCase).InitFavoriteRoutes()
	return e
}

func TestAddFavoriteWithoutLoadedWeather(t *testing.T) {
	e := newFavoriteServer(&fakeSessionUseCase{})

	req := httptest.NewRequest(http.MethodPost, "/haru/favorites", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusConflict)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if body["error"] != "no weather loaded" {
		t.Errorf("unexpected error %q", body["error"])
	}
}

func TestAddFavoriteFromCurrentWeather(t *testing.T) {
	useCase := &fakeSessionUseCase{
		snapshot: model.SessionSnapshot{
			CurrentWeather: &model.CurrentWeather{
				Coord: model.Coord{Lat: 37.5683, Lon: 126.9778},
				Name:  "서울",
				Sys:   model.Sys{Country: "KR"},
				Main:  model.MainMetrics{Temp: 22.5},
			},
		},
	}
	e := newFavoriteServer(useCase)

	req := httptest.NewRequest(http.MethodPost, "/haru/favorites", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if useCase.addCalls != 1 {
		t.Errorf("expected one add, got %d", useCase.addCalls)
	}

	var favorites []model.Favorite
	if err := json.Unmarshal(rec.Body.Bytes(), &favorites); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if len(favorites) != 1 || favorites[0].ID != "37.5683_126.9778" {
		t.Errorf("unexpected favorites %+v", favorites)
	}
}

func TestRemoveFavorite(t *testing.T) {
	useCase := &fakeSessionUseCase{}
	e := newFavoriteServer(useCase)

	req := httptest.NewRequest(http.MethodDelete, "/haru/favorites/37.5683_126.9778", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if useCase.removedID != "37.5683_126.9778" {
		t.Errorf("removed id = %q", useCase.removedID)
	}
}

func TestLoadFavoriteWeather(t *testing.T) {
	useCase := &fakeSessionUseCase{
		snapshot: model.SessionSnapshot{
			Favorites: []model.Favorite{{ID: "35.1796_129.0756", Name: "부산", Lat: 35.1796, Lon: 129.0756}},
		},
	}
	e := newFavoriteServer(useCase)

	req := httptest.NewRequest(http.MethodPost, "/haru/favorites/35.1796_129.0756/weather", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if useCase.loadCalls != 1 {
		t.Errorf("expected one load, got %d", useCase.loadCalls)
	}
	if useCase.loadedCoord.Lat != 35.1796 || useCase.loadedCoord.Lon != 129.0756 {
		t.Errorf("unexpected coord %+v", useCase.loadedCoord)
	}
}

func TestLoadFavoriteWeatherUnknownID(t *testing.T) {
	useCase := &fakeSessionUseCase{}
	e := newFavoriteServer(useCase)

	req := httptest.NewRequest(http.MethodPost, "/haru/favorites/missing/weather", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	if useCase.loadCalls != 0 {
		t.Error("expected no load for an unknown id")
	}
}
