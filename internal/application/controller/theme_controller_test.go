package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

type fakeThemeUseCase struct {
	darkMode bool
}

func (u *fakeThemeUseCase) IsDarkMode() bool { return u.darkMode }

func (u *fakeThemeUseCase) ToggleDarkMode() bool {
	u.darkMode = !u.darkMode
	return u.darkMode
}

func (u *fakeThemeUseCase) LoadTheme() {}

func newThemeServer(useCase *fakeThemeUseCase) *echo.Echo {
	e := echo.New()
	NewThemeController(e.Group("/haru"), useCase).InitThemeRoutes()
	return e
}

func decodeTheme(t *testing.T, rec *httptest.ResponseRecorder) themeResponse {
	t.Helper()
	var got themeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	return got
}

func TestGetTheme(t *testing.T) {
	e := newThemeServer(&fakeThemeUseCase{darkMode: true})

	req := httptest.NewRequest(http.MethodGet, "/haru/theme", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := decodeTheme(t, rec); !got.DarkMode {
		t.Error("expected dark mode on")
	}
}

func TestToggleTheme(t *testing.T) {
	useCase := &fakeThemeUseCase{darkMode: true}
	e := newThemeServer(useCase)

	req := httptest.NewRequest(http.MethodPost, "/haru/theme/toggle", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := decodeTheme(t, rec); got.DarkMode {
		t.Error("expected dark mode off after the toggle")
	}
	if useCase.darkMode {
		t.Error("expected the toggle to reach the use case")
	}
}
