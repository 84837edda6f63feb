package theme

import (
	"errors"
	"testing"

	"haru-weather/internal/domain/model"
)

type fakeSettingsStore struct {
	darkMode  bool
	saveErr   error
	saveCalls int
}

func (s *fakeSettingsStore) GetDarkMode() bool { return s.darkMode }

func (s *fakeSettingsStore) SaveDarkMode(enabled bool) error {
	s.saveCalls++
	if s.saveErr != nil {
		return s.saveErr
	}
	s.darkMode = enabled
	return nil
}

func (s *fakeSettingsStore) GetFavorites() []model.Favorite { return nil }
func (s *fakeSettingsStore) SaveFavorites([]model.Favorite) error { return nil }
func (s *fakeSettingsStore) GetLastLocation() *model.LastLocation { return nil }
func (s *fakeSettingsStore) SaveLastLocation(model.Coord) error { return nil }
func (s *fakeSettingsStore) ClearAll() error { return nil }
func (s *fakeSettingsStore) IsAvailable() bool { return true }
func (s *fakeSettingsStore) UsageReport() model.UsageReport { return model.UsageReport{} }

func TestLoadThemeRestoresPreference(t *testing.T) {
	useCase := NewThemeUseCase(&fakeSettingsStore{darkMode: true})

	if useCase.IsDarkMode() {
		t.Fatal("expected light mode before loading")
	}

	useCase.LoadTheme()
	if !useCase.IsDarkMode() {
		t.Error("expected dark mode after loading the stored preference")
	}
}

func TestToggleDarkModePersists(t *testing.T) {
	storeFake := &fakeSettingsStore{darkMode: true}
	useCase := NewThemeUseCase(storeFake)
	useCase.LoadTheme()

	if enabled := useCase.ToggleDarkMode(); enabled {
		t.Error("expected the toggle to report light mode")
	}
	if storeFake.darkMode {
		t.Error("expected the choice persisted")
	}
	if storeFake.saveCalls != 1 {
		t.Errorf("expected one save, got %d", storeFake.saveCalls)
	}
}

func TestToggleDarkModeKeepsStateOnSaveFailure(t *testing.T) {
	storeFake := &fakeSettingsStore{saveErr: errors.New("store offline")}
	useCase := NewThemeUseCase(storeFake)

	if enabled := useCase.ToggleDarkMode(); !enabled {
		t.Error("expected the in-memory state flipped despite the failed save")
	}
	if !useCase.IsDarkMode() {
		t.Error("expected dark mode to stay on")
	}
}
