package theme

import (
	"sync"

	"haru-weather/internal/domain/gateway/store"
	"haru-weather/pkg/log"
)

type themeUseCase struct {
	settingsStore store.SettingsStore

	mutex    sync.Mutex
	darkMode bool
}

func NewThemeUseCase(settingsStore store.SettingsStore) UseCase {
	return &themeUseCase{settingsStore: settingsStore}
}

func (uc *themeUseCase) IsDarkMode() bool {
	uc.mutex.Lock()
	defer uc.mutex.Unlock()
	return uc.darkMode
}

// ToggleDarkMode flips the theme and persists the choice. A failed write
// keeps the new in-memory state; it just does not survive a restart.
func (uc *themeUseCase) ToggleDarkMode() bool {
	uc.mutex.Lock()
	uc.darkMode = !uc.darkMode
	enabled := uc.darkMode
	uc.mutex.Unlock()

	if err := uc.settingsStore.SaveDarkMode(enabled); err != nil {
		log.Warnf("dark mode save failed: %v", err)
	}
	return enabled
}

// LoadTheme restores the persisted preference, or the store default when
// nothing has been saved yet
func (uc *themeUseCase) LoadTheme() {
	enabled := uc.settingsStore.GetDarkMode()

	uc.mutex.Lock()
	defer uc.mutex.Unlock()
	uc.darkMode = enabled
}
