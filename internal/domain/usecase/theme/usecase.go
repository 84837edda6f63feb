package theme

type UseCase interface {
	// IsDarkMode reports the active theme
	IsDarkMode() bool

	// ToggleDarkMode flips the theme, persists the choice and returns the
	// new state
	ToggleDarkMode() bool

	// LoadTheme restores the persisted theme preference
	LoadTheme()
}
