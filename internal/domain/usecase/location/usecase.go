package location

import (
	"haru-weather/internal/domain/model"
)

type UseCase interface {
	// CurrentPosition returns a precise device fix, reusing a recent one
	// when available
	CurrentPosition() (model.Coord, error)

	// LocationByIP resolves an approximate location from the public IP
	LocationByIP() (*model.ResolvedLocation, error)

	// CheckPermission reports the geolocation permission state without
	// triggering a prompt
	CheckPermission() model.PermissionState

	// Resolve tries the device position first and falls back to the IP
	// lookup. Both failing yields a single consolidated error.
	Resolve() (*model.ResolvedLocation, error)
}
