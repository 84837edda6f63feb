package favorite

import (
	"haru-weather/internal/domain/model"
)

type UseCase interface {
	// EnqueueRefreshAll sends every stored favorite to the refresh queue
	EnqueueRefreshAll(requestID string) error

	// RefreshFavorite re-fetches the weather for one favorite and updates
	// its stored summary
	RefreshFavorite(favorite model.Favorite) error
}
