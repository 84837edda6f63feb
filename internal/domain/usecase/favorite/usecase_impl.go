package favorite

import (
	"fmt"
	"math"

	"haru-weather/internal/domain/gateway/api"
	"haru-weather/internal/domain/gateway/queue"
	"haru-weather/internal/domain/gateway/store"
	"haru-weather/internal/domain/model"
	"haru-weather/pkg/log"
	"haru-weather/pkg/msg"

	"go.uber.org/zap"
)

type favoriteUseCase struct {
	queueName     string
	apiGateway    api.WeatherGateway
	settingsStore store.SettingsStore
	queueSender   queue.Sender
}

func NewFavoriteUseCase(queueName string, queueSender queue.Sender, apiGateway api.WeatherGateway, settingsStore store.SettingsStore) UseCase {
	return &favoriteUseCase{
		queueName:     queueName,
		apiGateway:    apiGateway,
		settingsStore: settingsStore,
		queueSender:   queueSender,
	}
}

// EnqueueRefreshAll sends every stored favorite to the refresh queue in one
// batch. An empty list is a no-op.
func (uc *favoriteUseCase) EnqueueRefreshAll(requestID string) error {
	log.Info(msg.GetMessage("favorite.cron.start", requestID), zap.String("request_id", requestID))

	favorites := uc.settingsStore.GetFavorites()
	if len(favorites) == 0 {
		log.Info(msg.GetMessage("favorite.cron.end", requestID), zap.String("request_id", requestID))
		return nil
	}

	messages := make([]queue.BatchMessage, len(favorites))
	for i, fav := range favorites {
		messages[i] = queue.BatchMessage{
			MessageID: fmt.Sprintf("favorite-%s", fav.ID),
			Body:      fav,
		}
	}

	result, err := uc.queueSender.SendMessageBatch(uc.queueName, messages)
	if err != nil {
		return fmt.Errorf("failed to enqueue favorites: %w", err)
	}

	for _, failedID := range result.Failed {
		log.Warnf("failed to enqueue favorite %s", failedID)
	}

	log.Info(msg.GetMessage("favorite.cron.enqueued", len(result.Successful)),
		zap.String("request_id", requestID))
	log.Info(msg.GetMessage("favorite.cron.end", requestID), zap.String("request_id", requestID))
	return nil
}

// RefreshFavorite re-fetches the current weather for one favorite and
// rewrites its stored temperature and condition. The favorite keeps its
// identity and added timestamp. A favorite removed since enqueueing is
// skipped.
func (uc *favoriteUseCase) RefreshFavorite(favorite model.Favorite) error {
	weather, err := uc.apiGateway.CurrentByCoords(favorite.Coord())
	if err != nil {
		return fmt.Errorf("failed to refresh favorite %s: %w", favorite.ID, err)
	}

	favorites := uc.settingsStore.GetFavorites()
	updated := false
	for i := range favorites {
		if favorites[i].ID != favorite.ID {
			continue
		}
		favorites[i].Temp = int(math.Round(weather.Main.Temp))
		if len(weather.Weather) > 0 {
			favorites[i].Weather = weather.Weather[0]
		}
		updated = true
		break
	}

	if !updated {
		log.Debugf("favorite %s no longer stored, skipping refresh", favorite.ID)
		return nil
	}

	return uc.settingsStore.SaveFavorites(favorites)
}
