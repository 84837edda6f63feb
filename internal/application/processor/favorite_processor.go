package processor

import (
	"encoding/json"
	"fmt"

	"haru-weather/internal/domain/model"
	"haru-weather/internal/domain/usecase/favorite"
	"haru-weather/pkg/log"

	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

type FavoriteProcessor struct {
	favoriteUseCase favorite.UseCase
}

func NewFavoriteProcessor(favoriteUseCase favorite.UseCase) *FavoriteProcessor {
	return &FavoriteProcessor{
		favoriteUseCase: favoriteUseCase,
	}
}

// HandleMessage implements the sqs.Handler interface
func (p *FavoriteProcessor) HandleMessage(msg *types.Message) error {
	if msg == nil || msg.Body == nil {
		return fmt.Errorf("received nil message or message body")
	}

	var fav model.Favorite
	if err := json.Unmarshal([]byte(*msg.Body), &fav); err != nil {
		return fmt.Errorf("failed to unmarshal message body: %w", err)
	}

	if err := p.favoriteUseCase.RefreshFavorite(fav); err != nil {
		return fmt.Errorf("failed to refresh favorite %s: %w", fav.ID, err)
	}

	log.Infof("Refreshed favorite weather for %s", fav.Name)
	return nil
}
