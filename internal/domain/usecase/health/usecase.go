package health

import "haru-weather/internal/domain/model"

type UseCase interface {
	CheckHealth() model.HealthResponse
}
