package db

import "haru-weather/internal/domain/model"

type HealthDBGateway interface {
	Health() model.ComponentHealthStatus
}
