package health

import (
	"haru-weather/internal/domain/gateway/db"
	"haru-weather/internal/domain/gateway/queue"
	"haru-weather/internal/domain/gateway/store"
	"haru-weather/internal/domain/model"
)

type healthUseCase struct {
	settingsStore store.SettingsStore
	storeGateway  store.HealthGateway
	dbGateway     db.HealthDBGateway
	queueGateway  queue.HealthGateway
}

func NewHealthUseCase(settingsStore store.SettingsStore, storeGateway store.HealthGateway, dbGateway db.HealthDBGateway, queueGateway queue.HealthGateway) UseCase {
	return &healthUseCase{
		settingsStore: settingsStore,
		storeGateway:  storeGateway,
		dbGateway:     dbGateway,
		queueGateway:  queueGateway,
	}
}

// CheckHealth aggregates the store, database and queue health. The store is
// the only critical component: the app degrades without the others but loses
// persistence entirely without the store.
func (useCase *healthUseCase) CheckHealth() model.HealthResponse {
	storeHealth := useCase.storeHealth()
	dbHealth := useCase.dbGateway.Health()
	queueHealth := useCase.queueGateway.Health()

	overallStatus := model.StatusUp
	if storeHealth.Status != model.StatusUp || dbHealth.Status != model.StatusUp || queueHealth.Status != model.StatusUp {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:   overallStatus,
		Store:    storeHealth,
		Database: dbHealth,
		Queue:    queueHealth,
	}
}

// storeHealth checks backend connectivity first, then the keyspace probe on
// top of it. The probe exercises the namespaced keys the store actually uses.
func (useCase *healthUseCase) storeHealth() model.ComponentHealthStatus {
	health := useCase.storeGateway.Health()
	if health.Status != model.StatusUp {
		return health
	}

	if !useCase.settingsStore.IsAvailable() {
		return model.ComponentHealthStatus{
			Status: model.StatusDown,
			Details: map[string]string{
				"message": "store probe failed",
			},
		}
	}

	if health.Details == nil {
		health.Details = map[string]string{}
	}
	health.Details["probe"] = "ok"
	return health
}
