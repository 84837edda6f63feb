package health

import (
	"testing"

	"haru-weather/internal/domain/model"
	"haru-weather/pkg/sqs"
)

type fakeStoreHealthGateway struct {
	health model.ComponentHealthStatus
}

func (g *fakeStoreHealthGateway) Health() model.ComponentHealthStatus { return g.health }

type fakeComponentGateway struct {
	health model.ComponentHealthStatus
}

func (g *fakeComponentGateway) Health() model.ComponentHealthStatus { return g.health }

func (g *fakeComponentGateway) RegisterWorker(name string, worker *sqs.Worker) {}

func (g *fakeComponentGateway) UnregisterWorker(name string) {}

type fakeSettingsStore struct {
	available  bool
	probeCalls int
}

func (s *fakeSettingsStore) IsAvailable() bool {
	s.probeCalls++
	return s.available
}

func (s *fakeSettingsStore) GetFavorites() []model.Favorite       { return nil }
func (s *fakeSettingsStore) SaveFavorites([]model.Favorite) error { return nil }
func (s *fakeSettingsStore) GetDarkMode() bool                    { return false }
func (s *fakeSettingsStore) SaveDarkMode(bool) error              { return nil }
func (s *fakeSettingsStore) GetLastLocation() *model.LastLocation { return nil }
func (s *fakeSettingsStore) SaveLastLocation(model.Coord) error   { return nil }
func (s *fakeSettingsStore) ClearAll() error                      { return nil }
func (s *fakeSettingsStore) UsageReport() model.UsageReport       { return model.UsageReport{} }

func up() model.ComponentHealthStatus {
	return model.ComponentHealthStatus{
		Status:  model.StatusUp,
		Details: map[string]string{"message": string(model.StatusUp)},
	}
}

func down(message string) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{
		Status:  model.StatusDown,
		Details: map[string]string{"message": message},
	}
}

func TestCheckHealthAllComponentsUp(t *testing.T) {
	useCase := NewHealthUseCase(
		&fakeSettingsStore{available: true},
		&fakeStoreHealthGateway{health: up()},
		&fakeComponentGateway{health: up()},
		&fakeComponentGateway{health: up()},
	)

	response := useCase.CheckHealth()
	if response.Status != model.StatusUp {
		t.Errorf("overall = %v, want UP", response.Status)
	}
	if response.Store.Details["probe"] != "ok" {
		t.Errorf("expected the keyspace probe detail, got %v", response.Store.Details)
	}
}

func TestCheckHealthStoreConnectivityDown(t *testing.T) {
	settings := &fakeSettingsStore{available: true}
	useCase := NewHealthUseCase(
		settings,
		&fakeStoreHealthGateway{health: down("ping failed")},
		&fakeComponentGateway{health: up()},
		&fakeComponentGateway{health: up()},
	)

	response := useCase.CheckHealth()
	if response.Status != model.StatusDown {
		t.Errorf("overall = %v, want DOWN", response.Status)
	}
	if response.Store.Details["message"] != "ping failed" {
		t.Errorf("unexpected store details %v", response.Store.Details)
	}
	if settings.probeCalls != 0 {
		t.Error("expected no keyspace probe when connectivity is down")
	}
}

func TestCheckHealthStoreProbeFails(t *testing.T) {
	useCase := NewHealthUseCase(
		&fakeSettingsStore{available: false},
		&fakeStoreHealthGateway{health: up()},
		&fakeComponentGateway{health: up()},
		&fakeComponentGateway{health: up()},
	)

	response := useCase.CheckHealth()
	if response.Status != model.StatusDown {
		t.Errorf("overall = %v, want DOWN", response.Status)
	}
	if response.Store.Details["message"] != "store probe failed" {
		t.Errorf("unexpected store details %v", response.Store.Details)
	}
}

func TestCheckHealthAnyComponentTakesOverallDown(t *testing.T) {
	useCase := NewHealthUseCase(
		&fakeSettingsStore{available: true},
		&fakeStoreHealthGateway{health: up()},
		&fakeComponentGateway{health: up()},
		&fakeComponentGateway{health: down("no workers registered")},
	)

	response := useCase.CheckHealth()
	if response.Status != model.StatusDown {
		t.Errorf("overall = %v, want DOWN", response.Status)
	}
	if response.Database.Status != model.StatusUp {
		t.Error("expected database UP")
	}
}
