package store

import (
	"context"
	"time"

	"haru-weather/internal/domain/model"
	"haru-weather/pkg/redis"
)

const healthTimeout = 3 * time.Second

type HealthGateway interface {
	Health() model.ComponentHealthStatus
}

// RedisHealthGateway checks connectivity of the settings store backend with a
// ping and a set/get/delete round trip.
type RedisHealthGateway struct {
	client *redis.Client
}

var _ HealthGateway = (*RedisHealthGateway)(nil)

func NewRedisHealthGateway(client *redis.Client) *RedisHealthGateway {
	return &RedisHealthGateway{client: client}
}

func (gateway *RedisHealthGateway) Health() model.ComponentHealthStatus {
	ctx, cancel := context.WithTimeout(context.Background(), healthTimeout)
	defer cancel()

	if err := redis.HealthCheck(ctx, gateway.client); err != nil {
		return model.ComponentHealthStatus{
			Status: model.StatusDown,
			Details: map[string]string{
				"message": err.Error(),
			},
		}
	}

	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"message":    string(model.StatusUp),
			"round_trip": "ok",
		},
	}
}
