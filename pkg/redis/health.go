package redis

import (
	"context"
	"fmt"
	"time"
)

// HealthCheck performs a health check on the Redis connection: basic
// connectivity plus a set/get/delete round trip.
func HealthCheck(ctx context.Context, client *Client) error {
	if err := client.Ping(ctx); err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}

	testKey := "health_check_test"
	testValue := "test_value"

	if err := client.Set(ctx, testKey, testValue, time.Minute); err != nil {
		return fmt.Errorf("set operation failed: %w", err)
	}

	value, err := client.Get(ctx, testKey)
	if err != nil {
		return fmt.Errorf("get operation failed: %w", err)
	}

	if value != testValue {
		return fmt.Errorf("value mismatch: expected %s, got %s", testValue, value)
	}

	if err := client.Delete(ctx, testKey); err != nil {
		return fmt.Errorf("delete operation failed: %w", err)
	}

	return nil
}
