package schedule

import (
	"testing"
	"time"
)

func TestSchedulerConfigFallbacks(t *testing.T) {
	s := NewFavoriteScheduler(nil, nil, "0 2,10,18 * * *", 0, 0)

	if got := s.getLockTTL(); got != 10*time.Minute {
		t.Errorf("lock TTL fallback = %v, want 10m", got)
	}
	if got := s.getRefreshInterval(); got != time.Minute {
		t.Errorf("refresh interval fallback = %v, want 1m", got)
	}

	s = NewFavoriteScheduler(nil, nil, "", 600, 60)
	if got := s.getLockTTL(); got != 600*time.Second {
		t.Errorf("lock TTL = %v, want 600s", got)
	}
	if got := s.getRefreshInterval(); got != time.Minute {
		t.Errorf("refresh interval = %v, want 1m", got)
	}
}
