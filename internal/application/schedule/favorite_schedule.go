package schedule

import (
	"context"
	"time"

	"haru-weather/internal/domain/usecase/favorite"
	"haru-weather/pkg/log"
	"haru-weather/pkg/redis"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// FavoriteSchedulerConfig holds configuration for the favorite refresh scheduler
type FavoriteSchedulerConfig struct {
	CronExpression  string
	LockTTL         time.Duration
	RefreshInterval time.Duration
}

// FavoriteScheduler periodically enqueues every stored favorite for a weather
// refresh. A distributed lock makes sure only one instance runs the schedule.
type FavoriteScheduler struct {
	cron        *cron.Cron
	useCase     favorite.UseCase
	redisClient *redis.Client
	config      *FavoriteSchedulerConfig
}

// NewFavoriteScheduler creates a new favorite refresh scheduler with distributed locking support
func NewFavoriteScheduler(useCase favorite.UseCase, redisClient *redis.Client, cronExpression string, lockTTL int, refreshInterval int) *FavoriteScheduler {
	return &FavoriteScheduler{
		cron:        cron.New(),
		useCase:     useCase,
		redisClient: redisClient,
		config: &FavoriteSchedulerConfig{
			CronExpression:  cronExpression,
			LockTTL:         time.Duration(lockTTL) * time.Second,
			RefreshInterval: time.Duration(refreshInterval) * time.Second,
		},
	}
}

// InitFavoriteScheduleTasks initializes the refresh schedule once the
// distributed lock is held
func (s *FavoriteScheduler) InitFavoriteScheduleTasks(ctx context.Context) {
	go func() {
		lock := redis.NewScheduledTaskLock(
			s.redisClient,
			"favorite_refresh_scheduler",
			s.getLockTTL(),
			s.getRefreshInterval(),
			"weather_schedules",
		)

		err := lock.Lock(ctx)
		if err != nil {
			log.Errorf("Failed to acquire distributed lock, favorite scheduler will not be initialized: %v", err)
			return
		}

		refreshErrChan := lock.AutoRefresh(ctx)

		_, err = s.cron.AddFunc(s.config.CronExpression, s.ExecuteScheduledTask)
		if err != nil {
			log.Errorf("Failed to initialize favorite scheduler, cron will not be started: %v", err)
			return
		}

		s.cron.Start()
		log.Infof("Favorite refresh scheduler started with cron expression: %s", s.config.CronExpression)

		// Stop the schedule when the lock refresh fails or ctx ends
		err = <-refreshErrChan

		if s.cron != nil {
			cronCtx := s.cron.Stop()
			<-cronCtx.Done()
		}

		if err != nil {
			log.Errorf("Favorite refresh scheduler stopped due to auto-refresh failure: %v", err)
		} else {
			log.Info("Favorite refresh scheduler stopped gracefully")
		}
	}()
}

// ExecuteScheduledTask enqueues all favorites for refresh
func (s *FavoriteScheduler) ExecuteScheduledTask() {
	requestID := uuid.New().String()

	if err := s.useCase.EnqueueRefreshAll(requestID); err != nil {
		log.Error("Failed to enqueue favorites for refresh", zap.String("request_id", requestID), zap.Error(err))
	}
}

// Stop gracefully stops the scheduler
func (s *FavoriteScheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
}

func (s *FavoriteScheduler) getLockTTL() time.Duration {
	if s.config.LockTTL > 0 {
		return s.config.LockTTL
	}
	return 10 * time.Minute
}

func (s *FavoriteScheduler) getRefreshInterval() time.Duration {
	if s.config.RefreshInterval > 0 {
		return s.config.RefreshInterval
	}
	return 1 * time.Minute
}
