package schedule

import (
	"time"

	"haru-weather/internal/domain/gateway/store"
	"haru-weather/pkg/log"
	"haru-weather/pkg/msg"

	"github.com/go-co-op/gocron/v2"
)

// StorageScheduler logs a periodic storage usage report so footprint growth
// shows up in the logs before it becomes a problem.
type StorageScheduler struct {
	scheduler     gocron.Scheduler
	settingsStore store.SettingsStore
	interval      time.Duration
}

func NewStorageScheduler(settingsStore store.SettingsStore, interval time.Duration) (*StorageScheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	return &StorageScheduler{
		scheduler:     scheduler,
		settingsStore: settingsStore,
		interval:      interval,
	}, nil
}

// InitStorageScheduleTasks initializes the usage report schedule
func (scheduler *StorageScheduler) InitStorageScheduleTasks() error {
	_, err := scheduler.scheduler.NewJob(
		gocron.DurationJob(scheduler.interval),
		gocron.NewTask(scheduler.ReportUsage),
	)
	if err != nil {
		return err
	}

	scheduler.scheduler.Start()
	return nil
}

// ReportUsage logs the current storage footprint
func (scheduler *StorageScheduler) ReportUsage() {
	report := scheduler.settingsStore.UsageReport()
	log.Info(msg.GetMessage("storage.cron.usage", report.TotalFormatted, len(report.Items)))
}

// Stop gracefully stops the scheduler
func (scheduler *StorageScheduler) Stop() error {
	return scheduler.scheduler.Shutdown()
}
