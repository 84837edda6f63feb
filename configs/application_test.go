package configs

import (
	"testing"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
)

func loadApplicationYml(t *testing.T) *viper.Viper {
	t.Helper()
	v := viper.New()
	v.SetConfigFile("application.yml")
	if err := v.ReadInConfig(); err != nil {
		t.Fatalf("failed to read application.yml: %v", err)
	}
	return v
}

// The shipped cron default must be accepted by the standard five field parser
// cron.AddFunc uses, otherwise the favorite refresh schedule never starts.
func TestShippedCronDefaultParses(t *testing.T) {
	v := loadApplicationYml(t)

	expression := v.GetString("app.favorite.refresh.cron")
	if expression == "" {
		t.Fatal("app.favorite.refresh.cron is not set")
	}

	schedule, err := cron.ParseStandard(expression)
	if err != nil {
		t.Fatalf("default cron expression %q rejected: %v", expression, err)
	}

	next := schedule.Next(time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC))
	if next.Hour() != 2 || next.Minute() != 0 {
		t.Errorf("first run of the day = %v, want 02:00", next)
	}
}

func TestShippedThemeDefault(t *testing.T) {
	v := loadApplicationYml(t)

	if !v.IsSet("app.theme.default-dark") {
		t.Fatal("app.theme.default-dark is not set")
	}
	if v.GetBool("app.theme.default-dark") {
		t.Error("expected light mode as the shipped default")
	}
}
