package store

import (
	"context"
	"encoding/json"
	"math"
	"strconv"
	"time"

	"haru-weather/internal/domain/model"
	"haru-weather/pkg/log"
)

// Logical keys in the persistent store.
const (
	FavoritesKey    = "haru:weather:favorites"
	DarkModeKey     = "haru:weather:dark-mode"
	LastLocationKey = "haru:weather:last-location"

	probeKey = "haru:weather:probe"
)

var usageKeys = map[string]string{
	"FAVORITES":     FavoritesKey,
	"DARK_MODE":     DarkModeKey,
	"LAST_LOCATION": LastLocationKey,
}

// KV is the key-value surface the settings store needs. pkg/redis.Client
// satisfies it; tests supply an in-memory implementation.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	StrLen(ctx context.Context, key string) (int64, error)
}

// SettingsStore persists user preferences and saved locations. Reads fall
// back to defaults and writes are best effort: a dead store never takes the
// app down, it only loses persistence.
type SettingsStore interface {
	GetFavorites() []model.Favorite
	SaveFavorites(favorites []model.Favorite) error
	GetDarkMode() bool
	SaveDarkMode(enabled bool) error
	GetLastLocation() *model.LastLocation
	SaveLastLocation(coord model.Coord) error
	ClearAll() error
	IsAvailable() bool
	UsageReport() model.UsageReport
}

type settingsStore struct {
	kv              KV
	timeout         time.Duration
	defaultDarkMode bool
}

// NewSettingsStore creates a SettingsStore over the given key-value backend.
// defaultDarkMode is the value reported while no explicit preference exists.
func NewSettingsStore(kv KV, defaultDarkMode bool) SettingsStore {
	return &settingsStore{
		kv:              kv,
		timeout:         3 * time.Second,
		defaultDarkMode: defaultDarkMode,
	}
}

func (s *settingsStore) context() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), s.timeout)
}

// GetFavorites returns the saved list, newest first. Unreadable or corrupt
// data degrades to an empty list.
func (s *settingsStore) GetFavorites() []model.Favorite {
	ctx, cancel := s.context()
	defer cancel()

	raw, err := s.kv.Get(ctx, FavoritesKey)
	if err != nil {
		log.Warnf("favorites read failed: %v", err)
		return []model.Favorite{}
	}
	if raw == "" {
		return []model.Favorite{}
	}

	var favorites []model.Favorite
	if err := json.Unmarshal([]byte(raw), &favorites); err != nil {
		log.Warnf("favorites payload corrupt, resetting: %v", err)
		return []model.Favorite{}
	}
	return favorites
}

func (s *settingsStore) SaveFavorites(favorites []model.Favorite) error {
	ctx, cancel := s.context()
	defer cancel()

	data, err := json.Marshal(favorites)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, FavoritesKey, data, 0); err != nil {
		log.Warnf("favorites write failed: %v", err)
		return err
	}
	return nil
}

// GetDarkMode returns the stored preference, or the configured default when
// none has been saved yet.
func (s *settingsStore) GetDarkMode() bool {
	ctx, cancel := s.context()
	defer cancel()

	raw, err := s.kv.Get(ctx, DarkModeKey)
	if err != nil {
		log.Warnf("dark mode read failed: %v", err)
		return s.defaultDarkMode
	}
	if raw == "" {
		return s.defaultDarkMode
	}

	enabled, err := strconv.ParseBool(raw)
	if err != nil {
		return s.defaultDarkMode
	}
	return enabled
}

func (s *settingsStore) SaveDarkMode(enabled bool) error {
	ctx, cancel := s.context()
	defer cancel()

	if err := s.kv.Set(ctx, DarkModeKey, strconv.FormatBool(enabled), 0); err != nil {
		log.Warnf("dark mode write failed: %v", err)
		return err
	}
	return nil
}

func (s *settingsStore) GetLastLocation() *model.LastLocation {
	ctx, cancel := s.context()
	defer cancel()

	raw, err := s.kv.Get(ctx, LastLocationKey)
	if err != nil {
		log.Warnf("last location read failed: %v", err)
		return nil
	}
	if raw == "" {
		return nil
	}

	var location model.LastLocation
	if err := json.Unmarshal([]byte(raw), &location); err != nil {
		log.Warnf("last location payload corrupt: %v", err)
		return nil
	}
	return &location
}

func (s *settingsStore) SaveLastLocation(coord model.Coord) error {
	ctx, cancel := s.context()
	defer cancel()

	data, err := json.Marshal(model.LastLocation{
		Coord:     coord,
		Timestamp: time.Now().UnixMilli(),
	})
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, LastLocationKey, data, 0); err != nil {
		log.Warnf("last location write failed: %v", err)
		return err
	}
	return nil
}

// ClearAll removes every logical key. Other tenants of the backend are
// untouched.
func (s *settingsStore) ClearAll() error {
	ctx, cancel := s.context()
	defer cancel()

	if err := s.kv.Delete(ctx, FavoritesKey, DarkModeKey, LastLocationKey); err != nil {
		log.Warnf("store clear failed: %v", err)
		return err
	}
	return nil
}

// IsAvailable probes the backend with a write, read and delete round trip.
func (s *settingsStore) IsAvailable() bool {
	ctx, cancel := s.context()
	defer cancel()

	if err := s.kv.Set(ctx, probeKey, "test", time.Minute); err != nil {
		return false
	}
	if _, err := s.kv.Get(ctx, probeKey); err != nil {
		return false
	}
	return s.kv.Delete(ctx, probeKey) == nil
}

// UsageReport measures the stored byte size of each logical key.
func (s *settingsStore) UsageReport() model.UsageReport {
	ctx, cancel := s.context()
	defer cancel()

	report := model.UsageReport{Items: make(map[string]model.KeyUsage, len(usageKeys))}
	for name, key := range usageKeys {
		size, err := s.kv.StrLen(ctx, key)
		if err != nil {
			log.Warnf("usage probe failed for %s: %v", key, err)
			size = 0
		}
		report.Items[name] = model.KeyUsage{
			Key:           key,
			Size:          size,
			SizeFormatted: FormatBytes(size),
		}
		report.Total += size
	}
	report.TotalFormatted = FormatBytes(report.Total)
	return report
}

// FormatBytes renders a byte count with binary units and at most two
// decimal places.
func FormatBytes(bytes int64) string {
	if bytes == 0 {
		return "0 Bytes"
	}

	units := []string{"Bytes", "KB", "MB", "GB"}
	exponent := int(math.Floor(math.Log(float64(bytes)) / math.Log(1024)))
	if exponent >= len(units) {
		exponent = len(units) - 1
	}

	value := float64(bytes) / math.Pow(1024, float64(exponent))
	rounded := math.Round(value*100) / 100
	return strconv.FormatFloat(rounded, 'f', -1, 64) + " " + units[exponent]
}
