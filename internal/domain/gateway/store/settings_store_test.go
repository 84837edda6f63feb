package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"haru-weather/internal/domain/model"
)

// memoryKV is an in-process KV used by the tests. failing makes every
// operation error to exercise the degraded paths.
type memoryKV struct {
	mutex   sync.Mutex
	values  map[string]string
	failing bool
}

func newMemoryKV() *memoryKV {
	return &memoryKV{values: make(map[string]string)}
}

func (kv *memoryKV) Get(ctx context.Context, key string) (string, error) {
	kv.mutex.Lock()
	defer kv.mutex.Unlock()
	if kv.failing {
		return "", errors.New("kv down")
	}
	return kv.values[key], nil
}

func (kv *memoryKV) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	kv.mutex.Lock()
	defer kv.mutex.Unlock()
	if kv.failing {
		return errors.New("kv down")
	}
	switch v := value.(type) {
	case string:
		kv.values[key] = v
	case []byte:
		kv.values[key] = string(v)
	default:
		kv.values[key] = fmt.Sprintf("%v", v)
	}
	return nil
}

func (kv *memoryKV) Delete(ctx context.Context, keys ...string) error {
	kv.mutex.Lock()
	defer kv.mutex.Unlock()
	if kv.failing {
		return errors.New("kv down")
	}
	for _, key := range keys {
		delete(kv.values, key)
	}
	return nil
}

func (kv *memoryKV) StrLen(ctx context.Context, key string) (int64, error) {
	kv.mutex.Lock()
	defer kv.mutex.Unlock()
	if kv.failing {
		return 0, errors.New("kv down")
	}
	return int64(len(kv.values[key])), nil
}

func TestFavoritesRoundTrip(t *testing.T) {
	settings := NewSettingsStore(newMemoryKV(), false)

	favorites := []model.Favorite{
		{ID: "37.5683_126.9778", Name: "서울", Country: "KR", Lat: 37.5683, Lon: 126.9778, Temp: 23},
		{ID: "35.1796_129.0756", Name: "부산", Country: "KR", Lat: 35.1796, Lon: 129.0756, Temp: 25},
	}

	if err := settings.SaveFavorites(favorites); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded := settings.GetFavorites()
	if len(loaded) != 2 {
		t.Fatalf("expected 2 favorites, got %d", len(loaded))
	}
	if loaded[0].ID != favorites[0].ID || loaded[1].Name != "부산" {
		t.Errorf("unexpected favorites: %+v", loaded)
	}
}

func TestGetFavoritesDegradesToEmpty(t *testing.T) {
	kv := newMemoryKV()
	settings := NewSettingsStore(kv, false)

	if got := settings.GetFavorites(); len(got) != 0 {
		t.Errorf("expected empty list for missing key, got %d", len(got))
	}

	kv.values[FavoritesKey] = "{not json"
	if got := settings.GetFavorites(); len(got) != 0 {
		t.Errorf("expected empty list for corrupt payload, got %d", len(got))
	}

	kv.failing = true
	if got := settings.GetFavorites(); got == nil || len(got) != 0 {
		t.Errorf("expected empty list when the store is down, got %v", got)
	}
}

func TestDarkModeDefaultAndRoundTrip(t *testing.T) {
	kv := newMemoryKV()
	settings := NewSettingsStore(kv, true)

	if !settings.GetDarkMode() {
		t.Error("expected configured default when nothing is stored")
	}

	if err := settings.SaveDarkMode(false); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if settings.GetDarkMode() {
		t.Error("expected stored value to win over the default")
	}

	kv.values[DarkModeKey] = "garbage"
	if !settings.GetDarkMode() {
		t.Error("expected default for an unparseable value")
	}
}

func TestLastLocationRoundTrip(t *testing.T) {
	settings := NewSettingsStore(newMemoryKV(), false)

	if settings.GetLastLocation() != nil {
		t.Error("expected nil before anything is saved")
	}

	coord := model.Coord{Lat: 37.5683, Lon: 126.9778}
	before := time.Now().UnixMilli()
	if err := settings.SaveLastLocation(coord); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded := settings.GetLastLocation()
	if loaded == nil {
		t.Fatal("expected a stored location")
	}
	if loaded.Coord != coord {
		t.Errorf("unexpected coord: %+v", loaded.Coord)
	}
	if loaded.Timestamp < before {
		t.Errorf("expected timestamp >= %d, got %d", before, loaded.Timestamp)
	}
}

func TestClearAllRemovesOnlyLogicalKeys(t *testing.T) {
	kv := newMemoryKV()
	settings := NewSettingsStore(kv, false)

	kv.values[FavoritesKey] = "[]"
	kv.values[DarkModeKey] = "true"
	kv.values[LastLocationKey] = "{}"
	kv.values["other:tenant"] = "untouched"

	if err := settings.ClearAll(); err != nil {
		t.Fatalf("clear failed: %v", err)
	}

	for _, key := range []string{FavoritesKey, DarkModeKey, LastLocationKey} {
		if _, ok := kv.values[key]; ok {
			t.Errorf("expected %s to be removed", key)
		}
	}
	if kv.values["other:tenant"] != "untouched" {
		t.Error("expected foreign keys to survive")
	}
}

func TestIsAvailable(t *testing.T) {
	kv := newMemoryKV()
	settings := NewSettingsStore(kv, false)

	if !settings.IsAvailable() {
		t.Error("expected a healthy store to be available")
	}

	kv.failing = true
	if settings.IsAvailable() {
		t.Error("expected a failing store to be unavailable")
	}
}

func TestUsageReport(t *testing.T) {
	kv := newMemoryKV()
	settings := NewSettingsStore(kv, false)

	kv.values[FavoritesKey] = "0123456789"
	kv.values[DarkModeKey] = "true"

	report := settings.UsageReport()
	if report.Total != 14 {
		t.Errorf("expected total 14, got %d", report.Total)
	}
	if report.Items["FAVORITES"].Size != 10 {
		t.Errorf("expected favorites size 10, got %d", report.Items["FAVORITES"].Size)
	}
	if report.Items["LAST_LOCATION"].Size != 0 {
		t.Errorf("expected last location size 0, got %d", report.Items["LAST_LOCATION"].Size)
	}
	if report.TotalFormatted != "14 Bytes" {
		t.Errorf("unexpected formatted total: %q", report.TotalFormatted)
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0 Bytes"},
		{512, "512 Bytes"},
		{1024, "1 KB"},
		{1536, "1.5 KB"},
		{1048576, "1 MB"},
		{2621440, "2.5 MB"},
		{1073741824, "1 GB"},
	}

	for _, tt := range tests {
		if got := FormatBytes(tt.bytes); got != tt.want {
			t.Errorf("FormatBytes(%d) = %q, want %q", tt.bytes, got, tt.want)
		}
	}
}
