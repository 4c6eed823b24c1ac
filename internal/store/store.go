package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/akyairhashvil/wagetrack/internal/config"
	"github.com/akyairhashvil/wagetrack/internal/models"
)

// Store implements the entity collections over a KV backend. A single
// mutex serializes every read-modify-write, so concurrent callers cannot
// lose updates to the whole-snapshot writes.
type Store struct {
	kv  KV
	mu  sync.Mutex
	now func() time.Time
}

type Option func(*Store)

// WithNow overrides the timestamp source, for deterministic tests.
func WithNow(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func New(kv KV, opts ...Option) *Store {
	s := &Store{kv: kv, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Close() error { return s.kv.Close() }

// readList decodes a collection snapshot. An absent key is an empty
// collection; there is no migration scheme beyond that.
func readList[T any](ctx context.Context, s *Store, key string, entity Entity) ([]T, error) {
	raw, ok, err := s.kv.Read(ctx, key)
	if err != nil {
		return nil, wrapErr(entity, "read", "", err)
	}
	if !ok || len(raw) == 0 {
		return nil, nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, wrapErr(entity, "decode", "", err)
	}
	return items, nil
}

// writeList replaces a collection snapshot in full.
func writeList[T any](ctx context.Context, s *Store, key string, entity Entity, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return wrapErr(entity, "encode", "", err)
	}
	return wrapErr(entity, "write", "", s.kv.Write(ctx, key, raw))
}

// --- Settings (legacy singleton) ---

// GetSettings returns the legacy settings, or nil when never saved.
func (s *Store) GetSettings(ctx context.Context) (*models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getSettingsLocked(ctx)
}

func (s *Store) getSettingsLocked(ctx context.Context) (*models.Settings, error) {
	raw, ok, err := s.kv.Read(ctx, config.KeySettings)
	if err != nil {
		return nil, wrapErr(EntitySettings, "read", "", err)
	}
	if !ok || len(raw) == 0 {
		return nil, nil
	}
	var settings *models.Settings
	if err := json.Unmarshal(raw, &settings); err != nil {
		return nil, wrapErr(EntitySettings, "decode", "", err)
	}
	return settings, nil
}

// SaveSettings creates or overwrites the singleton. The creation time of
// an existing record is preserved.
func (s *Store) SaveSettings(ctx context.Context, hourlyRate float64, currency models.Currency) (models.Settings, error) {
	if hourlyRate <= 0 {
		return models.Settings{}, invalid("hourly rate", "must be positive")
	}
	switch currency {
	case "":
		currency = models.CurrencyEUR
	case models.CurrencyEUR, models.CurrencyUSD, models.CurrencyGBP:
	default:
		return models.Settings{}, invalid("currency", "must be EUR, USD or GBP")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.getSettingsLocked(ctx)
	if err != nil {
		return models.Settings{}, err
	}
	now := s.now()
	settings := models.Settings{
		HourlyRate: hourlyRate,
		Currency:   currency,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if existing != nil {
		settings.CreatedAt = existing.CreatedAt
	}
	raw, err := json.Marshal(settings)
	if err != nil {
		return models.Settings{}, wrapErr(EntitySettings, "encode", "", err)
	}
	if err := s.kv.Write(ctx, config.KeySettings, raw); err != nil {
		return models.Settings{}, wrapErr(EntitySettings, "write", "", err)
	}
	return settings, nil
}

// --- Paused auto-start set ---

// GetPausedJobs returns the ids whose auto-start is suspended.
func (s *Store) GetPausedJobs(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return readList[string](ctx, s, config.KeyPausedJobs, EntityPausedJobs)
}

// ReplacePausedJobs overwrites the paused set.
func (s *Store) ReplacePausedJobs(ctx context.Context, jobIDs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return writeList(ctx, s, config.KeyPausedJobs, EntityPausedJobs, jobIDs)
}

// Reset clears every collection, settings included.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.Write(ctx, config.KeySettings, []byte("null")); err != nil {
		return wrapErr(EntitySettings, "reset", "", err)
	}
	lists := map[string]Entity{
		config.KeySchedule:     EntitySchedule,
		config.KeySessions:     EntitySession,
		config.KeyVacations:    EntityVacation,
		config.KeyJobs:         EntityJob,
		config.KeyJobSchedules: EntitySchedule,
		config.KeyPausedJobs:   EntityPausedJobs,
	}
	for key, entity := range lists {
		if err := s.kv.Write(ctx, key, []byte("[]")); err != nil {
			return wrapErr(entity, "reset", "", err)
		}
	}
	return nil
}
