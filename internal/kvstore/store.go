// Package kvstore is the durable key-value layer the whole application
// state lives in: one JSON-encoded value per logical collection key.
// Reads fall back to a caller-supplied default and never fail the caller;
// writes are best-effort and report their outcome explicitly so callers
// can tell "saved durably" apart from "in-memory only".
package kvstore

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rs/zerolog"

	"github.com/clubhub-app/clubhub/internal/metrics"
)

var (
	// ErrKeyNotFound is returned by backends when a key has never been written
	ErrKeyNotFound = errors.New("key not found")
	// ErrQuotaExceeded is returned when a serialized value is larger than the
	// configured per-value quota
	ErrQuotaExceeded = errors.New("storage quota exceeded")
)

// Backend is the raw byte-level storage a Store sits on
type Backend interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}

// WriteResult reports the outcome of a Set. Persisted is false when the
// value was rejected (quota) or the backend write failed; the caller's
// in-memory copy is still expected to move forward.
type WriteResult struct {
	Persisted bool
	Err       error
}

// Store wraps a Backend with JSON (de)serialization and quota handling
type Store struct {
	backend Backend
	quota   int64
	logger  zerolog.Logger
}

// New creates a Store. quotaBytes caps the serialized size of a single
// value; zero disables the cap.
func New(backend Backend, quotaBytes int64, lgr zerolog.Logger) *Store {
	return &Store{
		backend: backend,
		quota:   quotaBytes,
		logger:  lgr,
	}
}

// Get reads and decodes the value under key into a fresh T. Absence and
// malformed JSON both resolve to defaultValue; parse failures are logged
// but never surfaced.
func Get[T any](ctx context.Context, s *Store, key string, defaultValue T) T {
	data, err := s.backend.Read(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			s.logger.Error().Err(err).Str("key", key).Msg("Storage read failed, using default")
		}
		return defaultValue
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("Malformed value in storage, using default")
		return defaultValue
	}
	return value
}

// Set serializes value to JSON and writes it under key. Failures are
// logged and reported in the WriteResult, never raised.
func (s *Store) Set(ctx context.Context, key string, value interface{}) WriteResult {
	metrics.StoreWrites.Inc()

	data, err := json.Marshal(value)
	if err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("Failed to serialize value")
		metrics.StoreWriteFailures.Inc()
		return WriteResult{Err: err}
	}

	if s.quota > 0 && int64(len(data)) > s.quota {
		s.logger.Warn().Str("key", key).Int("size", len(data)).Int64("quota", s.quota).
			Msg("Write exceeds storage quota, value not persisted")
		metrics.StoreWriteFailures.Inc()
		return WriteResult{Err: ErrQuotaExceeded}
	}

	if err := s.backend.Write(ctx, key, data); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("Storage write failed, value not persisted")
		metrics.StoreWriteFailures.Inc()
		return WriteResult{Err: err}
	}

	return WriteResult{Persisted: true}
}

// Delete removes the value under key. Missing keys are not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.backend.Delete(ctx, key); err != nil && !errors.Is(err, ErrKeyNotFound) {
		return err
	}
	return nil
}
