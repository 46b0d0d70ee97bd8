package persistence

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/osse101/fragrewards/internal/domain"
	"github.com/osse101/fragrewards/internal/logger"
)

// Storage is the byte-level collaborator records are written to. Read
// returns an error wrapping domain.ErrRecordNotFound for absent paths.
type Storage interface {
	Write(ctx context.Context, path string, data []byte) error
	Read(ctx context.Context, path string) ([]byte, error)
	Delete(ctx context.Context, path string) error
}

var keyPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// ValidKey reports whether key can name a record
func ValidKey(key string) bool {
	return keyPattern.MatchString(key)
}

// PathFor returns the storage path of a player's record
func PathFor(key string) string {
	return key + RecordExtension
}

// QuarantinePathFor returns the path a corrupt record of key is moved to
func QuarantinePathFor(key string, at time.Time) string {
	return key + QuarantineInfix + at.UTC().Format(QuarantineTimeLayout) + RecordExtension
}

// Store checkpoints and restores records by player key
type Store struct {
	storage Storage
}

// NewStore creates a Store over storage
func NewStore(storage Storage) *Store {
	return &Store{storage: storage}
}

// Checkpoint encodes and writes rec under key
func (s *Store) Checkpoint(ctx context.Context, key string, rec *Record) error {
	if !ValidKey(key) {
		return fmt.Errorf("%w: %s %q", domain.ErrInvalidInput, ErrMsgInvalidKey, key)
	}
	data, err := Encode(rec)
	if err != nil {
		return err
	}
	if err := s.storage.Write(ctx, PathFor(key), data); err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgWriteRecord, key, err)
	}
	logger.FromContext(ctx).Debug(LogMsgRecordSaved, "key", key, "bytes", len(data))
	return nil
}

// Restore reads the record under key. A missing record returns (nil, nil)
// and a corrupt one returns an error wrapping domain.ErrCorruptRecord; both
// mean the caller should continue with defaults.
func (s *Store) Restore(ctx context.Context, key string) (*Record, error) {
	if !ValidKey(key) {
		return nil, fmt.Errorf("%w: %s %q", domain.ErrInvalidInput, ErrMsgInvalidKey, key)
	}
	log := logger.FromContext(ctx)

	data, err := s.storage.Read(ctx, PathFor(key))
	if errors.Is(err, domain.ErrRecordNotFound) {
		log.Info(LogMsgRecordMissing, "key", key)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrMsgReadRecord, key, err)
	}

	rec, err := Decode(data)
	if err != nil {
		log.Warn(LogMsgRecordCorrupt, "key", key, "error", err)
		return nil, err
	}
	log.Debug(LogMsgRecordRestored, "key", key, "schema_version", rec.SchemaVersion)
	return rec, nil
}

// Delete removes the record under key. Deleting a missing record is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	if !ValidKey(key) {
		return fmt.Errorf("%w: %s %q", domain.ErrInvalidInput, ErrMsgInvalidKey, key)
	}
	if err := s.storage.Delete(ctx, PathFor(key)); err != nil && !errors.Is(err, domain.ErrRecordNotFound) {
		return fmt.Errorf("%s %s: %w", ErrMsgDeleteRecord, key, err)
	}
	return nil
}

// Quarantine moves the raw bytes stored under key to QuarantinePathFor(key, at)
// so the next checkpoint cannot overwrite them. It returns the new path, or
// "" when there was nothing stored under key.
func (s *Store) Quarantine(ctx context.Context, key string, at time.Time) (string, error) {
	if !ValidKey(key) {
		return "", fmt.Errorf("%w: %s %q", domain.ErrInvalidInput, ErrMsgInvalidKey, key)
	}
	data, err := s.storage.Read(ctx, PathFor(key))
	if errors.Is(err, domain.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("%s %s: %w", ErrMsgQuarantineRecord, key, err)
	}

	dst := QuarantinePathFor(key, at)
	if err := s.storage.Write(ctx, dst, data); err != nil {
		return "", fmt.Errorf("%s %s: %w", ErrMsgQuarantineRecord, key, err)
	}
	if err := s.storage.Delete(ctx, PathFor(key)); err != nil && !errors.Is(err, domain.ErrRecordNotFound) {
		return "", fmt.Errorf("%s %s: %w", ErrMsgQuarantineRecord, key, err)
	}
	logger.FromContext(ctx).Warn(LogMsgRecordQuarantined, "key", key, "path", dst)
	return dst, nil
}
