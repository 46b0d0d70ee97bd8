package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/fragrewards/internal/domain"
)

// RecordStorage stores encoded player records in the player_records table.
// It satisfies persistence.Storage with the storage path as the row key.
type RecordStorage struct {
	pool *pgxpool.Pool
}

// NewRecordStorage creates a RecordStorage over pool
func NewRecordStorage(pool *pgxpool.Pool) *RecordStorage {
	return &RecordStorage{pool: pool}
}

// Write upserts data under path. data must be a JSON document.
func (s *RecordStorage) Write(ctx context.Context, path string, data []byte) error {
	if _, err := s.pool.Exec(ctx, upsertRecordSQL, path, string(data)); err != nil {
		return fmt.Errorf("%w: %s %s: %w", domain.ErrStorageFailure, ErrMsgFailedToWriteRecord, path, err)
	}
	return nil
}

// Read returns the document stored under path
func (s *RecordStorage) Read(ctx context.Context, path string) ([]byte, error) {
	var data []byte
	err := s.pool.QueryRow(ctx, selectRecordSQL, path).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrRecordNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %w", domain.ErrStorageFailure, ErrMsgFailedToReadRecord, path, err)
	}
	return data, nil
}

// Delete removes the row under path
func (s *RecordStorage) Delete(ctx context.Context, path string) error {
	tag, err := s.pool.Exec(ctx, deleteRecordSQL, path)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", domain.ErrStorageFailure, ErrMsgFailedToDeleteRecord, path, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrRecordNotFound, path)
	}
	return nil
}

// Paths lists every stored path in key order
func (s *RecordStorage) Paths(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx, listRecordKeysSQL)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrStorageFailure, ErrMsgFailedToListRecords, err)
	}
	paths, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrStorageFailure, ErrMsgFailedToListRecords, err)
	}
	return paths, nil
}
