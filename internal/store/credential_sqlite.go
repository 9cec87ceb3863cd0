package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-event-portal/internal/logger"
)

type sqliteCredentialStore struct {
	*DB
	logger *logger.Logger
}

// NewSQLiteCredentialStore returns a [CredentialStore] backed by the
// credentials table of db. The schema must already be migrated.
func NewSQLiteCredentialStore(db *DB, log *logger.Logger) CredentialStore {
	return &sqliteCredentialStore{
		DB:     db,
		logger: log,
	}
}

func (s *sqliteCredentialStore) Set(ctx context.Context, credential string) error {
	if credential == "" {
		return ErrEmptyCredential
	}

	query, args, err := buildUpsertCredentialQuery(tokenKey, credential)
	if err != nil {
		s.logger.Err(err).Str("func", "sqliteCredentialStore.Set").Msg("error building upsert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "sqliteCredentialStore.Set").Msg("failed to execute upsert for credential")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteCredentialStore) Get(ctx context.Context) (string, bool, error) {
	query, args, err := buildSelectCredentialQuery(tokenKey)
	if err != nil {
		s.logger.Err(err).Str("func", "sqliteCredentialStore.Get").Msg("error building select query")
		return "", false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var credential string
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&credential)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		s.logger.Err(err).Str("func", "sqliteCredentialStore.Get").Msg("failed to read credential")
		return "", false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return credential, credential != "", nil
}

func (s *sqliteCredentialStore) Clear(ctx context.Context) error {
	query, args, err := buildDeleteCredentialQuery(tokenKey)
	if err != nil {
		s.logger.Err(err).Str("func", "sqliteCredentialStore.Clear").Msg("error building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "sqliteCredentialStore.Clear").Msg("failed to delete credential")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
