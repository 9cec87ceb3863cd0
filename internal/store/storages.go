package store

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-event-portal/internal/config"
	"github.com/MKhiriev/go-event-portal/internal/logger"
)

// InMemoryDSN selects [MemoryCredentialStore] instead of a SQLite file.
const InMemoryDSN = ":memory:"

// ClientStorages groups the client-side storage the rest of the application
// depends on.
type ClientStorages struct {
	Credentials CredentialStore

	closer io.Closer
}

// NewClientStorages opens the credential store described by cfg.
//
// For a file DSN it opens (or creates) the SQLite file, runs the embedded
// migrations and returns a SQLite-backed store. [InMemoryDSN] yields a
// process-local store and touches no files.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Str("func", "NewClientStorages").Msg("creating new storages...")

	if cfg.DSN == InMemoryDSN {
		return &ClientStorages{Credentials: NewMemoryCredentialStore()}, nil
	}

	db, err := NewConnectSQLite(ctx, cfg.DSN, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			log.Err(closeErr).Str("func", "NewClientStorages").Msg("error closing database after failed migration")
		}
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Credentials: NewSQLiteCredentialStore(db, log),
		closer:      db,
	}, nil
}

// Close releases the database connection, if any.
func (s *ClientStorages) Close() error {
	if s == nil || s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
