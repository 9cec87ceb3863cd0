package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-event-portal/internal/logger"
)

func newTestCredentialStore(t *testing.T) (CredentialStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	l := logger.Nop()
	return NewSQLiteCredentialStore(&DB{DB: db, logger: l}, l), mock
}

var (
	selectCredentialSQL = regexp.QuoteMeta("SELECT value FROM credentials WHERE key = ? LIMIT 1")
	upsertCredentialSQL = regexp.QuoteMeta("INSERT INTO credentials (key,value,updated_at) VALUES (?,?,CURRENT_TIMESTAMP)")
	deleteCredentialSQL = regexp.QuoteMeta("DELETE FROM credentials WHERE key = ?")
)

func TestSQLiteCredentialStore_Set(t *testing.T) {
	s, mock := newTestCredentialStore(t)

	mock.ExpectExec(upsertCredentialSQL).
		WithArgs(tokenKey, "jwt-value").
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, s.Set(context.Background(), "jwt-value"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteCredentialStore_Set_Empty(t *testing.T) {
	s, mock := newTestCredentialStore(t)

	err := s.Set(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyCredential)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteCredentialStore_Set_ExecError(t *testing.T) {
	s, mock := newTestCredentialStore(t)

	mock.ExpectExec(upsertCredentialSQL).
		WithArgs(tokenKey, "jwt-value").
		WillReturnError(errors.New("disk I/O error"))

	err := s.Set(context.Background(), "jwt-value")
	assert.ErrorIs(t, err, ErrExecutingStatement)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteCredentialStore_Get(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(mock sqlmock.Sqlmock)
		wantValue string
		wantOK    bool
		wantErr   error
	}{
		{
			name: "present",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(selectCredentialSQL).
					WithArgs(tokenKey).
					WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("jwt-value"))
			},
			wantValue: "jwt-value",
			wantOK:    true,
		},
		{
			name: "absent",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(selectCredentialSQL).
					WithArgs(tokenKey).
					WillReturnError(sql.ErrNoRows)
			},
		},
		{
			name: "query error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(selectCredentialSQL).
					WithArgs(tokenKey).
					WillReturnError(errors.New("database is locked"))
			},
			wantErr: ErrScanningRow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mock := newTestCredentialStore(t)
			tt.setup(mock)

			value, ok, err := s.Get(context.Background())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantValue, value)
			assert.Equal(t, tt.wantOK, ok)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSQLiteCredentialStore_Clear(t *testing.T) {
	s, mock := newTestCredentialStore(t)

	mock.ExpectExec(deleteCredentialSQL).
		WithArgs(tokenKey).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.Clear(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteCredentialStore_Clear_ExecError(t *testing.T) {
	s, mock := newTestCredentialStore(t)

	mock.ExpectExec(deleteCredentialSQL).
		WithArgs(tokenKey).
		WillReturnError(errors.New("readonly database"))

	assert.ErrorIs(t, s.Clear(context.Background()), ErrExecutingStatement)
}
