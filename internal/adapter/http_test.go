// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-event-portal/internal/config"
	"github.com/MKhiriev/go-event-portal/internal/logger"
	"github.com/MKhiriev/go-event-portal/internal/store"
	"github.com/MKhiriev/go-event-portal/internal/utils"
	"github.com/MKhiriev/go-event-portal/models"
)

func newTestGateway(t *testing.T, serverURL string, creds store.CredentialStore) *HTTPGateway {
	t.Helper()
	g, err := NewHTTPGateway(config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 2 * time.Second}, creds, logger.Nop())
	require.NoError(t, err)
	return g
}

func loggedIn(t *testing.T, g *HTTPGateway) {
	t.Helper()
	_, err := g.Login(context.Background(), models.LoginPayload{Email: "a@b.com", Password: "x"})
	require.NoError(t, err)
}

// failingStore fails every operation.
type failingStore struct{ err error }

func (f failingStore) Set(context.Context, string) error         { return f.err }
func (f failingStore) Get(context.Context) (string, bool, error) { return "", false, f.err }
func (f failingStore) Clear(context.Context) error               { return f.err }

// ── construction ────────────────────────────────────────────────────────────

func TestNewHTTPGateway_InvalidAddress(t *testing.T) {
	_, err := NewHTTPGateway(config.ClientAdapter{HTTPAddress: "  "}, store.NewMemoryCredentialStore(), logger.Nop())
	require.Error(t, err)

	for _, address := range []string{"http://", "https:///", "ftp://files.example.org"} {
		_, err = NewHTTPGateway(config.ClientAdapter{HTTPAddress: address}, store.NewMemoryCredentialStore(), logger.Nop())
		require.Error(t, err, address)
	}

	g, err := NewHTTPGateway(config.ClientAdapter{HTTPAddress: "localhost:8080/"}, store.NewMemoryCredentialStore(), logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, g)
}

// ── credential attachment ───────────────────────────────────────────────────

func TestGateway_NoCredential_NoAuthorizationHeader(t *testing.T) {
	fake, srv := newFakeGateway(t)
	g := newTestGateway(t, srv.URL, store.NewMemoryCredentialStore())

	_, err := g.FetchCurrentUser(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)

	h := fake.headers()
	assert.Empty(t, h.Get("Authorization"))
	_, parseErr := uuid.Parse(h.Get(RequestIDHeader))
	assert.NoError(t, parseErr)
}

func TestGateway_StoredCredential_AttachesBearer(t *testing.T) {
	fake, srv := newFakeGateway(t)
	creds := store.NewMemoryCredentialStore()
	g := newTestGateway(t, srv.URL, creds)
	loggedIn(t, g)

	_, err := g.ListEvents(context.Background())
	require.NoError(t, err)

	stored, ok, _ := creds.Get(context.Background())
	require.True(t, ok)
	assert.Equal(t, utils.BearerHeader(stored), fake.headers().Get("Authorization"))
}

func TestGateway_RequestIDFromContext(t *testing.T) {
	fake, srv := newFakeGateway(t)
	g := newTestGateway(t, srv.URL, store.NewMemoryCredentialStore())

	ctx := utils.WithRequestID(context.Background(), "req-fixed")
	_ = g.RequestRecoveryCode(ctx, "a@b.com")

	assert.Equal(t, "req-fixed", fake.headers().Get(RequestIDHeader))
}

func TestGateway_CredentialStoreFailure(t *testing.T) {
	_, srv := newFakeGateway(t)
	g := newTestGateway(t, srv.URL, failingStore{err: errors.New("disk gone")})

	_, err := g.ListEvents(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCredentialStore)
	assert.NotErrorIs(t, err, ErrTransport)
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestLogin_Success_PersistsBeforeReturn(t *testing.T) {
	_, srv := newFakeGateway(t)
	creds := store.NewMemoryCredentialStore()
	g := newTestGateway(t, srv.URL, creds)

	token, err := g.Login(context.Background(), models.LoginPayload{Email: "a@b.com", Password: "x"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	stored, ok, err := creds.Get(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, token, stored)

	subject, err := validateToken(stored)
	require.NoError(t, err)
	assert.Equal(t, "u-1", subject)
}

func TestLogin_WrongPassword_StoreUntouched(t *testing.T) {
	_, srv := newFakeGateway(t)
	creds := store.NewMemoryCredentialStore()
	g := newTestGateway(t, srv.URL, creds)

	_, err := g.Login(context.Background(), models.LoginPayload{Email: "a@b.com", Password: "wrong"})
	require.ErrorIs(t, err, ErrUnauthorized)

	msg, ok := RemoteMessage(err)
	assert.True(t, ok)
	assert.Equal(t, "credenciais inválidas", msg)

	_, stored, _ := creds.Get(context.Background())
	assert.False(t, stored)
}

func TestLogin_ResponseBodyShapes(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantToken string
		wantErr   error
	}{
		{name: "json object", body: `{"token":"t-obj"}`, wantToken: "t-obj"},
		{name: "json string", body: `"t-str"`, wantToken: "t-str"},
		{name: "raw text", body: "t-raw\n", wantToken: "t-raw"},
		{name: "empty body", body: "", wantErr: ErrEmptyToken},
		{name: "empty token field", body: `{"token":""}`, wantErr: ErrEmptyToken},
		{name: "broken json", body: `{"token":`, wantErr: ErrDecodingResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake, srv := newFakeGateway(t)
			fake.loginBody = []byte(tt.body)
			creds := store.NewMemoryCredentialStore()
			g := newTestGateway(t, srv.URL, creds)

			token, err := g.Login(context.Background(), models.LoginPayload{Email: "a@b.com", Password: "x"})
			stored, ok, _ := creds.Get(context.Background())

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.False(t, ok, "nothing must be stored on failure")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
			assert.Equal(t, tt.wantToken, stored)
		})
	}
}

func TestLogin_PersistFailure(t *testing.T) {
	_, srv := newFakeGateway(t)

	// Get succeeds (no credential) but Set fails.
	creds := &setFailingStore{MemoryCredentialStore: store.NewMemoryCredentialStore()}
	g := newTestGateway(t, srv.URL, creds)

	_, err := g.Login(context.Background(), models.LoginPayload{Email: "a@b.com", Password: "x"})
	require.ErrorIs(t, err, ErrCredentialStore)
}

type setFailingStore struct {
	*store.MemoryCredentialStore
}

func (s *setFailingStore) Set(context.Context, string) error { return errors.New("readonly") }

// ── Register ────────────────────────────────────────────────────────────────

func TestRegister(t *testing.T) {
	_, srv := newFakeGateway(t)
	g := newTestGateway(t, srv.URL, store.NewMemoryCredentialStore())

	err := g.Register(context.Background(), models.RegisterPayload{Email: "new@b.com", Password: "p", FullName: "New"})
	require.NoError(t, err)

	err = g.Register(context.Background(), models.RegisterPayload{Email: "a@b.com", Password: "p"})
	require.ErrorIs(t, err, ErrConflict)
	msg, _ := RemoteMessage(err)
	assert.Equal(t, "e-mail já cadastrado", msg)
}

// ── Recovery ────────────────────────────────────────────────────────────────

func TestRecoveryCalls(t *testing.T) {
	_, srv := newFakeGateway(t)
	creds := store.NewMemoryCredentialStore()
	g := newTestGateway(t, srv.URL, creds)
	ctx := context.Background()

	require.ErrorIs(t, g.RequestRecoveryCode(ctx, "nobody@b.com"), ErrNotFound)
	require.NoError(t, g.RequestRecoveryCode(ctx, "a@b.com"))

	_, err := g.VerifyRecoveryCode(ctx, "a@b.com", "000000")
	require.ErrorIs(t, err, ErrBadRequest)

	token, err := g.VerifyRecoveryCode(ctx, "a@b.com", "123456")
	require.NoError(t, err)
	assert.Equal(t, "reset-a@b.com", token)

	err = g.ResetPassword(ctx, models.PasswordReset{Email: "a@b.com", Token: "forged", NewPassword: "n"})
	require.ErrorIs(t, err, ErrUnauthorized)

	require.NoError(t, g.ResetPassword(ctx, models.PasswordReset{Email: "a@b.com", Token: token, NewPassword: "n"}))

	// recovery never writes the credential store
	_, ok, _ := creds.Get(ctx)
	assert.False(t, ok)

	_, err = g.Login(ctx, models.LoginPayload{Email: "a@b.com", Password: "n"})
	require.NoError(t, err)
}

// ── Profile ─────────────────────────────────────────────────────────────────

func TestFetchAndUpdateUser(t *testing.T) {
	_, srv := newFakeGateway(t)
	g := newTestGateway(t, srv.URL, store.NewMemoryCredentialStore())
	loggedIn(t, g)
	ctx := context.Background()

	me, err := g.FetchCurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u-1", me.ID)
	assert.Equal(t, "Ana Souza", me.FullName)
	assert.True(t, me.HasRole("PARTICIPANT"))

	updated, err := g.UpdateUser(ctx, me.ID, models.UserUpdatePayload{FullName: "Ana S.", BirthDate: "1990-01-02"})
	require.NoError(t, err)
	assert.Equal(t, "Ana S.", updated.FullName)
	assert.Equal(t, "1990-01-02", updated.BirthDate)

	_, err = g.UpdateUser(ctx, "missing", models.UserUpdatePayload{FullName: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── Portal ──────────────────────────────────────────────────────────────────

func TestPortalCalls(t *testing.T) {
	_, srv := newFakeGateway(t)
	g := newTestGateway(t, srv.URL, store.NewMemoryCredentialStore())
	loggedIn(t, g)
	ctx := context.Background()

	events, err := g.ListEvents(ctx)
	require.NoError(t, err)
	assert.Len(t, events, 2)

	ev, err := g.GetEvent(ctx, "e-2")
	require.NoError(t, err)
	assert.Equal(t, "Jazz Night", ev.Name)

	_, err = g.GetEvent(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)

	reg, err := g.RegisterForEvent(ctx, models.RegistrationRequest{EventID: "e-2", UserID: "u-1"})
	require.NoError(t, err)
	assert.Equal(t, models.RegistrationPending, reg.Status)

	_, err = g.RegisterForEvent(ctx, models.RegistrationRequest{EventID: "e-2", UserID: "u-1"})
	assert.ErrorIs(t, err, ErrConflict)

	require.NoError(t, g.CancelRegistration(ctx, reg.ID))

	regs, err := g.MyRegistrations(ctx)
	require.NoError(t, err)
	require.Len(t, regs, 2)
	assert.Equal(t, models.RegistrationCanceled, regs[1].Status)

	pdf, err := g.DownloadCertificate(ctx, "r-1")
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 fake", string(pdf))

	_, err = g.DownloadCertificate(ctx, "r-2")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestVerifyCertificate_IsPublic(t *testing.T) {
	_, srv := newFakeGateway(t)
	g := newTestGateway(t, srv.URL, store.NewMemoryCredentialStore())

	cert, err := g.VerifyCertificate(context.Background(), "ABC-123")
	require.NoError(t, err)
	assert.Equal(t, "Ana Souza", cert.ParticipantName)

	_, err = g.VerifyCertificate(context.Background(), "ZZZ")
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── Transport ───────────────────────────────────────────────────────────────

func TestGateway_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	g := newTestGateway(t, url, store.NewMemoryCredentialStore())
	_, err := g.ListEvents(context.Background())

	require.ErrorIs(t, err, ErrTransport)
	_, isRemote := RemoteMessage(err)
	assert.False(t, isRemote)
}

func TestGateway_CancelledContext(t *testing.T) {
	_, srv := newFakeGateway(t)
	g := newTestGateway(t, srv.URL, store.NewMemoryCredentialStore())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.FetchCurrentUser(ctx)
	require.ErrorIs(t, err, ErrTransport)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGateway_DecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL, store.NewMemoryCredentialStore())
	_, err := g.ListEvents(context.Background())
	assert.ErrorIs(t, err, ErrDecodingResponse)
}
