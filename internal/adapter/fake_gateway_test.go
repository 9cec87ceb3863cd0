package adapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-event-portal/models"
)

const (
	fakeIssuer  = "fake-gateway"
	fakeSignKey = "fake-gateway-secret"
)

// fakeGateway is an in-process API gateway used by the adapter tests. It
// mints real JWTs on login and rejects protected calls whose bearer token does
// not validate.
type fakeGateway struct {
	t *testing.T

	mu          sync.Mutex
	users       map[string]models.UserProfile // by id
	passwords   map[string]string             // email -> password
	events      []models.Event
	regs        []models.Registration
	recovery    map[string]string // email -> code
	resetTokens map[string]string // token -> email
	lastHeaders http.Header

	// loginBody overrides the login response body when non-nil.
	loginBody []byte
}

func newFakeGateway(t *testing.T) (*fakeGateway, *httptest.Server) {
	t.Helper()

	f := &fakeGateway{
		t: t,
		users: map[string]models.UserProfile{
			"u-1": {ID: "u-1", FullName: "Ana Souza", Email: "a@b.com", Roles: []string{"PARTICIPANT"}, Complete: true},
		},
		passwords: map[string]string{"a@b.com": "x"},
		events: []models.Event{
			{ID: "e-1", Name: "Go Meetup", Category: "Tecnologia"},
			{ID: "e-2", Name: "Jazz Night", Category: "Música"},
		},
		regs: []models.Registration{
			{ID: "r-1", EventID: "e-1", UserID: "u-1", Status: models.RegistrationCompleted},
		},
		recovery:    map[string]string{},
		resetTokens: map[string]string{},
	}

	r := chi.NewRouter()
	r.Use(f.recordHeaders)

	r.Post("/auth/register", f.register)
	r.Post("/auth/login", f.login)
	r.Post("/auth/password-recovery", f.passwordRecovery)
	r.Post("/auth/validate-recovery-code", f.validateRecoveryCode)
	r.Post("/auth/reset-password", f.resetPassword)
	r.Get("/certificates/{code}", f.verifyCertificate)

	r.Group(func(r chi.Router) {
		r.Use(f.requireBearer)
		r.Get("/users/me", f.me)
		r.Put("/users/{id}", f.updateUser)
		r.Get("/events", f.listEvents)
		r.Get("/events/{id}", f.getEvent)
		r.Get("/registrations/me", f.myRegistrations)
		r.Post("/registrations", f.createRegistration)
		r.Patch("/registrations/{id}/cancel", f.cancelRegistration)
		r.Get("/registrations/{id}/certificate", f.certificate)
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return f, srv
}

func (f *fakeGateway) headers() http.Header {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastHeaders.Clone()
}

func (f *fakeGateway) recordHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.lastHeaders = r.Header.Clone()
		f.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (f *fakeGateway) requireBearer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := parseBearer(r.Header.Get("Authorization"))
		if !ok {
			writeMessage(w, http.StatusUnauthorized, "token ausente")
			return
		}
		if _, err := validateToken(token); err != nil {
			writeMessage(w, http.StatusUnauthorized, "token inválido")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, models.BackendError{Message: msg}, status)
}

func writeJSON(w http.ResponseWriter, data any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func parseBearer(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

// mintToken issues an HS256 token for subject, as the real gateway does on
// login.
func mintToken(subject string) (string, error) {
	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    fakeIssuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(fakeSignKey))
}

// validateToken checks signature, issuer and expiry and returns the subject.
func validateToken(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(*jwt.Token) (any, error) {
		return []byte(fakeSignKey), nil
	}, jwt.WithIssuer(fakeIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}
	subject, err := parsed.Claims.GetSubject()
	if err != nil {
		return "", err
	}
	if subject == "" {
		return "", errors.New("empty subject")
	}
	return subject, nil
}

func (f *fakeGateway) register(w http.ResponseWriter, r *http.Request) {
	var p models.RegisterPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil || p.Email == "" {
		writeMessage(w, http.StatusBadRequest, "dados inválidos")
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.passwords[p.Email]; exists {
		writeMessage(w, http.StatusConflict, "e-mail já cadastrado")
		return
	}
	f.passwords[p.Email] = p.Password
	w.WriteHeader(http.StatusCreated)
}

func (f *fakeGateway) login(w http.ResponseWriter, r *http.Request) {
	var p models.LoginPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeMessage(w, http.StatusBadRequest, "dados inválidos")
		return
	}

	f.mu.Lock()
	password, ok := f.passwords[p.Email]
	override := f.loginBody
	f.mu.Unlock()

	if !ok || password != p.Password {
		writeMessage(w, http.StatusUnauthorized, "credenciais inválidas")
		return
	}
	if override != nil {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(override)
		return
	}

	token, err := mintToken("u-1")
	if err != nil {
		f.t.Errorf("mint token: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	writeJSON(w, models.AuthResponse{Token: token}, http.StatusOK)
}

func (f *fakeGateway) passwordRecovery(w http.ResponseWriter, r *http.Request) {
	var p models.RecoveryCodeRequest
	_ = json.NewDecoder(r.Body).Decode(&p)

	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.passwords[p.Email]; !ok {
		writeMessage(w, http.StatusNotFound, "usuário não encontrado")
		return
	}
	f.recovery[p.Email] = "123456"
	w.WriteHeader(http.StatusOK)
}

func (f *fakeGateway) validateRecoveryCode(w http.ResponseWriter, r *http.Request) {
	var p models.RecoveryCodeVerification
	_ = json.NewDecoder(r.Body).Decode(&p)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.recovery[p.Email] != p.Code {
		writeMessage(w, http.StatusBadRequest, "código inválido ou expirado")
		return
	}
	f.resetTokens["reset-"+p.Email] = p.Email
	// the recovery token is returned as plain text
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte("reset-" + p.Email))
}

func (f *fakeGateway) resetPassword(w http.ResponseWriter, r *http.Request) {
	var p models.PasswordReset
	_ = json.NewDecoder(r.Body).Decode(&p)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.resetTokens[p.Token] != p.Email {
		writeMessage(w, http.StatusUnauthorized, "token de recuperação inválido")
		return
	}
	f.passwords[p.Email] = p.NewPassword
	delete(f.resetTokens, p.Token)
	w.WriteHeader(http.StatusOK)
}

func (f *fakeGateway) me(w http.ResponseWriter, _ *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	writeJSON(w, f.users["u-1"], http.StatusOK)
}

func (f *fakeGateway) updateUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var p models.UserUpdatePayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeMessage(w, http.StatusBadRequest, "dados inválidos")
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		writeMessage(w, http.StatusNotFound, "usuário não encontrado")
		return
	}
	u.FullName = p.FullName
	u.BirthDate = p.BirthDate
	f.users[id] = u
	writeJSON(w, u, http.StatusOK)
}

func (f *fakeGateway) listEvents(w http.ResponseWriter, _ *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	writeJSON(w, f.events, http.StatusOK)
}

func (f *fakeGateway) getEvent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.events {
		if e.ID == id {
			writeJSON(w, e, http.StatusOK)
			return
		}
	}
	writeMessage(w, http.StatusNotFound, "evento não encontrado")
}

func (f *fakeGateway) myRegistrations(w http.ResponseWriter, _ *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	writeJSON(w, f.regs, http.StatusOK)
}

func (f *fakeGateway) createRegistration(w http.ResponseWriter, r *http.Request) {
	var p models.RegistrationRequest
	_ = json.NewDecoder(r.Body).Decode(&p)

	f.mu.Lock()
	defer f.mu.Unlock()
	for _, reg := range f.regs {
		if reg.EventID == p.EventID && reg.UserID == p.UserID && reg.Status.Active() {
			writeMessage(w, http.StatusConflict, "inscrição já realizada")
			return
		}
	}
	reg := models.Registration{ID: "r-new", EventID: p.EventID, UserID: p.UserID, Status: models.RegistrationPending}
	f.regs = append(f.regs, reg)
	writeJSON(w, reg, http.StatusCreated)
}

func (f *fakeGateway) cancelRegistration(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.regs {
		if f.regs[i].ID == id {
			f.regs[i].Status = models.RegistrationCanceled
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeMessage(w, http.StatusNotFound, "inscrição não encontrada")
}

func (f *fakeGateway) certificate(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "id") != "r-1" {
		writeMessage(w, http.StatusNotFound, "certificado não encontrado")
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	_, _ = w.Write([]byte("%PDF-1.4 fake"))
}

func (f *fakeGateway) verifyCertificate(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code != "ABC-123" {
		writeMessage(w, http.StatusNotFound, "certificado não encontrado")
		return
	}
	writeJSON(w, models.Certificate{
		AuthenticationCode: code,
		RegistrationID:     "r-1",
		EventName:          "Go Meetup",
		ParticipantName:    "Ana Souza",
	}, http.StatusOK)
}
