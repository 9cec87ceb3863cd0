package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-event-portal/internal/config"
	"github.com/MKhiriev/go-event-portal/internal/logger"
	"github.com/MKhiriev/go-event-portal/internal/store"
	"github.com/MKhiriev/go-event-portal/internal/utils"
	"github.com/MKhiriev/go-event-portal/models"
)

// RequestIDHeader carries the per-request correlation ID.
const RequestIDHeader = "X-Request-ID"

// HTTPGateway is the REST implementation of [IdentityGateway] and
// [PortalGateway].
type HTTPGateway struct {
	client      *utils.HTTPClient
	credentials store.CredentialStore
	requestIDs  *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPGateway constructs an [HTTPGateway] for the gateway at
// adapterCfg.HTTPAddress. Every request reads credentials first and carries
// "Authorization: Bearer <credential>" when one is stored.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewHTTPGateway(adapterCfg config.ClientAdapter, credentials store.CredentialStore, log *logger.Logger) (*HTTPGateway, error) {
	baseURL := utils.NormalizeBaseURL(adapterCfg.HTTPAddress)
	if baseURL == "" {
		return nil, errors.New("invalid adapter http address: empty address")
	}
	if u, err := url.Parse(baseURL); err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, fmt.Errorf("invalid adapter http address %q", adapterCfg.HTTPAddress)
	}

	g := &HTTPGateway{
		client:      utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		credentials: credentials,
		requestIDs:  utils.NewUUIDGenerator(),
		logger:      log,
	}

	g.client.OnBeforeRequest(g.attachHeaders)
	g.client.OnAfterResponse(g.logResponse)

	return g, nil
}

// attachHeaders is a resty request middleware. It stamps the request ID and,
// when a credential is stored, the bearer Authorization header.
func (g *HTTPGateway) attachHeaders(_ *resty.Client, r *resty.Request) error {
	ctx := r.Context()

	requestID, ok := utils.GetRequestIDFromContext(ctx)
	if !ok {
		requestID = g.requestIDs.Generate()
	}
	r.SetHeader(RequestIDHeader, requestID)

	credential, ok, err := g.credentials.Get(ctx)
	if err != nil {
		g.logger.Err(err).
			Str("func", "HTTPGateway.attachHeaders").
			Str("request_id", requestID).
			Msg("failed to read credential")
		return fmt.Errorf("%w: %w", ErrCredentialStore, err)
	}
	if ok {
		r.SetHeader("Authorization", utils.BearerHeader(credential))
	}

	return nil
}

func (g *HTTPGateway) logResponse(_ *resty.Client, resp *resty.Response) error {
	g.logger.Debug().
		Str("func", "HTTPGateway.logResponse").
		Str("request_id", resp.Request.Header.Get(RequestIDHeader)).
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Int("status", resp.StatusCode()).
		Dur("took", resp.Time()).
		Msg("gateway response")
	return nil
}

// do executes req and maps both transport failures and non-2xx statuses.
func (g *HTTPGateway) do(req *resty.Request, method, path string) (*resty.Response, error) {
	resp, err := req.Execute(method, path)
	if err != nil {
		if errors.Is(err, ErrCredentialStore) {
			return nil, err
		}
		g.logger.Err(err).
			Str("func", "HTTPGateway.do").
			Str("method", method).
			Str("path", path).
			Msg("gateway request failed")
		return nil, fmt.Errorf("%w: %s %s: %w", ErrTransport, method, path, err)
	}

	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp, nil
}

func decodeJSON[T any](resp *resty.Response, op string) (T, error) {
	var out T
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return out, fmt.Errorf("%s: %w: %w", op, ErrDecodingResponse, err)
	}
	return out, nil
}

// parseToken accepts {"token": "..."}, a JSON string or a raw text body.
func parseToken(body []byte) (string, error) {
	trimmed := strings.TrimSpace(string(body))

	switch {
	case strings.HasPrefix(trimmed, "{"):
		var authResp models.AuthResponse
		if err := json.Unmarshal([]byte(trimmed), &authResp); err != nil {
			return "", fmt.Errorf("%w: %w", ErrDecodingResponse, err)
		}
		trimmed = strings.TrimSpace(authResp.Token)
	case strings.HasPrefix(trimmed, `"`):
		var s string
		if err := json.Unmarshal([]byte(trimmed), &s); err != nil {
			return "", fmt.Errorf("%w: %w", ErrDecodingResponse, err)
		}
		trimmed = strings.TrimSpace(s)
	}

	if trimmed == "" {
		return "", ErrEmptyToken
	}
	return trimmed, nil
}

func (g *HTTPGateway) request(ctx context.Context) *resty.Request {
	return g.client.R().SetContext(ctx)
}

// ── identity ────────────────────────────────────────────────────────────────

func (g *HTTPGateway) Register(ctx context.Context, payload models.RegisterPayload) error {
	_, err := g.do(g.request(ctx).SetBody(payload), http.MethodPost, "/auth/register")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}
	return nil
}

// Login implements [IdentityGateway]. The credential is written to the store
// before Login returns; if that write fails Login fails.
func (g *HTTPGateway) Login(ctx context.Context, payload models.LoginPayload) (string, error) {
	resp, err := g.do(g.request(ctx).SetBody(payload), http.MethodPost, "/auth/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}

	token, err := parseToken(resp.Body())
	if err != nil {
		return "", fmt.Errorf("login parse token: %w", err)
	}

	if err = g.credentials.Set(ctx, token); err != nil {
		g.logger.Err(err).Str("func", "HTTPGateway.Login").Msg("failed to persist credential")
		return "", fmt.Errorf("login persist credential: %w: %w", ErrCredentialStore, err)
	}

	g.logger.Info().Str("func", "HTTPGateway.Login").Msg("credential stored")
	return token, nil
}

func (g *HTTPGateway) RequestRecoveryCode(ctx context.Context, email string) error {
	body := models.RecoveryCodeRequest{Email: email}
	if _, err := g.do(g.request(ctx).SetBody(body), http.MethodPost, "/auth/password-recovery"); err != nil {
		return fmt.Errorf("password recovery request: %w", err)
	}
	return nil
}

func (g *HTTPGateway) VerifyRecoveryCode(ctx context.Context, email, code string) (string, error) {
	body := models.RecoveryCodeVerification{Email: email, Code: code}
	resp, err := g.do(g.request(ctx).SetBody(body), http.MethodPost, "/auth/validate-recovery-code")
	if err != nil {
		return "", fmt.Errorf("validate recovery code request: %w", err)
	}

	token, err := parseToken(resp.Body())
	if err != nil {
		return "", fmt.Errorf("validate recovery code parse token: %w", err)
	}
	return token, nil
}

func (g *HTTPGateway) ResetPassword(ctx context.Context, reset models.PasswordReset) error {
	if _, err := g.do(g.request(ctx).SetBody(reset), http.MethodPost, "/auth/reset-password"); err != nil {
		return fmt.Errorf("reset password request: %w", err)
	}
	return nil
}

func (g *HTTPGateway) FetchCurrentUser(ctx context.Context) (models.UserProfile, error) {
	resp, err := g.do(g.request(ctx), http.MethodGet, "/users/me")
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("fetch current user request: %w", err)
	}
	return decodeJSON[models.UserProfile](resp, "fetch current user")
}

func (g *HTTPGateway) UpdateUser(ctx context.Context, id string, payload models.UserUpdatePayload) (models.UserProfile, error) {
	req := g.request(ctx).SetPathParam("id", id).SetBody(payload)
	resp, err := g.do(req, http.MethodPut, "/users/{id}")
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("update user request: %w", err)
	}
	return decodeJSON[models.UserProfile](resp, "update user")
}

// ── portal ──────────────────────────────────────────────────────────────────

func (g *HTTPGateway) ListEvents(ctx context.Context) ([]models.Event, error) {
	resp, err := g.do(g.request(ctx), http.MethodGet, "/events")
	if err != nil {
		return nil, fmt.Errorf("list events request: %w", err)
	}
	return decodeJSON[[]models.Event](resp, "list events")
}

func (g *HTTPGateway) GetEvent(ctx context.Context, id string) (models.Event, error) {
	resp, err := g.do(g.request(ctx).SetPathParam("id", id), http.MethodGet, "/events/{id}")
	if err != nil {
		return models.Event{}, fmt.Errorf("get event request: %w", err)
	}
	return decodeJSON[models.Event](resp, "get event")
}

func (g *HTTPGateway) MyRegistrations(ctx context.Context) ([]models.Registration, error) {
	resp, err := g.do(g.request(ctx), http.MethodGet, "/registrations/me")
	if err != nil {
		return nil, fmt.Errorf("my registrations request: %w", err)
	}
	return decodeJSON[[]models.Registration](resp, "my registrations")
}

func (g *HTTPGateway) RegisterForEvent(ctx context.Context, req models.RegistrationRequest) (models.Registration, error) {
	resp, err := g.do(g.request(ctx).SetBody(req), http.MethodPost, "/registrations")
	if err != nil {
		return models.Registration{}, fmt.Errorf("register for event request: %w", err)
	}
	return decodeJSON[models.Registration](resp, "register for event")
}

func (g *HTTPGateway) CancelRegistration(ctx context.Context, id string) error {
	req := g.request(ctx).SetPathParam("id", id)
	if _, err := g.do(req, http.MethodPatch, "/registrations/{id}/cancel"); err != nil {
		return fmt.Errorf("cancel registration request: %w", err)
	}
	return nil
}

func (g *HTTPGateway) DownloadCertificate(ctx context.Context, registrationID string) ([]byte, error) {
	req := g.request(ctx).
		SetPathParam("id", registrationID).
		SetHeader("Accept", "application/pdf")
	resp, err := g.do(req, http.MethodGet, "/registrations/{id}/certificate")
	if err != nil {
		return nil, fmt.Errorf("download certificate request: %w", err)
	}
	return resp.Body(), nil
}

func (g *HTTPGateway) VerifyCertificate(ctx context.Context, code string) (models.Certificate, error) {
	resp, err := g.do(g.request(ctx).SetPathParam("code", code), http.MethodGet, "/certificates/{code}")
	if err != nil {
		return models.Certificate{}, fmt.Errorf("verify certificate request: %w", err)
	}
	return decodeJSON[models.Certificate](resp, "verify certificate")
}
