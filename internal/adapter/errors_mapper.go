package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-event-portal/models"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	remote := &RemoteError{
		StatusCode: resp.StatusCode(),
		Message:    remoteMessage(resp.Body(), resp.StatusCode()),
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		remote.kind = ErrBadRequest
	case http.StatusUnauthorized:
		remote.kind = ErrUnauthorized
	case http.StatusForbidden:
		remote.kind = ErrForbidden
	case http.StatusNotFound:
		remote.kind = ErrNotFound
	case http.StatusConflict:
		remote.kind = ErrConflict
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		remote.kind = ErrBadGateway
	case http.StatusInternalServerError:
		remote.kind = ErrInternalServerError
	}

	return remote
}

// remoteMessage prefers the "message" field of a JSON error body.
func remoteMessage(body []byte, status int) string {
	trimmed := strings.TrimSpace(string(body))

	if strings.HasPrefix(trimmed, "{") {
		var backendErr models.BackendError
		if err := json.Unmarshal(body, &backendErr); err == nil && strings.TrimSpace(backendErr.Message) != "" {
			return strings.TrimSpace(backendErr.Message)
		}
	}

	if trimmed == "" {
		return http.StatusText(status)
	}
	return trimmed
}
