package session

import (
	"context"

	"github.com/MKhiriev/go-event-portal/models"
)

// Gateway is the subset of identity calls the controller performs.
type Gateway interface {
	Login(ctx context.Context, payload models.LoginPayload) (string, error)
	FetchCurrentUser(ctx context.Context) (models.UserProfile, error)
}
