package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CredentialStore persists the single bearer credential of the client.
//
// Get reports ok=false when no credential is stored. Set and Clear return
// only after the change is durable, so every reader opened afterwards sees it.
type CredentialStore interface {
	Set(ctx context.Context, credential string) error
	Get(ctx context.Context) (credential string, ok bool, err error)
	Clear(ctx context.Context) error
}
