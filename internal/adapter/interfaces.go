// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the client and the
// event portal's API gateway.
//
// [IdentityGateway] covers authentication, password recovery and the current
// user's profile; [PortalGateway] covers events, registrations and
// certificates. Both are served by [HTTPGateway], which attaches the stored
// bearer credential to every outgoing request.
//
// Non-2xx responses are mapped by mapHTTPError to [*RemoteError] values that
// unwrap to the sentinels in errors.go, so callers can use [errors.Is] for
// the status class and [errors.As] for the server's message.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-event-portal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/gateway_mock.go -package=mock

// IdentityGateway is the stateless set of identity calls.
type IdentityGateway interface {
	// Register creates an account. Server validation errors are returned
	// unchanged.
	Register(ctx context.Context, payload models.RegisterPayload) error

	// Login exchanges credentials for a bearer credential. On success the
	// credential is already persisted in the credential store when Login
	// returns; on failure the store is untouched.
	Login(ctx context.Context, payload models.LoginPayload) (string, error)

	// RequestRecoveryCode asks the server to e-mail a recovery code.
	RequestRecoveryCode(ctx context.Context, email string) error

	// VerifyRecoveryCode checks the code and returns the opaque token that
	// authorises ResetPassword. An empty token is reported as [ErrEmptyToken].
	VerifyRecoveryCode(ctx context.Context, email, code string) (string, error)

	// ResetPassword sets a new password using a verified recovery token.
	ResetPassword(ctx context.Context, reset models.PasswordReset) error

	// FetchCurrentUser returns the profile of the credential's owner.
	FetchCurrentUser(ctx context.Context) (models.UserProfile, error)

	// UpdateUser replaces editable profile fields of user id.
	UpdateUser(ctx context.Context, id string, payload models.UserUpdatePayload) (models.UserProfile, error)
}

// PortalGateway is the set of event, registration and certificate calls.
type PortalGateway interface {
	ListEvents(ctx context.Context) ([]models.Event, error)
	GetEvent(ctx context.Context, id string) (models.Event, error)
	MyRegistrations(ctx context.Context) ([]models.Registration, error)
	RegisterForEvent(ctx context.Context, req models.RegistrationRequest) (models.Registration, error)
	CancelRegistration(ctx context.Context, id string) error
	// DownloadCertificate returns the raw PDF bytes of a certificate.
	DownloadCertificate(ctx context.Context, registrationID string) ([]byte, error)
	VerifyCertificate(ctx context.Context, code string) (models.Certificate, error)
}
