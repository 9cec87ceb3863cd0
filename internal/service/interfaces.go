// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the portal collaborators that sit on top of the
// session core: events, registrations, certificates and profile edits.
//
// Services are thin. They validate input, call the gateway and, for the
// profile, merge the result into the session's cached user. Errors are
// returned unchanged from the gateway so that [MapError] can surface the
// server's message to the user.
package service

import (
	"context"

	"github.com/MKhiriev/go-event-portal/internal/session"
	"github.com/MKhiriev/go-event-portal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// UserSession is the read side of the session controller plus the cached
// profile replacement.
type UserSession interface {
	State() session.State
	ReplaceUser(user models.UserProfile)
}

// EventService lists, filters and subscribes to events.
type EventService interface {
	// List returns every published event.
	List(ctx context.Context) ([]models.Event, error)

	// Filter keeps the events whose name or description contains search
	// (case-insensitive) and whose category matches category. An empty
	// category or [AllCategories] matches any event.
	Filter(events []models.Event, search, category string) []models.Event

	// Categories returns the distinct categories of events in first-seen
	// order, preceded by [AllCategories].
	Categories(events []models.Event) []string

	// Subscribe registers the current user for eventID. It fails with
	// [ErrProfileNotLoaded] while the session has no cached profile.
	Subscribe(ctx context.Context, eventID string) (models.Registration, error)
}

// RegistrationService manages the current user's registrations.
type RegistrationService interface {
	// Mine returns the user's registrations joined with their events. A
	// registration whose event cannot be fetched is returned with a nil
	// Event.
	Mine(ctx context.Context) ([]models.RegistrationWithEvent, error)

	// ActiveEventIDs returns the ids of events the user holds an active
	// registration for.
	ActiveEventIDs(ctx context.Context) (map[string]bool, error)

	// Cancel cancels registration id.
	Cancel(ctx context.Context, id string) error

	// DownloadCertificate saves the certificate of registration id as
	// certificado_<id>.pdf inside dir and returns the file path.
	DownloadCertificate(ctx context.Context, id, dir string) (string, error)
}

// CertificateService verifies certificates by authentication code.
type CertificateService interface {
	Verify(ctx context.Context, code string) (models.Certificate, error)
}

// ProfileService edits the current user's profile.
type ProfileService interface {
	// Update sends the editable fields to the server and, on success, merges
	// them into the session's cached profile. It returns the merged profile.
	Update(ctx context.Context, fullName, birthDate string) (models.UserProfile, error)
}
