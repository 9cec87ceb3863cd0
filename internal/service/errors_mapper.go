// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-event-portal/internal/adapter"
	"github.com/MKhiriev/go-event-portal/internal/app"
	"github.com/MKhiriev/go-event-portal/internal/recovery"
	"github.com/MKhiriev/go-event-portal/internal/validators"
)

// MapError translates an error returned by the client layers into the
// message shown to the user. A server-provided message wins over the
// status-class default; transport failures always get the generic
// "server unavailable" text.
func MapError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, adapter.ErrTransport):
		return app.MsgServerUnavailable
	case errors.Is(err, adapter.ErrCredentialStore):
		return app.MsgLocalStorageFailure

	case errors.Is(err, recovery.ErrEmptyEmail):
		return app.MsgEmailRequired
	case errors.Is(err, recovery.ErrEmptyCode):
		return app.MsgCodeRequired
	case errors.Is(err, recovery.ErrEmptyPassword):
		return app.MsgPasswordRequired
	case errors.Is(err, recovery.ErrPasswordMismatch):
		return app.MsgPasswordMismatch
	case errors.Is(err, recovery.ErrStepInProgress):
		return app.MsgRequestInProgress
	case errors.Is(err, validators.ErrInvalidEmail):
		return app.MsgInvalidEmail
	case errors.Is(err, validators.ErrInvalidBirthDate):
		return app.MsgInvalidBirthDate
	case errors.Is(err, ErrValidation), errors.Is(err, validators.ErrRequiredField):
		return app.MsgFillRequiredFields
	case errors.Is(err, ErrProfileNotLoaded):
		return app.MsgProfileNotLoaded

	case errors.Is(err, adapter.ErrEmptyToken), errors.Is(err, recovery.ErrEmptyToken):
		return app.MsgEmptyToken
	}

	if msg, ok := adapter.RemoteMessage(err); ok {
		return msg
	}

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		return app.MsgInvalidDataProvided
	case errors.Is(err, adapter.ErrUnauthorized):
		return app.MsgSessionExpired
	case errors.Is(err, adapter.ErrForbidden):
		return app.MsgAccessDenied
	case errors.Is(err, adapter.ErrNotFound):
		return app.MsgNotFound
	case errors.Is(err, adapter.ErrConflict):
		return app.MsgConflict
	case errors.Is(err, adapter.ErrBadGateway), errors.Is(err, adapter.ErrInternalServerError):
		return app.MsgServerError
	}

	return app.MsgUnexpected
}
