package tui

import (
	"context"

	"github.com/MKhiriev/go-event-portal/internal/recovery"
	"github.com/MKhiriev/go-event-portal/internal/session"
	"github.com/MKhiriev/go-event-portal/models"
)

// Session is the part of the session controller the UI drives.
type Session interface {
	Start(ctx context.Context)
	State() session.State
	Login(ctx context.Context, payload models.LoginPayload) error
	Logout()
	Subscribe(fn func(session.State)) (unsubscribe func())
}

// RecoveryFlow is the password recovery state machine.
type RecoveryFlow interface {
	Step() recovery.Step
	InFlight() bool
	RequestCode(ctx context.Context, email string) error
	VerifyCode(ctx context.Context, code string) error
	ResetPassword(ctx context.Context, newPassword, confirmation string) error
	Back() bool
	Abandon()
}

// Registrar creates accounts.
type Registrar interface {
	Register(ctx context.Context, payload models.RegisterPayload) error
}
