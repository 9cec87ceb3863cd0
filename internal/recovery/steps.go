// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package recovery implements the three-step password recovery protocol:
// request a code by e-mail, verify it, then set a new password with the token
// returned by the verification.
//
// Each step is its own type. [AwaitingNewPassword] can only be built by the
// flow itself from a successful verification, so a reset without a verified
// token cannot be expressed.
package recovery

// Step is one state of the recovery flow.
type Step interface {
	// Name is a stable identifier used in logs.
	Name() string
	isStep()
}

// AwaitingEmail is the initial step.
type AwaitingEmail struct{}

// AwaitingCode waits for the code sent to Email.
type AwaitingCode struct {
	Email string
}

// AwaitingNewPassword holds the verified recovery token.
type AwaitingNewPassword struct {
	email string
	token string
}

// Email returns the address being recovered.
func (s AwaitingNewPassword) Email() string { return s.email }

// Token returns the verification token that authorises the reset.
func (s AwaitingNewPassword) Token() string { return s.token }

// Completed is the terminal step; the caller routes the user to login.
type Completed struct {
	Email string
}

func (AwaitingEmail) Name() string       { return "awaiting_email" }
func (AwaitingCode) Name() string        { return "awaiting_code" }
func (AwaitingNewPassword) Name() string { return "awaiting_new_password" }
func (Completed) Name() string           { return "completed" }

func (AwaitingEmail) isStep()       {}
func (AwaitingCode) isStep()        {}
func (AwaitingNewPassword) isStep() {}
func (Completed) isStep()           {}
