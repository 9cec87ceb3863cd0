package recovery

import (
	"context"
	"strings"
	"sync"

	"github.com/MKhiriev/go-event-portal/internal/logger"
	"github.com/MKhiriev/go-event-portal/models"
)

// Gateway is the subset of identity calls used by the flow.
type Gateway interface {
	RequestRecoveryCode(ctx context.Context, email string) error
	VerifyRecoveryCode(ctx context.Context, email, code string) (string, error)
	ResetPassword(ctx context.Context, reset models.PasswordReset) error
}

// Flow drives one password recovery. It is safe for concurrent use; at most
// one gateway request is in flight at a time.
type Flow struct {
	gateway Gateway
	logger  *logger.Logger

	mu         sync.Mutex
	step       Step
	generation uint64
	inFlight   bool
}

// NewFlow returns a flow at [AwaitingEmail].
func NewFlow(gateway Gateway, log *logger.Logger) *Flow {
	return &Flow{
		gateway: gateway,
		logger:  log,
		step:    AwaitingEmail{},
	}
}

// Step returns the current step.
func (f *Flow) Step() Step {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.step
}

// InFlight reports whether a gateway request is pending.
func (f *Flow) InFlight() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.inFlight
}

// RequestCode asks the gateway to send a recovery code to email and moves to
// [AwaitingCode]. On failure the step is unchanged.
func (f *Flow) RequestCode(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmptyEmail
	}

	gen, err := f.begin(func(s Step) bool {
		_, ok := s.(AwaitingEmail)
		return ok
	})
	if err != nil {
		return err
	}

	err = f.gateway.RequestRecoveryCode(ctx, email)
	return f.finish(gen, err, AwaitingCode{Email: email})
}

// VerifyCode checks code for the e-mail of the current [AwaitingCode] step.
// Success moves to [AwaitingNewPassword] carrying the returned token.
func (f *Flow) VerifyCode(ctx context.Context, code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return ErrEmptyCode
	}

	var email string
	gen, err := f.begin(func(s Step) bool {
		awaiting, ok := s.(AwaitingCode)
		email = awaiting.Email
		return ok
	})
	if err != nil {
		return err
	}

	token, err := f.gateway.VerifyRecoveryCode(ctx, email, code)
	if err == nil && strings.TrimSpace(token) == "" {
		err = ErrEmptyToken
	}
	return f.finish(gen, err, AwaitingNewPassword{email: email, token: strings.TrimSpace(token)})
}

// ResetPassword sets the new password using the captured token. A mismatch
// with confirmation or an empty password fails locally without a gateway
// call and keeps the step.
func (f *Flow) ResetPassword(ctx context.Context, newPassword, confirmation string) error {
	if newPassword == "" {
		return ErrEmptyPassword
	}
	if newPassword != confirmation {
		return ErrPasswordMismatch
	}

	var current AwaitingNewPassword
	gen, err := f.begin(func(s Step) bool {
		awaiting, ok := s.(AwaitingNewPassword)
		current = awaiting
		return ok
	})
	if err != nil {
		return err
	}

	err = f.gateway.ResetPassword(ctx, models.PasswordReset{
		Email:       current.email,
		Token:       current.token,
		NewPassword: newPassword,
	})
	return f.finish(gen, err, Completed{Email: current.email})
}

// Back returns from [AwaitingCode] to [AwaitingEmail], discarding any
// pending request. It reports whether the step changed.
func (f *Flow) Back() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.step.(AwaitingCode); !ok {
		return false
	}
	f.resetLocked()
	return true
}

// Abandon discards the flow and any pending request and starts over.
func (f *Flow) Abandon() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resetLocked()
}

func (f *Flow) resetLocked() {
	f.generation++
	f.inFlight = false
	f.step = AwaitingEmail{}
}

// begin claims the flow for one request if the current step satisfies want.
func (f *Flow) begin(want func(Step) bool) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.inFlight {
		return 0, ErrStepInProgress
	}
	if !want(f.step) {
		return 0, ErrWrongStep
	}
	f.inFlight = true
	return f.generation, nil
}

// finish applies next on success, in a single assignment, unless the flow
// moved on since begin.
func (f *Flow) finish(gen uint64, err error, next Step) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if gen != f.generation {
		f.logger.Debug().
			Str("func", "Flow.finish").
			Str("step", next.Name()).
			Uint64("generation", gen).
			Msg("ignoring late recovery result")
		return ErrSuperseded
	}
	f.inFlight = false

	if err != nil {
		f.logger.Debug().Err(err).Str("func", "Flow.finish").Str("step", f.step.Name()).Msg("recovery step failed")
		return err
	}

	f.step = next
	f.logger.Info().Str("func", "Flow.finish").Str("step", next.Name()).Msg("recovery step advanced")
	return nil
}
