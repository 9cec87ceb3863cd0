package recovery

import "errors"

// Local validation errors never reach the network.
var (
	ErrEmptyEmail       = errors.New("e-mail is required")
	ErrEmptyCode        = errors.New("recovery code is required")
	ErrEmptyPassword    = errors.New("new password is required")
	ErrPasswordMismatch = errors.New("password and confirmation do not match")
)

var (
	// ErrStepInProgress is returned when a step is submitted while another
	// request of the flow is still in flight.
	ErrStepInProgress = errors.New("a recovery step is already in progress")

	// ErrWrongStep is returned when an operation does not belong to the
	// current step.
	ErrWrongStep = errors.New("operation not allowed in the current recovery step")

	// ErrSuperseded is returned to the caller of a request whose result was
	// discarded because the flow was moved back or abandoned meanwhile.
	ErrSuperseded = errors.New("recovery step was superseded")

	// ErrEmptyToken is returned when verification succeeds without a token.
	ErrEmptyToken = errors.New("verification returned no token")
)
