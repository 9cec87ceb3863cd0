package recovery

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-event-portal/internal/adapter"
	"github.com/MKhiriev/go-event-portal/internal/logger"
	"github.com/MKhiriev/go-event-portal/internal/mock"
	"github.com/MKhiriev/go-event-portal/models"
)

const testEmail = "ana@example.com"

func newTestFlow(t *testing.T) (*Flow, *mock.MockIdentityGateway) {
	t.Helper()
	gw := mock.NewMockIdentityGateway(gomock.NewController(t))
	return NewFlow(gw, logger.Nop()), gw
}

// flowAt drives a fresh flow up to AwaitingNewPassword.
func flowAt(t *testing.T, token string) (*Flow, *mock.MockIdentityGateway) {
	t.Helper()
	f, gw := newTestFlow(t)
	ctx := context.Background()

	gw.EXPECT().RequestRecoveryCode(gomock.Any(), testEmail).Return(nil)
	gw.EXPECT().VerifyRecoveryCode(gomock.Any(), testEmail, "123456").Return(token, nil)

	require.NoError(t, f.RequestCode(ctx, testEmail))
	require.NoError(t, f.VerifyCode(ctx, "123456"))
	return f, gw
}

func TestFlow_FullRecovery(t *testing.T) {
	f, gw := newTestFlow(t)
	ctx := context.Background()

	assert.Equal(t, AwaitingEmail{}, f.Step())

	gomock.InOrder(
		gw.EXPECT().RequestRecoveryCode(gomock.Any(), testEmail).Return(nil),
		gw.EXPECT().VerifyRecoveryCode(gomock.Any(), testEmail, "123456").Return("T", nil),
		gw.EXPECT().ResetPassword(gomock.Any(), models.PasswordReset{
			Email:       testEmail,
			Token:       "T",
			NewPassword: "n3w",
		}).Return(nil),
	)

	require.NoError(t, f.RequestCode(ctx, "  "+testEmail+" "))
	assert.Equal(t, AwaitingCode{Email: testEmail}, f.Step())

	require.NoError(t, f.VerifyCode(ctx, "123456"))
	step, ok := f.Step().(AwaitingNewPassword)
	require.True(t, ok)
	assert.Equal(t, testEmail, step.Email())
	assert.Equal(t, "T", step.Token())

	require.NoError(t, f.ResetPassword(ctx, "n3w", "n3w"))
	assert.Equal(t, Completed{Email: testEmail}, f.Step())
	assert.False(t, f.InFlight())
}

func TestFlow_LocalValidation(t *testing.T) {
	f, _ := newTestFlow(t)
	ctx := context.Background()

	assert.ErrorIs(t, f.RequestCode(ctx, "   "), ErrEmptyEmail)
	assert.Equal(t, AwaitingEmail{}, f.Step())

	// до RequestCode проверка кода всё равно локальная
	assert.ErrorIs(t, f.VerifyCode(ctx, ""), ErrEmptyCode)
}

func TestFlow_PasswordMismatchNoCall(t *testing.T) {
	f, _ := flowAt(t, "T")
	ctx := context.Background()

	// no ResetPassword expectation: any call would fail the test
	assert.ErrorIs(t, f.ResetPassword(ctx, "a", "b"), ErrPasswordMismatch)
	assert.ErrorIs(t, f.ResetPassword(ctx, "", ""), ErrEmptyPassword)

	_, ok := f.Step().(AwaitingNewPassword)
	assert.True(t, ok)
}

func TestFlow_WrongStep(t *testing.T) {
	f, _ := newTestFlow(t)
	ctx := context.Background()

	assert.ErrorIs(t, f.VerifyCode(ctx, "123456"), ErrWrongStep)
	assert.ErrorIs(t, f.ResetPassword(ctx, "x", "x"), ErrWrongStep)
	assert.Equal(t, AwaitingEmail{}, f.Step())
}

func TestFlow_GatewayFailureKeepsStep(t *testing.T) {
	f, gw := newTestFlow(t)
	ctx := context.Background()

	gw.EXPECT().RequestRecoveryCode(gomock.Any(), testEmail).Return(nil)
	gw.EXPECT().VerifyRecoveryCode(gomock.Any(), testEmail, "000000").
		Return("", &adapter.RemoteError{StatusCode: 400, Message: "Código inválido"})

	require.NoError(t, f.RequestCode(ctx, testEmail))

	err := f.VerifyCode(ctx, "000000")
	require.Error(t, err)
	msg, ok := adapter.RemoteMessage(err)
	require.True(t, ok)
	assert.Equal(t, "Código inválido", msg)

	assert.Equal(t, AwaitingCode{Email: testEmail}, f.Step())
	assert.False(t, f.InFlight())
}

func TestFlow_EmptyTokenIsFailure(t *testing.T) {
	f, gw := newTestFlow(t)
	ctx := context.Background()

	gw.EXPECT().RequestRecoveryCode(gomock.Any(), testEmail).Return(nil)
	gw.EXPECT().VerifyRecoveryCode(gomock.Any(), testEmail, "123456").Return("  ", nil)

	require.NoError(t, f.RequestCode(ctx, testEmail))
	assert.ErrorIs(t, f.VerifyCode(ctx, "123456"), ErrEmptyToken)
	assert.Equal(t, AwaitingCode{Email: testEmail}, f.Step())
}

func TestFlow_ResetFailureKeepsToken(t *testing.T) {
	f, gw := flowAt(t, "T")
	ctx := context.Background()

	gw.EXPECT().ResetPassword(gomock.Any(), gomock.Any()).Return(adapter.ErrTransport)

	assert.ErrorIs(t, f.ResetPassword(ctx, "n3w", "n3w"), adapter.ErrTransport)
	step, ok := f.Step().(AwaitingNewPassword)
	require.True(t, ok)
	assert.Equal(t, "T", step.Token())
}

func TestFlow_Back(t *testing.T) {
	f, gw := newTestFlow(t)
	ctx := context.Background()

	assert.False(t, f.Back(), "nothing to go back to")

	gw.EXPECT().RequestRecoveryCode(gomock.Any(), testEmail).Return(nil)
	require.NoError(t, f.RequestCode(ctx, testEmail))

	assert.True(t, f.Back())
	assert.Equal(t, AwaitingEmail{}, f.Step())
}

func TestFlow_BackOnlyFromAwaitingCode(t *testing.T) {
	f, _ := flowAt(t, "T")

	assert.False(t, f.Back())
	_, ok := f.Step().(AwaitingNewPassword)
	assert.True(t, ok)

	f.Abandon()
	assert.Equal(t, AwaitingEmail{}, f.Step())
}

func TestFlow_StepInProgress(t *testing.T) {
	f, gw := newTestFlow(t)
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan error)
	gw.EXPECT().RequestRecoveryCode(gomock.Any(), testEmail).DoAndReturn(
		func(context.Context, string) error {
			close(started)
			return <-release
		},
	)

	done := make(chan error, 1)
	go func() { done <- f.RequestCode(ctx, testEmail) }()

	<-started
	assert.True(t, f.InFlight())
	assert.ErrorIs(t, f.RequestCode(ctx, testEmail), ErrStepInProgress)

	release <- nil
	require.NoError(t, <-done)
	assert.Equal(t, AwaitingCode{Email: testEmail}, f.Step())
}

func TestFlow_LateResultAfterAbandonIgnored(t *testing.T) {
	f, gw := newTestFlow(t)
	ctx := context.Background()

	gw.EXPECT().RequestRecoveryCode(gomock.Any(), testEmail).Return(nil)
	require.NoError(t, f.RequestCode(ctx, testEmail))

	started := make(chan struct{})
	release := make(chan struct{})
	gw.EXPECT().VerifyRecoveryCode(gomock.Any(), testEmail, "123456").DoAndReturn(
		func(context.Context, string, string) (string, error) {
			close(started)
			<-release
			return "T", nil
		},
	)

	done := make(chan error, 1)
	go func() { done <- f.VerifyCode(ctx, "123456") }()

	<-started
	f.Abandon()
	close(release)

	assert.True(t, errors.Is(<-done, ErrSuperseded))
	assert.Equal(t, AwaitingEmail{}, f.Step())
	assert.False(t, f.InFlight())
}
