package tui

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-event-portal/internal/adapter"
	"github.com/MKhiriev/go-event-portal/internal/app"
	"github.com/MKhiriev/go-event-portal/internal/guard"
	"github.com/MKhiriev/go-event-portal/internal/mock"
	"github.com/MKhiriev/go-event-portal/models"
)

var testCertificate = models.Certificate{
	AuthenticationCode: "ABC123",
	RegistrationID:     "r-9",
	EventName:          "Go Meetup",
	ParticipantName:    "Ana Souza",
	IssuedAt:           "2026-10-01",
}

func newTestVerifyModel(t *testing.T) (*VerifyCertificateModel, *mock.MockCertificateService, *mock.MockRegistrationService, string) {
	t.Helper()
	ctrl := gomock.NewController(t)
	certificates := mock.NewMockCertificateService(ctrl)
	registrations := mock.NewMockRegistrationService(ctrl)
	dir := t.TempDir()
	return NewVerifyCertificateModel(context.Background(), certificates, registrations, dir), certificates, registrations, dir
}

func TestVerifyCertificateModel_EmptyCode(t *testing.T) {
	m, _, _, _ := newTestVerifyModel(t)

	_, cmd := m.Update(keyEnter)

	assert.Nil(t, cmd)
	assert.NotEmpty(t, m.errMsg)
}

func TestVerifyCertificateModel_Verified(t *testing.T) {
	copied := stubClipboard(t)
	m, certificates, registrations, dir := newTestVerifyModel(t)
	certificates.EXPECT().Verify(gomock.Any(), "ABC123").Return(testCertificate, nil)

	m.form.setValue(0, "  ABC123 ")
	_, cmd := m.Update(keyEnter)
	m.Update(findMsg[certificateVerifiedMsg](t, cmd))

	require.NotNil(t, m.certificate)
	assert.False(t, m.form.inputs[0].Focused())
	assert.Contains(t, m.View(), "Ana Souza")
	assert.Contains(t, m.View(), "Go Meetup")

	m.Update(keyRunes("c"))
	assert.Equal(t, "ABC123", *copied)
	assert.Equal(t, app.MsgCodeCopied, m.status)

	registrations.EXPECT().DownloadCertificate(gomock.Any(), "r-9", dir).Return(dir+"/certificado_r-9.pdf", nil)
	_, cmd = m.Update(keyRunes("d"))
	result := findMsg[downloadResultMsg](t, cmd)
	assert.Equal(t, guard.VerifyCertificatePath, result.page())

	m.Update(result)
	assert.Equal(t, app.MsgCertificateDownloadedTo+dir+"/certificado_r-9.pdf", m.status)

	m.Update(keyRunes("e"))
	assert.True(t, m.form.inputs[0].Focused())
}

func TestVerifyCertificateModel_NotFound(t *testing.T) {
	m, certificates, _, _ := newTestVerifyModel(t)
	certificates.EXPECT().Verify(gomock.Any(), "NOPE").Return(models.Certificate{}, adapter.ErrNotFound)

	m.form.setValue(0, "NOPE")
	_, cmd := m.Update(keyEnter)
	m.Update(findMsg[certificateVerifiedMsg](t, cmd))

	assert.Nil(t, m.certificate)
	assert.Equal(t, app.MsgCertificateNotVerified, m.errMsg)
	assert.True(t, m.form.inputs[0].Focused())
}

func TestVerifyCertificateModel_ServerUnavailable(t *testing.T) {
	m, certificates, _, _ := newTestVerifyModel(t)
	certificates.EXPECT().Verify(gomock.Any(), "ABC123").
		Return(models.Certificate{}, fmt.Errorf("%w: connection refused", adapter.ErrTransport))

	m.form.setValue(0, "ABC123")
	_, cmd := m.Update(keyEnter)
	m.Update(findMsg[certificateVerifiedMsg](t, cmd))

	assert.Equal(t, app.MsgServerUnavailable, m.errMsg)
}
