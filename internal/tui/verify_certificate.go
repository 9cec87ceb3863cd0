package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-event-portal/internal/app"
	"github.com/MKhiriev/go-event-portal/internal/guard"
	"github.com/MKhiriev/go-event-portal/internal/service"
	"github.com/MKhiriev/go-event-portal/models"
)

// VerifyCertificateModel looks a certificate up by its authentication code.
// It is open to anonymous users.
type VerifyCertificateModel struct {
	ctx           context.Context
	certificates  service.CertificateService
	registrations service.RegistrationService
	downloadDir   string

	form        form
	certificate *models.Certificate
	submitting  bool
	downloading bool
	status      string
	errMsg      string
}

func NewVerifyCertificateModel(ctx context.Context, certificates service.CertificateService, registrations service.RegistrationService, downloadDir string) *VerifyCertificateModel {
	return &VerifyCertificateModel{
		ctx:           ctx,
		certificates:  certificates,
		registrations: registrations,
		downloadDir:   downloadDir,
		form: newForm(
			formField{label: "Код", placeholder: "authentication code", charLimit: 64},
		),
	}
}

func (m *VerifyCertificateModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *VerifyCertificateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case certificateVerifiedMsg:
		m.submitting = false
		if msg.err != nil {
			m.certificate = nil
			m.errMsg = app.MsgCertificateNotVerified
			if remote := service.MapError(msg.err); remote == app.MsgServerUnavailable {
				m.errMsg = remote
			}
			return m, nil
		}
		m.errMsg = ""
		certificate := msg.certificate
		m.certificate = &certificate
		m.form.inputs[0].Blur()
		return m, nil

	case downloadResultMsg:
		m.downloading = false
		if msg.err != nil {
			m.errMsg = service.MapError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = app.MsgCertificateDownloadedTo + msg.path
		return m, nil

	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, m.form.update(msg)
	}

	// a shown certificate takes the letter keys until the code is edited again
	if m.certificate != nil && !m.form.inputs[0].Focused() {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m, navigateBack
		case key.Matches(keyMsg, keys.copy):
			if err := writeClipboard(m.certificate.AuthenticationCode); err != nil {
				m.errMsg = fmt.Sprintf("Ошибка копирования: %v", err)
				return m, nil
			}
			m.status = app.MsgCodeCopied
			return m, cmdClearStatusLater()
		case key.Matches(keyMsg, keys.download):
			if m.downloading || m.certificate.RegistrationID == "" {
				return m, nil
			}
			m.downloading = true
			m.errMsg = ""
			return m, cmdDownloadCertificate(m.ctx, m.registrations, m.certificate.RegistrationID, m.downloadDir, guard.VerifyCertificatePath)
		case key.Matches(keyMsg, keys.edit):
			m.form.setFocus(0)
			return m, textinput.Blink
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.errMsg = ""
		return m, navigateBack
	case key.Matches(keyMsg, keys.enter):
		if m.submitting {
			return m, nil
		}
		code := m.form.trimmed(0)
		if code == "" {
			m.errMsg = "Введите код сертификата"
			return m, nil
		}
		m.errMsg = ""
		m.status = ""
		m.submitting = true
		return m, m.cmdVerify(code)
	}

	return m, m.form.update(msg)
}

func (m *VerifyCertificateModel) View() string {
	var b strings.Builder
	b.WriteString("Введите код подлинности, указанный в сертификате.\n\n")
	b.WriteString(m.form.view())
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\n[Проверить...]\n")
	}

	hotKeys := "esc: назад │ enter: проверить"
	if c := m.certificate; c != nil {
		b.WriteString("\nСертификат действителен\n")
		b.WriteString("Участник:    ")
		b.WriteString(valueOrDash(c.ParticipantName))
		b.WriteString("\nМероприятие: ")
		b.WriteString(valueOrDash(c.EventName))
		b.WriteString("\nВыдан:       ")
		b.WriteString(valueOrDash(c.IssuedAt))
		b.WriteString("\nКод:         ")
		b.WriteString(c.AuthenticationCode)
		b.WriteString("\n")
		if !m.form.inputs[0].Focused() {
			hotKeys = "esc: назад │ c: копировать код │ d: скачать │ e: новый код"
		}
	}
	if m.downloading {
		b.WriteString("\nЗагрузка сертификата...\n")
	}

	writeFeedback(&b, m.status, m.errMsg)

	return renderPage("ПРОВЕРКА СЕРТИФИКАТА", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *VerifyCertificateModel) cmdVerify(code string) tea.Cmd {
	ctx := m.ctx
	certificates := m.certificates

	return func() tea.Msg {
		certificate, err := certificates.Verify(ctx, code)
		return certificateVerifiedMsg{certificate: certificate, err: err}
	}
}
