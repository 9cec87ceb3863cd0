package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-event-portal/internal/app"
	"github.com/MKhiriev/go-event-portal/internal/guard"
	"github.com/MKhiriev/go-event-portal/internal/recovery"
	"github.com/MKhiriev/go-event-portal/internal/service"
)

// RecoveryModel renders the three password recovery steps. The step itself
// lives in the [RecoveryFlow]; this model only owns the inputs.
type RecoveryModel struct {
	ctx  context.Context
	flow RecoveryFlow

	emailForm    form
	codeForm     form
	passwordForm form
	spinner      spinner.Model

	submitting bool
	status     string
	errMsg     string
}

func NewRecoveryModel(ctx context.Context, flow RecoveryFlow) *RecoveryModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &RecoveryModel{
		ctx:  ctx,
		flow: flow,
		emailForm: newForm(
			formField{label: "E-mail", placeholder: "email@example.com", charLimit: 254},
		),
		codeForm: newForm(
			formField{label: "Код", placeholder: "123456", charLimit: 16},
		),
		passwordForm: newForm(
			formField{label: "Новый пароль", placeholder: "password", charLimit: 256, secret: true},
			formField{label: "Повтор пароля", placeholder: "repeat password", charLimit: 256, secret: true},
		),
		spinner: s,
	}
}

func (m *RecoveryModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RecoveryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case recoveryResultMsg:
		return m.handleResult(msg)
	case spinner.TickMsg:
		if !m.submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m.back()
		case key.Matches(keyMsg, keys.tab):
			m.activeForm().focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.activeForm().focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			return m.submit()
		}
	}

	return m, m.activeForm().update(msg)
}

func (m *RecoveryModel) View() string {
	var b strings.Builder

	switch step := m.flow.Step().(type) {
	case recovery.AwaitingEmail:
		b.WriteString("Шаг 1 из 3. Укажите e-mail, на который зарегистрирован аккаунт.\n\n")
		b.WriteString(m.emailForm.view())
	case recovery.AwaitingCode:
		b.WriteString("Шаг 2 из 3. Введите код, отправленный на ")
		b.WriteString(step.Email)
		b.WriteString(".\n\n")
		b.WriteString(m.codeForm.view())
	case recovery.AwaitingNewPassword:
		b.WriteString("Шаг 3 из 3. Придумайте новый пароль для ")
		b.WriteString(step.Email())
		b.WriteString(".\n\n")
		b.WriteString(m.passwordForm.view())
	case recovery.Completed:
		b.WriteString(app.MsgPasswordChanged)
	}
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" Отправка...\n")
	}

	writeFeedback(&b, m.status, m.errMsg)

	return renderPage("ВОССТАНОВЛЕНИЕ ПАРОЛЯ", strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: подтвердить")
}

func (m *RecoveryModel) activeForm() *form {
	switch m.flow.Step().(type) {
	case recovery.AwaitingCode:
		return &m.codeForm
	case recovery.AwaitingNewPassword:
		return &m.passwordForm
	default:
		return &m.emailForm
	}
}

func (m *RecoveryModel) submit() (tea.Model, tea.Cmd) {
	if m.submitting {
		m.errMsg = app.MsgRequestInProgress
		return m, nil
	}

	ctx := m.ctx
	flow := m.flow

	var op func() error
	switch m.flow.Step().(type) {
	case recovery.AwaitingEmail:
		email := m.emailForm.value(0)
		op = func() error { return flow.RequestCode(ctx, email) }
	case recovery.AwaitingCode:
		code := m.codeForm.value(0)
		op = func() error { return flow.VerifyCode(ctx, code) }
	case recovery.AwaitingNewPassword:
		password, confirmation := m.passwordForm.value(0), m.passwordForm.value(1)
		op = func() error { return flow.ResetPassword(ctx, password, confirmation) }
	default:
		return m, nil
	}

	m.errMsg = ""
	m.status = ""
	m.submitting = true
	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		return recoveryResultMsg{err: op()}
	})
}

func (m *RecoveryModel) handleResult(msg recoveryResultMsg) (tea.Model, tea.Cmd) {
	if errors.Is(msg.err, recovery.ErrSuperseded) {
		return m, nil
	}
	m.submitting = false

	if msg.err != nil {
		m.errMsg = service.MapError(msg.err)
		return m, nil
	}
	m.errMsg = ""

	switch m.flow.Step().(type) {
	case recovery.AwaitingCode:
		m.codeForm.reset()
		m.status = app.MsgRecoveryCodeSent
		return m, cmdClearStatusLater()
	case recovery.AwaitingNewPassword:
		m.passwordForm.reset()
		return m, nil
	case recovery.Completed:
		m.resetForms()
		m.flow.Abandon()
		return m, navigate(guard.LoginPath, Notice{Text: app.MsgPasswordChanged})
	}
	return m, nil
}

// back steps from the code entry to the e-mail entry; from any other step it
// abandons the recovery and leaves the screen.
func (m *RecoveryModel) back() (tea.Model, tea.Cmd) {
	m.errMsg = ""
	m.status = ""
	m.submitting = false

	if m.flow.Back() {
		m.codeForm.reset()
		return m, nil
	}

	m.flow.Abandon()
	m.resetForms()
	return m, navigateBack
}

func (m *RecoveryModel) resetForms() {
	m.emailForm.reset()
	m.codeForm.reset()
	m.passwordForm.reset()
}
