package tui

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-event-portal/internal/app"
	"github.com/MKhiriev/go-event-portal/internal/guard"
	"github.com/MKhiriev/go-event-portal/internal/mock"
	"github.com/MKhiriev/go-event-portal/models"
)

func testRegistrations() []models.RegistrationWithEvent {
	return []models.RegistrationWithEvent{
		{
			Registration: models.Registration{ID: "r1", EventID: "e1", Status: models.RegistrationConfirmed},
			Event:        &models.Event{ID: "e1", Name: "Go Meetup"},
		},
		{
			Registration: models.Registration{ID: "r2", EventID: "e2", Status: models.RegistrationCompleted},
			Event:        &models.Event{ID: "e2", Name: "Jazz Night"},
		},
		{
			Registration: models.Registration{ID: "r3", EventID: "e9", Status: models.RegistrationCanceled},
		},
	}
}

func newTestMyEventsModel(t *testing.T, items []models.RegistrationWithEvent) (*MyEventsModel, *mock.MockRegistrationService, string) {
	t.Helper()
	ctrl := gomock.NewController(t)
	registrations := mock.NewMockRegistrationService(ctrl)
	dir := t.TempDir()

	m := NewMyEventsModel(context.Background(), registrations, dir)
	registrations.EXPECT().Mine(gomock.Any()).Return(items, nil)
	m.Update(findMsg[registrationsLoadedMsg](t, m.Init()))
	require.False(t, m.loading)

	return m, registrations, dir
}

func stubClipboard(t *testing.T) *string {
	t.Helper()
	var copied string
	prev := writeClipboard
	writeClipboard = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { writeClipboard = prev })
	return &copied
}

func TestMyEventsModel_View(t *testing.T) {
	m, _, _ := newTestMyEventsModel(t, testRegistrations())

	view := m.View()
	assert.Contains(t, view, "Go Meetup")
	assert.Contains(t, view, "Подтверждено")
	assert.Contains(t, view, "Завершено")
	assert.Contains(t, view, "Мероприятие не найдено")
}

func TestMyEventsModel_CancelWithConfirmation(t *testing.T) {
	m, registrations, _ := newTestMyEventsModel(t, testRegistrations())

	m.Update(keyRunes("x"))
	require.NotNil(t, m.confirm)

	// отказ закрывает диалог без запроса
	m.Update(keyRunes("n"))
	assert.Nil(t, m.confirm)

	registrations.EXPECT().Cancel(gomock.Any(), "r1").Return(nil)

	m.Update(keyRunes("x"))
	_, cmd := m.Update(keyRunes("y"))
	assert.Nil(t, m.confirm)

	m.Update(findMsg[cancelResultMsg](t, cmd))

	assert.Equal(t, models.RegistrationCanceled, m.items[0].Status)
	assert.Equal(t, app.MsgRegistrationCanceled, m.status)
}

func TestMyEventsModel_CancelNotAllowed(t *testing.T) {
	m, _, _ := newTestMyEventsModel(t, testRegistrations())

	m.Update(keyRunes("j"))
	_, cmd := m.Update(keyRunes("x"))

	assert.Nil(t, cmd)
	assert.Nil(t, m.confirm)
	assert.NotEmpty(t, m.status)
}

func TestMyEventsModel_CancelFailureKeepsStatus(t *testing.T) {
	m, registrations, _ := newTestMyEventsModel(t, testRegistrations())
	registrations.EXPECT().Cancel(gomock.Any(), "r1").Return(errors.New("boom"))

	m.Update(keyRunes("x"))
	_, cmd := m.Update(keyRunes("y"))
	m.Update(findMsg[cancelResultMsg](t, cmd))

	assert.Equal(t, models.RegistrationConfirmed, m.items[0].Status)
	assert.Equal(t, app.MsgUnexpected, m.errMsg)
}

func TestMyEventsModel_DownloadCertificate(t *testing.T) {
	m, registrations, dir := newTestMyEventsModel(t, testRegistrations())
	path := filepath.Join(dir, "certificado_r2.pdf")
	registrations.EXPECT().DownloadCertificate(gomock.Any(), "r2", dir).Return(path, nil)

	// у подтверждённой записи сертификата ещё нет
	_, cmd := m.Update(keyRunes("d"))
	assert.Nil(t, cmd)

	m.Update(keyRunes("j"))
	_, cmd = m.Update(keyRunes("d"))
	result := findMsg[downloadResultMsg](t, cmd)
	assert.Equal(t, guard.MyEventsPath, result.page())

	m.Update(result)
	assert.Equal(t, app.MsgCertificateDownloadedTo+path, m.status)
}

func TestMyEventsModel_CopyRegistrationID(t *testing.T) {
	copied := stubClipboard(t)
	m, _, _ := newTestMyEventsModel(t, testRegistrations())

	m.Update(keyRunes("j"))
	m.Update(keyRunes("c"))

	assert.Equal(t, "r2", *copied)
	assert.NotEmpty(t, m.status)
}

func TestMyEventsModel_EmptyListLeadsToEvents(t *testing.T) {
	m, _, _ := newTestMyEventsModel(t, nil)

	_, cmd := m.Update(keyEnter)

	assert.Equal(t, guard.EventsPath, findMsg[NavigateTo](t, cmd).Path)
}
