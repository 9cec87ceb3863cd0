package tui

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-event-portal/internal/app"
	"github.com/MKhiriev/go-event-portal/internal/mock"
	"github.com/MKhiriev/go-event-portal/internal/service"
	"github.com/MKhiriev/go-event-portal/internal/validators"
	"github.com/MKhiriev/go-event-portal/models"
)

func newTestProfileModel(t *testing.T, user *models.UserProfile) (*ProfileModel, *mock.MockProfileService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	profile := mock.NewMockProfileService(ctrl)
	return NewProfileModel(context.Background(), newFakeSession(true, user), profile), profile
}

func testUser() *models.UserProfile {
	return &models.UserProfile{
		ID:         "u-1",
		FullName:   "Ana Souza",
		Email:      "ana@example.com",
		NationalID: "123.456.789-00",
		BirthDate:  "1990-05-17",
		Roles:      []string{"PARTICIPANT"},
	}
}

func TestProfileModel_View(t *testing.T) {
	m, _ := newTestProfileModel(t, testUser())

	view := m.View()
	assert.Contains(t, view, "Ana Souza")
	assert.Contains(t, view, "123.456.789-00")
	assert.Contains(t, view, "PARTICIPANT")
}

func TestProfileModel_ViewWhileLoading(t *testing.T) {
	m, _ := newTestProfileModel(t, nil)

	assert.Contains(t, m.View(), "Загрузка профиля...")

	m.Update(keyRunes("e"))
	assert.False(t, m.editing)
	assert.Equal(t, app.MsgProfileNotLoaded, m.errMsg)
}

func TestProfileModel_EditAndSave(t *testing.T) {
	m, profile := newTestProfileModel(t, testUser())

	m.Update(keyRunes("e"))
	require.True(t, m.editing)
	assert.Equal(t, "Ana Souza", m.form.value(0))
	assert.Equal(t, "1990-05-17", m.form.value(1))

	m.form.setValue(0, "Ana Maria Souza")
	profile.EXPECT().Update(gomock.Any(), "Ana Maria Souza", "1990-05-17").Return(models.UserProfile{}, nil)

	_, cmd := m.Update(keyEnter)
	m.Update(findMsg[profileSavedMsg](t, cmd))

	assert.False(t, m.editing)
	assert.Equal(t, app.MsgProfileUpdated, m.status)
}

func TestProfileModel_SaveErrorKeepsEditing(t *testing.T) {
	m, profile := newTestProfileModel(t, testUser())
	profile.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.UserProfile{}, fmt.Errorf("%w: %w", service.ErrValidation, validators.ErrInvalidBirthDate))

	m.Update(keyRunes("e"))
	_, cmd := m.Update(keyEnter)
	m.Update(findMsg[profileSavedMsg](t, cmd))

	assert.True(t, m.editing)
	assert.Equal(t, app.MsgInvalidBirthDate, m.errMsg)
}

func TestProfileModel_Esc(t *testing.T) {
	m, _ := newTestProfileModel(t, testUser())

	m.Update(keyRunes("e"))
	_, cmd := m.Update(keyEsc)
	assert.Nil(t, cmd)
	assert.False(t, m.editing)

	_, cmd = m.Update(keyEsc)
	findMsg[NavigateBack](t, cmd)
}
