package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-event-portal/internal/adapter"
	"github.com/MKhiriev/go-event-portal/internal/logger"
	"github.com/MKhiriev/go-event-portal/internal/validators"
	"github.com/MKhiriev/go-event-portal/models"
)

type profileService struct {
	gateway   adapter.IdentityGateway
	session   UserSession
	validator validators.Validator
	logger    *logger.Logger
}

func NewProfileService(gateway adapter.IdentityGateway, session UserSession, log *logger.Logger) ProfileService {
	return &profileService{
		gateway:   gateway,
		session:   session,
		validator: validators.NewAccountValidator(),
		logger:    log,
	}
}

func (s *profileService) Update(ctx context.Context, fullName, birthDate string) (models.UserProfile, error) {
	payload := models.UserUpdatePayload{
		FullName:  strings.TrimSpace(fullName),
		BirthDate: strings.TrimSpace(birthDate),
	}
	if err := s.validator.Validate(ctx, payload); err != nil {
		return models.UserProfile{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	user := s.session.State().User
	if user == nil {
		return models.UserProfile{}, ErrProfileNotLoaded
	}

	_, err := s.gateway.UpdateUser(ctx, user.ID, payload)
	if err != nil {
		s.logger.Err(err).Str("func", "profileService.Update").Str("user_id", user.ID).Msg("error updating profile")
		return models.UserProfile{}, err
	}

	// cached copy takes the submitted fields, not the response body; a
	// cleared birth date is cleared here too
	updated := *user
	updated.FullName = payload.FullName
	updated.BirthDate = payload.BirthDate
	s.session.ReplaceUser(updated)

	if current := s.session.State().User; current != nil {
		return *current, nil
	}
	return models.UserProfile{}, ErrProfileNotLoaded
}
