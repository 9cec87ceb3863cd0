package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-event-portal/internal/adapter"
	"github.com/MKhiriev/go-event-portal/internal/logger"
	"github.com/MKhiriev/go-event-portal/models"
)

// eventLookupLimit bounds concurrent GET /events/{id} calls made by Mine.
const eventLookupLimit = 4

type registrationService struct {
	gateway adapter.PortalGateway
	logger  *logger.Logger
}

func NewRegistrationService(gateway adapter.PortalGateway, log *logger.Logger) RegistrationService {
	return &registrationService{
		gateway: gateway,
		logger:  log,
	}
}

func (s *registrationService) Mine(ctx context.Context) ([]models.RegistrationWithEvent, error) {
	registrations, err := s.gateway.MyRegistrations(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "registrationService.Mine").Msg("error fetching registrations")
		return nil, err
	}

	events := s.lookupEvents(ctx, registrations)

	result := make([]models.RegistrationWithEvent, 0, len(registrations))
	for _, registration := range registrations {
		result = append(result, models.RegistrationWithEvent{
			Registration: registration,
			Event:        events[registration.EventID],
		})
	}
	return result, nil
}

// lookupEvents fetches each distinct event once. Failed lookups are logged
// and left out of the returned map.
func (s *registrationService) lookupEvents(ctx context.Context, registrations []models.Registration) map[string]*models.Event {
	ids := make([]string, 0, len(registrations))
	seen := make(map[string]struct{}, len(registrations))
	for _, registration := range registrations {
		if _, ok := seen[registration.EventID]; ok || registration.EventID == "" {
			continue
		}
		seen[registration.EventID] = struct{}{}
		ids = append(ids, registration.EventID)
	}

	found := make([]*models.Event, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(eventLookupLimit)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			event, err := s.gateway.GetEvent(gctx, id)
			if err != nil {
				s.logger.Warn().Err(err).
					Str("func", "registrationService.lookupEvents").
					Str("event_id", id).
					Msg("event lookup failed")
				return nil
			}
			found[i] = &event
			return nil
		})
	}
	_ = g.Wait()

	events := make(map[string]*models.Event, len(ids))
	for i, id := range ids {
		if found[i] != nil {
			events[id] = found[i]
		}
	}
	return events
}

func (s *registrationService) ActiveEventIDs(ctx context.Context) (map[string]bool, error) {
	registrations, err := s.gateway.MyRegistrations(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "registrationService.ActiveEventIDs").Msg("error fetching registrations")
		return nil, err
	}

	ids := make(map[string]bool, len(registrations))
	for _, registration := range registrations {
		if registration.Status.Active() {
			ids[registration.EventID] = true
		}
	}
	return ids, nil
}

func (s *registrationService) Cancel(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("%w: registration id is required", ErrValidation)
	}

	if err := s.gateway.CancelRegistration(ctx, id); err != nil {
		s.logger.Err(err).Str("func", "registrationService.Cancel").Str("registration_id", id).Msg("error canceling registration")
		return err
	}
	return nil
}

func (s *registrationService) DownloadCertificate(ctx context.Context, id, dir string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" || strings.ContainsAny(id, `/\`) || id == "." || id == ".." {
		return "", fmt.Errorf("%w: invalid registration id %q", ErrValidation, id)
	}

	data, err := s.gateway.DownloadCertificate(ctx, id)
	if err != nil {
		s.logger.Err(err).Str("func", "registrationService.DownloadCertificate").Str("registration_id", id).Msg("error downloading certificate")
		return "", err
	}
	if len(data) == 0 {
		return "", ErrEmptyCertificate
	}

	if err = os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: %w", ErrSavingCertificate, err)
	}

	path := filepath.Join(dir, CertificateFileName(id))
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("%w: %w", ErrSavingCertificate, err)
	}

	s.logger.Info().Str("func", "registrationService.DownloadCertificate").Str("path", path).Msg("certificate saved")
	return path, nil
}

// CertificateFileName is the file name a certificate of registration id is
// saved under.
func CertificateFileName(id string) string {
	return "certificado_" + id + ".pdf"
}
