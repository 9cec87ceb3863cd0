package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-event-portal/internal/adapter"
	"github.com/MKhiriev/go-event-portal/internal/logger"
	"github.com/MKhiriev/go-event-portal/models"
)

// AllCategories is the category filter value that matches every event.
const AllCategories = "All"

// anyCategory lists the filter values treated as "no category filter".
var anyCategory = []string{"", AllCategories, "Todos"}

type eventService struct {
	gateway adapter.PortalGateway
	session UserSession
	logger  *logger.Logger
}

func NewEventService(gateway adapter.PortalGateway, session UserSession, log *logger.Logger) EventService {
	return &eventService{
		gateway: gateway,
		session: session,
		logger:  log,
	}
}

func (s *eventService) List(ctx context.Context) ([]models.Event, error) {
	events, err := s.gateway.ListEvents(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "eventService.List").Msg("error listing events")
		return nil, err
	}
	return events, nil
}

func (s *eventService) Filter(events []models.Event, search, category string) []models.Event {
	search = strings.ToLower(strings.TrimSpace(search))
	category = strings.TrimSpace(category)

	filtered := make([]models.Event, 0, len(events))
	for _, event := range events {
		if !matchesSearch(event, search) || !matchesCategory(event, category) {
			continue
		}
		filtered = append(filtered, event)
	}
	return filtered
}

func (s *eventService) Categories(events []models.Event) []string {
	seen := make(map[string]struct{}, len(events))
	categories := []string{AllCategories}

	for _, event := range events {
		if event.Category == "" {
			continue
		}
		if _, ok := seen[event.Category]; ok {
			continue
		}
		seen[event.Category] = struct{}{}
		categories = append(categories, event.Category)
	}
	return categories
}

func (s *eventService) Subscribe(ctx context.Context, eventID string) (models.Registration, error) {
	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return models.Registration{}, fmt.Errorf("%w: event id is required", ErrValidation)
	}

	user := s.session.State().User
	if user == nil {
		return models.Registration{}, ErrProfileNotLoaded
	}

	registration, err := s.gateway.RegisterForEvent(ctx, models.RegistrationRequest{
		EventID: eventID,
		UserID:  user.ID,
	})
	if err != nil {
		s.logger.Err(err).
			Str("func", "eventService.Subscribe").
			Str("event_id", eventID).
			Msg("error registering for event")
		return models.Registration{}, err
	}

	s.logger.Info().Str("func", "eventService.Subscribe").Str("event_id", eventID).Msg("registered for event")
	return registration, nil
}

func matchesSearch(event models.Event, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(event.Name), search) ||
		strings.Contains(strings.ToLower(event.Description), search)
}

func matchesCategory(event models.Event, category string) bool {
	for _, value := range anyCategory {
		if strings.EqualFold(category, value) {
			return true
		}
	}
	return strings.EqualFold(event.Category, category)
}
