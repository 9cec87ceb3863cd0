package service

import (
	"github.com/MKhiriev/go-event-portal/internal/adapter"
	"github.com/MKhiriev/go-event-portal/internal/logger"
)

type ClientServices struct {
	Events        EventService
	Registrations RegistrationService
	Certificates  CertificateService
	Profile       ProfileService
}

func NewClientServices(identity adapter.IdentityGateway, portal adapter.PortalGateway, session UserSession, log *logger.Logger) *ClientServices {
	log = log.Component("service")

	return &ClientServices{
		Events:        NewEventService(portal, session, log),
		Registrations: NewRegistrationService(portal, log),
		Certificates:  NewCertificateService(portal, log),
		Profile:       NewProfileService(identity, session, log),
	}
}
