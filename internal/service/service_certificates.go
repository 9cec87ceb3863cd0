package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-event-portal/internal/adapter"
	"github.com/MKhiriev/go-event-portal/internal/logger"
	"github.com/MKhiriev/go-event-portal/models"
)

type certificateService struct {
	gateway adapter.PortalGateway
	logger  *logger.Logger
}

func NewCertificateService(gateway adapter.PortalGateway, log *logger.Logger) CertificateService {
	return &certificateService{
		gateway: gateway,
		logger:  log,
	}
}

func (s *certificateService) Verify(ctx context.Context, code string) (models.Certificate, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return models.Certificate{}, fmt.Errorf("%w: authentication code is required", ErrValidation)
	}

	certificate, err := s.gateway.VerifyCertificate(ctx, code)
	if err != nil {
		s.logger.Debug().Err(err).Str("func", "certificateService.Verify").Msg("certificate verification failed")
		return models.Certificate{}, err
	}
	return certificate, nil
}
