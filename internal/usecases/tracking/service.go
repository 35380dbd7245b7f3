package tracking

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-launcher-api/internal/domain"
	"github.com/vfg2006/ads-launcher-api/pkg/apiErrors"
	"github.com/vfg2006/ads-launcher-api/pkg/metrics"
)

type Tracker interface {
	TrackWhatsAppLead(ctx context.Context, namespace string, payload *WhatsAppPayload) (*domain.ConversionReceipt, error)
}

// Service fecha o ciclo de atribuição enviando os leads do WhatsApp ao pixel do negócio
type Service struct {
	business BusinessReader
	sender   ConversionSender
	now      func() time.Time
}

func NewService(business BusinessReader, sender ConversionSender) *Service {
	return &Service{
		business: business,
		sender:   sender,
		now:      time.Now,
	}
}

func (s *Service) TrackWhatsAppLead(ctx context.Context, namespace string, payload *WhatsAppPayload) (*domain.ConversionReceipt, error) {
	lead, ok := NormalizeWhatsAppLead(payload, s.now())
	if !ok {
		metrics.WhatsAppLeads.WithLabelValues("rejected").Inc()
		return nil, NewTrackingError(ErrLeadWithoutPhone, apiErrors.ErrMissingRequiredData, "phone, from ou contact.wa_id")
	}

	hashedPhone := HashPhone(lead.Phone)
	if hashedPhone == "" {
		metrics.WhatsAppLeads.WithLabelValues("rejected").Inc()
		return nil, NewTrackingError(ErrLeadWithoutPhone, apiErrors.ErrInvalidFormat, lead.Phone)
	}

	logger := logrus.WithFields(logrus.Fields{
		"namespace":   namespace,
		"campaign_id": lead.CampaignID,
	})

	business, err := s.business.GetBusiness(ctx, namespace)
	if err != nil {
		logger.WithError(err).Error("tracking: erro ao carregar negócio")
		return nil, NewTrackingError(ErrLoadBusiness, apiErrors.ErrDatabaseOperation, err.Error())
	}
	if business == nil {
		return nil, NewTrackingError(ErrBusinessNotConfigured, apiErrors.ErrMissingRequiredData, namespace)
	}
	if strings.TrimSpace(business.Meta.PixelID) == "" {
		return nil, NewTrackingError(ErrPixelNotConfigured, apiErrors.ErrMissingRequiredData, namespace)
	}

	events := []domain.ConversionEvent{LeadEvent(business, lead, hashedPhone)}
	receipt, err := s.sender.SendConversionEvents(ctx, business.Meta.AccessToken, business.Meta.PixelID, events)
	if err != nil {
		metrics.WhatsAppLeads.WithLabelValues("failed").Inc()
		logger.WithError(err).Warn("tracking: Meta recusou o lead do WhatsApp")
		return nil, err
	}

	metrics.WhatsAppLeads.WithLabelValues("sent").Inc()
	logger.WithField("events_received", receipt.EventsReceived).Info("tracking: lead do WhatsApp enviado ao Meta")

	receipt.Lead = lead
	return receipt, nil
}
