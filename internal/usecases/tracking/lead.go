package tracking

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/ads-launcher-api/internal/domain"
)

const unknownCampaign = "unknown"

// timestamps abaixo disso chegam em segundos; acima, em milissegundos
const millisThreshold = 1_000_000_000_000

type WhatsAppContact struct {
	WaID string `json:"wa_id"`
}

type WhatsAppProfile struct {
	Name string `json:"name"`
}

// WhatsAppPayload aceita os formatos dos provedores de webhook mais comuns
type WhatsAppPayload struct {
	Phone      string          `json:"phone"`
	From       string          `json:"from"`
	Contact    WhatsAppContact `json:"contact"`
	Name       string          `json:"name"`
	Profile    WhatsAppProfile `json:"profile"`
	CampaignID string          `json:"campaignId"`
	Campaign   string          `json:"campaign_id"`
	Timestamp  any             `json:"timestamp"`
}

// NormalizeWhatsAppLead devolve false quando o payload não traz telefone
func NormalizeWhatsAppLead(payload *WhatsAppPayload, now time.Time) (*domain.WhatsAppLead, bool) {
	if payload == nil {
		return nil, false
	}

	phone := firstNonEmpty(payload.Phone, payload.From, payload.Contact.WaID)
	if phone == "" {
		return nil, false
	}

	timestamp, ok := parseTimestamp(payload.Timestamp)
	if !ok {
		timestamp = now
	}

	return &domain.WhatsAppLead{
		Phone:      phone,
		Name:       firstNonEmpty(payload.Name, payload.Profile.Name),
		CampaignID: firstNonEmpty(payload.CampaignID, payload.Campaign),
		Source:     domain.LeadSourceWhatsApp,
		Timestamp:  timestamp,
	}, true
}

// HashPhone aplica SHA-256 sobre os dígitos do telefone, como a API de Conversões exige
func HashPhone(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return ""
	}

	sum := sha256.Sum256([]byte(digits.String()))
	return hex.EncodeToString(sum[:])
}

// LeadEvent monta o evento Lead do pixel para um contato do WhatsApp
func LeadEvent(business *domain.BusinessProfile, lead *domain.WhatsAppLead, hashedPhone string) domain.ConversionEvent {
	source := lead.Source
	if source == "" {
		source = domain.LeadSourceWhatsApp
	}
	campaignID := lead.CampaignID
	if campaignID == "" {
		campaignID = unknownCampaign
	}

	return domain.ConversionEvent{
		EventName:      domain.EventLead,
		EventTime:      lead.Timestamp.Unix(),
		ActionSource:   domain.ActionSourceSystemCreated,
		EventSourceURL: strings.TrimSpace(business.LandingPageURL),
		UserData:       domain.ConversionUserData{Phones: []string{hashedPhone}},
		CustomData:     domain.ConversionCustomData{Source: source, CampaignID: campaignID},
	}
}

func parseTimestamp(value any) (time.Time, bool) {
	var n float64
	switch v := value.(type) {
	case float64:
		n = v
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return time.Time{}, false
		}
		n = parsed
	default:
		return time.Time{}, false
	}

	if n <= 0 {
		return time.Time{}, false
	}
	if n < millisThreshold {
		return time.Unix(int64(n), 0), true
	}
	return time.UnixMilli(int64(n)), true
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value = strings.TrimSpace(value); value != "" {
			return value
		}
	}
	return ""
}
