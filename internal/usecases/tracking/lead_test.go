package tracking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-launcher-api/internal/domain"
)

var fixedNow = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

func TestNormalizeWhatsAppLead(t *testing.T) {
	tests := []struct {
		name     string
		payload  *WhatsAppPayload
		ok       bool
		expected *domain.WhatsAppLead
	}{
		{
			name:    "Telefone direto",
			payload: &WhatsAppPayload{Phone: " +57 300 111 2233 ", Name: "Ana", CampaignID: "c-9", Timestamp: float64(1760529600000)},
			ok:      true,
			expected: &domain.WhatsAppLead{
				Phone: "+57 300 111 2233", Name: "Ana", CampaignID: "c-9", Source: "WHATSAPP",
				Timestamp: time.UnixMilli(1760529600000),
			},
		},
		{
			name:    "Campo from com perfil",
			payload: &WhatsAppPayload{From: "573001112233", Profile: WhatsAppProfile{Name: "Beto"}, Campaign: "c-1", Timestamp: "1760529600"},
			ok:      true,
			expected: &domain.WhatsAppLead{
				Phone: "573001112233", Name: "Beto", CampaignID: "c-1", Source: "WHATSAPP",
				Timestamp: time.Unix(1760529600, 0),
			},
		},
		{
			name:     "Contato do WhatsApp sem timestamp",
			payload:  &WhatsAppPayload{Contact: WhatsAppContact{WaID: "5215512345678"}},
			ok:       true,
			expected: &domain.WhatsAppLead{Phone: "5215512345678", Source: "WHATSAPP", Timestamp: fixedNow},
		},
		{
			name:     "Timestamp inválido usa o relógio",
			payload:  &WhatsAppPayload{Phone: "1", Timestamp: "ontem"},
			ok:       true,
			expected: &domain.WhatsAppLead{Phone: "1", Source: "WHATSAPP", Timestamp: fixedNow},
		},
		{name: "Sem telefone", payload: &WhatsAppPayload{Name: "Ana", Contact: WhatsAppContact{WaID: "  "}}},
		{name: "Payload nulo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lead, ok := NormalizeWhatsAppLead(tt.payload, fixedNow)

			assert.Equal(t, tt.ok, ok)
			if !tt.ok {
				assert.Nil(t, lead)
				return
			}
			require.NotNil(t, lead)
			assert.Equal(t, tt.expected.Phone, lead.Phone)
			assert.Equal(t, tt.expected.Name, lead.Name)
			assert.Equal(t, tt.expected.CampaignID, lead.CampaignID)
			assert.Equal(t, tt.expected.Source, lead.Source)
			assert.True(t, tt.expected.Timestamp.Equal(lead.Timestamp), "timestamp %s", lead.Timestamp)
		})
	}
}

func TestHashPhone(t *testing.T) {
	const expected = "2fe5f5d98b96b5121fae91958260185ea56404eca12c7104876062534da8ca94"

	assert.Equal(t, expected, HashPhone("573001112233"))
	assert.Equal(t, expected, HashPhone("+57 (300) 111-2233"))
	assert.Empty(t, HashPhone("sem número"))
}

func TestLeadEvent(t *testing.T) {
	business := &domain.BusinessProfile{LandingPageURL: " https://loja.example.com "}
	lead := &domain.WhatsAppLead{Phone: "573001112233", Timestamp: time.Unix(1760529600, 0)}

	event := LeadEvent(business, lead, "hash")

	assert.Equal(t, "Lead", event.EventName)
	assert.Equal(t, int64(1760529600), event.EventTime)
	assert.Equal(t, "system_generated", event.ActionSource)
	assert.Equal(t, "https://loja.example.com", event.EventSourceURL)
	assert.Equal(t, []string{"hash"}, event.UserData.Phones)
	assert.Equal(t, domain.ConversionCustomData{Source: "WHATSAPP", CampaignID: "unknown"}, event.CustomData)
}
