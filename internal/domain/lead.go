package domain

import "time"

const (
	LeadSourceWhatsApp = "WHATSAPP"

	EventLead                 = "Lead"
	ActionSourceSystemCreated = "system_generated"
)

// WhatsAppLead é o contato recebido pelo webhook de mensagens já normalizado
type WhatsAppLead struct {
	Phone      string    `json:"phone"`
	Name       string    `json:"name,omitempty"`
	CampaignID string    `json:"campaign_id,omitempty"`
	Source     string    `json:"source"`
	Timestamp  time.Time `json:"timestamp"`
}

// ConversionEvent é um evento da API de Conversões do Meta
type ConversionEvent struct {
	EventName      string               `json:"event_name"`
	EventTime      int64                `json:"event_time"`
	ActionSource   string               `json:"action_source"`
	EventSourceURL string               `json:"event_source_url,omitempty"`
	UserData       ConversionUserData   `json:"user_data"`
	CustomData     ConversionCustomData `json:"custom_data"`
}

// ConversionUserData leva apenas dados já em hash SHA-256
type ConversionUserData struct {
	Phones []string `json:"ph"`
}

type ConversionCustomData struct {
	Source     string `json:"source"`
	CampaignID string `json:"campaign_id"`
}

// ConversionReceipt resume a resposta do Meta ao envio dos eventos
type ConversionReceipt struct {
	Success        bool          `json:"success"`
	Message        string        `json:"message"`
	Lead           *WhatsAppLead `json:"lead,omitempty"`
	EventsReceived int           `json:"events_received"`
	FBTraceID      string        `json:"fbtrace_id,omitempty"`
}
