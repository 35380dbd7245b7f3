package handler

import (
	"net/http"

	"github.com/vfg2006/ads-launcher-api/internal/usecases/tracking"
)

// TrackWhatsAppLead recebe o webhook de mensagens e envia o lead ao pixel do negócio
func TrackWhatsAppLead(tracker tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload := &tracking.WhatsAppPayload{}
		if !decodeBody(w, r, payload, false) {
			return
		}

		receipt, err := tracker.TrackWhatsAppLead(r.Context(), namespaceOf(r), payload)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao enviar lead do WhatsApp ao Meta")
			return
		}

		writeJSON(w, http.StatusOK, receipt)
	})
}
