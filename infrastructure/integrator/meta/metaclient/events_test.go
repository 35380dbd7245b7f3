package metaclient

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/ads-launcher-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-launcher-api/internal/domain"
)

func TestMetaClient_SendEvents(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v21.0/px-1/events", r.URL.Path)

		form := readForm(t, r)
		assert.Equal(t, "tok", form.Get("access_token"))
		assert.JSONEq(t, `[{
			"event_name":"Lead",
			"event_time":1760529600,
			"action_source":"system_generated",
			"user_data":{"ph":["hash"]},
			"custom_data":{"source":"WHATSAPP","campaign_id":"unknown"}
		}]`, form.Get("data"))

		w.Write([]byte(`{"events_received":1,"messages":[],"fbtrace_id":"AbC"}`))
	})

	response, err := client.SendEvents(context.Background(), "tok", "px-1", []domain.ConversionEvent{{
		EventName:    "Lead",
		EventTime:    1760529600,
		ActionSource: "system_generated",
		UserData:     domain.ConversionUserData{Phones: []string{"hash"}},
		CustomData:   domain.ConversionCustomData{Source: "WHATSAPP", CampaignID: "unknown"},
	}})

	require.NoError(t, err)
	assert.Equal(t, 1, response.EventsReceived)
	assert.Equal(t, "AbC", response.FBTraceID)
}

func TestMetaClient_SendEventsIsNotRetried(t *testing.T) {
	var calls int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"Invalid parameter","type":"OAuthException","code":100}}`))
	})

	_, err := client.SendEvents(context.Background(), "tok", "px-1", []domain.ConversionEvent{{EventName: "Lead"}})

	var graphErr *metadomain.GraphError
	require.ErrorAs(t, err, &graphErr)
	assert.Equal(t, "Invalid parameter", graphErr.Details.Message)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}
