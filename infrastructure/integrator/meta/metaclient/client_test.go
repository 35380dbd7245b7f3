package metaclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/ads-launcher-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-launcher-api/internal/config"
	"github.com/vfg2006/ads-launcher-api/internal/domain"
)

var testAuth = domain.PlatformAuth{AccessToken: "tok", AdAccountID: "act_42"}

func newTestClient(t *testing.T, handler http.HandlerFunc) *MetaClient {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{Meta: config.Meta{URL: server.URL + "/v21.0", ReadMaxTries: 3}}
	client := NewClient(cfg).(*MetaClient)
	client.retryInterval = time.Millisecond
	return client
}

func readForm(t *testing.T, r *http.Request) url.Values {
	t.Helper()

	body, err := io.ReadAll(r.Body)
	require.NoError(t, err)
	form, err := url.ParseQuery(string(body))
	require.NoError(t, err)
	return form
}

func TestMetaClient_CreateCampaign(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v21.0/act_42/campaigns", r.URL.Path)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		form := readForm(t, r)
		assert.Equal(t, "tok", form.Get("access_token"))
		assert.Equal(t, "[PHOENIX] | Launch", form.Get("name"))
		assert.Equal(t, "OUTCOME_SALES", form.Get("objective"))
		assert.Equal(t, "PAUSED", form.Get("status"))
		assert.Equal(t, "[]", form.Get("special_ad_categories"))

		w.Write([]byte(`{"id":"120200"}`))
	})

	id, err := client.CreateCampaign(context.Background(), testAuth, &domain.CampaignRequest{
		Name:      "[PHOENIX] | Launch",
		Objective: domain.ObjectiveSales,
		Status:    domain.StatusPaused,
	})

	require.NoError(t, err)
	assert.Equal(t, "120200", id)
}

func TestMetaClient_CreateAdSet(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v21.0/act_42/adsets", r.URL.Path)

		form := readForm(t, r)
		assert.Equal(t, "27500", form.Get("daily_budget"))
		assert.Equal(t, "c1", form.Get("campaign_id"))
		assert.Equal(t, "IMPRESSIONS", form.Get("billing_event"))
		assert.Equal(t, "PAUSED", form.Get("status"))
		assert.JSONEq(t, `{"pixel_id":"px","custom_event_type":"PURCHASE"}`, form.Get("promoted_object"))

		var targeting domain.Targeting
		require.NoError(t, json.Unmarshal([]byte(form.Get("targeting")), &targeting))
		assert.Equal(t, []string{"CO"}, targeting.GeoLocations.Countries)
		assert.Equal(t, 25, targeting.AgeMin)

		w.Write([]byte(`{"id":"as1"}`))
	})

	id, err := client.CreateAdSet(context.Background(), testAuth, &domain.AdSetRequest{
		Name:         "A",
		CampaignID:   "c1",
		DailyBudget:  27500,
		BillingEvent: "IMPRESSIONS",
		Status:       domain.StatusPaused,
		Targeting: domain.Targeting{
			GeoLocations: domain.GeoLocations{Countries: []string{"CO"}},
			AgeMin:       25,
			AgeMax:       45,
		},
		PromotedObject: &domain.PromotedObject{PixelID: "px", CustomEventType: "PURCHASE"},
	})

	require.NoError(t, err)
	assert.Equal(t, "as1", id)
}

func TestMetaClient_CreateAdSetWithoutPromotedObject(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		form := readForm(t, r)
		_, ok := form["promoted_object"]
		assert.False(t, ok)
		w.Write([]byte(`{"id":"as1"}`))
	})

	_, err := client.CreateAdSet(context.Background(), testAuth, &domain.AdSetRequest{Name: "A", Status: domain.StatusPaused})
	require.NoError(t, err)
}

func TestMetaClient_CreateAdCreativeAndAd(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		form := readForm(t, r)

		switch r.URL.Path {
		case "/v21.0/act_42/adcreatives":
			assert.Equal(t, "ADS_IA_1", form.Get("name"))
			assert.JSONEq(t, `{
				"page_id":"page-1",
				"link_data":{
					"link":"https://loja.example.com",
					"message":"Compre já",
					"picture":"https://cdn.example.com/a.png",
					"call_to_action":{"type":"SHOP_NOW","value":{"link":"https://loja.example.com"}}
				}
			}`, form.Get("object_story_spec"))
			w.Write([]byte(`{"id":"cr1"}`))
		case "/v21.0/act_42/ads":
			assert.Equal(t, "as1", form.Get("adset_id"))
			assert.Equal(t, "PAUSED", form.Get("status"))
			assert.JSONEq(t, `{"creative_id":"cr1"}`, form.Get("creative"))
			w.Write([]byte(`{"id":"ad1"}`))
		default:
			t.Errorf("caminho inesperado %s", r.URL.Path)
		}
	})

	creativeID, err := client.CreateAdCreative(context.Background(), testAuth, &domain.AdCreativeRequest{
		Name: "ADS_IA_1",
		ObjectStorySpec: domain.ObjectStorySpec{
			PageID: "page-1",
			LinkData: &domain.LinkData{
				Link:    "https://loja.example.com",
				Message: "Compre já",
				Picture: "https://cdn.example.com/a.png",
				CallToAction: domain.CallToAction{
					Type:  "SHOP_NOW",
					Value: domain.CallToActionValue{Link: "https://loja.example.com"},
				},
			},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "cr1", creativeID)

	adID, err := client.CreateAd(context.Background(), testAuth, &domain.AdRequest{
		Name:       "AD_1_A",
		AdSetID:    "as1",
		CreativeID: creativeID,
		Status:     domain.StatusPaused,
	})
	require.NoError(t, err)
	assert.Equal(t, "ad1", adID)
}

func TestMetaClient_CreateIsNotRetried(t *testing.T) {
	var calls int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"message":"An unknown error occurred","type":"OAuthException","code":1}}`))
	})

	_, err := client.CreateAd(context.Background(), testAuth, &domain.AdRequest{Name: "x"})

	require.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestMetaClient_GraphErrors(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		body         string
		message      string
		tokenExpired bool
	}{
		{
			name:    "Mensagem para o usuário tem prioridade",
			status:  http.StatusBadRequest,
			body:    `{"error":{"message":"Invalid parameter","type":"OAuthException","code":100,"error_user_msg":"El presupuesto es demasiado bajo","fbtrace_id":"A1"}}`,
			message: "El presupuesto es demasiado bajo",
		},
		{
			name:         "Token expirado",
			status:       http.StatusUnauthorized,
			body:         `{"error":{"message":"Error validating access token: Session has expired","type":"OAuthException","code":190,"error_subcode":463}}`,
			message:      "Error validating access token: Session has expired",
			tokenExpired: true,
		},
		{
			name:    "Corpo fora do padrão",
			status:  http.StatusBadGateway,
			body:    `upstream error`,
			message: "erro na resposta da API. Status: 502, Corpo: upstream error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			_, err := client.CreateCampaign(context.Background(), testAuth, &domain.CampaignRequest{Name: "x"})
			require.Error(t, err)
			assert.Equal(t, tt.message, err.Error())

			var graphErr *metadomain.GraphError
			require.ErrorAs(t, err, &graphErr)
			assert.Equal(t, tt.status, graphErr.StatusCode)
			assert.Equal(t, tt.tokenExpired, graphErr.IsTokenExpired())
		})
	}
}

func TestMetaClient_DeleteObject(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "Removido", body: `{"success":true}`},
		{name: "Sem confirmação", body: `{"success":false}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodDelete, r.Method)
				assert.Equal(t, "/v21.0/c1", r.URL.Path)
				assert.Equal(t, "tok", r.URL.Query().Get("access_token"))
				w.Write([]byte(tt.body))
			})

			err := client.DeleteObject(context.Background(), "tok", "c1")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestMetaClient_ListAdAccountsRetriesTransientErrors(t *testing.T) {
	var calls int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v21.0/me/adaccounts", r.URL.Path)
		assert.Equal(t, "name,id,amount_spent", r.URL.Query().Get("fields"))

		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"error":{"message":"Service temporarily unavailable","code":2}}`))
			return
		}
		w.Write([]byte(`{"data":[{"id":"act_1","name":"Loja","amount_spent":"1500"}],"paging":{"cursors":{"before":"a","after":"b"}}}`))
	})

	accounts, err := client.ListAdAccounts(context.Background(), "tok")

	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "act_1", accounts[0].ID)
	assert.Equal(t, "1500", accounts[0].AmountSpent)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestMetaClient_ReadStopsOnPermanentError(t *testing.T) {
	var calls int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"Invalid OAuth access token.","type":"OAuthException","code":190}}`))
	})

	_, err := client.ListPages(context.Background(), "tok")

	require.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestMetaClient_ReadGivesUpAfterMaxTries(t *testing.T) {
	var calls int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"message":"boom","code":1}}`))
	})

	_, err := client.GetAdAccount(context.Background(), "tok", "act_42")

	require.Error(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestMetaClient_ListPagesAndGetAdAccount(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v21.0/me/accounts":
			assert.Equal(t, "name,id,picture", r.URL.Query().Get("fields"))
			w.Write([]byte(`{"data":[{"id":"p1","name":"Página","picture":{"data":{"url":"https://img.example.com/p1.jpg"}}}]}`))
		case "/v21.0/act_42":
			w.Write([]byte(`{"id":"act_42","name":"Loja","account_id":"42","currency":"COP"}`))
		}
	})

	pages, err := client.ListPages(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Equal(t, "https://img.example.com/p1.jpg", pages[0].Picture.Data.URL)

	account, err := client.GetAdAccount(context.Background(), "tok", "act_42")
	require.NoError(t, err)
	assert.Equal(t, "COP", account.Currency)
}
