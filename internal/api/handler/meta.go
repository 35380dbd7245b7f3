package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/vfg2006/ads-launcher-api/internal/domain"
	"github.com/vfg2006/ads-launcher-api/internal/usecases/workspace"
)

// MetaTokenHeader permite testar um token antes de salvá-lo no negócio
const MetaTokenHeader = "X-Meta-Token"

type MetaExplorer interface {
	ValidateCredentials(ctx context.Context, token, adAccountID string) (string, error)
	ListAssets(ctx context.Context, token string) (*domain.MetaAssets, error)
}

type validateMetaRequest struct {
	AccessToken string `json:"access_token"`
	AdAccountID string `json:"ad_account_id"`
}

type validateMetaResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

// ListMetaAssets lista contas de anúncio e páginas usando o token do header ou o do negócio
func ListMetaAssets(explorer MetaExplorer, service workspace.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimSpace(r.Header.Get(MetaTokenHeader))
		if token == "" {
			business, err := service.GetBusiness(r.Context(), namespaceOf(r))
			if err != nil {
				writeServiceError(w, r, err, "Erro ao carregar o negócio")
				return
			}
			if business != nil {
				token = business.Meta.AccessToken
			}
		}

		assets, err := explorer.ListAssets(r.Context(), token)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao consultar ativos do Meta")
			return
		}

		writeJSON(w, http.StatusOK, assets)
	})
}

// ValidateMetaConnection testa a conexão; campos vazios usam a configuração salva do negócio
func ValidateMetaConnection(explorer MetaExplorer, service workspace.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req := &validateMetaRequest{}
		if !decodeBody(w, r, req, true) {
			return
		}

		if req.AccessToken == "" || req.AdAccountID == "" {
			business, err := service.GetBusiness(r.Context(), namespaceOf(r))
			if err != nil {
				writeServiceError(w, r, err, "Erro ao carregar o negócio")
				return
			}
			if business != nil {
				if req.AccessToken == "" {
					req.AccessToken = business.Meta.AccessToken
				}
				if req.AdAccountID == "" {
					req.AdAccountID = business.Meta.AdAccountID
				}
			}
		}

		message, err := explorer.ValidateCredentials(r.Context(), req.AccessToken, req.AdAccountID)
		if err != nil {
			writeServiceError(w, r, err, "Falha na conexão com o Meta")
			return
		}

		writeJSON(w, http.StatusOK, validateMetaResponse{Valid: true, Message: message})
	})
}
