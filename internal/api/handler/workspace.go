package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/ads-launcher-api/internal/domain"
	"github.com/vfg2006/ads-launcher-api/internal/usecases/workspace"
	"github.com/vfg2006/ads-launcher-api/pkg/apiErrors"
)

type copyRequest struct {
	Count int  `json:"count"`
	Save  bool `json:"save"`
}

func GetBusiness(service workspace.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		business, err := service.GetBusiness(r.Context(), namespaceOf(r))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao carregar o negócio")
			return
		}
		if business == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Negócio ainda não configurado", nil)
			return
		}

		writeJSON(w, http.StatusOK, business)
	})
}

func SaveBusiness(service workspace.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		business := &domain.BusinessProfile{}
		if !decodeBody(w, r, business, false) {
			return
		}

		saved, err := service.SaveBusiness(r.Context(), namespaceOf(r), business)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao salvar o negócio")
			return
		}

		writeJSON(w, http.StatusOK, saved)
	})
}

func ListAssets(service workspace.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assets, err := service.ListAssets(r.Context(), namespaceOf(r))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar ativos")
			return
		}

		writeJSON(w, http.StatusOK, assets)
	})
}

// SaveAsset responde 201 para um ativo novo e 200 quando a URL já estava na biblioteca
func SaveAsset(service workspace.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		asset := &domain.CreativeAsset{}
		if !decodeBody(w, r, asset, false) {
			return
		}

		saved, created, err := service.SaveAsset(r.Context(), namespaceOf(r), asset)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao salvar ativo")
			return
		}

		status := http.StatusOK
		if created {
			status = http.StatusCreated
		}
		writeJSON(w, status, saved)
	})
}

func DeleteAsset(service workspace.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do ativo não informado", nil)
			return
		}

		if err := service.DeleteAsset(r.Context(), namespaceOf(r), id); err != nil {
			writeServiceError(w, r, err, "Erro ao remover ativo")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func GenerateCopy(service workspace.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req := &copyRequest{}
		if !decodeBody(w, r, req, true) {
			return
		}
		if raw := r.URL.Query().Get("count"); raw != "" && req.Count == 0 {
			req.Count, _ = strconv.Atoi(raw)
		}

		copies, err := service.GenerateCopy(r.Context(), namespaceOf(r), req.Count, req.Save)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao gerar textos")
			return
		}

		writeJSON(w, http.StatusOK, copies)
	})
}

func ListCampaigns(service workspace.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		campaigns, err := service.ListCampaigns(r.Context(), namespaceOf(r))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar campanhas")
			return
		}

		writeJSON(w, http.StatusOK, campaigns)
	})
}
