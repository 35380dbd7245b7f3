package handler

import (
	"net/http"
	"strconv"

	"github.com/vfg2006/ads-launcher-api/internal/domain"
	"github.com/vfg2006/ads-launcher-api/internal/usecases/deploying"
	"github.com/vfg2006/ads-launcher-api/pkg/apiErrors"
	"github.com/vfg2006/ads-launcher-api/pkg/log"
)

const (
	streamProgress = "progress"
	streamResult   = "result"
	streamError    = "error"
)

// streamLine é uma linha do NDJSON devolvido pelo deploy
type streamLine struct {
	Type string `json:"type"`
	*domain.ProgressEvent
	Result *domain.DeploymentResult `json:"result,omitempty"`
	Error  *apiErrors.APIError      `json:"error,omitempty"`
}

// LaunchDeployment executa o deploy e transmite o progresso como NDJSON.
// Erros anteriores ao primeiro evento respondem com o status HTTP do erro.
func LaunchDeployment(service deploying.Deployer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req := &domain.LaunchRequest{}
		if !decodeBody(w, r, req, true) {
			return
		}

		namespace := namespaceOf(r)
		logger := log.ForContext(r.Context())
		logger.Info("INIT - LaunchDeployment")

		flusher, _ := w.(http.Flusher)
		encoder := json.NewEncoder(w)
		started := false

		emit := func(line streamLine) {
			if !started {
				w.Header().Set("Content-Type", "application/x-ndjson")
				w.Header().Set("Cache-Control", "no-cache")
				w.WriteHeader(http.StatusOK)
				started = true
			}
			if err := encoder.Encode(line); err != nil {
				logger.WithError(err).Warn("Erro ao escrever linha do stream de deploy")
				return
			}
			if flusher != nil {
				flusher.Flush()
			}
		}

		result, err := service.Launch(r.Context(), namespace, req, func(event domain.ProgressEvent) {
			emit(streamLine{Type: streamProgress, ProgressEvent: &event})
		})
		if err != nil {
			if !started {
				writeServiceError(w, r, err, "Erro ao iniciar o deploy")
				return
			}
			emit(streamLine{Type: streamError, Error: &apiErrors.APIError{Code: errorCode(err), Message: err.Error()}})
			return
		}

		emit(streamLine{Type: streamResult, Result: result})
	})
}

func ValidateDeployment(service deploying.Deployer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req := &domain.LaunchRequest{}
		if !decodeBody(w, r, req, true) {
			return
		}

		result, err := service.Check(r.Context(), namespaceOf(r), req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao validar o deploy")
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

func ListDeployments(service deploying.Deployer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", nil)
				return
			}
			limit = parsed
		}

		records, err := service.ListDeployments(r.Context(), namespaceOf(r), limit)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar deploys")
			return
		}

		writeJSON(w, http.StatusOK, records)
	})
}
