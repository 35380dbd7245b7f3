package handler

import (
	"errors"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/ads-launcher-api/infrastructure/integrator/meta"
	metadomain "github.com/vfg2006/ads-launcher-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-launcher-api/internal/usecases/deploying"
	"github.com/vfg2006/ads-launcher-api/internal/usecases/tracking"
	"github.com/vfg2006/ads-launcher-api/internal/usecases/workspace"
	"github.com/vfg2006/ads-launcher-api/pkg/apiErrors"
	"github.com/vfg2006/ads-launcher-api/pkg/log"
	"github.com/vfg2006/ads-launcher-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.L.WithError(err).Error("Erro ao codificar resposta")
	}
}

// decodeBody aceita corpo vazio quando allowEmpty é true
func decodeBody(w http.ResponseWriter, r *http.Request, dst any, allowEmpty bool) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || (allowEmpty && errors.Is(err, io.EOF)) {
		return true
	}

	log.ForContext(r.Context()).WithError(err).Warn("Corpo da requisição inválido")
	apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
	return false
}

// namespaceOf devolve a licença autenticada da requisição
func namespaceOf(r *http.Request) string {
	claims, _ := middleware.ClaimsFromContext(r.Context())
	return claims.Namespace()
}

// errorCode traduz os erros dos casos de uso e das integrações para os códigos da API
func errorCode(err error) string {
	var deployErr *deploying.DeploymentError
	if errors.As(err, &deployErr) {
		return deployErr.Code
	}

	var workspaceErr *workspace.WorkspaceError
	if errors.As(err, &workspaceErr) {
		return workspaceErr.Code
	}

	var trackingErr *tracking.TrackingError
	if errors.As(err, &trackingErr) {
		return trackingErr.Code
	}

	switch {
	case meta.IsTokenExpired(err):
		return apiErrors.ErrPlatformToken
	case errors.Is(err, meta.ErrMissingToken):
		return apiErrors.ErrNotConfigured
	case errors.Is(err, meta.ErrMissingAdAccount), errors.Is(err, meta.ErrMissingPixel):
		return apiErrors.ErrMissingRequiredData
	}

	var graphErr *metadomain.GraphError
	if errors.As(err, &graphErr) {
		return apiErrors.ErrExternalService
	}

	return apiErrors.ErrInternalServer
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error, message string) {
	code := errorCode(err)

	logger := log.ForContext(r.Context()).WithError(err).WithField("code", code)
	if apiErrors.StatusFor(code) >= http.StatusInternalServerError {
		logger.Error(message)
	} else {
		logger.Warn(message)
	}

	apiErrors.WriteError(w, code, message, err.Error())
}
