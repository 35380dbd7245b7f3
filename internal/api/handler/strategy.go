package handler

import (
	"net/http"

	"github.com/vfg2006/ads-launcher-api/internal/usecases/strategizing"
)

func ListStrategies(service strategizing.StrategyService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.List())
	})
}

func AuditStrategies(service strategizing.StrategyService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.Audit())
	})
}
