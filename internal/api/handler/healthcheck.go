package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/ads-launcher-api/pkg/log"
)

const healthcheckTimeout = 2 * time.Second

// HealthCheck é uma dependência verificada pelo healthcheck, como Redis ou Postgres
type HealthCheck func(ctx context.Context) error

type healthResponse struct {
	Status string            `json:"status"`
	Time   time.Time         `json:"time"`
	Checks map[string]string `json:"checks,omitempty"`
}

func HealthcheckHandler(checks map[string]HealthCheck) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthcheckTimeout)
		defer cancel()

		response := healthResponse{Status: "ok", Time: time.Now(), Checks: map[string]string{}}
		status := http.StatusOK

		for name, check := range checks {
			if err := check(ctx); err != nil {
				log.L.WithError(err).WithField("dependency", name).Warn("healthcheck: dependência indisponível")
				response.Checks[name] = err.Error()
				response.Status = "degraded"
				status = http.StatusServiceUnavailable
				continue
			}
			response.Checks[name] = "ok"
		}

		writeJSON(w, status, response)
	})
}
