package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/ads-launcher-api/pkg/apiErrors"
	"github.com/vfg2006/ads-launcher-api/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeOrphanAudit = "orphan-audit"
	CronJobTypeAll         = "all"
)

type CronJob interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	OrphanAudit CronJob
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeOrphanAudit, CronJobTypeAll:
			if services.OrphanAudit == nil {
				apiErrors.WriteError(w, apiErrors.ErrNotConfigured, "Auditoria de campanhas órfãs não disponível", nil)
				return
			}
			services.OrphanAudit.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: orphan-audit, all", nil)
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - GetCronStatus")

		status := map[string]any{}
		if services.OrphanAudit != nil {
			status[CronJobTypeOrphanAudit] = services.OrphanAudit.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
