package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/yield-manager-api/pkg/apiErrors"
	"github.com/vfg2006/yield-manager-api/pkg/log"
	"github.com/vfg2006/yield-manager-api/pkg/utils"
)

// Tipos de cron job aceitos na execução manual
const (
	CronJobTypeYieldRefresh = "yield-refresh"
	CronJobTypeAll          = "all"
)

// RefreshTrigger é o agendador que pode ser disparado manualmente pela API
type RefreshTrigger interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron disponíveis para execução manual
type CronJobServices struct {
	YieldRefreshService RefreshTrigger
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		var started bool
		switch cronType {
		case CronJobTypeYieldRefresh, CronJobTypeAll:
			if services.YieldRefreshService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de recálculo de yield não disponível", nil)
				return
			}
			started = services.YieldRefreshService.TriggerManualSync()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: yield-refresh, all", nil)
			return
		}

		message := "Cron job iniciada com sucesso"
		if !started {
			message = "Cron job já está em execução"
		}

		logger.WithField("type", cronType).Info(message)

		response := map[string]any{
			"message": message,
			"type":    cronType,
			"started": started,
		}
		if err := utils.WriteJSON(w, http.StatusAccepted, response); err != nil {
			logger.WithError(err).Error("Erro ao enviar resposta")
		}
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.YieldRefreshService != nil {
			status[CronJobTypeYieldRefresh] = services.YieldRefreshService.GetStatus()
		}

		if err := utils.WriteJSON(w, http.StatusOK, status); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
		}
	}
}
