package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/salon-manager-api/pkg/apiErrors"
	"github.com/vfg2006/salon-manager-api/pkg/log"
)

// Tipos de cron job que podem ser executadas manualmente
const (
	CronJobTypeProviderRanking = "provider-ranking"
	CronJobTypeMonthlyRevenue  = "monthly-revenue"
	CronJobTypeAll             = "all"
)

// CronJob é o contrato comum dos agendadores expostos na API
type CronJob interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron que podem ser executados manualmente
type CronJobServices struct {
	ProviderRankingService CronJob
	MonthlyRevenueService  CronJob
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		logger.WithField("type", cronType).Info("cron: execução manual solicitada")

		switch cronType {
		case CronJobTypeProviderRanking:
			if !trigger(w, services.ProviderRankingService, "Serviço do ranking de profissionais não disponível") {
				return
			}

		case CronJobTypeMonthlyRevenue:
			if !trigger(w, services.MonthlyRevenueService, "Serviço de fechamento mensal não disponível") {
				return
			}

		case CronJobTypeAll:
			if services.MonthlyRevenueService != nil {
				services.MonthlyRevenueService.TriggerManualSync()
			}
			if services.ProviderRankingService != nil {
				services.ProviderRankingService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: provider-ranking, monthly-revenue, all", nil)
			return
		}

		writeJSONStatus(w, logger, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	})
}

// trigger dispara a job, respondendo 409 quando ela já está rodando
func trigger(w http.ResponseWriter, job CronJob, unavailableMessage string) bool {
	if job == nil {
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, unavailableMessage, nil)
		return false
	}

	if running, _ := job.GetStatus()["sync_running"].(bool); running {
		apiErrors.WriteError(w, apiErrors.ErrSchedulerBusy, "Sincronização já em andamento", nil)
		return false
	}

	job.TriggerManualSync()
	return true
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}

		if services.ProviderRankingService != nil {
			status[CronJobTypeProviderRanking] = services.ProviderRankingService.GetStatus()
		}
		if services.MonthlyRevenueService != nil {
			status[CronJobTypeMonthlyRevenue] = services.MonthlyRevenueService.GetStatus()
		}

		writeJSON(w, log.ForContext(r.Context()), status)
	})
}
