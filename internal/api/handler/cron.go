package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-sales-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeCatalog = "catalog"
)

// CatalogRefresher é a parte do agendador do catálogo usada pelos handlers
type CatalogRefresher interface {
	TriggerManualRefresh() bool
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	CatalogRefreshService CatalogRefresher
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices, cronType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.WithField("type", cronType).Info("INIT - RunCronJob")

		switch cronType {
		case CronJobTypeCatalog:
			if services.CatalogRefreshService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de atualização do catálogo não disponível", nil)
				return
			}

			if !services.CatalogRefreshService.TriggerManualRefresh() {
				writeJSON(w, http.StatusAccepted, map[string]any{
					"success": true,
					"message": "Cron job já está em execução",
					"type":    cronType,
				})
				return
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: catalog", nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{}
		if services.CatalogRefreshService != nil {
			status[CronJobTypeCatalog] = services.CatalogRefreshService.GetStatus()
		}

		writeJSON(w, http.StatusOK, envelope{Success: true, Data: status})
	}
}
