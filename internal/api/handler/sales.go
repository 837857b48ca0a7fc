package handler

import (
	"net/http"

	"github.com/vfg2006/retail-sales-api/internal/usecases/cataloging"
	"github.com/vfg2006/retail-sales-api/internal/usecases/listing"
	"github.com/vfg2006/retail-sales-api/internal/usecases/summarizing"
	"github.com/vfg2006/retail-sales-api/pkg/apiErrors"
	"github.com/vfg2006/retail-sales-api/pkg/log"
)

// ListSales retorna a página de vendas filtrada, ordenada e paginada.
// Parâmetros inválidos nunca geram erro, apenas caem no padrão.
func ListSales(service listing.Lister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		req := listing.ParseQuery(r.URL.Query())

		response, err := service.ListSales(ctx, req)
		if err != nil {
			log.ForContext(ctx).WithError(err).Error("Erro ao listar vendas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar vendas", err)
			return
		}

		writeJSON(w, http.StatusOK, response)
	}
}

// GetFilterOptions retorna os valores distintos disponíveis para cada filtro de múltipla escolha
func GetFilterOptions(service cataloging.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		catalog, err := service.GetFilterOptions(ctx)
		if err != nil {
			log.ForContext(ctx).WithError(err).Error("Erro ao buscar opções de filtro")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar opções de filtro", err)
			return
		}

		writeJSON(w, http.StatusOK, envelope{Success: true, Data: catalog})
	}
}

// GetStatistics retorna total de transações, receita e ticket médio de todo o conjunto
func GetStatistics(service summarizing.Summarizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		stats, err := service.GetStatistics(ctx)
		if err != nil {
			log.ForContext(ctx).WithError(err).Error("Erro ao calcular estatísticas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular estatísticas", err)
			return
		}

		writeJSON(w, http.StatusOK, envelope{Success: true, Data: stats})
	}
}
