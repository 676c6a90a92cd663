package handler

import (
	"net/http"

	"github.com/vfg2006/salon-manager-api/internal/usecases/ranking"
	"github.com/vfg2006/salon-manager-api/pkg/apiErrors"
	"github.com/vfg2006/salon-manager-api/pkg/log"
)

// GetProviderRanking retorna o ranking de profissionais por faturamento do mês (mm-yyyy)
func GetProviderRanking(service ranking.RankingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		ranking, err := service.GetProviderRanking(r.URL.Query().Get("month"))
		if err != nil {
			logger.WithError(err).Error("ranking: erro ao buscar ranking de profissionais")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar ranking de profissionais", nil)
			return
		}

		if ranking == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Nenhum ranking encontrado", nil)
			return
		}

		writeJSON(w, logger, ranking)
	})
}
