package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-indicators-api/internal/usecases/ranking"
	"github.com/vfg2006/store-indicators-api/pkg/apiErrors"
)

// GetLatestRankings retorna os rankings de lojas da última execução
func GetLatestRankings(service ranking.RankingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Buscar os rankings mais recentes
		rankings, err := service.GetLatestRankings()
		if err != nil {
			logrus.Error("Erro ao buscar rankings das lojas:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar rankings das lojas", nil)
			return
		}

		if rankings == nil || len(rankings.Tables) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Nenhum ranking encontrado", nil)
			return
		}

		// Enviar resposta
		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(rankings)
		if err != nil {
			logrus.Error("Erro ao enviar resposta dos rankings:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
