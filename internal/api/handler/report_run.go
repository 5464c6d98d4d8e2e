package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-indicators-api/infrastructure/repository"
	"github.com/vfg2006/store-indicators-api/pkg/apiErrors"
)

// GetLastReportRun retorna o registro da última execução do pipeline de relatórios
func GetLastReportRun(repo repository.ReportRunRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		run, err := repo.GetLastRun()
		if err != nil {
			logrus.Error("Erro ao buscar última execução de relatórios:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar última execução de relatórios", nil)
			return
		}

		if run == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Nenhuma execução de relatórios registrada", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(run); err != nil {
			logrus.Error("Erro ao enviar resposta da execução:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
