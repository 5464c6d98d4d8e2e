// Package resolving determina a data de referência dos relatórios a partir
// das vendas carregadas
package resolving

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-indicators-api/internal/domain"
)

// ErrNoConsistentReportingDate indica que nenhuma data reúne vendas de todas
// as lojas presentes na base. A execução deve ser abortada: assumir a data
// mais recente penalizaria lojas com lacunas de lançamento.
var ErrNoConsistentReportingDate = errors.New("nenhuma data possui vendas de todas as lojas da base")

// ErrEmptyDataset indica que a base de vendas chegou vazia à resolução
var ErrEmptyDataset = errors.New("base de vendas vazia")

type DateResolver interface {
	Resolve(records []domain.SaleRecord) (domain.ReportingPeriod, error)
}

type Service struct{}

func NewService() DateResolver {
	return &Service{}
}

// Resolve seleciona a data de referência: a data mais recente em que todas as
// lojas com pelo menos uma venda na base registraram alguma venda. As vendas
// chegam com lançamentos assíncronos por loja, então a data mais recente com
// "qualquer" venda poderia comparar um dia em que parte das lojas ainda não
// lançou movimento.
func (s *Service) Resolve(records []domain.SaleRecord) (domain.ReportingPeriod, error) {
	if len(records) == 0 {
		return domain.ReportingPeriod{}, ErrEmptyDataset
	}

	allStores := make(map[int]bool)
	storesByDate := make(map[time.Time]map[int]bool)

	for _, record := range records {
		day := truncateToDay(record.Date)
		allStores[record.StoreID] = true

		if storesByDate[day] == nil {
			storesByDate[day] = make(map[int]bool)
		}
		storesByDate[day][record.StoreID] = true
	}

	var (
		reportingDate time.Time
		found         bool
	)

	for day, stores := range storesByDate {
		if len(stores) != len(allStores) {
			continue
		}

		if !found || day.After(reportingDate) {
			reportingDate = day
			found = true
		}
	}

	if !found {
		logrus.WithFields(logrus.Fields{
			"total_stores": len(allStores),
			"total_dates":  len(storesByDate),
		}).Error("Nenhuma data com participação unânime das lojas")
		return domain.ReportingPeriod{}, ErrNoConsistentReportingDate
	}

	logrus.WithFields(logrus.Fields{
		"reference_date": reportingDate.Format(time.DateOnly),
		"total_stores":   len(allStores),
	}).Info("Data de referência dos relatórios resolvida")

	return domain.ReportingPeriod{
		Day:  reportingDate,
		Year: reportingDate.Year(),
	}, nil
}

// truncateToDay normaliza o timestamp da venda para meia-noite
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
