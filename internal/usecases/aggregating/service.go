// Package aggregating calcula os indicadores por loja (faturamento,
// variedade de produtos e ticket médio) nas granularidades dia e ano
package aggregating

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-indicators-api/internal/domain"
	"github.com/vfg2006/store-indicators-api/pkg/utils"
)

type IndicatorAggregator interface {
	Aggregate(records []domain.SaleRecord, reference domain.ReportingPeriod) *domain.AggregatedIndicators
}

type Service struct{}

func NewService() IndicatorAggregator {
	return &Service{}
}

// Aggregate filtra as vendas pelo dia e pelo ano de referência antes de
// agregar. Filtrar primeiro limita o conjunto de trabalho e evita que somas
// anuais carreguem lançamentos de anos anteriores presentes na base.
func (s *Service) Aggregate(records []domain.SaleRecord, reference domain.ReportingPeriod) *domain.AggregatedIndicators {
	daily := aggregateSet(FilterByDay(records, reference.Day))
	yearly := aggregateSet(FilterByYear(records, reference.Year))

	logrus.WithFields(logrus.Fields{
		"reference_date": reference.Day.Format(time.DateOnly),
		"daily_stores":   len(daily[domain.MetricRevenue]),
		"yearly_stores":  len(yearly[domain.MetricRevenue]),
	}).Info("Indicadores agregados por loja")

	return &domain.AggregatedIndicators{
		Reference: reference,
		Daily:     daily,
		Yearly:    yearly,
	}
}

// FilterByDay retorna as vendas registradas no dia informado
func FilterByDay(records []domain.SaleRecord, day time.Time) []domain.SaleRecord {
	filtered := make([]domain.SaleRecord, 0, len(records))
	for _, record := range records {
		if sameDay(record.Date, day) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

// FilterByYear retorna as vendas registradas no ano informado
func FilterByYear(records []domain.SaleRecord, year int) []domain.SaleRecord {
	filtered := make([]domain.SaleRecord, 0, len(records))
	for _, record := range records {
		if record.Date.Year() == year {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

// storeAccumulator acompanha as somas por loja para o cálculo das três famílias
type storeAccumulator struct {
	revenue  float64
	quantity int
	products map[string]bool
}

// aggregateSet agrega um conjunto de vendas já filtrado por período
func aggregateSet(records []domain.SaleRecord) domain.IndicatorSet {
	accumulators := make(map[int]*storeAccumulator)

	for _, record := range records {
		accumulator, exists := accumulators[record.StoreID]
		if !exists {
			accumulator = &storeAccumulator{products: make(map[string]bool)}
			accumulators[record.StoreID] = accumulator
		}

		accumulator.revenue += record.FinalValue
		accumulator.quantity += record.Quantity
		accumulator.products[record.Product] = true
	}

	revenue := make(map[int]domain.IndicatorValue, len(accumulators))
	variety := make(map[int]domain.IndicatorValue, len(accumulators))
	averageTicket := make(map[int]domain.IndicatorValue, len(accumulators))

	for storeID, accumulator := range accumulators {
		revenue[storeID] = domain.DefinedValue(utils.RoundWithTwoDecimalPlace(accumulator.revenue))
		variety[storeID] = domain.DefinedValue(float64(len(accumulator.products)))

		// Ticket médio ponderado: soma dos valores dividida pela soma das
		// quantidades. Quantidade total zero significa "sem valor", nunca
		// uma divisão por zero.
		if accumulator.quantity > 0 {
			averageTicket[storeID] = domain.DefinedValue(
				utils.RoundWithTwoDecimalPlace(accumulator.revenue / float64(accumulator.quantity)),
			)
		} else {
			averageTicket[storeID] = domain.UndefinedValue()
		}
	}

	return domain.IndicatorSet{
		domain.MetricRevenue:       revenue,
		domain.MetricVariety:       variety,
		domain.MetricAverageTicket: averageTicket,
	}
}

func sameDay(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year() && date1.Month() == date2.Month() && date1.Day() == date2.Day()
}
