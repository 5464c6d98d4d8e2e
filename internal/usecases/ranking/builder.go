// Package ranking monta os rankings comparativos das lojas por indicador
package ranking

import (
	"sort"

	"github.com/vfg2006/store-indicators-api/internal/domain"
)

type RankingBuilder interface {
	Build(aggregated *domain.AggregatedIndicators, roster *domain.Roster) []*domain.RankingTable
}

type Builder struct{}

func NewBuilder() RankingBuilder {
	return &Builder{}
}

// Build produz uma tabela de ranking por família e granularidade. Entram
// apenas lojas com valor definido no período: o ranking responde "como as
// lojas ativas se compararam"; a ausência de movimento já aparece como meta
// não atingida no snapshot da loja.
func (b *Builder) Build(aggregated *domain.AggregatedIndicators, roster *domain.Roster) []*domain.RankingTable {
	tables := make([]*domain.RankingTable, 0, len(domain.Metrics)*len(domain.Periods))

	for _, period := range domain.Periods {
		indicators := aggregated.ByPeriod(period)

		for _, metric := range domain.Metrics {
			tables = append(tables, b.buildTable(metric, period, aggregated, indicators[metric], roster))
		}
	}

	return tables
}

func (b *Builder) buildTable(
	metric domain.Metric,
	period domain.Period,
	aggregated *domain.AggregatedIndicators,
	values map[int]domain.IndicatorValue,
	roster *domain.Roster,
) *domain.RankingTable {
	rows := make([]domain.RankingRow, 0, len(values))

	for storeID, value := range values {
		if !value.Defined {
			continue
		}

		rows = append(rows, domain.RankingRow{
			StoreID:   storeID,
			StoreName: roster.DisplayName(storeID),
			Value:     value.Value,
		})
	}

	// Valor decrescente; empate decidido pelo ID da loja crescente para que
	// execuções equivalentes produzam sempre o mesmo ranking
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Value != rows[j].Value {
			return rows[i].Value > rows[j].Value
		}
		return rows[i].StoreID < rows[j].StoreID
	})

	for i := range rows {
		rows[i].Position = i + 1
	}

	return &domain.RankingTable{
		Metric:        metric,
		Period:        period,
		ReferenceDate: aggregated.Reference.Day,
		Rows:          rows,
	}
}
