package ranking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/store-indicators-api/internal/domain"
)

func testRoster() *domain.Roster {
	return &domain.Roster{
		Stores: []domain.Store{
			{ID: 1, Name: "Loja Centro"},
			{ID: 2, Name: "Loja Shopping"},
			{ID: 3, Name: "Loja Norte"},
		},
	}
}

func indicatorSet(revenue map[int]domain.IndicatorValue) domain.IndicatorSet {
	return domain.IndicatorSet{
		domain.MetricRevenue:       revenue,
		domain.MetricVariety:       map[int]domain.IndicatorValue{},
		domain.MetricAverageTicket: map[int]domain.IndicatorValue{},
	}
}

func TestBuild(t *testing.T) {
	day15 := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	aggregated := &domain.AggregatedIndicators{
		Reference: domain.ReportingPeriod{Day: day15, Year: 2024},
		Daily: indicatorSet(map[int]domain.IndicatorValue{
			1: domain.DefinedValue(800),
			2: domain.DefinedValue(1200),
			3: domain.DefinedValue(950),
		}),
		Yearly: indicatorSet(map[int]domain.IndicatorValue{
			1: domain.DefinedValue(500000),
			2: domain.DefinedValue(700000),
		}),
	}

	builder := NewBuilder()
	tables := builder.Build(aggregated, testRoster())

	// Uma tabela por família e granularidade
	assert.Len(t, tables, 6)

	daily := findTable(t, tables, domain.MetricRevenue, domain.PeriodDay)
	assert.Equal(t, day15, daily.ReferenceDate)
	assert.Len(t, daily.Rows, 3)

	// Ordem decrescente por valor, posições sequenciais a partir de 1
	assert.Equal(t, domain.RankingRow{Position: 1, StoreID: 2, StoreName: "Loja Shopping", Value: 1200}, daily.Rows[0])
	assert.Equal(t, domain.RankingRow{Position: 2, StoreID: 3, StoreName: "Loja Norte", Value: 950}, daily.Rows[1])
	assert.Equal(t, domain.RankingRow{Position: 3, StoreID: 1, StoreName: "Loja Centro", Value: 800}, daily.Rows[2])

	yearly := findTable(t, tables, domain.MetricRevenue, domain.PeriodYear)
	assert.Len(t, yearly.Rows, 2)
	assert.Equal(t, 2, yearly.Rows[0].StoreID)
}

func TestBuildTieBreak(t *testing.T) {
	day15 := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	aggregated := &domain.AggregatedIndicators{
		Reference: domain.ReportingPeriod{Day: day15, Year: 2024},
		Daily: indicatorSet(map[int]domain.IndicatorValue{
			3: domain.DefinedValue(1000),
			1: domain.DefinedValue(1000),
			2: domain.DefinedValue(1000),
		}),
		Yearly: indicatorSet(map[int]domain.IndicatorValue{}),
	}

	builder := NewBuilder()
	tables := builder.Build(aggregated, testRoster())

	daily := findTable(t, tables, domain.MetricRevenue, domain.PeriodDay)

	// Empate por valor resolve pelo ID crescente da loja
	assert.Equal(t, []int{1, 2, 3}, []int{daily.Rows[0].StoreID, daily.Rows[1].StoreID, daily.Rows[2].StoreID})
	assert.Equal(t, []int{1, 2, 3}, []int{daily.Rows[0].Position, daily.Rows[1].Position, daily.Rows[2].Position})
}

func TestBuildSkipsUndefinedValues(t *testing.T) {
	day15 := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	aggregated := &domain.AggregatedIndicators{
		Reference: domain.ReportingPeriod{Day: day15, Year: 2024},
		Daily: domain.IndicatorSet{
			domain.MetricRevenue: map[int]domain.IndicatorValue{},
			domain.MetricVariety: map[int]domain.IndicatorValue{},
			domain.MetricAverageTicket: map[int]domain.IndicatorValue{
				1: domain.UndefinedValue(),
				2: domain.DefinedValue(150.50),
			},
		},
		Yearly: indicatorSet(map[int]domain.IndicatorValue{}),
	}

	builder := NewBuilder()
	tables := builder.Build(aggregated, testRoster())

	ticket := findTable(t, tables, domain.MetricAverageTicket, domain.PeriodDay)

	// Loja sem valor fica fora do ranking, sem buraco nas posições
	assert.Len(t, ticket.Rows, 1)
	assert.Equal(t, 1, ticket.Rows[0].Position)
	assert.Equal(t, 2, ticket.Rows[0].StoreID)
}

func TestBuildStoreMissingFromRoster(t *testing.T) {
	day15 := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	aggregated := &domain.AggregatedIndicators{
		Reference: domain.ReportingPeriod{Day: day15, Year: 2024},
		Daily: indicatorSet(map[int]domain.IndicatorValue{
			99: domain.DefinedValue(2000),
			1:  domain.DefinedValue(800),
		}),
		Yearly: indicatorSet(map[int]domain.IndicatorValue{}),
	}

	builder := NewBuilder()
	tables := builder.Build(aggregated, testRoster())

	daily := findTable(t, tables, domain.MetricRevenue, domain.PeriodDay)

	// Loja fora do cadastro permanece no ranking com nome derivado do ID
	assert.Len(t, daily.Rows, 2)
	assert.Equal(t, "Loja 99", daily.Rows[0].StoreName)
	assert.Equal(t, "Loja Centro", daily.Rows[1].StoreName)
}

func findTable(t *testing.T, tables []*domain.RankingTable, metric domain.Metric, period domain.Period) *domain.RankingTable {
	t.Helper()

	for _, table := range tables {
		if table.Metric == metric && table.Period == period {
			return table
		}
	}

	t.Fatalf("tabela não encontrada: %s/%s", metric, period)
	return nil
}
