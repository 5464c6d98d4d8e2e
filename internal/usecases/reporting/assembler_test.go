package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/store-indicators-api/internal/config"
	"github.com/vfg2006/store-indicators-api/internal/domain"
	"github.com/vfg2006/store-indicators-api/internal/usecases/evaluating"
)

func intPtr(v int) *int {
	return &v
}

func testEvaluator() evaluating.GoalEvaluator {
	return evaluating.NewService(config.Goals{
		RevenueDay:  1000,
		RevenueYear: 1650000,
		VarietyDay:  4,
		VarietyYear: 120,
		TicketDay:   500,
		TicketYear:  500,
	})
}

func testAggregated() *domain.AggregatedIndicators {
	day15 := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	return &domain.AggregatedIndicators{
		Reference: domain.ReportingPeriod{Day: day15, Year: 2024},
		Daily: domain.IndicatorSet{
			domain.MetricRevenue: map[int]domain.IndicatorValue{
				1: domain.DefinedValue(1200),
				2: domain.DefinedValue(800),
			},
			domain.MetricVariety: map[int]domain.IndicatorValue{
				1: domain.DefinedValue(5),
				2: domain.DefinedValue(3),
			},
			domain.MetricAverageTicket: map[int]domain.IndicatorValue{
				1: domain.DefinedValue(600),
				2: domain.UndefinedValue(),
			},
		},
		Yearly: domain.IndicatorSet{
			domain.MetricRevenue: map[int]domain.IndicatorValue{
				1: domain.DefinedValue(1700000),
				2: domain.DefinedValue(900000),
			},
			domain.MetricVariety: map[int]domain.IndicatorValue{
				1: domain.DefinedValue(130),
				2: domain.DefinedValue(80),
			},
			domain.MetricAverageTicket: map[int]domain.IndicatorValue{
				1: domain.DefinedValue(550),
				2: domain.DefinedValue(450),
			},
		},
	}
}

func TestBuildSnapshots(t *testing.T) {
	roster := &domain.Roster{
		Stores: []domain.Store{
			{ID: 1, Name: "Loja Centro"},
			{ID: 2, Name: "Loja Shopping"},
		},
		Recipients: []domain.Recipient{
			{StoreID: intPtr(1), Name: "Maria", Email: "maria@lojas.com.br"},
		},
	}

	snapshots := BuildSnapshots(testAggregated(), roster, testEvaluator())

	assert.Len(t, snapshots, 2)

	first := snapshots[0]
	assert.Equal(t, 1, first.StoreID)
	assert.Equal(t, "Loja Centro", first.StoreName)
	assert.Equal(t, "Maria", first.Manager)
	assert.Equal(t, "maria@lojas.com.br", first.Email)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), first.ReferenceDate)
	assert.Equal(t, 2024, first.ReferenceYear)

	dailyRevenue := first.Entry(domain.MetricRevenue, domain.PeriodDay)
	assert.Equal(t, 1200.0, dailyRevenue.Value)
	assert.Equal(t, 1000.0, dailyRevenue.Goal)
	assert.True(t, dailyRevenue.Met)

	yearlyRevenue := first.Entry(domain.MetricRevenue, domain.PeriodYear)
	assert.Equal(t, 1650000.0, yearlyRevenue.Goal)
	assert.True(t, yearlyRevenue.Met)

	second := snapshots[1]
	assert.Equal(t, "Loja Shopping", second.StoreName)
	assert.Empty(t, second.Manager)
	assert.Empty(t, second.Email)

	assert.False(t, second.Entry(domain.MetricRevenue, domain.PeriodDay).Met)
	assert.False(t, second.Entry(domain.MetricVariety, domain.PeriodDay).Met)

	// Ticket médio sem valor propaga Defined = false e meta não atingida
	secondTicket := second.Entry(domain.MetricAverageTicket, domain.PeriodDay)
	assert.False(t, secondTicket.Defined)
	assert.False(t, secondTicket.Met)
}

func TestBuildSnapshotsStoreWithoutSales(t *testing.T) {
	roster := &domain.Roster{
		Stores: []domain.Store{
			{ID: 1, Name: "Loja Centro"},
			{ID: 9, Name: "Loja Nova"},
		},
	}

	snapshots := BuildSnapshots(testAggregated(), roster, testEvaluator())

	assert.Len(t, snapshots, 2)

	// Loja do cadastro sem nenhuma venda recebe snapshot com valores zerados
	noSales := snapshots[1]
	assert.Equal(t, 9, noSales.StoreID)

	for _, metric := range domain.Metrics {
		for _, period := range domain.Periods {
			entry := noSales.Entry(metric, period)
			assert.Equal(t, 0.0, entry.Value)
			assert.True(t, entry.Defined)
			assert.False(t, entry.Met)
			assert.Greater(t, entry.Goal, 0.0)
		}
	}
}

func TestBuildSnapshotsStoreMissingFromRoster(t *testing.T) {
	roster := &domain.Roster{
		Stores: []domain.Store{
			{ID: 1, Name: "Loja Centro"},
		},
	}

	// A loja 2 tem vendas mas não está no cadastro: nenhum snapshot para ela
	snapshots := BuildSnapshots(testAggregated(), roster, testEvaluator())

	assert.Len(t, snapshots, 1)
	assert.Equal(t, 1, snapshots[0].StoreID)
}
