package evaluating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/store-indicators-api/internal/config"
	"github.com/vfg2006/store-indicators-api/internal/domain"
)

func testGoals() config.Goals {
	return config.Goals{
		RevenueDay:  1000,
		RevenueYear: 1650000,
		VarietyDay:  4,
		VarietyYear: 120,
		TicketDay:   500,
		TicketYear:  500,
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		metric   domain.Metric
		period   domain.Period
		value    domain.IndicatorValue
		expected domain.GoalOutcome
	}{
		{
			name:   "Faturamento do dia acima da meta",
			metric: domain.MetricRevenue,
			period: domain.PeriodDay,
			value:  domain.DefinedValue(1200),
			expected: domain.GoalOutcome{
				Value:     domain.DefinedValue(1200),
				Threshold: 1000,
				Met:       true,
			},
		},
		{
			name:   "Igualdade com a meta conta como atingida",
			metric: domain.MetricRevenue,
			period: domain.PeriodDay,
			value:  domain.DefinedValue(1000),
			expected: domain.GoalOutcome{
				Value:     domain.DefinedValue(1000),
				Threshold: 1000,
				Met:       true,
			},
		},
		{
			name:   "Faturamento do dia abaixo da meta",
			metric: domain.MetricRevenue,
			period: domain.PeriodDay,
			value:  domain.DefinedValue(999.99),
			expected: domain.GoalOutcome{
				Value:     domain.DefinedValue(999.99),
				Threshold: 1000,
				Met:       false,
			},
		},
		{
			name:   "Meta anual usa o limiar anual",
			metric: domain.MetricRevenue,
			period: domain.PeriodYear,
			value:  domain.DefinedValue(1700000),
			expected: domain.GoalOutcome{
				Value:     domain.DefinedValue(1700000),
				Threshold: 1650000,
				Met:       true,
			},
		},
		{
			name:   "Ticket médio sem valor nunca atinge a meta",
			metric: domain.MetricAverageTicket,
			period: domain.PeriodDay,
			value:  domain.UndefinedValue(),
			expected: domain.GoalOutcome{
				Value:     domain.UndefinedValue(),
				Threshold: 500,
				Met:       false,
			},
		},
		{
			name:   "Variedade do dia na meta",
			metric: domain.MetricVariety,
			period: domain.PeriodDay,
			value:  domain.DefinedValue(4),
			expected: domain.GoalOutcome{
				Value:     domain.DefinedValue(4),
				Threshold: 4,
				Met:       true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewService(testGoals())

			result := service.Evaluate(tt.metric, tt.period, tt.value)

			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestThreshold(t *testing.T) {
	service := NewService(testGoals())

	assert.Equal(t, 1000.0, service.Threshold(domain.MetricRevenue, domain.PeriodDay))
	assert.Equal(t, 1650000.0, service.Threshold(domain.MetricRevenue, domain.PeriodYear))
	assert.Equal(t, 4.0, service.Threshold(domain.MetricVariety, domain.PeriodDay))
	assert.Equal(t, 120.0, service.Threshold(domain.MetricVariety, domain.PeriodYear))
	assert.Equal(t, 500.0, service.Threshold(domain.MetricAverageTicket, domain.PeriodDay))
	assert.Equal(t, 500.0, service.Threshold(domain.MetricAverageTicket, domain.PeriodYear))
}
