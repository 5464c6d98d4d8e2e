// Package evaluating compara indicadores agregados com as metas configuradas
package evaluating

import (
	"github.com/vfg2006/store-indicators-api/internal/config"
	"github.com/vfg2006/store-indicators-api/internal/domain"
)

type GoalEvaluator interface {
	Evaluate(metric domain.Metric, period domain.Period, value domain.IndicatorValue) domain.GoalOutcome
	Threshold(metric domain.Metric, period domain.Period) float64
}

// Service avalia indicadores contra as metas da configuração. Função pura das
// entradas: as metas são fixadas na construção e não mudam durante a execução.
type Service struct {
	goals config.Goals
}

func NewService(goals config.Goals) GoalEvaluator {
	return &Service{goals: goals}
}

// Evaluate retorna o cenário do indicador: atingiu a meta quando o valor é
// definido e maior ou igual ao limiar (igualdade conta como sucesso).
// Valores indefinidos nunca atingem a meta.
func (s *Service) Evaluate(metric domain.Metric, period domain.Period, value domain.IndicatorValue) domain.GoalOutcome {
	threshold := s.goals.Threshold(metric, period)

	return domain.GoalOutcome{
		Value:     value,
		Threshold: threshold,
		Met:       value.Defined && value.Value >= threshold,
	}
}

// Threshold expõe a meta configurada para a família e granularidade informadas
func (s *Service) Threshold(metric domain.Metric, period domain.Period) float64 {
	return s.goals.Threshold(metric, period)
}
