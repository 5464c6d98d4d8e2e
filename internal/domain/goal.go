package domain

// GoalOutcome é o resultado da avaliação de um indicador contra a meta
// configurada. Imutável depois de criado.
type GoalOutcome struct {
	Value     IndicatorValue `json:"value"`
	Threshold float64        `json:"threshold"`
	Met       bool           `json:"met"`
}
