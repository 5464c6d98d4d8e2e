package domain

import "time"

// SnapshotEntry é o valor de um indicador dentro do snapshot de uma loja,
// acompanhado da meta e do resultado da avaliação
type SnapshotEntry struct {
	Metric  Metric  `json:"metric"`
	Value   float64 `json:"value"`
	Defined bool    `json:"defined"`
	Goal    float64 `json:"goal"`
	Met     bool    `json:"met"`
}

// StoreSnapshot é o conjunto de indicadores de uma loja para uma execução:
// três famílias em duas granularidades, cada uma com meta e cenário
type StoreSnapshot struct {
	StoreID       int                      `json:"store_id"`
	StoreName     string                   `json:"store_name"`
	Manager       string                   `json:"manager"`
	Email         string                   `json:"email,omitempty"`
	ReferenceDate time.Time                `json:"reference_date"`
	ReferenceYear int                      `json:"reference_year"`
	Daily         map[Metric]SnapshotEntry `json:"daily"`
	Yearly        map[Metric]SnapshotEntry `json:"yearly"`
}

// Entry retorna a entrada do snapshot para a família e granularidade informadas
func (s *StoreSnapshot) Entry(metric Metric, period Period) SnapshotEntry {
	if period == PeriodYear {
		return s.Yearly[metric]
	}
	return s.Daily[metric]
}
