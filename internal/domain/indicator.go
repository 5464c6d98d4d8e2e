package domain

import "time"

// Metric identifica uma família de indicadores calculada pelo agregador
type Metric string

const (
	MetricRevenue       Metric = "revenue"
	MetricVariety       Metric = "variety"
	MetricAverageTicket Metric = "average_ticket"
)

// Metrics lista as famílias de indicadores na ordem de exibição dos relatórios
var Metrics = []Metric{MetricRevenue, MetricVariety, MetricAverageTicket}

// Period identifica a granularidade de um indicador
type Period string

const (
	PeriodDay  Period = "day"
	PeriodYear Period = "year"
)

// Periods lista as granularidades na ordem de exibição dos relatórios
var Periods = []Period{PeriodDay, PeriodYear}

// ReportingPeriod é o dia de referência resolvido a partir das vendas e o ano dele
type ReportingPeriod struct {
	Day  time.Time `json:"day"`
	Year int       `json:"year"`
}

// IndicatorValue é o valor de um indicador para uma loja. Defined = false
// representa "sem valor" (ex.: ticket médio com quantidade total zero) e
// nunca deve ser tratado como zero pelos consumidores.
type IndicatorValue struct {
	Value   float64 `json:"value"`
	Defined bool    `json:"defined"`
}

// DefinedValue cria um IndicatorValue com valor definido
func DefinedValue(v float64) IndicatorValue {
	return IndicatorValue{Value: v, Defined: true}
}

// UndefinedValue cria um IndicatorValue sem valor
func UndefinedValue() IndicatorValue {
	return IndicatorValue{}
}

// IndicatorSet agrupa os valores de todas as famílias de indicadores de um
// período, indexados por família e por loja
type IndicatorSet map[Metric]map[int]IndicatorValue

// Lookup busca o valor de um indicador para uma loja. O segundo retorno
// indica se a loja possui linha para a família; a política de "zerar" valores
// ausentes fica a cargo de quem chama.
func (s IndicatorSet) Lookup(metric Metric, storeID int) (IndicatorValue, bool) {
	byStore, ok := s[metric]
	if !ok {
		return IndicatorValue{}, false
	}

	value, ok := byStore[storeID]
	return value, ok
}

// StoreIDs retorna as lojas presentes em pelo menos uma família do conjunto
func (s IndicatorSet) StoreIDs() []int {
	seen := make(map[int]bool)
	ids := make([]int, 0)

	for _, byStore := range s {
		for storeID := range byStore {
			if !seen[storeID] {
				seen[storeID] = true
				ids = append(ids, storeID)
			}
		}
	}

	return ids
}

// AggregatedIndicators é a saída completa do agregador para uma execução
type AggregatedIndicators struct {
	Reference ReportingPeriod `json:"reference"`
	Daily     IndicatorSet    `json:"daily"`
	Yearly    IndicatorSet    `json:"yearly"`
}

// ByPeriod retorna o conjunto de indicadores da granularidade informada
func (a *AggregatedIndicators) ByPeriod(period Period) IndicatorSet {
	if period == PeriodYear {
		return a.Yearly
	}
	return a.Daily
}
