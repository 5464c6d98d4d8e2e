package domain

import "time"

// RankingRow é uma posição do ranking de um indicador
type RankingRow struct {
	Position  int     `json:"position"`
	StoreID   int     `json:"store_id"`
	StoreName string  `json:"store_name"`
	Value     float64 `json:"value"`
}

// RankingTable é o ranking de todas as lojas com valor definido para uma
// família de indicadores em uma granularidade. Posições começam em 1, sem
// lacunas, valores não crescentes.
type RankingTable struct {
	Metric        Metric       `json:"metric"`
	Period        Period       `json:"period"`
	ReferenceDate time.Time    `json:"reference_date"`
	Rows          []RankingRow `json:"rows"`
}

// RankingTablesResponse é a resposta da API com os rankings mais recentes
type RankingTablesResponse struct {
	Tables     []*RankingTable `json:"tables"`
	LastUpdate time.Time       `json:"last_update"`
}
