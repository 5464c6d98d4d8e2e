// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

// SaleRecord representa uma venda individual já validada pela camada de ingestão
type SaleRecord struct {
	SaleCode   string    `json:"sale_code"`
	StoreID    int       `json:"store_id"`
	Product    string    `json:"product"`
	Quantity   int       `json:"quantity"`
	UnitValue  float64   `json:"unit_value"`
	FinalValue float64   `json:"final_value"`
	Date       time.Time `json:"date"`
}
