package ingestion

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/store-indicators-api/internal/config"
	"github.com/xuri/excelize/v2"
)

func writeSalesFile(t *testing.T, rows [][]interface{}) string {
	t.Helper()

	file := excelize.NewFile()
	sheet := file.GetSheetName(0)

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, file.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "Vendas.xlsx")
	require.NoError(t, file.SaveAs(path))

	return path
}

func salesHeaderRow() []interface{} {
	return []interface{}{"Código Venda", "Data", "ID Loja", "Produto", "Quantidade", "Valor Unitário", "Valor Final"}
}

func TestLoadSales(t *testing.T) {
	path := writeSalesFile(t, [][]interface{}{
		salesHeaderRow(),
		{"V001", "2024-01-15", "1", "Óculos Solar", "2", "150,25", "300,50"},
		{"V002", "15/01/2024", "2", "Armação", "1", "450.00", "450.00"},
	})

	loader := NewSpreadsheetLoader(config.Ingestion{SalesFile: path})

	records, err := loader.LoadSales()

	assert.NoError(t, err)
	assert.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, "V001", first.SaleCode)
	assert.Equal(t, 1, first.StoreID)
	assert.Equal(t, "Óculos Solar", first.Product)
	assert.Equal(t, 2, first.Quantity)
	assert.Equal(t, 150.25, first.UnitValue)
	assert.Equal(t, 300.50, first.FinalValue)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), first.Date)

	// Data no formato brasileiro também é aceita
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), records[1].Date)
}

func TestLoadSalesSkipsEmptyRows(t *testing.T) {
	path := writeSalesFile(t, [][]interface{}{
		salesHeaderRow(),
		{"V001", "2024-01-15", "1", "Óculos Solar", "1", "100", "100"},
		{"", "", "", "", "", "", ""},
		{"V002", "2024-01-15", "2", "Armação", "1", "200", "200"},
	})

	loader := NewSpreadsheetLoader(config.Ingestion{SalesFile: path})

	records, err := loader.LoadSales()

	assert.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestLoadSalesErrors(t *testing.T) {
	tests := []struct {
		name        string
		rows        [][]interface{}
		expectedErr string
	}{
		{
			name: "Cabeçalho com coluna renomeada",
			rows: [][]interface{}{
				{"Código Venda", "Dia", "ID Loja", "Produto", "Quantidade", "Valor Unitário", "Valor Final"},
			},
			expectedErr: "coluna 2 da planilha de vendas",
		},
		{
			name: "Data inválida aborta a carga",
			rows: [][]interface{}{
				salesHeaderRow(),
				{"V001", "ontem", "1", "Óculos Solar", "1", "100", "100"},
			},
			expectedErr: "linha 2 da planilha de vendas malformada",
		},
		{
			name: "ID Loja não numérico",
			rows: [][]interface{}{
				salesHeaderRow(),
				{"V001", "2024-01-15", "loja um", "Óculos Solar", "1", "100", "100"},
			},
			expectedErr: "ID Loja inválido",
		},
		{
			name: "Quantidade negativa",
			rows: [][]interface{}{
				salesHeaderRow(),
				{"V001", "2024-01-15", "1", "Óculos Solar", "-1", "100", "100"},
			},
			expectedErr: "não negativos",
		},
		{
			name: "Produto vazio",
			rows: [][]interface{}{
				salesHeaderRow(),
				{"V001", "2024-01-15", "1", "", "1", "100", "100"},
			},
			expectedErr: "malformada",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSalesFile(t, tt.rows)

			loader := NewSpreadsheetLoader(config.Ingestion{SalesFile: path})

			records, err := loader.LoadSales()

			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedErr)
			assert.Nil(t, records)
		})
	}
}

func TestLoadSalesMissingFile(t *testing.T) {
	loader := NewSpreadsheetLoader(config.Ingestion{
		SalesFile: filepath.Join(t.TempDir(), "inexistente.xlsx"),
	})

	records, err := loader.LoadSales()

	assert.Error(t, err)
	assert.Nil(t, records)
}
