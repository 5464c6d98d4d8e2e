package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/store-indicators-api/internal/config"
	"github.com/xuri/excelize/v2"
)

func writeStoresFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "Lojas.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func writeContactsFile(t *testing.T, rows [][]interface{}) string {
	t.Helper()

	file := excelize.NewFile()
	sheet := file.GetSheetName(0)

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, file.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "Emails.xlsx")
	require.NoError(t, file.SaveAs(path))

	return path
}

func TestLoadRoster(t *testing.T) {
	storesPath := writeStoresFile(t, "ID Loja;Loja\n1;Loja Centro\n2;Loja Shopping\n")
	contactsPath := writeContactsFile(t, [][]interface{}{
		{"Loja", "Gerente", "E-mail"},
		{"Loja Centro", "Maria", "maria@lojas.com.br"},
		{"Loja Shopping", "João", "joao@lojas.com.br"},
		{"Diretoria", "Carlos", "carlos@lojas.com.br"},
	})

	loader := NewRosterFileLoader(config.Ingestion{
		StoresFile:   storesPath,
		ContactsFile: contactsPath,
	})

	roster, err := loader.LoadRoster()

	assert.NoError(t, err)
	assert.Len(t, roster.Stores, 2)
	assert.Len(t, roster.Recipients, 3)

	name, ok := roster.StoreName(1)
	assert.True(t, ok)
	assert.Equal(t, "Loja Centro", name)

	recipient := roster.RecipientForStore(2)
	require.NotNil(t, recipient)
	assert.Equal(t, "João", recipient.Name)
	assert.Equal(t, "joao@lojas.com.br", recipient.Email)

	// O contato da diretoria não fica associado a nenhuma loja
	board := roster.BoardRecipients()
	require.Len(t, board, 1)
	assert.Equal(t, "Carlos", board[0].Name)
	assert.Nil(t, board[0].StoreID)
}

func TestLoadRosterUnknownStoreInContacts(t *testing.T) {
	storesPath := writeStoresFile(t, "ID Loja;Loja\n1;Loja Centro\n")
	contactsPath := writeContactsFile(t, [][]interface{}{
		{"Loja", "Gerente", "E-mail"},
		{"Loja Inexistente", "Maria", "maria@lojas.com.br"},
	})

	loader := NewRosterFileLoader(config.Ingestion{
		StoresFile:   storesPath,
		ContactsFile: contactsPath,
	})

	roster, err := loader.LoadRoster()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "não existe no cadastro")
	assert.Nil(t, roster)
}

func TestLoadRosterStoresErrors(t *testing.T) {
	contactsPath := writeContactsFile(t, [][]interface{}{
		{"Loja", "Gerente", "E-mail"},
		{"Diretoria", "Carlos", "carlos@lojas.com.br"},
	})

	tests := []struct {
		name        string
		content     string
		expectedErr string
	}{
		{
			name:        "Somente cabeçalho",
			content:     "ID Loja;Loja\n",
			expectedErr: "vazio",
		},
		{
			name:        "ID não numérico",
			content:     "ID Loja;Loja\nabc;Loja Centro\n",
			expectedErr: "ID Loja inválido",
		},
		{
			name:        "Nome vazio",
			content:     "ID Loja;Loja\n1; \n",
			expectedErr: "nome vazio",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := NewRosterFileLoader(config.Ingestion{
				StoresFile:   writeStoresFile(t, tt.content),
				ContactsFile: contactsPath,
			})

			roster, err := loader.LoadRoster()

			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedErr)
			assert.Nil(t, roster)
		})
	}
}

func TestLoadRosterMissingStoresFile(t *testing.T) {
	loader := NewRosterFileLoader(config.Ingestion{
		StoresFile: filepath.Join(t.TempDir(), "inexistente.csv"),
	})

	roster, err := loader.LoadRoster()

	assert.Error(t, err)
	assert.Nil(t, roster)
}
