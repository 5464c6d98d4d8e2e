// Package ingestion carrega as planilhas de vendas e o cadastro de lojas e
// valida o formato antes de entregar os dados ao motor de indicadores
package ingestion

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-indicators-api/internal/config"
	"github.com/vfg2006/store-indicators-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

// Colunas esperadas na planilha de vendas, na ordem do arquivo
var salesHeader = []string{"Código Venda", "Data", "ID Loja", "Produto", "Quantidade", "Valor Unitário", "Valor Final"}

// Formatos de data aceitos nas células da planilha
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"01-02-06",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// SpreadsheetLoader carrega a base de vendas de uma planilha Excel
type SpreadsheetLoader struct {
	cfg config.Ingestion
}

func NewSpreadsheetLoader(cfg config.Ingestion) *SpreadsheetLoader {
	return &SpreadsheetLoader{cfg: cfg}
}

// LoadSales lê a planilha de vendas e converte cada linha em um SaleRecord.
// Linha malformada aborta a carga: o motor não processa base parcial ou
// ambígua.
func (l *SpreadsheetLoader) LoadSales() ([]domain.SaleRecord, error) {
	file, err := excelize.OpenFile(l.cfg.SalesFile)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir planilha de vendas %s", l.cfg.SalesFile)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.Errorf("planilha de vendas %s não possui abas", l.cfg.SalesFile)
	}

	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler linhas da planilha de vendas")
	}

	if len(rows) == 0 {
		return nil, errors.Errorf("planilha de vendas %s está vazia", l.cfg.SalesFile)
	}

	if err := validateSalesHeader(rows[0]); err != nil {
		return nil, err
	}

	records := make([]domain.SaleRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if isEmptyRow(row) {
			continue
		}

		record, err := parseSalesRow(row)
		if err != nil {
			return nil, errors.Wrapf(err, "linha %d da planilha de vendas malformada", i+2)
		}

		records = append(records, record)
	}

	logrus.WithFields(logrus.Fields{
		"file":    l.cfg.SalesFile,
		"records": len(records),
	}).Info("Base de vendas carregada")

	return records, nil
}

func validateSalesHeader(header []string) error {
	if len(header) < len(salesHeader) {
		return errors.Errorf("cabeçalho da planilha de vendas incompleto: esperado %v", salesHeader)
	}

	for i, expected := range salesHeader {
		if strings.TrimSpace(header[i]) != expected {
			return errors.Errorf("coluna %d da planilha de vendas deveria ser %q, encontrado %q", i+1, expected, header[i])
		}
	}

	return nil
}

func parseSalesRow(row []string) (domain.SaleRecord, error) {
	if len(row) < len(salesHeader) {
		return domain.SaleRecord{}, errors.Errorf("esperadas %d colunas, encontradas %d", len(salesHeader), len(row))
	}

	date, err := parseDate(row[1])
	if err != nil {
		return domain.SaleRecord{}, err
	}

	storeID, err := strconv.Atoi(strings.TrimSpace(row[2]))
	if err != nil {
		return domain.SaleRecord{}, errors.Wrapf(err, "ID Loja inválido %q", row[2])
	}

	product := strings.TrimSpace(row[3])
	if product == "" {
		return domain.SaleRecord{}, errors.New("Produto vazio")
	}

	quantity, err := strconv.Atoi(strings.TrimSpace(row[4]))
	if err != nil {
		return domain.SaleRecord{}, errors.Wrapf(err, "Quantidade inválida %q", row[4])
	}

	unitValue, err := parseDecimal(row[5])
	if err != nil {
		return domain.SaleRecord{}, errors.Wrapf(err, "Valor Unitário inválido %q", row[5])
	}

	finalValue, err := parseDecimal(row[6])
	if err != nil {
		return domain.SaleRecord{}, errors.Wrapf(err, "Valor Final inválido %q", row[6])
	}

	if quantity < 0 || finalValue < 0 {
		return domain.SaleRecord{}, errors.New("Quantidade e Valor Final devem ser não negativos")
	}

	return domain.SaleRecord{
		SaleCode:   strings.TrimSpace(row[0]),
		StoreID:    storeID,
		Product:    product,
		Quantity:   quantity,
		UnitValue:  unitValue,
		FinalValue: finalValue,
		Date:       date,
	}, nil
}

func parseDate(cell string) (time.Time, error) {
	value := strings.TrimSpace(cell)

	for _, layout := range dateLayouts {
		if date, err := time.Parse(layout, value); err == nil {
			return date, nil
		}
	}

	return time.Time{}, errors.Errorf("data inválida %q", cell)
}

// parseDecimal aceita tanto ponto quanto vírgula como separador decimal
func parseDecimal(cell string) (float64, error) {
	value := strings.TrimSpace(cell)
	value = strings.ReplaceAll(value, ",", ".")
	return strconv.ParseFloat(value, 64)
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
