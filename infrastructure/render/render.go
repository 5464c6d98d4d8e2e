// Package render transforma snapshots e rankings em HTML para envio por e-mail
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/store-indicators-api/internal/domain"
)

// Labels de exibição das famílias de indicadores
var metricLabels = map[domain.Metric]string{
	domain.MetricRevenue:       "Faturamento",
	domain.MetricVariety:       "Variedade de Produtos",
	domain.MetricAverageTicket: "Ticket Médio",
}

var periodLabels = map[domain.Period]string{
	domain.PeriodDay:  "Dia",
	domain.PeriodYear: "Ano",
}

type HTMLRenderer struct {
	storeTemplate   *template.Template
	rankingTemplate *template.Template
}

func NewHTMLRenderer() (*HTMLRenderer, error) {
	storeTemplate, err := template.New("store_report").Parse(storeReportTemplate)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao compilar template do relatório de loja")
	}

	rankingTemplate, err := template.New("ranking_report").Parse(rankingReportTemplate)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao compilar template do relatório de rankings")
	}

	return &HTMLRenderer{
		storeTemplate:   storeTemplate,
		rankingTemplate: rankingTemplate,
	}, nil
}

type storeReportRow struct {
	Indicator    string
	DayValue     string
	DayGoal      string
	DayScenario  string
	YearValue    string
	YearGoal     string
	YearScenario string
}

type storeReportData struct {
	Manager   string
	StoreName string
	Date      string
	Rows      []storeReportRow
}

// RenderStoreReport gera o OnePage da loja: as três famílias de indicadores
// nas duas granularidades, com meta e cenário
func (r *HTMLRenderer) RenderStoreReport(snapshot *domain.StoreSnapshot) (string, error) {
	data := storeReportData{
		Manager:   snapshot.Manager,
		StoreName: snapshot.StoreName,
		Date:      snapshot.ReferenceDate.Format("02/01/2006"),
	}

	if data.Manager == "" {
		data.Manager = snapshot.StoreName
	}

	for _, metric := range domain.Metrics {
		day := snapshot.Entry(metric, domain.PeriodDay)
		year := snapshot.Entry(metric, domain.PeriodYear)

		data.Rows = append(data.Rows, storeReportRow{
			Indicator:    metricLabels[metric],
			DayValue:     formatValue(metric, day.Value, day.Defined),
			DayGoal:      formatValue(metric, day.Goal, true),
			DayScenario:  scenario(day.Met),
			YearValue:    formatValue(metric, year.Value, year.Defined),
			YearGoal:     formatValue(metric, year.Goal, true),
			YearScenario: scenario(year.Met),
		})
	}

	var out bytes.Buffer
	if err := r.storeTemplate.Execute(&out, data); err != nil {
		return "", errors.Wrapf(err, "erro ao renderizar relatório da loja %s", snapshot.StoreName)
	}

	return out.String(), nil
}

type rankingTableData struct {
	Title string
	Rows  []rankingRowData
}

type rankingRowData struct {
	Position  int
	StoreName string
	Value     string
}

type rankingReportData struct {
	Date   string
	Tables []rankingTableData
}

// RenderRankingReport gera o relatório de rankings enviado à diretoria
func (r *HTMLRenderer) RenderRankingReport(tables []*domain.RankingTable, reference domain.ReportingPeriod) (string, error) {
	data := rankingReportData{
		Date: reference.Day.Format("02/01/2006"),
	}

	for _, table := range tables {
		tableData := rankingTableData{
			Title: fmt.Sprintf("%s - %s", metricLabels[table.Metric], periodLabels[table.Period]),
		}

		for _, row := range table.Rows {
			tableData.Rows = append(tableData.Rows, rankingRowData{
				Position:  row.Position,
				StoreName: row.StoreName,
				Value:     formatValue(table.Metric, row.Value, true),
			})
		}

		data.Tables = append(data.Tables, tableData)
	}

	var out bytes.Buffer
	if err := r.rankingTemplate.Execute(&out, data); err != nil {
		return "", errors.Wrap(err, "erro ao renderizar relatório de rankings")
	}

	return out.String(), nil
}

// formatValue formata o valor conforme a família: moeda para faturamento e
// ticket médio, inteiro para variedade. Valor indefinido aparece como traço.
func formatValue(metric domain.Metric, value float64, defined bool) string {
	if !defined {
		return "—"
	}

	switch metric {
	case domain.MetricVariety:
		return fmt.Sprintf("%d", int(value))
	default:
		formatted := fmt.Sprintf("R$ %.2f", value)
		return strings.ReplaceAll(formatted, ".", ",")
	}
}

func scenario(met bool) string {
	if met {
		return "✔"
	}
	return "✘"
}
