package render

const storeReportTemplate = `<html>
<body>
<p>Bom dia, {{.Manager}}</p>
<p>O resultado de ontem ({{.Date}}) da <strong>{{.StoreName}}</strong> foi:</p>
<table border="1" cellpadding="6" cellspacing="0">
  <tr>
    <th>Indicador</th>
    <th>Valor Dia</th>
    <th>Meta Dia</th>
    <th>Cenário Dia</th>
  </tr>
  {{range .Rows}}
  <tr>
    <td>{{.Indicator}}</td>
    <td style="text-align: center">{{.DayValue}}</td>
    <td style="text-align: center">{{.DayGoal}}</td>
    <td style="text-align: center">{{.DayScenario}}</td>
  </tr>
  {{end}}
</table>
<br>
<table border="1" cellpadding="6" cellspacing="0">
  <tr>
    <th>Indicador</th>
    <th>Valor Ano</th>
    <th>Meta Ano</th>
    <th>Cenário Ano</th>
  </tr>
  {{range .Rows}}
  <tr>
    <td>{{.Indicator}}</td>
    <td style="text-align: center">{{.YearValue}}</td>
    <td style="text-align: center">{{.YearGoal}}</td>
    <td style="text-align: center">{{.YearScenario}}</td>
  </tr>
  {{end}}
</table>
<p>Qualquer dúvida estou à disposição.</p>
<p>Att., Automação Indicadores</p>
</body>
</html>`

const rankingReportTemplate = `<html>
<body>
<p>Prezados, bom dia</p>
<p>Segue o ranking das lojas do dia {{.Date}}:</p>
{{range .Tables}}
<h3>{{.Title}}</h3>
<table border="1" cellpadding="6" cellspacing="0">
  <tr>
    <th>Posição</th>
    <th>Loja</th>
    <th>Valor</th>
  </tr>
  {{range .Rows}}
  <tr>
    <td style="text-align: center">{{.Position}}</td>
    <td>{{.StoreName}}</td>
    <td style="text-align: center">{{.Value}}</td>
  </tr>
  {{end}}
</table>
{{end}}
<p>Qualquer dúvida estou à disposição.</p>
<p>Att., Automação Indicadores</p>
</body>
</html>`
