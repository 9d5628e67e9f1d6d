package export

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/diillson/cpm-dashboard-go/internal/domain/entity"
	"github.com/diillson/cpm-dashboard-go/internal/domain/service"
	"github.com/diillson/cpm-dashboard-go/internal/shared/types"
	"github.com/diillson/cpm-dashboard-go/pkg/money"
)

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body{font-family:system-ui,sans-serif;background:#f8fafc;color:#0f172a;margin:0;padding:24px}
header p{color:#475569}
.filters span{margin-right:16px;color:#334155}
.cards{display:flex;flex-wrap:wrap;gap:12px;margin:16px 0}
.card{background:#fff;border-radius:12px;padding:12px 16px;min-width:160px;box-shadow:0 1px 2px rgba(0,0,0,.08)}
.card h3{font-size:12px;color:#64748b;margin:0 0 6px}
.card p{font-size:20px;font-weight:600;margin:0}
.up{color:#dc2626}.down{color:#16a34a}
section{background:#fff;border-radius:12px;padding:16px;margin-bottom:16px}
table{width:100%;border-collapse:collapse}
th,td{text-align:left;padding:6px 8px;border-bottom:1px solid #e2e8f0}
footer{color:#94a3b8;font-size:12px}
</style>
</head>
<body>
<header>
<h1>{{.Title}}</h1>
<p>{{.Description}}</p>
<div class="filters">{{range .Filters}}<span><strong>{{index . 0}}:</strong> {{index . 1}}</span>{{end}}</div>
</header>
<div class="cards">{{range .Cards}}
<div class="card"><h3>{{.Title}}</h3><p{{if .Tone}} class="{{.Tone}}"{{end}}>{{.Value}}</p></div>{{end}}
</div>
<section>
<h2>Tendência de custo por minuto</h2>
{{.Chart}}
</section>
<section>
<h2>Centros de custo</h2>
<table>
<thead><tr><th>Nome</th><th>Custo/min</th><th>Contribuição</th></tr></thead>
<tbody>{{range .Drivers}}
<tr><td>{{.Name}}</td><td>{{.CPM}}</td><td>{{.Share}}</td></tr>{{end}}
</tbody>
</table>
</section>
{{if .Headlines}}<section>
<h2>Últimas notícias</h2>
<ul>{{range .Headlines}}<li>{{.}}</li>{{end}}</ul>
</section>{{end}}
<footer>Gerado em {{.GeneratedAt}}</footer>
</body>
</html>
`))

type driverRow struct {
	Name  string
	CPM   string
	Share string
}

type reportPage struct {
	Title       string
	Description string
	Filters     [][2]string
	Cards       []types.Card
	Chart       template.HTML
	Drivers     []driverRow
	Headlines   []string
	GeneratedAt string
}

func (r *ExportRepositoryImpl) ExportToHTML(data entity.Dashboard, filename, outputDir string) (string, error) {
	cards, err := service.BuildCards(data)
	if err != nil {
		return "", err
	}

	outputFilename, err := generateFilename(filename, outputDir, "html")
	if err != nil {
		return "", err
	}

	series := make([]float64, len(data.Points))
	for i, p := range data.Points {
		series[i] = p.Value * data.Rate
	}
	chart, err := areaChart("Custo por minuto", series, entity.Labels(data.Points), data.Selection.Currency)
	if err != nil {
		return "", fmt.Errorf("error rendering chart: %w", err)
	}

	drivers := make([]driverRow, len(data.Drivers))
	for i, d := range data.Drivers {
		drivers[i] = driverRow{
			Name:  d.Name,
			CPM:   money.MustFormat(d.CPM*data.Rate, data.Selection.Currency),
			Share: fmt.Sprintf("%.0f%%", d.Share*100),
		}
	}

	headlines := make([]string, len(data.Headlines))
	for i, h := range data.Headlines {
		headlines[i] = cleanRichTags(h)
	}

	page := reportPage{
		Title:       data.Title,
		Description: entity.DashboardDescription,
		Filters:     selectionRows(data),
		Cards:       cards,
		Chart:       chart,
		Drivers:     drivers,
		Headlines:   headlines,
		GeneratedAt: generatedAt(data).Format("02/01/2006 15:04"),
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating HTML file: %w", err)
	}
	defer file.Close()

	if err := reportTemplate.Execute(file, page); err != nil {
		return "", fmt.Errorf("error writing HTML file: %w", err)
	}

	return filepath.Abs(outputFilename)
}
