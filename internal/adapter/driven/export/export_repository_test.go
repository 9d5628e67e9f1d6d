package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/cpm-dashboard-go/internal/domain/entity"
	"github.com/diillson/cpm-dashboard-go/internal/domain/service"
	"github.com/diillson/cpm-dashboard-go/internal/shared/types"
	"github.com/diillson/cpm-dashboard-go/pkg/money"
)

func brl(amount string) string { return "R$" + money.Separator + amount }

func sampleDashboard() entity.Dashboard {
	loss := 29
	return entity.Dashboard{
		Title:       entity.DashboardTitle,
		Variant:     entity.VariantUnits,
		Selection:   entity.Selection{Period: entity.Period24h, Unit: "Unidade A", Currency: "BRL"},
		PeriodTitle: "Últimas 24h",
		Rate:        1,
		Points: []entity.Point{
			{Label: "0h", Value: 0.2},
			{Label: "1h", Value: 0.35},
			{Label: "2h", Value: 0.3},
		},
		Summary: entity.Summary{
			Average:     0.2833,
			Total:       51,
			Peak:        0.35,
			TrendUp:     true,
			LossMinutes: &loss,
		},
		Drivers:     entity.DefaultCostDrivers(),
		Headlines:   []string{"[green]Custos estáveis[/green]"},
		GeneratedAt: time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC),
	}
}

func TestExportToCSV(t *testing.T) {
	dir := t.TempDir()
	path, err := NewExportRepository().ExportToCSV(sampleDashboard(), "cpm", dir)
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(path))
	assert.True(t, strings.HasPrefix(filepath.Base(path), "cpm_"))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	require.NoError(t, err)

	assert.Equal(t, []string{"Indicador", "Valor"}, records[0])
	assert.Contains(t, records, []string{"Unidade", "Unidade A"})
	assert.Contains(t, records, []string{"Pico de custo/min", brl("0,35")})
	assert.Contains(t, records, []string{"Tendência", "Alta"})
	assert.Contains(t, records, []string{"Minutos perdidos", "29 min"})
	assert.Contains(t, records, []string{"1h", brl("0,35")})

	cards, err := service.BuildCards(sampleDashboard())
	require.NoError(t, err)
	for _, c := range cards {
		assert.Contains(t, records, []string{c.Title, c.Value})
	}
	assert.Contains(t, records, []string{"Atendimento", brl("0,26"), "38%"})
}

func TestExportToJSON(t *testing.T) {
	data := sampleDashboard()
	path, err := NewExportRepository().ExportToJSON(data, "cpm", t.TempDir())
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded entity.Dashboard
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, data.Points, decoded.Points)
	assert.Equal(t, data.Selection, decoded.Selection)
	require.NotNil(t, decoded.Summary.LossMinutes)
	assert.Equal(t, 29, *decoded.Summary.LossMinutes)
}

func TestExportToPDF(t *testing.T) {
	path, err := NewExportRepository().ExportToPDF(sampleDashboard(), "cpm", t.TempDir())
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "%PDF"))
}

func TestExportToHTML(t *testing.T) {
	path, err := NewExportRepository().ExportToHTML(sampleDashboard(), "cpm", t.TempDir())
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	html := string(raw)

	assert.Contains(t, html, "<svg")
	assert.Contains(t, html, entity.DashboardTitle)
	assert.Contains(t, html, "Minutos perdidos")
	assert.Contains(t, html, "Custos estáveis")
	assert.NotContains(t, html, "[green]")
	assert.Contains(t, html, "01/05/2024 10:30")
}

func TestExportsRejectUnsupportedCurrency(t *testing.T) {
	data := sampleDashboard()
	data.Selection.Currency = "REAL"
	repo := NewExportRepository()
	dir := t.TempDir()

	exports := map[string]func(entity.Dashboard, string, string) (string, error){
		"csv":  repo.ExportToCSV,
		"pdf":  repo.ExportToPDF,
		"html": repo.ExportToHTML,
	}
	for name, export := range exports {
		t.Run(name, func(t *testing.T) {
			_, err := export(data, "cpm", dir)
			assert.ErrorIs(t, err, types.ErrUnsupportedCurrency)
		})
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestExportCreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "reports")
	path, err := NewExportRepository().ExportToCSV(sampleDashboard(), "cpm", dir)
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))
}

func TestAreaChart(t *testing.T) {
	out, err := areaChart("Custo por minuto", []float64{0.2, 0.4}, []string{"0h", "1h"}, "BRL")
	require.NoError(t, err)
	svg := string(out)
	assert.True(t, strings.HasPrefix(svg, "<svg"))
	assert.Contains(t, svg, "custo-por-minuto-chart-title")
	assert.Contains(t, svg, "R$0.40")

	_, err = areaChart("x", nil, nil, "BRL")
	assert.Error(t, err)

	_, err = areaChart("x", []float64{1}, []string{"a", "b"}, "BRL")
	assert.Error(t, err)
}

func TestCleanRichTags(t *testing.T) {
	assert.Equal(t, "Alta", cleanRichTags("[red]Alta[/red]"))
	assert.Equal(t, "ok", cleanRichTags("\x1b[32mok\x1b[0m"))
}
