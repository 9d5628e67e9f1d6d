package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/diillson/cpm-dashboard-go/internal/domain/entity"
	"github.com/diillson/cpm-dashboard-go/internal/domain/repository"
	"github.com/diillson/cpm-dashboard-go/internal/domain/service"
	"github.com/diillson/cpm-dashboard-go/pkg/money"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

// selectionRows descreve os filtros aplicados.
func selectionRows(data entity.Dashboard) [][2]string {
	rows := [][2]string{{"Período", data.PeriodTitle}}
	if data.Selection.Unit != "" {
		rows = append(rows, [2]string{"Unidade", data.Selection.Unit})
	}
	return append(rows, [2]string{"Moeda", data.Selection.Currency})
}

func (r *ExportRepositoryImpl) ExportToCSV(data entity.Dashboard, filename, outputDir string) (string, error) {
	cards, err := service.BuildCards(data)
	if err != nil {
		return "", err
	}

	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	records := [][]string{{"Indicador", "Valor"}}
	for _, row := range selectionRows(data) {
		records = append(records, []string{row[0], row[1]})
	}
	for _, c := range cards {
		records = append(records, []string{c.Title, c.Value})
	}

	records = append(records, []string{}, []string{"Rótulo", fmt.Sprintf("Custo/min (%s)", data.Selection.Currency)})
	for _, p := range data.Points {
		records = append(records, []string{p.Label, money.MustFormat(p.Value*data.Rate, data.Selection.Currency)})
	}

	records = append(records, []string{}, []string{"Centro de custo", "Custo/min", "Contribuição"})
	for _, d := range data.Drivers {
		records = append(records, []string{
			d.Name,
			money.MustFormat(d.CPM*data.Rate, data.Selection.Currency),
			fmt.Sprintf("%.0f%%", d.Share*100),
		})
	}

	if err := writer.WriteAll(records); err != nil {
		return "", fmt.Errorf("error writing CSV file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportToJSON(data entity.Dashboard, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportToPDF(data entity.Dashboard, filename, outputDir string) (string, error) {
	cards, err := service.BuildCards(data)
	if err != nil {
		return "", err
	}

	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}
	barColor := [3]int{37, 99, 235}

	drawSectionTitle := func(title string) {
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(7)

		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)
	}

	pdf.AddPage()

	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr(fmt.Sprintf("  %s", data.Title)), "", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	filters := ""
	for _, row := range selectionRows(data) {
		filters += fmt.Sprintf("  %s: %s", row[0], row[1])
	}
	pdf.CellFormat(0, 8, tr(filters), "", 1, "L", true, 0, "")
	pdf.Ln(10)

	drawSectionTitle("Indicadores")
	cardWidth := 190.0 / float64(len(cards))
	pdf.SetFont("Arial", "", 8)
	pdf.SetTextColor(100, 100, 100)
	for _, c := range cards {
		pdf.CellFormat(cardWidth, 5, tr(c.Title), "", 0, "L", false, 0, "")
	}
	pdf.Ln(5)
	originalTextColorR, originalTextColorG, originalTextColorB := pdf.GetTextColor()
	pdf.SetFont("Arial", "B", 12)
	for _, c := range cards {
		switch c.Tone {
		case service.ToneUp:
			pdf.SetTextColor(192, 0, 0)
		case service.ToneDown:
			pdf.SetTextColor(0, 128, 0)
		default:
			pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		}
		pdf.CellFormat(cardWidth, 10, tr(c.Value), "", 0, "L", false, 0, "")
	}
	pdf.SetTextColor(originalTextColorR, originalTextColorG, originalTextColorB)
	pdf.Ln(16)

	drawSectionTitle("Tendência de custo por minuto")
	if len(data.Points) > 0 {
		peak := data.Summary.Peak
		if peak <= 0 {
			peak = 1
		}
		chartHeight := 40.0
		barWidth := 190.0 / float64(len(data.Points))
		baseY := pdf.GetY() + chartHeight
		pdf.SetFillColor(barColor[0], barColor[1], barColor[2])
		pdf.SetFont("Arial", "", 6)
		for i, p := range data.Points {
			h := p.Value / peak * chartHeight
			x := 10 + float64(i)*barWidth
			pdf.Rect(x+0.5, baseY-h, barWidth-1, h, "F")
			pdf.Text(x+0.5, baseY+4, tr(p.Label))
		}
		pdf.SetY(baseY + 10)
	}

	drawSectionTitle("Centros de custo")
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(90, 7, tr("Nome"), "B", 0, "L", false, 0, "")
	pdf.CellFormat(50, 7, tr("Custo/min"), "B", 0, "R", false, 0, "")
	pdf.CellFormat(50, 7, tr("Contribuição"), "B", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	for _, d := range data.Drivers {
		pdf.CellFormat(90, 7, tr(d.Name), "", 0, "L", false, 0, "")
		pdf.CellFormat(50, 7, tr(money.MustFormat(d.CPM*data.Rate, data.Selection.Currency)), "", 0, "R", false, 0, "")
		pdf.CellFormat(50, 7, fmt.Sprintf("%.0f%%", d.Share*100), "", 1, "R", false, 0, "")
	}
	pdf.Ln(8)

	if len(data.Headlines) > 0 {
		drawSectionTitle("Últimas notícias")
		pdf.SetFont("Arial", "", 10)
		for _, h := range data.Headlines {
			pdf.MultiCell(190, 5, tr("• "+cleanRichTags(h)), "", "L", false)
		}
	}

	pdf.SetY(-15)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(128, 128, 128)
	footerText := fmt.Sprintf("Gerado por %s | %s", data.Title, generatedAt(data).Format("2006-01-02 15:04"))
	pdf.CellFormat(0, 10, tr(footerText), "", 0, "L", false, 0, "")

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Funções Auxiliares ---

func generatedAt(data entity.Dashboard) time.Time {
	if data.GeneratedAt.IsZero() {
		return time.Now()
	}
	return data.GeneratedAt
}

// generateFilename cria um nome de arquivo único com timestamp e garante que o diretório exista.
func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}

// Regex para limpar formatação pterm (rich tags) e sequências ANSI de cor/estilo.
var richTagRegex = regexp.MustCompile(`\[/?([a-zA-Z]+|#[0-9a-fA-F]{6})\]`)
var ansiRegex = regexp.MustCompile(`\x1B\[[0-9;]*[A-Za-z]`)

// cleanRichTags remove tags de formatação do pterm e sequências ANSI.
func cleanRichTags(text string) string {
	text = richTagRegex.ReplaceAllString(text, "")
	text = ansiRegex.ReplaceAllString(text, "")
	return text
}
