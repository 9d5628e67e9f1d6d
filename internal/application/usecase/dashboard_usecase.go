package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/diillson/cpm-dashboard-go/internal/domain/entity"
	"github.com/diillson/cpm-dashboard-go/internal/domain/repository"
	"github.com/diillson/cpm-dashboard-go/internal/domain/service"
	"github.com/diillson/cpm-dashboard-go/internal/shared/types"
	"github.com/diillson/cpm-dashboard-go/pkg/log"
	"github.com/diillson/cpm-dashboard-go/pkg/money"
	"github.com/diillson/cpm-dashboard-go/pkg/ticker"
)

// TickerWidth is the number of visible characters of the animated ticker.
const TickerWidth = 80

// DashboardUseCase handles the main dashboard functionality.
type DashboardUseCase struct {
	seriesRepo repository.SeriesRepository
	exportRepo repository.ExportRepository
	configRepo repository.ConfigRepository
	console    types.ConsoleInterface
}

// NewDashboardUseCase creates a new dashboard use case.
func NewDashboardUseCase(
	seriesRepo repository.SeriesRepository,
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	console types.ConsoleInterface,
) *DashboardUseCase {
	return &DashboardUseCase{
		seriesRepo: seriesRepo,
		exportRepo: exportRepo,
		configRepo: configRepo,
		console:    console,
	}
}

// RunDashboard executa a funcionalidade principal do dashboard.
func (uc *DashboardUseCase) RunDashboard(ctx context.Context, args *types.CLIArgs) error {
	settings, err := uc.ResolveSettings(args)
	if err != nil {
		return err
	}
	if err := log.Setup(settings.LogLevel, nil); err != nil {
		return fmt.Errorf("invalid log level %q: %w", settings.LogLevel, err)
	}

	ctx, _ = log.WithRunID(ctx)
	log.ForContext(ctx).WithFields(log.Fields{
		"variant":  settings.Variant,
		"period":   settings.Period,
		"unit":     settings.Unit,
		"currency": settings.Currency,
	}).Info("dashboard started")

	page, err := uc.NewPage(settings)
	if err != nil {
		return err
	}

	if args.Interactive {
		return uc.RunInteractive(ctx, page, settings)
	}

	status := uc.console.Status("Gerando painel...")
	view, err := page.View(ctx)
	status.Stop()
	if err != nil {
		return err
	}

	if err := uc.RenderDashboard(view); err != nil {
		return err
	}

	if args.Ticker {
		uc.RunTicker(ctx, settings, args.TickerCycles)
	}

	uc.ExportReports(ctx, view, settings)
	log.ForContext(ctx).Debug("dashboard finished")
	return nil
}

// RenderDashboard exibe cards, gráfico, centros de custo e notícias.
func (uc *DashboardUseCase) RenderDashboard(view entity.Dashboard) error {
	cards, err := service.BuildCards(view)
	if err != nil {
		return err
	}

	uc.console.Println()
	uc.console.Println(pterm.DefaultHeader.Sprint(view.Title))
	uc.console.Printf("%s  |  %s\n", view.PeriodTitle, describeSelection(view.Selection))
	uc.console.DisplayCards(cards)

	bars := make([]types.ChartBar, len(view.Points))
	for i, p := range view.Points {
		value := p.Value * view.Rate
		bars[i] = types.ChartBar{
			Label:   p.Label,
			Value:   value,
			Display: money.MustFormat(value, view.Selection.Currency),
		}
	}
	uc.console.DisplaySeriesBars("Tendência de custo por minuto", bars)

	table := uc.console.CreateTable()
	table.AddColumn("Nome")
	table.AddColumn("Custo/min")
	table.AddColumn("Contribuição")
	for _, d := range view.Drivers {
		table.AddRow(
			d.Name,
			money.MustFormat(d.CPM*view.Rate, view.Selection.Currency),
			fmt.Sprintf("%.0f%%", d.Share*100),
		)
	}
	uc.console.Println(pterm.DefaultSection.Sprint("Centros de custo"))
	uc.console.Print(table.Render())

	if len(view.Headlines) > 0 {
		uc.console.Println()
		uc.console.LogInfo("Últimas notícias: %s", strings.Join(view.Headlines, "  •  "))
	}
	return nil
}

func describeSelection(sel entity.Selection) string {
	parts := []string{"Moeda: " + sel.Currency}
	if sel.Unit != "" {
		parts = append([]string{"Unidade: " + sel.Unit}, parts...)
	}
	return strings.Join(parts, "  |  ")
}

// RunTicker anima o letreiro de notícias por um número de ciclos (0 = até cancelar).
func (uc *DashboardUseCase) RunTicker(ctx context.Context, settings *Settings, cycles int) {
	tk := ticker.New(settings.TickerItems, settings.TickerSpeed)
	uc.console.DisplayTicker(ctx, tk.Frames(ctx, TickerWidth, cycles))
}

// ExportReports exporta o painel nos formatos pedidos. Falhas de um formato não impedem os demais.
func (uc *DashboardUseCase) ExportReports(ctx context.Context, view entity.Dashboard, settings *Settings) {
	if settings.ReportName == "" || len(settings.ReportType) == 0 {
		return
	}

	progress := uc.console.ProgressWithTotal(len(settings.ReportType))
	defer progress.Stop()

	for _, reportType := range settings.ReportType {
		var (
			path string
			err  error
		)
		switch reportType {
		case "csv":
			path, err = uc.exportRepo.ExportToCSV(view, settings.ReportName, settings.Dir)
		case "json":
			path, err = uc.exportRepo.ExportToJSON(view, settings.ReportName, settings.Dir)
		case "pdf":
			path, err = uc.exportRepo.ExportToPDF(view, settings.ReportName, settings.Dir)
		case "html":
			path, err = uc.exportRepo.ExportToHTML(view, settings.ReportName, settings.Dir)
		default:
			uc.console.LogWarning("Unsupported report type: %s", reportType)
			progress.Increment()
			continue
		}
		progress.Increment()

		if err != nil {
			log.ForContext(ctx).WithError(err).WithField("report_type", reportType).Error("export failed")
			uc.console.LogError("Failed to export to %s: %s", strings.ToUpper(reportType), err)
			continue
		}
		uc.console.LogSuccess("Successfully exported to %s: %s", strings.ToUpper(reportType), path)
	}
}
