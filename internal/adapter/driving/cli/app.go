package cli

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/diillson/cpm-dashboard-go/internal/application/usecase"
	"github.com/diillson/cpm-dashboard-go/internal/shared/types"
	"github.com/diillson/cpm-dashboard-go/pkg/version"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd          *cobra.Command
	dashboardUseCase *usecase.DashboardUseCase
	version          string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	rootCmd := &cobra.Command{
		Use:           "cpm-dashboard",
		Short:         "Painel de Custo por Minuto",
		Long:          "Acompanhe custo por minuto, picos, tendência e centros de custo em um painel no terminal.",
		Version:       version.FormatVersion(),
		RunE:          app.runCommand,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{printf "Cost per Minute Dashboard version: %s\n" .Version}}`)

	// Adiciona flags de linha de comando
	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().StringP("variant", "v", "", "Dashboard variant: custo (currency filter) or unidades (unit filter)")
	rootCmd.PersistentFlags().StringP("period", "p", "", "Period: 24h, 7d, 30d or mensal (unidades only)")
	rootCmd.PersistentFlags().StringP("unit", "u", "", "Organizational unit (unidades only), e.g. \"Unidade A\"")
	rootCmd.PersistentFlags().StringP("currency", "m", "", "Display currency: BRL or USD")
	rootCmd.PersistentFlags().StringP("report-name", "n", "", "Specify the base name for the report file (without extension)")
	rootCmd.PersistentFlags().StringSliceP("report-type", "y", nil, "Specify report types: csv, json, pdf, html (default csv)")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
	rootCmd.PersistentFlags().Bool("ticker", false, "Animate the news ticker after the dashboard")
	rootCmd.PersistentFlags().Int("ticker-cycles", 1, "Number of ticker cycles to play (0 = until interrupted)")
	rootCmd.PersistentFlags().BoolP("interactive", "i", false, "Keep the dashboard open and change filters interactively")
	rootCmd.PersistentFlags().String("log-level", "", "Diagnostic log level: debug, info, warn, error (default warn)")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	flags := app.rootCmd.Flags()
	configFile, _ := flags.GetString("config-file")
	variant, _ := flags.GetString("variant")
	period, _ := flags.GetString("period")
	unit, _ := flags.GetString("unit")
	currency, _ := flags.GetString("currency")
	reportName, _ := flags.GetString("report-name")
	reportType, _ := flags.GetStringSlice("report-type")
	dir, _ := flags.GetString("dir")
	tickerOn, _ := flags.GetBool("ticker")
	tickerCycles, _ := flags.GetInt("ticker-cycles")
	interactive, _ := flags.GetBool("interactive")
	logLevel, _ := flags.GetString("log-level")

	// Converte para caminho absoluto; vazio fica para a configuração decidir
	if dir != "" {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	}

	return &types.CLIArgs{
		ConfigFile:   configFile,
		Variant:      variant,
		Period:       period,
		Unit:         unit,
		Currency:     currency,
		ReportName:   reportName,
		ReportType:   reportType,
		Dir:          dir,
		Ticker:       tickerOn,
		TickerCycles: tickerCycles,
		Interactive:  interactive,
		LogLevel:     logLevel,
	}, nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	displayWelcomeBanner(app.version)

	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	// Ctrl+C encerra o letreiro e o modo interativo
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return app.dashboardUseCase.RunDashboard(ctx, cliArgs)
}

// SetDashboardUseCase sets the dashboard use case for the CLI app.
func (app *CLIApp) SetDashboardUseCase(useCase *usecase.DashboardUseCase) {
	app.dashboardUseCase = useCase
}
