package console

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/pterm/pterm"

	"github.com/diillson/cpm-dashboard-go/internal/shared/types"
)

// Console é uma implementação do ConsoleInterface.
type Console struct{}

// NewConsole cria um novo Console.
func NewConsole() *Console {
	return &Console{}
}

// Print imprime no console.
func (c *Console) Print(a ...interface{}) {
	fmt.Print(a...)
}

// Printf imprime uma string formatada no console.
func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Printf(format, a...)
}

// Println imprime no console com uma nova linha.
func (c *Console) Println(a ...interface{}) {
	fmt.Println(a...)
}

// LogInfo registra uma mensagem de informação.
func (c *Console) LogInfo(format string, a ...interface{}) {
	pterm.Info.Printfln(format, a...)
}

// LogWarning registra uma mensagem de aviso.
func (c *Console) LogWarning(format string, a ...interface{}) {
	pterm.Warning.Printfln(format, a...)
}

// LogError registra uma mensagem de erro.
func (c *Console) LogError(format string, a ...interface{}) {
	pterm.Error.Printfln(format, a...)
}

// LogSuccess registra uma mensagem de sucesso.
func (c *Console) LogSuccess(format string, a ...interface{}) {
	pterm.Success.Printfln(format, a...)
}

// statusHandle é uma implementação do StatusHandle.
type statusHandle struct {
	spinner *pterm.SpinnerPrinter
}

// Status cria um spinner de status com a mensagem especificada.
func (c *Console) Status(message string) types.StatusHandle {
	spinner, _ := pterm.DefaultSpinner.Start(message)
	return &statusHandle{spinner: spinner}
}

// Cores predefinidas para uso consistente
var (
	BrightGreen = color.New(color.FgGreen, color.Bold).SprintFunc()
	BrightRed   = color.New(color.FgRed, color.Bold).SprintFunc()
	BrightCyan  = color.New(color.FgCyan, color.Bold).SprintFunc()
)

// Update atualiza a mensagem de status.
func (h *statusHandle) Update(message string) {
	if h.spinner != nil {
		h.spinner.UpdateText(message)
	}
}

// Stop pára o spinner de status.
func (h *statusHandle) Stop() {
	if h.spinner != nil {
		h.spinner.Stop()
	}
}

// progressHandle é uma implementação do ProgressHandle.
type progressHandle struct {
	bar *pterm.ProgressbarPrinter
}

// ProgressWithTotal cria uma barra de progresso com o total informado.
func (c *Console) ProgressWithTotal(total int) types.ProgressHandle {
	bar, _ := pterm.DefaultProgressbar.
		WithTotal(total).
		WithTitle("Exportando relatórios").
		WithShowElapsedTime(true).
		WithShowCount(true).
		WithRemoveWhenDone(false).
		Start()
	return &progressHandle{bar: bar}
}

// Increment incrementa a barra de progresso.
func (h *progressHandle) Increment() {
	if h.bar != nil {
		h.bar.Increment()
	}
}

// Stop pára a barra de progresso.
func (h *progressHandle) Stop() {
	if h.bar != nil {
		h.bar.Stop()
	}
}

// Table é uma implementação do TableInterface.
type Table struct {
	columns []string
	rows    [][]string
}

// CreateTable cria uma nova tabela.
func (c *Console) CreateTable() types.TableInterface {
	return &Table{
		columns: []string{},
		rows:    [][]string{},
	}
}

// AddColumn adiciona uma coluna à tabela.
func (t *Table) AddColumn(name string, options ...interface{}) {
	t.columns = append(t.columns, name)
}

// AddRow adiciona uma linha à tabela.
func (t *Table) AddRow(cells ...interface{}) {
	// Convertemos cada célula para string
	processedCells := make([]string, len(cells))
	for i, cell := range cells {
		processedCells[i] = fmt.Sprint(cell)
	}
	t.rows = append(t.rows, processedCells)
}

// Render renderiza a tabela como uma string.
func (t *Table) Render() string {
	// Use o pterm para criar uma tabela visualmente agradável
	tableData := pterm.TableData{t.columns}
	for _, row := range t.rows {
		tableData = append(tableData, row)
	}

	table := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(tableData)

	renderedTable, _ := table.Srender()
	return renderedTable
}

// DisplayCards exibe os indicadores lado a lado, cada um em uma caixa.
// Custo em alta aparece em vermelho.
func (c *Console) DisplayCards(cards []types.Card) {
	row := make([]pterm.Panel, 0, len(cards))
	for _, card := range cards {
		value := card.Value
		switch card.Tone {
		case "up":
			value = BrightRed(value + " ▲")
		case "down":
			value = BrightGreen(value + " ▼")
		default:
			value = BrightCyan(value)
		}
		box := pterm.DefaultBox.
			WithTitle(pterm.FgGray.Sprint(card.Title)).
			WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).
			Sprint(value)
		row = append(row, pterm.Panel{Data: box})
	}

	rendered, _ := pterm.DefaultPanel.WithPanels(pterm.Panels{row}).WithPadding(1).Srender()
	fmt.Println(rendered)
}

// DisplaySeriesBars exibe a série como barras horizontais, coloridas pela variação entre buckets.
func (c *Console) DisplaySeriesBars(title string, bars []types.ChartBar) {
	if len(bars) == 0 {
		pterm.Warning.Println("No data for this period")
		return
	}

	// Encontra o valor máximo para escala
	maxValue := 0.0
	for _, b := range bars {
		if b.Value > maxValue {
			maxValue = b.Value
		}
	}
	if maxValue == 0 {
		pterm.Warning.Println("All values are zero for this period")
		return
	}

	tableData := pterm.TableData{
		{"Período", "Custo/min", ""},
	}

	for i, b := range bars {
		barLength := int((b.Value / maxValue) * 40)
		bar := strings.Repeat("█", barLength)

		barColor := pterm.FgBlue.Sprint(bar)
		if i > 0 {
			switch prev := bars[i-1].Value; {
			case b.Value > prev:
				barColor = pterm.FgRed.Sprint(bar)
			case b.Value < prev:
				barColor = pterm.FgGreen.Sprint(bar)
			default:
				barColor = pterm.FgYellow.Sprint(bar)
			}
		}

		tableData = append(tableData, []string{b.Label, b.Display, barColor})
	}

	table := pterm.DefaultTable.WithHasHeader().WithData(tableData)
	renderedTable, _ := table.Srender()

	panel := pterm.DefaultBox.WithTitle(title).WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).Sprint(renderedTable)

	fmt.Println("\n" + panel)
}

// DisplayTicker desenha cada quadro do letreiro na mesma área até o canal fechar.
func (c *Console) DisplayTicker(ctx context.Context, frames <-chan string) {
	area, err := pterm.DefaultArea.Start()
	if err != nil {
		for range frames {
		}
		return
	}
	defer area.Stop()

	style := pterm.NewStyle(pterm.BgBlue, pterm.FgLightWhite, pterm.Bold)
	for {
		select {
		case frame, ok := <-frames:
			if !ok {
				return
			}
			area.Update(style.Sprint(frame))
		case <-ctx.Done():
			return
		}
	}
}

// Select mostra um menu interativo e devolve a opção escolhida.
func (c *Console) Select(label string, options []string, current string) (string, error) {
	printer := pterm.DefaultInteractiveSelect.WithOptions(options)
	if current != "" {
		printer = printer.WithDefaultOption(current)
	}
	return printer.Show(label)
}
