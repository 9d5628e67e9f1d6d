package types

import "context"

// ConsoleInterface define a interface para saída no console.
type ConsoleInterface interface {
	Print(a ...interface{})
	Printf(format string, a ...interface{})
	Println(a ...interface{})

	LogInfo(format string, a ...interface{})
	LogWarning(format string, a ...interface{})
	LogError(format string, a ...interface{})
	LogSuccess(format string, a ...interface{})

	Status(message string) StatusHandle
	ProgressWithTotal(total int) ProgressHandle

	CreateTable() TableInterface
	DisplayCards(cards []Card)
	DisplaySeriesBars(title string, bars []ChartBar)
	DisplayTicker(ctx context.Context, frames <-chan string)

	Select(label string, options []string, current string) (string, error)
}

// StatusHandle é uma interface para atualizar uma mensagem de status.
type StatusHandle interface {
	Update(message string)
	Stop()
}

// ProgressHandle é uma interface para atualizar uma barra de progresso.
type ProgressHandle interface {
	Increment()
	Stop()
}

// TableInterface define a interface para criar e manipular tabelas.
type TableInterface interface {
	AddColumn(name string, options ...interface{})
	AddRow(cells ...interface{})
	Render() string
}

// Card é um indicador exibido no topo do painel.
type Card struct {
	Title string `json:"title"`
	Value string `json:"value"`
	// Tone: "up", "down" ou "" para neutro.
	Tone string `json:"tone,omitempty"`
}

// ChartBar representa um ponto da série pronto para o gráfico de barras.
type ChartBar struct {
	Label   string  `json:"label"`
	Value   float64 `json:"value"`
	Display string  `json:"display"`
}
