package console

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTableRenderIncludesHeaderAndRows(t *testing.T) {
	table := NewConsole().CreateTable()
	table.AddColumn("Nome")
	table.AddColumn("Contribuição")
	table.AddRow("Atendimento", "38%")
	table.AddRow("Licenças", 0.2)

	out := table.Render()
	assert.Contains(t, out, "Nome")
	assert.Contains(t, out, "Atendimento")
	assert.Contains(t, out, "38%")
	assert.Contains(t, out, "0.2")
}

func TestDisplayTickerDrainsUntilClosed(t *testing.T) {
	frames := make(chan string, 3)
	frames <- "a"
	frames <- "b"
	frames <- "c"
	close(frames)

	done := make(chan struct{})
	go func() {
		NewConsole().DisplayTicker(context.Background(), frames)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("DisplayTicker did not return after channel closed")
	}
	assert.Len(t, frames, 0)
}
