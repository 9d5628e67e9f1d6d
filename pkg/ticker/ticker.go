// Package ticker renders the scrolling news strip shown under the dashboard header.
package ticker

import (
	"context"
	"strings"
	"time"
)

// DefaultSpeed is the duration of one full scroll cycle.
const DefaultSpeed = 20 * time.Second

const gap = "     •     "

// DefaultItems are the headlines shown when none are configured.
func DefaultItems() []string {
	return []string{
		"Nova parceria reduz custos em 8%",
		"Unidade B bate recorde de eficiência no mês",
		"Projeto de automação reduz perda de minutos",
		"Relatório mensal: tendência de custo em queda",
	}
}

// Ticker loops a fixed list of headlines.
type Ticker struct {
	items []string
	speed time.Duration
	strip []rune
}

// New builds a ticker. Empty items or a non-positive speed fall back to the defaults.
func New(items []string, speed time.Duration) *Ticker {
	if len(items) == 0 {
		items = DefaultItems()
	}
	if speed <= 0 {
		speed = DefaultSpeed
	}
	return &Ticker{
		items: items,
		speed: speed,
		strip: []rune(strings.Join(items, gap) + gap),
	}
}

// Items returns the headlines in display order.
func (t *Ticker) Items() []string { return append([]string(nil), t.items...) }

// Speed returns the configured cycle duration.
func (t *Ticker) Speed() time.Duration { return t.speed }

// Steps is the number of one-character shifts in a cycle.
func (t *Ticker) Steps() int { return len(t.strip) }

// Interval is the delay between two frames so one cycle lasts Speed.
func (t *Ticker) Interval() time.Duration {
	iv := t.speed / time.Duration(t.Steps())
	if iv <= 0 {
		return time.Millisecond
	}
	return iv
}

// Frame returns the visible window of the strip at step. The strip is laid out twice in
// sequence (more when width exceeds it) so the window never runs off the end.
func (t *Ticker) Frame(step, width int) string {
	n := len(t.strip)
	if width <= 0 {
		width = n
	}
	start := step % n
	if start < 0 {
		start += n
	}
	copies := 2 + width/n
	loop := make([]rune, 0, copies*n)
	for i := 0; i < copies; i++ {
		loop = append(loop, t.strip...)
	}
	return string(loop[start : start+width])
}

// Frames emits one frame per Interval until cycles complete or ctx ends; cycles <= 0 runs until ctx ends.
// The channel is closed when emission stops.
func (t *Ticker) Frames(ctx context.Context, width, cycles int) <-chan string {
	out := make(chan string)
	go func() {
		defer close(out)
		tick := time.NewTicker(t.Interval())
		defer tick.Stop()

		total := cycles * t.Steps()
		for step := 0; cycles <= 0 || step < total; step++ {
			select {
			case out <- t.Frame(step, width):
			case <-ctx.Done():
				return
			}
			select {
			case <-tick.C:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}
