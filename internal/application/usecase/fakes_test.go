package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/diillson/cpm-dashboard-go/internal/domain/entity"
	"github.com/diillson/cpm-dashboard-go/internal/shared/types"
)

type countingSeries struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (s *countingSeries) GenerateSeries(ctx context.Context, period entity.Period, unit string) ([]entity.Point, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	spec, ok := entity.LookupPeriod(period)
	if !ok {
		return nil, types.ErrUnknownPeriod
	}
	points := make([]entity.Point, spec.Buckets)
	for i := range points {
		points[i] = entity.Point{Label: spec.Label(i), Value: 0.2 + float64(i)*0.01}
	}
	return points, nil
}

func (s *countingSeries) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

type fakeConfigRepo struct {
	cfg    *types.Config
	cfgErr error
	env    *types.EnvOverrides
	envErr error
	loaded []string
}

func (r *fakeConfigRepo) LoadConfigFile(path string) (*types.Config, error) {
	r.loaded = append(r.loaded, path)
	return r.cfg, r.cfgErr
}

func (r *fakeConfigRepo) LoadEnv() (*types.EnvOverrides, error) { return r.env, r.envErr }

type fakeExportRepo struct {
	calls []string
	fail  map[string]error
}

func (r *fakeExportRepo) record(kind string, data entity.Dashboard, name string) (string, error) {
	r.calls = append(r.calls, kind)
	if err := r.fail[kind]; err != nil {
		return "", err
	}
	return fmt.Sprintf("/tmp/%s.%s", name, kind), nil
}

func (r *fakeExportRepo) ExportToCSV(data entity.Dashboard, name, dir string) (string, error) {
	return r.record("csv", data, name)
}

func (r *fakeExportRepo) ExportToJSON(data entity.Dashboard, name, dir string) (string, error) {
	return r.record("json", data, name)
}

func (r *fakeExportRepo) ExportToPDF(data entity.Dashboard, name, dir string) (string, error) {
	return r.record("pdf", data, name)
}

func (r *fakeExportRepo) ExportToHTML(data entity.Dashboard, name, dir string) (string, error) {
	return r.record("html", data, name)
}

type fakeConsole struct {
	out     strings.Builder
	logs    []string
	cards   [][]types.Card
	bars    [][]types.ChartBar
	frames  int
	answers []string
	prompts []string
}

func (c *fakeConsole) Print(a ...interface{})                 { fmt.Fprint(&c.out, a...) }
func (c *fakeConsole) Printf(format string, a ...interface{}) { fmt.Fprintf(&c.out, format, a...) }
func (c *fakeConsole) Println(a ...interface{})               { fmt.Fprintln(&c.out, a...) }

func (c *fakeConsole) LogInfo(format string, a ...interface{}) {
	c.logs = append(c.logs, "info: "+fmt.Sprintf(format, a...))
}

func (c *fakeConsole) LogWarning(format string, a ...interface{}) {
	c.logs = append(c.logs, "warning: "+fmt.Sprintf(format, a...))
}

func (c *fakeConsole) LogError(format string, a ...interface{}) {
	c.logs = append(c.logs, "error: "+fmt.Sprintf(format, a...))
}

func (c *fakeConsole) LogSuccess(format string, a ...interface{}) {
	c.logs = append(c.logs, "success: "+fmt.Sprintf(format, a...))
}

type noopHandle struct{}

func (noopHandle) Update(string) {}
func (noopHandle) Increment()    {}
func (noopHandle) Stop()         {}

func (c *fakeConsole) Status(string) types.StatusHandle           { return noopHandle{} }
func (c *fakeConsole) ProgressWithTotal(int) types.ProgressHandle { return noopHandle{} }

type fakeTable struct{ rows [][]interface{} }

func (t *fakeTable) AddColumn(string, ...interface{}) {}
func (t *fakeTable) AddRow(cells ...interface{})      { t.rows = append(t.rows, cells) }
func (t *fakeTable) Render() string                   { return fmt.Sprintf("%v\n", t.rows) }

func (c *fakeConsole) CreateTable() types.TableInterface { return &fakeTable{} }
func (c *fakeConsole) DisplayCards(cards []types.Card)   { c.cards = append(c.cards, cards) }

func (c *fakeConsole) DisplaySeriesBars(title string, bars []types.ChartBar) {
	c.bars = append(c.bars, bars)
}

func (c *fakeConsole) DisplayTicker(ctx context.Context, frames <-chan string) {
	for range frames {
		c.frames++
	}
}

func (c *fakeConsole) Select(label string, options []string, current string) (string, error) {
	c.prompts = append(c.prompts, label)
	if len(c.answers) == 0 {
		return "Sair", nil
	}
	answer := c.answers[0]
	c.answers = c.answers[1:]
	return answer, nil
}

func (c *fakeConsole) hasLog(prefix string) bool {
	for _, l := range c.logs {
		if strings.HasPrefix(l, prefix) {
			return true
		}
	}
	return false
}
